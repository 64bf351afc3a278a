package storage

import (
	"context"
	"sync"

	"workorder_engine/internal/usecase/interfaces"
)

type memoryObject struct {
	Data        []byte
	ContentType string
}

// MemoryBlobStore keeps uploads in process memory. Local runs and tests only.
type MemoryBlobStore struct {
	mu      sync.RWMutex
	baseURL string
	objects map[string]memoryObject
}

var _ interfaces.IBlobStore = (*MemoryBlobStore)(nil)

func NewMemoryBlobStore(baseURL string) *MemoryBlobStore {
	if baseURL == "" {
		baseURL = "memory://work-orders"
	}
	return &MemoryBlobStore{baseURL: baseURL, objects: map[string]memoryObject{}}
}

func (s *MemoryBlobStore) PutObject(ctx context.Context, key string, data []byte, contentType string) (string, error) {
	if err := ctx.Err(); err != nil {
		return "", err
	}
	cp := make([]byte, len(data))
	copy(cp, data)

	s.mu.Lock()
	s.objects[key] = memoryObject{Data: cp, ContentType: contentType}
	s.mu.Unlock()

	return objectURL(s.baseURL, "", key), nil
}

// Object returns a stored upload.
func (s *MemoryBlobStore) Object(key string) ([]byte, string, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	o, ok := s.objects[key]
	return o.Data, o.ContentType, ok
}

func (s *MemoryBlobStore) Len() int {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return len(s.objects)
}
