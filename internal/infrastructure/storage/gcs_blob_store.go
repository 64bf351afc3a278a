package storage

import (
	"context"
	"fmt"
	"strings"

	gcs "cloud.google.com/go/storage"
	"google.golang.org/api/option"

	"workorder_engine/internal/usecase/interfaces"
)

// NewGCSClient initializes a Google Cloud Storage client.
// ADC is used unless credentialsJSON is set.
func NewGCSClient(ctx context.Context, credentialsJSON string) (*gcs.Client, error) {
	if strings.TrimSpace(credentialsJSON) != "" {
		return gcs.NewClient(ctx, option.WithCredentialsJSON([]byte(credentialsJSON)))
	}
	return gcs.NewClient(ctx)
}

// GCSBlobStore uploads work order attachments to a bucket.
type GCSBlobStore struct {
	client        *gcs.Client
	bucket        string
	publicBaseURL string
}

var _ interfaces.IBlobStore = (*GCSBlobStore)(nil)

func NewGCSBlobStore(client *gcs.Client, bucket, publicBaseURL string) *GCSBlobStore {
	return &GCSBlobStore{client: client, bucket: bucket, publicBaseURL: publicBaseURL}
}

func (s *GCSBlobStore) PutObject(ctx context.Context, key string, data []byte, contentType string) (string, error) {
	wc := s.client.Bucket(s.bucket).Object(key).NewWriter(ctx)
	wc.ContentType = contentType

	if _, err := wc.Write(data); err != nil {
		_ = wc.Close()
		return "", fmt.Errorf("write object %s: %w", key, err)
	}
	if err := wc.Close(); err != nil {
		return "", fmt.Errorf("close object %s: %w", key, err)
	}
	return objectURL(s.publicBaseURL, s.bucket, key), nil
}

func objectURL(publicBaseURL, bucket, key string) string {
	if publicBaseURL != "" {
		return strings.TrimRight(publicBaseURL, "/") + "/" + key
	}
	return fmt.Sprintf("https://storage.googleapis.com/%s/%s", bucket, key)
}
