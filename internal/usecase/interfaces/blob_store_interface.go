package interfaces

import "context"

// IBlobStore stores opaque files and hands back the URL they are served from.
type IBlobStore interface {
	PutObject(ctx context.Context, key string, data []byte, contentType string) (url string, err error)
}
