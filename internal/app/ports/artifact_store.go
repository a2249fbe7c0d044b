package ports

import "context"

// ArtifactStore holds binary artifacts of the export pipeline: rendered
// chunk captures, viewer tiles and the exported descriptor.
type ArtifactStore interface {
	Put(ctx context.Context, key, contentType string, data []byte) error
	Get(ctx context.Context, key string) ([]byte, error)
}
