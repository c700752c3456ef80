package service

import (
	"context"
	"io"
)

// ImageStorage defines the interface for storing uploaded images.
// This abstracts the backing bucket (local filesystem, cloud object store)
// from the use cases.
type ImageStorage interface {
	// Put stores an image under the given key and returns a URL the
	// client can fetch it from.
	Put(ctx context.Context, key string, contentType string, data io.Reader) (string, error)

	// Open returns a reader over the stored image.
	Open(ctx context.Context, key string) (io.ReadCloser, error)

	// Delete removes a stored image. Deleting a missing key is not an error.
	Delete(ctx context.Context, key string) error
}
