// Package storage implements image storage on top of gocloud.dev blob buckets.
package storage

import (
	"context"
	"io"
	"strings"

	"go.uber.org/fx"
	"gocloud.dev/blob"
	_ "gocloud.dev/blob/fileblob" // file:// bucket driver
	_ "gocloud.dev/blob/memblob"  // mem:// bucket driver
	"gocloud.dev/gcerrors"

	"openspace/config"
	"openspace/internal/domain/lifecycle"
	"openspace/internal/domain/service"
	"openspace/internal/errors"
)

// blobImageStorage is a concrete implementation of the ImageStorage interface
// backed by any bucket gocloud.dev can open (local filesystem, S3, GCS).
type blobImageStorage struct {
	bucket        *blob.Bucket
	publicBaseURL string
}

// Params defines the required parameters
type Params struct {
	fx.In
	fx.Lifecycle

	Config *config.Config
}

// New opens the configured bucket and returns it as a service.ImageStorage.
// This function will be used as an Fx provider.
func New(params Params) (service.ImageStorage, error) {
	ctx, cancel := context.WithTimeout(context.Background(), lifecycle.DefaultTimeout)
	defer cancel()

	bucket, err := blob.OpenBucket(ctx, params.Config.Storage.BucketURL)
	if err != nil {
		return nil, errors.Wrap(err, "failed to open blob bucket")
	}

	params.Append(fx.Hook{
		OnStop: func(_ context.Context) error {
			return bucket.Close()
		},
	})

	return newBlobImageStorage(bucket, params.Config.Storage.PublicBaseURL), nil
}

func newBlobImageStorage(bucket *blob.Bucket, publicBaseURL string) *blobImageStorage {
	return &blobImageStorage{
		bucket:        bucket,
		publicBaseURL: strings.TrimSuffix(publicBaseURL, "/"),
	}
}

// Put stores an image under the given key and returns its public URL.
func (s *blobImageStorage) Put(ctx context.Context, key string, contentType string, data io.Reader) (string, error) {
	w, err := s.bucket.NewWriter(ctx, key, &blob.WriterOptions{ContentType: contentType})
	if err != nil {
		return "", errors.Wrap(err, "failed to open blob writer")
	}

	if _, err := io.Copy(w, data); err != nil {
		_ = w.Close()

		return "", errors.Wrap(err, "failed to write blob")
	}

	if err := w.Close(); err != nil {
		return "", errors.Wrap(err, "failed to close blob writer")
	}

	return s.publicBaseURL + "/" + key, nil
}

// Open returns a reader over the stored image.
func (s *blobImageStorage) Open(ctx context.Context, key string) (io.ReadCloser, error) {
	r, err := s.bucket.NewReader(ctx, key, nil)
	if err != nil {
		return nil, errors.Wrap(err, "failed to open blob reader")
	}

	return r, nil
}

// Delete removes a stored image. Deleting a missing key is not an error.
func (s *blobImageStorage) Delete(ctx context.Context, key string) error {
	err := s.bucket.Delete(ctx, key)
	if err != nil && gcerrors.Code(err) != gcerrors.NotFound {
		return errors.Wrap(err, "failed to delete blob")
	}

	return nil
}
