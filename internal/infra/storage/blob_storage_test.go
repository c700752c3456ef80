package storage

import (
	"context"
	"io"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gocloud.dev/blob/memblob"
)

func TestBlobImageStorage_PutAndOpen(t *testing.T) {
	bucket := memblob.OpenBucket(nil)
	t.Cleanup(func() { _ = bucket.Close() })

	store := newBlobImageStorage(bucket, "/images/")
	ctx := context.Background()

	url, err := store.Put(ctx, "profiles/abc.png", "image/png", strings.NewReader("png-bytes"))
	require.NoError(t, err)
	assert.Equal(t, "/images/profiles/abc.png", url)

	r, err := store.Open(ctx, "profiles/abc.png")
	require.NoError(t, err)
	t.Cleanup(func() { _ = r.Close() })

	data, err := io.ReadAll(r)
	require.NoError(t, err)
	assert.Equal(t, "png-bytes", string(data))
}

func TestBlobImageStorage_Delete(t *testing.T) {
	bucket := memblob.OpenBucket(nil)
	t.Cleanup(func() { _ = bucket.Close() })

	store := newBlobImageStorage(bucket, "/images")
	ctx := context.Background()

	_, err := store.Put(ctx, "jobs/x.png", "image/png", strings.NewReader("x"))
	require.NoError(t, err)

	require.NoError(t, store.Delete(ctx, "jobs/x.png"))

	_, err = store.Open(ctx, "jobs/x.png")
	assert.Error(t, err)

	// Deleting a missing key is not an error.
	assert.NoError(t, store.Delete(ctx, "jobs/x.png"))
}
