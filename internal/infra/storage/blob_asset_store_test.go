package storage

import (
	"context"
	"testing"

	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gocloud.dev/blob"

	"pymerp/internal/domain/service"
)

func TestBlobAssetStore_PutGet(t *testing.T) {
	ctx := context.Background()
	bucket, err := blob.OpenBucket(ctx, "mem://")
	require.NoError(t, err)
	defer bucket.Close()

	store := NewBlobAssetStore(bucket)

	_, err = store.Get(ctx, "qr/c1.png")
	assert.True(t, errors.Is(err, service.ErrAssetNotFound))

	png := []byte{0x89, 'P', 'N', 'G'}
	require.NoError(t, store.Put(ctx, "qr/c1.png", png, "image/png"))

	got, err := store.Get(ctx, "qr/c1.png")
	require.NoError(t, err)
	assert.Equal(t, png, got)

	attrs, err := bucket.Attributes(ctx, "qr/c1.png")
	require.NoError(t, err)
	assert.Equal(t, "image/png", attrs.ContentType)
}
