package service

import (
	"context"

	"pymerp/internal/errors"
)

// ErrAssetNotFound is returned when the key does not exist in the store.
var ErrAssetNotFound = errors.New("asset not found")

// AssetStore keeps generated binary assets such as QR images.
type AssetStore interface {
	Put(ctx context.Context, key string, data []byte, contentType string) error
	Get(ctx context.Context, key string) ([]byte, error)
}
