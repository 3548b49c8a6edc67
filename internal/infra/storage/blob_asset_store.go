// Package storage keeps generated assets in a gocloud.dev bucket.
package storage

import (
	"context"
	"log/slog"

	"github.com/pkg/errors"
	"go.uber.org/fx"
	"gocloud.dev/blob"
	_ "gocloud.dev/blob/fileblob" // file:// buckets for local runs
	_ "gocloud.dev/blob/gcsblob"  // gs:// buckets in production
	_ "gocloud.dev/blob/memblob"  // mem:// buckets for tests
	"gocloud.dev/gcerrors"

	"pymerp/config"
	"pymerp/internal/domain/service"
)

type blobAssetStore struct {
	bucket *blob.Bucket
}

// NewBlobAssetStore wraps an open bucket.
func NewBlobAssetStore(bucket *blob.Bucket) service.AssetStore {
	return &blobAssetStore{bucket: bucket}
}

func (s *blobAssetStore) Put(ctx context.Context, key string, data []byte, contentType string) error {
	err := s.bucket.WriteAll(ctx, key, data, &blob.WriterOptions{
		ContentType:  contentType,
		CacheControl: "public, max-age=86400",
	})

	return errors.Wrapf(err, "failed to write asset %s", key)
}

func (s *blobAssetStore) Get(ctx context.Context, key string) ([]byte, error) {
	data, err := s.bucket.ReadAll(ctx, key)
	if err != nil {
		if gcerrors.Code(err) == gcerrors.NotFound {
			return nil, service.ErrAssetNotFound
		}

		return nil, errors.Wrapf(err, "failed to read asset %s", key)
	}

	return data, nil
}

// AssetStoreParams holds dependencies for the asset store, injected by Fx
type AssetStoreParams struct {
	fx.In

	Lc     fx.Lifecycle
	Ctx    context.Context
	Config *config.Config
	Logger *slog.Logger
}

// AssetStoreResult leaves AssetStore nil when no bucket is configured.
type AssetStoreResult struct {
	fx.Out

	Assets service.AssetStore
}

// NewFromConfig opens the QR bucket when one is configured.
func NewFromConfig(params AssetStoreParams) (AssetStoreResult, error) {
	if params.Config.QRCode == nil || params.Config.QRCode.BucketURL == "" {
		params.Logger.Info("Asset bucket not configured, QR codes are generated per request")

		return AssetStoreResult{}, nil
	}

	bucketURL := params.Config.QRCode.BucketURL
	bucket, err := blob.OpenBucket(params.Ctx, bucketURL)
	if err != nil {
		return AssetStoreResult{}, errors.Wrapf(err, "failed to open bucket %s", bucketURL)
	}

	params.Lc.Append(fx.Hook{
		OnStop: func(_ context.Context) error {
			return bucket.Close()
		},
	})
	params.Logger.Info("Asset bucket opened", slog.String("url", bucketURL))

	return AssetStoreResult{Assets: NewBlobAssetStore(bucket)}, nil
}

// Module provides the asset store FX module
//
//nolint:gochecknoglobals
var Module = fx.Options(
	fx.Provide(NewFromConfig),
)
