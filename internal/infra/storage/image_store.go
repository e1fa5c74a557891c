// Package storage archives uploaded images in a gocloud.dev blob bucket.
package storage

import (
	"context"
	"log/slog"

	"servicelocator/config"
	"servicelocator/internal/domain/entity"
	"servicelocator/internal/domain/service"

	"github.com/pkg/errors"
	"go.uber.org/fx"
	"gocloud.dev/blob"
	_ "gocloud.dev/blob/fileblob" // file:// buckets
	_ "gocloud.dev/blob/memblob"  // mem:// buckets
)

type bucketImageStore struct {
	bucket *blob.Bucket
}

// OpenImageStore opens the bucket at bucketURL.
func OpenImageStore(ctx context.Context, bucketURL string) (service.ImageStore, error) {
	bucket, err := blob.OpenBucket(ctx, bucketURL)
	if err != nil {
		return nil, errors.Wrapf(err, "failed to open bucket %s", bucketURL)
	}

	return &bucketImageStore{bucket: bucket}, nil
}

func (s *bucketImageStore) Put(ctx context.Context, key string, upload *entity.ImageUpload) error {
	opts := &blob.WriterOptions{ContentType: upload.ContentType}
	if upload.Filename != "" {
		opts.Metadata = map[string]string{"filename": upload.Filename}
	}

	return errors.Wrapf(s.bucket.WriteAll(ctx, key, upload.Data, opts), "failed to write %s", key)
}

func (s *bucketImageStore) Close() error {
	return errors.WithStack(s.bucket.Close())
}

// noopImageStore discards uploads when archiving is disabled
type noopImageStore struct {
	logger *slog.Logger
}

func (s *noopImageStore) Put(_ context.Context, key string, _ *entity.ImageUpload) error {
	s.logger.Debug("[NoopImageStore] Archiving disabled, skipping", slog.String("key", key))

	return nil
}

func (s *noopImageStore) Close() error {
	return nil
}

// ImageStoreParams holds dependencies for ImageStore, injected by Fx
type ImageStoreParams struct {
	fx.In

	Lc     fx.Lifecycle
	Ctx    context.Context
	Config *config.Config
	Logger *slog.Logger
}

// NewImageStore creates an ImageStore based on configuration
func NewImageStore(params ImageStoreParams) (service.ImageStore, error) {
	cfg := params.Config.Detection
	logger := params.Logger

	if cfg == nil || cfg.BucketURL == "" {
		logger.Info("Image archive not configured, using no-op store")

		return &noopImageStore{logger: logger}, nil
	}

	store, err := OpenImageStore(params.Ctx, cfg.BucketURL)
	if err != nil {
		return nil, err
	}

	logger.Info("Image archive opened", slog.String("bucket", cfg.BucketURL))

	params.Lc.Append(fx.Hook{
		OnStop: func(ctx context.Context) error {
			logger.Info("Closing image archive")

			return store.Close()
		},
	})

	return store, nil
}
