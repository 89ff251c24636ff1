// Package storage implements the attachment store over a gocloud.dev blob
// bucket.
package storage

import (
	"context"
	"fmt"
	"log/slog"
	"net/url"

	"bizdir/config"
	"bizdir/internal/domain/service"
	"bizdir/internal/errors"

	"go.uber.org/fx"
	"gocloud.dev/blob"

	// Bucket URL schemes supported in deployment and development.
	_ "gocloud.dev/blob/fileblob"
	_ "gocloud.dev/blob/gcsblob"
	_ "gocloud.dev/blob/s3blob"
)

// bucketStore persists notification attachments in object storage and
// derives the image remote-pattern allowlist from the bucket location.
type bucketStore struct {
	bucket    *blob.Bucket
	bucketURL *url.URL
	logger    *slog.Logger
}

// Params holds dependencies for the bucket store, injected by Fx.
type Params struct {
	fx.In
	fx.Lifecycle

	Ctx    context.Context
	Config *config.Config
	Logger *slog.Logger
}

// NewBucketStore opens the configured bucket and registers its shutdown hook.
func NewBucketStore(params Params) (service.AttachmentStore, error) {
	if params.Config.Storage == nil || params.Config.Storage.BucketURL == "" {
		return nil, errors.New("storage.bucketUrl must be provided")
	}

	parsed, err := url.Parse(params.Config.Storage.BucketURL)
	if err != nil {
		return nil, errors.Wrap(err, "invalid bucket url")
	}

	bucket, err := blob.OpenBucket(params.Ctx, params.Config.Storage.BucketURL)
	if err != nil {
		return nil, errors.Wrap(err, "failed to open attachment bucket")
	}

	store := &bucketStore{
		bucket:    bucket,
		bucketURL: parsed,
		logger:    params.Logger,
	}

	params.Append(fx.Hook{
		OnStop: func(ctx context.Context) error {
			return errors.WithStack(bucket.Close())
		},
	})

	return store, nil
}

// Put writes the payload under the given key and returns the stored key.
func (s *bucketStore) Put(ctx context.Context, key, contentType string, data []byte) (string, error) {
	opts := &blob.WriterOptions{ContentType: contentType}
	if err := s.bucket.WriteAll(ctx, key, data, opts); err != nil {
		return "", errors.Wrapf(err, "failed to store attachment %s", key)
	}

	s.logger.Debug("Stored attachment", slog.String("key", key), slog.Int("bytes", len(data)))

	return key, nil
}

// Delete removes a stored attachment.
func (s *bucketStore) Delete(ctx context.Context, key string) error {
	if err := s.bucket.Delete(ctx, key); err != nil {
		return errors.Wrapf(err, "failed to delete attachment %s", key)
	}

	s.logger.Debug("Deleted attachment", slog.String("key", key))

	return nil
}

// ImageRemotePatterns returns the allowlist of remote image URL patterns for
// the configured bucket, consumed by the front end's image loader.
func (s *bucketStore) ImageRemotePatterns() []string {
	return remotePatternsFor(s.bucketURL)
}

func remotePatternsFor(bucketURL *url.URL) []string {
	switch bucketURL.Scheme {
	case "gs":
		return []string{fmt.Sprintf("https://storage.googleapis.com/%s/**", bucketURL.Host)}
	case "s3":
		return []string{fmt.Sprintf("https://%s.s3.amazonaws.com/**", bucketURL.Host)}
	case "file":
		// Local development buckets are not served over HTTP.
		return nil
	default:
		return []string{fmt.Sprintf("https://%s/**", bucketURL.Host)}
	}
}
