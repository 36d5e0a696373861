// Package minio is the S3-compatible object store backend for self-hosted
// deployments.
package minio

import (
	"context"
	"errors"
	"fmt"
	"net/url"
	"strings"

	"github.com/minio/minio-go/v7"
	"github.com/minio/minio-go/v7/pkg/credentials"
	"order-photos-backend/internal/batch"
	"order-photos-backend/internal/models"
)

type remover interface {
	RemoveObjects(ctx context.Context, bucketName string, objectsCh <-chan minio.ObjectInfo, opts minio.RemoveObjectsOptions) <-chan minio.RemoveObjectError
}

type StorageClient struct {
	client    remover
	bucket    string
	publicURL string
}

type Options struct {
	Endpoint  string
	AccessKey string
	SecretKey string
	UseSSL    bool
	Bucket    string
	// PublicURL is the externally reachable base, e.g. https://cdn.example.com.
	// Defaults to the endpoint.
	PublicURL string
}

func NewStorageClient(opts Options) (*StorageClient, error) {
	if opts.Endpoint == "" || opts.Bucket == "" {
		return nil, fmt.Errorf("minio endpoint and bucket are required")
	}

	client, err := minio.New(opts.Endpoint, &minio.Options{
		Creds:  credentials.NewStaticV4(opts.AccessKey, opts.SecretKey, ""),
		Secure: opts.UseSSL,
	})
	if err != nil {
		return nil, fmt.Errorf("failed to create minio client: %w", err)
	}

	publicURL := opts.PublicURL
	if publicURL == "" {
		scheme := "http"
		if opts.UseSSL {
			scheme = "https"
		}
		publicURL = scheme + "://" + opts.Endpoint
	}

	return newStorageClient(client, opts.Bucket, publicURL), nil
}

func newStorageClient(client remover, bucket, publicURL string) *StorageClient {
	return &StorageClient{
		client:    client,
		bucket:    bucket,
		publicURL: strings.TrimRight(publicURL, "/"),
	}
}

// RemoveObjects reports per-key failures. Missing keys are not failures:
// S3 DeleteObjects treats them as deleted.
func (s *StorageClient) RemoveObjects(ctx context.Context, paths batch.Keys) (models.RemoveResult, error) {
	keys := paths.Values()
	if len(keys) == 0 {
		return models.RemoveResult{}, nil
	}

	objectsCh := make(chan minio.ObjectInfo, len(keys))
	for _, key := range keys {
		objectsCh <- minio.ObjectInfo{Key: key}
	}
	close(objectsCh)

	var (
		failed []string
		errs   []error
	)
	for rErr := range s.client.RemoveObjects(ctx, s.bucket, objectsCh, minio.RemoveObjectsOptions{}) {
		failed = append(failed, rErr.ObjectName)
		errs = append(errs, fmt.Errorf("%s: %w", rErr.ObjectName, rErr.Err))
	}

	res := models.RemoveResult{
		Removed: len(keys) - len(failed),
		Failed:  failed,
	}
	if len(errs) > 0 {
		return res, fmt.Errorf("failed to remove %d of %d objects: %w", len(failed), len(keys), errors.Join(errs...))
	}
	return res, nil
}

func (s *StorageClient) PublicURL(storagePath string) string {
	segments := strings.Split(strings.TrimLeft(storagePath, "/"), "/")
	for i, seg := range segments {
		segments[i] = url.PathEscape(seg)
	}
	return s.publicURL + "/" + s.bucket + "/" + strings.Join(segments, "/")
}
