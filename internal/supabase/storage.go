package supabase

import (
	"context"
	"fmt"
	"net/url"
	"strings"

	storage "github.com/supabase-community/storage-go"
	"order-photos-backend/internal/batch"
	"order-photos-backend/internal/models"
)

type StorageClient struct {
	client  *storage.Client
	bucket  string
	baseURL string
}

func NewStorageClient(supabaseURL, serviceRoleKey, bucket string) (*StorageClient, error) {
	baseURL := strings.TrimRight(supabaseURL, "/")
	if baseURL == "" {
		return nil, fmt.Errorf("supabase url is required")
	}
	if bucket == "" {
		return nil, fmt.Errorf("storage bucket is required")
	}
	client := storage.NewClient(baseURL+"/storage/v1", serviceRoleKey, nil)

	return &StorageClient{
		client:  client,
		bucket:  bucket,
		baseURL: baseURL,
	}, nil
}

// RemoveObjects deletes a batch of keys in one call. Supabase omits keys
// that do not exist from its response instead of failing, so Removed can be
// lower than the batch size on a repeated purge.
func (s *StorageClient) RemoveObjects(ctx context.Context, paths batch.Keys) (models.RemoveResult, error) {
	if err := ctx.Err(); err != nil {
		return models.RemoveResult{Failed: paths.Values()}, err
	}
	if paths.Len() == 0 {
		return models.RemoveResult{}, nil
	}

	removed, err := s.client.RemoveFile(s.bucket, paths.Values())
	if err != nil {
		return models.RemoveResult{Failed: paths.Values()}, fmt.Errorf("failed to remove files: %w", err)
	}
	return models.RemoveResult{Removed: len(removed)}, nil
}

func (s *StorageClient) PublicURL(storagePath string) string {
	return fmt.Sprintf("%s/storage/v1/object/public/%s/%s",
		s.baseURL, s.bucket, escapePath(storagePath))
}

func escapePath(p string) string {
	segments := strings.Split(strings.TrimLeft(p, "/"), "/")
	for i, seg := range segments {
		segments[i] = url.PathEscape(seg)
	}
	return strings.Join(segments, "/")
}
