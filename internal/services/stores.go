package services

import (
	"context"
	"time"

	"github.com/google/uuid"
	"order-photos-backend/internal/batch"
	"order-photos-backend/internal/models"
)

//go:generate mockgen -destination=../mocks/mock_stores.go -package=mocks order-photos-backend/internal/services PurgeStore,ObjectStore,GalleryStore,OrderStore,Locker

// PurgeStore is the slice of the data store the purge job needs.
type PurgeStore interface {
	// ListPurgeCandidates returns archived orders with archived_at < cutoff
	// that still own photo rows, oldest archive first.
	ListPurgeCandidates(ctx context.Context, cutoff time.Time, limit int) ([]models.Order, error)
	ListPhotosForOrders(ctx context.Context, orderIDs batch.Keys, limit int) ([]models.Photo, error)
	// DeletePhotos returns the number of rows removed. Ids that no longer
	// exist are not an error.
	DeletePhotos(ctx context.Context, photoIDs batch.Keys) (int, error)
}

type ObjectStore interface {
	RemoveObjects(ctx context.Context, paths batch.Keys) (models.RemoveResult, error)
	PublicURL(path string) string
}

type GalleryStore interface {
	GetOrder(ctx context.Context, id uuid.UUID) (*models.Order, error)
	// FindActiveOrderByCode returns the newest order for code whose status is
	// in statuses and whose archived_at is null.
	FindActiveOrderByCode(ctx context.Context, code string, statuses []string) (*models.Order, error)
	CodeExists(ctx context.Context, code string) (bool, error)
	ListOrderPhotos(ctx context.Context, orderID uuid.UUID) ([]models.Photo, error)
}

type OrderStore interface {
	GetOrder(ctx context.Context, id uuid.UUID) (*models.Order, error)
	// ArchiveOrder sets archived_at only when it is still null and reports
	// whether a row was updated.
	ArchiveOrder(ctx context.Context, id uuid.UUID, at time.Time) (bool, error)
	FindActiveOrderByCode(ctx context.Context, code string, statuses []string) (*models.Order, error)
	CreateOrder(ctx context.Context, order *models.Order) error
}

type Locker interface {
	TryLock(ctx context.Context, key, token string, ttl time.Duration) (bool, error)
	Unlock(ctx context.Context, key, token string) error
}
