package services_test

import (
	"context"
	"errors"
	"strings"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
	"order-photos-backend/internal/mocks"
	"order-photos-backend/internal/models"
	"order-photos-backend/internal/services"
)

var activeStatuses = []string{"queued", "new", "in_progress", "ready"}

type galleryFixture struct {
	store   *memStore
	objects *memObjects
	svc     *services.GalleryService
	active  models.Order
	expired models.Order
	older   models.Photo
	newer   models.Photo
}

func newGalleryFixture() *galleryFixture {
	store, objects := newMemStore(), newMemObjects()
	base := time.Date(2025, 3, 1, 10, 0, 0, 0, time.UTC)

	archivedAt := base.AddDate(0, -1, 0)
	expired := store.addOrder("WXYZ", "delivered", &archivedAt, base.AddDate(0, -2, 0))
	store.addPhoto(expired.ID, "orders/WXYZ/1.jpg", base.AddDate(0, -2, 0))

	active := store.addOrder("QRST", "ready", nil, base)
	older := store.addPhoto(active.ID, "orders/QRST/1.jpg", base.Add(time.Hour))
	newer := store.addPhoto(active.ID, "orders/QRST/2.jpg", base.Add(2*time.Hour))

	return &galleryFixture{
		store:   store,
		objects: objects,
		svc:     services.NewGalleryService(store, objects, activeStatuses, nil),
		active:  active,
		expired: expired,
		older:   older,
		newer:   newer,
	}
}

func TestGalleryService_Resolve_ActiveCode(t *testing.T) {
	f := newGalleryFixture()

	resp, err := f.svc.Resolve(context.Background(), services.GalleryQuery{Code: "QRST"})
	require.NoError(t, err)

	assert.Equal(t, 2, resp.Count)
	require.Len(t, resp.Photos, 2)
	assert.Equal(t, f.newer.ID.String(), resp.Photos[0].ID)
	assert.Equal(t, f.older.ID.String(), resp.Photos[1].ID)
	assert.Equal(t, f.active.ID.String(), resp.Photos[0].OrderID)
	assert.Equal(t, "orders/QRST/2.jpg", resp.Photos[0].Path)
	assert.Equal(t, "https://cdn.test/order-photos/orders/QRST/2.jpg", resp.Photos[0].URL)
}

func TestGalleryService_Resolve_UnknownCode(t *testing.T) {
	f := newGalleryFixture()

	_, err := f.svc.Resolve(context.Background(), services.GalleryQuery{Code: "ABCD"})
	assert.ErrorIs(t, err, services.ErrOrderNotFound)
}

func TestGalleryService_Resolve_ArchivedCodeExpired(t *testing.T) {
	f := newGalleryFixture()

	_, err := f.svc.Resolve(context.Background(), services.GalleryQuery{Code: "WXYZ"})
	assert.ErrorIs(t, err, services.ErrGalleryExpired)
}

func TestGalleryService_Resolve_ReopenedCodeShowsActiveOrder(t *testing.T) {
	f := newGalleryFixture()
	reopened := f.store.addOrder("WXYZ", "new", nil, time.Date(2025, 4, 1, 0, 0, 0, 0, time.UTC))

	resp, err := f.svc.Resolve(context.Background(), services.GalleryQuery{Code: "WXYZ"})
	require.NoError(t, err)
	assert.Zero(t, resp.Count)
	assert.NotNil(t, resp.Photos)

	_, err = f.svc.Resolve(context.Background(), services.GalleryQuery{OrderID: f.expired.ID.String()})
	assert.ErrorIs(t, err, services.ErrGalleryExpired)

	_, err = f.svc.Resolve(context.Background(), services.GalleryQuery{OrderID: reopened.ID.String()})
	assert.NoError(t, err)
}

func TestGalleryService_Resolve_ByOrderID(t *testing.T) {
	f := newGalleryFixture()

	resp, err := f.svc.Resolve(context.Background(), services.GalleryQuery{OrderID: f.active.ID.String()})
	require.NoError(t, err)
	assert.Equal(t, 2, resp.Count)

	_, err = f.svc.Resolve(context.Background(), services.GalleryQuery{OrderID: f.expired.ID.String()})
	assert.ErrorIs(t, err, services.ErrGalleryExpired)

	_, err = f.svc.Resolve(context.Background(), services.GalleryQuery{OrderID: uuid.NewString()})
	assert.ErrorIs(t, err, services.ErrOrderNotFound)
}

func TestGalleryService_Resolve_OrderIDWinsOverCode(t *testing.T) {
	f := newGalleryFixture()

	_, err := f.svc.Resolve(context.Background(), services.GalleryQuery{
		Code:    "QRST",
		OrderID: f.expired.ID.String(),
	})
	assert.ErrorIs(t, err, services.ErrGalleryExpired)
}

func TestGalleryService_Resolve_InactiveStatusExpired(t *testing.T) {
	f := newGalleryFixture()
	cancelled := f.store.addOrder("CNCL", "cancelled", nil, time.Now())

	_, err := f.svc.Resolve(context.Background(), services.GalleryQuery{OrderID: cancelled.ID.String()})
	assert.ErrorIs(t, err, services.ErrGalleryExpired)

	_, err = f.svc.Resolve(context.Background(), services.GalleryQuery{Code: "CNCL"})
	assert.ErrorIs(t, err, services.ErrGalleryExpired)
}

func TestGalleryService_Resolve_InvalidInput(t *testing.T) {
	f := newGalleryFixture()

	tests := []struct {
		name  string
		query services.GalleryQuery
		want  error
	}{
		{"empty", services.GalleryQuery{}, services.ErrMissingQuery},
		{"whitespace only", services.GalleryQuery{Code: "   "}, services.ErrMissingQuery},
		{"bad characters", services.GalleryQuery{Code: "AB CD"}, services.ErrInvalidCode},
		{"injection attempt", services.GalleryQuery{Code: "x,public_code.neq.y"}, services.ErrInvalidCode},
		{"too long", services.GalleryQuery{Code: strings.Repeat("A", 65)}, services.ErrInvalidCode},
		{"bad uuid", services.GalleryQuery{OrderID: "not-a-uuid"}, services.ErrInvalidOrderID},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := f.svc.Resolve(context.Background(), tt.query)
			assert.ErrorIs(t, err, tt.want)
		})
	}
}

func TestGalleryService_Resolve_TrimsCode(t *testing.T) {
	f := newGalleryFixture()

	resp, err := f.svc.Resolve(context.Background(), services.GalleryQuery{Code: " QRST\n"})
	require.NoError(t, err)
	assert.Equal(t, 2, resp.Count)
}

func TestGalleryService_Resolve_NotConfigured(t *testing.T) {
	svc := services.NewGalleryService(nil, nil, activeStatuses, nil)

	_, err := svc.Resolve(context.Background(), services.GalleryQuery{Code: "QRST"})
	assert.ErrorIs(t, err, services.ErrStoreNotConfigured)
}

func TestGalleryService_Resolve_StoreErrors(t *testing.T) {
	ctrl := gomock.NewController(t)
	store := mocks.NewMockGalleryStore(ctrl)
	objects := mocks.NewMockObjectStore(ctrl)
	svc := services.NewGalleryService(store, objects, activeStatuses, nil)

	t.Run("lookup fails", func(t *testing.T) {
		store.EXPECT().FindActiveOrderByCode(gomock.Any(), "QRST", activeStatuses).
			Return(nil, errors.New("timeout"))

		_, err := svc.Resolve(context.Background(), services.GalleryQuery{Code: "QRST"})
		require.Error(t, err)
		assert.NotErrorIs(t, err, services.ErrOrderNotFound)
		assert.Contains(t, err.Error(), "timeout")
	})

	t.Run("code history fails", func(t *testing.T) {
		store.EXPECT().FindActiveOrderByCode(gomock.Any(), "WXYZ", activeStatuses).
			Return(nil, models.ErrNotFound)
		store.EXPECT().CodeExists(gomock.Any(), "WXYZ").
			Return(false, errors.New("timeout"))

		_, err := svc.Resolve(context.Background(), services.GalleryQuery{Code: "WXYZ"})
		require.Error(t, err)
		assert.NotErrorIs(t, err, services.ErrGalleryExpired)
	})

	t.Run("photo listing fails", func(t *testing.T) {
		order := &models.Order{ID: uuid.New(), PublicCode: "QRST", Status: "ready"}
		store.EXPECT().FindActiveOrderByCode(gomock.Any(), "QRST", activeStatuses).
			Return(order, nil)
		store.EXPECT().ListOrderPhotos(gomock.Any(), order.ID).
			Return(nil, errors.New("timeout"))

		_, err := svc.Resolve(context.Background(), services.GalleryQuery{Code: "QRST"})
		assert.Error(t, err)
	})
}
