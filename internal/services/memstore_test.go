package services_test

import (
	"context"
	"errors"
	"slices"
	"sort"
	"sync"
	"time"

	"github.com/google/uuid"
	"order-photos-backend/internal/batch"
	"order-photos-backend/internal/models"
)

// memStore is an in-memory orders/order_photos pair that behaves like the
// real stores: lookups are bounded and deletes of missing ids are no-ops.
type memStore struct {
	mu     sync.Mutex
	orders []models.Order
	photos []models.Photo
}

func newMemStore() *memStore {
	return &memStore{}
}

func (m *memStore) addOrder(code, status string, archivedAt *time.Time, createdAt time.Time) models.Order {
	m.mu.Lock()
	defer m.mu.Unlock()
	o := models.Order{
		ID:         uuid.New(),
		PublicCode: code,
		Status:     status,
		ArchivedAt: archivedAt,
		CreatedAt:  createdAt,
	}
	m.orders = append(m.orders, o)
	return o
}

func (m *memStore) addPhoto(orderID uuid.UUID, path string, createdAt time.Time) models.Photo {
	m.mu.Lock()
	defer m.mu.Unlock()
	p := models.Photo{ID: uuid.New(), OrderID: orderID, Path: path, CreatedAt: createdAt}
	m.photos = append(m.photos, p)
	return p
}

func (m *memStore) photoCount(orderID uuid.UUID) int {
	m.mu.Lock()
	defer m.mu.Unlock()
	n := 0
	for _, p := range m.photos {
		if p.OrderID == orderID {
			n++
		}
	}
	return n
}

func (m *memStore) hasPhotos(orderID uuid.UUID) bool {
	for _, p := range m.photos {
		if p.OrderID == orderID {
			return true
		}
	}
	return false
}

func (m *memStore) ListPurgeCandidates(ctx context.Context, cutoff time.Time, limit int) ([]models.Order, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	var out []models.Order
	for _, o := range m.orders {
		if o.ArchivedAt != nil && o.ArchivedAt.Before(cutoff) && m.hasPhotos(o.ID) {
			out = append(out, o)
		}
	}
	sort.Slice(out, func(i, j int) bool { return out[i].ArchivedAt.Before(*out[j].ArchivedAt) })
	if len(out) > limit {
		out = out[:limit]
	}
	return out, nil
}

func (m *memStore) ListPhotosForOrders(ctx context.Context, orderIDs batch.Keys, limit int) ([]models.Photo, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	ids := orderIDs.Values()
	var out []models.Photo
	for _, p := range m.photos {
		if len(out) == limit {
			break
		}
		if slices.Contains(ids, p.OrderID.String()) {
			out = append(out, p)
		}
	}
	return out, nil
}

func (m *memStore) DeletePhotos(ctx context.Context, photoIDs batch.Keys) (int, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	ids := photoIDs.Values()
	kept := m.photos[:0]
	deleted := 0
	for _, p := range m.photos {
		if slices.Contains(ids, p.ID.String()) {
			deleted++
			continue
		}
		kept = append(kept, p)
	}
	m.photos = kept
	return deleted, nil
}

func (m *memStore) GetOrder(ctx context.Context, id uuid.UUID) (*models.Order, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	for _, o := range m.orders {
		if o.ID == id {
			o := o
			return &o, nil
		}
	}
	return nil, models.ErrNotFound
}

func (m *memStore) FindActiveOrderByCode(ctx context.Context, code string, statuses []string) (*models.Order, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	var found *models.Order
	for i := range m.orders {
		o := m.orders[i]
		if o.PublicCode != code || o.ArchivedAt != nil || !slices.Contains(statuses, o.Status) {
			continue
		}
		if found == nil || o.CreatedAt.After(found.CreatedAt) {
			found = &o
		}
	}
	if found == nil {
		return nil, models.ErrNotFound
	}
	return found, nil
}

func (m *memStore) CodeExists(ctx context.Context, code string) (bool, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	for _, o := range m.orders {
		if o.PublicCode == code {
			return true, nil
		}
	}
	return false, nil
}

func (m *memStore) ListOrderPhotos(ctx context.Context, orderID uuid.UUID) ([]models.Photo, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	var out []models.Photo
	for _, p := range m.photos {
		if p.OrderID == orderID {
			out = append(out, p)
		}
	}
	sort.Slice(out, func(i, j int) bool { return out[i].CreatedAt.After(out[j].CreatedAt) })
	return out, nil
}

func (m *memStore) ArchiveOrder(ctx context.Context, id uuid.UUID, at time.Time) (bool, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	for i := range m.orders {
		if m.orders[i].ID == id && m.orders[i].ArchivedAt == nil {
			m.orders[i].ArchivedAt = &at
			return true, nil
		}
	}
	return false, nil
}

func (m *memStore) CreateOrder(ctx context.Context, order *models.Order) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.orders = append(m.orders, *order)
	return nil
}

// memObjects omits missing keys from the removed count, like Supabase
// Storage does.
type memObjects struct {
	mu      sync.Mutex
	objects map[string]bool
	failing map[string]bool
	calls   int
}

func newMemObjects() *memObjects {
	return &memObjects{objects: map[string]bool{}, failing: map[string]bool{}}
}

func (m *memObjects) put(path string) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.objects[path] = true
}

func (m *memObjects) exists(path string) bool {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.objects[path]
}

func (m *memObjects) RemoveObjects(ctx context.Context, paths batch.Keys) (models.RemoveResult, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.calls++
	keys := paths.Values()
	for _, k := range keys {
		if m.failing[k] {
			return models.RemoveResult{Failed: keys}, errors.New("storage unavailable")
		}
	}
	removed := 0
	for _, k := range keys {
		if m.objects[k] {
			delete(m.objects, k)
			removed++
		}
	}
	return models.RemoveResult{Removed: removed}, nil
}

func (m *memObjects) PublicURL(path string) string {
	return "https://cdn.test/order-photos/" + path
}
