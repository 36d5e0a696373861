package supabase

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"
	postgrest "github.com/supabase-community/postgrest-go"
	"order-photos-backend/internal/batch"
	"order-photos-backend/internal/models"
)

const (
	ordersTable = "orders"
	photosTable = "order_photos"

	orderColumns = "id,public_code,status,archived_at,created_at"
	photoColumns = "id,order_id,path,created_at"
)

// RestClient implements the order and photo stores on top of PostgREST.
// The PostgREST client has no context support, so ctx is only checked
// before each request.
type RestClient struct {
	client *Client
}

func NewRestClient(client *Client) *RestClient {
	return &RestClient{client: client}
}

func (r *RestClient) from(table string) *postgrest.QueryBuilder {
	return r.client.From(table)
}

// ListPurgeCandidates embeds order_photos with an inner join so that orders
// whose photos are already gone drop out of the oldest-first window.
// lt on archived_at also excludes null values.
func (r *RestClient) ListPurgeCandidates(ctx context.Context, cutoff time.Time, limit int) ([]models.Order, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	var orders []models.Order
	_, err := r.from(ordersTable).
		Select(orderColumns+",order_photos!inner(id)", "", false).
		Lt("archived_at", formatTime(cutoff)).
		Order("archived_at", &postgrest.OrderOpts{Ascending: true}).
		Limit(limit, "").
		Limit(1, photosTable).
		ExecuteTo(&orders)
	if err != nil {
		return nil, fmt.Errorf("failed to list purge candidates: %w", err)
	}
	return orders, nil
}

func (r *RestClient) ListPhotosForOrders(ctx context.Context, orderIDs batch.Keys, limit int) ([]models.Photo, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	if orderIDs.Len() == 0 {
		return nil, nil
	}

	var photos []models.Photo
	_, err := r.from(photosTable).
		Select(photoColumns, "", false).
		In("order_id", orderIDs.Values()).
		Limit(limit, "").
		ExecuteTo(&photos)
	if err != nil {
		return nil, fmt.Errorf("failed to list photos: %w", err)
	}
	return photos, nil
}

func (r *RestClient) DeletePhotos(ctx context.Context, photoIDs batch.Keys) (int, error) {
	if err := ctx.Err(); err != nil {
		return 0, err
	}
	if photoIDs.Len() == 0 {
		return 0, nil
	}

	_, count, err := r.from(photosTable).
		Delete("minimal", "exact").
		In("id", photoIDs.Values()).
		Execute()
	if err != nil {
		return 0, fmt.Errorf("failed to delete photos: %w", err)
	}
	return int(count), nil
}

func (r *RestClient) GetOrder(ctx context.Context, id uuid.UUID) (*models.Order, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	var orders []models.Order
	_, err := r.from(ordersTable).
		Select(orderColumns, "", false).
		Eq("id", id.String()).
		Limit(1, "").
		ExecuteTo(&orders)
	if err != nil {
		return nil, fmt.Errorf("failed to get order: %w", err)
	}
	if len(orders) == 0 {
		return nil, models.ErrNotFound
	}
	return &orders[0], nil
}

func (r *RestClient) FindActiveOrderByCode(ctx context.Context, code string, statuses []string) (*models.Order, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	var orders []models.Order
	_, err := r.from(ordersTable).
		Select(orderColumns, "", false).
		Eq("public_code", code).
		In("status", statuses).
		Is("archived_at", "null").
		Order("created_at", &postgrest.OrderOpts{Ascending: false}).
		Limit(1, "").
		ExecuteTo(&orders)
	if err != nil {
		return nil, fmt.Errorf("failed to find order by code: %w", err)
	}
	if len(orders) == 0 {
		return nil, models.ErrNotFound
	}
	return &orders[0], nil
}

func (r *RestClient) CodeExists(ctx context.Context, code string) (bool, error) {
	if err := ctx.Err(); err != nil {
		return false, err
	}

	var rows []struct {
		ID uuid.UUID `json:"id"`
	}
	_, err := r.from(ordersTable).
		Select("id", "", false).
		Eq("public_code", code).
		Limit(1, "").
		ExecuteTo(&rows)
	if err != nil {
		return false, fmt.Errorf("failed to look up code: %w", err)
	}
	return len(rows) > 0, nil
}

func (r *RestClient) ListOrderPhotos(ctx context.Context, orderID uuid.UUID) ([]models.Photo, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	var photos []models.Photo
	_, err := r.from(photosTable).
		Select(photoColumns, "", false).
		Eq("order_id", orderID.String()).
		Order("created_at", &postgrest.OrderOpts{Ascending: false}).
		ExecuteTo(&photos)
	if err != nil {
		return nil, fmt.Errorf("failed to list order photos: %w", err)
	}
	return photos, nil
}

func (r *RestClient) ArchiveOrder(ctx context.Context, id uuid.UUID, at time.Time) (bool, error) {
	if err := ctx.Err(); err != nil {
		return false, err
	}

	_, count, err := r.from(ordersTable).
		Update(map[string]string{"archived_at": formatTime(at)}, "minimal", "exact").
		Eq("id", id.String()).
		Is("archived_at", "null").
		Execute()
	if err != nil {
		return false, fmt.Errorf("failed to archive order: %w", err)
	}
	return count > 0, nil
}

func (r *RestClient) CreateOrder(ctx context.Context, order *models.Order) error {
	if err := ctx.Err(); err != nil {
		return err
	}

	row := map[string]interface{}{
		"id":          order.ID.String(),
		"public_code": order.PublicCode,
		"status":      order.Status,
		"archived_at": nil,
		"created_at":  formatTime(order.CreatedAt),
	}
	_, _, err := r.from(ordersTable).
		Insert(row, false, "", "minimal", "").
		Execute()
	if err != nil {
		return fmt.Errorf("failed to create order: %w", err)
	}
	return nil
}

func formatTime(t time.Time) string {
	return t.UTC().Format(time.RFC3339Nano)
}
