package supabase

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/lib/pq"
	"order-photos-backend/internal/batch"
	"order-photos-backend/internal/models"
)

// DatabaseClient implements the same stores as RestClient over a direct
// PostgreSQL connection to the Supabase database.
type DatabaseClient struct {
	db *sql.DB
}

func NewDatabaseClient(connectionString string) (*DatabaseClient, error) {
	db, err := sql.Open("postgres", connectionString)
	if err != nil {
		return nil, fmt.Errorf("failed to open database: %w", err)
	}

	db.SetMaxOpenConns(10)
	db.SetMaxIdleConns(5)
	db.SetConnMaxLifetime(5 * time.Minute)

	if err := db.Ping(); err != nil {
		db.Close()
		return nil, fmt.Errorf("failed to ping database: %w", err)
	}

	return NewDatabaseClientFromDB(db), nil
}

func NewDatabaseClientFromDB(db *sql.DB) *DatabaseClient {
	return &DatabaseClient{db: db}
}

func (d *DatabaseClient) ListPurgeCandidates(ctx context.Context, cutoff time.Time, limit int) ([]models.Order, error) {
	rows, err := d.db.QueryContext(ctx, `
		SELECT o.id, o.public_code, o.status, o.archived_at, o.created_at
		FROM orders o
		WHERE o.archived_at IS NOT NULL
		  AND o.archived_at < $1
		  AND EXISTS (SELECT 1 FROM order_photos p WHERE p.order_id = o.id)
		ORDER BY o.archived_at ASC
		LIMIT $2
	`, cutoff, limit)
	if err != nil {
		return nil, fmt.Errorf("failed to list purge candidates: %w", err)
	}
	defer rows.Close()

	return scanOrders(rows)
}

func (d *DatabaseClient) ListPhotosForOrders(ctx context.Context, orderIDs batch.Keys, limit int) ([]models.Photo, error) {
	if orderIDs.Len() == 0 {
		return nil, nil
	}

	rows, err := d.db.QueryContext(ctx, `
		SELECT id, order_id, path, created_at
		FROM order_photos
		WHERE order_id = ANY($1::uuid[])
		LIMIT $2
	`, pq.Array(orderIDs.Values()), limit)
	if err != nil {
		return nil, fmt.Errorf("failed to list photos: %w", err)
	}
	defer rows.Close()

	return scanPhotos(rows)
}

func (d *DatabaseClient) DeletePhotos(ctx context.Context, photoIDs batch.Keys) (int, error) {
	if photoIDs.Len() == 0 {
		return 0, nil
	}

	res, err := d.db.ExecContext(ctx, `
		DELETE FROM order_photos
		WHERE id = ANY($1::uuid[])
	`, pq.Array(photoIDs.Values()))
	if err != nil {
		return 0, fmt.Errorf("failed to delete photos: %w", err)
	}

	n, err := res.RowsAffected()
	if err != nil {
		return 0, fmt.Errorf("failed to read deleted row count: %w", err)
	}
	return int(n), nil
}

func (d *DatabaseClient) GetOrder(ctx context.Context, id uuid.UUID) (*models.Order, error) {
	order, err := scanOrder(d.db.QueryRowContext(ctx, `
		SELECT id, public_code, status, archived_at, created_at
		FROM orders
		WHERE id = $1
	`, id))
	if errors.Is(err, sql.ErrNoRows) {
		return nil, models.ErrNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("failed to get order: %w", err)
	}
	return order, nil
}

func (d *DatabaseClient) FindActiveOrderByCode(ctx context.Context, code string, statuses []string) (*models.Order, error) {
	order, err := scanOrder(d.db.QueryRowContext(ctx, `
		SELECT id, public_code, status, archived_at, created_at
		FROM orders
		WHERE public_code = $1
		  AND status = ANY($2)
		  AND archived_at IS NULL
		ORDER BY created_at DESC
		LIMIT 1
	`, code, pq.Array(statuses)))
	if errors.Is(err, sql.ErrNoRows) {
		return nil, models.ErrNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("failed to find order by code: %w", err)
	}
	return order, nil
}

func (d *DatabaseClient) CodeExists(ctx context.Context, code string) (bool, error) {
	var exists bool
	err := d.db.QueryRowContext(ctx, `
		SELECT EXISTS (SELECT 1 FROM orders WHERE public_code = $1)
	`, code).Scan(&exists)
	if err != nil {
		return false, fmt.Errorf("failed to look up code: %w", err)
	}
	return exists, nil
}

func (d *DatabaseClient) ListOrderPhotos(ctx context.Context, orderID uuid.UUID) ([]models.Photo, error) {
	rows, err := d.db.QueryContext(ctx, `
		SELECT id, order_id, path, created_at
		FROM order_photos
		WHERE order_id = $1
		ORDER BY created_at DESC
	`, orderID)
	if err != nil {
		return nil, fmt.Errorf("failed to list order photos: %w", err)
	}
	defer rows.Close()

	return scanPhotos(rows)
}

func (d *DatabaseClient) ArchiveOrder(ctx context.Context, id uuid.UUID, at time.Time) (bool, error) {
	res, err := d.db.ExecContext(ctx, `
		UPDATE orders
		SET archived_at = $1
		WHERE id = $2 AND archived_at IS NULL
	`, at, id)
	if err != nil {
		return false, fmt.Errorf("failed to archive order: %w", err)
	}

	n, err := res.RowsAffected()
	if err != nil {
		return false, fmt.Errorf("failed to read archived row count: %w", err)
	}
	return n > 0, nil
}

func (d *DatabaseClient) CreateOrder(ctx context.Context, order *models.Order) error {
	_, err := d.db.ExecContext(ctx, `
		INSERT INTO orders (id, public_code, status, archived_at, created_at)
		VALUES ($1, $2, $3, $4, $5)
	`, order.ID, order.PublicCode, order.Status, order.ArchivedAt, order.CreatedAt)
	if err != nil {
		return fmt.Errorf("failed to create order: %w", err)
	}
	return nil
}

// DB exposes the pool so migrations share the connection.
func (d *DatabaseClient) DB() *sql.DB {
	return d.db
}

func (d *DatabaseClient) Close() error {
	return d.db.Close()
}

type rowScanner interface {
	Scan(dest ...interface{}) error
}

func scanOrder(row rowScanner) (*models.Order, error) {
	var (
		order      models.Order
		archivedAt sql.NullTime
	)
	if err := row.Scan(&order.ID, &order.PublicCode, &order.Status, &archivedAt, &order.CreatedAt); err != nil {
		return nil, err
	}
	if archivedAt.Valid {
		t := archivedAt.Time
		order.ArchivedAt = &t
	}
	return &order, nil
}

func scanOrders(rows *sql.Rows) ([]models.Order, error) {
	var orders []models.Order
	for rows.Next() {
		order, err := scanOrder(rows)
		if err != nil {
			return nil, fmt.Errorf("failed to scan order: %w", err)
		}
		orders = append(orders, *order)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to iterate orders: %w", err)
	}
	return orders, nil
}

func scanPhotos(rows *sql.Rows) ([]models.Photo, error) {
	var photos []models.Photo
	for rows.Next() {
		var photo models.Photo
		if err := rows.Scan(&photo.ID, &photo.OrderID, &photo.Path, &photo.CreatedAt); err != nil {
			return nil, fmt.Errorf("failed to scan photo: %w", err)
		}
		photos = append(photos, photo)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to iterate photos: %w", err)
	}
	return photos, nil
}
