package models

import (
	"time"

	"github.com/google/uuid"
)

// Order is a service order as stored in the orders table. ArchivedAt is nil
// while the order is active and is set exactly once when it is closed.
type Order struct {
	ID         uuid.UUID  `json:"id"`
	PublicCode string     `json:"public_code"`
	Status     string     `json:"status"`
	ArchivedAt *time.Time `json:"archived_at"`
	CreatedAt  time.Time  `json:"created_at"`
}

func (o *Order) IsArchived() bool {
	return o.ArchivedAt != nil
}

// Photo is a row of order_photos. Path is the object key inside the bucket,
// never a URL.
type Photo struct {
	ID        uuid.UUID `json:"id"`
	OrderID   uuid.UUID `json:"order_id"`
	Path      string    `json:"path"`
	CreatedAt time.Time `json:"created_at"`
}

// RemoveResult is what an object store reports for one batch delete call.
type RemoveResult struct {
	Removed int
	Failed  []string
}
