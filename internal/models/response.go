package models

import "time"

type GalleryPhoto struct {
	ID        string    `json:"id"`
	OrderID   string    `json:"order_id"`
	Path      string    `json:"path"`
	CreatedAt time.Time `json:"created_at"`
	URL       string    `json:"url"`
}

type GalleryResponse struct {
	Count  int            `json:"count"`
	Photos []GalleryPhoto `json:"photos"`
}

// BatchResult describes one storage delete call made by the purge job.
type BatchResult struct {
	Batch      int      `json:"batch"`
	Requested  int      `json:"requested"`
	Removed    int      `json:"removed"`
	FailedKeys []string `json:"failed_keys,omitempty"`
	Error      string   `json:"error,omitempty"`
}

type PurgeSummary struct {
	OK              bool          `json:"ok"`
	Skipped         bool          `json:"skipped,omitempty"`
	Cutoff          time.Time     `json:"cutoff"`
	OrdersMatched   int           `json:"orders_matched"`
	PhotosMatched   int           `json:"photos_matched"`
	DeletedFiles    int           `json:"deleted_files"`
	DeletedRows     int           `json:"deleted_rows"`
	KeptRows        int           `json:"kept_rows"`
	StorageFailures []BatchResult `json:"storage_failures,omitempty"`
	OrderCapHit     bool          `json:"order_cap_hit"`
	Truncated       bool          `json:"truncated"`
	Note            string        `json:"note"`
}

type OrderResponse struct {
	ID         string     `json:"order_id"`
	PublicCode string     `json:"public_code"`
	Status     string     `json:"status"`
	ArchivedAt *time.Time `json:"archived_at"`
	CreatedAt  time.Time  `json:"created_at"`
}

type HealthResponse struct {
	Status      string `json:"status"`
	DataStore   string `json:"data_store"`
	ObjectStore string `json:"object_store"`
	PurgeLock   bool   `json:"purge_lock"`
}
