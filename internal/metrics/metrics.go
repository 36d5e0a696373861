package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var (
	PurgeRunsTotal = promauto.NewCounterVec(prometheus.CounterOpts{
		Name: "order_photos_purge_runs_total",
		Help: "Purge job invocations by result (ok, skipped, error).",
	},
		[]string{"result"},
	)

	PurgeDeletedFilesTotal = promauto.NewCounter(prometheus.CounterOpts{
		Name: "order_photos_purge_deleted_files_total",
		Help: "Total number of photo objects removed from the object store.",
	})

	PurgeDeletedRowsTotal = promauto.NewCounter(prometheus.CounterOpts{
		Name: "order_photos_purge_deleted_rows_total",
		Help: "Total number of order_photos rows deleted.",
	})

	PurgeStorageBatchFailuresTotal = promauto.NewCounter(prometheus.CounterOpts{
		Name: "order_photos_purge_storage_batch_failures_total",
		Help: "Storage delete batches that reported an error and were skipped.",
	})

	GalleryRequestsTotal = promauto.NewCounterVec(prometheus.CounterOpts{
		Name: "order_photos_gallery_requests_total",
		Help: "Gallery resolutions by outcome (ok, expired, not_found, invalid, error).",
	},
		[]string{"outcome"},
	)
)
