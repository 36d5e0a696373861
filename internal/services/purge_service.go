package services

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"
	"go.uber.org/zap"
	"golang.org/x/sync/errgroup"
	"order-photos-backend/internal/batch"
	"order-photos-backend/internal/metrics"
	"order-photos-backend/internal/models"
)

const purgeLockKey = "order_photos:purge_lock"

var ErrStoreNotConfigured = errors.New("store not configured")

type PurgeOptions struct {
	RetentionMonths    int
	OrdersPerRun       int
	OrderIDChunk       int
	PhotosPerLookup    int
	StorageDeleteBatch int
	RowDeleteBatch     int
	LookupConcurrency  int
	LockTTL            time.Duration
}

func DefaultPurgeOptions() PurgeOptions {
	return PurgeOptions{
		RetentionMonths:    12,
		OrdersPerRun:       200,
		OrderIDChunk:       50,
		PhotosPerLookup:    500,
		StorageDeleteBatch: 200,
		RowDeleteBatch:     200,
		LookupConcurrency:  4,
		LockTTL:            10 * time.Minute,
	}
}

type PurgeService struct {
	store   PurgeStore
	objects ObjectStore
	locker  Locker
	opts    PurgeOptions
	log     *zap.Logger
	now     func() time.Time
}

// NewPurgeService wires the purge job. locker may be nil, in which case
// overlapping runs rely on the deletes being idempotent.
func NewPurgeService(store PurgeStore, objects ObjectStore, locker Locker, opts PurgeOptions, log *zap.Logger) *PurgeService {
	if log == nil {
		log = zap.NewNop()
	}
	if opts.LookupConcurrency <= 0 {
		opts.LookupConcurrency = 1
	}
	return &PurgeService{
		store:   store,
		objects: objects,
		locker:  locker,
		opts:    opts,
		log:     log.Named("purge"),
		now:     time.Now,
	}
}

// WithClock replaces the time source used to compute the cutoff.
func (s *PurgeService) WithClock(now func() time.Time) *PurgeService {
	s.now = now
	return s
}

// Cutoff is the archive timestamp below which orders are eligible.
func (s *PurgeService) Cutoff() time.Time {
	return s.now().UTC().AddDate(0, -s.opts.RetentionMonths, 0)
}

// Run performs one bounded sweep. The returned summary is non-nil even when
// an error is returned, so callers can report how far the run got.
func (s *PurgeService) Run(ctx context.Context) (*models.PurgeSummary, error) {
	summary := &models.PurgeSummary{Cutoff: s.Cutoff()}

	if s.store == nil || s.objects == nil {
		metrics.PurgeRunsTotal.WithLabelValues("error").Inc()
		return summary, ErrStoreNotConfigured
	}

	if s.locker != nil {
		token := uuid.NewString()
		acquired, err := s.locker.TryLock(ctx, purgeLockKey, token, s.opts.LockTTL)
		switch {
		case err != nil:
			s.log.Warn("purge lock unavailable, continuing without it", zap.Error(err))
		case !acquired:
			s.log.Info("another purge run holds the lock, skipping")
			metrics.PurgeRunsTotal.WithLabelValues("skipped").Inc()
			summary.OK = true
			summary.Skipped = true
			summary.Note = "another purge run is in progress"
			return summary, nil
		default:
			defer func() {
				if err := s.locker.Unlock(context.WithoutCancel(ctx), purgeLockKey, token); err != nil {
					s.log.Warn("failed to release purge lock", zap.Error(err))
				}
			}()
		}
	}

	if err := s.sweep(ctx, summary); err != nil {
		metrics.PurgeRunsTotal.WithLabelValues("error").Inc()
		s.log.Error("purge run failed",
			zap.Time("cutoff", summary.Cutoff),
			zap.Int("deleted_files", summary.DeletedFiles),
			zap.Int("deleted_rows", summary.DeletedRows),
			zap.Error(err))
		return summary, err
	}

	summary.OK = true
	metrics.PurgeRunsTotal.WithLabelValues("ok").Inc()
	s.log.Info("purge run finished",
		zap.Time("cutoff", summary.Cutoff),
		zap.Int("orders_matched", summary.OrdersMatched),
		zap.Int("photos_matched", summary.PhotosMatched),
		zap.Int("deleted_files", summary.DeletedFiles),
		zap.Int("deleted_rows", summary.DeletedRows),
		zap.Int("kept_rows", summary.KeptRows),
		zap.Int("storage_failures", len(summary.StorageFailures)),
		zap.Bool("order_cap_hit", summary.OrderCapHit))
	return summary, nil
}

func (s *PurgeService) sweep(ctx context.Context, summary *models.PurgeSummary) error {
	orders, err := s.store.ListPurgeCandidates(ctx, summary.Cutoff, s.opts.OrdersPerRun)
	if err != nil {
		return fmt.Errorf("select archived orders: %w", err)
	}
	if len(orders) == 0 {
		summary.Note = "no archived orders older than the retention window"
		return nil
	}

	summary.OrdersMatched = len(orders)
	summary.OrderCapHit = len(orders) >= s.opts.OrdersPerRun

	orderIDs := make([]string, len(orders))
	for i, o := range orders {
		orderIDs[i] = o.ID.String()
	}

	photos, truncated, err := s.collectPhotos(ctx, orderIDs)
	if err != nil {
		return err
	}
	summary.PhotosMatched = len(photos)
	summary.Truncated = truncated

	if len(photos) == 0 {
		summary.Note = "orders matched but have no photo rows"
		return nil
	}

	failed, err := s.removeObjects(ctx, photos, summary)
	if err != nil {
		return err
	}

	if err := s.deleteRows(ctx, photos, failed, summary); err != nil {
		return err
	}

	switch {
	case summary.KeptRows > 0:
		summary.Note = "some storage deletes failed; their rows were kept for the next scheduled run"
	case summary.OrderCapHit:
		summary.Note = "order limit reached; the next scheduled run continues the sweep"
	case summary.Truncated:
		summary.Note = "photo lookup limit reached; the next scheduled run continues the sweep"
	default:
		summary.Note = "all matched photos purged"
	}
	return nil
}

// collectPhotos looks photos up in order id chunks. Chunks may be fetched
// concurrently but results keep chunk order.
func (s *PurgeService) collectPhotos(ctx context.Context, orderIDs []string) ([]models.Photo, bool, error) {
	chunks, err := batch.Split(orderIDs, s.opts.OrderIDChunk)
	if err != nil {
		return nil, false, fmt.Errorf("split order ids: %w", err)
	}

	results := make([][]models.Photo, len(chunks))
	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(s.opts.LookupConcurrency)
	for i, chunk := range chunks {
		g.Go(func() error {
			photos, err := s.store.ListPhotosForOrders(gctx, chunk, s.opts.PhotosPerLookup)
			if err != nil {
				return fmt.Errorf("list photos for order chunk %d/%d: %w", i+1, len(chunks), err)
			}
			results[i] = photos
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return nil, false, err
	}

	var (
		photos    []models.Photo
		truncated bool
	)
	for _, r := range results {
		if len(r) >= s.opts.PhotosPerLookup {
			truncated = true
		}
		photos = append(photos, r...)
	}
	return photos, truncated, nil
}

// removeObjects returns the paths whose objects could not be deleted. A
// failed batch is logged and recorded but does not stop the run. Missing
// objects are not failures for either backend, so every returned path still
// exists in the bucket.
func (s *PurgeService) removeObjects(ctx context.Context, photos []models.Photo, summary *models.PurgeSummary) (map[string]struct{}, error) {
	paths := make([]string, len(photos))
	for i, p := range photos {
		paths[i] = p.Path
	}

	batches, err := batch.Split(paths, s.opts.StorageDeleteBatch)
	if err != nil {
		return nil, fmt.Errorf("split storage paths: %w", err)
	}

	failed := make(map[string]struct{})

	for i, keys := range batches {
		res, err := s.objects.RemoveObjects(ctx, keys)
		summary.DeletedFiles += res.Removed
		metrics.PurgeDeletedFilesTotal.Add(float64(res.Removed))

		if err == nil && len(res.Failed) == 0 {
			continue
		}

		failedKeys := res.Failed
		if len(failedKeys) == 0 {
			// an error without per-key detail leaves the whole batch in doubt
			failedKeys = keys.Values()
		}
		for _, k := range failedKeys {
			failed[k] = struct{}{}
		}

		result := models.BatchResult{
			Batch:      i + 1,
			Requested:  keys.Len(),
			Removed:    res.Removed,
			FailedKeys: failedKeys,
		}
		if err != nil {
			result.Error = err.Error()
		}
		summary.StorageFailures = append(summary.StorageFailures, result)
		metrics.PurgeStorageBatchFailuresTotal.Inc()

		s.log.Warn("storage remove batch failed, continuing",
			zap.Int("batch", i+1),
			zap.Int("batches", len(batches)),
			zap.Int("requested", keys.Len()),
			zap.Int("removed", res.Removed),
			zap.Int("failed", len(res.Failed)),
			zap.Error(err))
	}
	return failed, nil
}

// deleteRows removes photo rows except those whose object is still in the
// bucket. Kept rows keep their order eligible, so a later run retries them.
func (s *PurgeService) deleteRows(ctx context.Context, photos []models.Photo, failed map[string]struct{}, summary *models.PurgeSummary) error {
	ids := make([]string, 0, len(photos))
	for _, p := range photos {
		if _, ok := failed[p.Path]; ok {
			summary.KeptRows++
			continue
		}
		ids = append(ids, p.ID.String())
	}
	if len(ids) == 0 {
		return nil
	}

	batches, err := batch.Split(ids, s.opts.RowDeleteBatch)
	if err != nil {
		return fmt.Errorf("split photo ids: %w", err)
	}

	for i, keys := range batches {
		n, err := s.store.DeletePhotos(ctx, keys)
		if err != nil {
			return fmt.Errorf("delete photo rows batch %d/%d: %w", i+1, len(batches), err)
		}
		summary.DeletedRows += n
		metrics.PurgeDeletedRowsTotal.Add(float64(n))
	}
	return nil
}
