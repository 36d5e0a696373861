package services

import (
	"context"
	"errors"
	"fmt"
	"slices"
	"time"

	"github.com/google/uuid"
	"go.uber.org/zap"
	"order-photos-backend/internal/models"
)

var (
	ErrAlreadyArchived = errors.New("order is already archived")
	ErrNotArchived     = errors.New("order is not archived")
	// ErrAlreadyActive means the code already has an active order, usually
	// from an earlier reopen.
	ErrAlreadyActive = errors.New("an active order already uses this code")
)

const defaultReopenStatus = "new"

// OrderService owns the archive transition. Archiving is permanent: a
// reopened order is a fresh row that reuses the public code, so archived_at
// never moves once set.
type OrderService struct {
	store          OrderStore
	activeStatuses []string
	reopenStatus   string
	log            *zap.Logger
	now            func() time.Time
}

func NewOrderService(store OrderStore, activeStatuses []string, log *zap.Logger) *OrderService {
	if log == nil {
		log = zap.NewNop()
	}
	status := defaultReopenStatus
	if len(activeStatuses) > 0 && !slices.Contains(activeStatuses, status) {
		status = activeStatuses[0]
	}
	return &OrderService{
		store:          store,
		activeStatuses: activeStatuses,
		reopenStatus:   status,
		log:            log.Named("orders"),
		now:            time.Now,
	}
}

func (s *OrderService) WithClock(now func() time.Time) *OrderService {
	s.now = now
	return s
}

func (s *OrderService) Archive(ctx context.Context, id uuid.UUID) (*models.Order, error) {
	if s.store == nil {
		return nil, ErrStoreNotConfigured
	}

	order, err := s.getOrder(ctx, id)
	if err != nil {
		return nil, err
	}
	if order.IsArchived() {
		return nil, ErrAlreadyArchived
	}

	at := s.now().UTC()
	updated, err := s.store.ArchiveOrder(ctx, id, at)
	if err != nil {
		return nil, fmt.Errorf("archive order %s: %w", id, err)
	}
	if !updated {
		// lost a race with another archive call
		return nil, ErrAlreadyArchived
	}

	order.ArchivedAt = &at
	s.log.Info("order archived", zap.String("order_id", id.String()), zap.String("public_code", order.PublicCode))
	return order, nil
}

// Reopen creates a new active order carrying the archived order's code. It
// refuses when the code already has an active order.
func (s *OrderService) Reopen(ctx context.Context, id uuid.UUID) (*models.Order, error) {
	if s.store == nil {
		return nil, ErrStoreNotConfigured
	}

	previous, err := s.getOrder(ctx, id)
	if err != nil {
		return nil, err
	}
	if !previous.IsArchived() {
		return nil, ErrNotArchived
	}

	statuses := s.activeStatuses
	if len(statuses) == 0 {
		statuses = []string{s.reopenStatus}
	}
	active, err := s.store.FindActiveOrderByCode(ctx, previous.PublicCode, statuses)
	switch {
	case err == nil:
		s.log.Info("code already has an active order, not reopening",
			zap.String("previous_order_id", previous.ID.String()),
			zap.String("active_order_id", active.ID.String()))
		return nil, ErrAlreadyActive
	case !errors.Is(err, models.ErrNotFound):
		return nil, fmt.Errorf("find active order for code: %w", err)
	}

	order := &models.Order{
		ID:         uuid.New(),
		PublicCode: previous.PublicCode,
		Status:     s.reopenStatus,
		CreatedAt:  s.now().UTC(),
	}
	if err := s.store.CreateOrder(ctx, order); err != nil {
		return nil, fmt.Errorf("create reopened order: %w", err)
	}

	s.log.Info("order reopened",
		zap.String("previous_order_id", previous.ID.String()),
		zap.String("order_id", order.ID.String()),
		zap.String("public_code", order.PublicCode))
	return order, nil
}

func (s *OrderService) getOrder(ctx context.Context, id uuid.UUID) (*models.Order, error) {
	order, err := s.store.GetOrder(ctx, id)
	if errors.Is(err, models.ErrNotFound) {
		return nil, ErrOrderNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("get order %s: %w", id, err)
	}
	return order, nil
}
