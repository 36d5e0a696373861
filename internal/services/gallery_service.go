package services

import (
	"context"
	"errors"
	"fmt"
	"regexp"
	"slices"
	"strings"

	"github.com/google/uuid"
	"go.uber.org/zap"
	"order-photos-backend/internal/models"
)

var (
	ErrMissingQuery   = errors.New("access code or order id is required")
	ErrInvalidCode    = errors.New("invalid access code")
	ErrInvalidOrderID = errors.New("invalid order id")
	ErrOrderNotFound  = errors.New("order not found")
	// ErrGalleryExpired means the order behind the link exists but is no
	// longer active. Archived and already purged orders look the same.
	ErrGalleryExpired = errors.New("gallery link has expired")
)

var accessCodePattern = regexp.MustCompile(`^[A-Za-z0-9_-]{1,64}$`)

type GalleryQuery struct {
	Code    string
	OrderID string
}

type GalleryService struct {
	store          GalleryStore
	objects        ObjectStore
	activeStatuses []string
	log            *zap.Logger
}

func NewGalleryService(store GalleryStore, objects ObjectStore, activeStatuses []string, log *zap.Logger) *GalleryService {
	if log == nil {
		log = zap.NewNop()
	}
	return &GalleryService{
		store:          store,
		objects:        objects,
		activeStatuses: activeStatuses,
		log:            log.Named("gallery"),
	}
}

// Resolve returns the photo set for the active order identified by q. An
// order id takes precedence over a code when both are given.
func (s *GalleryService) Resolve(ctx context.Context, q GalleryQuery) (*models.GalleryResponse, error) {
	code := strings.TrimSpace(q.Code)
	rawID := strings.TrimSpace(q.OrderID)
	if code == "" && rawID == "" {
		return nil, ErrMissingQuery
	}
	if s.store == nil || s.objects == nil {
		return nil, ErrStoreNotConfigured
	}

	var (
		order *models.Order
		err   error
	)
	if rawID != "" {
		order, err = s.resolveByID(ctx, rawID)
	} else {
		order, err = s.resolveByCode(ctx, code)
	}
	if err != nil {
		return nil, err
	}

	photos, err := s.store.ListOrderPhotos(ctx, order.ID)
	if err != nil {
		return nil, fmt.Errorf("list photos for order %s: %w", order.ID, err)
	}

	resp := &models.GalleryResponse{
		Count:  len(photos),
		Photos: make([]models.GalleryPhoto, len(photos)),
	}
	for i, p := range photos {
		resp.Photos[i] = models.GalleryPhoto{
			ID:        p.ID.String(),
			OrderID:   p.OrderID.String(),
			Path:      p.Path,
			CreatedAt: p.CreatedAt,
			URL:       s.objects.PublicURL(p.Path),
		}
	}
	return resp, nil
}

func (s *GalleryService) resolveByID(ctx context.Context, rawID string) (*models.Order, error) {
	id, err := uuid.Parse(rawID)
	if err != nil {
		return nil, ErrInvalidOrderID
	}

	order, err := s.store.GetOrder(ctx, id)
	if errors.Is(err, models.ErrNotFound) {
		return nil, ErrOrderNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("get order %s: %w", id, err)
	}

	if !s.isActive(order) {
		return nil, ErrGalleryExpired
	}
	return order, nil
}

func (s *GalleryService) resolveByCode(ctx context.Context, code string) (*models.Order, error) {
	if !accessCodePattern.MatchString(code) {
		return nil, ErrInvalidCode
	}

	order, err := s.store.FindActiveOrderByCode(ctx, code, s.activeStatuses)
	if err == nil {
		return order, nil
	}
	if !errors.Is(err, models.ErrNotFound) {
		return nil, fmt.Errorf("find active order for code: %w", err)
	}

	exists, err := s.store.CodeExists(ctx, code)
	if err != nil {
		return nil, fmt.Errorf("check code history: %w", err)
	}
	if exists {
		return nil, ErrGalleryExpired
	}
	return nil, ErrOrderNotFound
}

func (s *GalleryService) isActive(order *models.Order) bool {
	return !order.IsArchived() && slices.Contains(s.activeStatuses, order.Status)
}
