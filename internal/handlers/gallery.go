package handlers

import (
	"context"
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
	"order-photos-backend/internal/metrics"
	"order-photos-backend/internal/models"
	"order-photos-backend/internal/services"
)

type GalleryResolver interface {
	Resolve(ctx context.Context, q services.GalleryQuery) (*models.GalleryResponse, error)
}

type GalleryHandler struct {
	resolver GalleryResolver
	log      *zap.Logger
}

func NewGalleryHandler(resolver GalleryResolver, log *zap.Logger) *GalleryHandler {
	if log == nil {
		log = zap.NewNop()
	}
	return &GalleryHandler{resolver: resolver, log: log}
}

// GetOrderPhotos godoc
// @Summary     Resolve a gallery link
// @Description Returns the photos of the active order behind an access code or order id. Links to archived or purged orders answer 410.
// @Tags        gallery
// @Produce     json
// @Param       code query string false "Public access code"
// @Param       id   query string false "Order UUID (wins over code)"
// @Success     200 {object} models.GalleryResponse
// @Failure     400 {object} models.ErrorResponse
// @Failure     404 {object} models.ErrorResponse
// @Failure     410 {object} models.ErrorResponse
// @Failure     500 {object} models.ErrorResponse
// @Router      /order-photos [get]
func (h *GalleryHandler) GetOrderPhotos(c *gin.Context) {
	if h.resolver == nil {
		metrics.GalleryRequestsTotal.WithLabelValues("error").Inc()
		c.JSON(http.StatusInternalServerError, models.ErrorResponse{
			Error:   "missing_env",
			Message: "gallery is not configured",
		})
		return
	}

	resp, err := h.resolver.Resolve(c.Request.Context(), services.GalleryQuery{
		Code:    c.Query("code"),
		OrderID: c.Query("id"),
	})
	if err != nil {
		status, body, outcome := galleryError(err)
		metrics.GalleryRequestsTotal.WithLabelValues(outcome).Inc()
		if status >= http.StatusInternalServerError {
			h.log.Error("gallery resolve failed", zap.Error(err))
			_ = c.Error(err)
		}
		c.JSON(status, body)
		return
	}

	metrics.GalleryRequestsTotal.WithLabelValues("ok").Inc()
	c.JSON(http.StatusOK, resp)
}

func galleryError(err error) (int, models.ErrorResponse, string) {
	switch {
	case errors.Is(err, services.ErrMissingQuery):
		return http.StatusBadRequest, models.ErrorResponse{
			Error:   "invalid_request",
			Message: "provide ?id=ORDER_UUID or ?code=ACCESS_CODE",
		}, "invalid"
	case errors.Is(err, services.ErrInvalidCode), errors.Is(err, services.ErrInvalidOrderID):
		return http.StatusBadRequest, models.ErrorResponse{
			Error:   "invalid_request",
			Message: err.Error(),
		}, "invalid"
	case errors.Is(err, services.ErrOrderNotFound):
		return http.StatusNotFound, models.ErrorResponse{
			Error:   "not_found",
			Message: "no order matches this link",
		}, "not_found"
	case errors.Is(err, services.ErrGalleryExpired):
		return http.StatusGone, models.ErrorResponse{
			Error:   "expired",
			Message: "this gallery link has expired because the order was closed",
		}, "expired"
	case errors.Is(err, services.ErrStoreNotConfigured):
		return http.StatusInternalServerError, models.ErrorResponse{
			Error:   "missing_env",
			Message: "SUPABASE_URL / SUPABASE_SERVICE_ROLE_KEY are not set",
		}, "error"
	default:
		return http.StatusInternalServerError, models.ErrorResponse{
			Error:   "server_error",
			Message: err.Error(),
		}, "error"
	}
}
