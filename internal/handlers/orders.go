package handlers

import (
	"context"
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"go.uber.org/zap"
	"order-photos-backend/internal/middleware"
	"order-photos-backend/internal/models"
	"order-photos-backend/internal/services"
)

type OrderLifecycle interface {
	Archive(ctx context.Context, id uuid.UUID) (*models.Order, error)
	Reopen(ctx context.Context, id uuid.UUID) (*models.Order, error)
}

type OrdersHandler struct {
	orders OrderLifecycle
	log    *zap.Logger
}

func NewOrdersHandler(orders OrderLifecycle, log *zap.Logger) *OrdersHandler {
	if log == nil {
		log = zap.NewNop()
	}
	return &OrdersHandler{orders: orders, log: log}
}

// ArchiveOrder godoc
// @Summary     Archive an order
// @Description Closes the order. Its gallery link expires immediately and its photos become eligible for purge once the retention window passes.
// @Tags        orders
// @Produce     json
// @Security    Bearer
// @Param       order_id path string true "Order ID"
// @Success     200 {object} models.OrderResponse
// @Failure     400 {object} models.ErrorResponse
// @Failure     401 {object} models.ErrorResponse
// @Failure     404 {object} models.ErrorResponse
// @Failure     409 {object} models.ErrorResponse
// @Failure     500 {object} models.ErrorResponse
// @Router      /orders/{order_id}/archive [post]
func (h *OrdersHandler) ArchiveOrder(c *gin.Context) {
	if !h.configured(c) {
		return
	}
	h.transition(c, "archive", h.orders.Archive)
}

// ReopenOrder godoc
// @Summary     Reopen an archived order
// @Description Creates a new active order that reuses the archived order's public code. The archived order keeps its archive timestamp.
// @Tags        orders
// @Produce     json
// @Security    Bearer
// @Param       order_id path string true "Archived order ID"
// @Success     201 {object} models.OrderResponse
// @Failure     400 {object} models.ErrorResponse
// @Failure     401 {object} models.ErrorResponse
// @Failure     404 {object} models.ErrorResponse
// @Failure     409 {object} models.ErrorResponse
// @Failure     500 {object} models.ErrorResponse
// @Router      /orders/{order_id}/reopen [post]
func (h *OrdersHandler) ReopenOrder(c *gin.Context) {
	if !h.configured(c) {
		return
	}
	h.transition(c, "reopen", h.orders.Reopen)
}

func (h *OrdersHandler) configured(c *gin.Context) bool {
	if h.orders == nil {
		c.JSON(http.StatusInternalServerError, models.ErrorResponse{Error: "missing_env", Message: "data store is not configured"})
		return false
	}
	return true
}

func (h *OrdersHandler) transition(c *gin.Context, action string, fn func(context.Context, uuid.UUID) (*models.Order, error)) {
	orderID, err := uuid.Parse(c.Param("order_id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, models.ErrorResponse{Error: "invalid order id"})
		return
	}

	order, err := fn(c.Request.Context(), orderID)
	switch {
	case errors.Is(err, services.ErrOrderNotFound):
		c.JSON(http.StatusNotFound, models.ErrorResponse{Error: "order not found"})
		return
	case errors.Is(err, services.ErrAlreadyArchived), errors.Is(err, services.ErrNotArchived),
		errors.Is(err, services.ErrAlreadyActive):
		c.JSON(http.StatusConflict, models.ErrorResponse{Error: "conflict", Message: err.Error()})
		return
	case errors.Is(err, services.ErrStoreNotConfigured):
		c.JSON(http.StatusInternalServerError, models.ErrorResponse{Error: "missing_env", Message: "data store is not configured"})
		return
	case err != nil:
		_ = c.Error(err)
		c.JSON(http.StatusInternalServerError, models.ErrorResponse{Error: "failed to " + action + " order", Message: err.Error()})
		return
	}

	h.log.Info("order "+action,
		zap.String("order_id", order.ID.String()),
		zap.String("staff_id", c.GetString(middleware.UserIDKey)))

	status := http.StatusOK
	if action == "reopen" {
		status = http.StatusCreated
	}
	c.JSON(status, toOrderResponse(order))
}

func toOrderResponse(o *models.Order) models.OrderResponse {
	return models.OrderResponse{
		ID:         o.ID.String(),
		PublicCode: o.PublicCode,
		Status:     o.Status,
		ArchivedAt: o.ArchivedAt,
		CreatedAt:  o.CreatedAt,
	}
}
