package handlers

import (
	"context"
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
	"order-photos-backend/internal/models"
	"order-photos-backend/internal/services"
)

type Purger interface {
	Run(ctx context.Context) (*models.PurgeSummary, error)
}

type CleanupHandler struct {
	purger Purger
	log    *zap.Logger
}

func NewCleanupHandler(purger Purger, log *zap.Logger) *CleanupHandler {
	if log == nil {
		log = zap.NewNop()
	}
	return &CleanupHandler{purger: purger, log: log}
}

// CleanupOrderPhotos godoc
// @Summary     Purge photos of long-archived orders
// @Description Runs one bounded retention sweep: removes storage objects and photo rows of orders archived before the retention cutoff. Called by the scheduler with the shared cron secret.
// @Tags        cron
// @Produce     json
// @Param       X-Cron-Secret header string false "Shared cron secret"
// @Param       secret query string false "Shared cron secret"
// @Success     200 {object} models.PurgeSummary
// @Failure     401 {object} models.PurgeErrorResponse
// @Failure     500 {object} models.PurgeErrorResponse
// @Router      /cron/cleanup-order-photos [get]
// @Router      /cron/cleanup-order-photos [post]
func (h *CleanupHandler) CleanupOrderPhotos(c *gin.Context) {
	if h.purger == nil {
		c.JSON(http.StatusInternalServerError, models.PurgeErrorResponse{
			Error:  "missing_env",
			Detail: "purge job is not configured",
		})
		return
	}

	summary, err := h.purger.Run(c.Request.Context())
	if errors.Is(err, services.ErrStoreNotConfigured) {
		c.JSON(http.StatusInternalServerError, models.PurgeErrorResponse{
			Error:  "missing_env",
			Detail: "SUPABASE_URL / SUPABASE_SERVICE_ROLE_KEY (or DATABASE_URL) are not set",
		})
		return
	}
	if err != nil {
		h.log.Error("purge trigger failed", zap.Error(err))
		_ = c.Error(err)
		c.JSON(http.StatusInternalServerError, models.PurgeErrorResponse{
			Error:  "server_error",
			Detail: err.Error(),
		})
		return
	}

	c.JSON(http.StatusOK, summary)
}
