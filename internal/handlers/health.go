package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"order-photos-backend/internal/models"
)

// HealthHandler reports which backends the process was started with. It
// never calls them, so it stays cheap enough for load balancer probes.
type HealthHandler struct {
	info models.HealthResponse
}

func NewHealthHandler(dataStore, objectStore string, purgeLock bool) *HealthHandler {
	if dataStore == "" {
		dataStore = "unconfigured"
	}
	if objectStore == "" {
		objectStore = "unconfigured"
	}
	return &HealthHandler{info: models.HealthResponse{
		Status:      "ok",
		DataStore:   dataStore,
		ObjectStore: objectStore,
		PurgeLock:   purgeLock,
	}}
}

// Health godoc
// @Summary     Health check
// @Description Returns the health status of the API and the configured backends
// @Tags        health
// @Produce     json
// @Success     200 {object} models.HealthResponse
// @Router      /health [get]
func (h *HealthHandler) Health(c *gin.Context) {
	c.JSON(http.StatusOK, h.info)
}
