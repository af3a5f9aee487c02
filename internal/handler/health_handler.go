package handler

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"gstrex/internal/port"
)

// HealthHandler handles health check endpoints.
type HealthHandler struct {
	store port.ExplorerStore
}

// NewHealthHandler creates a new HealthHandler.
func NewHealthHandler(store port.ExplorerStore) *HealthHandler {
	return &HealthHandler{store: store}
}

// Liveness handles GET /healthz
func (h *HealthHandler) Liveness(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{"status": "ok"})
}

// Readiness handles GET /readyz
func (h *HealthHandler) Readiness(c *gin.Context) {
	if err := h.store.Ping(c.Request.Context()); err != nil {
		c.JSON(http.StatusServiceUnavailable, gin.H{"status": "unavailable", "error": "database not reachable"})
		return
	}
	c.JSON(http.StatusOK, gin.H{"status": "ok"})
}
