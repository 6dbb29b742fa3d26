package handlers

import (
	"net/http"

	"carwash/utils"

	"github.com/gin-gonic/gin"
)

// HealthHandler reports the booking store's reachability.
type HealthHandler struct {
	Monitor *utils.HealthMonitor
}

// NewHealthHandler creates a HealthHandler over monitor.
func NewHealthHandler(monitor *utils.HealthMonitor) *HealthHandler {
	return &HealthHandler{Monitor: monitor}
}

// HealthCheckHandler handles GET /health.
func (h *HealthHandler) HealthCheckHandler(c *gin.Context) {
	status := h.Monitor.Status()
	if status.CheckedAt.IsZero() {
		status = h.Monitor.Check(c.Request.Context())
	}

	code := http.StatusOK
	state := "ok"
	if !status.Store {
		code = http.StatusServiceUnavailable
		state = "degraded"
	}
	c.JSON(code, gin.H{"status": state, "health": status})
}
