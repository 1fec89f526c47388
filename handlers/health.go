package handlers

import (
	"net/http"

	"chairbook/utils"

	"github.com/gin-gonic/gin"
)

type HealthHandler struct {
	Status func() utils.HealthStatus
}

// Root handles GET /.
func (h *HealthHandler) Root(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{"data": "API is running"})
}

// Health handles GET /health with the latest dependency snapshot.
func (h *HealthHandler) Health(c *gin.Context) {
	status := h.Status()
	code := http.StatusOK
	if !status.Healthy() {
		code = http.StatusServiceUnavailable
	}
	c.JSON(code, gin.H{"status": status})
}
