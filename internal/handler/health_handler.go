package handler

import (
	"net/http"
	"sync/atomic"

	"github.com/gin-gonic/gin"
)

type HealthHandler struct {
	backendHealthy *atomic.Bool
}

func NewHealthHandler(backendHealthy *atomic.Bool) *HealthHandler {
	return &HealthHandler{backendHealthy: backendHealthy}
}

func (h *HealthHandler) GetHealth(c *gin.Context) {
	if !h.backendHealthy.Load() {
		c.JSON(http.StatusServiceUnavailable, gin.H{
			"status":  "unhealthy",
			"backend": "unreachable",
		})
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"status":  "healthy",
		"backend": "reachable",
	})
}
