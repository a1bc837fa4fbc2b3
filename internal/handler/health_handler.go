package handler

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"tailor/internal/config"
)

// HealthHandler handles health check endpoints.
type HealthHandler struct {
	genCfg *config.GeneratorConfig
}

// NewHealthHandler creates a new HealthHandler.
func NewHealthHandler(genCfg *config.GeneratorConfig) *HealthHandler {
	return &HealthHandler{genCfg: genCfg}
}

// Liveness handles GET /healthz
func (h *HealthHandler) Liveness(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{"status": "ok"})
}

// Readiness handles GET /readyz
func (h *HealthHandler) Readiness(c *gin.Context) {
	if h.genCfg.Primary.APIKey == "" {
		c.JSON(http.StatusServiceUnavailable, gin.H{"status": "unavailable", "error": "no generator API key configured"})
		return
	}
	c.JSON(http.StatusOK, gin.H{"status": "ok"})
}
