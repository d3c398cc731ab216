// Package handlers provides HTTP request handlers.
package handlers

import (
	"net/http"
	"time"

	"github.com/gin-gonic/gin"

	"supplierintake/internal/domain/delivery"
)

// HealthHandler provides health check endpoints.
type HealthHandler struct {
	version string
	env     string
	cfg     delivery.Config
	started time.Time
}

// NewHealthHandler creates a new health handler.
func NewHealthHandler(version, env string, cfg delivery.Config) *HealthHandler {
	return &HealthHandler{version: version, env: env, cfg: cfg, started: time.Now()}
}

// Live handles liveness probe (is the process alive?).
// GET /health/live
func (h *HealthHandler) Live(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{
		"status": "ok",
	})
}

// Info returns application information.
// GET /health/info
func (h *HealthHandler) Info(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{
		"app":            "supplierintake",
		"version":        h.version,
		"env":            h.env,
		"uptime_seconds": int64(time.Since(h.started).Seconds()),
		"delivery": gin.H{
			"local_currency":        h.cfg.Currencies.Local,
			"foreign_currency":      h.cfg.Currencies.Foreign,
			"default_vat_rate":      h.cfg.DefaultVATRate,
			"default_exchange_rate": h.cfg.DefaultExchangeRate,
			"default_price_type":    h.cfg.DefaultPriceType,
		},
	})
}
