package middleware

import (
	"strconv"
	"time"

	"github.com/gin-gonic/gin"

	"supplierintake/internal/infrastructure/metrics"
)

// Metrics instruments requests with counters and latency histograms.
// A nil m disables instrumentation.
func Metrics(m *metrics.HTTPMetrics) gin.HandlerFunc {
	return func(c *gin.Context) {
		if m == nil {
			c.Next()
			return
		}

		m.InFlight.Inc()
		defer m.InFlight.Dec()

		start := time.Now()
		c.Next()

		route := c.FullPath()
		if route == "" {
			route = "unknown"
		}
		status := strconv.Itoa(c.Writer.Status())
		m.ReqTotal.WithLabelValues(c.Request.Method, route, status).Inc()
		m.ReqDur.WithLabelValues(c.Request.Method, route).Observe(metrics.DurationMillis(time.Since(start)))
	}
}
