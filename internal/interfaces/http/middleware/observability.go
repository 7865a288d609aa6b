package middleware

import (
	"strconv"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/tagpoint/rfid-admin/internal/infrastructure/monitoring"
	"github.com/tagpoint/rfid-admin/pkg/logger"
)

// Observability records Prometheus metrics and an access log line for every
// request. Metric paths use the route template so cardinality stays bounded.
func Observability(metrics *monitoring.Metrics, log logger.Logger) gin.HandlerFunc {
	return func(c *gin.Context) {
		start := time.Now()

		c.Next()

		duration := time.Since(start)
		status := c.Writer.Status()
		path := c.FullPath()
		if path == "" {
			path = "unmatched"
		}

		metrics.HTTPRequestsTotal.WithLabelValues(c.Request.Method, path, strconv.Itoa(status)).Inc()
		metrics.HTTPRequestDuration.WithLabelValues(c.Request.Method, path).Observe(duration.Seconds())

		fields := []logger.Field{
			logger.String("method", c.Request.Method),
			logger.String("path", c.Request.URL.Path),
			logger.Int("status", status),
			logger.Duration("duration", duration),
			logger.String("client_ip", c.ClientIP()),
		}
		if status >= 500 {
			log.Error(c.Request.Context(), "request failed", nil, fields...)
		} else {
			log.Info(c.Request.Context(), "request completed", fields...)
		}
	}
}
