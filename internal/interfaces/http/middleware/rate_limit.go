package middleware

import (
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"github.com/tagpoint/rfid-admin/internal/application/dto"
	"github.com/tagpoint/rfid-admin/internal/infrastructure/monitoring"
	"github.com/tagpoint/rfid-admin/internal/infrastructure/ratelimit"
	apperrors "github.com/tagpoint/rfid-admin/pkg/errors"
	"github.com/tagpoint/rfid-admin/pkg/logger"
)

// RateLimit throttles requests per client IP. The limiter itself fails open;
// only an explicit over-limit verdict rejects the request.
func RateLimit(limiter ratelimit.Limiter, metrics *monitoring.Metrics, log logger.Logger) gin.HandlerFunc {
	return func(c *gin.Context) {
		result, err := limiter.Allow(c.Request.Context(), c.ClientIP())
		if err != nil {
			log.Error(c.Request.Context(), "rate limiter failed", err)
			c.Next()
			return
		}

		if result.Limit > 0 {
			c.Header("X-RateLimit-Limit", strconv.Itoa(result.Limit))
			c.Header("X-RateLimit-Remaining", strconv.Itoa(result.Remaining))
		}

		if !result.Allowed {
			path := c.FullPath()
			if path == "" {
				path = "unmatched"
			}
			metrics.RateLimitHits.WithLabelValues(path).Inc()
			log.Warn(c.Request.Context(), "rate limit exceeded",
				logger.String("client_ip", c.ClientIP()),
				logger.String("path", c.Request.URL.Path),
			)
			_, body := dto.NewErrorResponse(apperrors.New(
				apperrors.CodeRateLimited, http.StatusTooManyRequests, "too many requests"))
			c.AbortWithStatusJSON(http.StatusTooManyRequests, body)
			return
		}

		c.Next()
	}
}
