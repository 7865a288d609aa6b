package middleware

import (
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/alicebob/miniredis/v2"
	"github.com/gin-gonic/gin"
	"github.com/redis/go-redis/v9"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/tagpoint/rfid-admin/internal/infrastructure/monitoring"
	"github.com/tagpoint/rfid-admin/internal/infrastructure/ratelimit"
	"github.com/tagpoint/rfid-admin/pkg/logger"

	"github.com/prometheus/client_golang/prometheus"
)

func newLimitedEngine(t *testing.T, limit int) *gin.Engine {
	t.Helper()
	gin.SetMode(gin.TestMode)

	mr := miniredis.RunT(t)
	client := redis.NewClient(&redis.Options{Addr: mr.Addr()})
	t.Cleanup(func() { client.Close() })

	limiter := ratelimit.NewRedisLimiter(client, limit, time.Minute, logger.NewNop())
	metrics := monitoring.NewMetrics(prometheus.NewRegistry())

	engine := gin.New()
	engine.Use(RateLimit(limiter, metrics, logger.NewNop()))
	engine.GET("/", func(c *gin.Context) { c.Status(http.StatusOK) })
	return engine
}

func TestRateLimitAllowsUnderTheLimit(t *testing.T) {
	engine := newLimitedEngine(t, 3)

	for i := 0; i < 3; i++ {
		rec := httptest.NewRecorder()
		engine.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/", nil))
		require.Equal(t, http.StatusOK, rec.Code, "request %d", i+1)
		assert.Equal(t, "3", rec.Header().Get("X-RateLimit-Limit"))
	}
}

func TestRateLimitBlocksOverTheLimit(t *testing.T) {
	engine := newLimitedEngine(t, 2)

	for i := 0; i < 2; i++ {
		rec := httptest.NewRecorder()
		engine.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/", nil))
		require.Equal(t, http.StatusOK, rec.Code)
	}

	rec := httptest.NewRecorder()
	engine.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/", nil))
	assert.Equal(t, http.StatusTooManyRequests, rec.Code)
	assert.Contains(t, rec.Body.String(), "rate_limit_exceeded")
}
