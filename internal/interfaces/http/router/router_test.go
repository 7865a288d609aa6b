package router

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	gormlogger "gorm.io/gorm/logger"

	"github.com/prometheus/client_golang/prometheus"

	"github.com/tagpoint/rfid-admin/internal/application/dto"
	"github.com/tagpoint/rfid-admin/internal/application/service"
	"github.com/tagpoint/rfid-admin/internal/config"
	"github.com/tagpoint/rfid-admin/internal/infrastructure/events"
	"github.com/tagpoint/rfid-admin/internal/infrastructure/monitoring"
	"github.com/tagpoint/rfid-admin/internal/infrastructure/persistence/gormstore"
	"github.com/tagpoint/rfid-admin/internal/infrastructure/ratelimit"
	"github.com/tagpoint/rfid-admin/internal/interfaces/http/handlers"
	"github.com/tagpoint/rfid-admin/internal/interfaces/http/middleware"
	"github.com/tagpoint/rfid-admin/pkg/logger"
)

// newTestRouter wires the full route table over an in-memory database, the
// same way the serve command does in production.
func newTestRouter(t *testing.T) *Router {
	t.Helper()

	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{
		Logger:                                   gormlogger.Default.LogMode(gormlogger.Silent),
		DisableForeignKeyConstraintWhenMigrating: true,
		TranslateError:                           true,
	})
	require.NoError(t, err)
	sqlDB, err := db.DB()
	require.NoError(t, err)
	sqlDB.SetMaxOpenConns(1)
	require.NoError(t, gormstore.Migrate(db))

	hash, err := bcrypt.GenerateFromPassword([]byte("hunter2"), bcrypt.MinCost)
	require.NoError(t, err)

	cfg := &config.Config{
		Auth: config.AuthConfig{
			JWTSecret:         "test-secret",
			TokenTTL:          60,
			AdminUsername:     "admin",
			AdminPasswordHash: string(hash),
		},
	}

	log := logger.NewNop()
	metrics := monitoring.NewMetrics(prometheus.NewRegistry())

	eventRepo := gormstore.NewAccessEventRepository(db, log)
	cardRepo := gormstore.NewCardRepository(db, log)
	readerRepo := gormstore.NewReaderRepository(db, log)
	groupRepo := gormstore.NewReaderGroupRepository(db, log)
	tenantRepo := gormstore.NewTenantRepository(db, log)
	staffRepo := gormstore.NewStaffRepository(db, log)
	vehicleRepo := gormstore.NewVehicleRepository(db, log)
	errorLogRepo := gormstore.NewErrorLogRepository(db, log)

	auth := service.NewAuthService(cfg.Auth, log)

	r := New(cfg, log, metrics, ratelimit.NewNopLimiter(),
		middleware.RequireJWT(auth),
		Handlers{
			Health:      handlers.NewHealthHandler(db, nil),
			Auth:        handlers.NewAuthHandler(auth),
			ActivityLog: handlers.NewActivityLogHandler(service.NewActivityLogService(eventRepo, events.NewNopPublisher(), log, nil)),
			Stats:       handlers.NewStatsHandler(service.NewStatsService(eventRepo, log)),
			Card:        handlers.NewCardHandler(service.NewCardService(cardRepo, readerRepo, staffRepo, vehicleRepo, tenantRepo, log)),
			Reader:      handlers.NewReaderHandler(service.NewReaderService(readerRepo, groupRepo, log)),
			Tenant:      handlers.NewTenantHandler(service.NewTenantService(tenantRepo, cardRepo, eventRepo, log)),
			Staff:       handlers.NewStaffHandler(service.NewStaffService(staffRepo, log)),
			Vehicle:     handlers.NewVehicleHandler(service.NewVehicleService(vehicleRepo, log)),
			ErrorLog:    handlers.NewErrorLogHandler(service.NewErrorLogService(errorLogRepo, log)),
		})
	r.SetupRoutes()
	return r
}

func loginToken(t *testing.T, r *Router) string {
	t.Helper()
	payload, err := json.Marshal(dto.LoginRequest{Username: "admin", Password: "hunter2"})
	require.NoError(t, err)
	req := httptest.NewRequest(http.MethodPost, "/api/auth/login", bytes.NewReader(payload))
	req.Header.Set("Content-Type", "application/json")
	rec := httptest.NewRecorder()
	r.Engine().ServeHTTP(rec, req)
	require.Equal(t, http.StatusOK, rec.Code)

	var resp dto.LoginResponse
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
	return resp.AccessToken
}

func TestHealthEndpointsAreUnauthenticated(t *testing.T) {
	r := newTestRouter(t)

	rec := httptest.NewRecorder()
	r.Engine().ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/health/live", nil))
	assert.Equal(t, http.StatusOK, rec.Code)

	rec = httptest.NewRecorder()
	r.Engine().ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/health/ready", nil))
	assert.Equal(t, http.StatusOK, rec.Code)
}

func TestAPIRequiresAuthentication(t *testing.T) {
	r := newTestRouter(t)

	for _, path := range []string{
		"/api/rfid/logs",
		"/api/rfid/stats",
		"/api/rfid/cards",
		"/api/tenants",
		"/api/error-logs",
	} {
		rec := httptest.NewRecorder()
		r.Engine().ServeHTTP(rec, httptest.NewRequest(http.MethodGet, path, nil))
		assert.Equal(t, http.StatusUnauthorized, rec.Code, "path %s", path)
	}
}

func TestAuthorizedRequestFlowsThrough(t *testing.T) {
	r := newTestRouter(t)
	token := loginToken(t, r)

	req := httptest.NewRequest(http.MethodGet, "/api/rfid/logs", nil)
	req.Header.Set("Authorization", "Bearer "+token)
	rec := httptest.NewRecorder()
	r.Engine().ServeHTTP(rec, req)
	require.Equal(t, http.StatusOK, rec.Code)

	var page dto.PagedEvents
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &page))
	assert.Zero(t, page.Total)
	assert.NotNil(t, page.Data)
}

func TestUnknownRouteReturnsJSON404(t *testing.T) {
	r := newTestRouter(t)

	rec := httptest.NewRecorder()
	r.Engine().ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/nope", nil))
	assert.Equal(t, http.StatusNotFound, rec.Code)
	assert.Contains(t, rec.Body.String(), "NOT_FOUND")
}

func TestMetricsEndpointExposed(t *testing.T) {
	r := newTestRouter(t)

	rec := httptest.NewRecorder()
	r.Engine().ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/metrics", nil))
	assert.Equal(t, http.StatusOK, rec.Code)
}
