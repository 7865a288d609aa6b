package handlers

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	gormlogger "gorm.io/gorm/logger"

	"github.com/tagpoint/rfid-admin/internal/application/service"
	"github.com/tagpoint/rfid-admin/internal/domain/models"
	"github.com/tagpoint/rfid-admin/internal/infrastructure/persistence/gormstore"
	"github.com/tagpoint/rfid-admin/pkg/logger"
)

func newErrorLogRouter(t *testing.T) (*gin.Engine, *gorm.DB) {
	t.Helper()
	gin.SetMode(gin.TestMode)

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

	log := logger.NewNop()
	handler := NewErrorLogHandler(service.NewErrorLogService(
		gormstore.NewErrorLogRepository(db, log), log))

	engine := gin.New()
	engine.GET("/api/error-logs", handler.List)
	engine.POST("/api/error-logs", handler.Create)
	engine.GET("/api/error-logs/stats", handler.Stats)
	engine.GET("/api/error-logs/:id", handler.Get)
	engine.PUT("/api/error-logs/:id/resolve", handler.Resolve)
	engine.DELETE("/api/error-logs/:id", handler.Delete)
	return engine, db
}

func putJSON(t *testing.T, engine *gin.Engine, path string, body interface{}) *httptest.ResponseRecorder {
	t.Helper()
	payload, err := json.Marshal(body)
	require.NoError(t, err)
	req := httptest.NewRequest(http.MethodPut, path, bytes.NewReader(payload))
	req.Header.Set("Content-Type", "application/json")
	rec := httptest.NewRecorder()
	engine.ServeHTTP(rec, req)
	return rec
}

func TestErrorLogLifecycle(t *testing.T) {
	engine, _ := newErrorLogRouter(t)

	created := postJSON(t, engine, "/api/error-logs", map[string]interface{}{
		"tenant_id":     1,
		"error_type":    "unknown_reader",
		"error_message": "reader R-GATE-2 missed three heartbeats",
		"reader_id":     "R-GATE-2",
	})
	require.Equal(t, http.StatusCreated, created.Code)

	var entry models.ErrorLog
	require.NoError(t, json.Unmarshal(created.Body.Bytes(), &entry))
	require.NotZero(t, entry.ID)

	list := doGET(t, engine, "/api/error-logs?tenantId=1")
	require.Equal(t, http.StatusOK, list.Code)
	assert.Contains(t, list.Body.String(), "unknown_reader")

	resolve := putJSON(t, engine, "/api/error-logs/1/resolve", map[string]interface{}{
		"resolved_by": "ops",
		"notes":       "reader power-cycled",
	})
	require.Equal(t, http.StatusOK, resolve.Code)

	// A second resolve finds nothing unresolved.
	again := putJSON(t, engine, "/api/error-logs/1/resolve", map[string]interface{}{
		"resolved_by": "ops",
	})
	assert.Equal(t, http.StatusNotFound, again.Code)
}

func TestErrorLogCreateRequiresMessage(t *testing.T) {
	engine, _ := newErrorLogRouter(t)

	rec := postJSON(t, engine, "/api/error-logs", map[string]interface{}{
		"error_type": "unknown_reader",
	})
	assert.Equal(t, http.StatusBadRequest, rec.Code)
}

func TestErrorLogStatsEndpoint(t *testing.T) {
	engine, _ := newErrorLogRouter(t)

	for _, msg := range []string{"first", "second"} {
		rec := postJSON(t, engine, "/api/error-logs", map[string]interface{}{
			"tenant_id":     1,
			"error_type":    "validation_error",
			"error_message": msg,
		})
		require.Equal(t, http.StatusCreated, rec.Code)
	}

	rec := doGET(t, engine, "/api/error-logs/stats?tenantId=1")
	require.Equal(t, http.StatusOK, rec.Code)

	var stats struct {
		Total      int64 `json:"total"`
		Unresolved int64 `json:"unresolved"`
	}
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &stats))
	assert.Equal(t, int64(2), stats.Total)
	assert.Equal(t, int64(2), stats.Unresolved)
}

func TestErrorLogStatsDefaultsToPrimaryTenant(t *testing.T) {
	engine, _ := newErrorLogRouter(t)

	rec := postJSON(t, engine, "/api/error-logs", map[string]interface{}{
		"error_type":    "database_error",
		"error_message": "connection pool exhausted",
	})
	require.Equal(t, http.StatusCreated, rec.Code)

	// No tenantId falls back to tenant 1, the same scope the entry above
	// was defaulted into.
	stats := doGET(t, engine, "/api/error-logs/stats")
	require.Equal(t, http.StatusOK, stats.Code)

	var body struct {
		Total int64 `json:"total"`
	}
	require.NoError(t, json.Unmarshal(stats.Body.Bytes(), &body))
	assert.Equal(t, int64(1), body.Total)
}

func TestErrorLogGetUnknownID(t *testing.T) {
	engine, _ := newErrorLogRouter(t)

	rec := doGET(t, engine, "/api/error-logs/999")
	assert.Equal(t, http.StatusNotFound, rec.Code)

	rec = doGET(t, engine, "/api/error-logs/not-a-number")
	assert.Equal(t, http.StatusBadRequest, rec.Code)
}
