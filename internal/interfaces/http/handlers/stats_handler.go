package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/tagpoint/rfid-admin/internal/application/dto"
	"github.com/tagpoint/rfid-admin/internal/application/service"
	apperrors "github.com/tagpoint/rfid-admin/pkg/errors"
)

// StatsHandler serves the scan-statistics endpoints.
type StatsHandler struct {
	stats service.StatsService
}

func NewStatsHandler(stats service.StatsService) *StatsHandler {
	return &StatsHandler{stats: stats}
}

// Get handles GET /api/rfid/stats.
func (h *StatsHandler) Get(c *gin.Context) {
	var query dto.LogQuery
	if err := c.ShouldBindQuery(&query); err != nil {
		respondError(c, apperrors.ErrInvalidRequest("invalid query parameters"))
		return
	}

	snapshot, err := h.stats.GetStats(c.Request.Context(), query)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, snapshot)
}

// Dashboard handles GET /api/rfid/stats/dashboard.
func (h *StatsHandler) Dashboard(c *gin.Context) {
	tenantID, err := tenantQuery(c)
	if err != nil {
		respondError(c, err)
		return
	}

	stats, err := h.stats.GetDashboardStats(c.Request.Context(), tenantID)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, stats)
}

// Daily handles GET /api/rfid/stats/daily.
func (h *StatsHandler) Daily(c *gin.Context) {
	startDate := c.Query("start_date")
	endDate := c.Query("end_date")
	if startDate == "" || endDate == "" {
		respondError(c, apperrors.ErrInvalidRequest("start_date and end_date are required"))
		return
	}
	tenantID, err := tenantQuery(c)
	if err != nil {
		respondError(c, err)
		return
	}

	stats, err := h.stats.GetStatsByDateRange(c.Request.Context(), startDate, endDate, tenantID)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, stats)
}
