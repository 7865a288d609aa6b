package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/tagpoint/rfid-admin/internal/application/dto"
	"github.com/tagpoint/rfid-admin/internal/application/service"
	apperrors "github.com/tagpoint/rfid-admin/pkg/errors"
)

// ActivityLogHandler serves the activity-log listing and ingestion
// endpoints.
type ActivityLogHandler struct {
	logs service.ActivityLogService
}

func NewActivityLogHandler(logs service.ActivityLogService) *ActivityLogHandler {
	return &ActivityLogHandler{logs: logs}
}

// List handles GET /api/rfid/logs.
func (h *ActivityLogHandler) List(c *gin.Context) {
	var query dto.LogQuery
	if err := c.ShouldBindQuery(&query); err != nil {
		respondError(c, apperrors.ErrInvalidRequest("invalid query parameters"))
		return
	}

	page, err := h.logs.GetLogs(c.Request.Context(), query)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, page)
}

// Create handles POST /api/rfid/logs.
func (h *ActivityLogHandler) Create(c *gin.Context) {
	var req dto.IngestEventRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondError(c, apperrors.ErrInvalidRequest(err.Error()))
		return
	}

	event, err := h.logs.CreateLog(c.Request.Context(), req)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusCreated, event)
}
