package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/tagpoint/rfid-admin/internal/application/dto"
	"github.com/tagpoint/rfid-admin/internal/application/service"
	"github.com/tagpoint/rfid-admin/internal/domain/models"
	apperrors "github.com/tagpoint/rfid-admin/pkg/errors"
)

// ErrorLogHandler serves the device error-log endpoints.
type ErrorLogHandler struct {
	errorLogs service.ErrorLogService
}

func NewErrorLogHandler(errorLogs service.ErrorLogService) *ErrorLogHandler {
	return &ErrorLogHandler{errorLogs: errorLogs}
}

// List handles GET /api/error-logs.
func (h *ErrorLogHandler) List(c *gin.Context) {
	var query dto.ErrorLogQuery
	if err := c.ShouldBindQuery(&query); err != nil {
		respondError(c, apperrors.ErrInvalidRequest("invalid query parameters"))
		return
	}

	page, err := h.errorLogs.List(c.Request.Context(), query)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, page)
}

// Get handles GET /api/error-logs/:id.
func (h *ErrorLogHandler) Get(c *gin.Context) {
	id, err := uintParam(c, "id")
	if err != nil {
		respondError(c, err)
		return
	}

	entry, err := h.errorLogs.Get(c.Request.Context(), id)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, entry)
}

// Create handles POST /api/error-logs. Devices report failures here.
func (h *ErrorLogHandler) Create(c *gin.Context) {
	var entry models.ErrorLog
	if err := c.ShouldBindJSON(&entry); err != nil {
		respondError(c, apperrors.ErrInvalidRequest(err.Error()))
		return
	}

	if err := h.errorLogs.Create(c.Request.Context(), &entry); err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusCreated, entry)
}

// Stats handles GET /api/error-logs/stats.
func (h *ErrorLogHandler) Stats(c *gin.Context) {
	tenantID, err := tenantQuery(c)
	if err != nil {
		respondError(c, err)
		return
	}
	var scope uint
	if tenantID != nil {
		scope = *tenantID
	}

	stats, err := h.errorLogs.Stats(c.Request.Context(), scope)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, stats)
}

// Resolve handles PUT /api/error-logs/:id/resolve.
func (h *ErrorLogHandler) Resolve(c *gin.Context) {
	id, err := uintParam(c, "id")
	if err != nil {
		respondError(c, err)
		return
	}

	var req dto.ResolveErrorLogRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondError(c, apperrors.ErrInvalidRequest(err.Error()))
		return
	}

	if err := h.errorLogs.Resolve(c.Request.Context(), id, req); err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, dto.MessageResponse{Message: "error log resolved"})
}

// Delete handles DELETE /api/error-logs/:id.
func (h *ErrorLogHandler) Delete(c *gin.Context) {
	id, err := uintParam(c, "id")
	if err != nil {
		respondError(c, err)
		return
	}

	if err := h.errorLogs.Delete(c.Request.Context(), id); err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, dto.MessageResponse{Message: "error log deleted"})
}
