package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/tagpoint/rfid-admin/internal/application/dto"
	"github.com/tagpoint/rfid-admin/internal/application/service"
	apperrors "github.com/tagpoint/rfid-admin/pkg/errors"
)

// ReaderHandler serves reader and reader-group CRUD plus the heartbeat endpoint.
type ReaderHandler struct {
	readers service.ReaderService
}

func NewReaderHandler(readers service.ReaderService) *ReaderHandler {
	return &ReaderHandler{readers: readers}
}

// List handles GET /api/rfid/readers.
func (h *ReaderHandler) List(c *gin.Context) {
	tenantID, err := tenantQuery(c)
	if err != nil {
		respondError(c, err)
		return
	}

	readers, err := h.readers.List(c.Request.Context(), tenantID)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, readers)
}

// Get handles GET /api/rfid/readers/:readerId.
func (h *ReaderHandler) Get(c *gin.Context) {
	tenantID, err := tenantQuery(c)
	if err != nil {
		respondError(c, err)
		return
	}

	reader, err := h.readers.Get(c.Request.Context(), c.Param("readerId"), tenantID)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, reader)
}

// Create handles POST /api/rfid/readers.
func (h *ReaderHandler) Create(c *gin.Context) {
	var req dto.CreateReaderRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondError(c, apperrors.ErrInvalidRequest(err.Error()))
		return
	}

	reader, err := h.readers.Create(c.Request.Context(), req)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusCreated, reader)
}

// Update handles PUT /api/rfid/readers/:readerId.
func (h *ReaderHandler) Update(c *gin.Context) {
	var req dto.UpdateReaderRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondError(c, apperrors.ErrInvalidRequest(err.Error()))
		return
	}

	reader, err := h.readers.Update(c.Request.Context(), c.Param("readerId"), req)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, reader)
}

// Delete handles DELETE /api/rfid/readers/:readerId.
func (h *ReaderHandler) Delete(c *gin.Context) {
	tenantID, err := tenantQuery(c)
	if err != nil {
		respondError(c, err)
		return
	}

	if err := h.readers.Delete(c.Request.Context(), c.Param("readerId"), tenantID); err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, dto.MessageResponse{Message: "reader deleted"})
}

// Heartbeat handles POST /api/rfid/readers/:readerId/heartbeat.
func (h *ReaderHandler) Heartbeat(c *gin.Context) {
	if err := h.readers.Heartbeat(c.Request.Context(), c.Param("readerId")); err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, dto.MessageResponse{Message: "heartbeat recorded"})
}

// ListGroups handles GET /api/rfid/reader-groups.
func (h *ReaderHandler) ListGroups(c *gin.Context) {
	tenantID, err := tenantQuery(c)
	if err != nil {
		respondError(c, err)
		return
	}

	groups, err := h.readers.ListGroups(c.Request.Context(), tenantID)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, groups)
}

// GetGroup handles GET /api/rfid/reader-groups/:id.
func (h *ReaderHandler) GetGroup(c *gin.Context) {
	id, err := uintParam(c, "id")
	if err != nil {
		respondError(c, err)
		return
	}

	group, err := h.readers.GetGroup(c.Request.Context(), id)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, group)
}

// CreateGroup handles POST /api/rfid/reader-groups.
func (h *ReaderHandler) CreateGroup(c *gin.Context) {
	var req dto.CreateReaderGroupRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondError(c, apperrors.ErrInvalidRequest(err.Error()))
		return
	}

	group, err := h.readers.CreateGroup(c.Request.Context(), req)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusCreated, group)
}

// UpdateGroup handles PUT /api/rfid/reader-groups/:id.
func (h *ReaderHandler) UpdateGroup(c *gin.Context) {
	id, err := uintParam(c, "id")
	if err != nil {
		respondError(c, err)
		return
	}

	var req dto.UpdateReaderGroupRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondError(c, apperrors.ErrInvalidRequest(err.Error()))
		return
	}

	group, err := h.readers.UpdateGroup(c.Request.Context(), id, req.Name, req.Description)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, group)
}

// DeleteGroup handles DELETE /api/rfid/reader-groups/:id.
func (h *ReaderHandler) DeleteGroup(c *gin.Context) {
	id, err := uintParam(c, "id")
	if err != nil {
		respondError(c, err)
		return
	}

	if err := h.readers.DeleteGroup(c.Request.Context(), id); err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, dto.MessageResponse{Message: "reader group deleted"})
}
