package handlers

import (
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"github.com/tagpoint/rfid-admin/internal/application/dto"
	"github.com/tagpoint/rfid-admin/internal/application/service"
	"github.com/tagpoint/rfid-admin/internal/domain/repository"
	apperrors "github.com/tagpoint/rfid-admin/pkg/errors"
)

// CardHandler serves RFID card CRUD and the per-tenant asset overview.
type CardHandler struct {
	cards service.CardService
}

func NewCardHandler(cards service.CardService) *CardHandler {
	return &CardHandler{cards: cards}
}

// List handles GET /api/rfid/cards.
func (h *CardHandler) List(c *gin.Context) {
	tenantID, err := tenantQuery(c)
	if err != nil {
		respondError(c, err)
		return
	}
	activeOnly, _ := strconv.ParseBool(c.DefaultQuery("active_only", "false"))

	cards, err := h.cards.List(c.Request.Context(), repository.CardFilter{
		TenantID:   tenantID,
		ActiveOnly: activeOnly,
	})
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, cards)
}

// Get handles GET /api/rfid/cards/:uid.
func (h *CardHandler) Get(c *gin.Context) {
	tenantID, err := tenantQuery(c)
	if err != nil {
		respondError(c, err)
		return
	}

	card, err := h.cards.Get(c.Request.Context(), c.Param("uid"), tenantID)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, card)
}

// Create handles POST /api/rfid/cards.
func (h *CardHandler) Create(c *gin.Context) {
	var req dto.CreateCardRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondError(c, apperrors.ErrInvalidRequest(err.Error()))
		return
	}

	card, err := h.cards.Create(c.Request.Context(), req)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusCreated, card)
}

// Update handles PUT /api/rfid/cards/:uid.
func (h *CardHandler) Update(c *gin.Context) {
	var req dto.UpdateCardRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondError(c, apperrors.ErrInvalidRequest(err.Error()))
		return
	}

	card, err := h.cards.Update(c.Request.Context(), c.Param("uid"), req)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, card)
}

// Delete handles DELETE /api/rfid/cards/:uid.
func (h *CardHandler) Delete(c *gin.Context) {
	tenantID, err := tenantQuery(c)
	if err != nil {
		respondError(c, err)
		return
	}

	if err := h.cards.Delete(c.Request.Context(), c.Param("uid"), tenantID); err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, dto.MessageResponse{Message: "card deleted"})
}

// TenantOverview handles GET /api/rfid/cards/overview/:tenantId.
func (h *CardHandler) TenantOverview(c *gin.Context) {
	tenantID, err := uintParam(c, "tenantId")
	if err != nil {
		respondError(c, err)
		return
	}

	overview, err := h.cards.TenantAssets(c.Request.Context(), tenantID)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, overview)
}
