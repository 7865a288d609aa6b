package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/tagpoint/rfid-admin/internal/application/dto"
	"github.com/tagpoint/rfid-admin/internal/application/service"
	"github.com/tagpoint/rfid-admin/internal/interfaces/http/middleware"
	apperrors "github.com/tagpoint/rfid-admin/pkg/errors"
)

// AuthHandler serves login and profile.
type AuthHandler struct {
	auth service.AuthService
}

func NewAuthHandler(auth service.AuthService) *AuthHandler {
	return &AuthHandler{auth: auth}
}

// Login handles POST /api/auth/login.
func (h *AuthHandler) Login(c *gin.Context) {
	var req dto.LoginRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondError(c, apperrors.ErrInvalidRequest("username and password are required"))
		return
	}

	resp, err := h.auth.Login(c.Request.Context(), req)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, resp)
}

// Profile handles GET /api/auth/profile.
func (h *AuthHandler) Profile(c *gin.Context) {
	claims := middleware.CurrentUser(c)
	if claims == nil {
		respondError(c, apperrors.ErrUnauthorized("not authenticated"))
		return
	}
	c.JSON(http.StatusOK, dto.ProfileResponse{
		Username: claims.Username,
		Role:     claims.Role,
	})
}
