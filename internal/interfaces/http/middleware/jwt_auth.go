// Package middleware holds the gin middleware chain: request IDs, JWT auth,
// rate limiting, and request observability.
package middleware

import (
	"strings"

	"github.com/gin-gonic/gin"

	"github.com/tagpoint/rfid-admin/internal/application/dto"
	"github.com/tagpoint/rfid-admin/internal/application/service"
	apperrors "github.com/tagpoint/rfid-admin/pkg/errors"
)

// ContextKeyUser is the gin context key holding the authenticated claims.
const ContextKeyUser = "auth_user"

// extractBearer pulls the token out of an Authorization header.
func extractBearer(authHeader string) string {
	parts := strings.SplitN(authHeader, " ", 2)
	if len(parts) != 2 || !strings.EqualFold(parts[0], "bearer") {
		return ""
	}
	return strings.TrimSpace(parts[1])
}

// RequireJWT guards a route group with bearer-token authentication.
func RequireJWT(auth service.AuthService) gin.HandlerFunc {
	return func(c *gin.Context) {
		tokenStr := extractBearer(c.GetHeader("Authorization"))
		if tokenStr == "" {
			status, body := dto.NewErrorResponse(apperrors.ErrUnauthorized("missing bearer token"))
			c.AbortWithStatusJSON(status, body)
			return
		}

		claims, err := auth.ValidateToken(tokenStr)
		if err != nil {
			status, body := dto.NewErrorResponse(err)
			c.AbortWithStatusJSON(status, body)
			return
		}

		c.Set(ContextKeyUser, claims)
		c.Next()
	}
}

// CurrentUser returns the claims set by RequireJWT, or nil outside a guarded
// route.
func CurrentUser(c *gin.Context) *service.Claims {
	value, ok := c.Get(ContextKeyUser)
	if !ok {
		return nil
	}
	claims, ok := value.(*service.Claims)
	if !ok {
		return nil
	}
	return claims
}
