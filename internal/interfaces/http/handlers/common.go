// Package handlers translates HTTP requests into application-service calls
// and application errors into HTTP responses.
package handlers

import (
	"strconv"

	"github.com/gin-gonic/gin"

	"github.com/tagpoint/rfid-admin/internal/application/dto"
	apperrors "github.com/tagpoint/rfid-admin/pkg/errors"
)

// respondError writes the canonical error envelope.
func respondError(c *gin.Context, err error) {
	status, body := dto.NewErrorResponse(err)
	c.JSON(status, body)
}

// uintParam parses a numeric path parameter.
func uintParam(c *gin.Context, name string) (uint, error) {
	raw := c.Param(name)
	value, err := strconv.ParseUint(raw, 10, 32)
	if err != nil {
		return 0, apperrors.ErrInvalidRequest("invalid " + name + ": " + raw)
	}
	return uint(value), nil
}

// tenantQuery parses the optional tenantId query parameter.
func tenantQuery(c *gin.Context) (*uint, error) {
	raw := c.Query("tenantId")
	if raw == "" {
		return nil, nil
	}
	value, err := strconv.ParseUint(raw, 10, 32)
	if err != nil {
		return nil, apperrors.ErrInvalidRequest("invalid tenantId: " + raw)
	}
	id := uint(value)
	return &id, nil
}
