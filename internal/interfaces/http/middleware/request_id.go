package middleware

import (
	"context"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	"github.com/tagpoint/rfid-admin/pkg/constants"
)

// HeaderRequestID is the correlation header honored and echoed by the API.
const HeaderRequestID = "X-Request-ID"

// RequestID assigns every request a correlation ID, reusing the client's
// when present. The ID rides on the request context so the logger picks it
// up everywhere downstream.
func RequestID() gin.HandlerFunc {
	return func(c *gin.Context) {
		requestID := c.GetHeader(HeaderRequestID)
		if requestID == "" {
			requestID = uuid.NewString()
		}

		ctx := context.WithValue(c.Request.Context(), constants.ContextKeyRequestID, requestID)
		c.Request = c.Request.WithContext(ctx)
		c.Header(HeaderRequestID, requestID)
		c.Next()
	}
}
