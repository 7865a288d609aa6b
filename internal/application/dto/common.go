// Package dto defines the request and response shapes of the HTTP API.
package dto

import (
	apperrors "github.com/tagpoint/rfid-admin/pkg/errors"
)

// ErrorResponse is the envelope returned for every failed request.
type ErrorResponse struct {
	Error ErrorBody `json:"error"`
}

// ErrorBody carries the machine-readable code and the human message.
type ErrorBody struct {
	Code    string `json:"code"`
	Message string `json:"message"`
}

// NewErrorResponse maps any error to the API envelope. Unknown errors are
// reported as internal without leaking their cause.
func NewErrorResponse(err error) (int, ErrorResponse) {
	if appErr, ok := apperrors.AsAppError(err); ok {
		return appErr.Status, ErrorResponse{Error: ErrorBody{
			Code:    appErr.Code,
			Message: appErr.Message,
		}}
	}
	return 500, ErrorResponse{Error: ErrorBody{
		Code:    apperrors.CodeInternal,
		Message: "internal server error",
	}}
}

// MessageResponse is a minimal acknowledgement body.
type MessageResponse struct {
	Message string `json:"message"`
}
