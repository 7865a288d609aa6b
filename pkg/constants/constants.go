// Package constants defines shared enumerations and defaults for the RFID
// admin service.
package constants

// EventType classifies a recorded scan event.
type EventType string

const (
	EventTypeScan   EventType = "scan"
	EventTypeEntry  EventType = "entry"
	EventTypeExit   EventType = "exit"
	EventTypeDenied EventType = "denied"
)

// CardType classifies what an RFID card is assigned to.
type CardType string

const (
	CardTypeStaff   CardType = "staff"
	CardTypeVehicle CardType = "vehicle"
	CardTypeVisitor CardType = "visitor"
	CardTypeGuest   CardType = "guest"
)

// ErrorLogType classifies an entry in the error log.
type ErrorLogType string

const (
	ErrorTypeMQTTParse     ErrorLogType = "mqtt_parse_error"
	ErrorTypeDatabase      ErrorLogType = "database_error"
	ErrorTypeValidation    ErrorLogType = "validation_error"
	ErrorTypeUnknownReader ErrorLogType = "unknown_reader"
	ErrorTypeUnknownCard   ErrorLogType = "unknown_card"
	ErrorTypeGeneral       ErrorLogType = "general_error"
)

// ErrorLogTypes lists every known error log type, in display order.
var ErrorLogTypes = []ErrorLogType{
	ErrorTypeMQTTParse,
	ErrorTypeDatabase,
	ErrorTypeValidation,
	ErrorTypeUnknownReader,
	ErrorTypeUnknownCard,
	ErrorTypeGeneral,
}

// Pagination defaults shared by every list endpoint.
const (
	DefaultPageLimit = 50
	MaxPageLimit     = 500
)

// DefaultTenantID scopes requests that do not name a tenant. Tenant 1 is
// created at install time and owns single-tenant deployments.
const DefaultTenantID uint = 1

// ContextKey is the type used for values stored on a request context.
type ContextKey string

const (
	// ContextKeyRequestID carries the per-request correlation ID.
	ContextKeyRequestID ContextKey = "request_id"
)
