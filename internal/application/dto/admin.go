package dto

import (
	"time"

	"github.com/tagpoint/rfid-admin/internal/domain/models"
)

// CreateTenantRequest registers a new tenant organization.
type CreateTenantRequest struct {
	TenantCode       string `json:"tenant_code" binding:"required"`
	Name             string `json:"name" binding:"required"`
	Description      string `json:"description"`
	ContactEmail     string `json:"contact_email"`
	ContactPhone     string `json:"contact_phone"`
	Address          string `json:"address"`
	SubscriptionPlan string `json:"subscription_plan"`
	MaxReaders       int    `json:"max_readers"`
	MaxCards         int    `json:"max_cards"`
}

// UpdateTenantRequest carries the mutable tenant fields. Nil means "leave
// unchanged".
type UpdateTenantRequest struct {
	Name             *string `json:"name"`
	Description      *string `json:"description"`
	ContactEmail     *string `json:"contact_email"`
	ContactPhone     *string `json:"contact_phone"`
	Address          *string `json:"address"`
	IsActive         *bool   `json:"is_active"`
	SubscriptionPlan *string `json:"subscription_plan"`
	MaxReaders       *int    `json:"max_readers"`
	MaxCards         *int    `json:"max_cards"`
}

// TenantOverview pairs a tenant with its headline usage numbers.
type TenantOverview struct {
	ID         uint   `json:"id"`
	TenantCode string `json:"tenant_code"`
	Name       string `json:"name"`
	IsActive   bool   `json:"is_active"`
	CardCount  int64  `json:"card_count"`
	EventCount int64  `json:"event_count"`
}

// TenantAssets bundles everything registered under one tenant for the
// overview endpoint.
type TenantAssets struct {
	Tenant   *models.Tenant   `json:"tenant"`
	Cards    []models.Card    `json:"cards"`
	Readers  []models.Reader  `json:"readers"`
	Staff    []models.Staff   `json:"staff"`
	Vehicles []models.Vehicle `json:"vehicles"`
	Summary  AssetSummary     `json:"summary"`
}

// AssetSummary is the headline counts of a tenant overview.
type AssetSummary struct {
	CardCount    int `json:"card_count"`
	ReaderCount  int `json:"reader_count"`
	StaffCount   int `json:"staff_count"`
	VehicleCount int `json:"vehicle_count"`
}

// CreateCardRequest registers an RFID card.
type CreateCardRequest struct {
	TenantID    uint       `json:"tenant_id" binding:"required"`
	CardUID     string     `json:"card_uid" binding:"required"`
	CardType    string     `json:"card_type" binding:"required"`
	StaffID     *uint      `json:"staff_id"`
	VehicleID   *uint      `json:"vehicle_id"`
	Description string     `json:"description"`
	IsActive    *bool      `json:"is_active"`
	IssuedAt    *time.Time `json:"issued_at"`
	ExpiresAt   *time.Time `json:"expires_at"`
}

// UpdateCardRequest carries the mutable card fields.
type UpdateCardRequest struct {
	CardType    *string    `json:"card_type"`
	StaffID     *uint      `json:"staff_id"`
	VehicleID   *uint      `json:"vehicle_id"`
	Description *string    `json:"description"`
	IsActive    *bool      `json:"is_active"`
	ExpiresAt   *time.Time `json:"expires_at"`
}

// CreateReaderRequest registers a reader device.
type CreateReaderRequest struct {
	TenantID      uint   `json:"tenant_id" binding:"required"`
	ReaderID      string `json:"reader_id" binding:"required"`
	Name          string `json:"name" binding:"required"`
	Location      string `json:"location"`
	IPAddress     string `json:"ip_address"`
	MACAddress    string `json:"mac_address"`
	ReaderGroupID *uint  `json:"reader_group_id"`
	Configuration string `json:"configuration"`
}

// UpdateReaderRequest carries the mutable reader fields.
type UpdateReaderRequest struct {
	Name          *string `json:"name"`
	Location      *string `json:"location"`
	IPAddress     *string `json:"ip_address"`
	MACAddress    *string `json:"mac_address"`
	ReaderGroupID *uint   `json:"reader_group_id"`
	Configuration *string `json:"configuration"`
	IsOnline      *bool   `json:"is_online"`
}

// CreateReaderGroupRequest creates a named group of readers.
type CreateReaderGroupRequest struct {
	TenantID    uint   `json:"tenant_id" binding:"required"`
	Name        string `json:"name" binding:"required"`
	Description string `json:"description"`
}

// UpdateReaderGroupRequest carries the mutable group fields.
type UpdateReaderGroupRequest struct {
	Name        *string `json:"name"`
	Description *string `json:"description"`
}

// CreateStaffRequest registers an employee.
type CreateStaffRequest struct {
	TenantID              uint       `json:"tenant_id" binding:"required"`
	EmployeeID            string     `json:"employee_id" binding:"required"`
	FirstName             string     `json:"first_name" binding:"required"`
	LastName              string     `json:"last_name" binding:"required"`
	Email                 string     `json:"email"`
	Phone                 string     `json:"phone"`
	Department            string     `json:"department"`
	Position              string     `json:"position"`
	HireDate              *time.Time `json:"hire_date"`
	EmergencyContactName  string     `json:"emergency_contact_name"`
	EmergencyContactPhone string     `json:"emergency_contact_phone"`
	Notes                 string     `json:"notes"`
}

// UpdateStaffRequest carries the mutable staff fields.
type UpdateStaffRequest struct {
	FirstName             *string `json:"first_name"`
	LastName              *string `json:"last_name"`
	Email                 *string `json:"email"`
	Phone                 *string `json:"phone"`
	Department            *string `json:"department"`
	Position              *string `json:"position"`
	IsActive              *bool   `json:"is_active"`
	EmergencyContactName  *string `json:"emergency_contact_name"`
	EmergencyContactPhone *string `json:"emergency_contact_phone"`
	Notes                 *string `json:"notes"`
}

// CreateVehicleRequest registers a vehicle.
type CreateVehicleRequest struct {
	TenantID         uint       `json:"tenant_id" binding:"required"`
	LicensePlate     string     `json:"license_plate" binding:"required"`
	VehicleType      string     `json:"vehicle_type"`
	Make             string     `json:"make"`
	Model            string     `json:"model"`
	Year             string     `json:"year"`
	Color            string     `json:"color"`
	OwnerName        string     `json:"owner_name"`
	OwnerPhone       string     `json:"owner_phone"`
	OwnerEmail       string     `json:"owner_email"`
	RegistrationDate *time.Time `json:"registration_date"`
	InsuranceExpiry  *time.Time `json:"insurance_expiry"`
	Notes            string     `json:"notes"`
}

// UpdateVehicleRequest carries the mutable vehicle fields.
type UpdateVehicleRequest struct {
	VehicleType     *string    `json:"vehicle_type"`
	Make            *string    `json:"make"`
	Model           *string    `json:"model"`
	Year            *string    `json:"year"`
	Color           *string    `json:"color"`
	OwnerName       *string    `json:"owner_name"`
	OwnerPhone      *string    `json:"owner_phone"`
	OwnerEmail      *string    `json:"owner_email"`
	IsActive        *bool      `json:"is_active"`
	InsuranceExpiry *time.Time `json:"insurance_expiry"`
	Notes           *string    `json:"notes"`
}

// ErrorLogQuery filters the error-log listing.
type ErrorLogQuery struct {
	TenantID  *uint  `form:"tenantId"`
	ErrorType string `form:"error_type"`
	Resolved  *bool  `form:"resolved"`
	StartDate string `form:"start_date"`
	EndDate   string `form:"end_date"`
	Limit     int    `form:"limit,default=50"`
	Offset    int    `form:"offset"`
}

// ResolveErrorLogRequest marks an error-log entry handled.
type ResolveErrorLogRequest struct {
	ResolvedBy string `json:"resolved_by" binding:"required"`
	Notes      string `json:"notes"`
}

// PagedErrorLogs is one page of error-log entries.
type PagedErrorLogs struct {
	Data       []models.ErrorLog `json:"data"`
	Total      int64             `json:"total"`
	Page       int               `json:"page"`
	TotalPages int               `json:"totalPages"`
}
