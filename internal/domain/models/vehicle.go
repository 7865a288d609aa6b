package models

import "time"

// Vehicle is a registered vehicle that can hold RFID cards (windshield tags).
type Vehicle struct {
	ID               uint       `gorm:"primaryKey" json:"id"`
	TenantID         uint       `gorm:"not null;index" json:"tenant_id"`
	LicensePlate     string     `gorm:"size:20;uniqueIndex;not null" json:"license_plate"`
	VehicleType      string     `gorm:"size:50" json:"vehicle_type,omitempty"` // car, truck, motorcycle, bus, van
	Make             string     `gorm:"size:50" json:"make,omitempty"`
	Model            string     `gorm:"size:50" json:"model,omitempty"`
	Year             string     `gorm:"size:10" json:"year,omitempty"`
	Color            string     `gorm:"size:30" json:"color,omitempty"`
	OwnerName        string     `gorm:"size:100" json:"owner_name,omitempty"`
	OwnerPhone       string     `gorm:"size:15" json:"owner_phone,omitempty"`
	OwnerEmail       string     `gorm:"size:100" json:"owner_email,omitempty"`
	IsActive         bool       `gorm:"not null" json:"is_active"`
	RegistrationDate *time.Time `json:"registration_date,omitempty"`
	InsuranceExpiry  *time.Time `json:"insurance_expiry,omitempty"`
	Notes            string     `gorm:"type:text" json:"notes,omitempty"`
	CreatedAt        time.Time  `gorm:"autoCreateTime" json:"created_at"`
	UpdatedAt        time.Time  `gorm:"autoUpdateTime" json:"updated_at"`

	Tenant *Tenant `gorm:"foreignKey:TenantID" json:"tenant,omitempty"`
	Cards  []Card  `gorm:"foreignKey:VehicleID" json:"cards,omitempty"`
}

func (Vehicle) TableName() string { return "vehicles" }
