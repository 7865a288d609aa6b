package models

import "time"

// Staff is an employee who can hold one or more RFID cards.
type Staff struct {
	ID                    uint       `gorm:"primaryKey" json:"id"`
	TenantID              uint       `gorm:"not null;index" json:"tenant_id"`
	EmployeeID            string     `gorm:"size:50;uniqueIndex;not null" json:"employee_id"`
	FirstName             string     `gorm:"size:100;not null" json:"first_name"`
	LastName              string     `gorm:"size:100;not null" json:"last_name"`
	Email                 string     `gorm:"size:100" json:"email,omitempty"`
	Phone                 string     `gorm:"size:20" json:"phone,omitempty"`
	Department            string     `gorm:"size:100" json:"department,omitempty"`
	Position              string     `gorm:"size:100" json:"position,omitempty"`
	HireDate              *time.Time `json:"hire_date,omitempty"`
	IsActive              bool       `gorm:"not null" json:"is_active"`
	EmergencyContactName  string     `gorm:"size:100" json:"emergency_contact_name,omitempty"`
	EmergencyContactPhone string     `gorm:"size:20" json:"emergency_contact_phone,omitempty"`
	Notes                 string     `gorm:"type:text" json:"notes,omitempty"`
	CreatedAt             time.Time  `gorm:"autoCreateTime" json:"created_at"`
	UpdatedAt             time.Time  `gorm:"autoUpdateTime" json:"updated_at"`

	Tenant *Tenant `gorm:"foreignKey:TenantID" json:"tenant,omitempty"`
	Cards  []Card  `gorm:"foreignKey:StaffID" json:"cards,omitempty"`
}

func (Staff) TableName() string { return "staff" }
