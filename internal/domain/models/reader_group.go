package models

import "time"

// ReaderGroup clusters readers for display and bulk configuration, e.g. all
// readers on one gate or floor.
type ReaderGroup struct {
	ID          uint      `gorm:"primaryKey" json:"id"`
	TenantID    uint      `gorm:"not null;index" json:"tenant_id"`
	GroupName   string    `gorm:"size:100;not null" json:"group_name"`
	Description string    `gorm:"type:text" json:"description,omitempty"`
	Location    string    `gorm:"size:200" json:"location,omitempty"`
	IsActive    bool      `gorm:"not null" json:"is_active"`
	CreatedAt   time.Time `gorm:"autoCreateTime" json:"created_at"`
	UpdatedAt   time.Time `gorm:"autoUpdateTime" json:"updated_at"`

	Tenant  *Tenant  `gorm:"foreignKey:TenantID" json:"tenant,omitempty"`
	Readers []Reader `gorm:"foreignKey:ReaderGroupID" json:"readers,omitempty"`
}

func (ReaderGroup) TableName() string { return "rfid_reader_groups" }
