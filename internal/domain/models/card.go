package models

import (
	"time"

	"github.com/tagpoint/rfid-admin/pkg/constants"
)

// Card is a registered RFID tag. The physical tag's UID is the natural key
// that access events join on; the surrogate ID exists only for CRUD.
type Card struct {
	ID          uint               `gorm:"primaryKey" json:"id"`
	TenantID    uint               `gorm:"not null;index" json:"tenant_id"`
	CardUID     string             `gorm:"column:card_uid;size:50;uniqueIndex;not null" json:"card_uid"`
	CardType    constants.CardType `gorm:"size:20;not null" json:"card_type"`
	StaffID     *uint              `json:"staff_id,omitempty"`
	VehicleID   *uint              `json:"vehicle_id,omitempty"`
	Description string             `gorm:"type:text" json:"description,omitempty"`
	IsActive    bool               `gorm:"not null" json:"is_active"`
	IssuedAt    *time.Time         `json:"issued_at,omitempty"`
	ExpiresAt   *time.Time         `json:"expires_at,omitempty"`
	CreatedAt   time.Time          `gorm:"autoCreateTime" json:"created_at"`
	UpdatedAt   time.Time          `gorm:"autoUpdateTime" json:"updated_at"`

	Tenant  *Tenant  `gorm:"foreignKey:TenantID" json:"tenant,omitempty"`
	Staff   *Staff   `gorm:"foreignKey:StaffID" json:"staff,omitempty"`
	Vehicle *Vehicle `gorm:"foreignKey:VehicleID" json:"vehicle,omitempty"`
}

func (Card) TableName() string { return "rfid_cards" }
