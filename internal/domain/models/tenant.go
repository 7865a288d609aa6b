// Package models defines the persisted domain entities of the RFID
// access-control administration service.
package models

import "time"

// Tenant is an isolated customer organization. Every card, reader, staff
// member, vehicle, and access event belongs to exactly one tenant.
type Tenant struct {
	ID               uint      `gorm:"primaryKey" json:"id"`
	TenantCode       string    `gorm:"size:50;uniqueIndex;not null" json:"tenant_code"`
	Name             string    `gorm:"size:200;not null" json:"name"`
	Description      string    `gorm:"type:text" json:"description,omitempty"`
	ContactEmail     string    `gorm:"size:100" json:"contact_email,omitempty"`
	ContactPhone     string    `gorm:"size:20" json:"contact_phone,omitempty"`
	Address          string    `gorm:"type:text" json:"address,omitempty"`
	IsActive         bool      `gorm:"not null" json:"is_active"`
	SubscriptionPlan string    `gorm:"size:50;default:basic" json:"subscription_plan"`
	MaxReaders       int       `gorm:"default:10" json:"max_readers"`
	MaxCards         int       `gorm:"default:1000" json:"max_cards"`
	CreatedAt        time.Time `gorm:"autoCreateTime" json:"created_at"`
	UpdatedAt        time.Time `gorm:"autoUpdateTime" json:"updated_at"`
}

func (Tenant) TableName() string { return "tenants" }
