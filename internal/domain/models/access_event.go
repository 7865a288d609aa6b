package models

import (
	"time"

	"github.com/tagpoint/rfid-admin/pkg/constants"
)

// AccessEvent is one recorded RFID scan attempt. Events are append-only:
// created once by the ingestion path, never updated, never deleted here.
//
// CardUID and ReaderID are natural keys, not enforced foreign keys. A scan
// may legitimately reference a card or reader that was never registered (or
// was deregistered since); the Card and Reader associations are optional
// lookups that stay nil in that case.
type AccessEvent struct {
	ID       uint   `gorm:"primaryKey" json:"id"`
	TenantID uint   `gorm:"not null;index" json:"tenant_id"`
	CardUID  string `gorm:"column:card_uid;size:50;not null;index" json:"card_uid"`
	ReaderID string `gorm:"column:reader_id;size:50;not null;index" json:"reader_id"`
	// EventType is one of scan, entry, exit, denied.
	EventType constants.EventType `gorm:"size:50;not null" json:"event_type"`
	// IsAuthorized is the authorization outcome captured at scan time. It is
	// never recomputed after the fact.
	IsAuthorized bool   `gorm:"not null" json:"is_authorized"`
	RawData      string `gorm:"type:text" json:"raw_data,omitempty"`
	Notes        string `gorm:"type:text" json:"notes,omitempty"`
	// Timestamp is server-assigned at write time and immutable.
	Timestamp time.Time `gorm:"autoCreateTime;index" json:"timestamp"`

	Tenant *Tenant `gorm:"foreignKey:TenantID" json:"tenant,omitempty"`
	Card   *Card   `gorm:"foreignKey:CardUID;references:CardUID" json:"card,omitempty"`
	Reader *Reader `gorm:"foreignKey:ReaderID;references:ReaderID" json:"reader,omitempty"`
}

func (AccessEvent) TableName() string { return "rfid_logs" }
