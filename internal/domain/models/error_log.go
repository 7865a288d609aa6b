package models

import (
	"time"

	"github.com/tagpoint/rfid-admin/pkg/constants"
)

// ErrorLog records a processing failure somewhere in the ingestion or API
// pipeline: unparseable payloads, scans from unknown readers or cards,
// database errors. Entries carry a small resolution workflow so operators can
// mark them handled.
type ErrorLog struct {
	ID              uint                   `gorm:"primaryKey" json:"id"`
	TenantID        uint                   `gorm:"not null;index;default:1" json:"tenant_id"`
	ErrorType       constants.ErrorLogType `gorm:"size:50;not null;index" json:"error_type"`
	ErrorMessage    string                 `gorm:"type:text;not null" json:"error_message"`
	RawData         string                 `gorm:"type:text" json:"raw_data,omitempty"`
	SourceTopic     string                 `gorm:"size:200" json:"source_topic,omitempty"`
	SourceIP        string                 `gorm:"size:50" json:"source_ip,omitempty"`
	StackTrace      string                 `gorm:"type:text" json:"stack_trace,omitempty"`
	Resolved        bool                   `gorm:"not null;index" json:"resolved"`
	ResolvedBy      string                 `gorm:"size:100" json:"resolved_by,omitempty"`
	ResolvedAt      *time.Time             `json:"resolved_at,omitempty"`
	ResolutionNotes string                 `gorm:"type:text" json:"resolution_notes,omitempty"`
	CreatedAt       time.Time              `gorm:"autoCreateTime;index" json:"created_at"`
	UpdatedAt       time.Time              `gorm:"autoUpdateTime" json:"updated_at"`

	Tenant *Tenant `gorm:"foreignKey:TenantID" json:"tenant,omitempty"`
}

func (ErrorLog) TableName() string { return "error_logs" }
