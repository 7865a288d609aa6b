package models

import "time"

// Reader is a physical RFID reader device. ReaderID is the natural key the
// device reports in scan payloads; access events join on it.
type Reader struct {
	ID            uint       `gorm:"primaryKey" json:"id"`
	TenantID      uint       `gorm:"not null;index" json:"tenant_id"`
	ReaderGroupID *uint      `json:"reader_group_id,omitempty"`
	ReaderID      string     `gorm:"column:reader_id;size:50;uniqueIndex;not null" json:"reader_id"`
	Name          string     `gorm:"size:100;not null" json:"name"`
	Location      string     `gorm:"size:200" json:"location,omitempty"`
	IPAddress     string     `gorm:"size:50" json:"ip_address,omitempty"`
	MACAddress    string     `gorm:"size:50" json:"mac_address,omitempty"`
	IsOnline      bool       `gorm:"not null" json:"is_online"`
	LastHeartbeat *time.Time `json:"last_heartbeat,omitempty"`
	// Configuration is a JSON blob of reader-specific settings.
	Configuration string    `gorm:"type:text" json:"configuration,omitempty"`
	CreatedAt     time.Time `gorm:"autoCreateTime" json:"created_at"`
	UpdatedAt     time.Time `gorm:"autoUpdateTime" json:"updated_at"`

	Tenant      *Tenant      `gorm:"foreignKey:TenantID" json:"tenant,omitempty"`
	ReaderGroup *ReaderGroup `gorm:"foreignKey:ReaderGroupID" json:"reader_group,omitempty"`
}

func (Reader) TableName() string { return "rfid_readers" }
