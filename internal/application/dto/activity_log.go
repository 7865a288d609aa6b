package dto

import (
	"github.com/tagpoint/rfid-admin/internal/domain/models"
	"github.com/tagpoint/rfid-admin/internal/domain/repository"
)

// LogQuery carries the activity-log query parameters. Field names follow the
// public API contract; the mixed naming convention is deliberate and frozen.
type LogQuery struct {
	TenantID      *uint   `form:"tenantId"`
	Limit         int     `form:"limit,default=50"`
	Offset        int     `form:"offset"`
	CardUID       string  `form:"card_uid"`
	ReaderID      string  `form:"reader_id"`
	CardType      string  `form:"card_type"`
	AccessGranted *bool   `form:"access_granted"`
	DateFrom      string  `form:"date_from"`
	DateTo        string  `form:"date_to"`
	Search        string  `form:"search"`
	Timezone      string  `form:"timezone,default=UTC"`
}

// PagedEvents is one page of activity-log entries.
type PagedEvents struct {
	Data       []models.AccessEvent `json:"data"`
	Total      int64                `json:"total"`
	Page       int                  `json:"page"`
	TotalPages int                  `json:"totalPages"`
}

// StatsSnapshot summarizes the events matching a log query. The "Today"
// names are historical: each field covers whatever date range the caller
// supplied, which is not necessarily today.
type StatsSnapshot struct {
	TotalToday       int64 `json:"totalToday"`
	SuccessfulToday  int64 `json:"successfulToday"`
	FailedToday      int64 `json:"failedToday"`
	UniqueUsersToday int64 `json:"uniqueUsersToday"`
}

// ScanRollup counts events since local midnight and in the trailing hour.
type ScanRollup struct {
	Today    int64 `json:"today"`
	LastHour int64 `json:"lastHour"`
}

// DashboardStats is the aggregate view rendered on the admin dashboard.
type DashboardStats struct {
	Cards   repository.CardRollup   `json:"cards"`
	Readers repository.ReaderRollup `json:"readers"`
	Scans   ScanRollup              `json:"scans"`
}

// DateRangeStats holds the per-day scan counts for a chart.
type DateRangeStats struct {
	Days []repository.DailyCount `json:"days"`
}

// IngestEventRequest records one scan reported by a reader or bridge.
// AccessGranted defaults to true when omitted, matching the firmware that
// only reports the flag on denials.
type IngestEventRequest struct {
	TenantID      uint   `json:"tenant_id"`
	CardUID       string `json:"card_uid" binding:"required"`
	ReaderID      string `json:"reader_id" binding:"required"`
	EventType     string `json:"event_type"`
	AccessGranted *bool  `json:"access_granted"`
	RawData       string `json:"raw_data"`
	Notes         string `json:"notes"`
}
