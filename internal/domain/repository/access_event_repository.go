// Package repository declares the persistence contracts for the RFID admin
// domain. Implementations live under internal/infrastructure/persistence.
package repository

import (
	"context"
	"time"

	"github.com/tagpoint/rfid-admin/internal/domain/models"
)

// EventFilter is the parameter set shared by the event list and every count
// query. All fields are optional; zero values mean "no filter". Filters are
// conjunctive.
//
// Date bounds are absolute UTC instants, already normalized by the caller.
// Both must be set for the range to apply; a single bound is ignored, which
// mirrors the behavior of the ingest pipeline this service replaced.
type EventFilter struct {
	TenantID      *uint
	CardUID       string
	ReaderID      string
	CardType      string
	AccessGranted *bool
	DateFrom      *time.Time
	DateTo        *time.Time
	// Search matches case-insensitively against the card UID, the joined
	// staff first/last name, the joined vehicle license plate, the joined
	// reader name, and the raw reader ID.
	Search string
	Limit  int
	Offset int
}

// WithAccessGranted returns a copy of the filter with the authorization
// outcome pinned. Used by the stats aggregator to derive success/failure
// counts from one base scope.
func (f EventFilter) WithAccessGranted(granted bool) EventFilter {
	f.AccessGranted = &granted
	return f
}

// CardRollup counts the distinct cards referenced by events in scope.
type CardRollup struct {
	Total    int64 `gorm:"column:total" json:"total"`
	Active   int64 `gorm:"column:active" json:"active"`
	Inactive int64 `gorm:"column:inactive" json:"inactive"`
	Vehicles int64 `gorm:"column:vehicles" json:"vehicles"`
}

// ReaderRollup counts the distinct readers referenced by events in scope.
type ReaderRollup struct {
	Total   int64 `gorm:"column:total" json:"total"`
	Online  int64 `gorm:"column:online" json:"online"`
	Offline int64 `gorm:"column:offline" json:"offline"`
}

// DailyCount is one day's event count in a grouped-by-day query.
type DailyCount struct {
	Date  string `gorm:"column:day" json:"date"`
	Count int64  `gorm:"column:count" json:"count"`
}

// AccessEventRepository is the append-and-query contract over the event
// store. Everything except Create is a pure read.
type AccessEventRepository interface {
	Create(ctx context.Context, event *models.AccessEvent) error

	// List returns one page of matching events, most recent first, joined
	// with card/staff/vehicle/reader/tenant display data, plus the total
	// count of matches before pagination.
	List(ctx context.Context, filter EventFilter) ([]models.AccessEvent, int64, error)

	// Count returns the number of events matching the filter. Limit and
	// Offset are ignored.
	Count(ctx context.Context, filter EventFilter) (int64, error)

	// CountDistinctCards returns the number of distinct card UIDs among
	// events matching the filter.
	CountDistinctCards(ctx context.Context, filter EventFilter) (int64, error)

	// CountSince returns the number of events at or after the given instant,
	// optionally scoped to a tenant.
	CountSince(ctx context.Context, tenantID *uint, since time.Time) (int64, error)

	// CardRollup and ReaderRollup aggregate the registered entities that
	// events in scope reference, for the dashboard.
	CardRollup(ctx context.Context, tenantID *uint) (CardRollup, error)
	ReaderRollup(ctx context.Context, tenantID *uint) (ReaderRollup, error)

	// DailyCounts groups events between start and end (inclusive) by calendar
	// day, ascending.
	DailyCounts(ctx context.Context, start, end time.Time, tenantID *uint) ([]DailyCount, error)
}
