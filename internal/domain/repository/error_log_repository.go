package repository

import (
	"context"
	"time"

	"github.com/tagpoint/rfid-admin/internal/domain/models"
	"github.com/tagpoint/rfid-admin/pkg/constants"
)

// ErrorLogFilter narrows error-log listings. Unlike access events, error logs
// accept open-ended date bounds.
type ErrorLogFilter struct {
	TenantID  *uint
	ErrorType *constants.ErrorLogType
	Resolved  *bool
	StartDate *time.Time
	EndDate   *time.Time
	Limit     int
	Offset    int
}

// ErrorLogStats summarizes the error log for a tenant.
type ErrorLogStats struct {
	Total      int64                            `json:"total"`
	Resolved   int64                            `json:"resolved"`
	Unresolved int64                            `json:"unresolved"`
	ByType     map[constants.ErrorLogType]int64 `json:"byType"`
	// RecentCount is the number of entries created in the trailing 24 hours.
	RecentCount int64 `json:"recentCount"`
}

// ErrorLogRepository manages error log entries and their resolution state.
type ErrorLogRepository interface {
	Create(ctx context.Context, entry *models.ErrorLog) error
	FindByID(ctx context.Context, id uint) (*models.ErrorLog, error)
	List(ctx context.Context, filter ErrorLogFilter) ([]models.ErrorLog, int64, error)
	Stats(ctx context.Context, tenantID uint) (*ErrorLogStats, error)
	Resolve(ctx context.Context, id uint, resolvedBy, notes string, at time.Time) (int64, error)
	Delete(ctx context.Context, id uint) (int64, error)
}
