package gormstore

import (
	"context"
	"errors"
	"time"

	"gorm.io/gorm"

	"github.com/tagpoint/rfid-admin/internal/domain/models"
	"github.com/tagpoint/rfid-admin/internal/domain/repository"
	"github.com/tagpoint/rfid-admin/pkg/constants"
	apperrors "github.com/tagpoint/rfid-admin/pkg/errors"
	"github.com/tagpoint/rfid-admin/pkg/logger"
)

// ErrorLogRepo implements repository.ErrorLogRepository.
type ErrorLogRepo struct {
	db     *gorm.DB
	logger logger.Logger
}

func NewErrorLogRepository(db *gorm.DB, log logger.Logger) repository.ErrorLogRepository {
	return &ErrorLogRepo{db: db, logger: log}
}

func (r *ErrorLogRepo) Create(ctx context.Context, entry *models.ErrorLog) error {
	if entry.TenantID == 0 {
		entry.TenantID = constants.DefaultTenantID
	}
	if err := r.db.WithContext(ctx).Create(entry).Error; err != nil {
		r.logger.Error(ctx, "failed to create error log", err, logger.String("error_type", string(entry.ErrorType)))
		return apperrors.ErrStoreUnavailable(err)
	}
	return nil
}

func (r *ErrorLogRepo) FindByID(ctx context.Context, id uint) (*models.ErrorLog, error) {
	var entry models.ErrorLog
	if err := r.db.WithContext(ctx).First(&entry, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		r.logger.Error(ctx, "failed to find error log", err)
		return nil, apperrors.ErrStoreUnavailable(err)
	}
	return &entry, nil
}

func (r *ErrorLogRepo) scoped(ctx context.Context, filter repository.ErrorLogFilter) *gorm.DB {
	query := r.db.WithContext(ctx).Model(&models.ErrorLog{})
	if filter.TenantID != nil {
		query = query.Where("tenant_id = ?", *filter.TenantID)
	}
	if filter.ErrorType != nil {
		query = query.Where("error_type = ?", *filter.ErrorType)
	}
	if filter.Resolved != nil {
		query = query.Where("resolved = ?", *filter.Resolved)
	}
	// Unlike access events, each bound applies independently.
	if filter.StartDate != nil {
		query = query.Where("created_at >= ?", *filter.StartDate)
	}
	if filter.EndDate != nil {
		query = query.Where("created_at <= ?", *filter.EndDate)
	}
	return query
}

func (r *ErrorLogRepo) List(ctx context.Context, filter repository.ErrorLogFilter) ([]models.ErrorLog, int64, error) {
	var total int64
	if err := r.scoped(ctx, filter).Count(&total).Error; err != nil {
		r.logger.Error(ctx, "failed to count error logs", err)
		return nil, 0, apperrors.ErrStoreUnavailable(err)
	}

	limit := filter.Limit
	if limit <= 0 {
		limit = constants.DefaultPageLimit
	}
	if limit > constants.MaxPageLimit {
		limit = constants.MaxPageLimit
	}
	offset := filter.Offset
	if offset < 0 {
		offset = 0
	}

	var entries []models.ErrorLog
	err := r.scoped(ctx, filter).
		Order("created_at DESC, id DESC").
		Offset(offset).
		Limit(limit).
		Find(&entries).Error
	if err != nil {
		r.logger.Error(ctx, "failed to list error logs", err)
		return nil, 0, apperrors.ErrStoreUnavailable(err)
	}
	return entries, total, nil
}

func (r *ErrorLogRepo) Stats(ctx context.Context, tenantID uint) (*repository.ErrorLogStats, error) {
	base := func() *gorm.DB {
		return r.db.WithContext(ctx).Model(&models.ErrorLog{}).Where("tenant_id = ?", tenantID)
	}

	stats := &repository.ErrorLogStats{
		ByType: make(map[constants.ErrorLogType]int64, len(constants.ErrorLogTypes)),
	}
	// Every known type appears in the rollup, zero-count included.
	for _, errorType := range constants.ErrorLogTypes {
		stats.ByType[errorType] = 0
	}

	if err := base().Count(&stats.Total).Error; err != nil {
		r.logger.Error(ctx, "failed to count error logs", err)
		return nil, apperrors.ErrStoreUnavailable(err)
	}
	if err := base().Where("resolved = ?", true).Count(&stats.Resolved).Error; err != nil {
		r.logger.Error(ctx, "failed to count resolved error logs", err)
		return nil, apperrors.ErrStoreUnavailable(err)
	}
	stats.Unresolved = stats.Total - stats.Resolved

	var rows []struct {
		ErrorType constants.ErrorLogType `gorm:"column:error_type"`
		Count     int64                  `gorm:"column:count"`
	}
	err := base().
		Select("error_type, COUNT(*) AS count").
		Group("error_type").
		Scan(&rows).Error
	if err != nil {
		r.logger.Error(ctx, "failed to group error logs by type", err)
		return nil, apperrors.ErrStoreUnavailable(err)
	}
	for _, row := range rows {
		stats.ByType[row.ErrorType] = row.Count
	}

	since := time.Now().UTC().Add(-24 * time.Hour)
	if err := base().Where("created_at >= ?", since).Count(&stats.RecentCount).Error; err != nil {
		r.logger.Error(ctx, "failed to count recent error logs", err)
		return nil, apperrors.ErrStoreUnavailable(err)
	}
	return stats, nil
}

func (r *ErrorLogRepo) Resolve(ctx context.Context, id uint, resolvedBy, notes string, at time.Time) (int64, error) {
	result := r.db.WithContext(ctx).
		Model(&models.ErrorLog{}).
		Where("id = ? AND resolved = ?", id, false).
		Updates(map[string]interface{}{
			"resolved":         true,
			"resolved_by":      resolvedBy,
			"resolved_at":      at,
			"resolution_notes": notes,
		})
	if result.Error != nil {
		r.logger.Error(ctx, "failed to resolve error log", result.Error)
		return 0, apperrors.ErrStoreUnavailable(result.Error)
	}
	return result.RowsAffected, nil
}

func (r *ErrorLogRepo) Delete(ctx context.Context, id uint) (int64, error) {
	result := r.db.WithContext(ctx).Delete(&models.ErrorLog{}, id)
	if result.Error != nil {
		r.logger.Error(ctx, "failed to delete error log", result.Error)
		return 0, apperrors.ErrStoreUnavailable(result.Error)
	}
	return result.RowsAffected, nil
}
