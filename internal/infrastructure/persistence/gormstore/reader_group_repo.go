package gormstore

import (
	"context"
	"errors"

	"gorm.io/gorm"

	"github.com/tagpoint/rfid-admin/internal/domain/models"
	"github.com/tagpoint/rfid-admin/internal/domain/repository"
	apperrors "github.com/tagpoint/rfid-admin/pkg/errors"
	"github.com/tagpoint/rfid-admin/pkg/logger"
)

// ReaderGroupRepo implements repository.ReaderGroupRepository.
type ReaderGroupRepo struct {
	db     *gorm.DB
	logger logger.Logger
}

func NewReaderGroupRepository(db *gorm.DB, log logger.Logger) repository.ReaderGroupRepository {
	return &ReaderGroupRepo{db: db, logger: log}
}

func (r *ReaderGroupRepo) Create(ctx context.Context, group *models.ReaderGroup) error {
	if err := r.db.WithContext(ctx).Create(group).Error; err != nil {
		r.logger.Error(ctx, "failed to create reader group", err, logger.String("group_name", group.GroupName))
		return apperrors.ErrStoreUnavailable(err)
	}
	return nil
}

func (r *ReaderGroupRepo) Update(ctx context.Context, group *models.ReaderGroup) error {
	result := r.db.WithContext(ctx).
		Model(&models.ReaderGroup{}).
		Where("id = ?", group.ID).
		Updates(group)
	if result.Error != nil {
		r.logger.Error(ctx, "failed to update reader group", result.Error)
		return apperrors.ErrStoreUnavailable(result.Error)
	}
	if result.RowsAffected == 0 {
		return apperrors.ErrNotFound("reader group")
	}
	return nil
}

func (r *ReaderGroupRepo) Delete(ctx context.Context, id uint) (int64, error) {
	result := r.db.WithContext(ctx).Delete(&models.ReaderGroup{}, id)
	if result.Error != nil {
		r.logger.Error(ctx, "failed to delete reader group", result.Error)
		return 0, apperrors.ErrStoreUnavailable(result.Error)
	}
	return result.RowsAffected, nil
}

func (r *ReaderGroupRepo) FindByID(ctx context.Context, id uint) (*models.ReaderGroup, error) {
	var group models.ReaderGroup
	err := r.db.WithContext(ctx).Preload("Readers").First(&group, id).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		r.logger.Error(ctx, "failed to find reader group", err)
		return nil, apperrors.ErrStoreUnavailable(err)
	}
	return &group, nil
}

func (r *ReaderGroupRepo) List(ctx context.Context, tenantID *uint) ([]models.ReaderGroup, error) {
	q := r.db.WithContext(ctx).Preload("Readers").Order("group_name ASC")
	if tenantID != nil {
		q = q.Where("tenant_id = ?", *tenantID)
	}

	var groups []models.ReaderGroup
	if err := q.Find(&groups).Error; err != nil {
		r.logger.Error(ctx, "failed to list reader groups", err)
		return nil, apperrors.ErrStoreUnavailable(err)
	}
	return groups, nil
}
