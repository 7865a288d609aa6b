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

// StaffRepo implements repository.StaffRepository.
type StaffRepo struct {
	db     *gorm.DB
	logger logger.Logger
}

func NewStaffRepository(db *gorm.DB, log logger.Logger) repository.StaffRepository {
	return &StaffRepo{db: db, logger: log}
}

func (r *StaffRepo) Create(ctx context.Context, staff *models.Staff) error {
	if err := r.db.WithContext(ctx).Create(staff).Error; err != nil {
		if errors.Is(err, gorm.ErrDuplicatedKey) {
			return apperrors.ErrConflict("employee id already in use")
		}
		r.logger.Error(ctx, "failed to create staff", err, logger.String("employee_id", staff.EmployeeID))
		return apperrors.ErrStoreUnavailable(err)
	}
	return nil
}

func (r *StaffRepo) Update(ctx context.Context, staff *models.Staff) error {
	result := r.db.WithContext(ctx).
		Model(&models.Staff{}).
		Where("id = ?", staff.ID).
		Updates(staff)
	if result.Error != nil {
		r.logger.Error(ctx, "failed to update staff", result.Error)
		return apperrors.ErrStoreUnavailable(result.Error)
	}
	if result.RowsAffected == 0 {
		return apperrors.ErrNotFound("staff")
	}
	return nil
}

func (r *StaffRepo) Delete(ctx context.Context, id uint) (int64, error) {
	result := r.db.WithContext(ctx).Delete(&models.Staff{}, id)
	if result.Error != nil {
		r.logger.Error(ctx, "failed to delete staff", result.Error)
		return 0, apperrors.ErrStoreUnavailable(result.Error)
	}
	return result.RowsAffected, nil
}

func (r *StaffRepo) FindByID(ctx context.Context, id uint) (*models.Staff, error) {
	var staff models.Staff
	err := r.db.WithContext(ctx).Preload("Cards").First(&staff, id).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		r.logger.Error(ctx, "failed to find staff", err)
		return nil, apperrors.ErrStoreUnavailable(err)
	}
	return &staff, nil
}

func (r *StaffRepo) List(ctx context.Context, tenantID *uint) ([]models.Staff, error) {
	query := r.db.WithContext(ctx).Model(&models.Staff{})
	if tenantID != nil {
		query = query.Where("tenant_id = ?", *tenantID)
	}
	var staff []models.Staff
	if err := query.Order("last_name ASC, first_name ASC").Find(&staff).Error; err != nil {
		r.logger.Error(ctx, "failed to list staff", err)
		return nil, apperrors.ErrStoreUnavailable(err)
	}
	return staff, nil
}
