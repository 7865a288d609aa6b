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

// VehicleRepo implements repository.VehicleRepository.
type VehicleRepo struct {
	db     *gorm.DB
	logger logger.Logger
}

func NewVehicleRepository(db *gorm.DB, log logger.Logger) repository.VehicleRepository {
	return &VehicleRepo{db: db, logger: log}
}

func (r *VehicleRepo) Create(ctx context.Context, vehicle *models.Vehicle) error {
	if err := r.db.WithContext(ctx).Create(vehicle).Error; err != nil {
		if errors.Is(err, gorm.ErrDuplicatedKey) {
			return apperrors.ErrConflict("license plate already registered")
		}
		r.logger.Error(ctx, "failed to create vehicle", err, logger.String("license_plate", vehicle.LicensePlate))
		return apperrors.ErrStoreUnavailable(err)
	}
	return nil
}

func (r *VehicleRepo) Update(ctx context.Context, vehicle *models.Vehicle) error {
	result := r.db.WithContext(ctx).
		Model(&models.Vehicle{}).
		Where("id = ?", vehicle.ID).
		Updates(vehicle)
	if result.Error != nil {
		r.logger.Error(ctx, "failed to update vehicle", result.Error)
		return apperrors.ErrStoreUnavailable(result.Error)
	}
	if result.RowsAffected == 0 {
		return apperrors.ErrNotFound("vehicle")
	}
	return nil
}

func (r *VehicleRepo) Delete(ctx context.Context, id uint) (int64, error) {
	result := r.db.WithContext(ctx).Delete(&models.Vehicle{}, id)
	if result.Error != nil {
		r.logger.Error(ctx, "failed to delete vehicle", result.Error)
		return 0, apperrors.ErrStoreUnavailable(result.Error)
	}
	return result.RowsAffected, nil
}

func (r *VehicleRepo) FindByID(ctx context.Context, id uint) (*models.Vehicle, error) {
	var vehicle models.Vehicle
	err := r.db.WithContext(ctx).Preload("Cards").First(&vehicle, id).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		r.logger.Error(ctx, "failed to find vehicle", err)
		return nil, apperrors.ErrStoreUnavailable(err)
	}
	return &vehicle, nil
}

func (r *VehicleRepo) List(ctx context.Context, tenantID *uint) ([]models.Vehicle, error) {
	query := r.db.WithContext(ctx).Model(&models.Vehicle{})
	if tenantID != nil {
		query = query.Where("tenant_id = ?", *tenantID)
	}
	var vehicles []models.Vehicle
	if err := query.Order("license_plate ASC").Find(&vehicles).Error; err != nil {
		r.logger.Error(ctx, "failed to list vehicles", err)
		return nil, apperrors.ErrStoreUnavailable(err)
	}
	return vehicles, nil
}
