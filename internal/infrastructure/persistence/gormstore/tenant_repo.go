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

// TenantRepo implements repository.TenantRepository.
type TenantRepo struct {
	db     *gorm.DB
	logger logger.Logger
}

func NewTenantRepository(db *gorm.DB, log logger.Logger) repository.TenantRepository {
	return &TenantRepo{db: db, logger: log}
}

func (r *TenantRepo) Create(ctx context.Context, tenant *models.Tenant) error {
	if err := r.db.WithContext(ctx).Create(tenant).Error; err != nil {
		if errors.Is(err, gorm.ErrDuplicatedKey) {
			return apperrors.ErrConflict("tenant code already in use")
		}
		r.logger.Error(ctx, "failed to create tenant", err, logger.String("tenant_code", tenant.TenantCode))
		return apperrors.ErrStoreUnavailable(err)
	}
	return nil
}

func (r *TenantRepo) Update(ctx context.Context, tenant *models.Tenant) error {
	result := r.db.WithContext(ctx).
		Model(&models.Tenant{}).
		Where("id = ?", tenant.ID).
		Updates(tenant)
	if result.Error != nil {
		r.logger.Error(ctx, "failed to update tenant", result.Error)
		return apperrors.ErrStoreUnavailable(result.Error)
	}
	if result.RowsAffected == 0 {
		return apperrors.ErrNotFound("tenant")
	}
	return nil
}

func (r *TenantRepo) Delete(ctx context.Context, id uint) (int64, error) {
	result := r.db.WithContext(ctx).Delete(&models.Tenant{}, id)
	if result.Error != nil {
		r.logger.Error(ctx, "failed to delete tenant", result.Error)
		return 0, apperrors.ErrStoreUnavailable(result.Error)
	}
	return result.RowsAffected, nil
}

func (r *TenantRepo) FindByID(ctx context.Context, id uint) (*models.Tenant, error) {
	var tenant models.Tenant
	if err := r.db.WithContext(ctx).First(&tenant, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		r.logger.Error(ctx, "failed to find tenant", err)
		return nil, apperrors.ErrStoreUnavailable(err)
	}
	return &tenant, nil
}

func (r *TenantRepo) FindByCode(ctx context.Context, code string) (*models.Tenant, error) {
	var tenant models.Tenant
	err := r.db.WithContext(ctx).Where("tenant_code = ?", code).First(&tenant).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		r.logger.Error(ctx, "failed to find tenant by code", err, logger.String("tenant_code", code))
		return nil, apperrors.ErrStoreUnavailable(err)
	}
	return &tenant, nil
}

func (r *TenantRepo) List(ctx context.Context) ([]models.Tenant, error) {
	var tenants []models.Tenant
	if err := r.db.WithContext(ctx).Order("id ASC").Find(&tenants).Error; err != nil {
		r.logger.Error(ctx, "failed to list tenants", err)
		return nil, apperrors.ErrStoreUnavailable(err)
	}
	return tenants, nil
}
