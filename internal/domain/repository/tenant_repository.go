package repository

import (
	"context"

	"github.com/tagpoint/rfid-admin/internal/domain/models"
)

// TenantRepository manages tenant records.
type TenantRepository interface {
	Create(ctx context.Context, tenant *models.Tenant) error
	Update(ctx context.Context, tenant *models.Tenant) error
	Delete(ctx context.Context, id uint) (int64, error)
	FindByID(ctx context.Context, id uint) (*models.Tenant, error)
	FindByCode(ctx context.Context, code string) (*models.Tenant, error)
	List(ctx context.Context) ([]models.Tenant, error)
}

// StaffRepository manages staff records.
type StaffRepository interface {
	Create(ctx context.Context, staff *models.Staff) error
	Update(ctx context.Context, staff *models.Staff) error
	Delete(ctx context.Context, id uint) (int64, error)
	FindByID(ctx context.Context, id uint) (*models.Staff, error)
	List(ctx context.Context, tenantID *uint) ([]models.Staff, error)
}

// VehicleRepository manages vehicle records.
type VehicleRepository interface {
	Create(ctx context.Context, vehicle *models.Vehicle) error
	Update(ctx context.Context, vehicle *models.Vehicle) error
	Delete(ctx context.Context, id uint) (int64, error)
	FindByID(ctx context.Context, id uint) (*models.Vehicle, error)
	List(ctx context.Context, tenantID *uint) ([]models.Vehicle, error)
}
