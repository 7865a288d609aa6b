package service

import (
	"context"

	"github.com/tagpoint/rfid-admin/internal/application/dto"
	"github.com/tagpoint/rfid-admin/internal/domain/models"
	"github.com/tagpoint/rfid-admin/internal/domain/repository"
	apperrors "github.com/tagpoint/rfid-admin/pkg/errors"
	"github.com/tagpoint/rfid-admin/pkg/logger"
)

// TenantService manages tenant organizations.
type TenantService interface {
	Create(ctx context.Context, req dto.CreateTenantRequest) (*models.Tenant, error)
	Update(ctx context.Context, id uint, req dto.UpdateTenantRequest) (*models.Tenant, error)
	Delete(ctx context.Context, id uint) error
	Get(ctx context.Context, id uint) (*models.Tenant, error)
	List(ctx context.Context) ([]models.Tenant, error)
	Overview(ctx context.Context) ([]dto.TenantOverview, error)
}

type tenantService struct {
	tenants repository.TenantRepository
	cards   repository.CardRepository
	events  repository.AccessEventRepository
	logger  logger.Logger
}

// NewTenantService wires the tenant use cases.
func NewTenantService(
	tenants repository.TenantRepository,
	cards repository.CardRepository,
	events repository.AccessEventRepository,
	log logger.Logger,
) TenantService {
	return &tenantService{tenants: tenants, cards: cards, events: events, logger: log}
}

func (s *tenantService) Create(ctx context.Context, req dto.CreateTenantRequest) (*models.Tenant, error) {
	tenant := &models.Tenant{
		TenantCode:       req.TenantCode,
		Name:             req.Name,
		Description:      req.Description,
		ContactEmail:     req.ContactEmail,
		ContactPhone:     req.ContactPhone,
		Address:          req.Address,
		IsActive:         true,
		SubscriptionPlan: req.SubscriptionPlan,
		MaxReaders:       req.MaxReaders,
		MaxCards:         req.MaxCards,
	}
	if tenant.SubscriptionPlan == "" {
		tenant.SubscriptionPlan = "basic"
	}
	if err := s.tenants.Create(ctx, tenant); err != nil {
		return nil, err
	}
	s.logger.Info(ctx, "tenant created", logger.String("tenant_code", tenant.TenantCode))
	return tenant, nil
}

func (s *tenantService) Update(ctx context.Context, id uint, req dto.UpdateTenantRequest) (*models.Tenant, error) {
	tenant, err := s.tenants.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if tenant == nil {
		return nil, apperrors.ErrNotFound("tenant")
	}

	if req.Name != nil {
		tenant.Name = *req.Name
	}
	if req.Description != nil {
		tenant.Description = *req.Description
	}
	if req.ContactEmail != nil {
		tenant.ContactEmail = *req.ContactEmail
	}
	if req.ContactPhone != nil {
		tenant.ContactPhone = *req.ContactPhone
	}
	if req.Address != nil {
		tenant.Address = *req.Address
	}
	if req.IsActive != nil {
		tenant.IsActive = *req.IsActive
	}
	if req.SubscriptionPlan != nil {
		tenant.SubscriptionPlan = *req.SubscriptionPlan
	}
	if req.MaxReaders != nil {
		tenant.MaxReaders = *req.MaxReaders
	}
	if req.MaxCards != nil {
		tenant.MaxCards = *req.MaxCards
	}

	if err := s.tenants.Update(ctx, tenant); err != nil {
		return nil, err
	}
	return tenant, nil
}

func (s *tenantService) Delete(ctx context.Context, id uint) error {
	affected, err := s.tenants.Delete(ctx, id)
	if err != nil {
		return err
	}
	if affected == 0 {
		return apperrors.ErrNotFound("tenant")
	}
	return nil
}

func (s *tenantService) Get(ctx context.Context, id uint) (*models.Tenant, error) {
	tenant, err := s.tenants.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if tenant == nil {
		return nil, apperrors.ErrNotFound("tenant")
	}
	return tenant, nil
}

func (s *tenantService) List(ctx context.Context) ([]models.Tenant, error) {
	return s.tenants.List(ctx)
}

// Overview lists every tenant with its card and event counts.
func (s *tenantService) Overview(ctx context.Context) ([]dto.TenantOverview, error) {
	tenants, err := s.tenants.List(ctx)
	if err != nil {
		return nil, err
	}

	overviews := make([]dto.TenantOverview, 0, len(tenants))
	for i := range tenants {
		tenant := &tenants[i]

		cards, err := s.cards.ListByTenant(ctx, tenant.ID)
		if err != nil {
			return nil, err
		}
		eventCount, err := s.events.Count(ctx, repository.EventFilter{TenantID: &tenant.ID})
		if err != nil {
			return nil, err
		}

		overviews = append(overviews, dto.TenantOverview{
			ID:         tenant.ID,
			TenantCode: tenant.TenantCode,
			Name:       tenant.Name,
			IsActive:   tenant.IsActive,
			CardCount:  int64(len(cards)),
			EventCount: eventCount,
		})
	}
	return overviews, nil
}
