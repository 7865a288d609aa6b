package service

import (
	"context"

	"github.com/tagpoint/rfid-admin/internal/application/dto"
	"github.com/tagpoint/rfid-admin/internal/domain/models"
	"github.com/tagpoint/rfid-admin/internal/domain/repository"
	"github.com/tagpoint/rfid-admin/pkg/constants"
	apperrors "github.com/tagpoint/rfid-admin/pkg/errors"
	"github.com/tagpoint/rfid-admin/pkg/logger"
)

// CardService manages registered RFID cards.
type CardService interface {
	Create(ctx context.Context, req dto.CreateCardRequest) (*models.Card, error)
	Update(ctx context.Context, uid string, req dto.UpdateCardRequest) (*models.Card, error)
	Delete(ctx context.Context, uid string, tenantID *uint) error
	Get(ctx context.Context, uid string, tenantID *uint) (*models.Card, error)
	List(ctx context.Context, filter repository.CardFilter) ([]models.Card, error)
	TenantAssets(ctx context.Context, tenantID uint) (*dto.TenantAssets, error)
}

type cardService struct {
	cards    repository.CardRepository
	readers  repository.ReaderRepository
	staff    repository.StaffRepository
	vehicles repository.VehicleRepository
	tenants  repository.TenantRepository
	logger   logger.Logger
}

// NewCardService wires the card use cases. The extra repositories feed the
// tenant overview.
func NewCardService(
	cards repository.CardRepository,
	readers repository.ReaderRepository,
	staff repository.StaffRepository,
	vehicles repository.VehicleRepository,
	tenants repository.TenantRepository,
	log logger.Logger,
) CardService {
	return &cardService{
		cards:    cards,
		readers:  readers,
		staff:    staff,
		vehicles: vehicles,
		tenants:  tenants,
		logger:   log,
	}
}

func validCardType(t string) bool {
	switch constants.CardType(t) {
	case constants.CardTypeStaff, constants.CardTypeVehicle, constants.CardTypeVisitor, constants.CardTypeGuest:
		return true
	}
	return false
}

func (s *cardService) Create(ctx context.Context, req dto.CreateCardRequest) (*models.Card, error) {
	if !validCardType(req.CardType) {
		return nil, apperrors.ErrInvalidRequest("unknown card_type: " + req.CardType)
	}

	active := true
	if req.IsActive != nil {
		active = *req.IsActive
	}
	card := &models.Card{
		TenantID:    req.TenantID,
		CardUID:     req.CardUID,
		CardType:    constants.CardType(req.CardType),
		StaffID:     req.StaffID,
		VehicleID:   req.VehicleID,
		Description: req.Description,
		IsActive:    active,
		IssuedAt:    req.IssuedAt,
		ExpiresAt:   req.ExpiresAt,
	}
	if err := s.cards.Create(ctx, card); err != nil {
		return nil, err
	}
	s.logger.Info(ctx, "card registered",
		logger.String("card_uid", card.CardUID),
		logger.String("card_type", string(card.CardType)),
	)
	return card, nil
}

func (s *cardService) Update(ctx context.Context, uid string, req dto.UpdateCardRequest) (*models.Card, error) {
	card, err := s.cards.FindByUID(ctx, uid, nil)
	if err != nil {
		return nil, err
	}
	if card == nil {
		return nil, apperrors.ErrNotFound("card")
	}

	if req.CardType != nil {
		if !validCardType(*req.CardType) {
			return nil, apperrors.ErrInvalidRequest("unknown card_type: " + *req.CardType)
		}
		card.CardType = constants.CardType(*req.CardType)
	}
	if req.StaffID != nil {
		card.StaffID = req.StaffID
	}
	if req.VehicleID != nil {
		card.VehicleID = req.VehicleID
	}
	if req.Description != nil {
		card.Description = *req.Description
	}
	if req.IsActive != nil {
		card.IsActive = *req.IsActive
	}
	if req.ExpiresAt != nil {
		card.ExpiresAt = req.ExpiresAt
	}

	if err := s.cards.Update(ctx, card); err != nil {
		return nil, err
	}
	return card, nil
}

func (s *cardService) Delete(ctx context.Context, uid string, tenantID *uint) error {
	affected, err := s.cards.DeleteByUID(ctx, uid, tenantID)
	if err != nil {
		return err
	}
	if affected == 0 {
		return apperrors.ErrNotFound("card")
	}
	return nil
}

func (s *cardService) Get(ctx context.Context, uid string, tenantID *uint) (*models.Card, error) {
	card, err := s.cards.FindByUID(ctx, uid, tenantID)
	if err != nil {
		return nil, err
	}
	if card == nil {
		return nil, apperrors.ErrNotFound("card")
	}
	return card, nil
}

func (s *cardService) List(ctx context.Context, filter repository.CardFilter) ([]models.Card, error) {
	return s.cards.List(ctx, filter)
}

// TenantAssets assembles a tenant's registered cards, readers, staff, and
// vehicles in one response.
func (s *cardService) TenantAssets(ctx context.Context, tenantID uint) (*dto.TenantAssets, error) {
	tenant, err := s.tenants.FindByID(ctx, tenantID)
	if err != nil {
		return nil, err
	}
	if tenant == nil {
		return nil, apperrors.ErrNotFound("tenant")
	}

	cards, err := s.cards.ListByTenant(ctx, tenantID)
	if err != nil {
		return nil, err
	}
	readers, err := s.readers.List(ctx, &tenantID)
	if err != nil {
		return nil, err
	}
	staff, err := s.staff.List(ctx, &tenantID)
	if err != nil {
		return nil, err
	}
	vehicles, err := s.vehicles.List(ctx, &tenantID)
	if err != nil {
		return nil, err
	}

	return &dto.TenantAssets{
		Tenant:   tenant,
		Cards:    cards,
		Readers:  readers,
		Staff:    staff,
		Vehicles: vehicles,
		Summary: dto.AssetSummary{
			CardCount:    len(cards),
			ReaderCount:  len(readers),
			StaffCount:   len(staff),
			VehicleCount: len(vehicles),
		},
	}, nil
}
