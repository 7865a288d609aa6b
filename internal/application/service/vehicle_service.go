package service

import (
	"context"

	"github.com/tagpoint/rfid-admin/internal/application/dto"
	"github.com/tagpoint/rfid-admin/internal/domain/models"
	"github.com/tagpoint/rfid-admin/internal/domain/repository"
	apperrors "github.com/tagpoint/rfid-admin/pkg/errors"
	"github.com/tagpoint/rfid-admin/pkg/logger"
)

// VehicleService manages registered vehicles.
type VehicleService interface {
	Create(ctx context.Context, req dto.CreateVehicleRequest) (*models.Vehicle, error)
	Update(ctx context.Context, id uint, req dto.UpdateVehicleRequest) (*models.Vehicle, error)
	Delete(ctx context.Context, id uint) error
	Get(ctx context.Context, id uint) (*models.Vehicle, error)
	List(ctx context.Context, tenantID *uint) ([]models.Vehicle, error)
}

type vehicleService struct {
	vehicles repository.VehicleRepository
	logger   logger.Logger
}

// NewVehicleService wires the vehicle use cases.
func NewVehicleService(vehicles repository.VehicleRepository, log logger.Logger) VehicleService {
	return &vehicleService{vehicles: vehicles, logger: log}
}

func (s *vehicleService) Create(ctx context.Context, req dto.CreateVehicleRequest) (*models.Vehicle, error) {
	vehicle := &models.Vehicle{
		TenantID:         req.TenantID,
		LicensePlate:     req.LicensePlate,
		VehicleType:      req.VehicleType,
		Make:             req.Make,
		Model:            req.Model,
		Year:             req.Year,
		Color:            req.Color,
		OwnerName:        req.OwnerName,
		OwnerPhone:       req.OwnerPhone,
		OwnerEmail:       req.OwnerEmail,
		IsActive:         true,
		RegistrationDate: req.RegistrationDate,
		InsuranceExpiry:  req.InsuranceExpiry,
		Notes:            req.Notes,
	}
	if err := s.vehicles.Create(ctx, vehicle); err != nil {
		return nil, err
	}
	s.logger.Info(ctx, "vehicle registered", logger.String("license_plate", vehicle.LicensePlate))
	return vehicle, nil
}

func (s *vehicleService) Update(ctx context.Context, id uint, req dto.UpdateVehicleRequest) (*models.Vehicle, error) {
	vehicle, err := s.vehicles.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if vehicle == nil {
		return nil, apperrors.ErrNotFound("vehicle")
	}

	if req.VehicleType != nil {
		vehicle.VehicleType = *req.VehicleType
	}
	if req.Make != nil {
		vehicle.Make = *req.Make
	}
	if req.Model != nil {
		vehicle.Model = *req.Model
	}
	if req.Year != nil {
		vehicle.Year = *req.Year
	}
	if req.Color != nil {
		vehicle.Color = *req.Color
	}
	if req.OwnerName != nil {
		vehicle.OwnerName = *req.OwnerName
	}
	if req.OwnerPhone != nil {
		vehicle.OwnerPhone = *req.OwnerPhone
	}
	if req.OwnerEmail != nil {
		vehicle.OwnerEmail = *req.OwnerEmail
	}
	if req.IsActive != nil {
		vehicle.IsActive = *req.IsActive
	}
	if req.InsuranceExpiry != nil {
		vehicle.InsuranceExpiry = req.InsuranceExpiry
	}
	if req.Notes != nil {
		vehicle.Notes = *req.Notes
	}

	if err := s.vehicles.Update(ctx, vehicle); err != nil {
		return nil, err
	}
	return vehicle, nil
}

func (s *vehicleService) Delete(ctx context.Context, id uint) error {
	affected, err := s.vehicles.Delete(ctx, id)
	if err != nil {
		return err
	}
	if affected == 0 {
		return apperrors.ErrNotFound("vehicle")
	}
	return nil
}

func (s *vehicleService) Get(ctx context.Context, id uint) (*models.Vehicle, error) {
	vehicle, err := s.vehicles.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if vehicle == nil {
		return nil, apperrors.ErrNotFound("vehicle")
	}
	return vehicle, nil
}

func (s *vehicleService) List(ctx context.Context, tenantID *uint) ([]models.Vehicle, error) {
	return s.vehicles.List(ctx, tenantID)
}
