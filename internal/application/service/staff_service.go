package service

import (
	"context"

	"github.com/tagpoint/rfid-admin/internal/application/dto"
	"github.com/tagpoint/rfid-admin/internal/domain/models"
	"github.com/tagpoint/rfid-admin/internal/domain/repository"
	apperrors "github.com/tagpoint/rfid-admin/pkg/errors"
	"github.com/tagpoint/rfid-admin/pkg/logger"
)

// StaffService manages employee records.
type StaffService interface {
	Create(ctx context.Context, req dto.CreateStaffRequest) (*models.Staff, error)
	Update(ctx context.Context, id uint, req dto.UpdateStaffRequest) (*models.Staff, error)
	Delete(ctx context.Context, id uint) error
	Get(ctx context.Context, id uint) (*models.Staff, error)
	List(ctx context.Context, tenantID *uint) ([]models.Staff, error)
}

type staffService struct {
	staff  repository.StaffRepository
	logger logger.Logger
}

// NewStaffService wires the staff use cases.
func NewStaffService(staff repository.StaffRepository, log logger.Logger) StaffService {
	return &staffService{staff: staff, logger: log}
}

func (s *staffService) Create(ctx context.Context, req dto.CreateStaffRequest) (*models.Staff, error) {
	staff := &models.Staff{
		TenantID:              req.TenantID,
		EmployeeID:            req.EmployeeID,
		FirstName:             req.FirstName,
		LastName:              req.LastName,
		Email:                 req.Email,
		Phone:                 req.Phone,
		Department:            req.Department,
		Position:              req.Position,
		HireDate:              req.HireDate,
		IsActive:              true,
		EmergencyContactName:  req.EmergencyContactName,
		EmergencyContactPhone: req.EmergencyContactPhone,
		Notes:                 req.Notes,
	}
	if err := s.staff.Create(ctx, staff); err != nil {
		return nil, err
	}
	s.logger.Info(ctx, "staff registered", logger.String("employee_id", staff.EmployeeID))
	return staff, nil
}

func (s *staffService) Update(ctx context.Context, id uint, req dto.UpdateStaffRequest) (*models.Staff, error) {
	staff, err := s.staff.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if staff == nil {
		return nil, apperrors.ErrNotFound("staff")
	}

	if req.FirstName != nil {
		staff.FirstName = *req.FirstName
	}
	if req.LastName != nil {
		staff.LastName = *req.LastName
	}
	if req.Email != nil {
		staff.Email = *req.Email
	}
	if req.Phone != nil {
		staff.Phone = *req.Phone
	}
	if req.Department != nil {
		staff.Department = *req.Department
	}
	if req.Position != nil {
		staff.Position = *req.Position
	}
	if req.IsActive != nil {
		staff.IsActive = *req.IsActive
	}
	if req.EmergencyContactName != nil {
		staff.EmergencyContactName = *req.EmergencyContactName
	}
	if req.EmergencyContactPhone != nil {
		staff.EmergencyContactPhone = *req.EmergencyContactPhone
	}
	if req.Notes != nil {
		staff.Notes = *req.Notes
	}

	if err := s.staff.Update(ctx, staff); err != nil {
		return nil, err
	}
	return staff, nil
}

func (s *staffService) Delete(ctx context.Context, id uint) error {
	affected, err := s.staff.Delete(ctx, id)
	if err != nil {
		return err
	}
	if affected == 0 {
		return apperrors.ErrNotFound("staff")
	}
	return nil
}

func (s *staffService) Get(ctx context.Context, id uint) (*models.Staff, error) {
	staff, err := s.staff.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if staff == nil {
		return nil, apperrors.ErrNotFound("staff")
	}
	return staff, nil
}

func (s *staffService) List(ctx context.Context, tenantID *uint) ([]models.Staff, error) {
	return s.staff.List(ctx, tenantID)
}
