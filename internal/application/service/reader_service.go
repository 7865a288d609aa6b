package service

import (
	"context"
	"time"

	"github.com/tagpoint/rfid-admin/internal/application/dto"
	"github.com/tagpoint/rfid-admin/internal/domain/models"
	"github.com/tagpoint/rfid-admin/internal/domain/repository"
	apperrors "github.com/tagpoint/rfid-admin/pkg/errors"
	"github.com/tagpoint/rfid-admin/pkg/logger"
)

// ReaderService manages reader devices and reader groups.
type ReaderService interface {
	Create(ctx context.Context, req dto.CreateReaderRequest) (*models.Reader, error)
	Update(ctx context.Context, readerID string, req dto.UpdateReaderRequest) (*models.Reader, error)
	Delete(ctx context.Context, readerID string, tenantID *uint) error
	Get(ctx context.Context, readerID string, tenantID *uint) (*models.Reader, error)
	List(ctx context.Context, tenantID *uint) ([]models.Reader, error)
	Heartbeat(ctx context.Context, readerID string) error

	CreateGroup(ctx context.Context, req dto.CreateReaderGroupRequest) (*models.ReaderGroup, error)
	UpdateGroup(ctx context.Context, id uint, name, description *string) (*models.ReaderGroup, error)
	DeleteGroup(ctx context.Context, id uint) error
	GetGroup(ctx context.Context, id uint) (*models.ReaderGroup, error)
	ListGroups(ctx context.Context, tenantID *uint) ([]models.ReaderGroup, error)
}

type readerService struct {
	readers repository.ReaderRepository
	groups  repository.ReaderGroupRepository
	logger  logger.Logger
}

// NewReaderService wires the reader use cases.
func NewReaderService(
	readers repository.ReaderRepository,
	groups repository.ReaderGroupRepository,
	log logger.Logger,
) ReaderService {
	return &readerService{readers: readers, groups: groups, logger: log}
}

func (s *readerService) Create(ctx context.Context, req dto.CreateReaderRequest) (*models.Reader, error) {
	reader := &models.Reader{
		TenantID:      req.TenantID,
		ReaderID:      req.ReaderID,
		Name:          req.Name,
		Location:      req.Location,
		IPAddress:     req.IPAddress,
		MACAddress:    req.MACAddress,
		ReaderGroupID: req.ReaderGroupID,
		Configuration: req.Configuration,
	}
	if err := s.readers.Create(ctx, reader); err != nil {
		return nil, err
	}
	s.logger.Info(ctx, "reader registered", logger.String("reader_id", reader.ReaderID))
	return reader, nil
}

func (s *readerService) Update(ctx context.Context, readerID string, req dto.UpdateReaderRequest) (*models.Reader, error) {
	reader, err := s.readers.FindByReaderID(ctx, readerID, nil)
	if err != nil {
		return nil, err
	}
	if reader == nil {
		return nil, apperrors.ErrNotFound("reader")
	}

	if req.Name != nil {
		reader.Name = *req.Name
	}
	if req.Location != nil {
		reader.Location = *req.Location
	}
	if req.IPAddress != nil {
		reader.IPAddress = *req.IPAddress
	}
	if req.MACAddress != nil {
		reader.MACAddress = *req.MACAddress
	}
	if req.ReaderGroupID != nil {
		reader.ReaderGroupID = req.ReaderGroupID
	}
	if req.Configuration != nil {
		reader.Configuration = *req.Configuration
	}
	if req.IsOnline != nil {
		reader.IsOnline = *req.IsOnline
	}

	if err := s.readers.Update(ctx, reader); err != nil {
		return nil, err
	}
	return reader, nil
}

func (s *readerService) Delete(ctx context.Context, readerID string, tenantID *uint) error {
	affected, err := s.readers.DeleteByReaderID(ctx, readerID, tenantID)
	if err != nil {
		return err
	}
	if affected == 0 {
		return apperrors.ErrNotFound("reader")
	}
	return nil
}

func (s *readerService) Get(ctx context.Context, readerID string, tenantID *uint) (*models.Reader, error) {
	reader, err := s.readers.FindByReaderID(ctx, readerID, tenantID)
	if err != nil {
		return nil, err
	}
	if reader == nil {
		return nil, apperrors.ErrNotFound("reader")
	}
	return reader, nil
}

func (s *readerService) List(ctx context.Context, tenantID *uint) ([]models.Reader, error) {
	return s.readers.List(ctx, tenantID)
}

// Heartbeat marks a reader online. Heartbeats from unregistered readers are
// rejected so a typoed reader ID surfaces instead of silently vanishing.
func (s *readerService) Heartbeat(ctx context.Context, readerID string) error {
	affected, err := s.readers.TouchHeartbeat(ctx, readerID, time.Now().UTC())
	if err != nil {
		return err
	}
	if affected == 0 {
		return apperrors.ErrNotFound("reader")
	}
	return nil
}

func (s *readerService) CreateGroup(ctx context.Context, req dto.CreateReaderGroupRequest) (*models.ReaderGroup, error) {
	group := &models.ReaderGroup{
		TenantID:    req.TenantID,
		GroupName:   req.Name,
		Description: req.Description,
		IsActive:    true,
	}
	if err := s.groups.Create(ctx, group); err != nil {
		return nil, err
	}
	return group, nil
}

func (s *readerService) UpdateGroup(ctx context.Context, id uint, name, description *string) (*models.ReaderGroup, error) {
	group, err := s.groups.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if group == nil {
		return nil, apperrors.ErrNotFound("reader group")
	}
	if name != nil {
		group.GroupName = *name
	}
	if description != nil {
		group.Description = *description
	}
	if err := s.groups.Update(ctx, group); err != nil {
		return nil, err
	}
	return group, nil
}

func (s *readerService) DeleteGroup(ctx context.Context, id uint) error {
	affected, err := s.groups.Delete(ctx, id)
	if err != nil {
		return err
	}
	if affected == 0 {
		return apperrors.ErrNotFound("reader group")
	}
	return nil
}

func (s *readerService) GetGroup(ctx context.Context, id uint) (*models.ReaderGroup, error) {
	group, err := s.groups.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if group == nil {
		return nil, apperrors.ErrNotFound("reader group")
	}
	return group, nil
}

func (s *readerService) ListGroups(ctx context.Context, tenantID *uint) ([]models.ReaderGroup, error) {
	return s.groups.List(ctx, tenantID)
}
