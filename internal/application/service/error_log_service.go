package service

import (
	"context"
	"time"

	"github.com/tagpoint/rfid-admin/internal/application/dto"
	"github.com/tagpoint/rfid-admin/internal/domain/models"
	"github.com/tagpoint/rfid-admin/internal/domain/repository"
	"github.com/tagpoint/rfid-admin/pkg/constants"
	apperrors "github.com/tagpoint/rfid-admin/pkg/errors"
	"github.com/tagpoint/rfid-admin/pkg/logger"
)

// ErrorLogService manages the processing-failure log and its resolution
// workflow.
type ErrorLogService interface {
	Create(ctx context.Context, entry *models.ErrorLog) error
	List(ctx context.Context, query dto.ErrorLogQuery) (*dto.PagedErrorLogs, error)
	Get(ctx context.Context, id uint) (*models.ErrorLog, error)
	Stats(ctx context.Context, tenantID uint) (*repository.ErrorLogStats, error)
	Resolve(ctx context.Context, id uint, req dto.ResolveErrorLogRequest) error
	Delete(ctx context.Context, id uint) error
}

type errorLogService struct {
	errorLogs repository.ErrorLogRepository
	logger    logger.Logger
}

// NewErrorLogService wires the error-log use cases.
func NewErrorLogService(errorLogs repository.ErrorLogRepository, log logger.Logger) ErrorLogService {
	return &errorLogService{errorLogs: errorLogs, logger: log}
}

func validErrorType(t string) bool {
	for _, known := range constants.ErrorLogTypes {
		if constants.ErrorLogType(t) == known {
			return true
		}
	}
	return false
}

func (s *errorLogService) Create(ctx context.Context, entry *models.ErrorLog) error {
	if entry.ErrorType == "" {
		entry.ErrorType = constants.ErrorTypeGeneral
	}
	if !validErrorType(string(entry.ErrorType)) {
		return apperrors.ErrInvalidRequest("unknown error_type: " + string(entry.ErrorType))
	}
	if entry.ErrorMessage == "" {
		return apperrors.ErrInvalidRequest("error_message is required")
	}
	return s.errorLogs.Create(ctx, entry)
}

func (s *errorLogService) List(ctx context.Context, query dto.ErrorLogQuery) (*dto.PagedErrorLogs, error) {
	limit := query.Limit
	if limit <= 0 {
		limit = constants.DefaultPageLimit
	}
	if limit > constants.MaxPageLimit {
		limit = constants.MaxPageLimit
	}
	offset := query.Offset
	if offset < 0 {
		offset = 0
	}

	filter := repository.ErrorLogFilter{
		TenantID: query.TenantID,
		Resolved: query.Resolved,
		Limit:    limit,
		Offset:   offset,
	}
	if query.ErrorType != "" {
		if !validErrorType(query.ErrorType) {
			return nil, apperrors.ErrInvalidRequest("unknown error_type: " + query.ErrorType)
		}
		errorType := constants.ErrorLogType(query.ErrorType)
		filter.ErrorType = &errorType
	}
	if query.StartDate != "" {
		start, err := time.ParseInLocation("2006-01-02", query.StartDate, time.UTC)
		if err != nil {
			return nil, apperrors.ErrInvalidTimeFormat("start_date", `expected "YYYY-MM-DD"`)
		}
		filter.StartDate = &start
	}
	if query.EndDate != "" {
		end, err := time.ParseInLocation("2006-01-02", query.EndDate, time.UTC)
		if err != nil {
			return nil, apperrors.ErrInvalidTimeFormat("end_date", `expected "YYYY-MM-DD"`)
		}
		end = end.Add(24*time.Hour - time.Second)
		filter.EndDate = &end
	}

	entries, total, err := s.errorLogs.List(ctx, filter)
	if err != nil {
		return nil, err
	}
	if entries == nil {
		entries = []models.ErrorLog{}
	}

	return &dto.PagedErrorLogs{
		Data:       entries,
		Total:      total,
		Page:       offset/limit + 1,
		TotalPages: int((total + int64(limit) - 1) / int64(limit)),
	}, nil
}

func (s *errorLogService) Get(ctx context.Context, id uint) (*models.ErrorLog, error) {
	entry, err := s.errorLogs.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if entry == nil {
		return nil, apperrors.ErrNotFound("error log")
	}
	return entry, nil
}

// Stats reports the rollup for one tenant. Callers that do not say which
// tenant get the default tenant rather than an empty scope.
func (s *errorLogService) Stats(ctx context.Context, tenantID uint) (*repository.ErrorLogStats, error) {
	if tenantID == 0 {
		tenantID = constants.DefaultTenantID
	}
	return s.errorLogs.Stats(ctx, tenantID)
}

// Resolve marks an entry handled. Resolving an already-resolved or missing
// entry reports not found.
func (s *errorLogService) Resolve(ctx context.Context, id uint, req dto.ResolveErrorLogRequest) error {
	affected, err := s.errorLogs.Resolve(ctx, id, req.ResolvedBy, req.Notes, time.Now().UTC())
	if err != nil {
		return err
	}
	if affected == 0 {
		return apperrors.ErrNotFound("unresolved error log")
	}
	s.logger.Info(ctx, "error log resolved",
		logger.Int64("error_log_id", int64(id)),
		logger.String("resolved_by", req.ResolvedBy),
	)
	return nil
}

func (s *errorLogService) Delete(ctx context.Context, id uint) error {
	affected, err := s.errorLogs.Delete(ctx, id)
	if err != nil {
		return err
	}
	if affected == 0 {
		return apperrors.ErrNotFound("error log")
	}
	return nil
}
