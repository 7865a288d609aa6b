// Package service implements the application use cases on top of the domain
// repositories.
package service

import (
	"context"
	"time"

	"github.com/tagpoint/rfid-admin/internal/application/dto"
	"github.com/tagpoint/rfid-admin/internal/domain/models"
	"github.com/tagpoint/rfid-admin/internal/domain/repository"
	"github.com/tagpoint/rfid-admin/internal/infrastructure/events"
	"github.com/tagpoint/rfid-admin/pkg/constants"
	apperrors "github.com/tagpoint/rfid-admin/pkg/errors"
	"github.com/tagpoint/rfid-admin/pkg/logger"
	"github.com/tagpoint/rfid-admin/pkg/timeutil"
)

// ActivityLogService exposes the activity-log listing and ingestion use
// cases.
type ActivityLogService interface {
	GetLogs(ctx context.Context, query dto.LogQuery) (*dto.PagedEvents, error)
	CreateLog(ctx context.Context, req dto.IngestEventRequest) (*models.AccessEvent, error)
}

type activityLogService struct {
	events    repository.AccessEventRepository
	publisher events.Publisher
	logger    logger.Logger
	onIngest  func(eventType string, authorized bool)
}

// NewActivityLogService wires the log service. onIngest is invoked once per
// stored event for metrics; pass nil to disable.
func NewActivityLogService(
	eventRepo repository.AccessEventRepository,
	publisher events.Publisher,
	log logger.Logger,
	onIngest func(eventType string, authorized bool),
) ActivityLogService {
	return &activityLogService{
		events:    eventRepo,
		publisher: publisher,
		logger:    log,
		onIngest:  onIngest,
	}
}

// GetLogs returns one page of events matching the query. A date bound that
// is present but malformed fails the whole request; a lone bound parses but
// filters nothing, a quirk preserved from the system this replaced.
func (s *activityLogService) GetLogs(ctx context.Context, query dto.LogQuery) (*dto.PagedEvents, error) {
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

	dateFrom, err := parseDateBound("date_from", query.DateFrom)
	if err != nil {
		return nil, err
	}
	dateTo, err := parseDateBound("date_to", query.DateTo)
	if err != nil {
		return nil, err
	}

	filter := repository.EventFilter{
		TenantID:      query.TenantID,
		CardUID:       query.CardUID,
		ReaderID:      query.ReaderID,
		CardType:      query.CardType,
		AccessGranted: query.AccessGranted,
		DateFrom:      dateFrom,
		DateTo:        dateTo,
		Search:        query.Search,
		Limit:         limit,
		Offset:        offset,
	}

	list, total, err := s.events.List(ctx, filter)
	if err != nil {
		return nil, err
	}
	if list == nil {
		list = []models.AccessEvent{}
	}

	return &dto.PagedEvents{
		Data:       list,
		Total:      total,
		Page:       offset/limit + 1,
		TotalPages: int((total + int64(limit) - 1) / int64(limit)),
	}, nil
}

// CreateLog stores one scan event and publishes it downstream. Publishing is
// best-effort: a broker failure is logged but the stored event stands.
func (s *activityLogService) CreateLog(ctx context.Context, req dto.IngestEventRequest) (*models.AccessEvent, error) {
	eventType := constants.EventType(req.EventType)
	switch eventType {
	case "":
		eventType = constants.EventTypeScan
	case constants.EventTypeScan, constants.EventTypeEntry, constants.EventTypeExit, constants.EventTypeDenied:
	default:
		return nil, apperrors.ErrInvalidRequest("unknown event_type: " + req.EventType)
	}

	if req.TenantID == 0 {
		return nil, apperrors.ErrInvalidRequest("tenant_id is required")
	}
	authorized := true
	if req.AccessGranted != nil {
		authorized = *req.AccessGranted
	}

	event := &models.AccessEvent{
		TenantID:     req.TenantID,
		CardUID:      req.CardUID,
		ReaderID:     req.ReaderID,
		EventType:    eventType,
		IsAuthorized: authorized,
		RawData:      req.RawData,
		Notes:        req.Notes,
	}
	if err := s.events.Create(ctx, event); err != nil {
		return nil, err
	}
	if s.onIngest != nil {
		s.onIngest(string(event.EventType), event.IsAuthorized)
	}
	if err := s.publisher.Publish(ctx, event); err != nil {
		s.logger.Warn(ctx, "event stored but not published",
			logger.Int64("event_id", int64(event.ID)),
			logger.Err(err),
		)
	}
	return event, nil
}

// parseDateBound normalizes one "YYYY-MM-DD HH:mm:ss TIMEZONE" bound to a
// UTC instant. Empty input means the bound is absent.
func parseDateBound(field, value string) (*time.Time, error) {
	if value == "" {
		return nil, nil
	}
	parsed, err := timeutil.ParseTimezoneString(value)
	if err != nil {
		return nil, apperrors.ErrInvalidTimeFormat(field, `expected "YYYY-MM-DD HH:mm:ss TIMEZONE"`)
	}
	instant := parsed.Date
	return &instant, nil
}
