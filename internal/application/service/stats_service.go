package service

import (
	"context"
	"time"

	"golang.org/x/sync/errgroup"

	"github.com/tagpoint/rfid-admin/internal/application/dto"
	"github.com/tagpoint/rfid-admin/internal/domain/repository"
	apperrors "github.com/tagpoint/rfid-admin/pkg/errors"
	"github.com/tagpoint/rfid-admin/pkg/logger"
)

// timeNow is swapped out by tests that pin the dashboard clock.
var timeNow = time.Now

// StatsService aggregates scan statistics for the admin views.
type StatsService interface {
	GetStats(ctx context.Context, query dto.LogQuery) (*dto.StatsSnapshot, error)
	GetDashboardStats(ctx context.Context, tenantID *uint) (*dto.DashboardStats, error)
	GetStatsByDateRange(ctx context.Context, startDate, endDate string, tenantID *uint) (*dto.DateRangeStats, error)
}

type statsService struct {
	events repository.AccessEventRepository
	logger logger.Logger
}

// NewStatsService wires the stats aggregator.
func NewStatsService(eventRepo repository.AccessEventRepository, log logger.Logger) StatsService {
	return &statsService{events: eventRepo, logger: log}
}

// GetStats computes the scan counts over the tenant and date-range scope.
// The four counts are independent reads and run concurrently.
func (s *statsService) GetStats(ctx context.Context, query dto.LogQuery) (*dto.StatsSnapshot, error) {
	dateFrom, err := parseDateBound("date_from", query.DateFrom)
	if err != nil {
		return nil, err
	}
	dateTo, err := parseDateBound("date_to", query.DateTo)
	if err != nil {
		return nil, err
	}

	filter := repository.EventFilter{
		TenantID: query.TenantID,
		DateFrom: dateFrom,
		DateTo:   dateTo,
	}

	var snapshot dto.StatsSnapshot
	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		total, err := s.events.Count(gctx, filter)
		snapshot.TotalToday = total
		return err
	})
	g.Go(func() error {
		success, err := s.events.Count(gctx, filter.WithAccessGranted(true))
		snapshot.SuccessfulToday = success
		return err
	})
	g.Go(func() error {
		failed, err := s.events.Count(gctx, filter.WithAccessGranted(false))
		snapshot.FailedToday = failed
		return err
	})
	g.Go(func() error {
		distinct, err := s.events.CountDistinctCards(gctx, filter)
		snapshot.UniqueUsersToday = distinct
		return err
	})
	if err := g.Wait(); err != nil {
		return nil, err
	}
	return &snapshot, nil
}

// GetDashboardStats assembles the dashboard rollups. "Today" starts at local
// midnight of the server clock.
func (s *statsService) GetDashboardStats(ctx context.Context, tenantID *uint) (*dto.DashboardStats, error) {
	now := timeNow()
	midnight := time.Date(now.Year(), now.Month(), now.Day(), 0, 0, 0, 0, now.Location())
	hourAgo := now.Add(-time.Hour)

	var stats dto.DashboardStats
	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		rollup, err := s.events.CardRollup(gctx, tenantID)
		stats.Cards = rollup
		return err
	})
	g.Go(func() error {
		rollup, err := s.events.ReaderRollup(gctx, tenantID)
		stats.Readers = rollup
		return err
	})
	g.Go(func() error {
		count, err := s.events.CountSince(gctx, tenantID, midnight)
		stats.Scans.Today = count
		return err
	})
	g.Go(func() error {
		count, err := s.events.CountSince(gctx, tenantID, hourAgo)
		stats.Scans.LastHour = count
		return err
	})
	if err := g.Wait(); err != nil {
		return nil, err
	}
	return &stats, nil
}

// GetStatsByDateRange returns per-day scan counts between two calendar dates
// (inclusive), for charting.
func (s *statsService) GetStatsByDateRange(ctx context.Context, startDate, endDate string, tenantID *uint) (*dto.DateRangeStats, error) {
	start, err := time.ParseInLocation("2006-01-02", startDate, time.UTC)
	if err != nil {
		return nil, apperrors.ErrInvalidTimeFormat("start_date", `expected "YYYY-MM-DD"`)
	}
	end, err := time.ParseInLocation("2006-01-02", endDate, time.UTC)
	if err != nil {
		return nil, apperrors.ErrInvalidTimeFormat("end_date", `expected "YYYY-MM-DD"`)
	}
	if end.Before(start) {
		return nil, apperrors.ErrInvalidRequest("end_date is before start_date")
	}
	end = end.Add(24*time.Hour - time.Second)

	days, err := s.events.DailyCounts(ctx, start, end, tenantID)
	if err != nil {
		return nil, err
	}
	if days == nil {
		days = []repository.DailyCount{}
	}
	return &dto.DateRangeStats{Days: days}, nil
}
