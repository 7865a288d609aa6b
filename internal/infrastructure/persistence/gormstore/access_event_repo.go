package gormstore

import (
	"context"
	"strings"
	"time"

	"gorm.io/gorm"

	"github.com/tagpoint/rfid-admin/internal/domain/models"
	"github.com/tagpoint/rfid-admin/internal/domain/repository"
	apperrors "github.com/tagpoint/rfid-admin/pkg/errors"
	"github.com/tagpoint/rfid-admin/pkg/logger"
)

// AccessEventRepo implements repository.AccessEventRepository.
type AccessEventRepo struct {
	db     *gorm.DB
	logger logger.Logger
}

// NewAccessEventRepository creates the GORM-backed event repository.
func NewAccessEventRepository(db *gorm.DB, log logger.Logger) repository.AccessEventRepository {
	return &AccessEventRepo{db: db, logger: log}
}

// Create appends one event. The timestamp is assigned by GORM at write time
// when the caller leaves it zero.
func (r *AccessEventRepo) Create(ctx context.Context, event *models.AccessEvent) error {
	if err := r.db.WithContext(ctx).Create(event).Error; err != nil {
		r.logger.Error(ctx, "failed to create access event", err,
			logger.String("card_uid", event.CardUID),
			logger.String("reader_id", event.ReaderID),
		)
		return apperrors.ErrStoreUnavailable(err)
	}
	return nil
}

// scoped builds the joined, filtered query shared by List and every count.
// All filters are conjunctive; each is applied only when set. The query
// always left-joins the card (and through it staff/vehicle) and the reader,
// matching by natural key, so that the card-type filter and the free-text
// search can reach the related display fields. The joins are many-to-one and
// cannot multiply rows.
func (r *AccessEventRepo) scoped(ctx context.Context, f repository.EventFilter) *gorm.DB {
	q := r.db.WithContext(ctx).
		Model(&models.AccessEvent{}).
		Joins("LEFT JOIN rfid_cards ON rfid_cards.card_uid = rfid_logs.card_uid").
		Joins("LEFT JOIN staff ON staff.id = rfid_cards.staff_id").
		Joins("LEFT JOIN vehicles ON vehicles.id = rfid_cards.vehicle_id").
		Joins("LEFT JOIN rfid_readers ON rfid_readers.reader_id = rfid_logs.reader_id")

	if f.TenantID != nil {
		q = q.Where("rfid_logs.tenant_id = ?", *f.TenantID)
	}
	if f.CardUID != "" {
		q = q.Where("rfid_logs.card_uid = ?", f.CardUID)
	}
	if f.ReaderID != "" {
		q = q.Where("rfid_logs.reader_id = ?", f.ReaderID)
	}
	if f.CardType != "" {
		// Events whose card UID resolves to no registered card have a NULL
		// card_type after the join and are excluded, by contract.
		q = q.Where("rfid_cards.card_type = ?", f.CardType)
	}
	if f.AccessGranted != nil {
		q = q.Where("rfid_logs.is_authorized = ?", *f.AccessGranted)
	}
	if f.DateFrom != nil && f.DateTo != nil {
		q = q.Where("rfid_logs.timestamp BETWEEN ? AND ?", *f.DateFrom, *f.DateTo)
	}
	if f.Search != "" {
		pattern := "%" + strings.ToLower(f.Search) + "%"
		q = q.Where(
			"LOWER(rfid_logs.card_uid) LIKE ?"+
				" OR LOWER(COALESCE(staff.first_name, '')) LIKE ?"+
				" OR LOWER(COALESCE(staff.last_name, '')) LIKE ?"+
				" OR LOWER(COALESCE(vehicles.license_plate, '')) LIKE ?"+
				" OR LOWER(COALESCE(rfid_readers.name, '')) LIKE ?"+
				" OR LOWER(rfid_logs.reader_id) LIKE ?",
			pattern, pattern, pattern, pattern, pattern, pattern,
		)
	}

	return q
}

// List returns one page of events, most recent first, plus the total match
// count before pagination. Ties on the timestamp break by descending ID so
// pagination stays deterministic.
func (r *AccessEventRepo) List(ctx context.Context, f repository.EventFilter) ([]models.AccessEvent, int64, error) {
	var total int64
	if err := r.scoped(ctx, f).Count(&total).Error; err != nil {
		r.logger.Error(ctx, "failed to count access events", err)
		return nil, 0, apperrors.ErrStoreUnavailable(err)
	}

	var events []models.AccessEvent
	err := r.scoped(ctx, f).
		Select("rfid_logs.*").
		Order("rfid_logs.timestamp DESC, rfid_logs.id DESC").
		Offset(f.Offset).
		Limit(f.Limit).
		Preload("Card").
		Preload("Card.Staff").
		Preload("Card.Vehicle").
		Preload("Reader").
		Preload("Tenant").
		Find(&events).Error
	if err != nil {
		r.logger.Error(ctx, "failed to list access events", err)
		return nil, 0, apperrors.ErrStoreUnavailable(err)
	}

	return events, total, nil
}

// Count returns the number of events in the filtered scope.
func (r *AccessEventRepo) Count(ctx context.Context, f repository.EventFilter) (int64, error) {
	var total int64
	if err := r.scoped(ctx, f).Count(&total).Error; err != nil {
		r.logger.Error(ctx, "failed to count access events", err)
		return 0, apperrors.ErrStoreUnavailable(err)
	}
	return total, nil
}

// CountDistinctCards counts distinct card UIDs in the filtered scope.
func (r *AccessEventRepo) CountDistinctCards(ctx context.Context, f repository.EventFilter) (int64, error) {
	var count int64
	err := r.scoped(ctx, f).Distinct("rfid_logs.card_uid").Count(&count).Error
	if err != nil {
		r.logger.Error(ctx, "failed to count distinct cards", err)
		return 0, apperrors.ErrStoreUnavailable(err)
	}
	return count, nil
}

// CountSince counts events at or after the given instant.
func (r *AccessEventRepo) CountSince(ctx context.Context, tenantID *uint, since time.Time) (int64, error) {
	q := r.db.WithContext(ctx).
		Model(&models.AccessEvent{}).
		Where("timestamp >= ?", since)
	if tenantID != nil {
		q = q.Where("tenant_id = ?", *tenantID)
	}

	var count int64
	if err := q.Count(&count).Error; err != nil {
		r.logger.Error(ctx, "failed to count recent events", err)
		return 0, apperrors.ErrStoreUnavailable(err)
	}
	return count, nil
}

// CardRollup aggregates the registered cards referenced by events in scope.
// The CASE expressions rely on boolean truthiness so the same SQL runs on
// both postgres and sqlite.
func (r *AccessEventRepo) CardRollup(ctx context.Context, tenantID *uint) (repository.CardRollup, error) {
	q := r.db.WithContext(ctx).
		Model(&models.AccessEvent{}).
		Joins("LEFT JOIN rfid_cards ON rfid_cards.card_uid = rfid_logs.card_uid").
		Select("COUNT(DISTINCT rfid_cards.id) AS total," +
			" COUNT(DISTINCT CASE WHEN rfid_cards.is_active THEN rfid_cards.id END) AS active," +
			" COUNT(DISTINCT CASE WHEN NOT rfid_cards.is_active THEN rfid_cards.id END) AS inactive," +
			" COUNT(DISTINCT CASE WHEN rfid_cards.card_type = 'vehicle' THEN rfid_cards.id END) AS vehicles")
	if tenantID != nil {
		q = q.Where("rfid_logs.tenant_id = ?", *tenantID)
	}

	var rollup repository.CardRollup
	if err := q.Scan(&rollup).Error; err != nil {
		r.logger.Error(ctx, "failed to aggregate card rollup", err)
		return repository.CardRollup{}, apperrors.ErrStoreUnavailable(err)
	}
	return rollup, nil
}

// ReaderRollup aggregates the registered readers referenced by events in
// scope.
func (r *AccessEventRepo) ReaderRollup(ctx context.Context, tenantID *uint) (repository.ReaderRollup, error) {
	q := r.db.WithContext(ctx).
		Model(&models.AccessEvent{}).
		Joins("LEFT JOIN rfid_readers ON rfid_readers.reader_id = rfid_logs.reader_id").
		Select("COUNT(DISTINCT rfid_readers.id) AS total," +
			" COUNT(DISTINCT CASE WHEN rfid_readers.is_online THEN rfid_readers.id END) AS online," +
			" COUNT(DISTINCT CASE WHEN NOT rfid_readers.is_online THEN rfid_readers.id END) AS offline")
	if tenantID != nil {
		q = q.Where("rfid_logs.tenant_id = ?", *tenantID)
	}

	var rollup repository.ReaderRollup
	if err := q.Scan(&rollup).Error; err != nil {
		r.logger.Error(ctx, "failed to aggregate reader rollup", err)
		return repository.ReaderRollup{}, apperrors.ErrStoreUnavailable(err)
	}
	return rollup, nil
}

// DailyCounts groups events between start and end by calendar day. The date
// is cast to text so the result scans identically on postgres and sqlite.
func (r *AccessEventRepo) DailyCounts(ctx context.Context, start, end time.Time, tenantID *uint) ([]repository.DailyCount, error) {
	q := r.db.WithContext(ctx).
		Model(&models.AccessEvent{}).
		Select("CAST(DATE(timestamp) AS TEXT) AS day, COUNT(id) AS count").
		Where("timestamp BETWEEN ? AND ?", start, end).
		Group("day").
		Order("day ASC")
	if tenantID != nil {
		q = q.Where("tenant_id = ?", *tenantID)
	}

	var counts []repository.DailyCount
	if err := q.Scan(&counts).Error; err != nil {
		r.logger.Error(ctx, "failed to aggregate daily counts", err)
		return nil, apperrors.ErrStoreUnavailable(err)
	}
	return counts, nil
}
