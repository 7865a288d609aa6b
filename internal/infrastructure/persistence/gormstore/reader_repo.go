package gormstore

import (
	"context"
	"errors"
	"time"

	"gorm.io/gorm"

	"github.com/tagpoint/rfid-admin/internal/domain/models"
	"github.com/tagpoint/rfid-admin/internal/domain/repository"
	apperrors "github.com/tagpoint/rfid-admin/pkg/errors"
	"github.com/tagpoint/rfid-admin/pkg/logger"
)

// ReaderRepo implements repository.ReaderRepository.
type ReaderRepo struct {
	db     *gorm.DB
	logger logger.Logger
}

func NewReaderRepository(db *gorm.DB, log logger.Logger) repository.ReaderRepository {
	return &ReaderRepo{db: db, logger: log}
}

func (r *ReaderRepo) Create(ctx context.Context, reader *models.Reader) error {
	if err := r.db.WithContext(ctx).Create(reader).Error; err != nil {
		if errors.Is(err, gorm.ErrDuplicatedKey) {
			return apperrors.ErrConflict("reader ID already registered")
		}
		r.logger.Error(ctx, "failed to create reader", err, logger.String("reader_id", reader.ReaderID))
		return apperrors.ErrStoreUnavailable(err)
	}
	return nil
}

func (r *ReaderRepo) Update(ctx context.Context, reader *models.Reader) error {
	result := r.db.WithContext(ctx).
		Model(&models.Reader{}).
		Where("reader_id = ?", reader.ReaderID).
		Updates(reader)
	if result.Error != nil {
		r.logger.Error(ctx, "failed to update reader", result.Error, logger.String("reader_id", reader.ReaderID))
		return apperrors.ErrStoreUnavailable(result.Error)
	}
	if result.RowsAffected == 0 {
		return apperrors.ErrNotFound("reader")
	}
	return nil
}

func (r *ReaderRepo) DeleteByReaderID(ctx context.Context, readerID string, tenantID *uint) (int64, error) {
	q := r.db.WithContext(ctx).Where("reader_id = ?", readerID)
	if tenantID != nil {
		q = q.Where("tenant_id = ?", *tenantID)
	}
	result := q.Delete(&models.Reader{})
	if result.Error != nil {
		r.logger.Error(ctx, "failed to delete reader", result.Error, logger.String("reader_id", readerID))
		return 0, apperrors.ErrStoreUnavailable(result.Error)
	}
	return result.RowsAffected, nil
}

func (r *ReaderRepo) FindByReaderID(ctx context.Context, readerID string, tenantID *uint) (*models.Reader, error) {
	q := r.db.WithContext(ctx).
		Preload("ReaderGroup").
		Where("reader_id = ?", readerID)
	if tenantID != nil {
		q = q.Where("tenant_id = ?", *tenantID)
	}

	var reader models.Reader
	if err := q.First(&reader).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		r.logger.Error(ctx, "failed to find reader", err, logger.String("reader_id", readerID))
		return nil, apperrors.ErrStoreUnavailable(err)
	}
	return &reader, nil
}

func (r *ReaderRepo) List(ctx context.Context, tenantID *uint) ([]models.Reader, error) {
	q := r.db.WithContext(ctx).
		Preload("ReaderGroup").
		Order("name ASC")
	if tenantID != nil {
		q = q.Where("tenant_id = ?", *tenantID)
	}

	var readers []models.Reader
	if err := q.Find(&readers).Error; err != nil {
		r.logger.Error(ctx, "failed to list readers", err)
		return nil, apperrors.ErrStoreUnavailable(err)
	}
	return readers, nil
}

// TouchHeartbeat marks the reader online and stamps the heartbeat time.
func (r *ReaderRepo) TouchHeartbeat(ctx context.Context, readerID string, at time.Time) (int64, error) {
	result := r.db.WithContext(ctx).
		Model(&models.Reader{}).
		Where("reader_id = ?", readerID).
		Updates(map[string]interface{}{
			"is_online":      true,
			"last_heartbeat": at,
		})
	if result.Error != nil {
		r.logger.Error(ctx, "failed to record heartbeat", result.Error, logger.String("reader_id", readerID))
		return 0, apperrors.ErrStoreUnavailable(result.Error)
	}
	return result.RowsAffected, nil
}
