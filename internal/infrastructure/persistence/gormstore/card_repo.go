package gormstore

import (
	"context"
	"errors"

	"gorm.io/gorm"

	"github.com/tagpoint/rfid-admin/internal/domain/models"
	"github.com/tagpoint/rfid-admin/internal/domain/repository"
	apperrors "github.com/tagpoint/rfid-admin/pkg/errors"
	"github.com/tagpoint/rfid-admin/pkg/logger"
)

// CardRepo implements repository.CardRepository.
type CardRepo struct {
	db     *gorm.DB
	logger logger.Logger
}

func NewCardRepository(db *gorm.DB, log logger.Logger) repository.CardRepository {
	return &CardRepo{db: db, logger: log}
}

func (r *CardRepo) Create(ctx context.Context, card *models.Card) error {
	if err := r.db.WithContext(ctx).Create(card).Error; err != nil {
		if errors.Is(err, gorm.ErrDuplicatedKey) {
			return apperrors.ErrConflict("card UID already registered")
		}
		r.logger.Error(ctx, "failed to create card", err, logger.String("card_uid", card.CardUID))
		return apperrors.ErrStoreUnavailable(err)
	}
	return nil
}

func (r *CardRepo) Update(ctx context.Context, card *models.Card) error {
	result := r.db.WithContext(ctx).
		Model(&models.Card{}).
		Where("card_uid = ?", card.CardUID).
		Updates(card)
	if result.Error != nil {
		r.logger.Error(ctx, "failed to update card", result.Error, logger.String("card_uid", card.CardUID))
		return apperrors.ErrStoreUnavailable(result.Error)
	}
	if result.RowsAffected == 0 {
		return apperrors.ErrNotFound("card")
	}
	return nil
}

func (r *CardRepo) DeleteByUID(ctx context.Context, uid string, tenantID *uint) (int64, error) {
	q := r.db.WithContext(ctx).Where("card_uid = ?", uid)
	if tenantID != nil {
		q = q.Where("tenant_id = ?", *tenantID)
	}
	result := q.Delete(&models.Card{})
	if result.Error != nil {
		r.logger.Error(ctx, "failed to delete card", result.Error, logger.String("card_uid", uid))
		return 0, apperrors.ErrStoreUnavailable(result.Error)
	}
	return result.RowsAffected, nil
}

func (r *CardRepo) FindByUID(ctx context.Context, uid string, tenantID *uint) (*models.Card, error) {
	q := r.db.WithContext(ctx).
		Preload("Staff").
		Preload("Vehicle").
		Where("card_uid = ?", uid)
	if tenantID != nil {
		q = q.Where("tenant_id = ?", *tenantID)
	}

	var card models.Card
	if err := q.First(&card).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		r.logger.Error(ctx, "failed to find card", err, logger.String("card_uid", uid))
		return nil, apperrors.ErrStoreUnavailable(err)
	}
	return &card, nil
}

func (r *CardRepo) List(ctx context.Context, filter repository.CardFilter) ([]models.Card, error) {
	q := r.db.WithContext(ctx).
		Preload("Staff").
		Preload("Vehicle").
		Preload("Tenant").
		Order("tenant_id ASC, created_at DESC")
	if filter.TenantID != nil {
		q = q.Where("tenant_id = ?", *filter.TenantID)
	}
	if filter.ActiveOnly {
		q = q.Where("is_active = ?", true)
	}

	var cards []models.Card
	if err := q.Find(&cards).Error; err != nil {
		r.logger.Error(ctx, "failed to list cards", err)
		return nil, apperrors.ErrStoreUnavailable(err)
	}
	return cards, nil
}

func (r *CardRepo) ListByTenant(ctx context.Context, tenantID uint) ([]models.Card, error) {
	var cards []models.Card
	err := r.db.WithContext(ctx).
		Preload("Staff").
		Preload("Vehicle").
		Where("tenant_id = ?", tenantID).
		Order("created_at DESC").
		Find(&cards).Error
	if err != nil {
		r.logger.Error(ctx, "failed to list tenant cards", err, logger.Int64("tenant_id", int64(tenantID)))
		return nil, apperrors.ErrStoreUnavailable(err)
	}
	return cards, nil
}
