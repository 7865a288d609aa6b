package repository

import (
	"context"

	"github.com/tagpoint/rfid-admin/internal/domain/models"
)

// CardFilter narrows card listings.
type CardFilter struct {
	TenantID   *uint
	ActiveOnly bool
}

// CardRepository manages registered RFID cards. Lookups go through the card
// UID, the natural key shared with the event stream.
type CardRepository interface {
	Create(ctx context.Context, card *models.Card) error
	Update(ctx context.Context, card *models.Card) error
	DeleteByUID(ctx context.Context, uid string, tenantID *uint) (int64, error)

	// FindByUID returns nil, nil when no card carries the UID; an
	// unregistered card is an expected condition, not an error.
	FindByUID(ctx context.Context, uid string, tenantID *uint) (*models.Card, error)
	List(ctx context.Context, filter CardFilter) ([]models.Card, error)
	ListByTenant(ctx context.Context, tenantID uint) ([]models.Card, error)
}
