package repository

import (
	"context"
	"time"

	"github.com/tagpoint/rfid-admin/internal/domain/models"
)

// ReaderRepository manages registered RFID readers, keyed by the natural
// reader ID the devices report.
type ReaderRepository interface {
	Create(ctx context.Context, reader *models.Reader) error
	Update(ctx context.Context, reader *models.Reader) error
	DeleteByReaderID(ctx context.Context, readerID string, tenantID *uint) (int64, error)

	// FindByReaderID returns nil, nil for an unknown reader ID.
	FindByReaderID(ctx context.Context, readerID string, tenantID *uint) (*models.Reader, error)
	List(ctx context.Context, tenantID *uint) ([]models.Reader, error)

	// TouchHeartbeat marks the reader online and records the heartbeat time.
	TouchHeartbeat(ctx context.Context, readerID string, at time.Time) (int64, error)
}

// ReaderGroupRepository manages reader groups.
type ReaderGroupRepository interface {
	Create(ctx context.Context, group *models.ReaderGroup) error
	Update(ctx context.Context, group *models.ReaderGroup) error
	Delete(ctx context.Context, id uint) (int64, error)
	FindByID(ctx context.Context, id uint) (*models.ReaderGroup, error)
	List(ctx context.Context, tenantID *uint) ([]models.ReaderGroup, error)
}
