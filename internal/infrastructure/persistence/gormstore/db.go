// Package gormstore implements the domain repositories on top of GORM with a
// PostgreSQL backend. Tests run the same implementations against in-memory
// SQLite.
package gormstore

import (
	"context"
	"time"

	"gorm.io/driver/postgres"
	"gorm.io/gorm"
	gormlogger "gorm.io/gorm/logger"

	"github.com/tagpoint/rfid-admin/internal/config"
	"github.com/tagpoint/rfid-admin/internal/domain/models"
	"github.com/tagpoint/rfid-admin/pkg/logger"
)

// Open connects to PostgreSQL and configures the connection pool.
//
// Foreign-key constraint creation is disabled on migration: access events
// reference cards and readers by natural key and must remain insertable even
// when no matching row exists.
func Open(ctx context.Context, cfg *config.DatabaseConfig, log logger.Logger) (*gorm.DB, error) {
	db, err := gorm.Open(postgres.Open(cfg.DSN()), &gorm.Config{
		Logger:                                   gormlogger.Default.LogMode(gormlogger.Silent),
		DisableForeignKeyConstraintWhenMigrating: true,
		TranslateError:                           true,
	})
	if err != nil {
		return nil, err
	}

	sqlDB, err := db.DB()
	if err != nil {
		return nil, err
	}
	sqlDB.SetMaxOpenConns(cfg.MaxOpenConns)
	sqlDB.SetMaxIdleConns(cfg.MaxIdleConns)
	sqlDB.SetConnMaxLifetime(time.Duration(cfg.ConnMaxLifetime) * time.Minute)

	if err := sqlDB.PingContext(ctx); err != nil {
		return nil, err
	}

	log.Info(ctx, "connected to postgres",
		logger.String("host", cfg.Host),
		logger.String("database", cfg.Database),
		logger.Int("max_open_conns", cfg.MaxOpenConns),
	)

	return db, nil
}

// Migrate creates or updates the schema for every domain entity.
func Migrate(db *gorm.DB) error {
	return db.AutoMigrate(
		&models.Tenant{},
		&models.Staff{},
		&models.Vehicle{},
		&models.ReaderGroup{},
		&models.Reader{},
		&models.Card{},
		&models.AccessEvent{},
		&models.ErrorLog{},
	)
}

// Ping reports whether the database is reachable.
func Ping(ctx context.Context, db *gorm.DB) error {
	sqlDB, err := db.DB()
	if err != nil {
		return err
	}
	return sqlDB.PingContext(ctx)
}
