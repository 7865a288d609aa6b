package cli

import (
	"context"
	"log"

	"github.com/spf13/cobra"

	"github.com/tagpoint/rfid-admin/internal/config"
	"github.com/tagpoint/rfid-admin/internal/infrastructure/monitoring"
	"github.com/tagpoint/rfid-admin/internal/infrastructure/persistence/gormstore"
)

var migrateCmd = &cobra.Command{
	Use:   "migrate",
	Short: "Apply the database schema",
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg, err := config.Load()
		if err != nil {
			log.Fatalf("failed to load config: %v", err)
		}

		appLogger, err := monitoring.NewZapLogger(&cfg.Log)
		if err != nil {
			log.Fatalf("failed to create logger: %v", err)
		}

		ctx := context.Background()
		db, err := gormstore.Open(ctx, &cfg.Database, appLogger)
		if err != nil {
			return err
		}
		if err := gormstore.Migrate(db); err != nil {
			return err
		}

		appLogger.Info(ctx, "schema migration complete")
		return nil
	},
}

func init() {
	rootCmd.AddCommand(migrateCmd)
}
