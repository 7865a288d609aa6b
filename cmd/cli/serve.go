package cli

import (
	"context"
	"log"
	"time"

	"github.com/redis/go-redis/v9"
	"github.com/spf13/cobra"

	"github.com/tagpoint/rfid-admin/internal/application/service"
	"github.com/tagpoint/rfid-admin/internal/config"
	"github.com/tagpoint/rfid-admin/internal/infrastructure/events"
	"github.com/tagpoint/rfid-admin/internal/infrastructure/monitoring"
	"github.com/tagpoint/rfid-admin/internal/infrastructure/persistence/gormstore"
	"github.com/tagpoint/rfid-admin/internal/infrastructure/ratelimit"
	"github.com/tagpoint/rfid-admin/internal/interfaces/http/handlers"
	"github.com/tagpoint/rfid-admin/internal/interfaces/http/middleware"
	"github.com/tagpoint/rfid-admin/internal/interfaces/http/router"
	"github.com/tagpoint/rfid-admin/pkg/logger"

	"github.com/prometheus/client_golang/prometheus"
)

var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Run the HTTP API server",
	RunE: func(cmd *cobra.Command, args []string) error {
		return runServe()
	},
}

func init() {
	rootCmd.AddCommand(serveCmd)
}

func runServe() error {
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
		appLogger.Fatal(ctx, "failed to connect to database", err)
	}
	if err := gormstore.Migrate(db); err != nil {
		appLogger.Fatal(ctx, "failed to migrate schema", err)
	}

	var redisClient redis.UniversalClient
	limiter := ratelimit.NewNopLimiter()
	if cfg.RateLimit.Enabled {
		redisClient = redis.NewClient(&redis.Options{
			Addr:     cfg.Redis.Addr,
			Password: cfg.Redis.Password,
			DB:       cfg.Redis.DB,
		})
		defer redisClient.Close()
		limiter = ratelimit.NewRedisLimiter(
			redisClient, cfg.RateLimit.RequestsPerMinute, time.Minute, appLogger)
	}

	publisher := events.NewNopPublisher()
	if cfg.Kafka.Enabled {
		kafkaPub := events.NewKafkaPublisher(cfg.Kafka, appLogger)
		defer kafkaPub.Close()
		publisher = kafkaPub
	}

	metrics := monitoring.NewMetrics(prometheus.DefaultRegisterer)

	eventRepo := gormstore.NewAccessEventRepository(db, appLogger)
	cardRepo := gormstore.NewCardRepository(db, appLogger)
	readerRepo := gormstore.NewReaderRepository(db, appLogger)
	groupRepo := gormstore.NewReaderGroupRepository(db, appLogger)
	tenantRepo := gormstore.NewTenantRepository(db, appLogger)
	staffRepo := gormstore.NewStaffRepository(db, appLogger)
	vehicleRepo := gormstore.NewVehicleRepository(db, appLogger)
	errorLogRepo := gormstore.NewErrorLogRepository(db, appLogger)

	authService := service.NewAuthService(cfg.Auth, appLogger)
	activityLogService := service.NewActivityLogService(
		eventRepo, publisher, appLogger, metrics.RecordIngest)
	statsService := service.NewStatsService(eventRepo, appLogger)
	cardService := service.NewCardService(
		cardRepo, readerRepo, staffRepo, vehicleRepo, tenantRepo, appLogger)
	readerService := service.NewReaderService(readerRepo, groupRepo, appLogger)
	tenantService := service.NewTenantService(tenantRepo, cardRepo, eventRepo, appLogger)
	staffService := service.NewStaffService(staffRepo, appLogger)
	vehicleService := service.NewVehicleService(vehicleRepo, appLogger)
	errorLogService := service.NewErrorLogService(errorLogRepo, appLogger)

	r := router.New(cfg, appLogger, metrics, limiter,
		middleware.RequireJWT(authService),
		router.Handlers{
			Health:      handlers.NewHealthHandler(db, redisClient),
			Auth:        handlers.NewAuthHandler(authService),
			ActivityLog: handlers.NewActivityLogHandler(activityLogService),
			Stats:       handlers.NewStatsHandler(statsService),
			Card:        handlers.NewCardHandler(cardService),
			Reader:      handlers.NewReaderHandler(readerService),
			Tenant:      handlers.NewTenantHandler(tenantService),
			Staff:       handlers.NewStaffHandler(staffService),
			Vehicle:     handlers.NewVehicleHandler(vehicleService),
			ErrorLog:    handlers.NewErrorLogHandler(errorLogService),
		})

	appLogger.Info(ctx, "rfid-admin starting",
		logger.String("listen", cfg.Server.Addr()),
		logger.Bool("rate_limit", cfg.RateLimit.Enabled),
		logger.Bool("kafka", cfg.Kafka.Enabled))

	return r.Start()
}
