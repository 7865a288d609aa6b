// Package router assembles the HTTP surface: middleware chain, route table
// and server lifecycle.
package router

import (
	"context"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	"github.com/tagpoint/rfid-admin/internal/config"
	"github.com/tagpoint/rfid-admin/internal/infrastructure/monitoring"
	"github.com/tagpoint/rfid-admin/internal/infrastructure/ratelimit"
	"github.com/tagpoint/rfid-admin/internal/interfaces/http/handlers"
	"github.com/tagpoint/rfid-admin/internal/interfaces/http/middleware"
	"github.com/tagpoint/rfid-admin/pkg/logger"
)

// Handlers groups every HTTP handler the router mounts.
type Handlers struct {
	Health      *handlers.HealthHandler
	Auth        *handlers.AuthHandler
	ActivityLog *handlers.ActivityLogHandler
	Stats       *handlers.StatsHandler
	Card        *handlers.CardHandler
	Reader      *handlers.ReaderHandler
	Tenant      *handlers.TenantHandler
	Staff       *handlers.StaffHandler
	Vehicle     *handlers.VehicleHandler
	ErrorLog    *handlers.ErrorLogHandler
}

// Router owns the gin engine and the HTTP server lifecycle.
type Router struct {
	engine   *gin.Engine
	config   *config.Config
	logger   logger.Logger
	metrics  *monitoring.Metrics
	limiter  ratelimit.Limiter
	jwtGuard gin.HandlerFunc
	handlers Handlers
	server   *http.Server
}

// New builds the router. The JWT guard protects everything under /api except
// the login endpoint; the rate limiter applies to the same group.
func New(
	cfg *config.Config,
	log logger.Logger,
	metrics *monitoring.Metrics,
	limiter ratelimit.Limiter,
	jwtGuard gin.HandlerFunc,
	h Handlers,
) *Router {
	gin.SetMode(gin.ReleaseMode)

	return &Router{
		engine:   gin.New(),
		config:   cfg,
		logger:   log,
		metrics:  metrics,
		limiter:  limiter,
		jwtGuard: jwtGuard,
		handlers: h,
	}
}

// SetupRoutes installs middleware and the route table.
func (r *Router) SetupRoutes() {
	r.engine.Use(gin.Recovery())
	r.engine.Use(middleware.RequestID())
	r.engine.Use(middleware.Observability(r.metrics, r.logger))

	r.engine.Use(cors.New(cors.Config{
		AllowOrigins:     []string{"*"},
		AllowMethods:     []string{"GET", "POST", "PUT", "DELETE", "OPTIONS"},
		AllowHeaders:     []string{"Origin", "Content-Type", "Authorization", "X-Request-ID"},
		ExposeHeaders:    []string{"X-Request-ID", "X-RateLimit-Limit", "X-RateLimit-Remaining"},
		AllowCredentials: false,
		MaxAge:           12 * time.Hour,
	}))

	r.engine.GET("/health", r.handlers.Health.Live)
	r.engine.GET("/health/live", r.handlers.Health.Live)
	r.engine.GET("/health/ready", r.handlers.Health.Ready)

	r.engine.GET("/metrics", gin.WrapH(promhttp.Handler()))

	// Login is the only unauthenticated API endpoint.
	r.engine.POST("/api/auth/login", r.handlers.Auth.Login)

	api := r.engine.Group("/api")
	api.Use(r.jwtGuard)
	if r.config.RateLimit.Enabled {
		api.Use(middleware.RateLimit(r.limiter, r.metrics, r.logger))
	}
	{
		api.GET("/auth/profile", r.handlers.Auth.Profile)

		rfid := api.Group("/rfid")
		{
			rfid.GET("/logs", r.handlers.ActivityLog.List)
			rfid.POST("/logs", r.handlers.ActivityLog.Create)

			rfid.GET("/stats", r.handlers.Stats.Get)
			rfid.GET("/stats/dashboard", r.handlers.Stats.Dashboard)
			rfid.GET("/stats/daily", r.handlers.Stats.Daily)

			rfid.GET("/cards", r.handlers.Card.List)
			rfid.POST("/cards", r.handlers.Card.Create)
			rfid.GET("/cards/overview/:tenantId", r.handlers.Card.TenantOverview)
			rfid.GET("/cards/:uid", r.handlers.Card.Get)
			rfid.PUT("/cards/:uid", r.handlers.Card.Update)
			rfid.DELETE("/cards/:uid", r.handlers.Card.Delete)

			rfid.GET("/readers", r.handlers.Reader.List)
			rfid.POST("/readers", r.handlers.Reader.Create)
			rfid.GET("/readers/:readerId", r.handlers.Reader.Get)
			rfid.PUT("/readers/:readerId", r.handlers.Reader.Update)
			rfid.DELETE("/readers/:readerId", r.handlers.Reader.Delete)
			rfid.POST("/readers/:readerId/heartbeat", r.handlers.Reader.Heartbeat)

			rfid.GET("/reader-groups", r.handlers.Reader.ListGroups)
			rfid.POST("/reader-groups", r.handlers.Reader.CreateGroup)
			rfid.GET("/reader-groups/:id", r.handlers.Reader.GetGroup)
			rfid.PUT("/reader-groups/:id", r.handlers.Reader.UpdateGroup)
			rfid.DELETE("/reader-groups/:id", r.handlers.Reader.DeleteGroup)
		}

		api.GET("/tenants", r.handlers.Tenant.List)
		api.POST("/tenants", r.handlers.Tenant.Create)
		api.GET("/tenants/overview", r.handlers.Tenant.Overview)
		api.GET("/tenants/:id", r.handlers.Tenant.Get)
		api.PUT("/tenants/:id", r.handlers.Tenant.Update)
		api.DELETE("/tenants/:id", r.handlers.Tenant.Delete)

		api.GET("/staff", r.handlers.Staff.List)
		api.POST("/staff", r.handlers.Staff.Create)
		api.GET("/staff/:id", r.handlers.Staff.Get)
		api.PUT("/staff/:id", r.handlers.Staff.Update)
		api.DELETE("/staff/:id", r.handlers.Staff.Delete)

		api.GET("/vehicles", r.handlers.Vehicle.List)
		api.POST("/vehicles", r.handlers.Vehicle.Create)
		api.GET("/vehicles/:id", r.handlers.Vehicle.Get)
		api.PUT("/vehicles/:id", r.handlers.Vehicle.Update)
		api.DELETE("/vehicles/:id", r.handlers.Vehicle.Delete)

		api.GET("/error-logs", r.handlers.ErrorLog.List)
		api.POST("/error-logs", r.handlers.ErrorLog.Create)
		api.GET("/error-logs/stats", r.handlers.ErrorLog.Stats)
		api.GET("/error-logs/:id", r.handlers.ErrorLog.Get)
		api.PUT("/error-logs/:id/resolve", r.handlers.ErrorLog.Resolve)
		api.DELETE("/error-logs/:id", r.handlers.ErrorLog.Delete)
	}

	r.engine.NoRoute(func(c *gin.Context) {
		c.JSON(http.StatusNotFound, gin.H{
			"error": gin.H{
				"code":    "NOT_FOUND",
				"message": "the requested resource was not found",
			},
		})
	})
}

// Start runs the HTTP server until SIGINT or SIGTERM.
func (r *Router) Start() error {
	r.SetupRoutes()

	addr := r.config.Server.Addr()
	r.server = &http.Server{
		Addr:           addr,
		Handler:        r.engine,
		ReadTimeout:    time.Duration(r.config.Server.ReadTimeout) * time.Second,
		WriteTimeout:   time.Duration(r.config.Server.WriteTimeout) * time.Second,
		IdleTimeout:    time.Duration(r.config.Server.IdleTimeout) * time.Second,
		MaxHeaderBytes: 1 << 20,
	}

	r.logger.Info(context.Background(), "starting HTTP server", logger.String("address", addr))

	go r.waitForShutdown()

	if err := r.server.ListenAndServe(); err != nil && err != http.ErrServerClosed {
		return err
	}
	return nil
}

func (r *Router) waitForShutdown() {
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	r.logger.Info(context.Background(), "shutting down HTTP server")

	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	if err := r.server.Shutdown(ctx); err != nil {
		r.logger.Error(context.Background(), "server forced to shut down", err)
	}
}

// Stop shuts the server down; safe to call before Start.
func (r *Router) Stop(ctx context.Context) error {
	if r.server == nil {
		return nil
	}
	return r.server.Shutdown(ctx)
}

// Engine exposes the underlying gin engine, mainly for tests.
func (r *Router) Engine() *gin.Engine {
	return r.engine
}
