package main

import (
	"context"
	"database/sql"
	"fmt"
	"log/slog"
	"time"

	"github.com/pacificaway/pacificaway-api/internal/config"
	"github.com/pacificaway/pacificaway-api/internal/platform/postgres"
	"github.com/pacificaway/pacificaway-api/internal/service"
	"github.com/pacificaway/pacificaway-api/internal/service/auth"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"
)

// application holds the shared dependencies so they can be wired once and
// cleaned up together on shutdown.
type application struct {
	config *config.Config
	logger *slog.Logger
	db     *sql.DB

	registry *prometheus.Registry
	schema   *postgres.SchemaManager

	jwtService      auth.JWTService
	userService     service.UserService
	catalogService  service.CatalogService
	categoryService service.CategoryService
	bookingService  service.BookingService
	geoService      service.GeoService
}

// newApplication wires stores, services and metrics on top of an open database.
func newApplication(cfg *config.Config, logger *slog.Logger, db *sql.DB) (*application, error) {
	app := &application{
		config:   cfg,
		logger:   logger,
		db:       db,
		registry: prometheus.NewRegistry(),
	}

	schemaRuns := prometheus.NewCounterVec(prometheus.CounterOpts{
		Namespace: "pacificaway",
		Name:      "catalog_schema_runs_total",
		Help:      "Catalog schema evolution attempts by outcome.",
	}, []string{"outcome"})
	app.registry.MustRegister(
		collectors.NewGoCollector(),
		collectors.NewProcessCollector(collectors.ProcessCollectorOpts{}),
		collectors.NewDBStatsCollector(db, "pacificaway"),
		schemaRuns,
	)

	var err error
	app.jwtService, err = auth.NewJWTService(cfg.Auth)
	if err != nil {
		return nil, fmt.Errorf("failed to initialize JWT service: %w", err)
	}
	logger.Info("JWT authentication service initialized",
		"token_lifetime_minutes", cfg.Auth.TokenLifetimeMinutes)

	app.schema = postgres.NewSchemaManager(db,
		postgres.WithSchemaTimeout(time.Duration(cfg.Schema.EnsureTimeoutSeconds)*time.Second),
		postgres.WithSchemaLogger(logger),
		postgres.WithSchemaRunCounter(schemaRuns),
	)

	categoryStore := postgres.NewPostgresCategoryStore(db)

	app.userService = service.NewUserService(
		postgres.NewPostgresUserStore(db),
		auth.NewBcryptHasher(cfg.Auth.BCryptCost),
		app.jwtService,
		logger,
	)
	app.catalogService = service.NewCatalogService(
		postgres.NewPostgresServiceStore(db),
		postgres.NewPostgresItemStore(db),
		service.NewCategoryResolver(categoryStore),
		app.schema,
		logger,
	)
	app.categoryService = service.NewCategoryService(categoryStore, app.schema, logger)
	app.bookingService = service.NewBookingService(postgres.NewPostgresBookingStore(db), app.schema, logger)
	app.geoService = service.NewGeoService(postgres.NewPostgresGeoStore(db), logger)

	logger.Info("Application initialized successfully")
	return app, nil
}

// Run optionally warms the catalog schema and then serves HTTP until ctx is done.
func (app *application) Run(ctx context.Context) error {
	if app.config.Schema.EnsureOnStartup {
		if err := app.schema.EnsureCatalogSchema(ctx); err != nil {
			// Requests retry the routine, so a failed warm-up is not fatal.
			app.logger.Warn("catalog schema warm-up failed", "error", err)
		}
	}

	if err := app.startHTTPServer(ctx, app.setupRouter()); err != nil {
		return fmt.Errorf("server error: %w", err)
	}
	return nil
}

// cleanup releases resources held by the application.
func (app *application) cleanup() {
	if app.db != nil {
		if err := app.db.Close(); err != nil {
			app.logger.Error("Error closing database connection", "error", err)
		}
	}
	app.logger.Info("Application shutdown completed")
}
