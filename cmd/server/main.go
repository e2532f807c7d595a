package main

import (
	"context"
	"database/sql"
	"fmt"
	"log"
	"net/http"
	"os"
	"time"

	"github.com/DevAttaKhan/dawn/internal"
	"github.com/DevAttaKhan/dawn/internal/cookie"
	"github.com/DevAttaKhan/dawn/internal/handler"
	"github.com/DevAttaKhan/dawn/internal/handler/storefront"
	"github.com/DevAttaKhan/dawn/internal/middleware"
	"github.com/DevAttaKhan/dawn/internal/postgres"
	"github.com/DevAttaKhan/dawn/internal/repository"
	"github.com/DevAttaKhan/dawn/internal/router"
	"github.com/DevAttaKhan/dawn/internal/routes"
	"github.com/DevAttaKhan/dawn/internal/service"
	"github.com/jackc/pgx/v5/pgxpool"
	_ "github.com/jackc/pgx/v5/stdlib"
)

func run() error {
	ctx := context.Background()

	// Load configuration
	cfg, err := internal.NewConfig()
	if err != nil {
		return fmt.Errorf("config initialization failed: %w", err)
	}

	// Configure logger
	logger := internal.NewLogger(os.Stdout, cfg.Env, cfg.LogLevel)

	// Initialize database/sql connection for migrations
	logger.Info("Connecting to database...")
	sqlDB, err := sql.Open("pgx", cfg.DatabaseUrl)
	if err != nil {
		return fmt.Errorf("database connection failed: %w", err)
	}
	defer sqlDB.Close()

	// Verify database connection
	if err := sqlDB.Ping(); err != nil {
		return fmt.Errorf("database ping failed: %w", err)
	}
	logger.Info("Database connection established")

	// Run migrations
	logger.Info("Running database migrations...")
	if err := internal.RunMigrations(sqlDB); err != nil {
		return fmt.Errorf("migration failed: %w", err)
	}
	logger.Info("Database migrations completed successfully")

	// Initialize pgx connection pool for application
	pool, err := pgxpool.New(ctx, cfg.DatabaseUrl)
	if err != nil {
		return fmt.Errorf("failed to create connection pool: %w", err)
	}
	defer pool.Close()

	// Initialize repository
	repo := repository.New(pool)

	// Initialize services
	catalogService := postgres.NewCatalogStore(repo, logger)

	cartService := service.NewCartService(time.Duration(cfg.CartTTLHours)*time.Hour, logger)
	defer cartService.Close()

	// Load templates with renderer
	logger.Info("Loading templates...")
	renderer, err := handler.NewRenderer(cfg.TemplatesDir, logger)
	if err != nil {
		return fmt.Errorf("failed to initialize renderer: %w", err)
	}
	logger.Info("Templates loaded successfully")

	// Session cookie settings
	cookieConfig := cookie.NewConfig(cfg.SecureCookies)

	// Initialize Prometheus metrics
	metrics := middleware.NewMetrics("dawn")

	// Configure security headers
	securityConfig := middleware.DefaultSecurityHeadersConfig()
	if cfg.Env == "dev" {
		// Relax CSP in development for easier debugging
		securityConfig.ContentSecurityPolicy = ""
		securityConfig.HSTSMaxAge = 0 // Disable HSTS in development
	}

	// Build route dependencies
	deps := routes.StorefrontDeps{
		HomeHandler:       storefront.NewHomeHandler(catalogService, renderer, logger),
		ProductHandler:    storefront.NewProductHandler(catalogService, renderer, logger),
		CollectionHandler: storefront.NewCollectionHandler(catalogService, renderer, logger),
		CartHandler:       storefront.NewCartHandler(cartService, catalogService, renderer, cookieConfig, logger),
		MetricsHandler:    metrics.Handler(),
		StaticDir:         cfg.StaticDir,
	}

	// Create router and register routes
	r := router.New(
		router.Recovery(logger),
		middleware.RequestID,
		metrics.Middleware,
		middleware.SecurityHeaders(securityConfig),
		middleware.MaxBodySize(middleware.DefaultMaxBodySize),
		middleware.Timeout(middleware.DefaultTimeout),
		router.Logger(logger),
		middleware.WithRequestLogger(logger),
	)

	// Health check endpoint
	r.Get("/health", func(w http.ResponseWriter, req *http.Request) {
		w.WriteHeader(http.StatusOK)
		w.Write([]byte("OK"))
	})

	routes.RegisterStorefrontRoutes(r, deps)

	// Start server
	addr := fmt.Sprintf(":%d", cfg.Port)
	logger.Info("Starting storefront server", "address", addr)

	if err := http.ListenAndServe(addr, r); err != nil {
		return fmt.Errorf("server failed: %w", err)
	}

	return nil
}

func main() {
	if err := run(); err != nil {
		log.Fatal(err)
	}
}
