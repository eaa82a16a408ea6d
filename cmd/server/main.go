package main

import (
	"context"
	"database/sql"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"lingolist/internal/assets"
	"lingolist/internal/config"
	"lingolist/internal/repository/postgres"
	"lingolist/internal/server"
	"lingolist/internal/service"
	"lingolist/internal/translator"

	"github.com/golang-migrate/migrate/v4"
	postgresdb "github.com/golang-migrate/migrate/v4/database/postgres"
	_ "github.com/golang-migrate/migrate/v4/source/file"
	"github.com/labstack/echo/v4"
	echomw "github.com/labstack/echo/v4/middleware"
	_ "github.com/lib/pq"
	"go.uber.org/zap"
)

func main() {
	// Initialize logger
	logger, err := zap.NewProduction()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Failed to initialize logger: %v\n", err)
		os.Exit(1)
	}
	defer logger.Sync()

	logger.Info("Starting lingolist server")

	// Load configuration
	cfg, err := config.Load()
	if err != nil {
		logger.Fatal("Failed to load config", zap.Error(err))
	}

	logger.Info("Configuration loaded successfully")

	// Connect to database with retries
	db, err := connectDatabase(cfg.DSN(), logger)
	if err != nil {
		logger.Fatal("Failed to connect to database", zap.Error(err))
	}
	defer db.Close()

	logger.Info("Database connection established")

	// Run migrations
	if err := runMigrations(db, logger); err != nil {
		logger.Fatal("Failed to run migrations", zap.Error(err))
	}

	logger.Info("Database migrations completed")

	// Initialize repositories
	listRepo := postgres.NewListRepo(db)
	itemRepo := postgres.NewItemRepo(db)
	shareRepo := postgres.NewShareRepo(db)
	wordRepo := postgres.NewWordRepo(db)
	captureRepo := postgres.NewCaptureRepo(db)
	flashcardRepo := postgres.NewFlashcardRepo(db)

	// Initialize cover-image storage
	assetStore, err := newAssetStore(cfg, logger)
	if err != nil {
		logger.Fatal("Failed to initialize asset store", zap.Error(err))
	}

	// Initialize services
	provider := translator.NewOpenAIProvider(cfg.OpenAIAPIKey)
	translationService := service.NewTranslationService(wordRepo, provider, logger)
	listService := service.NewListService(listRepo, itemRepo, shareRepo, assetStore, logger)
	insertService := service.NewInsertService(listRepo, itemRepo, captureRepo, wordRepo, listService, logger)
	shareService := service.NewShareService(shareRepo, listRepo, itemRepo, cfg.ShareBaseURL, logger)
	captureService := service.NewCaptureService(captureRepo, translationService, logger)
	flashcardService := service.NewFlashcardService(flashcardRepo, captureRepo, logger)

	// Initialize HTTP server
	e := echo.New()
	e.HideBanner = true
	e.Use(echomw.Recover())

	srv := server.New(listService, insertService, shareService, captureService, flashcardService, translationService, logger)
	srv.RegisterRoutes(e)

	logger.Info("Routes registered")

	// Start server in background
	go func() {
		if err := e.Start(cfg.HTTPAddr); err != nil && err != http.ErrServerClosed {
			logger.Fatal("Server stopped unexpectedly", zap.Error(err))
		}
	}()

	logger.Info("Server started", zap.String("addr", cfg.HTTPAddr))

	// Wait for interrupt signal
	sigChan := make(chan os.Signal, 1)
	signal.Notify(sigChan, os.Interrupt, syscall.SIGTERM)

	<-sigChan

	logger.Info("Shutdown signal received, stopping server...")

	// Graceful shutdown
	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	if err := e.Shutdown(ctx); err != nil {
		logger.Error("Graceful shutdown failed", zap.Error(err))
	}

	logger.Info("Server stopped gracefully")
}

// connectDatabase connects to PostgreSQL with retries
func connectDatabase(dsn string, logger *zap.Logger) (*sql.DB, error) {
	var db *sql.DB
	var err error

	maxRetries := 30
	retryDelay := 2 * time.Second

	for i := 0; i < maxRetries; i++ {
		db, err = sql.Open("postgres", dsn)
		if err != nil {
			logger.Warn("Failed to open database connection",
				zap.Int("attempt", i+1),
				zap.Error(err),
			)
			time.Sleep(retryDelay)
			continue
		}

		// Test connection
		if err = db.Ping(); err != nil {
			logger.Warn("Failed to ping database",
				zap.Int("attempt", i+1),
				zap.Error(err),
			)
			db.Close()
			time.Sleep(retryDelay)
			continue
		}

		// Connection successful
		db.SetMaxOpenConns(25)
		db.SetMaxIdleConns(5)
		db.SetConnMaxLifetime(5 * time.Minute)

		return db, nil
	}

	return nil, fmt.Errorf("failed to connect to database after %d attempts: %w", maxRetries, err)
}

// runMigrations runs database migrations
func runMigrations(db *sql.DB, logger *zap.Logger) error {
	driver, err := postgresdb.WithInstance(db, &postgresdb.Config{})
	if err != nil {
		return fmt.Errorf("failed to create migration driver: %w", err)
	}

	m, err := migrate.NewWithDatabaseInstance(
		"file://migrations",
		"postgres",
		driver,
	)
	if err != nil {
		return fmt.Errorf("failed to create migration instance: %w", err)
	}

	// Run migrations
	if err := m.Up(); err != nil && err != migrate.ErrNoChange {
		return fmt.Errorf("failed to run migrations: %w", err)
	}

	logger.Info("Migrations applied")
	return nil
}

// newAssetStore picks the cover-image backend; without a bucket, cover
// uploads are rejected but everything else works.
func newAssetStore(cfg *config.Config, logger *zap.Logger) (assets.Store, error) {
	if cfg.Assets.S3Bucket == "" {
		logger.Warn("No S3 bucket configured, cover images disabled")
		return assets.Disabled{}, nil
	}

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	return assets.NewS3Store(ctx, cfg.Assets.S3Bucket, cfg.Assets.S3Region)
}
