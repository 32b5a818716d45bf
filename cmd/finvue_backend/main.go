package main

import (
	"context"
	"database/sql"
	"log/slog"
	"os"
	"time"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"

	migrate "github.com/golang-migrate/migrate/v4"
	migratesqlite "github.com/golang-migrate/migrate/v4/database/sqlite"
	_ "github.com/golang-migrate/migrate/v4/source/file"
	_ "modernc.org/sqlite"

	"github.com/finvue/finvue_backend/internal/adapters/ai"
	"github.com/finvue/finvue_backend/internal/adapters/database/sqlite"
	"github.com/finvue/finvue_backend/internal/adapters/memstate"
	"github.com/finvue/finvue_backend/internal/adapters/sheets"
	"github.com/finvue/finvue_backend/internal/core/ports/clients"
	"github.com/finvue/finvue_backend/internal/core/services"
	"github.com/finvue/finvue_backend/internal/handlers"
	"github.com/finvue/finvue_backend/internal/middleware"
	"github.com/finvue/finvue_backend/internal/platform/config"
)

// @title FinVue Backend API
// @version 1.0
// @description Expense and income ledger with a role-based approval workflow.

// @host localhost:8080
// @BasePath /api/v1

// @securityDefinitions.apikey BearerAuth
// @in header
// @name Authorization
// @description Type "Bearer" followed by a space and JWT token.

// @security BearerAuth
func main() {
	// Initialize structured logger
	logger := slog.New(slog.NewJSONHandler(os.Stdout, nil))
	slog.SetDefault(logger)

	cfg, err := config.LoadConfig()
	if err != nil {
		logger.Error("Failed to load config", slog.String("error", err.Error()))
		os.Exit(1)
	}

	db, err := sql.Open("sqlite", cfg.DatabasePath)
	if err != nil {
		logger.Error("Failed to open database", slog.String("error", err.Error()))
		os.Exit(1)
	}
	defer db.Close()
	// The snapshot writer is the only concurrent user; a single connection
	// avoids SQLITE_BUSY under the write-after-every-mutation pattern.
	db.SetMaxOpenConns(1)

	if err := runMigrations(db, logger); err != nil {
		os.Exit(1)
	}

	// Load the aggregate into the state store
	store, err := memstate.Open(context.Background(), sqlite.NewSnapshotRepository(db), logger)
	if err != nil {
		logger.Error("Failed to load application state", slog.String("error", err.Error()))
		os.Exit(1)
	}
	logger.Info("Application state loaded")

	// Outbound collaborators; export and insights are optional features
	var exporter clients.SpreadsheetExporter
	if cfg.GoogleCredentialsJSON != "" || cfg.GoogleCredentialsFile != "" {
		sheetClient, err := sheets.NewGoogleClient(context.Background(), cfg.GoogleCredentialsJSON, cfg.GoogleCredentialsFile)
		if err != nil {
			logger.Error("Failed to create sheets client", slog.String("error", err.Error()))
			os.Exit(1)
		}
		exporter = sheetClient
	}
	var tips clients.TipGenerator
	if cfg.GeminiAPIKey != "" {
		tips = ai.NewGeminiClient(cfg.GeminiAPIKey, cfg.GeminiModel)
	}

	serviceContainer := services.NewServiceContainer(
		store.Repositories(),
		sheets.NewWebhookSyncer(),
		exporter,
		tips,
		cfg.GoogleSpreadsheetID,
	)

	if cfg.IsProduction {
		gin.SetMode(gin.ReleaseMode)
	}

	r := gin.New()
	r.Use(middleware.StructuredLoggingMiddleware(logger), gin.Recovery())
	r.Use(cors.New(cors.Config{
		AllowOrigins:     []string{"*"},
		AllowMethods:     []string{"GET", "POST", "PUT", "PATCH", "DELETE", "OPTIONS"},
		AllowHeaders:     []string{"Origin", "Content-Type", "Authorization"},
		ExposeHeaders:    []string{"X-Request-ID"},
		AllowCredentials: false,
		MaxAge:           12 * time.Hour,
	}))

	if err := r.SetTrustedProxies(nil); err != nil {
		logger.Error("Failed to set trusted proxies", slog.String("error", err.Error()))
		os.Exit(1)
	}

	handlers.RegisterRoutes(r, cfg, serviceContainer)

	logger.Info("Server starting", slog.String("port", cfg.Port))
	if err := r.Run(":" + cfg.Port); err != nil {
		logger.Error("Server failed to run", slog.String("error", err.Error()))
		os.Exit(1)
	}
}

// runMigrations applies all pending schema migrations from the migrations
// directory.
func runMigrations(db *sql.DB, logger *slog.Logger) error {
	logger.Info("Running database migrations...")

	driver, err := migratesqlite.WithInstance(db, &migratesqlite.Config{})
	if err != nil {
		logger.Error("Could not create sqlite driver instance for migrations", slog.String("error", err.Error()))
		return err
	}

	m, err := migrate.NewWithDatabaseInstance("file://migrations", "sqlite", driver)
	if err != nil {
		logger.Error("Could not create migrate instance", slog.String("error", err.Error()))
		return err
	}

	err = m.Up()
	if err != nil && err != migrate.ErrNoChange {
		logger.Error("Failed to apply migrations", slog.String("error", err.Error()))
		return err
	}

	if err == migrate.ErrNoChange {
		logger.Info("No new migrations to apply.")
	} else {
		logger.Info("Database migrations applied successfully.")
	}
	return nil
}
