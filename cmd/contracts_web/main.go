package main

import (
	"context"
	"log/slog"
	"os"

	"github.com/SscSPs/contracts_tracker/internal/adapters/contractsapi"
	"github.com/SscSPs/contracts_tracker/internal/adapters/gsheets"
	"github.com/SscSPs/contracts_tracker/internal/core/services"
	"github.com/SscSPs/contracts_tracker/internal/handlers"
	"github.com/SscSPs/contracts_tracker/internal/middleware"
	"github.com/SscSPs/contracts_tracker/internal/platform/config"
	"github.com/SscSPs/contracts_tracker/internal/repositories/database/pgsql"
	"github.com/SscSPs/contracts_tracker/internal/utils"
	"github.com/SscSPs/contracts_tracker/pkg/database"
	"github.com/gin-gonic/gin"
	"github.com/jackc/pgx/v5/pgxpool"
)

// @title Contracts Tracker API
// @version 1.0
// @description Contract tables, financing plans and report exports on top of the contracts API.

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

	ctx := context.Background()

	contractsClient, err := contractsapi.NewClient(cfg.ContractsAPIURL,
		contractsapi.WithTimeout(cfg.ContractsAPITimeout),
		contractsapi.WithServiceKey(cfg.ContractsAPIKey),
	)
	if err != nil {
		logger.Error("Failed to create contracts API client", slog.String("error", err.Error()))
		os.Exit(1)
	}

	// Export history is optional
	var dbPool *pgxpool.Pool
	if cfg.HistoryEnabled() {
		if err := database.RunMigrations(cfg.DatabaseURL, cfg.MigrationsPath, logger); err != nil {
			logger.Error("Failed to apply migrations", slog.String("error", err.Error()))
			os.Exit(1)
		}
		dbPool, err = database.NewPgxPool(ctx, cfg.DatabaseURL)
		if err != nil {
			logger.Error("Failed to initialize database pool", slog.String("error", err.Error()))
			os.Exit(1)
		}
		defer database.ClosePgxPool(dbPool)
		logger.Info("Database connection pool established.")
	} else {
		logger.Info("PGSQL_URL not set, export history disabled")
	}

	integrations := services.Integrations{}
	if cfg.SheetsEnabled() {
		publisher, err := gsheets.NewPublisher(ctx, cfg.GoogleServiceAccountFile, cfg.GoogleSheetsShareDomain, logger)
		if err != nil {
			logger.Error("Failed to initialize Google Sheets publisher", slog.String("error", err.Error()))
			os.Exit(1)
		}
		integrations.Publisher = publisher
	}

	posthogClient := utils.InitializePosthogClient(cfg.PosthogAPIKey, cfg.PosthogEndpoint, logger)
	defer posthogClient.Close()
	if posthogClient.IsInitialized() {
		integrations.Tracker = posthogClient
	}

	exportLimiter, err := middleware.NewMemoryLimiter(cfg.ExportRateLimit)
	if err != nil {
		logger.Error("Invalid export rate limit", slog.String("rate", cfg.ExportRateLimit), slog.String("error", err.Error()))
		os.Exit(1)
	}

	repos := pgsql.NewRepositoryProvider(dbPool, contractsClient)
	serviceContainer := services.NewServiceContainer(cfg, repos, integrations)

	if cfg.IsProduction {
		gin.SetMode(gin.ReleaseMode)
	}

	r := gin.New()

	// Global middleware (logging, recovery, CORS)
	r.Use(middleware.StructuredLoggingMiddleware(logger), gin.Recovery(), middleware.CORS(cfg.FrontendBaseURL))

	err = r.SetTrustedProxies(nil)
	if err != nil {
		logger.Error("Failed to set trusted proxies", slog.String("error", err.Error()))
		os.Exit(1)
	}

	deps := handlers.Dependencies{
		ContractsAPI:  contractsClient,
		ExportLimiter: exportLimiter,
		Posthog:       posthogClient,
	}
	if repos.ExportHistoryRepo != nil {
		deps.ExportHistory = repos.ExportHistoryRepo
	}
	handlers.RegisterRoutes(r, cfg, serviceContainer, deps)

	logger.Info("Server starting", slog.String("port", cfg.Port))
	if err := r.Run(":" + cfg.Port); err != nil {
		logger.Error("Server failed to run", slog.String("error", err.Error()))
		os.Exit(1)
	}
}
