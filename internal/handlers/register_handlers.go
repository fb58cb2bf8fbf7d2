package handlers

import (
	"context"
	"log/slog"
	"net/http"

	"github.com/SscSPs/contracts_tracker/cmd/docs"
	portssvc "github.com/SscSPs/contracts_tracker/internal/core/ports/services"
	"github.com/SscSPs/contracts_tracker/internal/dto"
	"github.com/SscSPs/contracts_tracker/internal/middleware"
	"github.com/SscSPs/contracts_tracker/internal/platform/config"
	"github.com/SscSPs/contracts_tracker/internal/utils"
	"github.com/gin-gonic/gin"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"
	"github.com/ulule/limiter/v3"
)

// Pinger is a dependency probed by the health check.
type Pinger interface {
	Ping(ctx context.Context) error
}

// Dependencies are the infrastructure pieces the routes need besides the services.
// Nil fields disable the matching feature.
type Dependencies struct {
	ContractsAPI  Pinger
	ExportHistory Pinger
	ExportLimiter *limiter.Limiter
	Posthog       *utils.PosthogClientWrapper
}

// RegisterRoutes sets up all application routes, injecting dependencies using interfaces
func RegisterRoutes(
	r *gin.Engine,
	cfg *config.Config,
	services *portssvc.ServiceContainer,
	deps Dependencies,
) {
	// Add health check route
	r.GET("/health", healthHandler(deps))

	// Setup API v1 routes with Auth Middleware, passing service interfaces
	setupAPIV1Routes(r, services, deps)

	// Swagger routes (typically public or conditionally available)
	setupSwaggerRoutes(r, cfg)
}

// setupAPIV1Routes configures the /api/v1 group and delegates to specific entity route registrations
func setupAPIV1Routes(
	r *gin.Engine,
	service *portssvc.ServiceContainer,
	deps Dependencies,
) {
	// Apply AuthMiddleware to the entire v1 group
	v1 := r.Group("/api/v1", middleware.AuthMiddleware(service.Auth))
	if deps.Posthog.IsInitialized() {
		v1.Use(middleware.PosthogMiddleware(deps.Posthog))
	}

	registerUserRoutes(v1, service.Permission)
	registerTableRoutes(v1, service.Table)
	registerPlanRoutes(v1, service.Plan)
	registerExportRoutes(v1, service.Export, deps.ExportLimiter)
}

// setupSwaggerRoutes configures the swagger documentation routes
func setupSwaggerRoutes(r *gin.Engine, cfg *config.Config) {
	if cfg.IsProduction {
		//no swagger in prod
		return
	}
	docs.SwaggerInfo.BasePath = "/api/v1"
	swagger := r.Group("/swagger")
	swagger.GET("/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))
}

// healthHandler godoc
// @Summary Health check
// @Description Reports whether the contracts API and, when enabled, the export history store are reachable
// @Tags health
// @Produce  json
// @Success 200 {object} dto.HealthResponse
// @Failure 503 {object} dto.HealthResponse
// @Router /health [get]
func healthHandler(deps Dependencies) gin.HandlerFunc {
	return func(c *gin.Context) {
		logger := middleware.GetLoggerFromCtx(c.Request.Context())
		resp := dto.HealthResponse{Status: "ok", ContractsAPI: "ok"}
		status := http.StatusOK

		if deps.ContractsAPI != nil {
			if err := deps.ContractsAPI.Ping(c.Request.Context()); err != nil {
				logger.Warn("Contracts API unreachable", slog.String("error", err.Error()))
				resp.ContractsAPI = "unreachable"
				resp.Status = "degraded"
				status = http.StatusServiceUnavailable
			}
		}
		if deps.ExportHistory != nil {
			resp.ExportHistory = "ok"
			if err := deps.ExportHistory.Ping(c.Request.Context()); err != nil {
				logger.Warn("Export history store unreachable", slog.String("error", err.Error()))
				resp.ExportHistory = "unreachable"
				resp.Status = "degraded"
			}
		}
		c.JSON(status, resp)
	}
}
