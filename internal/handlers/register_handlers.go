package handlers

import (
	"github.com/gin-gonic/gin"

	portssvc "github.com/finvue/finvue_backend/internal/core/ports/services"
	"github.com/finvue/finvue_backend/internal/middleware"
	"github.com/finvue/finvue_backend/internal/platform/config"
)

// RegisterRoutes sets up all application routes, injecting dependencies using interfaces
func RegisterRoutes(
	r *gin.Engine,
	cfg *config.Config,
	services *portssvc.ServiceContainer,
) {
	// Add health check route
	r.GET("/health", GetHome)

	// Register public authentication routes
	registerAuthRoutes(r, cfg, services.Auth)

	// Setup API v1 routes with Auth Middleware, passing service interfaces
	setupAPIV1Routes(r, cfg, services)
}

// setupAPIV1Routes configures the /api/v1 group and delegates to specific entity route registrations
func setupAPIV1Routes(
	r *gin.Engine,
	cfg *config.Config,
	services *portssvc.ServiceContainer,
) {
	// Every v1 route requires a valid token and a resolvable viewer
	v1 := r.Group("/api/v1",
		middleware.AuthMiddleware(cfg.JWTSecret),
		middleware.ViewerMiddleware(services.Auth),
	)

	registerSessionRoutes(v1, services.User, services.Activity)
	registerUserRoutes(v1, services.User)
	registerTransactionRoutes(v1, services.Transaction, services.Reporting)
	registerReportingRoutes(v1, services.Reporting)
	registerActivityRoutes(v1, services.Activity)
	registerSettingsRoutes(v1, services.Settings)
	registerCategoryRoutes(v1, services.Category)
	registerSyncRoutes(v1, services.Sync)
	registerInsightsRoutes(v1, services.Insights)
}
