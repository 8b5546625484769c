package handlers

import (
	"github.com/gin-gonic/gin"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"
	"github.com/ulule/limiter/v3"
	"github.com/ulule/limiter/v3/drivers/store/memory"

	"github.com/velorent/insurance_sales_app/cmd/docs"
	portssvc "github.com/velorent/insurance_sales_app/internal/core/ports/services"
	"github.com/velorent/insurance_sales_app/internal/events"
	"github.com/velorent/insurance_sales_app/internal/middleware"
	"github.com/velorent/insurance_sales_app/internal/platform/config"
)

// RegisterRoutes sets up all application routes, injecting dependencies
// through the service container.
func RegisterRoutes(
	r *gin.Engine,
	cfg *config.Config,
	services *portssvc.ServiceContainer,
	hub *events.Hub,
) {
	r.GET("/health", func(c *gin.Context) {
		c.String(200, "OK")
	})

	registerAuthRoutes(r, cfg, services.AuthSvc)
	setupAPIV1Routes(r, cfg, services, hub)
	setupSwaggerRoutes(r, cfg)
}

// setupAPIV1Routes configures the /api/v1 group and delegates to the
// entity route registrations.
func setupAPIV1Routes(
	r *gin.Engine,
	cfg *config.Config,
	services *portssvc.ServiceContainer,
	hub *events.Hub,
) {
	v1 := r.Group("/api/v1", middleware.AuthMiddleware(cfg.JWTSecret))

	registerUserRoutes(v1, services.UserSvc, services.AuthSvc)
	registerSaleRoutes(v1, services.SaleSvc)
	registerInsuranceTypeRoutes(v1, services.InsuranceTypeSvc)
	registerObjectiveRoutes(v1, services.ObjectiveSvc)
	registerDashboardRoutes(v1, services.ReportingSvc)
	registerExportRoutes(v1, services.ExportSvc)
	registerEventRoutes(v1, hub)
}

// newLoginRateLimiter builds the in-memory limiter guarding credential
// endpoints.
func newLoginRateLimiter(cfg *config.Config) *limiter.Limiter {
	rate, err := limiter.NewRateFromFormatted(cfg.LoginRateLimit)
	if err != nil {
		rate, _ = limiter.NewRateFromFormatted("5-M")
	}
	return limiter.New(memory.NewStore(), rate)
}

// setupSwaggerRoutes exposes the API docs outside production.
func setupSwaggerRoutes(r *gin.Engine, cfg *config.Config) {
	if cfg.IsProduction {
		return
	}
	docs.SwaggerInfo.BasePath = "/api/v1"
	swagger := r.Group("/swagger")
	swagger.GET("/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))
}
