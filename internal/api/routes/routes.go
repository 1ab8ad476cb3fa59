package routes

import (
	"moto-catalog-backend/internal/api/handlers"
	"moto-catalog-backend/internal/api/middleware"
	"moto-catalog-backend/internal/cache"
	"moto-catalog-backend/internal/config"
	"moto-catalog-backend/internal/repository"
	"moto-catalog-backend/internal/service"

	"github.com/gin-gonic/gin"
	"github.com/go-playground/validator/v10"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"
	"gorm.io/gorm"
)

// SetupRoutes configures all the routes for the application. The returned
// invalidator must be drained with Wait before the process exits so pending
// cache invalidations are not lost.
func SetupRoutes(db *gorm.DB, queryCache cache.QueryCache, cfg *config.Config) (*gin.Engine, *service.CacheInvalidator) {
	// Create router
	router := gin.New()

	// Add middleware
	router.Use(middleware.RequestID())
	router.Use(middleware.Logger())
	router.Use(middleware.Recovery())
	router.Use(middleware.CORS(cfg))

	if queryCache == nil {
		queryCache = cache.NoopCache{}
	}

	// Initialize validator
	validator := validator.New()

	// Initialize repositories
	catalogRepo := repository.NewComponentCatalogRepository(db)
	modelRepo := repository.NewModelRepository(db)
	yearRepo := repository.NewModelYearRepository(db)
	configRepo := repository.NewConfigurationRepository(db)
	assignmentRepo := repository.NewAssignmentRepository(db)

	// Initialize services
	invalidator := service.NewCacheInvalidator(queryCache)
	resolutionService := service.NewResolutionService(configRepo, yearRepo, assignmentRepo, queryCache, cfg.CacheTTL())
	assignmentService := service.NewAssignmentService(
		catalogRepo, modelRepo, yearRepo, configRepo, assignmentRepo,
		invalidator, validator, cfg.BulkAssignConcurrency,
	)
	usageService := service.NewUsageService(catalogRepo, assignmentRepo, configRepo)
	catalogService := service.NewCatalogService(catalogRepo, validator)

	// Initialize handlers
	var cachePinger handlers.Pinger
	if p, ok := queryCache.(handlers.Pinger); ok {
		cachePinger = p
	}
	healthHandler := handlers.NewHealthHandler(db, cachePinger)
	resolutionHandler := handlers.NewResolutionHandler(resolutionService, assignmentService)
	assignmentHandler := handlers.NewAssignmentHandler(assignmentService)
	componentHandler := handlers.NewComponentHandler(catalogService, usageService)

	// Health check routes
	router.GET("/health", healthHandler.Health)
	router.GET("/health/ready", healthHandler.Ready)
	router.GET("/health/live", healthHandler.Live)

	// Metrics
	router.GET("/metrics", gin.WrapH(promhttp.Handler()))

	// Swagger documentation route
	router.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))

	// Reads are open; mutations go through access control when enabled
	requireAuth := func(c *gin.Context) { c.Next() }
	if cfg.AuthEnabled {
		requireAuth = middleware.NewAccessControl(cfg.JWTSecret).RequireAuth()
	}

	v1 := router.Group("/api/v1")
	{
		// Configuration routes
		configurations := v1.Group("/configurations")
		{
			configurations.GET("/:id/components", resolutionHandler.GetConfigurationComponents)
			configurations.GET("/:id/components/:type", resolutionHandler.GetConfigurationComponent)
			configurations.PUT("/:id/components/:type", requireAuth, resolutionHandler.SetConfigurationComponent)
		}

		// Model year routes
		modelYears := v1.Group("/model-years")
		{
			modelYears.GET("/configurations", resolutionHandler.GetModelYearsConfigurations)
			modelYears.GET("/:id/configurations", resolutionHandler.GetModelYearConfigurations)
		}

		// Assignment routes
		v1.POST("/assignments/:type", requireAuth, assignmentHandler.AssignComponent)
		models := v1.Group("/models")
		{
			models.GET("/:id/assignments", assignmentHandler.ListModelAssignments)
			models.DELETE("/:id/assignments/:type", requireAuth, assignmentHandler.RemoveModelAssignment)
		}

		// Component catalog routes
		components := v1.Group("/components")
		{
			components.POST("", requireAuth, componentHandler.CreateComponent)
			components.GET("/:type", componentHandler.ListComponents)
			components.GET("/:type/:id", componentHandler.GetComponent)
			components.GET("/:type/:id/usage", componentHandler.GetComponentUsage)
			components.GET("/:type/:id/stats", componentHandler.GetComponentStats)
			components.DELETE("/:type/:id", requireAuth, componentHandler.DeleteComponent)
		}
	}

	return router, invalidator
}
