package app

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/newrelic/go-agent/v3/integrations/nrgin"
	"github.com/newrelic/go-agent/v3/newrelic"

	"express/internal/handler"
	"express/internal/middleware"
	"express/internal/redis"
)

// RouterDeps contains all dependencies needed for the router.
type RouterDeps struct {
	PackageHandler *handler.PackageHandler
	VehicleHandler *handler.VehicleHandler
	StateHandler   *handler.StateHandler
	// IdempotencyStore is nil when Redis is disabled.
	IdempotencyStore redis.IdempotencyStoreInterface
	NewRelicApp      *newrelic.Application
}

// NewRouter creates a new Gin router with all routes registered.
func NewRouter(deps RouterDeps) *gin.Engine {
	router := gin.New()

	// Global middleware.
	router.Use(gin.Recovery())
	router.Use(gin.Logger())
	router.Use(middleware.RequestIDMiddleware())
	router.Use(middleware.CORSMiddleware())

	// Add New Relic middleware if enabled.
	if deps.NewRelicApp != nil {
		router.Use(nrgin.Middleware(deps.NewRelicApp))
		router.Use(middleware.ErrorReportingMiddleware())
	}

	if deps.IdempotencyStore != nil {
		router.Use(middleware.IdempotencyMiddleware(deps.IdempotencyStore))
	}

	// Health check.
	router.GET("/health", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"status": "ok"})
	})

	// API v1 routes.
	v1 := router.Group("/v1")
	{
		v1.GET("/state", deps.StateHandler.GetState)
		v1.GET("/notifications", deps.StateHandler.StreamNotifications)
		v1.GET("/offers", deps.PackageHandler.GetOffers)
		v1.GET("/quote", deps.PackageHandler.GetQuote)
		v1.GET("/estimate", deps.VehicleHandler.GetEstimate)

		// Pending input routes.
		input := v1.Group("/input")
		{
			input.POST("/weight", deps.PackageHandler.SetWeight)
			input.POST("/distance", deps.PackageHandler.SetDistance)
			input.POST("/offer-code", deps.PackageHandler.SetOfferCode)
		}

		// Storage routes.
		storage := v1.Group("/storage")
		{
			storage.GET("", deps.PackageHandler.GetStorage)
			storage.POST("", deps.PackageHandler.Commit)
		}

		// Vehicle routes.
		vehicles := v1.Group("/vehicles")
		{
			vehicles.GET("/available", deps.VehicleHandler.GetAvailable)
			vehicles.GET("/in-transit", deps.VehicleHandler.GetInTransit)
			vehicles.POST("/:name/packages", deps.VehicleHandler.Assign)
			vehicles.POST("/:name/deliveries", deps.VehicleHandler.Deliver)
		}
	}

	return router
}
