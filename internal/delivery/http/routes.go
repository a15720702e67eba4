package http

import (
	"github.com/gin-gonic/gin"

	"github.com/homecart/backend/config"
)

// SetupRouter creates and configures the Gin router
func SetupRouter(cfg *config.Config, handler *Handler) *gin.Engine {
	// Set Gin mode based on environment
	if cfg.Server.Environment == "production" {
		gin.SetMode(gin.ReleaseMode)
	}

	router := gin.New()

	// Global middleware
	router.Use(RecoveryMiddleware())
	router.Use(LoggerMiddleware())
	router.Use(CORSMiddleware(cfg.Server.AllowedOrigins))
	router.Use(RateLimitMiddleware(cfg.RateLimit.PerIP, cfg.RateLimit.Burst))

	// Health check endpoint
	router.GET("/health", handler.HealthCheck)

	// API v1 routes
	v1 := router.Group("/api/v1")
	{
		v1.POST("/parse", handler.ParseBulk)

		products := v1.Group("/products")
		{
			products.GET("", handler.ListProducts)
			products.GET("/suggest", handler.SuggestProducts)
		}

		v1.GET("/categories", handler.ListCategories)
		v1.GET("/lists", handler.ListLists)

		lists := v1.Group("/lists/:listId")
		{
			lists.GET("/items", handler.ListItems)
			lists.POST("/items", handler.CreateItem)
			lists.POST("/items/bulk", handler.CommitParsedItems)
			lists.PATCH("/items/:itemId", handler.UpdateItem)
			lists.DELETE("/items/:itemId", handler.DeleteItem)
			lists.DELETE("/items", handler.ClearItems)
		}
	}

	return router
}
