package http

import (
	"github.com/gin-gonic/gin"

	"github.com/geerin/backend/config"
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
	router.Use(RequestIDMiddleware())
	router.Use(CORSMiddleware(cfg.Server.AllowedOrigins))

	// Health check endpoint
	router.GET("/health", handler.HealthCheck)

	// Catalog routes. Deletes and updates identify the product with an id
	// query parameter, matching the public contract.
	api := router.Group("/api")
	{
		products := api.Group("/products")
		{
			products.GET("", handler.ListProducts)
			products.POST("", handler.CreateProduct)
			products.PUT("", handler.UpdateProduct)
			products.DELETE("", handler.DeleteProduct)
			products.GET("/detail", handler.GetProductDetail)
		}
	}

	return router
}
