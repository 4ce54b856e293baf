// internal/router/router.go
package router

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/sirupsen/logrus"
	"gorm.io/gorm"

	"github.com/craveshop/crave-backend/internal/config"
	"github.com/craveshop/crave-backend/internal/handlers"
	"github.com/craveshop/crave-backend/internal/middleware"
	"github.com/craveshop/crave-backend/internal/services"
	"github.com/craveshop/crave-backend/internal/utils"
)

func Initialize(db *gorm.DB, cfg *config.Config) *gin.Engine {
	// Initialize services
	catalogService := services.NewCatalogService(db)
	imageService := services.NewImageService(db)
	orderService := services.NewOrderService(db)
	whatsappService := services.NewWhatsAppService(cfg.WhatsApp)
	authService := services.NewAuthService(db, cfg)
	storageService, err := services.NewStorageService(cfg)
	if err != nil {
		logrus.WithError(err).Fatal("Failed to initialize storage service")
	}

	// Initialize handlers
	catalogHandler := handlers.NewCatalogHandler(catalogService)
	orderHandler := handlers.NewOrderHandler(orderService, whatsappService)
	authHandler := handlers.NewAuthHandler(authService)
	adminHandler := handlers.NewAdminHandler(catalogService, imageService, storageService)

	// Set JWT secret
	utils.SetJWTSecret(cfg.JWT.SecretKey)

	// Initialize Gin router
	r := gin.New()

	// Global middleware
	r.Use(gin.Recovery())
	r.Use(middleware.RequestLogger())
	r.Use(middleware.CORS())
	r.Use(middleware.GeneralRateLimit())

	// Health check
	r.GET("/health", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{
			"status":  "healthy",
			"version": "1.0.0",
		})
	})

	api := r.Group("/api")
	{
		// Authentication
		auth := api.Group("/auth")
		auth.Use(middleware.AuthRateLimit())
		{
			auth.POST("/login", authHandler.Login)
		}

		// Public catalog
		categories := api.Group("/categories")
		{
			categories.GET("", catalogHandler.GetCategories)
			categories.GET("/:id", catalogHandler.GetCategory)
		}

		products := api.Group("/products")
		{
			products.GET("", catalogHandler.GetProducts)
			products.GET("/:id", catalogHandler.GetProduct)
		}

		// Orders
		orders := api.Group("/orders")
		{
			orders.GET("", middleware.AuthRequired(), orderHandler.GetOrders)
			orders.POST("/create", middleware.OrderRateLimit(), orderHandler.CreateOrder)
		}

		// Messaging handoff target
		api.GET("/whatsapp", orderHandler.GetWhatsAppNumber)

		// Admin catalog management
		admin := api.Group("/admin")
		admin.Use(middleware.AuthRequired())
		{
			admin.POST("/categories", adminHandler.CreateCategory)
			admin.DELETE("/categories/:id", adminHandler.DeleteCategory)

			admin.POST("/products", adminHandler.CreateProduct)
			admin.PUT("/products/:id", adminHandler.UpdateProduct)
			admin.DELETE("/products/:id", adminHandler.DeleteProduct)

			admin.POST("/products/:id/images", adminHandler.CreateProductImage)
			admin.PUT("/images/:id", adminHandler.UpdateProductImage)
			admin.DELETE("/images/:id", adminHandler.DeleteProductImage)

			admin.POST("/uploads/images", middleware.UploadRateLimit(), adminHandler.UploadImages)
		}
	}

	// Static file serving (for development)
	if cfg.Environment == "development" {
		r.Static("/uploads", "./uploads")
	}

	return r
}
