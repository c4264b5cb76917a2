// internal/router/router.go
package router

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/sirupsen/logrus"
	"gorm.io/gorm"

	"github.com/stamperia/stamperia-backend/internal/config"
	"github.com/stamperia/stamperia-backend/internal/handlers"
	"github.com/stamperia/stamperia-backend/internal/middleware"
	"github.com/stamperia/stamperia-backend/internal/repository"
	"github.com/stamperia/stamperia-backend/internal/services"
	"github.com/stamperia/stamperia-backend/internal/utils"
)

func Initialize(db *gorm.DB, cfg *config.Config) *gin.Engine {
	// Data access
	stores := repository.NewStores(db)
	uow := repository.NewUnitOfWork(db)

	// Services
	notificationService := services.NewNotificationService(cfg)
	storageService, err := services.NewStorageService(cfg)
	if err != nil {
		logrus.WithError(err).Fatal("Failed to initialize storage")
	}

	authService := services.NewAuthService(stores.Users, cfg)
	productService := services.NewProductService(stores.Products)
	designService := services.NewDesignService(stores.Designs, stores.Products, storageService)
	reviewService := services.NewReviewService(stores.Designs, stores.Reviews, uow, notificationService)

	// Handlers
	authHandler := handlers.NewAuthHandler(authService)
	productHandler := handlers.NewProductHandler(productService)
	designHandler := handlers.NewDesignHandler(designService)
	reviewHandler := handlers.NewReviewHandler(reviewService)
	uploadHandler := handlers.NewUploadHandler(storageService)

	utils.SetJWTSecret(cfg.JWT.SecretKey)

	r := gin.New()

	// Global middleware
	r.Use(gin.Recovery())
	r.Use(middleware.RequestLogger())
	r.Use(middleware.CORS(cfg))
	r.Use(middleware.I18nMiddleware())
	r.Use(middleware.GeneralRateLimit())
	r.Use(middleware.AuditLogMiddleware(db))

	// Health check
	r.GET("/health", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{
			"status":  "healthy",
			"version": "1.0.0",
		})
	})

	// Local uploads are only served when S3 is not configured
	if cfg.AWS.AccessKeyID == "" {
		r.Static("/uploads", "./uploads")
	}

	v1 := r.Group("/v1")
	{
		// Authentication
		auth := v1.Group("/auth")
		auth.Use(middleware.AuthRateLimit())
		{
			auth.POST("/register", authHandler.Register)
			auth.POST("/login", authHandler.Login)
			auth.POST("/refresh", authHandler.RefreshToken)
			auth.GET("/profile", middleware.AuthRequired(), authHandler.GetProfile)
		}

		// Product catalog
		products := v1.Group("/products")
		{
			products.GET("", productHandler.GetProducts)
			products.GET("/:id", productHandler.GetProduct)

			admin := products.Group("")
			admin.Use(middleware.AuthRequired(), middleware.AdminRequired())
			{
				admin.POST("", productHandler.CreateProduct)
				admin.PUT("/:id", productHandler.UpdateProduct)
				admin.DELETE("/:id", productHandler.DeleteProduct)
			}
		}

		// Designs and the review workflow
		designs := v1.Group("/designs")
		designs.Use(middleware.AuthRequired())
		{
			designs.POST("", designHandler.CreateDesign)
			designs.GET("", designHandler.GetDesigns)
			designs.GET("/pending", middleware.ReviewerRequired(), designHandler.GetPendingDesigns)
			designs.GET("/:id", designHandler.GetDesign)
			designs.PUT("/:id", designHandler.UpdateDesign)
			designs.DELETE("/:id", designHandler.DeleteDesign)

			designs.POST("/:id/approve", middleware.ReviewerRequired(), reviewHandler.ApproveDesign)
			designs.POST("/:id/reject", middleware.ReviewerRequired(), reviewHandler.RejectDesign)
			designs.GET("/:id/reviews", middleware.ReviewerRequired(), reviewHandler.GetDesignReviews)
			designs.GET("/:id/technical-sheet", middleware.ReviewerRequired(), reviewHandler.GetTechnicalSheet)
		}

		// Uploads
		uploads := v1.Group("/uploads")
		uploads.Use(middleware.AuthRequired(), middleware.UploadRateLimit())
		{
			uploads.POST("/stamp", uploadHandler.UploadStamp)
		}
	}

	return r
}
