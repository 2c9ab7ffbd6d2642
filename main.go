package main

import (
	"log"
	"net/http"
	"time"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"

	"github.com/casacare/casacare-admin-api/config"
	"github.com/casacare/casacare-admin-api/controllers"
	"github.com/casacare/casacare-admin-api/middleware"
	"github.com/casacare/casacare-admin-api/models"
	"github.com/casacare/casacare-admin-api/services"
	"github.com/casacare/casacare-admin-api/utils"
)

func main() {
	log.Println("Starting CasaCare Admin API server...")

	// Load configuration
	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("Failed to load configuration: %v", err)
	}

	// Connect to database
	if err := config.ConnectDatabase(); err != nil {
		log.Fatalf("Failed to connect to database: %v", err)
	}

	// Auto-migrate database models
	db := config.GetDB()
	if err := db.AutoMigrate(
		&models.AdminUser{},
		&models.Profile{},
		&models.Offering{},
		&models.Order{},
		&models.OrderItem{},
		&models.Coupon{},
		&models.Contact{},
	); err != nil {
		log.Fatalf("Failed to migrate database: %v", err)
	}
	log.Println("Database migration completed successfully")

	// Image storage: S3 when a bucket is configured, local disk otherwise
	if cfg.AWSS3Bucket != "" {
		s3Service, err := services.InitS3Service()
		if err != nil {
			log.Fatalf("Failed to initialize S3: %v", err)
		}
		services.InitImageService(s3Service)
		log.Printf("Image storage: S3 bucket %s", cfg.AWSS3Bucket)
	} else {
		utils.UploadDir = cfg.UploadDir
		services.InitLocalImageService(cfg.UploadDir)
		log.Printf("Image storage: local directory %s", cfg.UploadDir)
	}

	router := setupRouter()

	// Start server
	addr := ":" + cfg.Port
	log.Printf("Server is running on http://localhost%s", addr)
	if err := router.Run(addr); err != nil {
		log.Fatalf("Failed to start server: %v", err)
	}
}

// setupRouter builds the Gin engine with all middleware and routes
func setupRouter() *gin.Engine {
	router := gin.Default()

	corsConfig := cors.DefaultConfig()
	corsConfig.AllowAllOrigins = true
	corsConfig.AllowHeaders = []string{"Origin", "Content-Type", "Accept", "Authorization"}
	corsConfig.AllowMethods = []string{"GET", "POST", "PUT", "PATCH", "DELETE", "OPTIONS"}
	corsConfig.MaxAge = 12 * time.Hour
	router.Use(cors.New(corsConfig))

	// Authentication routes
	auth := router.Group("/auth/admin")
	{
		auth.POST("/signup", controllers.SignupAdmin)
		auth.POST("/login", controllers.LoginAdmin)
		auth.GET("/me", middleware.RequireAdmin(), controllers.Me)
	}

	// Public routes: health, contact intake, locally stored images
	router.GET("/api/health", healthCheck)
	router.POST("/api/contact", controllers.CreateContact)
	router.GET("/api/uploads/:filename", controllers.GetUploadedImage)

	// Admin routes
	api := router.Group("/api", middleware.RequireAdmin())
	{
		api.GET("/offerings", controllers.ListOfferings)
		api.GET("/offerings/:id", controllers.GetOffering)
		api.POST("/offerings", controllers.CreateOffering)
		api.PUT("/offerings/:id", controllers.UpdateOffering)
		api.DELETE("/offerings/:id", controllers.DeleteOffering)

		api.GET("/orders", controllers.ListOrders)
		api.GET("/orders/:id", controllers.GetOrder)
		api.POST("/orders", controllers.CreateOrder)
		api.PUT("/orders/:id", controllers.UpdateOrder)
		api.PUT("/orders/:id/status", controllers.UpdateOrderStatus)
		api.GET("/orders/:id/items", controllers.ListOrderItems)
		api.POST("/orders/:id/items", controllers.AddOrderItem)
		api.DELETE("/orders/:id/items/:itemId", controllers.RemoveOrderItem)

		api.GET("/profiles", controllers.ListProfiles)
		api.GET("/profiles/:id", controllers.GetProfile)
		api.POST("/profiles", controllers.CreateProfile)
		api.PUT("/profiles/:id", controllers.UpdateProfile)
		api.DELETE("/profiles/:id", controllers.DeleteProfile)

		api.GET("/users", controllers.ListUsers)
		api.GET("/users/:id", controllers.GetUser)
		api.POST("/users", controllers.CreateUser)
		api.PUT("/users/:id", controllers.UpdateUser)
		api.PATCH("/users/:id/status", controllers.UpdateUserStatus)
		api.DELETE("/users/:id", controllers.DeleteUser)

		api.GET("/admin/coupons", controllers.ListCoupons)
		api.POST("/admin/coupons", controllers.CreateCoupon)
		api.PUT("/admin/coupons/:id", controllers.UpdateCoupon)
		api.DELETE("/admin/coupons/:id", controllers.DeleteCoupon)

		api.GET("/contact", controllers.ListContacts)
		api.DELETE("/contact/:id", controllers.DeleteContact)

		api.POST("/upload", controllers.UploadImage)
	}

	return router
}

// healthCheck handles the health check endpoint
func healthCheck(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{
		"message": "CasaCare Admin API is running",
	})
}
