// @title Platewise Dashboard API
// @version 1.0
// @description Multi-tenant restaurant analytics dashboard backend
// @host localhost:8081
// @BasePath /api/v1
// @schemes http
package main

import (
	"fmt"
	"log"
	"os"
	"time"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	"github.com/joho/godotenv"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"

	"github.com/Platewise-Analytics/platewise-dashboard-backend/config"
	"github.com/Platewise-Analytics/platewise-dashboard-backend/middleware"
	"github.com/Platewise-Analytics/platewise-dashboard-backend/routes/dashboard_routes"
	"github.com/Platewise-Analytics/platewise-dashboard-backend/services"
)

func init() {
	_ = godotenv.Load()
}

func main() {
	// Connect to DB
	config.InitDB()
	// Redis connection
	config.ConnectRedis()

	// Cloudinary is optional; without it photo uploads answer 503
	cloudName := os.Getenv("CLOUDINARY_CLOUD_NAME")
	apiKey := os.Getenv("CLOUDINARY_API_KEY")
	apiSecret := os.Getenv("CLOUDINARY_API_SECRET")
	if cloudName != "" {
		if err := services.InitCloudinary(cloudName, apiKey, apiSecret); err != nil {
			log.Fatalf("Failed to initialize Cloudinary: %v", err)
		}
		log.Println("✅ Cloudinary initialized")
	} else {
		log.Println("⚠️  CLOUDINARY_CLOUD_NAME not set, photo uploads disabled")
	}

	// ✅ Initialize JWT Service
	jwtSecret := os.Getenv("JWT_SECRET")
	if jwtSecret == "" {
		log.Fatal("❌ JWT_SECRET environment variable not set")
	}
	if err := services.InitJWTService(jwtSecret); err != nil {
		log.Fatalf("Failed to initialize JWT service: %v", err)
	}
	log.Println("✅ JWT Service initialized")

	corsCfg := cors.Config{
		AllowOrigins:     []string{"http://localhost:3000", "http://localhost:3001"},
		AllowMethods:     []string{"GET", "POST", "PUT", "PATCH", "DELETE", "OPTIONS"},
		AllowHeaders:     []string{"Origin", "Content-Type", "Accept", "Authorization", "X-CSRF-Token", "X-Requested-With"},
		AllowCredentials: true,
		MaxAge:           12 * time.Hour,
		ExposeHeaders:    []string{"Content-Disposition", "Content-Length"},
	}

	router := gin.Default()
	router.Use(cors.New(corsCfg))

	// Register API routes
	api := router.Group("/api/v1")

	// Public: register / login / accept-invite (+ /auth/me behind its own auth)
	dashboard_routes.SetupAuthRoutes(api)
	log.Println("✅ Auth routes registered")

	// Everything else requires a session and is tenant-scoped
	dashboard := api.Group("")
	dashboard.Use(middleware.RateLimiter(100, time.Minute))
	dashboard.Use(middleware.AuthMiddleware())
	dashboard.Use(middleware.AuditLoggingMiddleware())
	dashboard_routes.SetupMenuRoutes(dashboard)
	dashboard_routes.SetupImportRoutes(dashboard)
	dashboard_routes.SetupAnalyticsRoutes(dashboard)
	dashboard_routes.SetupSettingsRoutes(dashboard)
	dashboard_routes.SetupInviteRoutes(dashboard)
	log.Println("✅ Dashboard routes registered")

	// Swagger docs
	router.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))

	port := os.Getenv("PORT")
	if port == "" {
		port = "8081"
	}
	fmt.Println("🚀 Server is running on http://localhost:" + port)
	router.Run(":" + port)
}
