package main

import (
	"context"
	"fmt"
	"log"
	"os"
	"time"

	"github.com/Voltify-Social/voltify-panel-backend/catalog"
	"github.com/Voltify-Social/voltify-panel-backend/config"
	"github.com/Voltify-Social/voltify-panel-backend/middleware"
	"github.com/Voltify-Social/voltify-panel-backend/models"
	"github.com/Voltify-Social/voltify-panel-backend/routes/panel_routes"
	"github.com/Voltify-Social/voltify-panel-backend/services"
	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	"github.com/joho/godotenv"
)

func init() {
	_ = godotenv.Load()
}

func main() {
	// Connect to DB
	config.InitDB()
	// Redis connection
	config.ConnectRedis()

	if err := config.PanelGorm.AutoMigrate(
		&models.User{},
		&models.ServiceRecord{},
		&models.PlacedOrder{},
	); err != nil {
		log.Fatalf("❌ Failed to migrate database: %v", err)
	}

	// ✅ Initialize JWT Service for customer sessions
	jwtSecret := os.Getenv("JWT_SECRET")
	if jwtSecret == "" {
		log.Fatal("❌ JWT_SECRET environment variable not set")
	}
	if err := services.InitJWTService(jwtSecret); err != nil {
		log.Fatalf("Failed to initialize JWT service: %v", err)
	}
	log.Println("✅ JWT Service initialized")

	// ✅ Provider client uses the redis-backed credential store
	services.InitProviderClient(services.GetCredentialService())

	// Warm catalog load. A failure blocks the catalog surface (503) but
	// the server still comes up so customers can authenticate.
	loadCtx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	if err := catalog.Load(loadCtx); err != nil {
		log.Printf("⚠️ Catalog load failed: %v", err)
	}
	cancel()

	corsCfg := cors.Config{
		AllowOrigins:     []string{"http://localhost:3000", "http://localhost:3001"},
		AllowMethods:     []string{"GET", "POST", "PUT", "PATCH", "DELETE", "OPTIONS"},
		AllowHeaders:     []string{"Origin", "Content-Type", "Accept", "Authorization", "X-CSRF-Token", "X-Requested-With"},
		AllowCredentials: true,
		MaxAge:           12 * time.Hour,
	}

	router := gin.Default()
	router.Use(cors.New(corsCfg))

	// Register API routes
	api := router.Group("/api/v1")
	api.Use(middleware.RateLimiter(100, time.Minute))

	panel_routes.SetupAuthRoutes(api)
	panel_routes.SetupCatalogRoutes(api)
	panel_routes.SetupDraftRoutes(api)
	panel_routes.SetupOrderRoutes(api)
	log.Println("✅ Panel routes registered")

	fmt.Println("🚀 Server is running on http://localhost:8080")
	router.Run(":8080")
}
