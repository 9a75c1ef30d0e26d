package main

import (
	"log"

	"github.com/gin-gonic/gin"
	"motovasiya-api/config"
	"motovasiya-api/database"
	"motovasiya-api/jobs"
	"motovasiya-api/middleware"
	"motovasiya-api/routes"
)

func main() {
	// Load configuration
	cfg := config.Load()

	// Initialize database
	db, err := database.Initialize(cfg.DatabaseURL)
	if err != nil {
		log.Fatal("Failed to connect to database:", err)
	}

	// Run migrations
	if err := database.Migrate(db); err != nil {
		log.Fatal("Failed to migrate database:", err)
	}

	// Seed database with demo data
	if cfg.SeedData {
		if err := database.SeedData(db); err != nil {
			log.Printf("Warning: Failed to seed database: %v", err)
		}
	}

	// Set Gin mode based on environment
	if cfg.Port == "8080" { // Development
		gin.SetMode(gin.DebugMode)
	} else {
		gin.SetMode(gin.ReleaseMode)
	}

	// Create router
	router := gin.New()

	router.Use(routes.SetupCORS())
	router.Use(middleware.RequestID())
	router.Use(middleware.RequestLogger())
	router.Use(middleware.SecurityHeaders())
	router.Use(gin.Recovery())

	// Setup routes
	routes.SetupRoutes(router, db, cfg)

	// Cancel pending bookings whose date has passed
	cleanupJob := jobs.NewBookingCleanupJob(db, cfg.CleanupInterval)
	cleanupJob.Start()
	defer cleanupJob.Stop()

	// Start server
	log.Printf("Starting MotoVasiya booking API on port %s", cfg.Port)

	if err := router.Run(":" + cfg.Port); err != nil {
		log.Fatal("Failed to start server:", err)
	}
}
