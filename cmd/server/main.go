package main

import (
	"log"
	"os"
	"os/signal"
	"syscall"

	"barangay-hub/internal/adapters/http/middleware"
	"barangay-hub/internal/adapters/http/routes"
	"barangay-hub/internal/adapters/persistence/models"
	"barangay-hub/internal/adapters/persistence/repositories"
	"barangay-hub/internal/config"
	"barangay-hub/internal/core/services"

	"github.com/gofiber/fiber/v2"
)

func main() {
	// Load configuration
	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("❌ Failed to load configuration: %v", err)
	}

	// Connect to database
	db, err := config.ConnectDatabase(cfg)
	if err != nil {
		log.Fatalf("❌ Failed to connect to database: %v", err)
	}
	defer config.CloseDatabase(db)

	// Auto migrate (creates tables if not exist)
	if err := models.AutoMigrate(db); err != nil {
		log.Fatalf("❌ Failed to auto migrate: %v", err)
	}
	log.Println("✅ Database migration completed")

	// Seed the bootstrap admin account
	if err := config.NewSeeder(db).Run(); err != nil {
		log.Printf("⚠️ Warning: Failed to seed database: %v", err)
	}

	// Start activity-log retention job
	retentionService := services.NewRetentionService(
		repositories.NewActivityRepository(db),
		cfg.Retention.ActivityDays,
	)
	retentionService.Start()
	defer retentionService.Stop()

	// Create Fiber app
	app := fiber.New(fiber.Config{
		AppName:      "Barangay Hub API v1.0",
		BodyLimit:    10 * 1024 * 1024, // announcement images arrive inline
		ErrorHandler: middleware.CustomErrorHandler,
	})

	// Setup middlewares
	middleware.Setup(app, cfg)

	// Setup routes (pass db and cfg for dependency injection)
	routes.Setup(app, db, cfg)

	// Graceful shutdown
	go gracefulShutdown(app)

	// Start server
	log.Printf("🚀 Server starting on port %s [MODE: %s]", cfg.Port, cfg.AppMode)
	if err := app.Listen(":" + cfg.Port); err != nil {
		log.Fatalf("❌ Failed to start server: %v", err)
	}
}

// gracefulShutdown handles graceful shutdown
func gracefulShutdown(app *fiber.App) {
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	log.Println("🛑 Shutting down server...")
	if err := app.Shutdown(); err != nil {
		log.Printf("❌ Error during shutdown: %v", err)
	}
	log.Println("✅ Server stopped gracefully")
}
