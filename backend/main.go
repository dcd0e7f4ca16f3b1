package main

import (
	"log"

	"coursecatalog/backend/config"
	"coursecatalog/backend/metrics"
	"coursecatalog/backend/middleware"
	"coursecatalog/backend/routes"
	"coursecatalog/backend/store"
	"coursecatalog/backend/utils"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/cors"
)

func main() {
	// Load configuration
	cfg, err := config.LoadConfig()
	if err != nil {
		log.Fatalf("Error loading config: %v", err)
	}

	// Initialize logger
	logger := utils.InitLogger(utils.LoggerConfig{Format: cfg.LogFormat})

	// The catalog lives for the lifetime of the process
	var opts []store.Option
	if cfg.SeedSampleData {
		opts = append(opts, store.WithSampleData())
	}
	courseStore := store.New(opts...)
	logger.Printf("catalog ready with %d courses", courseStore.Len())

	// Create Fiber app
	app := fiber.New()

	// Middleware
	app.Use(cors.New(cors.Config{
		AllowOrigins: cfg.AllowOrigins,
		AllowHeaders: "Origin, Content-Type, Accept, Authorization",
	}))
	app.Use(middleware.LoggingMiddleware(logger))

	// Setup routes
	routes.SetupRoutes(app, courseStore, cfg, logger, metrics.New())

	// Start server
	log.Fatal(app.Listen(":" + cfg.ServerPort))
}
