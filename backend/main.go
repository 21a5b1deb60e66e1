package main

import (
	"log"
	"time"

	"vidyashiksha/backend/config"
	"vidyashiksha/backend/middleware"
	"vidyashiksha/backend/routes"
	"vidyashiksha/backend/services"
	"vidyashiksha/backend/store"
	"vidyashiksha/backend/utils"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/cors"
)

func main() {
	// Load configuration
	cfg, err := config.LoadConfig()
	if err != nil {
		log.Fatalf("Error loading config: %v", err)
	}

	// Seed the in-memory store
	st := store.New()

	// Payment gateway (mock - always approves after a delay)
	gateway := services.NewMockGateway(time.Duration(cfg.PaymentDelayMS) * time.Millisecond)

	// Initialize logger
	logger := utils.InitLogger()

	// Create Fiber app
	app := fiber.New()

	// Middleware
	app.Use(cors.New(cors.Config{
		AllowOrigins: "*",
		AllowHeaders: "Origin, Content-Type, Accept, Authorization",
	}))
	app.Use(middleware.LoggingMiddleware(logger))

	// Setup routes
	routes.SetupRoutes(app, st, gateway, cfg)

	// Start server
	log.Fatal(app.Listen(":" + cfg.ServerPort))
}
