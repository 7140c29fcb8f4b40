package main

import (
	"os"
	"os/signal"
	"syscall"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/cors"
	fiberlogger "github.com/gofiber/fiber/v2/middleware/logger"
	"github.com/gofiber/fiber/v2/middleware/recover"
	"github.com/joho/godotenv"
	"go.uber.org/zap"

	"github.com/CapsLuky/api.flow.core.user/internal/config"
	"github.com/CapsLuky/api.flow.core.user/internal/database"
	"github.com/CapsLuky/api.flow.core.user/internal/handlers"
	"github.com/CapsLuky/api.flow.core.user/internal/logger"
	"github.com/CapsLuky/api.flow.core.user/internal/middleware"
	"github.com/CapsLuky/api.flow.core.user/internal/repository"
	"github.com/CapsLuky/api.flow.core.user/internal/routes"
	"github.com/CapsLuky/api.flow.core.user/internal/service"
	"github.com/CapsLuky/api.flow.core.user/internal/webhook"
)

func main() {
	// .env is optional; real deployments set the environment directly
	_ = godotenv.Load()

	if err := logger.Init(os.Getenv("LOG_LEVEL")); err != nil {
		panic("Failed to initialize logger: " + err.Error())
	}
	defer logger.Sync()

	// Load configuration
	cfg, err := config.Load()
	if err != nil {
		logger.Fatal("Failed to load config", zap.Error(err))
	}

	// Connect to MongoDB
	client, err := database.Connect(&cfg.Mongo, logger.Logger)
	if err != nil {
		logger.Fatal("Failed to connect to MongoDB", zap.Error(err))
	}
	defer func() {
		if err := database.Close(client, logger.Logger); err != nil {
			logger.Error("Error closing MongoDB connection", zap.Error(err))
		}
	}()

	// Ensure the unique clerk_id indexes exist
	if err := database.RunMigrations(&cfg.Mongo, logger.Logger); err != nil {
		logger.Fatal("Failed to run migrations", zap.Error(err))
	}

	app := service.NewApp(cfg, client, logger.Logger)

	// Wire repositories, services and handlers
	clerkUserRepo := repository.NewClerkUserRepository(app.DB, app.Logger)
	userRepo := repository.NewUserRepository(app.DB, app.Logger)
	webhookService := webhook.NewService(cfg.Clerk, clerkUserRepo, app.Logger)

	healthHandler := handlers.NewHealthHandler(app.Client)
	webhookHandler := handlers.NewClerkWebhookHandler(webhookService, app.Logger)
	usersHandler := handlers.NewUsersHandler(userRepo, app.Logger)

	// Create Fiber app
	server := fiber.New(fiber.Config{
		AppName:      "Clerk Webhook Service",
		ServerHeader: "Fiber",
	})

	// Middleware
	server.Use(recover.New())
	server.Use(fiberlogger.New(fiberlogger.Config{
		Format: "[${time}] ${status} - ${latency} ${method} ${path}\n",
	}))
	server.Use(cors.New(cors.Config{
		AllowOrigins: "*",
		AllowMethods: "GET,POST,PUT,DELETE,OPTIONS",
		AllowHeaders: "Origin,Content-Type,Accept,Authorization",
	}))
	server.Use(middleware.WebhookLogging(app.Logger))

	// Setup routes
	routes.SetupRoutes(server, healthHandler, webhookHandler, usersHandler)

	// Start server in a goroutine
	go func() {
		addr := cfg.Server.Host + ":" + cfg.Server.Port
		logger.Info("Server starting",
			zap.String("address", addr),
		)
		if err := server.Listen(addr); err != nil {
			logger.Fatal("Failed to start server", zap.Error(err))
		}
	}()

	// Wait for interrupt signal to gracefully shutdown
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, os.Interrupt, syscall.SIGTERM)
	<-quit

	logger.Info("Shutting down server")
	if err := server.Shutdown(); err != nil {
		logger.Error("Error during server shutdown", zap.Error(err))
	}

	logger.Info("Server stopped")
}
