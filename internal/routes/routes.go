package routes

import (
	"github.com/gofiber/fiber/v2"

	"github.com/CapsLuky/api.flow.core.user/internal/handlers"
)

// SetupRoutes configures all application routes with dependencies
func SetupRoutes(
	app *fiber.App,
	healthHandler *handlers.HealthHandler,
	webhookHandler *handlers.ClerkWebhookHandler,
	usersHandler *handlers.UsersHandler,
) {
	// Health check endpoint
	app.Get("/health", healthHandler.HealthCheck)

	api := app.Group("/api")

	webhooks := api.Group("/webhooks")
	webhooks.Post("/clerk", webhookHandler.HandleClerkWebhook)

	users := api.Group("/users")
	users.Get("/", usersHandler.GetUsers)
	users.Get("/:id", usersHandler.GetUserByID)
}
