package middleware

import (
	"strings"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
	"go.uber.org/zap"
)

// WebhookLogging logs the lifecycle of webhook deliveries with a
// generated delivery id. It applies only to /api/webhooks routes and
// never logs bodies or headers: payloads carry user metadata.
func WebhookLogging(logger *zap.Logger) fiber.Handler {
	return func(c *fiber.Ctx) error {
		if !strings.HasPrefix(c.Path(), "/api/webhooks") {
			return c.Next()
		}

		deliveryID := uuid.NewString()
		start := time.Now()

		logger.Info("webhook received",
			zap.String("delivery_id", deliveryID),
			zap.String("method", c.Method()),
			zap.String("path", c.Path()),
		)

		err := c.Next()

		logger.Info("webhook completed",
			zap.String("delivery_id", deliveryID),
			zap.Int("status", c.Response().StatusCode()),
			zap.Int64("duration_ms", time.Since(start).Milliseconds()),
		)

		return err
	}
}
