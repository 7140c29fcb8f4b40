package handlers

import (
	"time"

	"github.com/gofiber/fiber/v2"
	"go.uber.org/zap"

	"github.com/CapsLuky/api.flow.core.user/internal/webhook"
)

// StatusClientClosedRequest is the nginx-style status for a client
// that disconnected before the response was written.
const StatusClientClosedRequest = 499

// ClerkWebhookHandler receives Clerk webhook deliveries and hands them
// to the intake pipeline.
type ClerkWebhookHandler struct {
	service *webhook.Service
	logger  *zap.Logger
}

func NewClerkWebhookHandler(service *webhook.Service, logger *zap.Logger) *ClerkWebhookHandler {
	return &ClerkWebhookHandler{
		service: service,
		logger:  logger,
	}
}

// HandleClerkWebhook handles POST /api/webhooks/clerk.
//
// The body is buffered once here: signature verification needs the
// exact bytes, and the decoder re-reads them afterwards. The request
// context is propagated into the store calls, so a client disconnect
// aborts the pipeline and answers 499 without persisting.
func (h *ClerkWebhookHandler) HandleClerkWebhook(c *fiber.Ctx) error {
	ctx := c.Context()

	headers := webhook.RequestHeaders{
		ApplicationID: c.Get("application_id"),
		SvixID:        c.Get("svix-id"),
		SvixTimestamp: c.Get("svix-timestamp"),
		SvixSignature: c.Get("svix-signature"),
	}

	ok := h.service.ProcessWebhook(ctx, c.Body(), headers)

	if ctx.Err() != nil {
		h.logger.Warn("webhook processing cancelled by client")
		return c.SendStatus(StatusClientClosedRequest)
	}

	if !ok {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error":     "failed to process webhook",
			"timestamp": time.Now().UTC().Format(time.RFC3339),
		})
	}

	return c.JSON(fiber.Map{
		"message":   "webhook processed successfully",
		"timestamp": time.Now().UTC().Format(time.RFC3339),
	})
}
