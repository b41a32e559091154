package handlers

import (
	"encoding/json"
	"errors"
	"log/slog"
	"net/http"

	"github.com/gitmindapp/gitmind-backend/internal/dto"
	"github.com/gitmindapp/gitmind-backend/internal/services"
	"github.com/gofiber/fiber/v2"
	svix "github.com/svix/svix-webhooks/go"
)

type WebhookHandler struct {
	webhooks *services.WebhookService
	secret   string
}

func NewWebhookHandler(webhooks *services.WebhookService, secret string) *WebhookHandler {
	return &WebhookHandler{webhooks: webhooks, secret: secret}
}

// HandleIdentity handles POST /api/webhooks/identity. Clerk signs
// deliveries with svix; verification failure of any kind is a 400.
func (h *WebhookHandler) HandleIdentity(c *fiber.Ctx) error {
	if h.secret == "" {
		slog.Error("identity webhook received but CLERK_WEBHOOK_SECRET is not set")
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{
			Error: "Webhook not configured",
		})
	}

	svixID := c.Get("svix-id")
	svixTimestamp := c.Get("svix-timestamp")
	svixSignature := c.Get("svix-signature")
	if svixID == "" || svixTimestamp == "" || svixSignature == "" {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{
			Error: "Missing svix headers",
		})
	}

	wh, err := svix.NewWebhook(h.secret)
	if err != nil {
		slog.Error("invalid webhook secret", "error", err)
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{
			Error: "Webhook not configured",
		})
	}

	payload := c.Body()
	headers := http.Header{}
	headers.Set("svix-id", svixID)
	headers.Set("svix-timestamp", svixTimestamp)
	headers.Set("svix-signature", svixSignature)

	if err := wh.Verify(payload, headers); err != nil {
		slog.Warn("webhook verification failed", "svix_id", svixID, "error", err)
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{
			Error: "Verification failed",
		})
	}

	var event dto.ClerkWebhookEvent
	if err := json.Unmarshal(payload, &event); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{
			Error: "Invalid webhook payload",
		})
	}

	if err := h.webhooks.HandleEvent(svixID, payload, &event); err != nil {
		if errors.Is(err, services.ErrEmailRequired) {
			return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{
				Error: "No email found",
			})
		}
		slog.Error("webhook processing failed", "svix_id", svixID, "event_type", event.Type, "error", err)
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{
			Error: "Failed to process webhook event",
		})
	}

	slog.Info("webhook processed", "svix_id", svixID, "event_type", event.Type)
	return c.JSON(fiber.Map{"received": true})
}
