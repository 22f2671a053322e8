package controller

import (
	"ashram-bot/internal/pkg/logger"
	"ashram-bot/internal/pkg/serverutils"
	"ashram-bot/internal/telegram"

	"github.com/gofiber/fiber/v2"
	tgbotapi "github.com/go-telegram-bot-api/telegram-bot-api/v5"
)

// WebhookPath is registered with Telegram relative to WEBHOOK_URL.
const WebhookPath = "/webhook/telegram"

type IWebhookController interface {
	RegisterRoutes(r fiber.Router)
	Receive(ctx *fiber.Ctx) error
}

type webhookController struct {
	sink   telegram.Sink
	secret string
	logger logger.ILogger
}

// NewWebhookController hands every understood update to sink. sink must
// not block: Telegram retries updates that are not answered promptly.
func NewWebhookController(sink telegram.Sink, secret string, log logger.ILogger) IWebhookController {
	return &webhookController{
		sink:   sink,
		secret: secret,
		logger: log,
	}
}

func (c *webhookController) RegisterRoutes(r fiber.Router) {
	r.Post(WebhookPath, serverutils.SecretTokenMiddleware(c.secret), c.Receive)
}

func (c *webhookController) Receive(ctx *fiber.Ctx) error {
	var update tgbotapi.Update
	if err := ctx.BodyParser(&update); err != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(serverutils.ErrorResponse(400, "Invalid request body"))
	}

	in, ok := telegram.FromUpdate(update)
	if !ok {
		c.logger.Debug("WebhookController", "Ignoring update", map[string]interface{}{
			"update_id": update.UpdateID,
		})
		return ctx.SendStatus(fiber.StatusOK)
	}

	c.sink(in)
	return ctx.SendStatus(fiber.StatusOK)
}
