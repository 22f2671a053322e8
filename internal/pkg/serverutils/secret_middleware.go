package serverutils

import (
	"crypto/subtle"

	"github.com/gofiber/fiber/v2"
)

// TelegramSecretHeader carries the secret_token registered with setWebhook.
const TelegramSecretHeader = "X-Telegram-Bot-Api-Secret-Token"

// SecretTokenMiddleware rejects requests whose secret header does not match.
// An empty secret lets everything through.
func SecretTokenMiddleware(secret string) fiber.Handler {
	return func(ctx *fiber.Ctx) error {
		if secret == "" {
			return ctx.Next()
		}
		got := ctx.Get(TelegramSecretHeader)
		if subtle.ConstantTimeCompare([]byte(got), []byte(secret)) != 1 {
			return ctx.Status(fiber.StatusUnauthorized).JSON(ErrorResponse(fiber.StatusUnauthorized, "Invalid secret token"))
		}
		return ctx.Next()
	}
}
