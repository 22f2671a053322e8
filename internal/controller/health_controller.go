package controller

import (
	"ashram-bot/internal/dto"

	"github.com/gofiber/fiber/v2"
)

// BotIdentity reports the bot's @username.
type BotIdentity interface {
	Identity() string
}

type IHealthController interface {
	RegisterRoutes(r fiber.Router)
	Health(ctx *fiber.Ctx) error
}

type healthController struct {
	bot BotIdentity
}

func NewHealthController(bot BotIdentity) IHealthController {
	return &healthController{bot: bot}
}

func (c *healthController) RegisterRoutes(r fiber.Router) {
	r.Get("/health", c.Health)
}

func (c *healthController) Health(ctx *fiber.Ctx) error {
	return ctx.JSON(dto.HealthResponse{
		Status: "ok",
		Bot:    c.bot.Identity(),
	})
}
