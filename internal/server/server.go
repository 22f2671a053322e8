package server

import (
	"context"

	"ashram-bot/internal/bootstrap"
	"ashram-bot/internal/config"
	"ashram-bot/internal/pkg/serverutils"

	"github.com/gofiber/contrib/otelfiber"
	"github.com/gofiber/fiber/v2"
)

type Server struct {
	app       *fiber.App
	cfg       *config.Config
	container *bootstrap.Container
}

func New(cfg *config.Config, container *bootstrap.Container) *Server {
	app := fiber.New(fiber.Config{
		BodyLimit:             1024 * 1024, // Telegram updates are small
		DisableStartupMessage: cfg.IsProduction(),
	})

	// OpenTelemetry tracing middleware (traces all HTTP requests)
	app.Use(otelfiber.Middleware())

	app.Use(serverutils.ErrorHandlerMiddleware())

	registerRoutes(app, cfg, container)

	return &Server{
		app:       app,
		cfg:       cfg,
		container: container,
	}
}

// Run blocks until the listener fails or Shutdown is called.
func (s *Server) Run() error {
	s.container.Logger.Info("Server", "HTTP server listening", map[string]interface{}{
		"port": s.cfg.App.Port,
	})
	return s.app.Listen(":" + s.cfg.App.Port)
}

func (s *Server) Shutdown(ctx context.Context) error {
	return s.app.ShutdownWithContext(ctx)
}

// registerRoutes exposes the webhook only when Telegram pushes updates;
// while polling nothing may inject them over HTTP.
func registerRoutes(app *fiber.App, cfg *config.Config, c *bootstrap.Container) {
	c.HealthController.RegisterRoutes(app)
	if cfg.UsesWebhook() {
		c.WebhookController.RegisterRoutes(app)
	}
}
