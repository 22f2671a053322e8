package server

import (
	"encoding/json"
	"net/http/httptest"
	"strings"
	"testing"

	"ashram-bot/internal/bootstrap"
	"ashram-bot/internal/config"
	"ashram-bot/internal/controller"
	"ashram-bot/internal/dto"
	"ashram-bot/internal/pkg/logger"
	"ashram-bot/internal/pkg/serverutils"
	"ashram-bot/internal/telegram"

	"github.com/gofiber/fiber/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type staticIdentity string

func (s staticIdentity) Identity() string { return string(s) }

func newTestServer(webhookURL string, sink telegram.Sink) *Server {
	log := logger.NewNopLogger()
	cfg := &config.Config{
		App:      config.AppConfig{Port: "0", Environment: "test"},
		Telegram: config.TelegramConfig{WebhookURL: webhookURL, WebhookSecret: "s3cret"},
	}
	container := &bootstrap.Container{
		Logger:            log,
		HealthController:  controller.NewHealthController(staticIdentity("@ashram_bot")),
		WebhookController: controller.NewWebhookController(sink, "s3cret", log),
	}
	return New(cfg, container)
}

func TestServerRoutes(t *testing.T) {
	var received []telegram.Inbound
	app := newTestServer("https://bot.example.com", func(in telegram.Inbound) { received = append(received, in) }).app

	resp, err := app.Test(httptest.NewRequest("GET", "/health", nil))
	require.NoError(t, err)
	assert.Equal(t, fiber.StatusOK, resp.StatusCode)
	var health dto.HealthResponse
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&health))
	assert.Equal(t, "@ashram_bot", health.Bot)

	body := `{"update_id":1,"message":{"message_id":2,"date":0,"from":{"id":7,"first_name":"Ravi"},"chat":{"id":7,"type":"private"},"text":"hello"}}`
	req := httptest.NewRequest("POST", controller.WebhookPath, strings.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set(serverutils.TelegramSecretHeader, "s3cret")
	resp, err = app.Test(req)
	require.NoError(t, err)
	assert.Equal(t, fiber.StatusOK, resp.StatusCode)
	require.Len(t, received, 1)
	assert.Equal(t, int64(7), received[0].UserID)

	resp, err = app.Test(httptest.NewRequest("GET", "/api/notes", nil))
	require.NoError(t, err)
	assert.Equal(t, fiber.StatusNotFound, resp.StatusCode)
}

func TestServerPollingModeHasNoWebhook(t *testing.T) {
	var received []telegram.Inbound
	app := newTestServer("", func(in telegram.Inbound) { received = append(received, in) }).app

	body := `{"update_id":1,"message":{"message_id":2,"date":0,"from":{"id":7,"first_name":"Ravi"},"chat":{"id":7,"type":"private"},"text":"hello"}}`
	req := httptest.NewRequest("POST", controller.WebhookPath, strings.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set(serverutils.TelegramSecretHeader, "s3cret")
	resp, err := app.Test(req)
	require.NoError(t, err)

	assert.Equal(t, fiber.StatusNotFound, resp.StatusCode)
	assert.Empty(t, received)

	resp, err = app.Test(httptest.NewRequest("GET", "/health", nil))
	require.NoError(t, err)
	assert.Equal(t, fiber.StatusOK, resp.StatusCode)
}
