package config

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func setBaseEnv(t *testing.T) {
	t.Helper()
	t.Setenv("TELEGRAM_BOT_TOKEN", "123:abc")
	t.Setenv("SUPABASE_URL", "https://project.supabase.co")
	t.Setenv("SUPABASE_SERVICE_KEY", "service")
	t.Setenv("ANTHROPIC_API_KEY", "sk-test")
}

func TestLoadDefaults(t *testing.T) {
	setBaseEnv(t)

	cfg := Load()

	assert.Equal(t, "3010", cfg.App.Port)
	assert.Equal(t, "ashram_projects", cfg.Datastore.Table)
	assert.Equal(t, "anthropic", cfg.Ai.LLMProvider)
	assert.Equal(t, 400, cfg.Ai.MaxTokens)
	assert.Equal(t, "memory", cfg.Session.Backend)
	assert.Equal(t, 24*time.Hour, cfg.Session.TTL)
	assert.Equal(t, 60*time.Second, cfg.Timeouts.LLM)
	assert.False(t, cfg.UsesWebhook())
	require.NoError(t, cfg.Validate())
}

func TestLoadOverrides(t *testing.T) {
	setBaseEnv(t)
	t.Setenv("PORT", "8080")
	t.Setenv("WEBHOOK_URL", "https://bot.example.org")
	t.Setenv("SESSION_TTL", "90m")
	t.Setenv("LLM_MAX_TOKENS", "not-a-number")
	t.Setenv("OTEL_ENABLED", "true")

	cfg := Load()

	assert.Equal(t, "8080", cfg.App.Port)
	assert.True(t, cfg.UsesWebhook())
	assert.Equal(t, 90*time.Minute, cfg.Session.TTL)
	assert.Equal(t, 400, cfg.Ai.MaxTokens, "bad numbers fall back to the default")
	assert.True(t, cfg.App.OtelEnabled)
	require.NoError(t, cfg.Validate())
}

func TestValidateRejects(t *testing.T) {
	tests := []struct {
		name string
		env  map[string]string
	}{
		{name: "missing bot token", env: map[string]string{"TELEGRAM_BOT_TOKEN": ""}},
		{name: "no datastore", env: map[string]string{"SUPABASE_URL": ""}},
		{name: "unknown provider", env: map[string]string{"LLM_PROVIDER": "mystery"}},
		{name: "unknown session backend", env: map[string]string{"SESSION_BACKEND": "disk"}},
		{name: "bad webhook url", env: map[string]string{"WEBHOOK_URL": "not a url"}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			setBaseEnv(t)
			for k, v := range tt.env {
				t.Setenv(k, v)
			}
			assert.Error(t, Load().Validate())
		})
	}
}

func TestValidateAcceptsDirectDatabase(t *testing.T) {
	setBaseEnv(t)
	t.Setenv("SUPABASE_URL", "")
	t.Setenv("SUPABASE_SERVICE_KEY", "")
	t.Setenv("DB_CONNECTION_STRING", "postgres://u:p@localhost:5432/db")

	assert.NoError(t, Load().Validate())
}
