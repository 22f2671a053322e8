package config

import (
	"errors"
	"fmt"
	"log"
	"os"
	"strconv"
	"time"

	"github.com/go-playground/validator/v10"
	"github.com/joho/godotenv"
)

type Config struct {
	App       AppConfig
	Telegram  TelegramConfig
	Datastore DatastoreConfig
	Ai        AIConfig
	Session   SessionConfig
	Timeouts  TimeoutConfig
}

type AppConfig struct {
	Port         string `validate:"required"`
	Environment  string
	LogFilePath  string
	NatsURL      string
	OtelEnabled  bool
	OtelEndpoint string
}

type TelegramConfig struct {
	BotToken      string `validate:"required"`
	WebhookURL    string `validate:"omitempty,url"`
	WebhookSecret string
}

type DatastoreConfig struct {
	SupabaseURL        string `validate:"omitempty,url"`
	SupabaseServiceKey string `validate:"required_with=SupabaseURL"`
	Table              string `validate:"required"`
	Connection         string // Postgres DSN; takes precedence over the REST API
}

type AIConfig struct {
	LLMProvider   string `validate:"oneof=anthropic gemini ollama"`
	LLMModel      string
	MaxTokens     int `validate:"gt=0"`
	AnthropicKey  string
	GeminiKey     string
	OllamaBaseURL string
}

type SessionConfig struct {
	Backend         string        `validate:"oneof=memory redis"`
	TTL             time.Duration `validate:"gt=0"`
	CleanupInterval time.Duration `validate:"gt=0"`
	RedisURL        string
}

type TimeoutConfig struct {
	Telegram  time.Duration `validate:"gt=0"`
	LLM       time.Duration `validate:"gt=0"`
	Datastore time.Duration `validate:"gt=0"`
}

func Load() *Config {
	if err := godotenv.Load(); err != nil {
		log.Println("Note: .env file not found, usage system environment")
	}

	return &Config{
		App: AppConfig{
			Port:         getEnv("PORT", "3010"),
			Environment:  getEnv("GO_ENV", "development"),
			LogFilePath:  getEnv("LOG_FILE_PATH", "logs/bot.log"),
			NatsURL:      getEnv("NATS_URL", ""),
			OtelEnabled:  getEnvAsBool("OTEL_ENABLED", false),
			OtelEndpoint: getEnv("OTEL_EXPORTER_OTLP_ENDPOINT", "localhost:4318"),
		},
		Telegram: TelegramConfig{
			BotToken:      getEnv("TELEGRAM_BOT_TOKEN", ""),
			WebhookURL:    getEnv("WEBHOOK_URL", ""),
			WebhookSecret: getEnv("WEBHOOK_SECRET", ""),
		},
		Datastore: DatastoreConfig{
			SupabaseURL:        getEnv("SUPABASE_URL", ""),
			SupabaseServiceKey: getEnv("SUPABASE_SERVICE_KEY", ""),
			Table:              getEnv("SUPABASE_TABLE", "ashram_projects"),
			Connection:         getEnv("DB_CONNECTION_STRING", ""),
		},
		Ai: AIConfig{
			LLMProvider:   getEnv("LLM_PROVIDER", "anthropic"),
			LLMModel:      getEnv("LLM_MODEL", ""),
			MaxTokens:     getEnvAsInt("LLM_MAX_TOKENS", 400),
			AnthropicKey:  getEnv("ANTHROPIC_API_KEY", ""),
			GeminiKey:     getEnv("GOOGLE_GEMINI_API_KEY", ""),
			OllamaBaseURL: getEnv("OLLAMA_BASE_URL", "http://localhost:11434"),
		},
		Session: SessionConfig{
			Backend:         getEnv("SESSION_BACKEND", "memory"),
			TTL:             getEnvAsDuration("SESSION_TTL", 24*time.Hour),
			CleanupInterval: getEnvAsDuration("SESSION_CLEANUP_INTERVAL", 10*time.Minute),
			RedisURL:        getEnv("REDIS_URL", "redis://localhost:6379"),
		},
		Timeouts: TimeoutConfig{
			Telegram:  getEnvAsDuration("TELEGRAM_TIMEOUT", 15*time.Second),
			LLM:       getEnvAsDuration("LLM_TIMEOUT", 60*time.Second),
			Datastore: getEnvAsDuration("DATASTORE_TIMEOUT", 15*time.Second),
		},
	}
}

// Validate reports the first missing or malformed setting.
func (c *Config) Validate() error {
	if err := validator.New().Struct(c); err != nil {
		return fmt.Errorf("invalid configuration: %w", err)
	}
	if c.Datastore.Connection == "" && c.Datastore.SupabaseURL == "" {
		return errors.New("invalid configuration: set SUPABASE_URL or DB_CONNECTION_STRING")
	}
	if c.Session.Backend == "redis" && c.Session.RedisURL == "" {
		return errors.New("invalid configuration: SESSION_BACKEND=redis needs REDIS_URL")
	}
	return nil
}

func (c *Config) IsProduction() bool {
	return c.App.Environment == "production"
}

// UsesWebhook reports whether updates are pushed by Telegram instead of polled.
func (c *Config) UsesWebhook() bool {
	return c.Telegram.WebhookURL != ""
}

func getEnv(key, fallback string) string {
	if value, exists := os.LookupEnv(key); exists {
		return value
	}
	return fallback
}

func getEnvAsInt(key string, fallback int) int {
	strValue := getEnv(key, "")
	if value, err := strconv.Atoi(strValue); err == nil {
		return value
	}
	return fallback
}

func getEnvAsBool(key string, fallback bool) bool {
	strValue := getEnv(key, "")
	if value, err := strconv.ParseBool(strValue); err == nil {
		return value
	}
	return fallback
}

func getEnvAsDuration(key string, fallback time.Duration) time.Duration {
	strValue := getEnv(key, "")
	if value, err := time.ParseDuration(strValue); err == nil {
		return value
	}
	return fallback
}
