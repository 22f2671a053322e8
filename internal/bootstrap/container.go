package bootstrap

import (
	"context"
	"errors"
	"fmt"
	"time"

	"ashram-bot/internal/config"
	"ashram-bot/internal/controller"
	"ashram-bot/internal/handler"
	"ashram-bot/internal/pkg/logger"
	"ashram-bot/internal/repository/cache"
	"ashram-bot/internal/repository/contract"
	"ashram-bot/internal/repository/implementation"
	"ashram-bot/internal/repository/memory"
	"ashram-bot/internal/service"
	"ashram-bot/internal/telegram"
	"ashram-bot/pkg/database"
	"ashram-bot/pkg/llm/factory"
	pktNats "ashram-bot/pkg/nats"
	"ashram-bot/pkg/supabase"

	"github.com/ThreeDotsLabs/watermill"
	"github.com/ThreeDotsLabs/watermill/pubsub/gochannel"
	"github.com/redis/go-redis/v9"
)

// ProjectTopic is the in-process topic for submitted projects.
const ProjectTopic = "projects.submitted"

type Container struct {
	Logger logger.ILogger

	// Telegram
	Bot        *telegram.Client
	Poller     *telegram.Poller
	BotHandler *handler.BotHandler
	Dispatcher *handler.Dispatcher

	// Controllers
	HealthController  controller.IHealthController
	WebhookController controller.IWebhookController

	// Background Services (Exposed for main.go to run)
	ConsumerService service.IConsumerService

	closers []func() error
}

// NewContainer connects every backend named in cfg. ctx bounds the startup
// checks only; update handling runs on a context that is never cancelled so
// queued updates can finish during shutdown.
func NewContainer(ctx context.Context, cfg *config.Config) (*Container, error) {
	c := &Container{}

	// 1. Core Facades
	sysLogger := logger.NewZapLogger(cfg.App.LogFilePath, cfg.IsProduction())
	c.Logger = sysLogger

	bot, err := telegram.NewClient(cfg.Telegram.BotToken)
	if err != nil {
		return nil, err
	}
	c.Bot = bot
	sysLogger.Info("Bootstrap", "Connected to Telegram", map[string]interface{}{"bot": bot.Identity()})

	// 2. Storage
	projects, err := c.projectRepository(cfg)
	if err != nil {
		c.Close()
		return nil, err
	}
	sessions, err := c.sessionRepository(ctx, cfg)
	if err != nil {
		c.Close()
		return nil, err
	}

	provider, err := factory.NewLLMProvider(ctx, factory.Settings{
		Provider:      cfg.Ai.LLMProvider,
		Model:         cfg.Ai.LLMModel,
		AnthropicKey:  cfg.Ai.AnthropicKey,
		GeminiKey:     cfg.Ai.GeminiKey,
		OllamaBaseURL: cfg.Ai.OllamaBaseURL,
	})
	if err != nil {
		c.Close()
		return nil, fmt.Errorf("initialize LLM provider: %w", err)
	}
	sysLogger.Info("Bootstrap", "LLM provider ready", map[string]interface{}{
		"provider": cfg.Ai.LLMProvider,
		"model":    cfg.Ai.LLMModel,
	})

	// 3. Event Bus
	pubSub := gochannel.NewGoChannel(gochannel.Config{}, watermill.NewStdLogger(false, false))
	c.closers = append(c.closers, pubSub.Close)

	var forwarder service.EventForwarder
	if cfg.App.NatsURL != "" {
		natsPub, err := pktNats.NewPublisher(cfg.App.NatsURL, sysLogger)
		if err != nil {
			sysLogger.Warn("Bootstrap", "NATS unavailable, project events stay in process", map[string]interface{}{
				"error": err.Error(),
			})
		} else {
			forwarder = natsPub
			c.closers = append(c.closers, func() error { natsPub.Close(); return nil })
		}
	}

	// 4. Services
	publisherService := service.NewPublisherService(ProjectTopic, pubSub)
	c.ConsumerService = service.NewConsumerService(pubSub, ProjectTopic, forwarder, sysLogger)
	knowledgeService := service.NewKnowledgeService(provider, cfg.Ai.MaxTokens, cfg.Timeouts.LLM, sysLogger)
	submissionService := service.NewSubmissionService(bot, projects, publisherService, service.SubmissionTimeouts{
		Files:     cfg.Timeouts.Telegram,
		Datastore: cfg.Timeouts.Datastore,
	}, sysLogger)

	// 5. Handlers
	c.BotHandler = handler.NewBotHandler(bot, sessions, knowledgeService, submissionService, cfg.Timeouts.Telegram, sysLogger)
	c.Dispatcher = handler.NewDispatcher(context.Background(), c.BotHandler.Handle, sysLogger)
	c.Poller = telegram.NewPoller(bot, sysLogger)

	// 6. Controllers
	c.HealthController = controller.NewHealthController(bot)
	c.WebhookController = controller.NewWebhookController(c.Dispatcher.Dispatch, cfg.Telegram.WebhookSecret, sysLogger)

	return c, nil
}

func (c *Container) projectRepository(cfg *config.Config) (contract.ProjectRepository, error) {
	if cfg.Datastore.Connection == "" {
		c.Logger.Info("Bootstrap", "Saving projects through the Supabase REST API", map[string]interface{}{
			"table": cfg.Datastore.Table,
		})
		return supabase.NewClient(cfg.Datastore.SupabaseURL, cfg.Datastore.SupabaseServiceKey, cfg.Datastore.Table), nil
	}

	db, err := database.NewGormDBFromDSN(cfg.Datastore.Connection, !cfg.IsProduction())
	if err != nil {
		return nil, fmt.Errorf("connect to database: %w", err)
	}
	sqlDB, err := db.DB()
	if err != nil {
		return nil, err
	}
	c.closers = append(c.closers, sqlDB.Close)

	c.Logger.Info("Bootstrap", "Saving projects through Postgres", nil)
	return implementation.NewProjectRepository(db), nil
}

func (c *Container) sessionRepository(ctx context.Context, cfg *config.Config) (contract.SessionRepository, error) {
	if cfg.Session.Backend != "redis" {
		return memory.NewSessionRepository(cfg.Session.TTL, cfg.Session.CleanupInterval), nil
	}

	opt, err := redis.ParseURL(cfg.Session.RedisURL)
	if err != nil {
		return nil, fmt.Errorf("parse REDIS_URL: %w", err)
	}
	rdb := redis.NewClient(opt)
	c.closers = append(c.closers, rdb.Close)

	pingCtx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()
	if err := rdb.Ping(pingCtx).Err(); err != nil {
		return nil, fmt.Errorf("connect to redis: %w", err)
	}

	c.Logger.Info("Bootstrap", "Sessions stored in Redis", map[string]interface{}{"ttl": cfg.Session.TTL.String()})
	return cache.NewRedisSessionRepository(rdb, cfg.Session.TTL), nil
}

// Close releases backends in reverse order of creation.
func (c *Container) Close() error {
	var errs []error
	for i := len(c.closers) - 1; i >= 0; i-- {
		if err := c.closers[i](); err != nil {
			errs = append(errs, err)
		}
	}
	c.closers = nil
	return errors.Join(errs...)
}
