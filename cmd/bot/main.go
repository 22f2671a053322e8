package main

import (
	"context"
	"errors"
	"log"
	"os"
	"os/signal"
	"strings"
	"syscall"
	"time"

	"ashram-bot/internal/bootstrap"
	"ashram-bot/internal/config"
	"ashram-bot/internal/controller"
	"ashram-bot/internal/server"
	"ashram-bot/internal/tracer"
)

const shutdownTimeout = 30 * time.Second

func main() {
	// 1. Load Configuration
	cfg := config.Load()
	if err := cfg.Validate(); err != nil {
		log.Fatalf("Invalid configuration: %v", err)
	}

	// 2. Tracing
	shutdownTracer := tracer.InitTracer(cfg.App.OtelEnabled, cfg.App.OtelEndpoint)

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	// 3. Bootstrap Dependencies (Container)
	container, err := bootstrap.NewContainer(ctx, cfg)
	if err != nil {
		log.Fatalf("Failed to start: %v", err)
	}
	sysLogger := container.Logger

	// 4. Start Background Services
	if err := container.ConsumerService.Consume(ctx); err != nil {
		sysLogger.Error("Main", "Failed to start consumer", map[string]interface{}{"error": err.Error()})
	}

	// 5. HTTP Server
	srv := server.New(cfg, container)
	serverErr := make(chan error, 1)
	go func() {
		serverErr <- srv.Run()
	}()

	// 6. Updates: webhook or long polling
	pollerDone := make(chan struct{})
	if cfg.UsesWebhook() {
		close(pollerDone)
		url := strings.TrimRight(cfg.Telegram.WebhookURL, "/") + controller.WebhookPath
		if err := container.Bot.SetWebhook(ctx, url, cfg.Telegram.WebhookSecret); err != nil {
			sysLogger.Error("Main", "Failed to register webhook", map[string]interface{}{"error": err.Error()})
			stop()
		} else {
			sysLogger.Info("Main", "Webhook registered", map[string]interface{}{"url": url})
		}
	} else {
		go func() {
			defer close(pollerDone)
			if err := container.Poller.Run(ctx, container.Dispatcher.Dispatch); err != nil {
				sysLogger.Error("Main", "Long polling failed", map[string]interface{}{"error": err.Error()})
				stop()
			}
		}()
	}

	select {
	case <-ctx.Done():
		sysLogger.Info("Main", "Shutting down", nil)
	case err := <-serverErr:
		if err != nil && !errors.Is(err, context.Canceled) {
			sysLogger.Error("Main", "HTTP server stopped", map[string]interface{}{"error": err.Error()})
		}
		stop()
	}

	// 7. Graceful shutdown
	shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
	defer cancel()

	<-pollerDone
	if err := srv.Shutdown(shutdownCtx); err != nil {
		sysLogger.Warn("Main", "HTTP shutdown incomplete", map[string]interface{}{"error": err.Error()})
	}
	if err := container.Dispatcher.Shutdown(shutdownCtx); err != nil {
		sysLogger.Warn("Main", "Pending updates abandoned", map[string]interface{}{"error": err.Error()})
	}
	if err := container.Close(); err != nil {
		sysLogger.Warn("Main", "Failed to close backends", map[string]interface{}{"error": err.Error()})
	}
	if err := shutdownTracer(shutdownCtx); err != nil {
		sysLogger.Warn("Main", "Failed to flush traces", map[string]interface{}{"error": err.Error()})
	}
	_ = sysLogger.Sync()
}
