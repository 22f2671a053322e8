package telegram

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"net/url"
	"time"

	tgbotapi "github.com/go-telegram-bot-api/telegram-bot-api/v5"
	"github.com/hashicorp/golang-lru/v2/expirable"
)

// PollTimeout is the long-poll window in seconds passed to getUpdates.
const PollTimeout = 60

const (
	fileCacheSize = 512
	// Download links stay valid for at least an hour.
	fileCacheTTL = 50 * time.Minute
)

// Client is the Messenger backed by the Bot API.
type Client struct {
	bot   *tgbotapi.BotAPI
	files *expirable.LRU[string, string]
}

var _ Messenger = (*Client)(nil)

// NewClient authenticates the token with getMe. The HTTP timeout has to
// outlive a long poll, so per-call deadlines come from the caller's context.
func NewClient(token string) (*Client, error) {
	return newClient(token, tgbotapi.APIEndpoint)
}

func newClient(token, endpoint string) (*Client, error) {
	httpClient := &http.Client{Timeout: (PollTimeout + 30) * time.Second}
	bot, err := tgbotapi.NewBotAPIWithClient(token, endpoint, httpClient)
	if err != nil {
		return nil, fmt.Errorf("connect to telegram: %w", err)
	}
	return &Client{
		bot:   bot,
		files: expirable.NewLRU[string, string](fileCacheSize, nil, fileCacheTTL),
	}, nil
}

func (c *Client) Identity() string {
	return "@" + c.bot.Self.UserName
}

func (c *Client) Reply(ctx context.Context, chatID int64, msg OutgoingMessage) (int, error) {
	cfg := tgbotapi.NewMessage(chatID, msg.Text)
	cfg.ParseMode = msg.ParseMode
	if len(msg.Keyboard) > 0 {
		cfg.ReplyMarkup = inlineMarkup(msg.Keyboard)
	}

	sent, err := withContext(ctx, func() (tgbotapi.Message, error) {
		return c.bot.Send(cfg)
	})
	if err != nil {
		return 0, fmt.Errorf("send message: %w", err)
	}
	return sent.MessageID, nil
}

func (c *Client) Edit(ctx context.Context, chatID int64, messageID int, msg OutgoingMessage) error {
	cfg := tgbotapi.NewEditMessageText(chatID, messageID, msg.Text)
	cfg.ParseMode = msg.ParseMode
	if len(msg.Keyboard) > 0 {
		markup := inlineMarkup(msg.Keyboard)
		cfg.ReplyMarkup = &markup
	}

	if _, err := withContext(ctx, func() (*tgbotapi.APIResponse, error) {
		return c.bot.Request(cfg)
	}); err != nil {
		return fmt.Errorf("edit message: %w", err)
	}
	return nil
}

func (c *Client) AnswerCallback(ctx context.Context, callbackID, text string) error {
	cfg := tgbotapi.NewCallback(callbackID, text)
	if _, err := withContext(ctx, func() (*tgbotapi.APIResponse, error) {
		return c.bot.Request(cfg)
	}); err != nil {
		return fmt.Errorf("answer callback: %w", err)
	}
	return nil
}

// FileURL caches resolved links so a retried submission skips getFile.
func (c *Client) FileURL(ctx context.Context, fileID string) (string, error) {
	if url, ok := c.files.Get(fileID); ok {
		return url, nil
	}
	url, err := withContext(ctx, func() (string, error) {
		return c.bot.GetFileDirectURL(fileID)
	})
	if err != nil {
		return "", fmt.Errorf("resolve file %s: %w", fileID, err)
	}
	c.files.Add(fileID, url)
	return url, nil
}

// SetWebhook points Telegram at url. A non-empty secret is echoed back by
// Telegram in the X-Telegram-Bot-Api-Secret-Token header.
func (c *Client) SetWebhook(ctx context.Context, url, secret string) error {
	params := tgbotapi.Params{"url": url}
	params.AddNonEmpty("secret_token", secret)
	if _, err := withContext(ctx, func() (*tgbotapi.APIResponse, error) {
		return c.bot.MakeRequest("setWebhook", params)
	}); err != nil {
		return fmt.Errorf("set webhook: %w", err)
	}
	return nil
}

// DeleteWebhook switches the bot back to getUpdates and drops anything
// queued while it was away.
func (c *Client) DeleteWebhook(ctx context.Context) error {
	cfg := tgbotapi.DeleteWebhookConfig{DropPendingUpdates: true}
	if _, err := withContext(ctx, func() (*tgbotapi.APIResponse, error) {
		return c.bot.Request(cfg)
	}); err != nil {
		return fmt.Errorf("delete webhook: %w", err)
	}
	return nil
}

func (c *Client) updates() tgbotapi.UpdatesChannel {
	u := tgbotapi.NewUpdate(0)
	u.Timeout = PollTimeout
	return c.bot.GetUpdatesChan(u)
}

func (c *Client) stopUpdates() {
	c.bot.StopReceivingUpdates()
}

// withContext bounds a blocking Bot API call by ctx. The library has no
// context support, so an abandoned call finishes on its own HTTP timeout.
func withContext[T any](ctx context.Context, fn func() (T, error)) (T, error) {
	type result struct {
		value T
		err   error
	}
	done := make(chan result, 1)
	go func() {
		v, err := fn()
		done <- result{value: v, err: err}
	}()

	select {
	case <-ctx.Done():
		var zero T
		return zero, ctx.Err()
	case r := <-done:
		return r.value, redactURL(r.err)
	}
}

// redactURL drops the request URL from transport errors. Bot API URLs
// embed the token and these errors end up in chat messages.
func redactURL(err error) error {
	var urlErr *url.Error
	if errors.As(err, &urlErr) {
		return fmt.Errorf("bot api %s: %w", urlErr.Op, urlErr.Err)
	}
	return err
}
