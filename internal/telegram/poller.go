package telegram

import (
	"context"

	"ashram-bot/internal/pkg/logger"
)

// Sink receives every update the bot understands, in arrival order.
type Sink func(in Inbound)

// Poller drives the bot through getUpdates when no webhook is configured.
type Poller struct {
	client *Client
	logger logger.ILogger
}

func NewPoller(client *Client, log logger.ILogger) *Poller {
	return &Poller{client: client, logger: log}
}

// Run clears any webhook and feeds updates to sink until ctx is cancelled.
func (p *Poller) Run(ctx context.Context, sink Sink) error {
	if err := p.client.DeleteWebhook(ctx); err != nil {
		return err
	}

	updates := p.client.updates()
	defer p.client.stopUpdates()

	p.logger.Info("Poller", "Long polling started", map[string]interface{}{
		"bot": p.client.Identity(),
	})

	for {
		select {
		case <-ctx.Done():
			p.logger.Info("Poller", "Long polling stopped", nil)
			return nil
		case u, ok := <-updates:
			if !ok {
				return nil
			}
			in, handled := FromUpdate(u)
			if !handled {
				p.logger.Debug("Poller", "Ignoring update", map[string]interface{}{
					"update_id": u.UpdateID,
				})
				continue
			}
			sink(in)
		}
	}
}
