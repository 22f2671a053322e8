package contract

import (
	"context"

	"ashram-bot/internal/conversation"
)

// SessionRepository stores one conversation per user. Get never reports a
// missing session: a fresh idle one is returned instead.
type SessionRepository interface {
	Get(ctx context.Context, userID int64) (conversation.Session, error)
	Save(ctx context.Context, session conversation.Session) error
	Delete(ctx context.Context, userID int64) error
}
