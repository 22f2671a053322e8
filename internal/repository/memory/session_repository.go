package memory

import (
	"context"
	"strconv"
	"time"

	"ashram-bot/internal/conversation"
	"ashram-bot/internal/repository/contract"

	"github.com/patrickmn/go-cache"
)

type SessionRepository struct {
	cache *cache.Cache
}

var _ contract.SessionRepository = (*SessionRepository)(nil)

// NewSessionRepository keeps sessions for ttl after their last write and
// purges expired ones every cleanupInterval.
func NewSessionRepository(ttl, cleanupInterval time.Duration) *SessionRepository {
	return &SessionRepository{
		cache: cache.New(ttl, cleanupInterval),
	}
}

func (r *SessionRepository) Get(_ context.Context, userID int64) (conversation.Session, error) {
	if x, found := r.cache.Get(key(userID)); found {
		return x.(conversation.Session), nil
	}
	return conversation.New(userID), nil
}

func (r *SessionRepository) Save(_ context.Context, session conversation.Session) error {
	r.cache.Set(key(session.UserID), session, cache.DefaultExpiration)
	return nil
}

func (r *SessionRepository) Delete(_ context.Context, userID int64) error {
	r.cache.Delete(key(userID))
	return nil
}

// Len is the number of live sessions, expired ones included until purged.
func (r *SessionRepository) Len() int {
	return r.cache.ItemCount()
}

func key(userID int64) string {
	return strconv.FormatInt(userID, 10)
}
