package cache

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"ashram-bot/internal/conversation"
	"ashram-bot/internal/repository/contract"

	"github.com/redis/go-redis/v9"
)

const keyPrefix = "bot:session:"

// RedisSessionRepository keeps sessions across restarts and replicas.
type RedisSessionRepository struct {
	rdb redis.Cmdable
	ttl time.Duration
}

var _ contract.SessionRepository = (*RedisSessionRepository)(nil)

func NewRedisSessionRepository(rdb redis.Cmdable, ttl time.Duration) *RedisSessionRepository {
	return &RedisSessionRepository{rdb: rdb, ttl: ttl}
}

func (r *RedisSessionRepository) Get(ctx context.Context, userID int64) (conversation.Session, error) {
	raw, err := r.rdb.Get(ctx, Key(userID)).Bytes()
	if errors.Is(err, redis.Nil) {
		return conversation.New(userID), nil
	}
	if err != nil {
		return conversation.Session{}, fmt.Errorf("get session %d: %w", userID, err)
	}

	var s conversation.Session
	if err := json.Unmarshal(raw, &s); err != nil {
		return conversation.Session{}, fmt.Errorf("decode session %d: %w", userID, err)
	}
	return s, nil
}

func (r *RedisSessionRepository) Save(ctx context.Context, session conversation.Session) error {
	raw, err := json.Marshal(session)
	if err != nil {
		return fmt.Errorf("encode session %d: %w", session.UserID, err)
	}
	if err := r.rdb.Set(ctx, Key(session.UserID), raw, r.ttl).Err(); err != nil {
		return fmt.Errorf("save session %d: %w", session.UserID, err)
	}
	return nil
}

func (r *RedisSessionRepository) Delete(ctx context.Context, userID int64) error {
	if err := r.rdb.Del(ctx, Key(userID)).Err(); err != nil {
		return fmt.Errorf("delete session %d: %w", userID, err)
	}
	return nil
}

func Key(userID int64) string {
	return fmt.Sprintf("%s%d", keyPrefix, userID)
}
