package sessioninfra

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/Abraxas-365/journalsubmit/pkg/session"
	"github.com/redis/go-redis/v9"
)

// RedisStore keeps session variables in a hash per session. Writes refresh
// the session's ttl.
type RedisStore struct {
	rdb *redis.Client
	ttl time.Duration
}

func NewRedisStore(rdb *redis.Client, ttl time.Duration) *RedisStore {
	return &RedisStore{rdb: rdb, ttl: ttl}
}

func sessionKey(id string) string { return fmt.Sprintf("session:%s", id) }

func validID(id string) bool {
	return strings.TrimSpace(id) != "" && !strings.ContainsAny(id, ": \t\n")
}

func (s *RedisStore) Get(ctx context.Context, sessionID string) (session.Vars, error) {
	if !validID(sessionID) {
		return nil, session.ErrInvalidID()
	}
	vals, err := s.rdb.HGetAll(ctx, sessionKey(sessionID)).Result()
	if err != nil {
		return nil, session.ErrRegistry.NewWithCause(session.CodeStore, err).
			WithDetail("op", "get")
	}
	return session.Vars(vals), nil
}

func (s *RedisStore) SetVar(ctx context.Context, sessionID, name, value string) error {
	if !validID(sessionID) {
		return session.ErrInvalidID()
	}
	key := sessionKey(sessionID)
	pipe := s.rdb.TxPipeline()
	pipe.HSet(ctx, key, name, value)
	if s.ttl > 0 {
		pipe.Expire(ctx, key, s.ttl)
	}
	if _, err := pipe.Exec(ctx); err != nil {
		return session.ErrRegistry.NewWithCause(session.CodeStore, err).
			WithDetail("op", "set").
			WithDetail("var", name)
	}
	return nil
}

func (s *RedisStore) DeleteVar(ctx context.Context, sessionID, name string) error {
	if !validID(sessionID) {
		return session.ErrInvalidID()
	}
	if err := s.rdb.HDel(ctx, sessionKey(sessionID), name).Err(); err != nil {
		return session.ErrRegistry.NewWithCause(session.CodeStore, err).
			WithDetail("op", "delete").
			WithDetail("var", name)
	}
	return nil
}
