package redis

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"

	"github.com/scratchie/onboarding-flow/internal/core/domain"
)

// SessionStore implements ports.KeyValueStore on Redis. It backs the session
// scope: every key expires, so abandoned sessions clean themselves up.
type SessionStore struct {
	client     *redis.Client
	defaultTTL time.Duration
}

// NewSessionStore wraps client. Writes without a ttl use defaultTTL, which
// comes from SESSION_TTL.
func NewSessionStore(client *redis.Client, defaultTTL time.Duration) *SessionStore {
	return &SessionStore{client: client, defaultTTL: defaultTTL}
}

func (s *SessionStore) Get(ctx context.Context, key string) ([]byte, error) {
	b, err := s.client.Get(ctx, key).Bytes()
	if err != nil {
		if errors.Is(err, redis.Nil) {
			return nil, domain.ErrKeyNotFound
		}
		return nil, fmt.Errorf("redis get %q: %w", key, err)
	}
	return b, nil
}

func (s *SessionStore) Set(ctx context.Context, key string, value []byte, ttl time.Duration) error {
	if ttl <= 0 {
		ttl = s.defaultTTL
	}
	if err := s.client.Set(ctx, key, value, ttl).Err(); err != nil {
		return fmt.Errorf("redis set %q: %w", key, err)
	}
	return nil
}

func (s *SessionStore) Delete(ctx context.Context, key string) error {
	if err := s.client.Del(ctx, key).Err(); err != nil {
		return fmt.Errorf("redis delete %q: %w", key, err)
	}
	return nil
}

// Ping checks connectivity for the readiness probe.
func (s *SessionStore) Ping(ctx context.Context) error {
	return s.client.Ping(ctx).Err()
}

// Close releases the underlying client.
func (s *SessionStore) Close() error {
	return s.client.Close()
}
