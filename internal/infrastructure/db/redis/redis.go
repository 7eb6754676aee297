package redis

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"
)

const defaultTimeout = 5 * time.Second

// ErrSessionTTL is returned by Open when no positive session ttl is configured.
var ErrSessionTTL = errors.New("redis: session ttl must be positive")

// Config captures the settings of the Redis session backend.
type Config struct {
	Addr string
	DB   int
	// SessionTTL is the expiry of session-scope keys written without one.
	SessionTTL time.Duration
	Timeout    time.Duration
}

// Open connects to Redis, validates connectivity with a ping and returns the
// session-scope store on top of the client.
func Open(ctx context.Context, cfg Config) (*SessionStore, error) {
	if cfg.SessionTTL <= 0 {
		return nil, ErrSessionTTL
	}
	timeout := cfg.Timeout
	if timeout <= 0 {
		timeout = defaultTimeout
	}

	client := redis.NewClient(&redis.Options{
		Addr:         cfg.Addr,
		DB:           cfg.DB,
		DialTimeout:  timeout,
		ReadTimeout:  timeout,
		WriteTimeout: timeout,
	})

	pingCtx, cancel := context.WithTimeout(ctx, timeout)
	defer cancel()

	if err := client.Ping(pingCtx).Err(); err != nil {
		_ = client.Close()
		return nil, fmt.Errorf("redis ping: %w", err)
	}

	return NewSessionStore(client, cfg.SessionTTL), nil
}
