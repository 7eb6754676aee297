// Package memory provides an in-process key-value store. It backs both storage
// scopes when no external medium is configured and in local development.
package memory

import (
	"context"
	"sync"
	"time"

	"github.com/scratchie/onboarding-flow/internal/core/domain"
)

type entry struct {
	value     []byte
	expiresAt time.Time
}

// Store is a mutex-guarded map with optional per-key expiry.
type Store struct {
	mu         sync.RWMutex
	data       map[string]entry
	defaultTTL time.Duration
	now        func() time.Time
}

// NewStore returns an empty store. A positive defaultTTL applies to writes that
// pass no ttl of their own; zero keeps such keys forever.
func NewStore(defaultTTL time.Duration) *Store {
	return &Store{
		data:       make(map[string]entry),
		defaultTTL: defaultTTL,
		now:        time.Now,
	}
}

func (s *Store) Get(_ context.Context, key string) ([]byte, error) {
	s.mu.RLock()
	e, ok := s.data[key]
	s.mu.RUnlock()

	if !ok {
		return nil, domain.ErrKeyNotFound
	}
	if !e.expiresAt.IsZero() && !s.now().Before(e.expiresAt) {
		s.mu.Lock()
		if cur, still := s.data[key]; still && cur.expiresAt.Equal(e.expiresAt) {
			delete(s.data, key)
		}
		s.mu.Unlock()
		return nil, domain.ErrKeyNotFound
	}

	out := make([]byte, len(e.value))
	copy(out, e.value)
	return out, nil
}

func (s *Store) Set(_ context.Context, key string, value []byte, ttl time.Duration) error {
	if ttl <= 0 {
		ttl = s.defaultTTL
	}
	e := entry{value: append([]byte(nil), value...)}
	if ttl > 0 {
		e.expiresAt = s.now().Add(ttl)
	}

	s.mu.Lock()
	s.data[key] = e
	s.mu.Unlock()
	return nil
}

func (s *Store) Delete(_ context.Context, key string) error {
	s.mu.Lock()
	delete(s.data, key)
	s.mu.Unlock()
	return nil
}

// Ping always succeeds; it lets the store stand in for a remote medium in
// readiness checks.
func (s *Store) Ping(context.Context) error {
	return nil
}
