// Package resilience guards remote storage with a circuit breaker so a failing
// medium degrades onboarding to in-memory state instead of stalling requests.
package resilience

import (
	"context"
	"errors"
	"time"

	"github.com/rs/zerolog"
	"github.com/sony/gobreaker"

	"github.com/scratchie/onboarding-flow/internal/core/domain"
	"github.com/scratchie/onboarding-flow/internal/core/ports"
)

// NewCircuitBreaker creates a breaker that trips once at least five calls in
// an interval have been made and 60% of them failed.
func NewCircuitBreaker(name string, log zerolog.Logger) *gobreaker.CircuitBreaker {
	return gobreaker.NewCircuitBreaker(gobreaker.Settings{
		Name:        name,
		MaxRequests: 3,
		Interval:    30 * time.Second,
		Timeout:     10 * time.Second,
		ReadyToTrip: func(counts gobreaker.Counts) bool {
			failureRatio := float64(counts.TotalFailures) / float64(counts.Requests)
			return counts.Requests >= 5 && failureRatio >= 0.6
		},
		OnStateChange: func(name string, from, to gobreaker.State) {
			log.Warn().Str("breaker", name).Str("from", from.String()).Str("to", to.String()).Msg("circuit breaker state change")
		},
		// A miss is a normal answer, not a failure of the medium.
		IsSuccessful: func(err error) bool {
			return err == nil || errors.Is(err, domain.ErrKeyNotFound)
		},
	})
}

// FailureObserver is told about every failed storage call, rejected calls
// included. op is "get", "set" or "delete".
type FailureObserver func(store, op string)

// GuardedStore wraps a ports.KeyValueStore with a circuit breaker.
type GuardedStore struct {
	name    string
	next    ports.KeyValueStore
	cb      *gobreaker.CircuitBreaker
	observe FailureObserver
}

var _ ports.KeyValueStore = (*GuardedStore)(nil)

// Guard wraps next. observe may be nil.
func Guard(name string, next ports.KeyValueStore, cb *gobreaker.CircuitBreaker, observe FailureObserver) *GuardedStore {
	if observe == nil {
		observe = func(string, string) {}
	}
	return &GuardedStore{name: name, next: next, cb: cb, observe: observe}
}

func (g *GuardedStore) Get(ctx context.Context, key string) ([]byte, error) {
	v, err := g.cb.Execute(func() (any, error) {
		return g.next.Get(ctx, key)
	})
	if err != nil {
		if !errors.Is(err, domain.ErrKeyNotFound) {
			g.observe(g.name, "get")
		}
		return nil, err
	}
	return v.([]byte), nil
}

func (g *GuardedStore) Set(ctx context.Context, key string, value []byte, ttl time.Duration) error {
	_, err := g.cb.Execute(func() (any, error) {
		return nil, g.next.Set(ctx, key, value, ttl)
	})
	if err != nil {
		g.observe(g.name, "set")
	}
	return err
}

func (g *GuardedStore) Delete(ctx context.Context, key string) error {
	_, err := g.cb.Execute(func() (any, error) {
		return nil, g.next.Delete(ctx, key)
	})
	if err != nil {
		g.observe(g.name, "delete")
	}
	return err
}

// State reports the breaker state for readiness output.
func (g *GuardedStore) State() gobreaker.State {
	return g.cb.State()
}
