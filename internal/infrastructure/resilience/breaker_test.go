package resilience_test

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/rs/zerolog"
	"github.com/sony/gobreaker"

	"github.com/scratchie/onboarding-flow/internal/core/domain"
	"github.com/scratchie/onboarding-flow/internal/infrastructure/resilience"
)

type flakyStore struct {
	err   error
	calls int
	data  map[string][]byte
}

func (f *flakyStore) Get(_ context.Context, key string) ([]byte, error) {
	f.calls++
	if f.err != nil {
		return nil, f.err
	}
	v, ok := f.data[key]
	if !ok {
		return nil, domain.ErrKeyNotFound
	}
	return v, nil
}

func (f *flakyStore) Set(_ context.Context, key string, value []byte, _ time.Duration) error {
	f.calls++
	if f.err != nil {
		return f.err
	}
	f.data[key] = value
	return nil
}

func (f *flakyStore) Delete(_ context.Context, key string) error {
	f.calls++
	if f.err != nil {
		return f.err
	}
	delete(f.data, key)
	return nil
}

func TestGuardedStore_PassesThrough(t *testing.T) {
	ctx := context.Background()
	inner := &flakyStore{data: map[string][]byte{}}
	g := resilience.Guard("durable", inner, resilience.NewCircuitBreaker("durable", zerolog.Nop()), nil)

	if err := g.Set(ctx, "k", []byte("v"), 0); err != nil {
		t.Fatalf("set: %v", err)
	}
	got, err := g.Get(ctx, "k")
	if err != nil || string(got) != "v" {
		t.Fatalf("get = %q, %v", got, err)
	}
	if err := g.Delete(ctx, "k"); err != nil {
		t.Fatalf("delete: %v", err)
	}
}

func TestGuardedStore_MissesDoNotTrip(t *testing.T) {
	ctx := context.Background()
	inner := &flakyStore{data: map[string][]byte{}}
	failures := 0
	g := resilience.Guard("durable", inner, resilience.NewCircuitBreaker("durable", zerolog.Nop()),
		func(string, string) { failures++ })

	for i := 0; i < 10; i++ {
		if _, err := g.Get(ctx, "missing"); !errors.Is(err, domain.ErrKeyNotFound) {
			t.Fatalf("expected ErrKeyNotFound, got %v", err)
		}
	}
	if g.State() != gobreaker.StateClosed {
		t.Errorf("breaker state = %s", g.State())
	}
	if failures != 0 {
		t.Errorf("misses counted as failures: %d", failures)
	}
}

func TestGuardedStore_OpensAfterRepeatedFailures(t *testing.T) {
	ctx := context.Background()
	inner := &flakyStore{err: errors.New("connection reset"), data: map[string][]byte{}}
	failures := 0
	g := resilience.Guard("durable", inner, resilience.NewCircuitBreaker("durable", zerolog.Nop()),
		func(store, op string) {
			if store != "durable" {
				t.Errorf("store = %s", store)
			}
			failures++
		})

	for i := 0; i < 5; i++ {
		_ = g.Set(ctx, "k", []byte("v"), 0)
	}
	if g.State() != gobreaker.StateOpen {
		t.Fatalf("breaker state = %s, want open", g.State())
	}

	calls := inner.calls
	_, err := g.Get(ctx, "k")
	if !errors.Is(err, gobreaker.ErrOpenState) {
		t.Errorf("expected ErrOpenState, got %v", err)
	}
	if inner.calls != calls {
		t.Error("open breaker still reached the medium")
	}
	if failures != 6 {
		t.Errorf("failures observed = %d, want 6", failures)
	}
}
