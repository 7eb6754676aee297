package mongo

import (
	"context"
	"errors"
	"fmt"
	"time"

	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

const (
	defaultTimeout = 10 * time.Second
	appName        = "onboarding-flow"
)

// Config captures the settings of the MongoDB backend.
type Config struct {
	URI      string
	Database string
	Timeout  time.Duration
}

// Backend bundles the MongoDB adapters: the durable key-value scope and the
// analytics event sink.
type Backend struct {
	client    *mongo.Client
	State     *KVStore
	Analytics *AnalyticsRepository
}

// Open connects, verifies the connection with a ping and makes sure every
// collection index exists.
func Open(ctx context.Context, cfg Config) (*Backend, error) {
	timeout := cfg.Timeout
	if timeout <= 0 {
		timeout = defaultTimeout
	}

	connectCtx, cancel := context.WithTimeout(ctx, timeout)
	defer cancel()

	opts := options.Client().
		ApplyURI(cfg.URI).
		SetAppName(appName).
		SetServerSelectionTimeout(timeout)
	client, err := mongo.Connect(connectCtx, opts)
	if err != nil {
		return nil, fmt.Errorf("mongo connect: %w", err)
	}
	if err := client.Ping(connectCtx, nil); err != nil {
		_ = client.Disconnect(context.Background())
		return nil, fmt.Errorf("mongo ping: %w", err)
	}

	db := client.Database(cfg.Database)
	b := &Backend{
		client:    client,
		State:     NewKVStore(db),
		Analytics: NewAnalyticsRepository(db),
	}
	if err := errors.Join(b.State.EnsureIndexes(ctx), b.Analytics.EnsureIndexes(ctx)); err != nil {
		_ = client.Disconnect(context.Background())
		return nil, fmt.Errorf("mongo indexes: %w", err)
	}
	return b, nil
}

// Close disconnects the client.
func (b *Backend) Close(ctx context.Context) error {
	return b.client.Disconnect(ctx)
}
