package ports

import (
	"context"
	"time"
)

// KeyValueStore is the medium behind one storage scope. Implementations return
// domain.ErrKeyNotFound on a miss.
type KeyValueStore interface {
	Get(ctx context.Context, key string) ([]byte, error)
	// Set overwrites key. A zero ttl means the store's own default.
	Set(ctx context.Context, key string, value []byte, ttl time.Duration) error
	Delete(ctx context.Context, key string) error
}
