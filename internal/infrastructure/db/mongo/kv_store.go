package mongo

import (
	"context"
	"errors"
	"fmt"
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"

	"github.com/scratchie/onboarding-flow/internal/core/domain"
)

const collectionOnboardingState = "onboarding_state"

// kvDocument is one key of the durable scope. Value holds the JSON record as
// written by the persistence layer.
type kvDocument struct {
	Key       string     `bson:"_id"`
	Value     string     `bson:"value"`
	UpdatedAt time.Time  `bson:"updated_at"`
	ExpiresAt *time.Time `bson:"expires_at,omitempty"`
}

// KVStore implements ports.KeyValueStore over a MongoDB collection. It backs
// the durable scope: snapshots and preferences.
type KVStore struct {
	col *mongo.Collection
	now func() time.Time
}

func NewKVStore(db *mongo.Database) *KVStore {
	return &KVStore{
		col: db.Collection(collectionOnboardingState),
		now: func() time.Time { return time.Now().UTC() },
	}
}

// Get returns the stored value or domain.ErrKeyNotFound. Documents past their
// expiry are treated as missing even before the TTL monitor removes them.
func (s *KVStore) Get(ctx context.Context, key string) ([]byte, error) {
	ctx, cancel := context.WithTimeout(ctx, defaultTimeout)
	defer cancel()

	var doc kvDocument
	err := s.col.FindOne(ctx, bson.M{"_id": key}).Decode(&doc)
	if err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, domain.ErrKeyNotFound
		}
		return nil, fmt.Errorf("mongo get %q: %w", key, err)
	}
	if doc.ExpiresAt != nil && !s.now().Before(*doc.ExpiresAt) {
		return nil, domain.ErrKeyNotFound
	}
	return []byte(doc.Value), nil
}

// Set upserts key. A positive ttl stamps expires_at for the TTL index.
func (s *KVStore) Set(ctx context.Context, key string, value []byte, ttl time.Duration) error {
	ctx, cancel := context.WithTimeout(ctx, defaultTimeout)
	defer cancel()

	now := s.now()
	doc := kvDocument{Key: key, Value: string(value), UpdatedAt: now}
	if ttl > 0 {
		exp := now.Add(ttl)
		doc.ExpiresAt = &exp
	}

	_, err := s.col.ReplaceOne(ctx, bson.M{"_id": key}, doc, options.Replace().SetUpsert(true))
	if err != nil {
		return fmt.Errorf("mongo set %q: %w", key, err)
	}
	return nil
}

func (s *KVStore) Delete(ctx context.Context, key string) error {
	ctx, cancel := context.WithTimeout(ctx, defaultTimeout)
	defer cancel()

	if _, err := s.col.DeleteOne(ctx, bson.M{"_id": key}); err != nil {
		return fmt.Errorf("mongo delete %q: %w", key, err)
	}
	return nil
}

// EnsureIndexes creates the TTL index on expires_at.
func (s *KVStore) EnsureIndexes(ctx context.Context) error {
	ctx, cancel := context.WithTimeout(ctx, 30*time.Second)
	defer cancel()

	_, err := s.col.Indexes().CreateOne(ctx, mongo.IndexModel{
		Keys:    bson.D{{Key: "expires_at", Value: 1}},
		Options: options.Index().SetExpireAfterSeconds(0),
	})
	return err
}

// Ping checks connectivity for the readiness probe.
func (s *KVStore) Ping(ctx context.Context) error {
	return s.col.Database().Client().Ping(ctx, nil)
}
