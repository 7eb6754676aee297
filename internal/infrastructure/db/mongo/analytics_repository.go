package mongo

import (
	"context"
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"

	"github.com/scratchie/onboarding-flow/internal/core/domain"
	"github.com/scratchie/onboarding-flow/internal/core/ports"
)

const collectionAnalyticsEvents = "analytics_events"

var _ ports.AnalyticsRepository = (*AnalyticsRepository)(nil)

// AnalyticsRepository implements ports.AnalyticsRepository using MongoDB.
type AnalyticsRepository struct {
	col *mongo.Collection
}

// NewAnalyticsRepository creates a new AnalyticsRepository.
func NewAnalyticsRepository(db *mongo.Database) *AnalyticsRepository {
	return &AnalyticsRepository{col: db.Collection(collectionAnalyticsEvents)}
}

// InsertEvent appends a forwarded event to the analytics_events collection.
func (r *AnalyticsRepository) InsertEvent(ctx context.Context, event domain.AnalyticsEvent) error {
	ctx, cancel := context.WithTimeout(ctx, defaultTimeout)
	defer cancel()

	doc := bson.M{
		"event":       event.Event,
		"timestamp":   event.Timestamp.UTC(),
		"session_id":  event.SessionID,
		"received_at": time.Now().UTC(),
	}
	if len(event.Data) > 0 {
		doc["data"] = event.Data
	}
	if event.Screen != "" {
		doc["screen"] = string(event.Screen)
	}

	_, err := r.col.InsertOne(ctx, doc)
	return err
}

// EnsureIndexes creates the lookup index on session and time.
func (r *AnalyticsRepository) EnsureIndexes(ctx context.Context) error {
	ctx, cancel := context.WithTimeout(ctx, 30*time.Second)
	defer cancel()

	_, err := r.col.Indexes().CreateMany(ctx, []mongo.IndexModel{
		{Keys: bson.D{{Key: "session_id", Value: 1}, {Key: "timestamp", Value: 1}}},
		{Keys: bson.D{{Key: "event", Value: 1}}},
	})
	return err
}
