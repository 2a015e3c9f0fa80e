// File: database/repository/slot/indexes.go
package slotRepo

import (
	"context"
	"fmt"
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

// EnsureIndexes creates the necessary indexes on the slots collection.
// The unique courtId+date+start index is the at-most-once fence for
// concurrent slot generation: racing generators hit a duplicate key
// instead of double-inserting.
func (r *mongoSlotRepo) EnsureIndexes() error {
	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	indexModels := []mongo.IndexModel{
		{
			Keys:    bson.D{{Key: "id", Value: 1}},
			Options: options.Index().SetUnique(true).SetName("unique_id"),
		},
		{
			Keys:    bson.D{{Key: "courtId", Value: 1}, {Key: "date", Value: 1}, {Key: "start", Value: 1}},
			Options: options.Index().SetUnique(true).SetName("unique_court_date_start"),
		},
		// Range scans across all courts.
		{
			Keys:    bson.D{{Key: "date", Value: 1}, {Key: "start", Value: 1}},
			Options: options.Index().SetName("date_start_idx"),
		},
		// Availability listing per court.
		{
			Keys:    bson.D{{Key: "courtId", Value: 1}, {Key: "date", Value: 1}, {Key: "isAvailable", Value: 1}},
			Options: options.Index().SetName("court_date_available_idx"),
		},
	}

	_, err := r.coll.Indexes().CreateMany(ctx, indexModels)
	if err != nil {
		return fmt.Errorf("failed to create slot indexes: %w", err)
	}
	return nil
}
