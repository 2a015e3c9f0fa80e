// File: database/repository/court/indexes.go
package courtRepo

import (
	"context"
	"fmt"
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

// EnsureIndexes creates the necessary indexes on the courts collection.
func (r *mongoCourtRepo) EnsureIndexes() error {
	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	indexModels := []mongo.IndexModel{
		{
			Keys:    bson.D{{Key: "id", Value: 1}},
			Options: options.Index().SetUnique(true).SetName("unique_id"),
		},
		{
			Keys:    bson.D{{Key: "name", Value: 1}, {Key: "location", Value: 1}},
			Options: options.Index().SetName("name_location_idx"),
		},
		{
			Keys:    bson.D{{Key: "archived", Value: 1}},
			Options: options.Index().SetName("archived_idx"),
		},
	}

	_, err := r.coll.Indexes().CreateMany(ctx, indexModels)
	if err != nil {
		return fmt.Errorf("failed to create court indexes: %w", err)
	}
	return nil
}
