// File: database/repository/slot/queries.go
package slotRepo

import (
	"context"
	"fmt"
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"

	"courtside/models"
)

// slotSort keeps range queries deterministic: date ascending, then start time.
var slotSort = bson.D{{Key: "date", Value: 1}, {Key: "start", Value: 1}}

func (r *mongoSlotRepo) GetByDateRange(ctx context.Context, from, to string) ([]models.Slot, error) {
	filter := bson.M{"date": bson.M{"$gte": from, "$lte": to}}
	return r.findSlots(ctx, filter)
}

func (r *mongoSlotRepo) GetByCourtIDAndDateRange(ctx context.Context, courtID, from, to string) ([]models.Slot, error) {
	filter := bson.M{
		"courtId": courtID,
		"date":    bson.M{"$gte": from, "$lte": to},
	}
	return r.findSlots(ctx, filter)
}

func (r *mongoSlotRepo) GetAvailableByCourt(ctx context.Context, courtID, from, to string) ([]models.Slot, error) {
	filter := bson.M{
		"courtId":     courtID,
		"date":        bson.M{"$gte": from, "$lte": to},
		"isAvailable": true,
	}
	return r.findSlots(ctx, filter)
}

func (r *mongoSlotRepo) findSlots(ctx context.Context, filter bson.M) ([]models.Slot, error) {
	ctx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()

	cursor, err := r.coll.Find(ctx, filter, options.Find().SetSort(slotSort))
	if err != nil {
		return nil, fmt.Errorf("failed to fetch slots: %w", err)
	}
	defer cursor.Close(ctx)

	var slots []models.Slot
	if err := cursor.All(ctx, &slots); err != nil {
		return nil, fmt.Errorf("error decoding slots: %w", err)
	}
	return slots, nil
}

func (r *mongoSlotRepo) GetMaxSlotDate(ctx context.Context, courtID string) (string, error) {
	ctx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()

	pipeline := mongo.Pipeline{
		{{Key: "$match", Value: bson.M{"courtId": courtID}}},
		{{Key: "$group", Value: bson.M{
			"_id":     nil,
			"maxDate": bson.M{"$max": "$date"},
		}}},
	}

	cursor, err := r.coll.Aggregate(ctx, pipeline)
	if err != nil {
		return "", fmt.Errorf("failed to aggregate max date: %w", err)
	}
	defer cursor.Close(ctx)

	var result []struct {
		MaxDate string `bson:"maxDate"`
	}
	if err := cursor.All(ctx, &result); err != nil {
		return "", fmt.Errorf("decode error: %w", err)
	}
	if len(result) == 0 {
		return "", nil
	}
	return result[0].MaxDate, nil
}
