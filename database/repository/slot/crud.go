// File: database/repository/slot/crud.go
package slotRepo

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"

	"courtside/models"
)

func (r *mongoSlotRepo) Create(ctx context.Context, slot *models.Slot) error {
	ctx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()

	if slot.ID == "" {
		slot.ID = uuid.New().String()
	}
	if _, err := r.coll.InsertOne(ctx, slot); err != nil {
		return fmt.Errorf("failed to insert slot: %w", err)
	}
	return nil
}

func (r *mongoSlotRepo) CreateMany(ctx context.Context, slots []models.Slot) ([]string, error) {
	ctx, cancel := context.WithTimeout(ctx, 10*time.Second)
	defer cancel()

	docs := make([]interface{}, len(slots))
	for i, slot := range slots {
		if slot.ID == "" {
			slot.ID = uuid.New().String()
		}
		docs[i] = slot
	}

	res, err := r.coll.InsertMany(ctx, docs, &options.InsertManyOptions{Ordered: boolPtr(true)})
	if err != nil {
		return nil, fmt.Errorf("failed to insert slots: %w", err)
	}

	ids := make([]string, len(res.InsertedIDs))
	for i, raw := range res.InsertedIDs {
		switch v := raw.(type) {
		case string:
			ids[i] = v
		case uuid.UUID:
			ids[i] = v.String()
		case primitive.ObjectID:
			ids[i] = v.Hex()
		default:
			return nil, errors.New("unexpected type for inserted ID")
		}
	}
	return ids, nil
}

func (r *mongoSlotRepo) SetAvailability(ctx context.Context, slotID string, available bool) error {
	ctx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()

	update := bson.M{"$set": bson.M{"isAvailable": available}}
	res, err := r.coll.UpdateOne(ctx, bson.M{"id": slotID}, update)
	if err != nil {
		return fmt.Errorf("failed to update slot %s: %w", slotID, err)
	}
	if res.MatchedCount == 0 {
		return mongo.ErrNoDocuments
	}
	return nil
}

func boolPtr(b bool) *bool { return &b }
