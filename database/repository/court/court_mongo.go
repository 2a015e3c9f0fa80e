// File: database/repository/court/court_mongo.go
package courtRepo

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"

	"courtside/models"
)

func (r *mongoCourtRepo) GetByID(ctx context.Context, id string) (*models.Court, error) {
	ctx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()

	var court models.Court
	err := r.coll.FindOne(ctx, bson.M{"id": id}).Decode(&court)
	if err == mongo.ErrNoDocuments {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("failed to fetch court %s: %w", id, err)
	}
	return &court, nil
}

func (r *mongoCourtRepo) GetManyByIDs(ctx context.Context, ids []string) (map[string]models.Court, error) {
	ctx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()

	courts := make(map[string]models.Court, len(ids))
	if len(ids) == 0 {
		return courts, nil
	}

	cursor, err := r.coll.Find(ctx, bson.M{"id": bson.M{"$in": ids}})
	if err != nil {
		return nil, fmt.Errorf("failed to fetch courts: %w", err)
	}
	defer cursor.Close(ctx)

	var results []models.Court
	if err := cursor.All(ctx, &results); err != nil {
		return nil, fmt.Errorf("error decoding courts: %w", err)
	}
	for _, c := range results {
		courts[c.ID] = c
	}
	return courts, nil
}

func (r *mongoCourtRepo) GetAllActive(ctx context.Context) ([]models.Court, error) {
	ctx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()

	cursor, err := r.coll.Find(ctx, bson.M{"archived": false})
	if err != nil {
		return nil, fmt.Errorf("failed to fetch courts: %w", err)
	}
	defer cursor.Close(ctx)

	var courts []models.Court
	if err := cursor.All(ctx, &courts); err != nil {
		return nil, fmt.Errorf("error decoding courts: %w", err)
	}
	return courts, nil
}

func (r *mongoCourtRepo) ExistsByNameAndLocation(ctx context.Context, name, location string) (bool, error) {
	ctx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()

	count, err := r.coll.CountDocuments(ctx, bson.M{
		"name":     name,
		"location": location,
		"archived": false,
	})
	if err != nil {
		return false, fmt.Errorf("failed to count courts: %w", err)
	}
	return count > 0, nil
}

func (r *mongoCourtRepo) Create(ctx context.Context, court *models.Court) error {
	ctx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()

	if court.ID == "" {
		court.ID = uuid.New().String()
	}
	if _, err := r.coll.InsertOne(ctx, court); err != nil {
		return fmt.Errorf("failed to insert court: %w", err)
	}
	return nil
}

func (r *mongoCourtRepo) Update(ctx context.Context, court *models.Court) error {
	ctx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()

	res, err := r.coll.ReplaceOne(ctx, bson.M{"id": court.ID}, court)
	if err != nil {
		return fmt.Errorf("failed to update court %s: %w", court.ID, err)
	}
	if res.MatchedCount == 0 {
		return mongo.ErrNoDocuments
	}
	return nil
}

func (r *mongoCourtRepo) SoftDelete(ctx context.Context, id string, at time.Time) error {
	ctx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()

	update := bson.M{"$set": bson.M{"archived": true, "archivedAt": at}}
	res, err := r.coll.UpdateOne(ctx, bson.M{"id": id}, update)
	if err != nil {
		return fmt.Errorf("failed to archive court %s: %w", id, err)
	}
	if res.MatchedCount == 0 {
		return mongo.ErrNoDocuments
	}
	return nil
}
