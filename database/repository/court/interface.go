// File: database/repository/court/interface.go
package courtRepo

import (
	"context"
	"time"

	"courtside/database"
	"courtside/models"

	"go.mongodb.org/mongo-driver/mongo"
)

// CourtRepository defines methods for court data access.
type CourtRepository interface {
	// GetByID retrieves a court by its unique ID; returns (nil, nil) when absent.
	GetByID(ctx context.Context, id string) (*models.Court, error)
	// GetManyByIDs retrieves all courts matching the given IDs in one query.
	GetManyByIDs(ctx context.Context, ids []string) (map[string]models.Court, error)
	// GetAllActive retrieves all non-archived courts.
	GetAllActive(ctx context.Context) ([]models.Court, error)
	// ExistsByNameAndLocation reports whether an active court with the name and location exists.
	ExistsByNameAndLocation(ctx context.Context, name, location string) (bool, error)
	// Create inserts a new court record.
	Create(ctx context.Context, court *models.Court) error
	// Update replaces an existing court record.
	Update(ctx context.Context, court *models.Court) error
	// SoftDelete marks a court as archived.
	SoftDelete(ctx context.Context, id string, at time.Time) error
	// EnsureIndexes creates the collection's indexes.
	EnsureIndexes() error
}

type mongoCourtRepo struct {
	coll *mongo.Collection
}

// NewMongoCourtRepo constructs a new MongoDB CourtRepository.
func NewMongoCourtRepo() CourtRepository {
	db := database.MongoClient.Database("courtside")
	return &mongoCourtRepo{
		coll: db.Collection("courts"),
	}
}
