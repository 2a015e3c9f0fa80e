// File: database/repository/slot/interface.go
package slotRepo

import (
	"context"

	"courtside/database"
	"courtside/models"

	"go.mongodb.org/mongo-driver/mongo"
)

// SlotRepository defines methods for slot data access. Dates are
// "2006-01-02" strings; range queries are inclusive on both ends and
// results come back ordered by date then start time.
type SlotRepository interface {
	// Create inserts a single slot.
	Create(ctx context.Context, slot *models.Slot) error
	// CreateMany inserts slots in order, assigning IDs where missing.
	CreateMany(ctx context.Context, slots []models.Slot) ([]string, error)
	// GetByDateRange retrieves all slots in the date range across courts.
	GetByDateRange(ctx context.Context, from, to string) ([]models.Slot, error)
	// GetByCourtIDAndDateRange retrieves one court's slots in the date range.
	GetByCourtIDAndDateRange(ctx context.Context, courtID, from, to string) ([]models.Slot, error)
	// GetAvailableByCourt retrieves a court's unoccupied slots in the date range.
	GetAvailableByCourt(ctx context.Context, courtID, from, to string) ([]models.Slot, error)
	// GetMaxSlotDate returns the latest slot date persisted for a court, or "" when none exist.
	GetMaxSlotDate(ctx context.Context, courtID string) (string, error)
	// SetAvailability flips a slot's occupancy flag. Owned by the booking
	// subsystem; the scheduling core never calls it.
	SetAvailability(ctx context.Context, slotID string, available bool) error
	// EnsureIndexes creates the collection's indexes.
	EnsureIndexes() error
}

type mongoSlotRepo struct {
	coll *mongo.Collection
}

// NewMongoSlotRepo constructs a new MongoDB SlotRepository.
func NewMongoSlotRepo() SlotRepository {
	db := database.MongoClient.Database("courtside")
	return &mongoSlotRepo{
		coll: db.Collection("slots"),
	}
}
