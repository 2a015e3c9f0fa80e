package scheduling

import (
	"context"

	courtRepo "courtside/database/repository/court"
	slotRepo "courtside/database/repository/slot"
	"courtside/models"
)

// SlotService is the scheduling engine: slot generation over a rolling
// horizon plus query-time availability classification.
type SlotService interface {
	// QuerySlots returns classified slots in the date range. An empty
	// courtIDs list means all courts.
	QuerySlots(ctx context.Context, courtIDs []string, from, to string) ([]models.SlotResponse, error)
	// CreateSlots persists slot candidates after validating the whole batch.
	CreateSlots(ctx context.Context, slots []models.Slot) error
	// GenerateSlotsForCourt expands a court's operating configuration into
	// slots over the standard horizon and persists them.
	GenerateSlotsForCourt(ctx context.Context, court *models.Court) error
	// ExtendHorizonForCourt generates only the slots past the court's
	// current coverage, returning how many were created.
	ExtendHorizonForCourt(ctx context.Context, court *models.Court) (int, error)
	// AvailableSlotsByCourt returns the court's unoccupied slots for the
	// next seven days.
	AvailableSlotsByCourt(ctx context.Context, courtID string) ([]models.SlotResponse, error)
}

// DefaultSlotService is the production SlotService backed by the slot and
// court repositories, with an optional Redis cache for court resolution.
type DefaultSlotService struct {
	Repo      slotRepo.SlotRepository
	CourtRepo courtRepo.CourtRepository
	Cache     *CourtCache
}
