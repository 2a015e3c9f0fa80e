package court

import (
	"context"

	courtRepo "courtside/database/repository/court"
	"courtside/models"
	"courtside/services/scheduling"
)

// CourtService manages court configuration records. Slot generation for a
// new court is delegated to the scheduling engine.
type CourtService interface {
	CreateCourt(ctx context.Context, dto models.CourtDTO) (*models.Court, error)
	UpdateCourt(ctx context.Context, id string, dto models.CourtDTO) (*models.Court, error)
	UpdateCourtPricing(ctx context.Context, id string, dto models.CourtPricingDTO) error
	DeleteCourt(ctx context.Context, id string) error
	GetAllCourts(ctx context.Context) ([]models.Court, error)
	GetCourtByID(ctx context.Context, id string) (*models.Court, error)
}

// DefaultCourtService is the production CourtService.
type DefaultCourtService struct {
	Repo  courtRepo.CourtRepository
	Slots scheduling.SlotService
	Cache *scheduling.CourtCache
}
