package court

import (
	"context"
	"time"

	"go.uber.org/zap"

	"courtside/models"
	"courtside/services/scheduling"
	"courtside/utils"
)

// CreateCourt validates the court's operating configuration, persists the
// record, and generates its slot horizon.
func (s *DefaultCourtService) CreateCourt(ctx context.Context, dto models.CourtDTO) (*models.Court, error) {
	if err := validateConfiguration(dto); err != nil {
		return nil, err
	}

	exists, err := s.Repo.ExistsByNameAndLocation(ctx, dto.Name, dto.Location)
	if err != nil {
		return nil, err
	}
	if exists {
		return nil, NewConflictError("court with the same name and location already exists")
	}

	court := applyDTO(&models.Court{}, dto)
	if err := s.Repo.Create(ctx, court); err != nil {
		return nil, err
	}

	if err := s.Slots.GenerateSlotsForCourt(ctx, court); err != nil {
		return nil, err
	}

	utils.GetLogger().Info("court created",
		zap.String("courtID", court.ID),
		zap.String("name", court.Name))
	return court, nil
}

// UpdateCourt replaces a court's configuration. Existing slots are left
// untouched: status is recomputed from the new configuration at query time.
func (s *DefaultCourtService) UpdateCourt(ctx context.Context, id string, dto models.CourtDTO) (*models.Court, error) {
	if err := validateConfiguration(dto); err != nil {
		return nil, err
	}

	existing, err := s.Repo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if existing == nil {
		return nil, scheduling.NewNotFoundError("court not found with id: %s", id)
	}

	if existing.Name != dto.Name || existing.Location != dto.Location {
		exists, err := s.Repo.ExistsByNameAndLocation(ctx, dto.Name, dto.Location)
		if err != nil {
			return nil, err
		}
		if exists {
			return nil, NewConflictError("another court with the same name and location already exists")
		}
	}

	court := applyDTO(existing, dto)
	if err := s.Repo.Update(ctx, court); err != nil {
		return nil, err
	}
	s.Cache.Invalidate(ctx, id)
	return court, nil
}

// UpdateCourtPricing updates pricing fields only. Peak windows must parse
// and sit inside the court's operating window.
func (s *DefaultCourtService) UpdateCourtPricing(ctx context.Context, id string, dto models.CourtPricingDTO) error {
	court, err := s.Repo.GetByID(ctx, id)
	if err != nil {
		return err
	}
	if court == nil {
		return scheduling.NewNotFoundError("court not found with id: %s", id)
	}

	if err := validatePeakWindow(dto.PeakStartTime, dto.PeakEndTime, court.OpeningTime, court.ClosingTime); err != nil {
		return err
	}

	court.PeakHourlyPrice = dto.PeakHourlyPrice
	court.OffPeakHourlyPrice = dto.OffPeakHourlyPrice
	court.DailyPrice = dto.DailyPrice
	court.PeakStartTime = dto.PeakStartTime
	court.PeakEndTime = dto.PeakEndTime

	if err := s.Repo.Update(ctx, court); err != nil {
		return err
	}
	s.Cache.Invalidate(ctx, id)
	return nil
}

// DeleteCourt archives a court. Slots stay in the store; their court will
// no longer resolve for new queries once purged by the booking subsystem.
func (s *DefaultCourtService) DeleteCourt(ctx context.Context, id string) error {
	court, err := s.Repo.GetByID(ctx, id)
	if err != nil {
		return err
	}
	if court == nil {
		return scheduling.NewNotFoundError("court not found with id: %s", id)
	}
	if court.Archived {
		return NewConflictError("court already deleted")
	}

	if err := s.Repo.SoftDelete(ctx, id, time.Now()); err != nil {
		return err
	}
	s.Cache.Invalidate(ctx, id)
	utils.GetLogger().Info("court archived", zap.String("courtID", id))
	return nil
}

func (s *DefaultCourtService) GetAllCourts(ctx context.Context) ([]models.Court, error) {
	return s.Repo.GetAllActive(ctx)
}

// GetCourtByID returns the court, or nil when absent or archived.
func (s *DefaultCourtService) GetCourtByID(ctx context.Context, id string) (*models.Court, error) {
	court, err := s.Repo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if court == nil || court.Archived {
		return nil, nil
	}
	return court, nil
}

func applyDTO(court *models.Court, dto models.CourtDTO) *models.Court {
	court.Name = dto.Name
	court.Location = dto.Location
	court.Status = dto.Status
	if court.Status == "" {
		court.Status = models.CourtStatusNormal
	}
	court.OpeningTime = dto.OpeningTime
	court.ClosingTime = dto.ClosingTime
	court.OperatingDays = dto.OperatingDays
	court.PeakHourlyPrice = dto.PeakHourlyPrice
	court.OffPeakHourlyPrice = dto.OffPeakHourlyPrice
	court.DailyPrice = dto.DailyPrice
	court.PeakStartTime = dto.PeakStartTime
	court.PeakEndTime = dto.PeakEndTime
	return court
}

// validateConfiguration rejects malformed operating hours, day lists, and
// peak windows before anything is persisted.
func validateConfiguration(dto models.CourtDTO) error {
	if _, err := scheduling.ParseOperatingWindow(dto.OpeningTime, dto.ClosingTime); err != nil {
		return err
	}
	if _, err := scheduling.ParseOperatingDays(dto.OperatingDays); err != nil {
		return err
	}
	return validatePeakWindow(dto.PeakStartTime, dto.PeakEndTime, dto.OpeningTime, dto.ClosingTime)
}

func validatePeakWindow(peakStart, peakEnd, opening, closing string) error {
	if peakStart == "" && peakEnd == "" {
		return nil
	}
	if peakStart == "" || peakEnd == "" {
		return scheduling.NewConfigurationError("peak start and end times must be set together")
	}

	peak, err := scheduling.ParseOperatingWindow(peakStart, peakEnd)
	if err != nil {
		return err
	}
	window, err := scheduling.ParseOperatingWindow(opening, closing)
	if err != nil {
		return err
	}
	if peak.Open < window.Open || peak.Close > window.Close {
		return scheduling.NewConfigurationError("peak hours must be within operating hours")
	}
	return nil
}
