package scheduling

import (
	"context"
	"time"

	"go.uber.org/zap"

	"courtside/models"
	"courtside/utils"
)

const (
	dateLayout = "2006-01-02"

	// horizonMonths is how far ahead slots exist for every active court.
	horizonMonths = 3
	// availabilityWindowDays is the lookahead for the per-court
	// availability listing.
	availabilityWindowDays = 7
)

// QuerySlots fetches slots in [from, to], resolves the referenced courts in
// one batch, and classifies every slot against its court's current
// configuration. A slot whose court cannot be resolved is reported UNKNOWN
// rather than failing the query. Output order mirrors store order.
func (s *DefaultSlotService) QuerySlots(ctx context.Context, courtIDs []string, from, to string) ([]models.SlotResponse, error) {
	if err := validateDateRange(from, to); err != nil {
		return nil, err
	}

	var slots []models.Slot
	if len(courtIDs) == 0 {
		all, err := s.Repo.GetByDateRange(ctx, from, to)
		if err != nil {
			return nil, err
		}
		slots = all
	} else {
		for _, courtID := range courtIDs {
			part, err := s.Repo.GetByCourtIDAndDateRange(ctx, courtID, from, to)
			if err != nil {
				return nil, err
			}
			slots = append(slots, part...)
		}
	}

	if len(slots) == 0 {
		return []models.SlotResponse{}, nil
	}

	courts, err := s.resolveCourts(ctx, slots)
	if err != nil {
		return nil, err
	}

	responses := make([]models.SlotResponse, 0, len(slots))
	for _, slot := range slots {
		resp := models.SlotResponse{
			ID:        slot.ID,
			CourtID:   slot.CourtID,
			Date:      slot.Date,
			DayOfWeek: dayOfWeek(slot.Date),
			Start:     slot.Start,
			End:       slot.End,
		}
		if court, ok := courts[slot.CourtID]; ok {
			resp.CourtName = court.Name
			resp.CourtLocation = court.Location
			resp.Status = ClassifySlot(slot, &court)
		} else {
			resp.Status = StatusUnknown
		}
		responses = append(responses, resp)
	}
	return responses, nil
}

// resolveCourts batch-loads the distinct courts referenced by the slots,
// consulting the cache first. A court missing from the result is a lookup
// gap handled by the caller, not an error.
func (s *DefaultSlotService) resolveCourts(ctx context.Context, slots []models.Slot) (map[string]models.Court, error) {
	seen := make(map[string]bool, len(slots))
	var ids []string
	for _, slot := range slots {
		if !seen[slot.CourtID] {
			seen[slot.CourtID] = true
			ids = append(ids, slot.CourtID)
		}
	}

	courts, missed := s.Cache.GetMany(ctx, ids)
	if len(missed) == 0 {
		return courts, nil
	}

	fetched, err := s.CourtRepo.GetManyByIDs(ctx, missed)
	if err != nil {
		return nil, err
	}
	s.Cache.SetMany(ctx, fetched)
	for id, court := range fetched {
		courts[id] = court
	}
	return courts, nil
}

// CreateSlots validates every candidate before persisting any of them: a
// single malformed candidate rejects the whole batch. Keeping creation
// all-or-nothing is what makes horizon regeneration safe to re-run.
func (s *DefaultSlotService) CreateSlots(ctx context.Context, slots []models.Slot) error {
	for _, slot := range slots {
		if slot.CourtID == "" {
			return NewValidationError("court id is required for slot creation")
		}
		if slot.Date == "" {
			return NewValidationError("date is required for slot creation")
		}
		if slot.End == 0 {
			return NewValidationError("end time is required for slot creation")
		}
		if slot.Start < 0 || slot.Start >= slot.End {
			return NewValidationError("slot start time must be before end time")
		}
	}
	if len(slots) == 0 {
		return nil
	}
	_, err := s.Repo.CreateMany(ctx, slots)
	return err
}

// GenerateSlotsForCourt expands the court's operating configuration into
// slots from today through the standard horizon and persists them. Meant
// to run once when a court is created; concurrent duplicate generation is
// fenced by the store's uniqueness index, not here.
func (s *DefaultSlotService) GenerateSlotsForCourt(ctx context.Context, court *models.Court) error {
	from := startOfDay(time.Now())
	to := from.AddDate(0, horizonMonths, 0)
	count, err := s.generateBetween(ctx, court, from, to)
	if err != nil {
		return err
	}
	utils.GetLogger().Info("generated slot horizon",
		zap.String("courtID", court.ID),
		zap.Int("slots", count))
	return nil
}

// ExtendHorizonForCourt generates only the slots past the court's current
// coverage. Idempotent: when coverage already reaches the horizon it
// creates nothing.
func (s *DefaultSlotService) ExtendHorizonForCourt(ctx context.Context, court *models.Court) (int, error) {
	today := startOfDay(time.Now())
	from := today
	maxDate, err := s.Repo.GetMaxSlotDate(ctx, court.ID)
	if err != nil {
		return 0, err
	}
	if maxDate != "" {
		covered, err := time.Parse(dateLayout, maxDate)
		if err == nil && covered.AddDate(0, 0, 1).After(from) {
			from = covered.AddDate(0, 0, 1)
		}
	}

	to := today.AddDate(0, horizonMonths, 0)
	if !from.Before(to) {
		return 0, nil
	}
	return s.generateBetween(ctx, court, from, to)
}

func (s *DefaultSlotService) generateBetween(ctx context.Context, court *models.Court, from, to time.Time) (int, error) {
	if court.OpeningTime == "" || court.ClosingTime == "" {
		return 0, NewConfigurationError("court operating hours not defined")
	}
	window, err := ParseOperatingWindow(court.OpeningTime, court.ClosingTime)
	if err != nil {
		return 0, err
	}
	days, err := ParseOperatingDays(court.OperatingDays)
	if err != nil {
		return 0, err
	}

	slots := ExpandSlots(court.ID, window, days, from, to, DefaultSlotMinutes)
	if err := s.CreateSlots(ctx, slots); err != nil {
		return 0, err
	}
	return len(slots), nil
}

// AvailableSlotsByCourt returns the court's unoccupied slots for the next
// seven days. Occupancy-filtered at the store, so every result reports
// AVAILABLE.
func (s *DefaultSlotService) AvailableSlotsByCourt(ctx context.Context, courtID string) ([]models.SlotResponse, error) {
	court, err := s.CourtRepo.GetByID(ctx, courtID)
	if err != nil {
		return nil, err
	}
	if court == nil {
		return nil, NewNotFoundError("court not found with id: %s", courtID)
	}

	today := startOfDay(time.Now())
	from := today.Format(dateLayout)
	to := today.AddDate(0, 0, availabilityWindowDays).Format(dateLayout)

	slots, err := s.Repo.GetAvailableByCourt(ctx, courtID, from, to)
	if err != nil {
		return nil, err
	}

	responses := make([]models.SlotResponse, 0, len(slots))
	for _, slot := range slots {
		responses = append(responses, models.SlotResponse{
			ID:            slot.ID,
			CourtID:       slot.CourtID,
			Date:          slot.Date,
			DayOfWeek:     dayOfWeek(slot.Date),
			Start:         slot.Start,
			End:           slot.End,
			CourtName:     court.Name,
			CourtLocation: court.Location,
			Status:        StatusAvailable,
		})
	}
	return responses, nil
}

func validateDateRange(from, to string) error {
	fromDate, err := time.Parse(dateLayout, from)
	if err != nil {
		return NewConfigurationError("invalid start date: %q", from)
	}
	toDate, err := time.Parse(dateLayout, to)
	if err != nil {
		return NewConfigurationError("invalid end date: %q", to)
	}
	if toDate.Before(fromDate) {
		return NewConfigurationError("end date %s is before start date %s", to, from)
	}
	return nil
}

func dayOfWeek(date string) string {
	d, err := time.Parse(dateLayout, date)
	if err != nil {
		return ""
	}
	return d.Weekday().String()
}

func startOfDay(t time.Time) time.Time {
	return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, t.Location())
}
