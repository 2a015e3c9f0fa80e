package court

import (
	"context"
	"errors"
	"testing"
	"time"

	"courtside/models"
	"courtside/services/scheduling"
)

type fakeCourtRepo struct {
	courts    map[string]models.Court
	duplicate bool
}

func (f *fakeCourtRepo) GetByID(ctx context.Context, id string) (*models.Court, error) {
	if c, ok := f.courts[id]; ok {
		return &c, nil
	}
	return nil, nil
}

func (f *fakeCourtRepo) GetManyByIDs(ctx context.Context, ids []string) (map[string]models.Court, error) {
	out := make(map[string]models.Court)
	for _, id := range ids {
		if c, ok := f.courts[id]; ok {
			out[id] = c
		}
	}
	return out, nil
}

func (f *fakeCourtRepo) GetAllActive(ctx context.Context) ([]models.Court, error) {
	var out []models.Court
	for _, c := range f.courts {
		if !c.Archived {
			out = append(out, c)
		}
	}
	return out, nil
}

func (f *fakeCourtRepo) ExistsByNameAndLocation(ctx context.Context, name, location string) (bool, error) {
	return f.duplicate, nil
}

func (f *fakeCourtRepo) Create(ctx context.Context, court *models.Court) error {
	if court.ID == "" {
		court.ID = "generated-id"
	}
	f.courts[court.ID] = *court
	return nil
}

func (f *fakeCourtRepo) Update(ctx context.Context, court *models.Court) error {
	f.courts[court.ID] = *court
	return nil
}

func (f *fakeCourtRepo) SoftDelete(ctx context.Context, id string, at time.Time) error {
	c := f.courts[id]
	c.Archived = true
	c.ArchivedAt = &at
	f.courts[id] = c
	return nil
}

func (f *fakeCourtRepo) EnsureIndexes() error { return nil }

type fakeSlotService struct {
	generatedFor []string
	generateErr  error
}

func (f *fakeSlotService) QuerySlots(ctx context.Context, courtIDs []string, from, to string) ([]models.SlotResponse, error) {
	return nil, nil
}

func (f *fakeSlotService) CreateSlots(ctx context.Context, slots []models.Slot) error {
	return nil
}

func (f *fakeSlotService) GenerateSlotsForCourt(ctx context.Context, court *models.Court) error {
	if f.generateErr != nil {
		return f.generateErr
	}
	f.generatedFor = append(f.generatedFor, court.ID)
	return nil
}

func (f *fakeSlotService) ExtendHorizonForCourt(ctx context.Context, court *models.Court) (int, error) {
	return 0, nil
}

func (f *fakeSlotService) AvailableSlotsByCourt(ctx context.Context, courtID string) ([]models.SlotResponse, error) {
	return nil, nil
}

func validDTO() models.CourtDTO {
	return models.CourtDTO{
		Name:          "Center Court",
		Location:      "Downtown",
		OpeningTime:   "09:00",
		ClosingTime:   "21:00",
		OperatingDays: "Mon,Tue,Wed,Thu,Fri",
	}
}

func newTestCourtService() (*DefaultCourtService, *fakeCourtRepo, *fakeSlotService) {
	repo := &fakeCourtRepo{courts: map[string]models.Court{}}
	slots := &fakeSlotService{}
	svc := &DefaultCourtService{Repo: repo, Slots: slots}
	return svc, repo, slots
}

func TestCreateCourt(t *testing.T) {
	ctx := context.Background()

	t.Run("creates court and generates slot horizon", func(t *testing.T) {
		svc, repo, slots := newTestCourtService()
		created, err := svc.CreateCourt(ctx, validDTO())
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if created.Status != models.CourtStatusNormal {
			t.Errorf("status defaulted to %q, want %q", created.Status, models.CourtStatusNormal)
		}
		if _, ok := repo.courts[created.ID]; !ok {
			t.Fatal("court not persisted")
		}
		if len(slots.generatedFor) != 1 || slots.generatedFor[0] != created.ID {
			t.Fatalf("slot generation ran for %v, want [%s]", slots.generatedFor, created.ID)
		}
	})

	t.Run("rejects duplicate name and location", func(t *testing.T) {
		svc, repo, _ := newTestCourtService()
		repo.duplicate = true
		var conflict *ConflictError
		if _, err := svc.CreateCourt(ctx, validDTO()); !errors.As(err, &conflict) {
			t.Fatalf("expected ConflictError, got %v", err)
		}
	})

	t.Run("rejects invalid configuration before persisting", func(t *testing.T) {
		svc, repo, _ := newTestCourtService()

		dto := validDTO()
		dto.OpeningTime = "22:00" // after closing
		var confErr *scheduling.ConfigurationError
		if _, err := svc.CreateCourt(ctx, dto); !errors.As(err, &confErr) {
			t.Fatalf("expected ConfigurationError, got %v", err)
		}

		dto = validDTO()
		dto.OperatingDays = "Mon,Funday"
		if _, err := svc.CreateCourt(ctx, dto); !errors.As(err, &confErr) {
			t.Fatalf("expected ConfigurationError for bad day list, got %v", err)
		}

		if len(repo.courts) != 0 {
			t.Fatal("invalid configuration must not persist a court")
		}
	})

	t.Run("peak window must sit inside operating hours", func(t *testing.T) {
		svc, _, _ := newTestCourtService()
		dto := validDTO()
		dto.PeakStartTime, dto.PeakEndTime = "08:00", "11:00"
		var confErr *scheduling.ConfigurationError
		if _, err := svc.CreateCourt(ctx, dto); !errors.As(err, &confErr) {
			t.Fatalf("expected ConfigurationError for peak before opening, got %v", err)
		}

		dto.PeakStartTime, dto.PeakEndTime = "17:00", "20:00"
		if _, err := svc.CreateCourt(ctx, dto); err != nil {
			t.Fatalf("valid peak window rejected: %v", err)
		}
	})
}

func TestUpdateCourt(t *testing.T) {
	ctx := context.Background()

	t.Run("unknown court is not found", func(t *testing.T) {
		svc, _, _ := newTestCourtService()
		var nfErr *scheduling.NotFoundError
		if _, err := svc.UpdateCourt(ctx, "ghost", validDTO()); !errors.As(err, &nfErr) {
			t.Fatalf("expected NotFoundError, got %v", err)
		}
	})

	t.Run("updates configuration without touching slots", func(t *testing.T) {
		svc, repo, slots := newTestCourtService()
		created, err := svc.CreateCourt(ctx, validDTO())
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		generated := len(slots.generatedFor)

		dto := validDTO()
		dto.ClosingTime = "18:00"
		updated, err := svc.UpdateCourt(ctx, created.ID, dto)
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if updated.ClosingTime != "18:00" {
			t.Errorf("closing time = %s, want 18:00", updated.ClosingTime)
		}
		if len(slots.generatedFor) != generated {
			t.Error("update must not regenerate slots; status is recomputed at query time")
		}
		if repo.courts[created.ID].ClosingTime != "18:00" {
			t.Error("update not persisted")
		}
	})
}

func TestUpdateCourtPricing(t *testing.T) {
	ctx := context.Background()

	t.Run("validates peak window against stored hours", func(t *testing.T) {
		svc, _, _ := newTestCourtService()
		created, err := svc.CreateCourt(ctx, validDTO())
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}

		pricing := models.CourtPricingDTO{PeakStartTime: "20:00", PeakEndTime: "22:00"}
		var confErr *scheduling.ConfigurationError
		if err := svc.UpdateCourtPricing(ctx, created.ID, pricing); !errors.As(err, &confErr) {
			t.Fatalf("expected ConfigurationError for peak past closing, got %v", err)
		}

		pricing = models.CourtPricingDTO{PeakHourlyPrice: 40, OffPeakHourlyPrice: 25, PeakStartTime: "17:00", PeakEndTime: "20:00"}
		if err := svc.UpdateCourtPricing(ctx, created.ID, pricing); err != nil {
			t.Fatalf("valid pricing rejected: %v", err)
		}
	})
}

func TestDeleteCourt(t *testing.T) {
	ctx := context.Background()

	t.Run("archives an active court", func(t *testing.T) {
		svc, repo, _ := newTestCourtService()
		created, err := svc.CreateCourt(ctx, validDTO())
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if err := svc.DeleteCourt(ctx, created.ID); err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if !repo.courts[created.ID].Archived {
			t.Fatal("court not archived")
		}
	})

	t.Run("refuses to delete twice", func(t *testing.T) {
		svc, _, _ := newTestCourtService()
		created, err := svc.CreateCourt(ctx, validDTO())
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if err := svc.DeleteCourt(ctx, created.ID); err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		var conflict *ConflictError
		if err := svc.DeleteCourt(ctx, created.ID); !errors.As(err, &conflict) {
			t.Fatalf("expected ConflictError, got %v", err)
		}
	})

	t.Run("archived court no longer resolves for members", func(t *testing.T) {
		svc, _, _ := newTestCourtService()
		created, err := svc.CreateCourt(ctx, validDTO())
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if err := svc.DeleteCourt(ctx, created.ID); err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		got, err := svc.GetCourtByID(ctx, created.ID)
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if got != nil {
			t.Fatal("archived court should resolve to nil")
		}
	})
}
