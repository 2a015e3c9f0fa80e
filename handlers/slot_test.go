package handlers

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"

	"courtside/models"
	"courtside/services/scheduling"
)

type stubSlotService struct {
	responses []models.SlotResponse
	err       error
}

func (s *stubSlotService) QuerySlots(ctx context.Context, courtIDs []string, from, to string) ([]models.SlotResponse, error) {
	return s.responses, s.err
}

func (s *stubSlotService) CreateSlots(ctx context.Context, slots []models.Slot) error {
	return s.err
}

func (s *stubSlotService) GenerateSlotsForCourt(ctx context.Context, court *models.Court) error {
	return s.err
}

func (s *stubSlotService) ExtendHorizonForCourt(ctx context.Context, court *models.Court) (int, error) {
	return 0, s.err
}

func (s *stubSlotService) AvailableSlotsByCourt(ctx context.Context, courtID string) ([]models.SlotResponse, error) {
	return s.responses, s.err
}

func newSlotRouter(svc scheduling.SlotService) *gin.Engine {
	gin.SetMode(gin.TestMode)
	r := gin.New()
	h := NewSlotHandler(svc)
	r.GET("/api/slots", h.QuerySlotsHandler)
	r.POST("/api/slots", h.CreateSlotsHandler)
	return r
}

func TestQuerySlotsHandler(t *testing.T) {
	t.Run("date range is mandatory", func(t *testing.T) {
		router := newSlotRouter(&stubSlotService{})
		w := httptest.NewRecorder()
		req := httptest.NewRequest(http.MethodGet, "/api/slots?from=2025-09-01", nil)
		router.ServeHTTP(w, req)
		if w.Code != http.StatusBadRequest {
			t.Fatalf("status = %d, want %d", w.Code, http.StatusBadRequest)
		}
	})

	t.Run("returns classified slots", func(t *testing.T) {
		svc := &stubSlotService{responses: []models.SlotResponse{
			{ID: "s1", CourtID: "court-1", Date: "2025-09-01", Status: scheduling.StatusAvailable},
		}}
		router := newSlotRouter(svc)
		w := httptest.NewRecorder()
		req := httptest.NewRequest(http.MethodGet, "/api/slots?from=2025-09-01&to=2025-09-07&courtIds=court-1", nil)
		router.ServeHTTP(w, req)
		if w.Code != http.StatusOK {
			t.Fatalf("status = %d, want %d", w.Code, http.StatusOK)
		}
		var body struct {
			Slots []models.SlotResponse `json:"slots"`
		}
		if err := json.Unmarshal(w.Body.Bytes(), &body); err != nil {
			t.Fatalf("bad response body: %v", err)
		}
		if len(body.Slots) != 1 || body.Slots[0].Status != scheduling.StatusAvailable {
			t.Fatalf("body = %+v, want one available slot", body)
		}
	})

	t.Run("configuration error maps to bad request", func(t *testing.T) {
		svc := &stubSlotService{err: scheduling.NewConfigurationError("invalid start date")}
		router := newSlotRouter(svc)
		w := httptest.NewRecorder()
		req := httptest.NewRequest(http.MethodGet, "/api/slots?from=bad&to=2025-09-07", nil)
		router.ServeHTTP(w, req)
		if w.Code != http.StatusBadRequest {
			t.Fatalf("status = %d, want %d", w.Code, http.StatusBadRequest)
		}
	})
}
