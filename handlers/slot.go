package handlers

import (
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"courtside/models"
	"courtside/services/scheduling"
	"courtside/utils"
)

// SlotHandler exposes slot query and generation endpoints.
type SlotHandler struct {
	Service scheduling.SlotService
}

// NewSlotHandler constructs a SlotHandler.
func NewSlotHandler(svc scheduling.SlotService) *SlotHandler {
	return &SlotHandler{Service: svc}
}

// QuerySlotsHandler returns classified slots in a mandatory date range,
// optionally filtered to a comma-separated list of court IDs.
func (h *SlotHandler) QuerySlotsHandler(c *gin.Context) {
	from := c.Query("from")
	to := c.Query("to")
	if from == "" || to == "" {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Missing required from/to date range"})
		return
	}

	var courtIDs []string
	if raw := c.Query("courtIds"); raw != "" {
		for _, id := range strings.Split(raw, ",") {
			if id = strings.TrimSpace(id); id != "" {
				courtIDs = append(courtIDs, id)
			}
		}
	}

	slots, err := h.Service.QuerySlots(c.Request.Context(), courtIDs, from, to)
	if err != nil {
		utils.GetLogger().Error("Failed to query slots", zap.Error(err))
		c.JSON(statusForError(err), gin.H{"error": "Failed to query slots", "message": err.Error()})
		return
	}

	c.JSON(http.StatusOK, gin.H{"slots": slots})
}

// CreateSlotsHandler bulk-creates slot candidates. The whole batch is
// validated before anything is persisted.
func (h *SlotHandler) CreateSlotsHandler(c *gin.Context) {
	var body struct {
		Slots []models.Slot `json:"slots" binding:"required"`
	}
	if err := c.ShouldBindJSON(&body); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request payload", "message": err.Error()})
		return
	}

	if err := h.Service.CreateSlots(c.Request.Context(), body.Slots); err != nil {
		c.JSON(statusForError(err), gin.H{"error": "Failed to create slots", "message": err.Error()})
		return
	}

	c.JSON(http.StatusCreated, gin.H{"message": "Slots created", "count": len(body.Slots)})
}

// AvailableSlotsByCourtHandler returns a court's unoccupied slots for the
// next seven days.
func (h *SlotHandler) AvailableSlotsByCourtHandler(c *gin.Context) {
	courtID := c.Param("id")
	if courtID == "" {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Missing court ID in path"})
		return
	}

	slots, err := h.Service.AvailableSlotsByCourt(c.Request.Context(), courtID)
	if err != nil {
		c.JSON(statusForError(err), gin.H{"error": "Failed to fetch availability", "message": err.Error()})
		return
	}

	c.JSON(http.StatusOK, gin.H{"slots": slots})
}
