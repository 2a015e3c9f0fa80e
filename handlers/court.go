package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"courtside/models"
	"courtside/services/court"
	"courtside/utils"
)

// CourtHandler exposes court administration endpoints.
type CourtHandler struct {
	Service court.CourtService
}

// NewCourtHandler constructs a CourtHandler.
func NewCourtHandler(svc court.CourtService) *CourtHandler {
	return &CourtHandler{Service: svc}
}

func (h *CourtHandler) CreateCourtHandler(c *gin.Context) {
	logger := utils.GetLogger()

	var dto models.CourtDTO
	if err := c.ShouldBindJSON(&dto); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request payload", "message": err.Error()})
		return
	}

	created, err := h.Service.CreateCourt(c.Request.Context(), dto)
	if err != nil {
		logger.Error("Failed to create court", zap.Error(err))
		c.JSON(statusForError(err), gin.H{"error": "Failed to create court", "message": err.Error()})
		return
	}

	c.JSON(http.StatusCreated, gin.H{
		"message": "Court created and slot horizon generated",
		"court":   created,
	})
}

func (h *CourtHandler) UpdateCourtHandler(c *gin.Context) {
	courtID := c.Param("id")
	if courtID == "" {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Missing court ID in path"})
		return
	}

	var dto models.CourtDTO
	if err := c.ShouldBindJSON(&dto); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request payload", "message": err.Error()})
		return
	}

	updated, err := h.Service.UpdateCourt(c.Request.Context(), courtID, dto)
	if err != nil {
		c.JSON(statusForError(err), gin.H{"error": "Failed to update court", "message": err.Error()})
		return
	}

	c.JSON(http.StatusOK, gin.H{"message": "Court updated", "court": updated})
}

func (h *CourtHandler) UpdateCourtPricingHandler(c *gin.Context) {
	courtID := c.Param("id")
	if courtID == "" {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Missing court ID in path"})
		return
	}

	var dto models.CourtPricingDTO
	if err := c.ShouldBindJSON(&dto); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request payload", "message": err.Error()})
		return
	}

	if err := h.Service.UpdateCourtPricing(c.Request.Context(), courtID, dto); err != nil {
		c.JSON(statusForError(err), gin.H{"error": "Failed to update court pricing", "message": err.Error()})
		return
	}

	c.JSON(http.StatusOK, gin.H{"message": "Court pricing updated"})
}

func (h *CourtHandler) DeleteCourtHandler(c *gin.Context) {
	courtID := c.Param("id")
	if courtID == "" {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Missing court ID in path"})
		return
	}

	if err := h.Service.DeleteCourt(c.Request.Context(), courtID); err != nil {
		c.JSON(statusForError(err), gin.H{"error": "Failed to delete court", "message": err.Error()})
		return
	}

	c.JSON(http.StatusOK, gin.H{"message": "Court deleted"})
}

func (h *CourtHandler) GetAllCourtsHandler(c *gin.Context) {
	courts, err := h.Service.GetAllCourts(c.Request.Context())
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to fetch courts", "message": err.Error()})
		return
	}
	c.JSON(http.StatusOK, gin.H{"courts": courts})
}

func (h *CourtHandler) GetCourtByIDHandler(c *gin.Context) {
	courtID := c.Param("id")
	crt, err := h.Service.GetCourtByID(c.Request.Context(), courtID)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to fetch court", "message": err.Error()})
		return
	}
	if crt == nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "Court not found"})
		return
	}
	c.JSON(http.StatusOK, gin.H{"court": crt})
}
