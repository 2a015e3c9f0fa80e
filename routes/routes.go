package routes

import (
	"net/http"
	"time"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"

	"courtside/handlers"
)

// RegisterCourtRoutes registers court administration endpoints.
func RegisterCourtRoutes(r *gin.Engine, h *handlers.CourtHandler) {
	api := r.Group("/api/courts")
	{
		api.POST("", h.CreateCourtHandler)
		api.GET("", h.GetAllCourtsHandler)
		api.GET("/:id", h.GetCourtByIDHandler)
		api.PUT("/:id", h.UpdateCourtHandler)
		api.PUT("/:id/pricing", h.UpdateCourtPricingHandler)
		api.DELETE("/:id", h.DeleteCourtHandler)
	}
}

// RegisterSlotRoutes registers slot query and creation endpoints.
func RegisterSlotRoutes(r *gin.Engine, h *handlers.SlotHandler) {
	api := r.Group("/api/slots")
	{
		api.GET("", h.QuerySlotsHandler)
		api.POST("", h.CreateSlotsHandler)
	}
	r.GET("/api/courts/:id/availability", h.AvailableSlotsByCourtHandler)
}

// RegisterHealthRoute registers a health-check endpoint.
func RegisterHealthRoute(r *gin.Engine) {
	r.GET("/health", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"status": "ok", "message": "Hi, I'm Courtside"})
	})
}

// CORSMiddleware returns the CORS policy for the API.
func CORSMiddleware() gin.HandlerFunc {
	return cors.New(cors.Config{
		AllowOrigins:     []string{"*"},
		AllowMethods:     []string{"GET", "POST", "PUT", "PATCH", "DELETE", "OPTIONS"},
		AllowHeaders:     []string{"Origin", "Content-Type", "Authorization"},
		ExposeHeaders:    []string{"Content-Length"},
		AllowCredentials: false,
		MaxAge:           12 * time.Hour,
	})
}
