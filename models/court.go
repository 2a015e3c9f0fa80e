package models

import "time"

// Court operating statuses set by court administration.
const (
	CourtStatusNormal      = "NORMAL"
	CourtStatusMaintenance = "MAINTENANCE"
)

// Court represents a bookable court and its operating configuration.
// Operating hours and days are stored raw as entered by the admin and
// parsed on demand; the scheduling core treats them as read-only.
type Court struct {
	ID            string `bson:"id" json:"id"`
	Name          string `bson:"name" json:"name"`
	Location      string `bson:"location" json:"location"`
	Status        string `bson:"status" json:"status"`
	OpeningTime   string `bson:"openingTime" json:"openingTime"` // e.g., "09:00"
	ClosingTime   string `bson:"closingTime" json:"closingTime"` // e.g., "21:00"
	OperatingDays string `bson:"operatingDays,omitempty" json:"operatingDays,omitempty"` // comma-separated day names; blank means every day

	PeakHourlyPrice    float64 `bson:"peakHourlyPrice,omitempty" json:"peakHourlyPrice,omitempty"`
	OffPeakHourlyPrice float64 `bson:"offPeakHourlyPrice,omitempty" json:"offPeakHourlyPrice,omitempty"`
	DailyPrice         float64 `bson:"dailyPrice,omitempty" json:"dailyPrice,omitempty"`
	PeakStartTime      string  `bson:"peakStartTime,omitempty" json:"peakStartTime,omitempty"`
	PeakEndTime        string  `bson:"peakEndTime,omitempty" json:"peakEndTime,omitempty"`

	Archived   bool       `bson:"archived" json:"archived"`
	ArchivedAt *time.Time `bson:"archivedAt,omitempty" json:"archivedAt,omitempty"`
}

// CourtDTO is the payload for creating or updating a court.
type CourtDTO struct {
	Name               string  `json:"name" binding:"required"`
	Location           string  `json:"location" binding:"required"`
	Status             string  `json:"status"`
	OpeningTime        string  `json:"openingTime" binding:"required"`
	ClosingTime        string  `json:"closingTime" binding:"required"`
	OperatingDays      string  `json:"operatingDays"`
	PeakHourlyPrice    float64 `json:"peakHourlyPrice"`
	OffPeakHourlyPrice float64 `json:"offPeakHourlyPrice"`
	DailyPrice         float64 `json:"dailyPrice"`
	PeakStartTime      string  `json:"peakStartTime"`
	PeakEndTime        string  `json:"peakEndTime"`
}

// CourtPricingDTO is the payload for updating pricing fields only.
type CourtPricingDTO struct {
	PeakHourlyPrice    float64 `json:"peakHourlyPrice"`
	OffPeakHourlyPrice float64 `json:"offPeakHourlyPrice"`
	DailyPrice         float64 `json:"dailyPrice"`
	PeakStartTime      string  `json:"peakStartTime"`
	PeakEndTime        string  `json:"peakEndTime"`
}
