package models

// Slot is a fixed time interval on a specific date for a specific court,
// the unit of booking. IsAvailable is the occupancy flag: false means a
// confirmed booking holds the slot. Only the booking subsystem flips it;
// every richer status label is recomputed at query time.
type Slot struct {
	ID          string `bson:"id" json:"id"`
	CourtID     string `bson:"courtId" json:"courtId"`
	Date        string `bson:"date" json:"date"`   // e.g., "2025-09-14"
	Start       int    `bson:"start" json:"start"` // minutes from midnight (e.g., 540 for 9:00 AM)
	End         int    `bson:"end" json:"end"`     // minutes from midnight
	IsAvailable bool   `bson:"isAvailable" json:"isAvailable"`
}
