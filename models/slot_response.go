package models

// SlotResponse is the query-time view of a slot: the persisted fields plus
// court display details and the derived status label.
type SlotResponse struct {
	ID            string `json:"id"`
	CourtID       string `json:"courtId"`
	Date          string `json:"date"`
	DayOfWeek     string `json:"dayOfWeek"`
	Start         int    `json:"start"`
	End           int    `json:"end"`
	CourtName     string `json:"courtName,omitempty"`
	CourtLocation string `json:"courtLocation,omitempty"`
	Status        string `json:"status"`
}
