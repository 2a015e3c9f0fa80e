package scheduling

import (
	"time"

	"courtside/models"
)

// DefaultSlotMinutes is the standard slot granularity.
const DefaultSlotMinutes = 60

// ExpandSlots expands a court's operating window and day-set into the
// ordered sequence of slot candidates for every date in [from, to).
// Candidates are emitted ascending by date then start time, so repeated
// invocation with the same inputs yields an identical sequence. The last
// candidate of a day is clamped to the closing time when the window length
// is not an exact multiple of the slot length.
//
// No persistence and no existence checks happen here; the caller owns
// deduplication against already-stored slots.
func ExpandSlots(courtID string, window Window, days DaySet, from, to time.Time, slotMinutes int) []models.Slot {
	if slotMinutes <= 0 {
		slotMinutes = DefaultSlotMinutes
	}

	var slots []models.Slot
	for date := from; date.Before(to); date = date.AddDate(0, 0, 1) {
		if !days.Contains(date.Weekday()) {
			continue
		}
		dateStr := date.Format("2006-01-02")
		for start := window.Open; start < window.Close; {
			end := start + slotMinutes
			if end > window.Close {
				end = window.Close
			}
			slots = append(slots, models.Slot{
				CourtID:     courtID,
				Date:        dateStr,
				Start:       start,
				End:         end,
				IsAvailable: true,
			})
			start = end
		}
	}
	return slots
}
