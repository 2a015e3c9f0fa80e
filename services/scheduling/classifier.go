package scheduling

import (
	"time"

	"courtside/models"
)

// Derived slot status labels. Always recomputed at query time from the
// occupancy flag and the court's current configuration, never stored.
const (
	StatusAvailable   = "AVAILABLE"
	StatusBooked      = "BOOKED"
	StatusMaintenance = "MAINTENANCE"
	StatusClosed      = "CLOSED"
	StatusUnknown     = "UNKNOWN"
)

// ClassifySlot resolves a slot's current status label. The rule order is
// business policy, first match wins:
//
//	1. occupied slot -> BOOKED, regardless of court state
//	2. court under maintenance -> MAINTENANCE
//	3. slot's weekday outside the court's current day-set -> CLOSED
//	4. slot interval not inside the court's current window -> CLOSED
//	5. otherwise AVAILABLE
//
// A nil court, or a court whose calendar configuration no longer parses,
// yields UNKNOWN before any rule runs; an orphaned slot must never be
// reported as available. Rules 3 and 4 check the configuration as it is
// now, so changed operating hours reclassify existing slots immediately.
func ClassifySlot(slot models.Slot, court *models.Court) string {
	if court == nil {
		return StatusUnknown
	}
	date, err := time.Parse("2006-01-02", slot.Date)
	if err != nil {
		return StatusUnknown
	}
	days, err := ParseOperatingDays(court.OperatingDays)
	if err != nil {
		return StatusUnknown
	}
	window, err := ParseOperatingWindow(court.OpeningTime, court.ClosingTime)
	if err != nil {
		return StatusUnknown
	}

	if !slot.IsAvailable {
		return StatusBooked
	}
	if court.Status == models.CourtStatusMaintenance {
		return StatusMaintenance
	}
	if !days.Contains(date.Weekday()) {
		return StatusClosed
	}
	if slot.Start < window.Open || slot.End > window.Close {
		return StatusClosed
	}
	return StatusAvailable
}
