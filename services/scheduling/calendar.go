package scheduling

import (
	"strings"
	"time"
)

// Window is a daily operating window in minutes from midnight.
// Invariant: Open < Close.
type Window struct {
	Open  int
	Close int
}

// DaySet is the set of weekdays a court operates on.
type DaySet map[time.Weekday]bool

// Contains reports whether the set includes the given weekday.
func (d DaySet) Contains(day time.Weekday) bool {
	return d[day]
}

var dayNames = map[string]time.Weekday{
	"sunday":    time.Sunday,
	"sun":       time.Sunday,
	"monday":    time.Monday,
	"mon":       time.Monday,
	"tuesday":   time.Tuesday,
	"tue":       time.Tuesday,
	"wednesday": time.Wednesday,
	"wed":       time.Wednesday,
	"thursday":  time.Thursday,
	"thu":       time.Thursday,
	"friday":    time.Friday,
	"fri":       time.Friday,
	"saturday":  time.Saturday,
	"sat":       time.Saturday,
}

// AllDays returns a set containing every weekday.
func AllDays() DaySet {
	set := make(DaySet, 7)
	for d := time.Sunday; d <= time.Saturday; d++ {
		set[d] = true
	}
	return set
}

// ParseOperatingDays turns a comma-separated day list into a DaySet.
// A blank string means the court has not restricted its days and maps to
// the full week. Any token that is not a weekday name (full or three-letter,
// case-insensitive) is a configuration error, never silently dropped.
func ParseOperatingDays(raw string) (DaySet, error) {
	if strings.TrimSpace(raw) == "" {
		return AllDays(), nil
	}

	set := make(DaySet)
	for _, token := range strings.Split(raw, ",") {
		name := strings.ToLower(strings.TrimSpace(token))
		day, ok := dayNames[name]
		if !ok {
			return nil, NewConfigurationError("invalid day in operating days: %q", strings.TrimSpace(token))
		}
		set[day] = true
	}
	return set, nil
}

// ParseOperatingWindow parses "HH:MM" opening and closing times into a
// Window. Unparsable input or opening >= closing is a configuration error;
// a reversed window is rejected, never reordered.
func ParseOperatingWindow(openingRaw, closingRaw string) (Window, error) {
	opening, err := parseClock(openingRaw)
	if err != nil {
		return Window{}, err
	}
	closing, err := parseClock(closingRaw)
	if err != nil {
		return Window{}, err
	}
	if opening >= closing {
		return Window{}, NewConfigurationError("opening time %s must be before closing time %s", openingRaw, closingRaw)
	}
	return Window{Open: opening, Close: closing}, nil
}

// parseClock converts an "HH:MM" time of day to minutes from midnight.
func parseClock(raw string) (int, error) {
	t, err := time.Parse("15:04", strings.TrimSpace(raw))
	if err != nil {
		return 0, NewConfigurationError("invalid time format: %q", raw)
	}
	return t.Hour()*60 + t.Minute(), nil
}
