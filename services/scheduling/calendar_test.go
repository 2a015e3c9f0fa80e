package scheduling

import (
	"errors"
	"testing"
	"time"
)

func TestParseOperatingDays(t *testing.T) {
	t.Run("blank input means every day", func(t *testing.T) {
		for _, raw := range []string{"", "   "} {
			days, err := ParseOperatingDays(raw)
			if err != nil {
				t.Fatalf("ParseOperatingDays(%q) returned error: %v", raw, err)
			}
			if len(days) != 7 {
				t.Fatalf("ParseOperatingDays(%q) = %d days, want 7", raw, len(days))
			}
		}
	})

	t.Run("mixed case and abbreviations", func(t *testing.T) {
		days, err := ParseOperatingDays("Mon, FRI")
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if len(days) != 2 {
			t.Fatalf("got %d days, want 2", len(days))
		}
		if !days.Contains(time.Monday) || !days.Contains(time.Friday) {
			t.Fatalf("expected Monday and Friday, got %v", days)
		}
	})

	t.Run("full names", func(t *testing.T) {
		days, err := ParseOperatingDays("MONDAY,tuesday,Wednesday")
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		for _, d := range []time.Weekday{time.Monday, time.Tuesday, time.Wednesday} {
			if !days.Contains(d) {
				t.Errorf("expected %v in set", d)
			}
		}
		if days.Contains(time.Thursday) {
			t.Error("Thursday should not be in set")
		}
	})

	t.Run("duplicates collapse", func(t *testing.T) {
		days, err := ParseOperatingDays("Mon,Monday,MON")
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if len(days) != 1 {
			t.Fatalf("got %d days, want 1", len(days))
		}
	})

	t.Run("unknown token fails fast", func(t *testing.T) {
		_, err := ParseOperatingDays("Funday")
		if err == nil {
			t.Fatal("expected configuration error for unknown day name")
		}
		var confErr *ConfigurationError
		if !errors.As(err, &confErr) {
			t.Fatalf("expected ConfigurationError, got %T", err)
		}
	})

	t.Run("valid day plus invalid day still fails", func(t *testing.T) {
		if _, err := ParseOperatingDays("Mon,Funday"); err == nil {
			t.Fatal("expected error; invalid tokens must not be silently dropped")
		}
	})
}

func TestParseOperatingWindow(t *testing.T) {
	t.Run("valid window", func(t *testing.T) {
		window, err := ParseOperatingWindow("09:00", "21:00")
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if window.Open != 9*60 || window.Close != 21*60 {
			t.Fatalf("got window %+v, want open=540 close=1260", window)
		}
	})

	tests := []struct {
		name    string
		opening string
		closing string
	}{
		{"unparsable opening", "nine", "21:00"},
		{"unparsable closing", "09:00", "late"},
		{"opening after closing", "21:00", "09:00"},
		{"opening equals closing", "09:00", "09:00"},
		{"empty opening", "", "21:00"},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			_, err := ParseOperatingWindow(tc.opening, tc.closing)
			if err == nil {
				t.Fatalf("ParseOperatingWindow(%q, %q) succeeded, want configuration error", tc.opening, tc.closing)
			}
			var confErr *ConfigurationError
			if !errors.As(err, &confErr) {
				t.Fatalf("expected ConfigurationError, got %T", err)
			}
		})
	}
}
