package dateutil

import (
	"testing"
	"time"
)

func day(y int, m time.Month, d int) time.Time {
	return time.Date(y, m, d, 0, 0, 0, 0, time.Local)
}

func TestSameDayIgnoresTimeOfDay(t *testing.T) {
	morning := time.Date(2026, 3, 10, 8, 15, 0, 0, time.Local)
	night := time.Date(2026, 3, 10, 23, 59, 59, 0, time.Local)
	if !SameDay(morning, night) {
		t.Fatalf("expected %v and %v to be the same day", morning, night)
	}
	if SameDay(morning, night.AddDate(0, 0, 1)) {
		t.Fatalf("expected different days to differ")
	}
}

func TestToggleDayAddsAndRemoves(t *testing.T) {
	days := ToggleDay(nil, day(2026, 3, 10))
	if len(days) != 1 {
		t.Fatalf("expected 1 day after first toggle, got %d", len(days))
	}

	// Toggling a same-day timestamp with a different time removes the entry.
	days = ToggleDay(days, time.Date(2026, 3, 10, 17, 30, 0, 0, time.Local))
	if len(days) != 0 {
		t.Fatalf("expected empty set after second toggle, got %v", days)
	}
}

func TestToggleDayIsItsOwnInverse(t *testing.T) {
	base := []time.Time{day(2026, 3, 1), day(2026, 3, 5), day(2026, 3, 9)}
	toggled := ToggleDay(ToggleDay(base, day(2026, 3, 5)), day(2026, 3, 5))
	if len(toggled) != len(base) {
		t.Fatalf("expected %d days, got %d", len(base), len(toggled))
	}
	for i := range base {
		if !SameDay(toggled[i], base[i]) {
			t.Fatalf("day %d: expected %v, got %v", i, base[i], toggled[i])
		}
	}
}

func TestToggleDayKeepsSetSorted(t *testing.T) {
	days := ToggleDay(nil, day(2026, 3, 20))
	days = ToggleDay(days, day(2026, 3, 5))
	days = ToggleDay(days, day(2026, 3, 12))
	for i := 1; i < len(days); i++ {
		if days[i].Before(days[i-1]) {
			t.Fatalf("set not sorted: %v", days)
		}
	}
}

func TestDaysBetweenInclusive(t *testing.T) {
	days := DaysBetween(day(2026, 3, 10), day(2026, 3, 13))
	if len(days) != 4 {
		t.Fatalf("expected 4 days, got %d", len(days))
	}
	if !SameDay(days[0], day(2026, 3, 10)) || !SameDay(days[3], day(2026, 3, 13)) {
		t.Fatalf("boundary days missing: %v", days)
	}
}

func TestDaysBetweenToleratesReversedBounds(t *testing.T) {
	days := DaysBetween(day(2026, 3, 13), day(2026, 3, 10))
	if len(days) != 4 {
		t.Fatalf("expected 4 days for reversed bounds, got %d", len(days))
	}
	if !SameDay(days[0], day(2026, 3, 10)) || !SameDay(days[len(days)-1], day(2026, 3, 13)) {
		t.Fatalf("boundary days missing for reversed bounds: %v", days)
	}
}

func TestCountDaysSingleDay(t *testing.T) {
	if got := CountDays(day(2026, 3, 10), day(2026, 3, 10)); got != 1 {
		t.Fatalf("expected 1, got %d", got)
	}
}

func TestFormatAndParseRoundTrip(t *testing.T) {
	parsed, err := Parse("2026-03-10")
	if err != nil {
		t.Fatalf("Parse error: %v", err)
	}
	if got := Format(parsed); got != "2026-03-10" {
		t.Fatalf("expected 2026-03-10, got %s", got)
	}
	if parsed.Location() != time.Local {
		t.Fatalf("expected local time, got %v", parsed.Location())
	}
}
