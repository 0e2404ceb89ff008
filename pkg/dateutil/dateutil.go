package dateutil

import (
	"sort"
	"time"
)

// Layout is the wire format for schedule dates. Dates are always handled in
// local time; converting through UTC can shift the calendar day.
const Layout = "2006-01-02"

// StartOfDay truncates t to local midnight.
func StartOfDay(t time.Time) time.Time {
	y, m, d := t.Date()
	return time.Date(y, m, d, 0, 0, 0, 0, t.Location())
}

// SameDay reports whether a and b fall on the same calendar day,
// ignoring time-of-day.
func SameDay(a, b time.Time) bool {
	ay, am, ad := a.Date()
	by, bm, bd := b.Date()
	return ay == by && am == bm && ad == bd
}

// Format renders t as YYYY-MM-DD.
func Format(t time.Time) string {
	return t.Format(Layout)
}

// Parse reads a YYYY-MM-DD string in local time.
func Parse(s string) (time.Time, error) {
	return time.ParseInLocation(Layout, s, time.Local)
}

// ToggleDay removes date from days if a same-day entry is present, otherwise
// inserts it. The result is sorted ascending and deduplicated by calendar day.
func ToggleDay(days []time.Time, date time.Time) []time.Time {
	out := make([]time.Time, 0, len(days)+1)
	removed := false
	for _, d := range days {
		if SameDay(d, date) {
			removed = true
			continue
		}
		out = append(out, d)
	}
	if !removed {
		out = append(out, StartOfDay(date))
	}
	return SortUnique(out)
}

// SortUnique returns days sorted ascending with same-day duplicates collapsed.
func SortUnique(days []time.Time) []time.Time {
	out := make([]time.Time, 0, len(days))
	for _, d := range days {
		out = append(out, StartOfDay(d))
	}
	sort.Slice(out, func(i, j int) bool { return out[i].Before(out[j]) })
	dedup := out[:0]
	for _, d := range out {
		if len(dedup) > 0 && SameDay(dedup[len(dedup)-1], d) {
			continue
		}
		dedup = append(dedup, d)
	}
	return dedup
}

// DaysBetween expands the closed interval [start, end] into one entry per
// calendar day. Reversed bounds are tolerated: the interval is normalized
// before expansion so both boundary days are always included.
func DaysBetween(start, end time.Time) []time.Time {
	lo, hi := StartOfDay(start), StartOfDay(end)
	if hi.Before(lo) {
		lo, hi = hi, lo
	}
	var out []time.Time
	for d := lo; !d.After(hi); d = d.AddDate(0, 0, 1) {
		out = append(out, d)
	}
	return out
}

// CountDays is the inclusive day count of [start, end], order-tolerant.
func CountDays(start, end time.Time) int {
	return len(DaysBetween(start, end))
}
