package booking

import "time"

// DateLayout is the wire format for calendar dates.
const DateLayout = "2006-01-02"

// StartOfDay truncates t to midnight in its own location.
func StartOfDay(t time.Time) time.Time {
	return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, t.Location())
}

// DaysInclusive counts the days in [from, to], both endpoints included.
// Returns 0 for a malformed range.
func DaysInclusive(from, to time.Time) int {
	from = StartOfDay(from)
	to = StartOfDay(to)
	if to.Before(from) {
		return 0
	}
	return int(to.Sub(from).Hours()/24) + 1
}

// DatesBetween returns every calendar day in [from, to] inclusive.
func DatesBetween(from, to time.Time) []time.Time {
	from = StartOfDay(from)
	to = StartOfDay(to)
	if to.Before(from) {
		return nil
	}

	var days []time.Time
	for d := from; !d.After(to); d = d.AddDate(0, 0, 1) {
		days = append(days, d)
	}
	return days
}

// ParseDate parses a calendar date in DateLayout form (UTC midnight).
func ParseDate(s string) (time.Time, error) {
	return time.Parse(DateLayout, s)
}
