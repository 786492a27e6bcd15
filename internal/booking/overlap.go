package booking

import "time"

// Overlaps reports whether [aStart, aEnd] and [bStart, bEnd] share at
// least one calendar day. Both endpoints are inclusive: a range starting
// the same day another ends is a conflict.
func Overlaps(aStart, aEnd, bStart, bEnd time.Time) bool {
	aStart, aEnd = StartOfDay(aStart), StartOfDay(aEnd)
	bStart, bEnd = StartOfDay(bStart), StartOfDay(bEnd)
	return !aStart.After(bEnd) && !aEnd.Before(bStart)
}

// DateRange is a candidate [Start, End] interval.
type DateRange struct {
	Start time.Time
	End   time.Time
}

// Blocker is any reservation-like record that can block availability.
type Blocker interface {
	Range() (start, end time.Time)
	BlocksAvailability() bool
}

// HasConflict reports whether the candidate range overlaps any blocking
// record. It stops at the first match.
func HasConflict[T Blocker](candidate DateRange, existing []T) bool {
	for _, b := range existing {
		if !b.BlocksAvailability() {
			continue
		}
		start, end := b.Range()
		if Overlaps(candidate.Start, candidate.End, start, end) {
			return true
		}
	}
	return false
}
