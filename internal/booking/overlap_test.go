package booking_test

import (
	"testing"
	"time"

	"garatge-booking/internal/booking"

	"github.com/stretchr/testify/assert"
)

func TestOverlaps_InclusiveEndpoints(t *testing.T) {
	// A new range starting the day an existing one ends still conflicts.
	assert.True(t, booking.Overlaps(
		day(time.May, 5), day(time.May, 10),
		day(time.May, 10), day(time.May, 15),
	))
	assert.True(t, booking.Overlaps(
		day(time.May, 10), day(time.May, 15),
		day(time.May, 5), day(time.May, 10),
	))
}

func TestOverlaps_DisjointRanges(t *testing.T) {
	assert.False(t, booking.Overlaps(
		day(time.May, 1), day(time.May, 4),
		day(time.May, 5), day(time.May, 10),
	))
	assert.False(t, booking.Overlaps(
		day(time.May, 11), day(time.May, 15),
		day(time.May, 5), day(time.May, 10),
	))
}

func TestOverlaps_Containment(t *testing.T) {
	assert.True(t, booking.Overlaps(
		day(time.May, 6), day(time.May, 8),
		day(time.May, 1), day(time.May, 31),
	))
	assert.True(t, booking.Overlaps(
		day(time.May, 1), day(time.May, 31),
		day(time.May, 6), day(time.May, 8),
	))
}

func TestOverlaps_IgnoresTimeOfDay(t *testing.T) {
	late := time.Date(2026, time.May, 10, 23, 59, 0, 0, time.UTC)
	early := time.Date(2026, time.May, 10, 0, 1, 0, 0, time.UTC)

	assert.True(t, booking.Overlaps(late, late, early, early))
}

type stubBlocker struct {
	start, end time.Time
	blocks     bool
}

func (s stubBlocker) Range() (time.Time, time.Time) { return s.start, s.end }
func (s stubBlocker) BlocksAvailability() bool      { return s.blocks }

func TestHasConflict_SkipsNonBlockingRecords(t *testing.T) {
	candidate := booking.DateRange{Start: day(time.May, 5), End: day(time.May, 10)}
	existing := []stubBlocker{
		{start: day(time.May, 8), end: day(time.May, 12), blocks: false}, // cancelled
	}

	assert.False(t, booking.HasConflict(candidate, existing))
}

func TestHasConflict_FindsBlockingOverlap(t *testing.T) {
	candidate := booking.DateRange{Start: day(time.May, 5), End: day(time.May, 10)}
	existing := []stubBlocker{
		{start: day(time.April, 1), end: day(time.April, 3), blocks: true},
		{start: day(time.May, 10), end: day(time.May, 12), blocks: true},
	}

	assert.True(t, booking.HasConflict(candidate, existing))
}

func TestHasConflict_EmptyExisting(t *testing.T) {
	candidate := booking.DateRange{Start: day(time.May, 5), End: day(time.May, 10)}

	assert.False(t, booking.HasConflict(candidate, []stubBlocker(nil)))
}
