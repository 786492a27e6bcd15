package booking_test

import (
	"testing"
	"time"

	"garatge-booking/internal/booking"

	"github.com/stretchr/testify/assert"
)

func day(month time.Month, d int) time.Time {
	return time.Date(2026, month, d, 0, 0, 0, 0, time.UTC)
}

func TestClassifySeason_AugustIsAlwaysSpecial(t *testing.T) {
	for d := 1; d <= 31; d++ {
		assert.Equal(t, booking.SeasonSpecial, booking.ClassifySeason(day(time.August, d)), "August %d", d)
	}
}

func TestClassifySeason_HighSeasonWindows(t *testing.T) {
	highDays := []time.Time{
		day(time.June, 23),
		day(time.June, 30),
		day(time.July, 1),
		day(time.July, 31),
		day(time.September, 1),
		day(time.September, 11),
		day(time.December, 20),
		day(time.December, 31),
		day(time.January, 1),
		day(time.January, 7),
		day(time.March, 1),
		day(time.March, 31),
		day(time.April, 15),
		day(time.April, 30),
	}
	for _, d := range highDays {
		assert.Equal(t, booking.SeasonHigh, booking.ClassifySeason(d), d.Format("2006-01-02"))
	}
}

func TestClassifySeason_BoundaryDaysFallToLow(t *testing.T) {
	lowDays := []time.Time{
		day(time.June, 22),      // day before Sant Joan window
		day(time.September, 12), // day after the Diada
		day(time.December, 19),
		day(time.January, 8),
		day(time.February, 15),
		day(time.May, 1),
		day(time.May, 31),
		day(time.October, 10),
		day(time.November, 20),
	}
	for _, d := range lowDays {
		assert.Equal(t, booking.SeasonLow, booking.ClassifySeason(d), d.Format("2006-01-02"))
	}
}

func TestSeasonString(t *testing.T) {
	assert.Equal(t, "low", booking.SeasonLow.String())
	assert.Equal(t, "high", booking.SeasonHigh.String())
	assert.Equal(t, "special", booking.SeasonSpecial.String())
}
