package booking

import (
	"fmt"
	"time"
)

// SeasonPricing holds the per-day motorhome rates keyed by season tier.
type SeasonPricing struct {
	LowSeason     float64 `json:"low_season"`
	HighSeason    float64 `json:"high_season"`
	SpecialSeason float64 `json:"special_season"`
}

// Rate returns the day rate for a season tier.
func (p SeasonPricing) Rate(s Season) float64 {
	switch s {
	case SeasonHigh:
		return p.HighSeason
	case SeasonSpecial:
		return p.SpecialSeason
	default:
		return p.LowSeason
	}
}

// TieredPricing holds the day-count based vehicle rates. Exactly 7 days
// costs the flat Week rate, not 7x a day rate.
type TieredPricing struct {
	Day1to6   float64 `json:"day_1_6"`
	Week      float64 `json:"week"`
	Day8to14  float64 `json:"day_8_14"`
	Day15Plus float64 `json:"day_15_plus"`
}

// MinStayDays is the minimum motorhome rental length.
const MinStayDays = 3

// ErrMinStay is returned by PriceMotorhome for ranges shorter than
// MinStayDays. It is a hard business rule, not a warning.
var ErrMinStay = fmt.Errorf("minimum stay is %d days", MinStayDays)

// PriceMotorhome sums the seasonal day rate over every day in [from, to]
// inclusive. A nil pricing table or a malformed range yields the neutral
// (0, 0, nil) state; a range shorter than the minimum stay yields
// ErrMinStay with the day count but no total.
func PriceMotorhome(from, to time.Time, pricing *SeasonPricing) (total float64, days int, err error) {
	if pricing == nil || StartOfDay(to).Before(StartOfDay(from)) {
		return 0, 0, nil
	}

	interval := DatesBetween(from, to)
	days = len(interval)

	if days < MinStayDays {
		return 0, days, ErrMinStay
	}

	for _, day := range interval {
		total += pricing.Rate(ClassifySeason(day))
	}
	return total, days, nil
}

// PriceVehicle prices a car rental by inclusive day count. Returns 0 for
// a malformed range or a nil pricing table.
func PriceVehicle(from, to time.Time, pricing *TieredPricing) float64 {
	if pricing == nil {
		return 0
	}

	days := DaysInclusive(from, to)
	switch {
	case days >= 15:
		return float64(days) * pricing.Day15Plus
	case days >= 8:
		return float64(days) * pricing.Day8to14
	case days == 7:
		return pricing.Week
	case days >= 1:
		return float64(days) * pricing.Day1to6
	default:
		return 0
	}
}
