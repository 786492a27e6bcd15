package booking

import "time"

// Season is the pricing tier a calendar day falls into.
type Season int

const (
	SeasonLow Season = iota
	SeasonHigh
	SeasonSpecial
)

func (s Season) String() string {
	switch s {
	case SeasonHigh:
		return "high"
	case SeasonSpecial:
		return "special"
	default:
		return "low"
	}
}

// ClassifySeason maps a calendar date to its season tier. The ranges are
// fixed calendar days with no year dependency.
func ClassifySeason(date time.Time) Season {
	month := int(date.Month())
	day := date.Day()

	// All of August
	if month == 8 {
		return SeasonSpecial
	}

	switch {
	case month == 6 && day >= 23: // Sant Joan onwards
		return SeasonHigh
	case month == 7: // July
		return SeasonHigh
	case month == 9 && day <= 11: // until the Diada
		return SeasonHigh
	case month == 12 && day >= 20: // Christmas
		return SeasonHigh
	case month == 1 && day <= 7: // Reis
		return SeasonHigh
	case month == 3, month == 4: // Easter window
		return SeasonHigh
	}

	return SeasonLow
}
