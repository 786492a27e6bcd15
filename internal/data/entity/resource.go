package entity

import (
	"garatge-booking/internal/booking"
)

type ResourceKind string

const (
	ResourceKindVehicle   ResourceKind = "vehicle"
	ResourceKindMotorhome ResourceKind = "motorhome"
)

// Resource is a bookable rental unit. Exactly one of the two pricing
// tables is set, depending on Kind: motorhomes price by season, vehicles
// by day-count tier.
type Resource struct {
	Base
	Kind          ResourceKind           `db:"kind"`
	Name          string                 `db:"name"`
	Description   string                 `db:"description"`
	Passengers    int                    `db:"passengers"`
	LengthMeters  float64                `db:"length_meters"`
	SeasonPricing *booking.SeasonPricing `db:"season_pricing"`
	TieredPricing *booking.TieredPricing `db:"tiered_pricing"`
}
