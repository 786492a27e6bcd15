package response

import (
	"garatge-booking/internal/booking"
	"garatge-booking/internal/data/entity"
)

type ResourceResponse struct {
	ID            string                 `json:"id"`
	Kind          string                 `json:"kind"`
	Name          string                 `json:"name"`
	Description   string                 `json:"description"`
	Passengers    int                    `json:"passengers,omitempty"`
	LengthMeters  float64                `json:"length_meters,omitempty"`
	SeasonPricing *booking.SeasonPricing `json:"season_pricing,omitempty"`
	TieredPricing *booking.TieredPricing `json:"tiered_pricing,omitempty"`
}

func ResourceToResponse(res *entity.Resource) ResourceResponse {
	return ResourceResponse{
		ID:            res.ID.String(),
		Kind:          string(res.Kind),
		Name:          res.Name,
		Description:   res.Description,
		Passengers:    res.Passengers,
		LengthMeters:  res.LengthMeters,
		SeasonPricing: res.SeasonPricing,
		TieredPricing: res.TieredPricing,
	}
}
