package response

import "time"

type ReservationResponse struct {
	ID           string    `json:"id"`
	ResourceID   string    `json:"resource_id"`
	ResourceName string    `json:"resource_name"`
	Kind         string    `json:"kind"`
	StartDate    string    `json:"start_date"`
	EndDate      string    `json:"end_date"`
	Days         int       `json:"days"`
	TotalPrice   float64   `json:"total_price"`
	Status       string    `json:"status"`
	CalendarLink string    `json:"calendar_link,omitempty"`
	Warnings     []string  `json:"warnings,omitempty"`
	CreatedAt    time.Time `json:"created_at"`
}

type AvailabilityResponse struct {
	ResourceID  string   `json:"resource_id"`
	BookedDates []string `json:"booked_dates"`
}
