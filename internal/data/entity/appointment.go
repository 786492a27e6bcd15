package entity

import "time"

// Appointment is a workshop visit booked on an hourly slot.
type Appointment struct {
	Base
	Name            string            `db:"name"`
	Email           string            `db:"email"`
	Phone           string            `db:"phone"`
	VehicleBrand    string            `db:"vehicle_brand"`
	VehicleModel    string            `db:"vehicle_model"`
	Service         string            `db:"service"`
	Date            time.Time         `db:"date"`
	Time            string            `db:"time"` // HH:MM slot
	Message         string            `db:"message"`
	Status          ReservationStatus `db:"status"`
	CancelToken     string            `db:"cancel_token"`
	GoogleEventID   string            `db:"google_event_id"`
	GoogleEventLink string            `db:"google_event_link"`
	AttachmentURLs  []string          `db:"attachment_urls"`
}
