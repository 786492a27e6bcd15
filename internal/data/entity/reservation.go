package entity

import (
	"time"

	"github.com/google/uuid"
)

type ReservationStatus string

const (
	ReservationStatusPending   ReservationStatus = "pending"
	ReservationStatusConfirmed ReservationStatus = "confirmed"
	ReservationStatusCancelled ReservationStatus = "cancelled"
)

// Blocks reports whether a reservation in this status holds its dates.
func (s ReservationStatus) Blocks() bool {
	return s == ReservationStatusPending || s == ReservationStatusConfirmed
}

// Reservation is a rental booking for a vehicle or motorhome resource.
// StartDate and EndDate are inclusive calendar days.
type Reservation struct {
	Base
	ResourceID      uuid.UUID         `db:"resource_id"`
	ResourceName    string            `db:"resource_name"`
	Kind            ResourceKind      `db:"kind"`
	CustomerName    string            `db:"customer_name"`
	CustomerEmail   string            `db:"customer_email"`
	CustomerPhone   string            `db:"customer_phone"`
	StartDate       time.Time         `db:"start_date"`
	EndDate         time.Time         `db:"end_date"`
	Days            int               `db:"days"`
	TotalPrice      float64           `db:"total_price"`
	Status          ReservationStatus `db:"status"`
	CancelToken     string            `db:"cancel_token"`
	GoogleEventID   string            `db:"google_event_id"`
	GoogleEventLink string            `db:"google_event_link"`
}

// Range returns the inclusive booked interval.
func (r *Reservation) Range() (time.Time, time.Time) {
	return r.StartDate, r.EndDate
}

// BlocksAvailability reports whether this reservation blocks the dates.
func (r *Reservation) BlocksAvailability() bool {
	return r.Status.Blocks()
}
