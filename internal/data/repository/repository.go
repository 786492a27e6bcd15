package repository

import (
	"garatge-booking/pkg/database"

	"go.uber.org/zap"
)

type Repository struct {
	Resource    ResourceRepository
	Reservation ReservationRepository
	Appointment AppointmentRepository
}

func NewRepository(db database.PgxIface, log *zap.Logger) *Repository {
	return &Repository{
		Resource:    NewResourceRepository(db, log),
		Reservation: NewReservationRepository(db, log),
		Appointment: NewAppointmentRepository(db, log),
	}
}
