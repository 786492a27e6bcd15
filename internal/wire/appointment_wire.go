package wire

import (
	"garatge-booking/internal/adaptor"

	"github.com/go-chi/chi/v5"
)

// wireAppointment configures workshop appointment routes
func wireAppointment(r chi.Router, handler *adaptor.AppointmentHandler) {
	r.Get("/api/appointments/slots", handler.AvailableSlots) // GET /api/appointments/slots?date=2026-09-15
	r.Post("/api/appointments", handler.CreateAppointment)   // POST /api/appointments (multipart)
	r.Get("/api/appointments/cancel", handler.CancelAppointment)
}
