package wire

import (
	"garatge-booking/internal/adaptor"

	"github.com/go-chi/chi/v5"
)

// wireBooking configures rental resource and reservation routes
func wireBooking(r chi.Router, handler *adaptor.BookingHandler) {
	// Public catalogue and availability
	r.Get("/api/resources", handler.ListResources)           // GET /api/resources?kind=vehicle
	r.Get("/api/availability", handler.GetAvailability)      // GET /api/availability?resource_id={uuid}
	r.Post("/api/bookings", handler.CreateReservation)       // POST /api/bookings
	r.Get("/api/bookings/cancel", handler.CancelReservation) // GET /api/bookings/cancel?token={hex}
}
