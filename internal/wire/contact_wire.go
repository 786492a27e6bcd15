package wire

import (
	"garatge-booking/internal/adaptor"

	"github.com/go-chi/chi/v5"
)

// wireContact configures the contact form route
func wireContact(r chi.Router, handler *adaptor.ContactHandler) {
	r.Post("/api/contact", handler.Send)
}
