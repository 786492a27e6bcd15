package adaptor

import (
	"encoding/json"
	"errors"
	"net/http"

	"garatge-booking/internal/dto/request"
	"garatge-booking/internal/usecase"
	"garatge-booking/pkg/utils"

	"go.uber.org/zap"
)

type BookingHandler struct {
	service usecase.BookingService
	config  *utils.Config
	log     *zap.Logger
}

func NewBookingHandler(service usecase.BookingService, config *utils.Config, log *zap.Logger) *BookingHandler {
	return &BookingHandler{
		service: service,
		config:  config,
		log:     log.With(zap.String("handler", "booking")),
	}
}

// ListResources handles GET /api/resources?kind=vehicle|motorhome
func (h *BookingHandler) ListResources(w http.ResponseWriter, r *http.Request) {
	kind := r.URL.Query().Get("kind")
	if kind == "" {
		utils.ResponseBadRequest(w, "kind query parameter is required", nil)
		return
	}

	resources, err := h.service.ListResources(r.Context(), kind)
	if err != nil {
		handleServiceError(w, h.log, err, "list resources")
		return
	}

	utils.ResponseSuccess(w, "success", resources)
}

// GetAvailability handles GET /api/availability?resource_id=...
func (h *BookingHandler) GetAvailability(w http.ResponseWriter, r *http.Request) {
	resourceID := r.URL.Query().Get("resource_id")
	if resourceID == "" {
		utils.ResponseBadRequest(w, "resource_id query parameter is required", nil)
		return
	}

	availability, err := h.service.GetAvailability(r.Context(), resourceID)
	if err != nil {
		handleServiceError(w, h.log, err, "get availability")
		return
	}

	utils.ResponseSuccess(w, "success", availability)
}

// CreateReservation handles POST /api/bookings
func (h *BookingHandler) CreateReservation(w http.ResponseWriter, r *http.Request) {
	var req request.CreateReservationRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		utils.ResponseBadRequest(w, "Invalid request body", nil)
		return
	}

	reservation, err := h.service.CreateReservation(r.Context(), &req)
	if err != nil {
		handleServiceError(w, h.log, err, "create reservation")
		return
	}

	utils.ResponseCreated(w, "success", reservation)
}

// CancelReservation handles GET /api/bookings/cancel?token=... and
// redirects the customer to the public success or error page. No error
// detail leaks into the redirect beyond a coarse reason.
func (h *BookingHandler) CancelReservation(w http.ResponseWriter, r *http.Request) {
	token := r.URL.Query().Get("token")
	if token == "" {
		http.Redirect(w, r, h.config.Booking.CancelErrorURL+"?reason=invalid_token", http.StatusSeeOther)
		return
	}

	if err := h.service.CancelReservation(r.Context(), token); err != nil {
		var notFoundErr *usecase.NotFoundError
		reason := "internal_error"
		if errors.As(err, &notFoundErr) {
			reason = "not_found"
		}
		h.log.Warn("Reservation cancellation failed", zap.Error(err), zap.String("reason", reason))
		http.Redirect(w, r, h.config.Booking.CancelErrorURL+"?reason="+reason, http.StatusSeeOther)
		return
	}

	http.Redirect(w, r, h.config.Booking.CancelSuccessURL, http.StatusSeeOther)
}
