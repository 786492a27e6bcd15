package adaptor

import (
	"errors"
	"net/http"

	"garatge-booking/internal/dto/request"
	"garatge-booking/internal/usecase"
	"garatge-booking/pkg/upload"
	"garatge-booking/pkg/utils"

	"go.uber.org/zap"
)

// maxAppointmentForm caps the multipart form size (attachments included).
const maxAppointmentForm = 15 << 20 // 15 MB

type AppointmentHandler struct {
	service usecase.AppointmentService
	config  *utils.Config
	log     *zap.Logger
}

func NewAppointmentHandler(service usecase.AppointmentService, config *utils.Config, log *zap.Logger) *AppointmentHandler {
	return &AppointmentHandler{
		service: service,
		config:  config,
		log:     log.With(zap.String("handler", "appointment")),
	}
}

// AvailableSlots handles GET /api/appointments/slots?date=YYYY-MM-DD
func (h *AppointmentHandler) AvailableSlots(w http.ResponseWriter, r *http.Request) {
	date := r.URL.Query().Get("date")
	if date == "" {
		utils.ResponseBadRequest(w, "date query parameter is required", nil)
		return
	}

	slots, err := h.service.AvailableSlots(r.Context(), date)
	if err != nil {
		handleServiceError(w, h.log, err, "list available slots")
		return
	}

	utils.ResponseSuccess(w, "success", slots)
}

// CreateAppointment handles POST /api/appointments (multipart form, up
// to 3 file attachments).
func (h *AppointmentHandler) CreateAppointment(w http.ResponseWriter, r *http.Request) {
	if err := r.ParseMultipartForm(maxAppointmentForm); err != nil {
		utils.ResponseBadRequest(w, "Invalid multipart form", nil)
		return
	}

	req := request.CreateAppointmentRequest{
		Name:         r.FormValue("name"),
		Email:        r.FormValue("email"),
		Phone:        r.FormValue("phone"),
		VehicleBrand: r.FormValue("vehicle_brand"),
		VehicleModel: r.FormValue("vehicle_model"),
		Service:      r.FormValue("service"),
		Date:         r.FormValue("date"),
		Time:         r.FormValue("time"),
		Message:      r.FormValue("message"),
		Consent:      r.FormValue("consent") == "true",
	}

	var attachments []upload.Attachment
	if r.MultipartForm != nil {
		for _, header := range r.MultipartForm.File["attachments"] {
			if header.Size == 0 {
				continue
			}
			file, err := header.Open()
			if err != nil {
				h.log.Warn("Failed to open attachment", zap.Error(err), zap.String("filename", header.Filename))
				continue
			}
			defer file.Close()
			attachments = append(attachments, upload.Attachment{Filename: header.Filename, Body: file})
		}
	}

	appointment, err := h.service.CreateAppointment(r.Context(), &req, attachments)
	if err != nil {
		handleServiceError(w, h.log, err, "create appointment")
		return
	}

	utils.ResponseCreated(w, "success", appointment)
}

// CancelAppointment handles GET /api/appointments/cancel?token=...
func (h *AppointmentHandler) CancelAppointment(w http.ResponseWriter, r *http.Request) {
	token := r.URL.Query().Get("token")
	if token == "" {
		http.Redirect(w, r, h.config.Booking.CancelErrorURL+"?reason=invalid_token", http.StatusSeeOther)
		return
	}

	if err := h.service.CancelAppointment(r.Context(), token); err != nil {
		var notFoundErr *usecase.NotFoundError
		reason := "internal_error"
		if errors.As(err, &notFoundErr) {
			reason = "not_found"
		}
		h.log.Warn("Appointment cancellation failed", zap.Error(err), zap.String("reason", reason))
		http.Redirect(w, r, h.config.Booking.CancelErrorURL+"?reason="+reason, http.StatusSeeOther)
		return
	}

	http.Redirect(w, r, h.config.Booking.CancelSuccessURL, http.StatusSeeOther)
}
