package adaptor

import (
	"errors"
	"net/http"

	"garatge-booking/internal/usecase"
	"garatge-booking/pkg/utils"

	"go.uber.org/zap"
)

type Handler struct {
	Booking     *BookingHandler
	Appointment *AppointmentHandler
	Contact     *ContactHandler
}

func NewHandler(service *usecase.Service, config *utils.Config, log *zap.Logger) *Handler {
	return &Handler{
		Booking:     NewBookingHandler(service.Booking, config, log),
		Appointment: NewAppointmentHandler(service.Appointment, config, log),
		Contact:     NewContactHandler(service.Contact, log),
	}
}

// handleServiceError maps the typed failure taxonomy onto HTTP codes.
func handleServiceError(w http.ResponseWriter, log *zap.Logger, err error, operation string) {
	var (
		validationErr  *usecase.ValidationError
		schedulingErr  *usecase.SchedulingError
		conflictErr    *usecase.ConflictError
		notFoundErr    *usecase.NotFoundError
		persistenceErr *usecase.PersistenceError
		upstreamErr    *usecase.UpstreamError
	)

	switch {
	case errors.As(err, &validationErr):
		log.Warn(operation+" validation failed", zap.Error(err))
		utils.ResponseBadRequest(w, validationErr.Msg, validationErr.Fields)

	case errors.As(err, &schedulingErr):
		log.Warn(operation+" failed - scheduling rule", zap.Error(err))
		utils.ResponseBadRequest(w, schedulingErr.Msg, nil)

	case errors.As(err, &conflictErr):
		log.Warn(operation+" failed - conflict", zap.Error(err))
		utils.ResponseConflict(w, conflictErr.Msg)

	case errors.As(err, &notFoundErr):
		log.Warn(operation+" failed - not found", zap.Error(err))
		utils.ResponseNotFound(w, notFoundErr.Msg)

	case errors.As(err, &persistenceErr), errors.As(err, &upstreamErr):
		log.Error("Failed to "+operation, zap.Error(err))
		utils.ResponseInternalError(w, "Internal server error")

	default:
		log.Error("Failed to "+operation, zap.Error(err))
		utils.ResponseInternalError(w, "Internal server error")
	}
}
