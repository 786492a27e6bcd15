package adaptor

import (
	"encoding/json"
	"net/http"

	"garatge-booking/internal/dto/request"
	"garatge-booking/internal/usecase"
	"garatge-booking/pkg/utils"

	"go.uber.org/zap"
)

type ContactHandler struct {
	service usecase.ContactService
	log     *zap.Logger
}

func NewContactHandler(service usecase.ContactService, log *zap.Logger) *ContactHandler {
	return &ContactHandler{
		service: service,
		log:     log.With(zap.String("handler", "contact")),
	}
}

// Send handles POST /api/contact
func (h *ContactHandler) Send(w http.ResponseWriter, r *http.Request) {
	var req request.ContactRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		utils.ResponseBadRequest(w, "Invalid request body", nil)
		return
	}

	if err := h.service.Send(r.Context(), &req); err != nil {
		handleServiceError(w, h.log, err, "send contact message")
		return
	}

	utils.ResponseSuccess(w, "success", nil)
}
