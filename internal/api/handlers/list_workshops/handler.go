package list_workshops

import (
	"net/http"

	"github.com/forgeline/workshop-booking-service/internal/api/handlers"
)

type Handler struct {
	service WorkshopsService
	logger  Logger
}

func NewHandler(service WorkshopsService, logger Logger) *Handler {
	return &Handler{
		service: service,
		logger:  logger,
	}
}

// Handle GET /api/v1/workshops
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	result, err := h.service.List(r.Context())
	if err != nil {
		h.logger.Error("GET /workshops - Failed to list workshops: %v", err)
		handlers.RespondInternalError(w)
		return
	}

	h.logger.Info("GET /workshops - Workshops retrieved: count=%d", len(result.Workshops))
	handlers.RespondJSON(w, http.StatusOK, result)
}
