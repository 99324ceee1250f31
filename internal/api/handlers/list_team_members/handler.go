package list_team_members

import (
	"net/http"

	"github.com/forgeline/workshop-booking-service/internal/api/handlers"
)

type Handler struct {
	service TeamService
	logger  Logger
}

func NewHandler(service TeamService, logger Logger) *Handler {
	return &Handler{
		service: service,
		logger:  logger,
	}
}

// Handle GET /api/v1/admin/team
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	result, err := h.service.List(r.Context())
	if err != nil {
		h.logger.Error("GET /admin/team - Failed to list team members: %v", err)
		handlers.RespondInternalError(w)
		return
	}

	h.logger.Info("GET /admin/team - Team members retrieved: count=%d", len(result.Members))
	handlers.RespondJSON(w, http.StatusOK, result)
}
