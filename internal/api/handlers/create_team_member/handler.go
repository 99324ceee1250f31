package create_team_member

import (
	"errors"
	"net/http"

	"github.com/forgeline/workshop-booking-service/internal/api/handlers"
	"github.com/forgeline/workshop-booking-service/internal/api/middleware"
	teamService "github.com/forgeline/workshop-booking-service/internal/service/team"
	"github.com/forgeline/workshop-booking-service/internal/service/team/models"
)

const (
	msgInvalidRequestBody = "invalid request body"
	msgAccessDenied       = "access denied"
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

// Handle POST /api/v1/admin/team
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	actor, ok := middleware.MemberFromContext(r.Context())
	if !ok {
		h.logger.Error("POST /admin/team - No team member in request context")
		handlers.RespondInternalError(w)
		return
	}

	var req models.CreateMemberRequest
	if err := handlers.DecodeJSON(r, &req); err != nil {
		h.logger.Warn("POST /admin/team - Invalid request body: %v", err)
		handlers.RespondBadRequest(w, msgInvalidRequestBody)
		return
	}

	result, err := h.service.Create(r.Context(), actor, &req)
	if err != nil {
		switch {
		case errors.Is(err, teamService.ErrAccessDenied):
			h.logger.Warn("POST /admin/team - Access denied: actor=%s", actor.ID)
			handlers.RespondForbidden(w, msgAccessDenied)

		case errors.Is(err, teamService.ErrInvalidInput):
			h.logger.Warn("POST /admin/team - Validation failed: %v", err)
			handlers.RespondBadRequest(w, err.Error())

		default:
			h.logger.Error("POST /admin/team - Failed to create team member: %v", err)
			handlers.RespondInternalError(w)
		}
		return
	}

	h.logger.Info("POST /admin/team - Team member created: member_id=%s, actor=%s", result.ID, actor.ID)
	handlers.RespondJSON(w, http.StatusCreated, result)
}
