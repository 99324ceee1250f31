package delete_team_member

import (
	"errors"
	"net/http"

	"github.com/google/uuid"
	"github.com/gorilla/mux"

	"github.com/forgeline/workshop-booking-service/internal/api/handlers"
	"github.com/forgeline/workshop-booking-service/internal/api/middleware"
	teamService "github.com/forgeline/workshop-booking-service/internal/service/team"
)

const (
	msgInvalidMemberID = "invalid team member ID"
	msgMemberNotFound  = "team member not found"
	msgAccessDenied    = "access denied"
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

// Handle DELETE /api/v1/admin/team/{memberId}
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	actor, ok := middleware.MemberFromContext(r.Context())
	if !ok {
		h.logger.Error("DELETE /admin/team/{id} - No team member in request context")
		handlers.RespondInternalError(w)
		return
	}

	memberID := mux.Vars(r)["memberId"]
	if _, err := uuid.Parse(memberID); err != nil {
		h.logger.Warn("DELETE /admin/team/{id} - Invalid member ID: %v", err)
		handlers.RespondBadRequest(w, msgInvalidMemberID)
		return
	}

	if err := h.service.Delete(r.Context(), actor, memberID); err != nil {
		switch {
		case errors.Is(err, teamService.ErrMemberNotFound):
			h.logger.Warn("DELETE /admin/team/{id} - Member not found: member_id=%s", memberID)
			handlers.RespondNotFound(w, msgMemberNotFound)

		case errors.Is(err, teamService.ErrAccessDenied):
			h.logger.Warn("DELETE /admin/team/{id} - Access denied: actor=%s", actor.ID)
			handlers.RespondForbidden(w, msgAccessDenied)

		default:
			h.logger.Error("DELETE /admin/team/{id} - Failed to delete member: member_id=%s, error=%v",
				memberID, err)
			handlers.RespondInternalError(w)
		}
		return
	}

	h.logger.Info("DELETE /admin/team/{id} - Team member deleted: member_id=%s, actor=%s", memberID, actor.ID)
	handlers.RespondJSON(w, http.StatusNoContent, nil)
}
