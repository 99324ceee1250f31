package list_availability_rules

import (
	"errors"
	"net/http"

	"github.com/google/uuid"

	"github.com/forgeline/workshop-booking-service/internal/api/handlers"
	"github.com/forgeline/workshop-booking-service/internal/api/middleware"
	availabilityService "github.com/forgeline/workshop-booking-service/internal/service/availability"
)

const (
	msgInvalidMemberID = "invalid team member ID"
	msgAccessDenied    = "access denied"
)

type Handler struct {
	service AvailabilityService
	logger  Logger
}

func NewHandler(service AvailabilityService, logger Logger) *Handler {
	return &Handler{
		service: service,
		logger:  logger,
	}
}

// Handle GET /api/v1/admin/availability
// Query params: teamMemberId (optional, для админов; по умолчанию свои правила)
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	actor, ok := middleware.MemberFromContext(r.Context())
	if !ok {
		h.logger.Error("GET /admin/availability - No team member in request context")
		handlers.RespondInternalError(w)
		return
	}

	memberID := actor.ID
	if requested := r.URL.Query().Get("teamMemberId"); requested != "" {
		if _, err := uuid.Parse(requested); err != nil {
			h.logger.Warn("GET /admin/availability - Invalid member ID: %v", err)
			handlers.RespondBadRequest(w, msgInvalidMemberID)
			return
		}
		memberID = requested
	}

	result, err := h.service.ListForMember(r.Context(), actor, memberID)
	if err != nil {
		switch {
		case errors.Is(err, availabilityService.ErrAccessDenied):
			h.logger.Warn("GET /admin/availability - Access denied: actor=%s, member_id=%s", actor.ID, memberID)
			handlers.RespondForbidden(w, msgAccessDenied)

		default:
			h.logger.Error("GET /admin/availability - Failed to list rules: member_id=%s, error=%v", memberID, err)
			handlers.RespondInternalError(w)
		}
		return
	}

	h.logger.Info("GET /admin/availability - Rules retrieved: member_id=%s, count=%d", memberID, len(result.Rules))
	handlers.RespondJSON(w, http.StatusOK, result)
}
