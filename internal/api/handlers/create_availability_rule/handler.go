package create_availability_rule

import (
	"errors"
	"net/http"

	"github.com/forgeline/workshop-booking-service/internal/api/handlers"
	"github.com/forgeline/workshop-booking-service/internal/api/middleware"
	availabilityService "github.com/forgeline/workshop-booking-service/internal/service/availability"
	"github.com/forgeline/workshop-booking-service/internal/service/availability/models"
)

const (
	msgInvalidRequestBody = "invalid request body"
	msgAccessDenied       = "access denied"
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

// Handle POST /api/v1/admin/availability
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	actor, ok := middleware.MemberFromContext(r.Context())
	if !ok {
		h.logger.Error("POST /admin/availability - No team member in request context")
		handlers.RespondInternalError(w)
		return
	}

	var req models.CreateRuleRequest
	if err := handlers.DecodeJSON(r, &req); err != nil {
		h.logger.Warn("POST /admin/availability - Invalid request body: %v", err)
		handlers.RespondBadRequest(w, msgInvalidRequestBody)
		return
	}

	result, err := h.service.Create(r.Context(), actor, &req)
	if err != nil {
		switch {
		case errors.Is(err, availabilityService.ErrAccessDenied):
			h.logger.Warn("POST /admin/availability - Access denied: actor=%s", actor.ID)
			handlers.RespondForbidden(w, msgAccessDenied)

		case errors.Is(err, availabilityService.ErrInvalidInput):
			h.logger.Warn("POST /admin/availability - Validation failed: %v", err)
			handlers.RespondBadRequest(w, err.Error())

		default:
			h.logger.Error("POST /admin/availability - Failed to create rule: actor=%s, error=%v", actor.ID, err)
			handlers.RespondInternalError(w)
		}
		return
	}

	h.logger.Info("POST /admin/availability - Rule created: rule_id=%s, member_id=%s", result.ID, result.TeamMemberID)
	handlers.RespondJSON(w, http.StatusCreated, result)
}
