package delete_availability_rule

import (
	"errors"
	"net/http"

	"github.com/google/uuid"
	"github.com/gorilla/mux"

	"github.com/forgeline/workshop-booking-service/internal/api/handlers"
	"github.com/forgeline/workshop-booking-service/internal/api/middleware"
	availabilityService "github.com/forgeline/workshop-booking-service/internal/service/availability"
)

const (
	msgInvalidRuleID = "invalid availability rule ID"
	msgRuleNotFound  = "availability rule not found"
	msgAccessDenied  = "access denied"
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

// Handle DELETE /api/v1/admin/availability/{ruleId}
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	actor, ok := middleware.MemberFromContext(r.Context())
	if !ok {
		h.logger.Error("DELETE /admin/availability/{id} - No team member in request context")
		handlers.RespondInternalError(w)
		return
	}

	ruleID := mux.Vars(r)["ruleId"]
	if _, err := uuid.Parse(ruleID); err != nil {
		h.logger.Warn("DELETE /admin/availability/{id} - Invalid rule ID: %v", err)
		handlers.RespondBadRequest(w, msgInvalidRuleID)
		return
	}

	if err := h.service.Delete(r.Context(), actor, ruleID); err != nil {
		switch {
		case errors.Is(err, availabilityService.ErrRuleNotFound):
			h.logger.Warn("DELETE /admin/availability/{id} - Rule not found: rule_id=%s", ruleID)
			handlers.RespondNotFound(w, msgRuleNotFound)

		case errors.Is(err, availabilityService.ErrAccessDenied):
			h.logger.Warn("DELETE /admin/availability/{id} - Access denied: actor=%s, rule_id=%s", actor.ID, ruleID)
			handlers.RespondForbidden(w, msgAccessDenied)

		default:
			h.logger.Error("DELETE /admin/availability/{id} - Failed to delete rule: rule_id=%s, error=%v", ruleID, err)
			handlers.RespondInternalError(w)
		}
		return
	}

	h.logger.Info("DELETE /admin/availability/{id} - Rule deleted: rule_id=%s, actor=%s", ruleID, actor.ID)
	handlers.RespondJSON(w, http.StatusNoContent, nil)
}
