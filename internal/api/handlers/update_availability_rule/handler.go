package update_availability_rule

import (
	"errors"
	"net/http"

	"github.com/google/uuid"
	"github.com/gorilla/mux"

	"github.com/forgeline/workshop-booking-service/internal/api/handlers"
	"github.com/forgeline/workshop-booking-service/internal/api/middleware"
	availabilityService "github.com/forgeline/workshop-booking-service/internal/service/availability"
	"github.com/forgeline/workshop-booking-service/internal/service/availability/models"
)

const (
	msgInvalidRequestBody = "invalid request body"
	msgInvalidRuleID      = "invalid availability rule ID"
	msgRuleNotFound       = "availability rule not found"
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

// Handle PUT /api/v1/admin/availability/{ruleId}
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	actor, ok := middleware.MemberFromContext(r.Context())
	if !ok {
		h.logger.Error("PUT /admin/availability/{id} - No team member in request context")
		handlers.RespondInternalError(w)
		return
	}

	ruleID := mux.Vars(r)["ruleId"]
	if _, err := uuid.Parse(ruleID); err != nil {
		h.logger.Warn("PUT /admin/availability/{id} - Invalid rule ID: %v", err)
		handlers.RespondBadRequest(w, msgInvalidRuleID)
		return
	}

	var req models.UpdateRuleRequest
	if err := handlers.DecodeJSON(r, &req); err != nil {
		h.logger.Warn("PUT /admin/availability/{id} - Invalid request body: %v", err)
		handlers.RespondBadRequest(w, msgInvalidRequestBody)
		return
	}

	result, err := h.service.Update(r.Context(), actor, ruleID, &req)
	if err != nil {
		switch {
		case errors.Is(err, availabilityService.ErrRuleNotFound):
			h.logger.Warn("PUT /admin/availability/{id} - Rule not found: rule_id=%s", ruleID)
			handlers.RespondNotFound(w, msgRuleNotFound)

		case errors.Is(err, availabilityService.ErrAccessDenied):
			h.logger.Warn("PUT /admin/availability/{id} - Access denied: actor=%s, rule_id=%s", actor.ID, ruleID)
			handlers.RespondForbidden(w, msgAccessDenied)

		case errors.Is(err, availabilityService.ErrInvalidInput):
			h.logger.Warn("PUT /admin/availability/{id} - Validation failed: %v", err)
			handlers.RespondBadRequest(w, err.Error())

		default:
			h.logger.Error("PUT /admin/availability/{id} - Failed to update rule: rule_id=%s, error=%v", ruleID, err)
			handlers.RespondInternalError(w)
		}
		return
	}

	h.logger.Info("PUT /admin/availability/{id} - Rule updated: rule_id=%s, actor=%s", ruleID, actor.ID)
	handlers.RespondJSON(w, http.StatusOK, result)
}
