package update_appointment_status

import (
	"errors"
	"net/http"

	"github.com/google/uuid"
	"github.com/gorilla/mux"

	"github.com/forgeline/workshop-booking-service/internal/api/handlers"
	appointmentsService "github.com/forgeline/workshop-booking-service/internal/service/appointments"
	"github.com/forgeline/workshop-booking-service/internal/service/appointments/models"
)

const (
	msgInvalidRequestBody   = "invalid request body"
	msgInvalidAppointmentID = "invalid appointment ID"
	msgInvalidStatus        = "invalid status, expected pending, confirmed or cancelled"
	msgInvalidTransition    = "status transition is not allowed"
	msgAppointmentNotFound  = "appointment not found"
)

type Handler struct {
	service AppointmentsService
	logger  Logger
}

func NewHandler(service AppointmentsService, logger Logger) *Handler {
	return &Handler{
		service: service,
		logger:  logger,
	}
}

// Handle PATCH /api/v1/admin/appointments/{appointmentId}/status
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	appointmentID := mux.Vars(r)["appointmentId"]
	if _, err := uuid.Parse(appointmentID); err != nil {
		h.logger.Warn("PATCH /admin/appointments/{id}/status - Invalid appointment ID: %v", err)
		handlers.RespondBadRequest(w, msgInvalidAppointmentID)
		return
	}

	var req models.UpdateStatusRequest
	if err := handlers.DecodeJSON(r, &req); err != nil {
		h.logger.Warn("PATCH /admin/appointments/{id}/status - Invalid request body: %v", err)
		handlers.RespondBadRequest(w, msgInvalidRequestBody)
		return
	}

	if err := h.service.UpdateStatus(r.Context(), appointmentID, &req); err != nil {
		switch {
		case errors.Is(err, appointmentsService.ErrAppointmentNotFound):
			h.logger.Warn("PATCH /admin/appointments/{id}/status - Appointment not found: appointment_id=%s", appointmentID)
			handlers.RespondNotFound(w, msgAppointmentNotFound)

		case errors.Is(err, appointmentsService.ErrInvalidStatus):
			h.logger.Warn("PATCH /admin/appointments/{id}/status - Invalid status=%s: appointment_id=%s",
				req.Status, appointmentID)
			handlers.RespondBadRequest(w, msgInvalidStatus)

		case errors.Is(err, appointmentsService.ErrInvalidTransition):
			h.logger.Warn("PATCH /admin/appointments/{id}/status - Invalid transition to status=%s: appointment_id=%s",
				req.Status, appointmentID)
			handlers.RespondError(w, http.StatusConflict, msgInvalidTransition)

		default:
			h.logger.Error("PATCH /admin/appointments/{id}/status - Failed to update status: appointment_id=%s, error=%v",
				appointmentID, err)
			handlers.RespondInternalError(w)
		}
		return
	}

	h.logger.Info("PATCH /admin/appointments/{id}/status - Status updated: appointment_id=%s, status=%s",
		appointmentID, req.Status)
	handlers.RespondJSON(w, http.StatusNoContent, nil)
}
