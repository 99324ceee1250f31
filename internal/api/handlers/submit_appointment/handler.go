package submit_appointment

import (
	"errors"
	"net/http"

	"github.com/forgeline/workshop-booking-service/internal/api/handlers"
	submitAppointment "github.com/forgeline/workshop-booking-service/internal/usecase/submit_appointment"
)

const (
	msgInvalidRequestBody = "invalid request body"
	msgInvalidDate        = "invalid date format, expected YYYY-MM-DD"
	msgSlotTaken          = "selected time slot is already booked"
	msgWorkshopNotFound   = "workshop not found"
)

type Handler struct {
	useCase SubmitAppointmentUseCase
	logger  Logger
}

func NewHandler(useCase SubmitAppointmentUseCase, logger Logger) *Handler {
	return &Handler{
		useCase: useCase,
		logger:  logger,
	}
}

// Handle POST /api/v1/appointments
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	var req SubmitAppointmentRequest
	if err := handlers.DecodeJSON(r, &req); err != nil {
		h.logger.Warn("POST /appointments - Invalid request body: %v", err)
		handlers.RespondBadRequest(w, msgInvalidRequestBody)
		return
	}

	useCaseReq, err := req.ToUseCaseRequest()
	if err != nil {
		h.logger.Warn("POST /appointments - Failed to parse date: %v", err)
		handlers.RespondBadRequest(w, msgInvalidDate)
		return
	}

	result, err := h.useCase.Execute(r.Context(), useCaseReq)
	if err != nil {
		switch {
		case errors.Is(err, submitAppointment.ErrSlotTaken):
			h.logger.Warn("POST /appointments - Slot taken: date=%s, slot=%s", req.Date, req.TimeSlot)
			handlers.RespondError(w, http.StatusConflict, msgSlotTaken)

		case errors.Is(err, submitAppointment.ErrWorkshopNotFound):
			h.logger.Warn("POST /appointments - Workshop not found: workshop_id=%v", req.WorkshopID)
			handlers.RespondNotFound(w, msgWorkshopNotFound)

		case errors.Is(err, submitAppointment.ErrInvalidInput):
			h.logger.Warn("POST /appointments - Validation failed: %v", err)
			handlers.RespondBadRequest(w, err.Error())

		default:
			h.logger.Error("POST /appointments - Failed to submit appointment: date=%s, slot=%s, error=%v",
				req.Date, req.TimeSlot, err)
			handlers.RespondInternalError(w)
		}
		return
	}

	h.logger.Info("POST /appointments - Appointment created successfully: appointment_id=%s, date=%s, slot=%s",
		result.ID, req.Date, req.TimeSlot)
	handlers.RespondJSON(w, http.StatusCreated, FromUseCaseResponse(result))
}
