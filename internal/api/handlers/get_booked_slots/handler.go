package get_booked_slots

import (
	"net/http"
	"time"

	"github.com/forgeline/workshop-booking-service/internal/api/handlers"
	"github.com/forgeline/workshop-booking-service/internal/domain"
)

const (
	msgMissingDate = "date query parameter is required"
	msgInvalidDate = "invalid date format, expected YYYY-MM-DD"
)

// BookedSlotsResponse HTTP response model
type BookedSlotsResponse struct {
	Date  string   `json:"date"`
	Slots []string `json:"slots"`
}

type Handler struct {
	provider BookedSlotsProvider
	logger   Logger
}

func NewHandler(provider BookedSlotsProvider, logger Logger) *Handler {
	return &Handler{
		provider: provider,
		logger:   logger,
	}
}

// Handle GET /api/v1/booked-slots
// Query params: date (required, YYYY-MM-DD)
// Деградирует до пустого списка при недоступности хранилища
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	dateStr := r.URL.Query().Get("date")
	if dateStr == "" {
		h.logger.Warn("GET /booked-slots - Missing date")
		handlers.RespondBadRequest(w, msgMissingDate)
		return
	}

	date, err := time.Parse(domain.DateFormat, dateStr)
	if err != nil {
		h.logger.Warn("GET /booked-slots - Invalid date format: %v", err)
		handlers.RespondBadRequest(w, msgInvalidDate)
		return
	}

	booked := h.provider.GetBookedTimeSlots(r.Context(), date)

	slots := make([]string, len(booked))
	for i, slot := range booked {
		slots[i] = string(slot)
	}

	h.logger.Info("GET /booked-slots - Booked slots retrieved: date=%s, slots_count=%d", dateStr, len(slots))
	handlers.RespondJSON(w, http.StatusOK, &BookedSlotsResponse{
		Date:  dateStr,
		Slots: slots,
	})
}
