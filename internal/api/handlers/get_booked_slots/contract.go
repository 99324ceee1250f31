package get_booked_slots

import (
	"context"
	"time"

	"github.com/forgeline/workshop-booking-service/internal/domain"
)

type BookedSlotsProvider interface {
	GetBookedTimeSlots(ctx context.Context, date time.Time) []domain.TimeSlot
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
}
