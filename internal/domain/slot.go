package domain

import (
	"fmt"
	"time"

	"github.com/forgeline/workshop-booking-service/pkg/types"
)

// TimeSlot is a bookable start time label exactly as presented to the user
// (e.g. "9:00 AM"). Labels come from a fixed ordered enumeration; the label,
// not a derived time value, is what gets persisted with an appointment.
type TimeSlot string

// slotLabelLayout parses labels like "9:00 AM" / "1:30 PM"
const slotLabelLayout = "3:04 PM"

// DefaultTimeSlots is the canonical ordered enumeration of bookable slots:
// half-hour starts across the business day with a midday break.
// The order here is the display order and must be preserved by the resolver.
var DefaultTimeSlots = []TimeSlot{
	"9:00 AM", "9:30 AM",
	"10:00 AM", "10:30 AM",
	"11:00 AM", "11:30 AM",
	"1:00 PM", "1:30 PM",
	"2:00 PM", "2:30 PM",
	"3:00 PM", "3:30 PM",
	"4:00 PM", "4:30 PM",
}

// Time converts the slot label to a time-of-day value for comparison
// against availability rule windows
func (s TimeSlot) Time() (types.TimeString, error) {
	t, err := time.Parse(slotLabelLayout, string(s))
	if err != nil {
		return "", fmt.Errorf("invalid time slot label %q: %w", string(s), err)
	}
	return types.NewTimeString(t), nil
}

// String returns the display label
func (s TimeSlot) String() string {
	return string(s)
}

// IsKnownTimeSlot returns true if the label belongs to the canonical enumeration
func IsKnownTimeSlot(s TimeSlot) bool {
	for _, known := range DefaultTimeSlots {
		if known == s {
			return true
		}
	}
	return false
}
