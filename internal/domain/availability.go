package domain

import (
	"time"

	"github.com/forgeline/workshop-booking-service/pkg/types"
)

// AvailabilityRule represents a recurring weekly working-hours window
// declared by one team member. Multiple rules may exist for the same
// member and day (non-contiguous windows)
type AvailabilityRule struct {
	ID           string
	TeamMemberID string
	DayOfWeek    int // 0-6, Sunday = 0
	StartTime    types.TimeString
	EndTime      types.TimeString
	CreatedAt    time.Time
	UpdatedAt    time.Time
}

// Covers returns true if the rule window contains the given time of day.
// Bounds are inclusive on both ends
func (r *AvailabilityRule) Covers(dayOfWeek int, t types.TimeString) bool {
	if r.DayOfWeek != dayOfWeek {
		return false
	}
	return !r.StartTime.IsAfter(t) && !r.EndTime.IsBefore(t)
}

// Validate checks the rule invariants enforced at save time
func (r *AvailabilityRule) Validate() error {
	if r.DayOfWeek < 0 || r.DayOfWeek > 6 {
		return ErrInvalidDayOfWeek
	}
	if err := r.StartTime.Validate(); err != nil {
		return err
	}
	if err := r.EndTime.Validate(); err != nil {
		return err
	}
	if !r.StartTime.IsBefore(r.EndTime) {
		return ErrInvalidTimeWindow
	}
	return nil
}

// DayOfWeekFromDate returns the 0-6 weekday index (Sunday = 0) of a date
func DayOfWeekFromDate(date time.Time) int {
	return int(date.Weekday())
}
