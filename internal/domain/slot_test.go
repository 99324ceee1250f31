package domain

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/forgeline/workshop-booking-service/pkg/types"
)

func TestTimeSlot_Time(t *testing.T) {
	tests := []struct {
		slot    TimeSlot
		want    types.TimeString
		wantErr bool
	}{
		{slot: "9:00 AM", want: "09:00"},
		{slot: "11:30 AM", want: "11:30"},
		{slot: "1:00 PM", want: "13:00"},
		{slot: "4:30 PM", want: "16:30"},
		{slot: "12:00 PM", want: "12:00"},
		{slot: "12:00 AM", want: "00:00"},
		{slot: "09:00", wantErr: true},
		{slot: "noonish", wantErr: true},
		{slot: "", wantErr: true},
	}

	for _, tt := range tests {
		t.Run(string(tt.slot), func(t *testing.T) {
			got, err := tt.slot.Time()
			if tt.wantErr {
				assert.Error(t, err)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestDefaultTimeSlots_OrderedAndParsable(t *testing.T) {
	require.Len(t, DefaultTimeSlots, 14)

	var prev types.TimeString
	for _, slot := range DefaultTimeSlots {
		ts, err := slot.Time()
		require.NoError(t, err, "slot %s must parse", slot)
		if !prev.IsZero() {
			assert.True(t, prev.IsBefore(ts), "slots must be in ascending time order: %s before %s", prev, ts)
		}
		prev = ts
	}
}

func TestIsKnownTimeSlot(t *testing.T) {
	assert.True(t, IsKnownTimeSlot("9:00 AM"))
	assert.True(t, IsKnownTimeSlot("4:30 PM"))
	assert.False(t, IsKnownTimeSlot("12:00 PM")) // midday break is not bookable
	assert.False(t, IsKnownTimeSlot("5:30 PM"))
	assert.False(t, IsKnownTimeSlot(""))
}

func TestAvailabilityRule_Covers(t *testing.T) {
	rule := AvailabilityRule{DayOfWeek: 1, StartTime: "09:00", EndTime: "17:00"}

	assert.True(t, rule.Covers(1, "09:00"), "start bound is inclusive")
	assert.True(t, rule.Covers(1, "17:00"), "end bound is inclusive")
	assert.True(t, rule.Covers(1, "13:00"))
	assert.False(t, rule.Covers(1, "17:30"))
	assert.False(t, rule.Covers(1, "08:30"))
	assert.False(t, rule.Covers(2, "13:00"), "different weekday")
}

func TestAvailabilityRule_Validate(t *testing.T) {
	valid := AvailabilityRule{DayOfWeek: 1, StartTime: "09:00", EndTime: "17:00"}
	assert.NoError(t, valid.Validate())

	inverted := AvailabilityRule{DayOfWeek: 1, StartTime: "17:00", EndTime: "09:00"}
	assert.ErrorIs(t, inverted.Validate(), ErrInvalidTimeWindow)

	empty := AvailabilityRule{DayOfWeek: 1, StartTime: "09:00", EndTime: "09:00"}
	assert.ErrorIs(t, empty.Validate(), ErrInvalidTimeWindow)

	badDay := AvailabilityRule{DayOfWeek: 7, StartTime: "09:00", EndTime: "17:00"}
	assert.ErrorIs(t, badDay.Validate(), ErrInvalidDayOfWeek)

	badTime := AvailabilityRule{DayOfWeek: 1, StartTime: "nine", EndTime: "17:00"}
	assert.Error(t, badTime.Validate())
}

func TestDayOfWeekFromDate(t *testing.T) {
	// 2025-10-13 is a Monday
	monday := time.Date(2025, 10, 13, 0, 0, 0, 0, time.UTC)
	assert.Equal(t, 1, DayOfWeekFromDate(monday))

	sunday := time.Date(2025, 10, 12, 0, 0, 0, 0, time.UTC)
	assert.Equal(t, 0, DayOfWeekFromDate(sunday))
}

func TestAppointment_Transitions(t *testing.T) {
	a := Appointment{Status: StatusPending}
	assert.True(t, a.IsActive())
	assert.True(t, a.CanTransitionTo(StatusConfirmed))
	assert.True(t, a.CanTransitionTo(StatusCancelled))
	assert.False(t, a.CanTransitionTo("completed"))

	cancelled := Appointment{Status: StatusCancelled}
	assert.False(t, cancelled.IsActive())
	assert.False(t, cancelled.CanTransitionTo(StatusPending), "cancelled is terminal")
}
