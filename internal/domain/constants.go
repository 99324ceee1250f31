package domain

import "errors"

// Time format constants
const (
	DateFormat = "2006-01-02" // YYYY-MM-DD
)

// Meeting types accepted from the booking form
const (
	MeetingTypeVirtual  = "virtual"
	MeetingTypeInPerson = "in-person"
)

// Business validation constants
const (
	MaxNameLength    = 200
	MaxEmailLength   = 320
	MaxCompanyLength = 200
	MaxMessageLength = 2000
)

// Domain invariant errors
var (
	// ErrInvalidDayOfWeek returned when a rule's day is outside 0-6
	ErrInvalidDayOfWeek = errors.New("day of week must be between 0 and 6")

	// ErrInvalidTimeWindow returned when a rule's start time is not before its end time
	ErrInvalidTimeWindow = errors.New("start time must be before end time")
)
