package domain

import (
	"time"
)

// AppointmentStatus represents the lifecycle status of an appointment
type AppointmentStatus string

const (
	StatusPending   AppointmentStatus = "pending"
	StatusConfirmed AppointmentStatus = "confirmed"
	StatusCancelled AppointmentStatus = "cancelled"
)

// IsValid returns true if the status is one of the known statuses
func (s AppointmentStatus) IsValid() bool {
	return s == StatusPending || s == StatusConfirmed || s == StatusCancelled
}

// Appointment represents a workshop booking request
// Appointments are never deleted; cancellation is a status change
type Appointment struct {
	ID          string
	WorkshopID  *string
	Date        time.Time
	TimeSlot    TimeSlot
	Name        string
	Email       string
	Company     string
	Message     *string
	MeetingType string
	Attendees   *int
	Status      AppointmentStatus
	CreatedAt   time.Time
}

// IsActive returns true if the appointment still holds its time slot
// Only cancelled appointments free the slot
func (a *Appointment) IsActive() bool {
	return a.Status != StatusCancelled
}

// CanTransitionTo returns true if the status change is allowed
// Cancelled is terminal
func (a *Appointment) CanTransitionTo(next AppointmentStatus) bool {
	if !next.IsValid() {
		return false
	}
	return a.Status != StatusCancelled
}

// AppointmentsFilter filter for listing appointments in the admin panel
type AppointmentsFilter struct {
	Date   *time.Time         // exact date (optional)
	Status *AppointmentStatus // filter by status (optional)
}
