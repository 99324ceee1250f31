package models

import (
	"errors"
	"time"

	"github.com/forgeline/workshop-booking-service/internal/domain"
)

var (
	// ErrInvalidStatus возвращается при некорректном статусе
	ErrInvalidStatus = errors.New("invalid appointment status")
)

// Request модели

// ListAppointmentsRequest запрос на получение списка записей
type ListAppointmentsRequest struct {
	Date   *time.Time `json:"date,omitempty"`   // Фильтр по дате (опционально)
	Status *string    `json:"status,omitempty"` // Фильтр по статусу (опционально)
}

// ToDomainFilter конвертирует request в domain фильтр
func (r *ListAppointmentsRequest) ToDomainFilter() (domain.AppointmentsFilter, error) {
	filter := domain.AppointmentsFilter{
		Date: r.Date,
	}

	if r.Status != nil {
		status, err := ToDomainAppointmentStatus(*r.Status)
		if err != nil {
			return filter, err
		}
		filter.Status = &status
	}

	return filter, nil
}

// UpdateStatusRequest запрос на обновление статуса записи
type UpdateStatusRequest struct {
	Status string `json:"status"`
}

// Response модели

// AppointmentResponse ответ с данными записи
type AppointmentResponse struct {
	ID          string  `json:"id"`
	WorkshopID  *string `json:"workshopId,omitempty"`
	Date        string  `json:"date"`     // "2025-10-15"
	TimeSlot    string  `json:"timeSlot"` // "9:00 AM"
	Name        string  `json:"name"`
	Email       string  `json:"email"`
	Company     string  `json:"company"`
	Message     *string `json:"message,omitempty"`
	MeetingType string  `json:"meetingType"`
	Attendees   *int    `json:"attendees,omitempty"`
	Status      string  `json:"status"`

	CreatedAt time.Time `json:"createdAt"`
}

// AppointmentListResponse ответ со списком записей
type AppointmentListResponse struct {
	Appointments []AppointmentResponse `json:"appointments"`
}

// Методы конвертации

// FromDomainAppointment конвертирует domain модель в DTO
func FromDomainAppointment(a *domain.Appointment) *AppointmentResponse {
	if a == nil {
		return nil
	}

	return &AppointmentResponse{
		ID:          a.ID,
		WorkshopID:  a.WorkshopID,
		Date:        a.Date.Format(domain.DateFormat),
		TimeSlot:    a.TimeSlot.String(),
		Name:        a.Name,
		Email:       a.Email,
		Company:     a.Company,
		Message:     a.Message,
		MeetingType: a.MeetingType,
		Attendees:   a.Attendees,
		Status:      string(a.Status),
		CreatedAt:   a.CreatedAt,
	}
}

// FromDomainAppointmentList конвертирует список domain моделей в DTO
func FromDomainAppointmentList(appointments []*domain.Appointment) *AppointmentListResponse {
	resp := &AppointmentListResponse{
		Appointments: make([]AppointmentResponse, 0, len(appointments)),
	}
	for _, a := range appointments {
		resp.Appointments = append(resp.Appointments, *FromDomainAppointment(a))
	}
	return resp
}

// ToDomainAppointmentStatus конвертирует строку в domain статус
func ToDomainAppointmentStatus(s string) (domain.AppointmentStatus, error) {
	status := domain.AppointmentStatus(s)
	if !status.IsValid() {
		return "", ErrInvalidStatus
	}
	return status, nil
}
