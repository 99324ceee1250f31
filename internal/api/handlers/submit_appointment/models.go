package submit_appointment

import (
	"time"

	"github.com/forgeline/workshop-booking-service/internal/domain"
	submitAppointment "github.com/forgeline/workshop-booking-service/internal/usecase/submit_appointment"
)

// SubmitAppointmentRequest HTTP request model
type SubmitAppointmentRequest struct {
	WorkshopID  *string `json:"workshopId,omitempty"`
	Date        string  `json:"date"`     // "2025-10-15"
	TimeSlot    string  `json:"timeSlot"` // "9:00 AM"
	Name        string  `json:"name"`
	Email       string  `json:"email"`
	Company     string  `json:"company"`
	Message     *string `json:"message,omitempty"`
	MeetingType string  `json:"meetingType,omitempty"` // virtual / in-person
	Attendees   *int    `json:"attendees,omitempty"`
}

// AppointmentResponse HTTP response model
type AppointmentResponse struct {
	ID          string  `json:"id"`
	WorkshopID  *string `json:"workshopId,omitempty"`
	Date        string  `json:"date"`
	TimeSlot    string  `json:"timeSlot"`
	Name        string  `json:"name"`
	Email       string  `json:"email"`
	Company     string  `json:"company"`
	Message     *string `json:"message,omitempty"`
	MeetingType string  `json:"meetingType"`
	Attendees   *int    `json:"attendees,omitempty"`
	Status      string  `json:"status"`
	CreatedAt   string  `json:"createdAt"`
}

// ToUseCaseRequest конвертирует HTTP запрос в модель use case
func (r *SubmitAppointmentRequest) ToUseCaseRequest() (*submitAppointment.Request, error) {
	date, err := time.Parse(domain.DateFormat, r.Date)
	if err != nil {
		return nil, err
	}

	return &submitAppointment.Request{
		WorkshopID:  r.WorkshopID,
		Date:        date,
		TimeSlot:    domain.TimeSlot(r.TimeSlot),
		Name:        r.Name,
		Email:       r.Email,
		Company:     r.Company,
		Message:     r.Message,
		MeetingType: r.MeetingType,
		Attendees:   r.Attendees,
	}, nil
}

// FromUseCaseResponse конвертирует ответ use case в HTTP response
func FromUseCaseResponse(resp *submitAppointment.Response) *AppointmentResponse {
	return &AppointmentResponse{
		ID:          resp.ID,
		WorkshopID:  resp.WorkshopID,
		Date:        resp.Date.Format(domain.DateFormat),
		TimeSlot:    resp.TimeSlot.String(),
		Name:        resp.Name,
		Email:       resp.Email,
		Company:     resp.Company,
		Message:     resp.Message,
		MeetingType: resp.MeetingType,
		Attendees:   resp.Attendees,
		Status:      resp.Status,
		CreatedAt:   resp.CreatedAt.Format(time.RFC3339),
	}
}
