package submit_appointment

import (
	"fmt"
	"strings"

	"github.com/forgeline/workshop-booking-service/internal/domain"
)

// validateRequest валидирует входные данные запроса
// Выполняется до любого обращения к слою данных
func validateRequest(req *Request) error {
	if req.Date.IsZero() {
		return fmt.Errorf("%w: date is required", ErrInvalidInput)
	}

	if req.TimeSlot == "" {
		return fmt.Errorf("%w: timeSlot is required", ErrInvalidInput)
	}

	if !domain.IsKnownTimeSlot(req.TimeSlot) {
		return fmt.Errorf("%w: unknown time slot %q", ErrInvalidInput, req.TimeSlot)
	}

	if strings.TrimSpace(req.Name) == "" {
		return fmt.Errorf("%w: name is required", ErrInvalidInput)
	}
	if len(req.Name) > domain.MaxNameLength {
		return fmt.Errorf("%w: name is too long", ErrInvalidInput)
	}

	if strings.TrimSpace(req.Company) == "" {
		return fmt.Errorf("%w: company is required", ErrInvalidInput)
	}
	if len(req.Company) > domain.MaxCompanyLength {
		return fmt.Errorf("%w: company is too long", ErrInvalidInput)
	}

	if err := validateEmail(req.Email); err != nil {
		return err
	}

	if req.MeetingType != "" &&
		req.MeetingType != domain.MeetingTypeVirtual &&
		req.MeetingType != domain.MeetingTypeInPerson {
		return fmt.Errorf("%w: unknown meeting type %q", ErrInvalidInput, req.MeetingType)
	}

	if req.Attendees != nil && *req.Attendees <= 0 {
		return fmt.Errorf("%w: attendees must be positive", ErrInvalidInput)
	}

	if req.Message != nil && len(*req.Message) > domain.MaxMessageLength {
		return fmt.Errorf("%w: message is too long", ErrInvalidInput)
	}

	return nil
}

// validateEmail минимальная проверка формата email: непустой, содержит '@' и '.'
// Без RFC-валидации - так же, как проверяет форма бронирования
func validateEmail(email string) error {
	if strings.TrimSpace(email) == "" {
		return fmt.Errorf("%w: email is required", ErrInvalidInput)
	}
	if len(email) > domain.MaxEmailLength {
		return fmt.Errorf("%w: email is too long", ErrInvalidInput)
	}
	if !strings.Contains(email, "@") || !strings.Contains(email, ".") {
		return fmt.Errorf("%w: invalid email address", ErrInvalidInput)
	}
	return nil
}
