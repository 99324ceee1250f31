package submit_appointment

import (
	"context"
	"time"

	"github.com/forgeline/workshop-booking-service/internal/domain"
	"github.com/forgeline/workshop-booking-service/internal/integrations/mailservice"
)

// AppointmentRepository интерфейс репозитория записей
type AppointmentRepository interface {
	Create(ctx context.Context, appointment *domain.Appointment) (*domain.Appointment, error)
}

// WorkshopRepository интерфейс репозитория каталога воркшопов
type WorkshopRepository interface {
	GetByID(ctx context.Context, id string) (*domain.Workshop, error)
}

// MailClient интерфейс клиента отправки подтверждений
type MailClient interface {
	SendConfirmationWithGracefulDegradation(ctx context.Context, req *mailservice.ConfirmationRequest) error
}

// SlotsCache интерфейс кеша доступных слотов (опционально, может быть nil)
type SlotsCache interface {
	Invalidate(ctx context.Context, date time.Time) error
}

// TransactionManager интерфейс для управления транзакциями
type TransactionManager interface {
	DoSerializable(ctx context.Context, fn func(ctx context.Context) error) error
}

// Logger интерфейс для логирования
type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
