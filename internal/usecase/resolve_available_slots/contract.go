package resolve_available_slots

import (
	"context"
	"time"

	"github.com/forgeline/workshop-booking-service/internal/domain"
	"github.com/forgeline/workshop-booking-service/pkg/types"
)

// AppointmentRepository интерфейс репозитория записей
type AppointmentRepository interface {
	// GetBookedSlots получает занятые слоты на дату (без отменённых)
	GetBookedSlots(ctx context.Context, date time.Time) ([]domain.TimeSlot, error)
}

// AvailabilityRepository интерфейс репозитория правил доступности
type AvailabilityRepository interface {
	// ListByDayOfWeek получает правила всех сотрудников на день недели
	ListByDayOfWeek(ctx context.Context, dayOfWeek int) ([]*domain.AvailabilityRule, error)
	// ExistsForDayAndTime проверяет покрытие дня недели и времени хотя бы одним правилом
	ExistsForDayAndTime(ctx context.Context, dayOfWeek int, t types.TimeString) (bool, error)
}

// SlotsCache интерфейс кеша доступных слотов (опционально, может быть nil)
type SlotsCache interface {
	Get(ctx context.Context, date time.Time) ([]domain.TimeSlot, error)
	Set(ctx context.Context, date time.Time, slots []domain.TimeSlot) error
}

// Logger интерфейс для логирования
type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
