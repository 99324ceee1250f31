package availability

import (
	"context"

	"github.com/forgeline/workshop-booking-service/internal/domain"
)

// AvailabilityRepository интерфейс репозитория правил доступности
type AvailabilityRepository interface {
	Create(ctx context.Context, rule *domain.AvailabilityRule) (*domain.AvailabilityRule, error)
	GetByID(ctx context.Context, id string) (*domain.AvailabilityRule, error)
	ListByTeamMember(ctx context.Context, teamMemberID string) ([]*domain.AvailabilityRule, error)
	Update(ctx context.Context, rule *domain.AvailabilityRule) error
	Delete(ctx context.Context, id string) error
}

// Logger интерфейс для логирования
type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
