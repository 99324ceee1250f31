package team

import (
	"context"

	"github.com/forgeline/workshop-booking-service/internal/domain"
)

// TeamMemberRepository интерфейс репозитория сотрудников
type TeamMemberRepository interface {
	Create(ctx context.Context, member *domain.TeamMember) (*domain.TeamMember, error)
	List(ctx context.Context) ([]*domain.TeamMember, error)
	Delete(ctx context.Context, id string) error
}

// Logger интерфейс для логирования
type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
