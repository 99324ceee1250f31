package workshops

import (
	"context"

	"github.com/forgeline/workshop-booking-service/internal/domain"
)

// WorkshopRepository интерфейс репозитория каталога воркшопов
type WorkshopRepository interface {
	List(ctx context.Context) ([]*domain.Workshop, error)
}

// Logger интерфейс для логирования
type Logger interface {
	Info(format string, v ...interface{})
	Error(format string, v ...interface{})
}
