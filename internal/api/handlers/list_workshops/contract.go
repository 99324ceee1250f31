package list_workshops

import (
	"context"

	"github.com/forgeline/workshop-booking-service/internal/service/workshops/models"
)

type WorkshopsService interface {
	List(ctx context.Context) (*models.WorkshopListResponse, error)
}

type Logger interface {
	Info(format string, v ...interface{})
	Error(format string, v ...interface{})
}
