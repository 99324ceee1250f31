package delete_availability_rule

import (
	"context"

	"github.com/forgeline/workshop-booking-service/internal/domain"
)

type AvailabilityService interface {
	Delete(ctx context.Context, actor *domain.TeamMember, ruleID string) error
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
