package create_availability_rule

import (
	"context"

	"github.com/forgeline/workshop-booking-service/internal/domain"
	"github.com/forgeline/workshop-booking-service/internal/service/availability/models"
)

type AvailabilityService interface {
	Create(ctx context.Context, actor *domain.TeamMember, req *models.CreateRuleRequest) (*models.RuleResponse, error)
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
