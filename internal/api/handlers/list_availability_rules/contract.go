package list_availability_rules

import (
	"context"

	"github.com/forgeline/workshop-booking-service/internal/domain"
	"github.com/forgeline/workshop-booking-service/internal/service/availability/models"
)

type AvailabilityService interface {
	ListForMember(ctx context.Context, actor *domain.TeamMember, teamMemberID string) (*models.RuleListResponse, error)
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
