package delete_team_member

import (
	"context"

	"github.com/forgeline/workshop-booking-service/internal/domain"
)

type TeamService interface {
	Delete(ctx context.Context, actor *domain.TeamMember, id string) error
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
