package create_team_member

import (
	"context"

	"github.com/forgeline/workshop-booking-service/internal/domain"
	"github.com/forgeline/workshop-booking-service/internal/service/team/models"
)

type TeamService interface {
	Create(ctx context.Context, actor *domain.TeamMember, req *models.CreateMemberRequest) (*models.MemberResponse, error)
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
