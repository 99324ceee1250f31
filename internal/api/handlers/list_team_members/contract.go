package list_team_members

import (
	"context"

	"github.com/forgeline/workshop-booking-service/internal/service/team/models"
)

type TeamService interface {
	List(ctx context.Context) (*models.MemberListResponse, error)
}

type Logger interface {
	Info(format string, v ...interface{})
	Error(format string, v ...interface{})
}
