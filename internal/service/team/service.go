package team

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/forgeline/workshop-booking-service/internal/domain"
	teammemberRepo "github.com/forgeline/workshop-booking-service/internal/infra/storage/teammember"
	"github.com/forgeline/workshop-booking-service/internal/service/team/models"
)

// Service сервис управления составом команды
// Все операции, кроме просмотра списка, доступны только админам
type Service struct {
	memberRepo TeamMemberRepository
	logger     Logger
}

// NewService создает новый экземпляр сервиса команды
func NewService(memberRepo TeamMemberRepository, logger Logger) *Service {
	return &Service{
		memberRepo: memberRepo,
		logger:     logger,
	}
}

// List получает список всех сотрудников
func (s *Service) List(ctx context.Context) (*models.MemberListResponse, error) {
	s.logger.Info("List: fetching team members")

	members, err := s.memberRepo.List(ctx)
	if err != nil {
		s.logger.Error("List: repository error: %v", err)
		return nil, fmt.Errorf("%w: List - repository error: %v", ErrInternal, err)
	}

	s.logger.Info("List: successfully fetched %d team members", len(members))
	return models.FromDomainMemberList(members), nil
}

// Create добавляет сотрудника в команду
func (s *Service) Create(ctx context.Context, actor *domain.TeamMember, req *models.CreateMemberRequest) (*models.MemberResponse, error) {
	s.logger.Info("Create: adding team member email=%s, role=%s by actor=%s", req.Email, req.Role, actor.ID)

	if !actor.IsAdmin() {
		s.logger.Warn("Create: access denied for actor=%s", actor.ID)
		return nil, ErrAccessDenied
	}

	if err := validateCreateRequest(req); err != nil {
		s.logger.Warn("Create: validation failed: %v", err)
		return nil, err
	}

	member := &domain.TeamMember{
		UserID: req.UserID,
		Name:   strings.TrimSpace(req.Name),
		Email:  req.Email,
		Role:   req.Role,
	}

	created, err := s.memberRepo.Create(ctx, member)
	if err != nil {
		s.logger.Error("Create: repository error for email=%s: %v", req.Email, err)
		return nil, fmt.Errorf("%w: Create - repository error: %v", ErrInternal, err)
	}

	s.logger.Info("Create: successfully added team member id=%s", created.ID)
	return models.FromDomainMember(created), nil
}

// Delete удаляет сотрудника из команды
// Правила доступности удаляются каскадно на уровне БД
func (s *Service) Delete(ctx context.Context, actor *domain.TeamMember, id string) error {
	s.logger.Info("Delete: removing team member id=%s by actor=%s", id, actor.ID)

	if !actor.IsAdmin() {
		s.logger.Warn("Delete: access denied for actor=%s", actor.ID)
		return ErrAccessDenied
	}

	if err := s.memberRepo.Delete(ctx, id); err != nil {
		if errors.Is(err, teammemberRepo.ErrMemberNotFound) {
			s.logger.Warn("Delete: team member id=%s not found", id)
			return ErrMemberNotFound
		}
		s.logger.Error("Delete: repository error for team member id=%s: %v", id, err)
		return fmt.Errorf("%w: Delete - repository error: %v", ErrInternal, err)
	}

	s.logger.Info("Delete: successfully removed team member id=%s", id)
	return nil
}

func validateCreateRequest(req *models.CreateMemberRequest) error {
	if strings.TrimSpace(req.UserID) == "" {
		return fmt.Errorf("%w: userId is required", ErrInvalidInput)
	}
	if strings.TrimSpace(req.Name) == "" {
		return fmt.Errorf("%w: name is required", ErrInvalidInput)
	}
	if !strings.Contains(req.Email, "@") || !strings.Contains(req.Email, ".") {
		return fmt.Errorf("%w: invalid email", ErrInvalidInput)
	}
	if req.Role != domain.RoleAdmin && req.Role != domain.RoleMember {
		return fmt.Errorf("%w: role must be %q or %q", ErrInvalidInput, domain.RoleAdmin, domain.RoleMember)
	}
	return nil
}
