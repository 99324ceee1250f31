package availability

import (
	"context"
	"errors"
	"fmt"

	"github.com/forgeline/workshop-booking-service/internal/domain"
	availabilityRepo "github.com/forgeline/workshop-booking-service/internal/infra/storage/availability"
	"github.com/forgeline/workshop-booking-service/internal/service/availability/models"
)

// Service сервис управления правилами доступности сотрудников
//
// Правила принадлежат сотруднику: рядовой участник управляет только
// своими окнами, админ - любыми
type Service struct {
	availabilityRepo AvailabilityRepository
	logger           Logger
}

// NewService создает новый экземпляр сервиса доступности
func NewService(availabilityRepo AvailabilityRepository, logger Logger) *Service {
	return &Service{
		availabilityRepo: availabilityRepo,
		logger:           logger,
	}
}

// ListForMember получает правила доступности сотрудника
// Свои правила видит любой участник, чужие - только админ
func (s *Service) ListForMember(ctx context.Context, actor *domain.TeamMember, teamMemberID string) (*models.RuleListResponse, error) {
	s.logger.Info("ListForMember: fetching rules for member=%s by actor=%s", teamMemberID, actor.ID)

	if teamMemberID != actor.ID && !actor.IsAdmin() {
		s.logger.Warn("ListForMember: access denied for actor=%s to member=%s rules", actor.ID, teamMemberID)
		return nil, ErrAccessDenied
	}

	rules, err := s.availabilityRepo.ListByTeamMember(ctx, teamMemberID)
	if err != nil {
		s.logger.Error("ListForMember: repository error for member=%s: %v", teamMemberID, err)
		return nil, fmt.Errorf("%w: ListForMember - repository error: %v", ErrInternal, err)
	}

	s.logger.Info("ListForMember: successfully fetched %d rules for member=%s", len(rules), teamMemberID)
	return models.FromDomainRuleList(rules), nil
}

// Create создает правило доступности
// Окно валидируется до записи: день недели 0-6, start < end
func (s *Service) Create(ctx context.Context, actor *domain.TeamMember, req *models.CreateRuleRequest) (*models.RuleResponse, error) {
	ownerID := actor.ID
	if req.TeamMemberID != nil {
		ownerID = *req.TeamMemberID
	}

	s.logger.Info("Create: creating rule for member=%s, day=%d, window=%s-%s by actor=%s",
		ownerID, req.DayOfWeek, req.StartTime, req.EndTime, actor.ID)

	if ownerID != actor.ID && !actor.IsAdmin() {
		s.logger.Warn("Create: access denied for actor=%s to create rule for member=%s", actor.ID, ownerID)
		return nil, ErrAccessDenied
	}

	rule := models.ToDomainRule(ownerID, req.DayOfWeek, req.StartTime, req.EndTime)
	if err := rule.Validate(); err != nil {
		s.logger.Warn("Create: invalid rule for member=%s: %v", ownerID, err)
		return nil, fmt.Errorf("%w: %v", ErrInvalidInput, err)
	}

	created, err := s.availabilityRepo.Create(ctx, rule)
	if err != nil {
		s.logger.Error("Create: repository error for member=%s: %v", ownerID, err)
		return nil, fmt.Errorf("%w: Create - repository error: %v", ErrInternal, err)
	}

	s.logger.Info("Create: successfully created rule id=%s for member=%s", created.ID, ownerID)
	return models.FromDomainRule(created), nil
}

// Update обновляет правило доступности
func (s *Service) Update(ctx context.Context, actor *domain.TeamMember, ruleID string, req *models.UpdateRuleRequest) (*models.RuleResponse, error) {
	s.logger.Info("Update: updating rule id=%s by actor=%s", ruleID, actor.ID)

	existing, err := s.getOwnedRule(ctx, actor, ruleID, "Update")
	if err != nil {
		return nil, err
	}

	updated := models.ToDomainRule(existing.TeamMemberID, req.DayOfWeek, req.StartTime, req.EndTime)
	updated.ID = existing.ID
	if err := updated.Validate(); err != nil {
		s.logger.Warn("Update: invalid rule id=%s: %v", ruleID, err)
		return nil, fmt.Errorf("%w: %v", ErrInvalidInput, err)
	}

	if err := s.availabilityRepo.Update(ctx, updated); err != nil {
		if errors.Is(err, availabilityRepo.ErrRuleNotFound) {
			s.logger.Warn("Update: rule id=%s not found during update", ruleID)
			return nil, ErrRuleNotFound
		}
		s.logger.Error("Update: repository error for rule id=%s: %v", ruleID, err)
		return nil, fmt.Errorf("%w: Update - repository error: %v", ErrInternal, err)
	}

	s.logger.Info("Update: successfully updated rule id=%s", ruleID)
	return models.FromDomainRule(updated), nil
}

// Delete удаляет правило доступности
func (s *Service) Delete(ctx context.Context, actor *domain.TeamMember, ruleID string) error {
	s.logger.Info("Delete: deleting rule id=%s by actor=%s", ruleID, actor.ID)

	if _, err := s.getOwnedRule(ctx, actor, ruleID, "Delete"); err != nil {
		return err
	}

	if err := s.availabilityRepo.Delete(ctx, ruleID); err != nil {
		if errors.Is(err, availabilityRepo.ErrRuleNotFound) {
			s.logger.Warn("Delete: rule id=%s not found during delete", ruleID)
			return ErrRuleNotFound
		}
		s.logger.Error("Delete: repository error for rule id=%s: %v", ruleID, err)
		return fmt.Errorf("%w: Delete - repository error: %v", ErrInternal, err)
	}

	s.logger.Info("Delete: successfully deleted rule id=%s", ruleID)
	return nil
}

// getOwnedRule получает правило и проверяет права актора на него
func (s *Service) getOwnedRule(ctx context.Context, actor *domain.TeamMember, ruleID string, op string) (*domain.AvailabilityRule, error) {
	rule, err := s.availabilityRepo.GetByID(ctx, ruleID)
	if err != nil {
		if errors.Is(err, availabilityRepo.ErrRuleNotFound) {
			s.logger.Warn("%s: rule id=%s not found", op, ruleID)
			return nil, ErrRuleNotFound
		}
		s.logger.Error("%s: repository error for rule id=%s: %v", op, ruleID, err)
		return nil, fmt.Errorf("%w: %s - repository error: %v", ErrInternal, op, err)
	}

	if rule.TeamMemberID != actor.ID && !actor.IsAdmin() {
		s.logger.Warn("%s: access denied for actor=%s to rule id=%s", op, actor.ID, ruleID)
		return nil, ErrAccessDenied
	}

	return rule, nil
}
