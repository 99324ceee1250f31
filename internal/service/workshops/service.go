package workshops

import (
	"context"
	"fmt"

	"github.com/forgeline/workshop-booking-service/internal/service/workshops/models"
)

// Service сервис каталога воркшопов
type Service struct {
	workshopRepo WorkshopRepository
	logger       Logger
}

// NewService создает новый экземпляр сервиса каталога
func NewService(workshopRepo WorkshopRepository, logger Logger) *Service {
	return &Service{
		workshopRepo: workshopRepo,
		logger:       logger,
	}
}

// List получает список воркшопов
func (s *Service) List(ctx context.Context) (*models.WorkshopListResponse, error) {
	workshops, err := s.workshopRepo.List(ctx)
	if err != nil {
		s.logger.Error("List: repository error: %v", err)
		return nil, fmt.Errorf("%w: List - repository error: %v", ErrInternal, err)
	}

	s.logger.Info("List: successfully fetched %d workshops", len(workshops))
	return models.FromDomainWorkshopList(workshops), nil
}
