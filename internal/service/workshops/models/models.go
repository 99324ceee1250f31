package models

import "github.com/forgeline/workshop-booking-service/internal/domain"

// WorkshopResponse ответ с данными воркшопа
type WorkshopResponse struct {
	ID          string  `json:"id"`
	Title       string  `json:"title"`
	Description *string `json:"description,omitempty"`
}

// WorkshopListResponse ответ со списком воркшопов
type WorkshopListResponse struct {
	Workshops []WorkshopResponse `json:"workshops"`
}

// FromDomainWorkshopList конвертирует список domain моделей в DTO
func FromDomainWorkshopList(workshops []*domain.Workshop) *WorkshopListResponse {
	resp := &WorkshopListResponse{
		Workshops: make([]WorkshopResponse, 0, len(workshops)),
	}
	for _, w := range workshops {
		resp.Workshops = append(resp.Workshops, WorkshopResponse{
			ID:          w.ID,
			Title:       w.Title,
			Description: w.Description,
		})
	}
	return resp
}
