package models

import (
	"github.com/forgeline/workshop-booking-service/internal/domain"
	"github.com/forgeline/workshop-booking-service/pkg/types"
)

// Request модели

// CreateRuleRequest запрос на создание правила доступности
// TeamMemberID берётся из актора, админ может указать чужой ID
type CreateRuleRequest struct {
	TeamMemberID *string `json:"teamMemberId,omitempty"`
	DayOfWeek    int     `json:"dayOfWeek"` // 0-6, воскресенье = 0
	StartTime    string  `json:"startTime"` // "09:00"
	EndTime      string  `json:"endTime"`   // "17:00"
}

// UpdateRuleRequest запрос на обновление правила доступности
type UpdateRuleRequest struct {
	DayOfWeek int    `json:"dayOfWeek"`
	StartTime string `json:"startTime"`
	EndTime   string `json:"endTime"`
}

// Response модели

// RuleResponse ответ с данными правила
type RuleResponse struct {
	ID           string `json:"id"`
	TeamMemberID string `json:"teamMemberId"`
	DayOfWeek    int    `json:"dayOfWeek"`
	StartTime    string `json:"startTime"`
	EndTime      string `json:"endTime"`
}

// RuleListResponse ответ со списком правил
type RuleListResponse struct {
	Rules []RuleResponse `json:"rules"`
}

// Методы конвертации

// FromDomainRule конвертирует domain модель в DTO
func FromDomainRule(r *domain.AvailabilityRule) *RuleResponse {
	if r == nil {
		return nil
	}

	return &RuleResponse{
		ID:           r.ID,
		TeamMemberID: r.TeamMemberID,
		DayOfWeek:    r.DayOfWeek,
		StartTime:    r.StartTime.String(),
		EndTime:      r.EndTime.String(),
	}
}

// FromDomainRuleList конвертирует список domain моделей в DTO
func FromDomainRuleList(rules []*domain.AvailabilityRule) *RuleListResponse {
	resp := &RuleListResponse{
		Rules: make([]RuleResponse, 0, len(rules)),
	}
	for _, r := range rules {
		resp.Rules = append(resp.Rules, *FromDomainRule(r))
	}
	return resp
}

// ToDomainRule строит domain модель из полей запроса
func ToDomainRule(teamMemberID string, dayOfWeek int, startTime, endTime string) *domain.AvailabilityRule {
	return &domain.AvailabilityRule{
		TeamMemberID: teamMemberID,
		DayOfWeek:    dayOfWeek,
		StartTime:    types.TimeString(startTime),
		EndTime:      types.TimeString(endTime),
	}
}
