package models

import (
	"time"

	"github.com/forgeline/workshop-booking-service/internal/domain"
)

// Request модели

// CreateMemberRequest запрос на добавление сотрудника
type CreateMemberRequest struct {
	UserID string `json:"userId"`
	Name   string `json:"name"`
	Email  string `json:"email"`
	Role   string `json:"role"` // admin / member
}

// Response модели

// MemberResponse ответ с данными сотрудника
type MemberResponse struct {
	ID        string    `json:"id"`
	UserID    string    `json:"userId"`
	Name      string    `json:"name"`
	Email     string    `json:"email"`
	Role      string    `json:"role"`
	CreatedAt time.Time `json:"createdAt"`
}

// MemberListResponse ответ со списком сотрудников
type MemberListResponse struct {
	Members []MemberResponse `json:"members"`
}

// Методы конвертации

// FromDomainMember конвертирует domain модель в DTO
func FromDomainMember(m *domain.TeamMember) *MemberResponse {
	if m == nil {
		return nil
	}

	return &MemberResponse{
		ID:        m.ID,
		UserID:    m.UserID,
		Name:      m.Name,
		Email:     m.Email,
		Role:      m.Role,
		CreatedAt: m.CreatedAt,
	}
}

// FromDomainMemberList конвертирует список domain моделей в DTO
func FromDomainMemberList(members []*domain.TeamMember) *MemberListResponse {
	resp := &MemberListResponse{
		Members: make([]MemberResponse, 0, len(members)),
	}
	for _, m := range members {
		resp.Members = append(resp.Members, *FromDomainMember(m))
	}
	return resp
}
