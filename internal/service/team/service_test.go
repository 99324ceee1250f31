package team

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/forgeline/workshop-booking-service/internal/domain"
	teammemberRepo "github.com/forgeline/workshop-booking-service/internal/infra/storage/teammember"
	"github.com/forgeline/workshop-booking-service/internal/service/team/models"
)

const memberID = "aaaaaaaa-aaaa-aaaa-aaaa-aaaaaaaaaaaa"

type fakeRepo struct {
	members []*domain.TeamMember
	deleted []string
}

func (f *fakeRepo) Create(_ context.Context, m *domain.TeamMember) (*domain.TeamMember, error) {
	m.ID = memberID
	f.members = append(f.members, m)
	return m, nil
}

func (f *fakeRepo) List(_ context.Context) ([]*domain.TeamMember, error) {
	return f.members, nil
}

func (f *fakeRepo) Delete(_ context.Context, id string) error {
	for _, m := range f.members {
		if m.ID == id {
			f.deleted = append(f.deleted, id)
			return nil
		}
	}
	return teammemberRepo.ErrMemberNotFound
}

type nopLogger struct{}

func (nopLogger) Info(string, ...interface{})  {}
func (nopLogger) Warn(string, ...interface{})  {}
func (nopLogger) Error(string, ...interface{}) {}

func admin() *domain.TeamMember {
	return &domain.TeamMember{ID: "admin-1", Role: domain.RoleAdmin}
}

func regular() *domain.TeamMember {
	return &domain.TeamMember{ID: "member-1", Role: domain.RoleMember}
}

func validCreateRequest() *models.CreateMemberRequest {
	return &models.CreateMemberRequest{
		UserID: "auth0|12345",
		Name:   "Sam Lee",
		Email:  "sam@example.com",
		Role:   domain.RoleMember,
	}
}

func TestCreate_AdminOnly(t *testing.T) {
	repo := &fakeRepo{}
	svc := NewService(repo, nopLogger{})

	_, err := svc.Create(context.Background(), regular(), validCreateRequest())
	assert.ErrorIs(t, err, ErrAccessDenied)
	assert.Empty(t, repo.members)

	resp, err := svc.Create(context.Background(), admin(), validCreateRequest())
	require.NoError(t, err)
	assert.Equal(t, memberID, resp.ID)
}

func TestCreate_Validation(t *testing.T) {
	tests := []struct {
		name   string
		mutate func(*models.CreateMemberRequest)
	}{
		{"missing user id", func(r *models.CreateMemberRequest) { r.UserID = "" }},
		{"missing name", func(r *models.CreateMemberRequest) { r.Name = " " }},
		{"bad email", func(r *models.CreateMemberRequest) { r.Email = "not-an-email" }},
		{"unknown role", func(r *models.CreateMemberRequest) { r.Role = "owner" }},
	}

	svc := NewService(&fakeRepo{}, nopLogger{})

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			req := validCreateRequest()
			tt.mutate(req)

			_, err := svc.Create(context.Background(), admin(), req)
			assert.ErrorIs(t, err, ErrInvalidInput)
		})
	}
}

func TestDelete_AdminOnly(t *testing.T) {
	repo := &fakeRepo{members: []*domain.TeamMember{{ID: memberID, Role: domain.RoleMember}}}
	svc := NewService(repo, nopLogger{})

	err := svc.Delete(context.Background(), regular(), memberID)
	assert.ErrorIs(t, err, ErrAccessDenied)

	require.NoError(t, svc.Delete(context.Background(), admin(), memberID))
	assert.Equal(t, []string{memberID}, repo.deleted)
}

func TestDelete_NotFound(t *testing.T) {
	svc := NewService(&fakeRepo{}, nopLogger{})

	err := svc.Delete(context.Background(), admin(), memberID)
	assert.ErrorIs(t, err, ErrMemberNotFound)
}

func TestList(t *testing.T) {
	repo := &fakeRepo{members: []*domain.TeamMember{
		{ID: memberID, Name: "Sam Lee", Role: domain.RoleMember},
	}}
	svc := NewService(repo, nopLogger{})

	resp, err := svc.List(context.Background())
	require.NoError(t, err)
	require.Len(t, resp.Members, 1)
	assert.Equal(t, "Sam Lee", resp.Members[0].Name)
}
