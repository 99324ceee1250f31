package appointments

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/forgeline/workshop-booking-service/internal/domain"
	appointmentRepo "github.com/forgeline/workshop-booking-service/internal/infra/storage/appointment"
	"github.com/forgeline/workshop-booking-service/internal/service/appointments/models"
	"github.com/forgeline/workshop-booking-service/pkg/ptr"
)

type fakeRepo struct {
	byID      map[string]*domain.Appointment
	listed    []*domain.Appointment
	listErr   error
	updateErr error
	updates   map[string]domain.AppointmentStatus
}

func newFakeRepo() *fakeRepo {
	return &fakeRepo{
		byID:    map[string]*domain.Appointment{},
		updates: map[string]domain.AppointmentStatus{},
	}
}

func (f *fakeRepo) GetByID(_ context.Context, id string) (*domain.Appointment, error) {
	a, ok := f.byID[id]
	if !ok {
		return nil, appointmentRepo.ErrAppointmentNotFound
	}
	return a, nil
}

func (f *fakeRepo) ListWithFilter(_ context.Context, _ domain.AppointmentsFilter) ([]*domain.Appointment, error) {
	if f.listErr != nil {
		return nil, f.listErr
	}
	return f.listed, nil
}

func (f *fakeRepo) UpdateStatus(_ context.Context, id string, status domain.AppointmentStatus) error {
	if f.updateErr != nil {
		return f.updateErr
	}
	f.updates[id] = status
	return nil
}

type nopLogger struct{}

func (nopLogger) Info(string, ...interface{})  {}
func (nopLogger) Warn(string, ...interface{})  {}
func (nopLogger) Error(string, ...interface{}) {}

const apptID = "11111111-1111-1111-1111-111111111111"

func pendingAppointment() *domain.Appointment {
	return &domain.Appointment{
		ID:       apptID,
		Date:     time.Date(2025, 10, 13, 0, 0, 0, 0, time.UTC),
		TimeSlot: "9:00 AM",
		Name:     "Jamie Doe",
		Email:    "jamie@example.com",
		Company:  "Acme Inc",
		Status:   domain.StatusPending,
	}
}

func TestGetByID(t *testing.T) {
	repo := newFakeRepo()
	repo.byID[apptID] = pendingAppointment()

	svc := NewService(repo, nopLogger{})

	resp, err := svc.GetByID(context.Background(), apptID)
	require.NoError(t, err)
	assert.Equal(t, apptID, resp.ID)
	assert.Equal(t, "2025-10-13", resp.Date)
	assert.Equal(t, "9:00 AM", resp.TimeSlot)
	assert.Equal(t, "pending", resp.Status)
}

func TestGetByID_NotFound(t *testing.T) {
	svc := NewService(newFakeRepo(), nopLogger{})

	_, err := svc.GetByID(context.Background(), apptID)
	assert.ErrorIs(t, err, ErrAppointmentNotFound)
}

func TestList_WithStatusFilter(t *testing.T) {
	repo := newFakeRepo()
	repo.listed = []*domain.Appointment{pendingAppointment()}

	svc := NewService(repo, nopLogger{})

	resp, err := svc.List(context.Background(), &models.ListAppointmentsRequest{
		Status: ptr.Ptr("pending"),
	})
	require.NoError(t, err)
	assert.Len(t, resp.Appointments, 1)
}

func TestList_InvalidStatusFilter(t *testing.T) {
	svc := NewService(newFakeRepo(), nopLogger{})

	_, err := svc.List(context.Background(), &models.ListAppointmentsRequest{
		Status: ptr.Ptr("archived"),
	})
	assert.ErrorIs(t, err, ErrInvalidInput)
}

func TestList_RepoError(t *testing.T) {
	repo := newFakeRepo()
	repo.listErr = errors.New("connection refused")

	svc := NewService(repo, nopLogger{})

	_, err := svc.List(context.Background(), &models.ListAppointmentsRequest{})
	assert.ErrorIs(t, err, ErrInternal)
}

func TestUpdateStatus(t *testing.T) {
	repo := newFakeRepo()
	repo.byID[apptID] = pendingAppointment()

	svc := NewService(repo, nopLogger{})

	err := svc.UpdateStatus(context.Background(), apptID, &models.UpdateStatusRequest{Status: "confirmed"})
	require.NoError(t, err)
	assert.Equal(t, domain.StatusConfirmed, repo.updates[apptID])
}

func TestUpdateStatus_InvalidStatus(t *testing.T) {
	repo := newFakeRepo()
	repo.byID[apptID] = pendingAppointment()

	svc := NewService(repo, nopLogger{})

	err := svc.UpdateStatus(context.Background(), apptID, &models.UpdateStatusRequest{Status: "done"})
	assert.ErrorIs(t, err, ErrInvalidStatus)
	assert.Empty(t, repo.updates)
}

func TestUpdateStatus_CancelledIsTerminal(t *testing.T) {
	repo := newFakeRepo()
	cancelled := pendingAppointment()
	cancelled.Status = domain.StatusCancelled
	repo.byID[apptID] = cancelled

	svc := NewService(repo, nopLogger{})

	err := svc.UpdateStatus(context.Background(), apptID, &models.UpdateStatusRequest{Status: "confirmed"})
	assert.ErrorIs(t, err, ErrInvalidTransition)
	assert.Empty(t, repo.updates)
}

func TestUpdateStatus_NotFound(t *testing.T) {
	svc := NewService(newFakeRepo(), nopLogger{})

	err := svc.UpdateStatus(context.Background(), apptID, &models.UpdateStatusRequest{Status: "confirmed"})
	assert.ErrorIs(t, err, ErrAppointmentNotFound)
}
