package submit_appointment

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/forgeline/workshop-booking-service/internal/domain"
	appointmentRepo "github.com/forgeline/workshop-booking-service/internal/infra/storage/appointment"
	workshopRepo "github.com/forgeline/workshop-booking-service/internal/infra/storage/workshop"
	"github.com/forgeline/workshop-booking-service/internal/integrations/mailservice"
	"github.com/forgeline/workshop-booking-service/pkg/ptr"
)

var testDate = time.Date(2025, 10, 13, 0, 0, 0, 0, time.UTC)

type fakeAppointmentRepo struct {
	createErr error
	created   []*domain.Appointment
}

func (f *fakeAppointmentRepo) Create(_ context.Context, a *domain.Appointment) (*domain.Appointment, error) {
	if f.createErr != nil {
		return nil, f.createErr
	}
	a.ID = "11111111-1111-1111-1111-111111111111"
	a.CreatedAt = time.Now()
	f.created = append(f.created, a)
	return a, nil
}

type fakeWorkshopRepo struct {
	err error
}

func (f *fakeWorkshopRepo) GetByID(_ context.Context, id string) (*domain.Workshop, error) {
	if f.err != nil {
		return nil, f.err
	}
	return &domain.Workshop{ID: id, Title: "Innovation Sprint"}, nil
}

type fakeMailClient struct {
	sent []*mailservice.ConfirmationRequest
	err  error
}

func (f *fakeMailClient) SendConfirmationWithGracefulDegradation(_ context.Context, req *mailservice.ConfirmationRequest) error {
	f.sent = append(f.sent, req)
	return f.err
}

type fakeSlotsCache struct {
	invalidated []time.Time
	err         error
}

func (f *fakeSlotsCache) Invalidate(_ context.Context, date time.Time) error {
	f.invalidated = append(f.invalidated, date)
	return f.err
}

// passthroughTxManager выполняет fn без настоящей транзакции
type passthroughTxManager struct {
	calls int
}

func (m *passthroughTxManager) DoSerializable(ctx context.Context, fn func(ctx context.Context) error) error {
	m.calls++
	return fn(ctx)
}

type nopLogger struct{}

func (nopLogger) Info(string, ...interface{})  {}
func (nopLogger) Warn(string, ...interface{})  {}
func (nopLogger) Error(string, ...interface{}) {}

func validRequest() *Request {
	return &Request{
		Date:     testDate,
		TimeSlot: "9:00 AM",
		Name:     "Jamie Doe",
		Email:    "jamie@example.com",
		Company:  "Acme Inc",
	}
}

func newUseCase(repo *fakeAppointmentRepo, mail *fakeMailClient, cache *fakeSlotsCache, tx *passthroughTxManager) *UseCase {
	var mailClient MailClient
	if mail != nil {
		mailClient = mail
	}
	var slotsCache SlotsCache
	if cache != nil {
		slotsCache = cache
	}
	return NewUseCase(repo, &fakeWorkshopRepo{}, mailClient, slotsCache, tx, nopLogger{})
}

func TestExecute_Success(t *testing.T) {
	repo := &fakeAppointmentRepo{}
	mail := &fakeMailClient{}
	cache := &fakeSlotsCache{}
	tx := &passthroughTxManager{}

	uc := newUseCase(repo, mail, cache, tx)

	resp, err := uc.Execute(context.Background(), validRequest())
	require.NoError(t, err)

	assert.NotEmpty(t, resp.ID)
	assert.Equal(t, "pending", resp.Status)
	assert.Equal(t, domain.MeetingTypeVirtual, resp.MeetingType, "empty meeting type defaults to virtual")
	assert.Equal(t, 1, tx.calls, "insert must run inside a serializable transaction")

	require.Len(t, repo.created, 1)
	assert.Equal(t, domain.StatusPending, repo.created[0].Status)

	require.Len(t, mail.sent, 1)
	assert.Equal(t, "jamie@example.com", mail.sent[0].Email)
	assert.Equal(t, "2025-10-13", mail.sent[0].Date)
	assert.Equal(t, "9:00 AM", mail.sent[0].TimeSlot)

	require.Len(t, cache.invalidated, 1)
	assert.Equal(t, testDate, cache.invalidated[0])
}

func TestExecute_ValidationFailsBeforeAnyRemoteCall(t *testing.T) {
	tests := []struct {
		name   string
		mutate func(*Request)
	}{
		{"missing date", func(r *Request) { r.Date = time.Time{} }},
		{"missing slot", func(r *Request) { r.TimeSlot = "" }},
		{"unknown slot", func(r *Request) { r.TimeSlot = "5:30 PM" }},
		{"missing name", func(r *Request) { r.Name = "  " }},
		{"missing company", func(r *Request) { r.Company = "" }},
		{"missing email", func(r *Request) { r.Email = "" }},
		{"email without at", func(r *Request) { r.Email = "not-an-email.com" }},
		{"email without dot", func(r *Request) { r.Email = "not-an-email@com" }},
		{"plain bad email", func(r *Request) { r.Email = "not-an-email" }},
		{"unknown meeting type", func(r *Request) { r.MeetingType = "telepathic" }},
		{"zero attendees", func(r *Request) { r.Attendees = ptr.Ptr(0) }},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			repo := &fakeAppointmentRepo{}
			tx := &passthroughTxManager{}
			uc := newUseCase(repo, nil, nil, tx)

			req := validRequest()
			tt.mutate(req)

			_, err := uc.Execute(context.Background(), req)
			assert.ErrorIs(t, err, ErrInvalidInput)
			assert.Zero(t, tx.calls, "no data-layer call on validation failure")
			assert.Empty(t, repo.created)
		})
	}
}

func TestExecute_SlotConflict(t *testing.T) {
	repo := &fakeAppointmentRepo{createErr: appointmentRepo.ErrSlotConflict}
	mail := &fakeMailClient{}
	cache := &fakeSlotsCache{}

	uc := newUseCase(repo, mail, cache, &passthroughTxManager{})

	_, err := uc.Execute(context.Background(), validRequest())
	assert.ErrorIs(t, err, ErrSlotTaken)
	assert.NotErrorIs(t, err, ErrInternal, "conflict must be distinguishable from transient failures")
	assert.Empty(t, mail.sent)
	assert.Empty(t, cache.invalidated)
}

func TestExecute_TransientFailure(t *testing.T) {
	repo := &fakeAppointmentRepo{createErr: errors.New("connection refused")}

	uc := newUseCase(repo, nil, nil, &passthroughTxManager{})

	_, err := uc.Execute(context.Background(), validRequest())
	assert.ErrorIs(t, err, ErrInternal)
	assert.NotErrorIs(t, err, ErrSlotTaken)
}

func TestExecute_WorkshopNotFound(t *testing.T) {
	uc := NewUseCase(
		&fakeAppointmentRepo{},
		&fakeWorkshopRepo{err: workshopRepo.ErrWorkshopNotFound},
		nil, nil,
		&passthroughTxManager{},
		nopLogger{},
	)

	req := validRequest()
	req.WorkshopID = ptr.Ptr("22222222-2222-2222-2222-222222222222")

	_, err := uc.Execute(context.Background(), req)
	assert.ErrorIs(t, err, ErrWorkshopNotFound)
}

func TestExecute_MailFailureDoesNotFailBooking(t *testing.T) {
	mail := &fakeMailClient{err: mailservice.ErrServiceDegraded}

	uc := newUseCase(&fakeAppointmentRepo{}, mail, nil, &passthroughTxManager{})

	resp, err := uc.Execute(context.Background(), validRequest())
	require.NoError(t, err, "booking succeeds even when the confirmation email fails")
	assert.NotEmpty(t, resp.ID)
}

func TestExecute_CacheInvalidationFailureDoesNotFailBooking(t *testing.T) {
	cache := &fakeSlotsCache{err: errors.New("redis down")}

	uc := newUseCase(&fakeAppointmentRepo{}, nil, cache, &passthroughTxManager{})

	_, err := uc.Execute(context.Background(), validRequest())
	require.NoError(t, err)
}

func TestExecute_SecondSubmissionConflicts(t *testing.T) {
	// Повторная отправка тех же полей - вторая попытка занять тот же слот
	repo := &fakeAppointmentRepo{}
	uc := newUseCase(repo, nil, nil, &passthroughTxManager{})

	_, err := uc.Execute(context.Background(), validRequest())
	require.NoError(t, err)

	// После успешной первой вставки БД вернула бы нарушение уникальности
	repo.createErr = appointmentRepo.ErrSlotConflict

	_, err = uc.Execute(context.Background(), validRequest())
	assert.ErrorIs(t, err, ErrSlotTaken)
	assert.Len(t, repo.created, 1, "no second row is created")
}
