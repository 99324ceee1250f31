package resolve_available_slots

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/forgeline/workshop-booking-service/internal/domain"
	"github.com/forgeline/workshop-booking-service/pkg/types"
)

// 2025-10-13 - понедельник
var monday = time.Date(2025, 10, 13, 0, 0, 0, 0, time.UTC)

type fakeAppointmentRepo struct {
	booked []domain.TimeSlot
	err    error
	calls  int
}

func (f *fakeAppointmentRepo) GetBookedSlots(_ context.Context, _ time.Time) ([]domain.TimeSlot, error) {
	f.calls++
	if f.err != nil {
		return nil, f.err
	}
	return f.booked, nil
}

type fakeAvailabilityRepo struct {
	rules     []*domain.AvailabilityRule
	listErr   error
	existsErr error
}

func (f *fakeAvailabilityRepo) ListByDayOfWeek(_ context.Context, dayOfWeek int) ([]*domain.AvailabilityRule, error) {
	if f.listErr != nil {
		return nil, f.listErr
	}
	matched := make([]*domain.AvailabilityRule, 0)
	for _, r := range f.rules {
		if r.DayOfWeek == dayOfWeek {
			matched = append(matched, r)
		}
	}
	return matched, nil
}

func (f *fakeAvailabilityRepo) ExistsForDayAndTime(_ context.Context, dayOfWeek int, t types.TimeString) (bool, error) {
	if f.existsErr != nil {
		return false, f.existsErr
	}
	for _, r := range f.rules {
		if r.Covers(dayOfWeek, t) {
			return true, nil
		}
	}
	return false, nil
}

type fakeCache struct {
	stored map[string][]domain.TimeSlot
	getErr error
	setErr error
}

func newFakeCache() *fakeCache {
	return &fakeCache{stored: make(map[string][]domain.TimeSlot)}
}

func (f *fakeCache) Get(_ context.Context, date time.Time) ([]domain.TimeSlot, error) {
	if f.getErr != nil {
		return nil, f.getErr
	}
	slots, ok := f.stored[date.Format(domain.DateFormat)]
	if !ok {
		return nil, errors.New("cache miss")
	}
	return slots, nil
}

func (f *fakeCache) Set(_ context.Context, date time.Time, slots []domain.TimeSlot) error {
	if f.setErr != nil {
		return f.setErr
	}
	f.stored[date.Format(domain.DateFormat)] = slots
	return nil
}

type nopLogger struct{}

func (nopLogger) Info(string, ...interface{})  {}
func (nopLogger) Warn(string, ...interface{})  {}
func (nopLogger) Error(string, ...interface{}) {}

func mondayRule() *domain.AvailabilityRule {
	return &domain.AvailabilityRule{DayOfWeek: 1, StartTime: "09:00", EndTime: "17:00"}
}

func TestExecute_StaffedWindowFiltersSlots(t *testing.T) {
	// Правило пн 09:00-17:00, записей нет: "5:30 PM" вне окна
	uc := NewUseCase(
		&fakeAppointmentRepo{},
		&fakeAvailabilityRepo{rules: []*domain.AvailabilityRule{mondayRule()}},
		nil,
		nopLogger{},
	)

	resp, err := uc.Execute(context.Background(), &Request{
		Date:           monday,
		CandidateSlots: []domain.TimeSlot{"9:00 AM", "9:30 AM", "5:30 PM"},
	})

	require.NoError(t, err)
	assert.Equal(t, []domain.TimeSlot{"9:00 AM", "9:30 AM"}, resp.Slots)
}

func TestExecute_BookedSlotExcluded(t *testing.T) {
	uc := NewUseCase(
		&fakeAppointmentRepo{booked: []domain.TimeSlot{"9:00 AM"}},
		&fakeAvailabilityRepo{rules: []*domain.AvailabilityRule{mondayRule()}},
		nil,
		nopLogger{},
	)

	resp, err := uc.Execute(context.Background(), &Request{
		Date:           monday,
		CandidateSlots: []domain.TimeSlot{"9:00 AM", "9:30 AM"},
	})

	require.NoError(t, err)
	assert.Equal(t, []domain.TimeSlot{"9:30 AM"}, resp.Slots)
}

func TestExecute_PreservesCandidateOrder(t *testing.T) {
	uc := NewUseCase(
		&fakeAppointmentRepo{booked: []domain.TimeSlot{"10:30 AM", "2:00 PM"}},
		&fakeAvailabilityRepo{rules: []*domain.AvailabilityRule{mondayRule()}},
		nil,
		nopLogger{},
	)

	resp, err := uc.Execute(context.Background(), &Request{Date: monday})
	require.NoError(t, err)

	// Результат - подмножество канонической выборки в её исходном порядке
	pos := make(map[domain.TimeSlot]int, len(domain.DefaultTimeSlots))
	for i, s := range domain.DefaultTimeSlots {
		pos[s] = i
	}

	prev := -1
	for _, s := range resp.Slots {
		idx, known := pos[s]
		require.True(t, known, "slot %s must come from the candidate list", s)
		assert.Greater(t, idx, prev, "order must follow the candidate list")
		prev = idx
	}

	assert.NotContains(t, resp.Slots, domain.TimeSlot("10:30 AM"))
	assert.NotContains(t, resp.Slots, domain.TimeSlot("2:00 PM"))
}

func TestExecute_NoRulesForWeekday(t *testing.T) {
	// Правило только на понедельник, запрашиваем вторник
	tuesday := monday.AddDate(0, 0, 1)

	uc := NewUseCase(
		&fakeAppointmentRepo{},
		&fakeAvailabilityRepo{rules: []*domain.AvailabilityRule{mondayRule()}},
		nil,
		nopLogger{},
	)

	resp, err := uc.Execute(context.Background(), &Request{Date: tuesday})
	require.NoError(t, err)
	assert.Empty(t, resp.Slots)
}

func TestExecute_BookedLookupFailureDegradesToEmptySet(t *testing.T) {
	// Ошибка выборки занятых слотов не роняет запрос:
	// занятых считается ноль, остаётся фильтр по доступности
	uc := NewUseCase(
		&fakeAppointmentRepo{err: errors.New("connection refused")},
		&fakeAvailabilityRepo{rules: []*domain.AvailabilityRule{mondayRule()}},
		nil,
		nopLogger{},
	)

	resp, err := uc.Execute(context.Background(), &Request{
		Date:           monday,
		CandidateSlots: []domain.TimeSlot{"9:00 AM", "9:30 AM"},
	})

	require.NoError(t, err)
	assert.Equal(t, []domain.TimeSlot{"9:00 AM", "9:30 AM"}, resp.Slots)
}

func TestExecute_RulesLookupFailureDegradesToUnstaffed(t *testing.T) {
	uc := NewUseCase(
		&fakeAppointmentRepo{},
		&fakeAvailabilityRepo{listErr: errors.New("connection refused")},
		nil,
		nopLogger{},
	)

	resp, err := uc.Execute(context.Background(), &Request{Date: monday})
	require.NoError(t, err)
	assert.Empty(t, resp.Slots)
}

func TestExecute_UnknownCandidateLabelSkipped(t *testing.T) {
	uc := NewUseCase(
		&fakeAppointmentRepo{},
		&fakeAvailabilityRepo{rules: []*domain.AvailabilityRule{mondayRule()}},
		nil,
		nopLogger{},
	)

	resp, err := uc.Execute(context.Background(), &Request{
		Date:           monday,
		CandidateSlots: []domain.TimeSlot{"9:00 AM", "halfpastnine", "10:00 AM"},
	})

	require.NoError(t, err)
	assert.Equal(t, []domain.TimeSlot{"9:00 AM", "10:00 AM"}, resp.Slots)
}

func TestExecute_ZeroDateRejected(t *testing.T) {
	uc := NewUseCase(&fakeAppointmentRepo{}, &fakeAvailabilityRepo{}, nil, nopLogger{})

	_, err := uc.Execute(context.Background(), &Request{})
	assert.ErrorIs(t, err, ErrInvalidInput)
}

func TestExecute_CacheHitSkipsRepositories(t *testing.T) {
	repo := &fakeAppointmentRepo{}
	cache := newFakeCache()
	cache.stored[monday.Format(domain.DateFormat)] = []domain.TimeSlot{"9:00 AM"}

	uc := NewUseCase(repo, &fakeAvailabilityRepo{}, cache, nopLogger{})

	resp, err := uc.Execute(context.Background(), &Request{Date: monday})
	require.NoError(t, err)
	assert.Equal(t, []domain.TimeSlot{"9:00 AM"}, resp.Slots)
	assert.Zero(t, repo.calls)
}

func TestExecute_CacheMissPopulatesCache(t *testing.T) {
	cache := newFakeCache()

	uc := NewUseCase(
		&fakeAppointmentRepo{},
		&fakeAvailabilityRepo{rules: []*domain.AvailabilityRule{mondayRule()}},
		cache,
		nopLogger{},
	)

	resp, err := uc.Execute(context.Background(), &Request{Date: monday})
	require.NoError(t, err)
	assert.Equal(t, resp.Slots, cache.stored[monday.Format(domain.DateFormat)])
}

func TestExecute_CustomCandidatesBypassCache(t *testing.T) {
	cache := newFakeCache()
	cache.stored[monday.Format(domain.DateFormat)] = []domain.TimeSlot{"4:30 PM"}

	uc := NewUseCase(
		&fakeAppointmentRepo{},
		&fakeAvailabilityRepo{rules: []*domain.AvailabilityRule{mondayRule()}},
		cache,
		nopLogger{},
	)

	resp, err := uc.Execute(context.Background(), &Request{
		Date:           monday,
		CandidateSlots: []domain.TimeSlot{"9:00 AM"},
	})

	require.NoError(t, err)
	assert.Equal(t, []domain.TimeSlot{"9:00 AM"}, resp.Slots)
}

func TestExecute_CacheFailuresDoNotAffectResult(t *testing.T) {
	cache := newFakeCache()
	cache.getErr = errors.New("redis down")
	cache.setErr = errors.New("redis down")

	uc := NewUseCase(
		&fakeAppointmentRepo{},
		&fakeAvailabilityRepo{rules: []*domain.AvailabilityRule{mondayRule()}},
		cache,
		nopLogger{},
	)

	resp, err := uc.Execute(context.Background(), &Request{
		Date:           monday,
		CandidateSlots: []domain.TimeSlot{"9:00 AM"},
	})

	require.NoError(t, err)
	assert.Equal(t, []domain.TimeSlot{"9:00 AM"}, resp.Slots)
}

func TestGetBookedTimeSlots_DegradesToEmpty(t *testing.T) {
	uc := NewUseCase(
		&fakeAppointmentRepo{err: errors.New("connection refused")},
		&fakeAvailabilityRepo{},
		nil,
		nopLogger{},
	)

	slots := uc.GetBookedTimeSlots(context.Background(), monday)
	assert.NotNil(t, slots)
	assert.Empty(t, slots)
}

func TestGetBookedTimeSlots_Idempotent(t *testing.T) {
	uc := NewUseCase(
		&fakeAppointmentRepo{booked: []domain.TimeSlot{"9:00 AM", "1:00 PM"}},
		&fakeAvailabilityRepo{},
		nil,
		nopLogger{},
	)

	first := uc.GetBookedTimeSlots(context.Background(), monday)
	second := uc.GetBookedTimeSlots(context.Background(), monday)
	assert.Equal(t, first, second)
}

func TestIsStaffAvailable(t *testing.T) {
	repo := &fakeAvailabilityRepo{rules: []*domain.AvailabilityRule{mondayRule()}}
	uc := NewUseCase(&fakeAppointmentRepo{}, repo, nil, nopLogger{})

	ctx := context.Background()

	assert.True(t, uc.IsStaffAvailable(ctx, 1, "9:00 AM"))
	assert.True(t, uc.IsStaffAvailable(ctx, 1, "4:30 PM"))
	assert.False(t, uc.IsStaffAvailable(ctx, 2, "9:00 AM"), "no rule for Tuesday")
	assert.False(t, uc.IsStaffAvailable(ctx, 1, "bogus"), "unknown label degrades to false")

	repo.existsErr = errors.New("connection refused")
	assert.False(t, uc.IsStaffAvailable(ctx, 1, "9:00 AM"), "lookup failure degrades to false")
}

func TestIsStaffAvailable_InclusiveBounds(t *testing.T) {
	// Окно ровно до 16:30: слот "4:30 PM" попадает по включительной границе
	repo := &fakeAvailabilityRepo{rules: []*domain.AvailabilityRule{
		{DayOfWeek: 1, StartTime: "09:00", EndTime: "16:30"},
	}}
	uc := NewUseCase(&fakeAppointmentRepo{}, repo, nil, nopLogger{})

	assert.True(t, uc.IsStaffAvailable(context.Background(), 1, "4:30 PM"))
	assert.True(t, uc.IsStaffAvailable(context.Background(), 1, "9:00 AM"))
}
