package get_available_slots

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/forgeline/workshop-booking-service/internal/domain"
	resolveSlots "github.com/forgeline/workshop-booking-service/internal/usecase/resolve_available_slots"
)

type fakeUseCase struct {
	resp *resolveSlots.Response
	err  error
}

func (f *fakeUseCase) Execute(_ context.Context, _ *resolveSlots.Request) (*resolveSlots.Response, error) {
	if f.err != nil {
		return nil, f.err
	}
	return f.resp, nil
}

type nopLogger struct{}

func (nopLogger) Info(string, ...interface{})  {}
func (nopLogger) Warn(string, ...interface{})  {}
func (nopLogger) Error(string, ...interface{}) {}

func getSlots(t *testing.T, h *Handler, query string) *httptest.ResponseRecorder {
	t.Helper()
	req := httptest.NewRequest(http.MethodGet, "/api/v1/available-slots"+query, nil)
	rr := httptest.NewRecorder()
	h.Handle(rr, req)
	return rr
}

func TestHandle_OK(t *testing.T) {
	uc := &fakeUseCase{resp: &resolveSlots.Response{
		Date:  time.Date(2025, 10, 13, 0, 0, 0, 0, time.UTC),
		Slots: []domain.TimeSlot{"9:00 AM", "9:30 AM"},
	}}
	h := NewHandler(uc, nopLogger{})

	rr := getSlots(t, h, "?date=2025-10-13")
	require.Equal(t, http.StatusOK, rr.Code)

	var resp AvailableSlotsResponse
	require.NoError(t, json.Unmarshal(rr.Body.Bytes(), &resp))
	assert.Equal(t, "2025-10-13", resp.Date)
	assert.Equal(t, []string{"9:00 AM", "9:30 AM"}, resp.Slots)
}

func TestHandle_MissingDate(t *testing.T) {
	h := NewHandler(&fakeUseCase{}, nopLogger{})

	rr := getSlots(t, h, "")
	assert.Equal(t, http.StatusBadRequest, rr.Code)
}

func TestHandle_InvalidDate(t *testing.T) {
	h := NewHandler(&fakeUseCase{}, nopLogger{})

	rr := getSlots(t, h, "?date=13.10.2025")
	assert.Equal(t, http.StatusBadRequest, rr.Code)
}

func TestHandle_UseCaseError(t *testing.T) {
	h := NewHandler(&fakeUseCase{err: resolveSlots.ErrInvalidInput}, nopLogger{})

	rr := getSlots(t, h, "?date=2025-10-13")
	assert.Equal(t, http.StatusInternalServerError, rr.Code)
}
