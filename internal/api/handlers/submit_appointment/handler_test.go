package submit_appointment

import (
	"bytes"
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	submitAppointment "github.com/forgeline/workshop-booking-service/internal/usecase/submit_appointment"
)

type fakeUseCase struct {
	resp *submitAppointment.Response
	err  error
	got  *submitAppointment.Request
}

func (f *fakeUseCase) Execute(_ context.Context, req *submitAppointment.Request) (*submitAppointment.Response, error) {
	f.got = req
	if f.err != nil {
		return nil, f.err
	}
	return f.resp, nil
}

type nopLogger struct{}

func (nopLogger) Info(string, ...interface{})  {}
func (nopLogger) Warn(string, ...interface{})  {}
func (nopLogger) Error(string, ...interface{}) {}

func postAppointment(t *testing.T, h *Handler, body string) *httptest.ResponseRecorder {
	t.Helper()
	req := httptest.NewRequest(http.MethodPost, "/api/v1/appointments", bytes.NewBufferString(body))
	rr := httptest.NewRecorder()
	h.Handle(rr, req)
	return rr
}

func TestHandle_Created(t *testing.T) {
	uc := &fakeUseCase{resp: &submitAppointment.Response{
		ID:          "11111111-1111-1111-1111-111111111111",
		Date:        time.Date(2025, 10, 13, 0, 0, 0, 0, time.UTC),
		TimeSlot:    "9:00 AM",
		Name:        "Jamie Doe",
		Email:       "jamie@example.com",
		Company:     "Acme Inc",
		MeetingType: "virtual",
		Status:      "pending",
		CreatedAt:   time.Date(2025, 10, 1, 12, 0, 0, 0, time.UTC),
	}}
	h := NewHandler(uc, nopLogger{})

	rr := postAppointment(t, h,
		`{"date":"2025-10-13","timeSlot":"9:00 AM","name":"Jamie Doe","email":"jamie@example.com","company":"Acme Inc"}`)

	require.Equal(t, http.StatusCreated, rr.Code)

	var resp AppointmentResponse
	require.NoError(t, json.Unmarshal(rr.Body.Bytes(), &resp))
	assert.Equal(t, "pending", resp.Status)
	assert.Equal(t, "2025-10-13", resp.Date)
	assert.Equal(t, "9:00 AM", resp.TimeSlot)

	require.NotNil(t, uc.got)
	assert.Equal(t, "Jamie Doe", uc.got.Name)
}

func TestHandle_InvalidBody(t *testing.T) {
	h := NewHandler(&fakeUseCase{}, nopLogger{})

	rr := postAppointment(t, h, `{not json`)
	assert.Equal(t, http.StatusBadRequest, rr.Code)
}

func TestHandle_InvalidDate(t *testing.T) {
	h := NewHandler(&fakeUseCase{}, nopLogger{})

	rr := postAppointment(t, h,
		`{"date":"13.10.2025","timeSlot":"9:00 AM","name":"Jamie","email":"j@e.com","company":"Acme"}`)
	assert.Equal(t, http.StatusBadRequest, rr.Code)
}

func TestHandle_SlotTaken(t *testing.T) {
	h := NewHandler(&fakeUseCase{err: submitAppointment.ErrSlotTaken}, nopLogger{})

	rr := postAppointment(t, h,
		`{"date":"2025-10-13","timeSlot":"9:00 AM","name":"Jamie","email":"j@e.com","company":"Acme"}`)
	assert.Equal(t, http.StatusConflict, rr.Code)
}

func TestHandle_ValidationError(t *testing.T) {
	h := NewHandler(&fakeUseCase{err: submitAppointment.ErrInvalidInput}, nopLogger{})

	rr := postAppointment(t, h,
		`{"date":"2025-10-13","timeSlot":"9:00 AM","name":"","email":"not-an-email","company":"Acme"}`)
	assert.Equal(t, http.StatusBadRequest, rr.Code)
}

func TestHandle_WorkshopNotFound(t *testing.T) {
	h := NewHandler(&fakeUseCase{err: submitAppointment.ErrWorkshopNotFound}, nopLogger{})

	rr := postAppointment(t, h,
		`{"workshopId":"22222222-2222-2222-2222-222222222222","date":"2025-10-13","timeSlot":"9:00 AM","name":"Jamie","email":"j@e.com","company":"Acme"}`)
	assert.Equal(t, http.StatusNotFound, rr.Code)
}

func TestHandle_InternalError(t *testing.T) {
	h := NewHandler(&fakeUseCase{err: submitAppointment.ErrInternal}, nopLogger{})

	rr := postAppointment(t, h,
		`{"date":"2025-10-13","timeSlot":"9:00 AM","name":"Jamie","email":"j@e.com","company":"Acme"}`)
	assert.Equal(t, http.StatusInternalServerError, rr.Code)
}
