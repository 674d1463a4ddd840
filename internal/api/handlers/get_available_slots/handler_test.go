package get_available_slots

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/gorilla/mux"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"github.com/m04kA/SMC-FitnessBookingService/internal/domain"
	getAvailableSlots "github.com/m04kA/SMC-FitnessBookingService/internal/usecase/get_available_slots"
)

type MockUseCase struct{ mock.Mock }

func (m *MockUseCase) Execute(ctx context.Context, req *getAvailableSlots.Request) (*getAvailableSlots.Response, error) {
	args := m.Called(ctx, req)
	if r, ok := args.Get(0).(*getAvailableSlots.Response); ok {
		return r, args.Error(1)
	}
	return nil, args.Error(1)
}

type nopLogger struct{}

func (nopLogger) Info(string, ...interface{})  {}
func (nopLogger) Warn(string, ...interface{})  {}
func (nopLogger) Error(string, ...interface{}) {}

func serve(h *Handler, target string) *httptest.ResponseRecorder {
	router := mux.NewRouter()
	router.HandleFunc("/courses/{courseId}/available-slots", h.Handle).Methods(http.MethodGet)
	w := httptest.NewRecorder()
	router.ServeHTTP(w, httptest.NewRequest(http.MethodGet, target, nil))
	return w
}

func TestHandleSuccess(t *testing.T) {
	tokyo := time.FixedZone("JST", 9*3600)
	start := time.Date(2026, 10, 15, 9, 0, 0, 0, tokyo)
	available, total := 3, 12

	uc := &MockUseCase{}
	uc.On("Execute", mock.Anything, &getAvailableSlots.Request{CourseID: 2, Date: time.Date(2026, 10, 15, 0, 0, 0, 0, time.UTC)}).
		Return(&getAvailableSlots.Response{
			CourseID:   2,
			CourseType: domain.CourseTypeYoga,
			Date:       time.Date(2026, 10, 15, 0, 0, 0, 0, tokyo),
			IsOpen:     true,
			Slots:      []getAvailableSlots.Slot{{StartTime: start, EndTime: start.Add(time.Hour), AvailableSpots: &available, TotalSpots: &total}},
		}, nil)

	w := serve(NewHandler(uc, nopLogger{}), "/courses/2/available-slots?date=2026-10-15")

	require.Equal(t, http.StatusOK, w.Code)
	var body AvailableSlotsResponse
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &body))
	assert.Equal(t, "2026-10-15", body.Date)
	require.Len(t, body.Slots, 1)
	assert.Equal(t, "2026-10-15T09:00:00+09:00", body.Slots[0].StartTime)
	assert.Equal(t, 3, *body.Slots[0].AvailableSpots)
}

func TestHandleErrors(t *testing.T) {
	tests := []struct {
		name       string
		target     string
		ucErr      error
		wantStatus int
	}{
		{"bad course id", "/courses/abc/available-slots?date=2026-10-15", nil, http.StatusBadRequest},
		{"missing date", "/courses/2/available-slots", nil, http.StatusBadRequest},
		{"bad date", "/courses/2/available-slots?date=15.10.2026", nil, http.StatusBadRequest},
		{"course not found", "/courses/2/available-slots?date=2026-10-15", getAvailableSlots.ErrCourseNotFound, http.StatusNotFound},
		{"out of horizon", "/courses/2/available-slots?date=2026-10-15", getAvailableSlots.ErrInvalidDateRange, http.StatusUnprocessableEntity},
		{"store unavailable", "/courses/2/available-slots?date=2026-10-15", getAvailableSlots.ErrStoreUnavailable, http.StatusServiceUnavailable},
		{"internal", "/courses/2/available-slots?date=2026-10-15", getAvailableSlots.ErrInternal, http.StatusInternalServerError},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			uc := &MockUseCase{}
			if tt.ucErr != nil {
				uc.On("Execute", mock.Anything, mock.Anything).Return(nil, tt.ucErr)
			}

			w := serve(NewHandler(uc, nopLogger{}), tt.target)

			assert.Equal(t, tt.wantStatus, w.Code)
			if tt.ucErr == nil {
				uc.AssertNotCalled(t, "Execute", mock.Anything, mock.Anything)
			}
		})
	}
}
