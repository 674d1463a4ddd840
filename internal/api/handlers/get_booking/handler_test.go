package get_booking

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/google/uuid"
	"github.com/gorilla/mux"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"

	"github.com/m04kA/SMC-FitnessBookingService/internal/api/middleware"
	"github.com/m04kA/SMC-FitnessBookingService/internal/service/bookings"
	"github.com/m04kA/SMC-FitnessBookingService/internal/service/bookings/models"
)

type MockBookingService struct{ mock.Mock }

func (m *MockBookingService) GetByID(ctx context.Context, id int64, profileID uuid.UUID) (*models.BookingResponse, error) {
	args := m.Called(ctx, id, profileID)
	if r, ok := args.Get(0).(*models.BookingResponse); ok {
		return r, args.Error(1)
	}
	return nil, args.Error(1)
}

type nopLogger struct{}

func (nopLogger) Info(string, ...interface{})  {}
func (nopLogger) Warn(string, ...interface{})  {}
func (nopLogger) Error(string, ...interface{}) {}

func TestHandle(t *testing.T) {
	owner := uuid.New()

	tests := []struct {
		name       string
		target     string
		header     string
		resp       *models.BookingResponse
		err        error
		wantStatus int
	}{
		{"owner", "/bookings/5", owner.String(), &models.BookingResponse{ID: 5, ProfileID: owner}, nil, http.StatusOK},
		{"no identity", "/bookings/5", "", nil, nil, http.StatusUnauthorized},
		{"bad id", "/bookings/x", owner.String(), nil, nil, http.StatusBadRequest},
		{"not found", "/bookings/5", owner.String(), nil, bookings.ErrBookingNotFound, http.StatusNotFound},
		{"foreign booking", "/bookings/5", owner.String(), nil, bookings.ErrAccessDenied, http.StatusForbidden},
		{"store down", "/bookings/5", owner.String(), nil, bookings.ErrStoreUnavailable, http.StatusServiceUnavailable},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			svc := &MockBookingService{}
			svc.On("GetByID", mock.Anything, int64(5), owner).Return(tt.resp, tt.err).Maybe()

			router := mux.NewRouter()
			router.Use(middleware.Auth)
			router.HandleFunc("/bookings/{bookingId}", NewHandler(svc, nopLogger{}).Handle)

			req := httptest.NewRequest(http.MethodGet, tt.target, nil)
			if tt.header != "" {
				req.Header.Set(middleware.ProfileIDHeader, tt.header)
			}
			w := httptest.NewRecorder()
			router.ServeHTTP(w, req)

			assert.Equal(t, tt.wantStatus, w.Code)
		})
	}
}
