package get_profile_bookings

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/google/uuid"
	"github.com/gorilla/mux"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"github.com/m04kA/SMC-FitnessBookingService/internal/api/middleware"
	"github.com/m04kA/SMC-FitnessBookingService/internal/service/bookings"
	"github.com/m04kA/SMC-FitnessBookingService/internal/service/bookings/models"
)

type MockBookingService struct{ mock.Mock }

func (m *MockBookingService) GetProfileBookings(ctx context.Context, req *models.GetProfileBookingsRequest) (*models.BookingListResponse, error) {
	args := m.Called(ctx, req)
	if r, ok := args.Get(0).(*models.BookingListResponse); ok {
		return r, args.Error(1)
	}
	return nil, args.Error(1)
}

type nopLogger struct{}

func (nopLogger) Info(string, ...interface{})  {}
func (nopLogger) Warn(string, ...interface{})  {}
func (nopLogger) Error(string, ...interface{}) {}

func serve(svc BookingService, target string, header string) *httptest.ResponseRecorder {
	router := mux.NewRouter()
	router.Use(middleware.Auth)
	router.HandleFunc("/profiles/{profileId}/bookings", NewHandler(svc, nopLogger{}).Handle)

	req := httptest.NewRequest(http.MethodGet, target, nil)
	if header != "" {
		req.Header.Set(middleware.ProfileIDHeader, header)
	}
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)
	return w
}

func TestHandleUpcoming(t *testing.T) {
	owner := uuid.New()
	svc := &MockBookingService{}
	svc.On("GetProfileBookings", mock.Anything, &models.GetProfileBookingsRequest{RequesterID: owner, ProfileID: owner, Upcoming: true}).
		Return(&models.BookingListResponse{Bookings: []models.BookingResponse{{ID: 1, CourseName: "Yoga"}}}, nil)

	w := serve(svc, "/profiles/"+owner.String()+"/bookings?upcoming=true", owner.String())

	require.Equal(t, http.StatusOK, w.Code)
	var body models.BookingListResponse
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &body))
	require.Len(t, body.Bookings, 1)
	assert.Equal(t, "Yoga", body.Bookings[0].CourseName)
}

func TestHandleErrors(t *testing.T) {
	owner := uuid.New()
	path := "/profiles/" + owner.String() + "/bookings"

	tests := []struct {
		name       string
		target     string
		header     string
		err        error
		wantStatus int
	}{
		{"bad profile id", "/profiles/42/bookings", owner.String(), nil, http.StatusBadRequest},
		{"no identity", path, "", nil, http.StatusUnauthorized},
		{"bad upcoming", path + "?upcoming=soon", owner.String(), nil, http.StatusBadRequest},
		{"foreign profile", path, uuid.New().String(), bookings.ErrAccessDenied, http.StatusForbidden},
		{"bad status", path + "?status=pending", owner.String(), bookings.ErrInvalidInput, http.StatusBadRequest},
		{"store down", path, owner.String(), bookings.ErrStoreUnavailable, http.StatusServiceUnavailable},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			svc := &MockBookingService{}
			svc.On("GetProfileBookings", mock.Anything, mock.Anything).Return(nil, tt.err).Maybe()

			w := serve(svc, tt.target, tt.header)

			assert.Equal(t, tt.wantStatus, w.Code)
		})
	}
}
