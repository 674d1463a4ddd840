package middleware

import (
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/gorilla/mux"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
)

func TestAuth(t *testing.T) {
	id := uuid.New()

	tests := []struct {
		name       string
		header     string
		wantStatus int
		wantID     bool
	}{
		{"valid profile", id.String(), http.StatusOK, true},
		{"no header", "", http.StatusOK, false},
		{"malformed", "not-a-uuid", http.StatusUnauthorized, false},
		{"nil uuid", uuid.Nil.String(), http.StatusUnauthorized, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var gotID bool
			h := Auth(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
				got, ok := GetProfileID(r.Context())
				gotID = ok
				if ok {
					assert.Equal(t, id, got)
				}
			}))

			req := httptest.NewRequest(http.MethodGet, "/", nil)
			if tt.header != "" {
				req.Header.Set(ProfileIDHeader, tt.header)
			}
			w := httptest.NewRecorder()
			h.ServeHTTP(w, req)

			assert.Equal(t, tt.wantStatus, w.Code)
			assert.Equal(t, tt.wantID, gotID)
		})
	}
}

func TestRateLimiterPerProfile(t *testing.T) {
	rl := NewRateLimiter(0.001, 2, time.Minute)
	h := Auth(rl.Middleware(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		w.WriteHeader(http.StatusCreated)
	})))

	first, second := uuid.New(), uuid.New()
	send := func(id uuid.UUID) int {
		req := httptest.NewRequest(http.MethodPost, "/bookings", nil)
		req.Header.Set(ProfileIDHeader, id.String())
		w := httptest.NewRecorder()
		h.ServeHTTP(w, req)
		return w.Code
	}

	assert.Equal(t, http.StatusCreated, send(first))
	assert.Equal(t, http.StatusCreated, send(first))
	assert.Equal(t, http.StatusTooManyRequests, send(first))
	assert.Equal(t, http.StatusCreated, send(second))
}

func TestRateLimiterCleanup(t *testing.T) {
	rl := NewRateLimiter(1, 1, 0)
	rl.Allow("ip:10.0.0.1")
	time.Sleep(time.Millisecond)

	rl.Cleanup()

	rl.mu.Lock()
	defer rl.mu.Unlock()
	assert.Empty(t, rl.visitors)
}

type MockHTTPMetrics struct{ mock.Mock }

func (m *MockHTTPMetrics) RecordHTTPRequest(method, path, status string, duration time.Duration) {
	m.Called(method, path, status, duration)
}

func TestMetricsUsesRouteTemplate(t *testing.T) {
	recorder := &MockHTTPMetrics{}
	recorder.On("RecordHTTPRequest", http.MethodGet, "/courses/{courseId}", "404", mock.AnythingOfType("time.Duration")).Once()

	router := mux.NewRouter()
	router.Use(Metrics(recorder))
	router.HandleFunc("/courses/{courseId}", func(w http.ResponseWriter, _ *http.Request) {
		w.WriteHeader(http.StatusNotFound)
	}).Methods(http.MethodGet)

	router.ServeHTTP(httptest.NewRecorder(), httptest.NewRequest(http.MethodGet, "/courses/42", nil))

	recorder.AssertExpectations(t)
}
