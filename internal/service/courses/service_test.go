package courses

import (
	"context"
	"errors"
	"testing"

	"github.com/lib/pq"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"github.com/m04kA/SMC-FitnessBookingService/internal/domain"
	courseRepo "github.com/m04kA/SMC-FitnessBookingService/internal/infra/storage/course"
	"github.com/m04kA/SMC-FitnessBookingService/pkg/pgerrors"
)

type MockCourseRepository struct{ mock.Mock }

func (m *MockCourseRepository) GetByID(ctx context.Context, id int64) (*domain.Course, error) {
	args := m.Called(ctx, id)
	if c, ok := args.Get(0).(*domain.Course); ok {
		return c, args.Error(1)
	}
	return nil, args.Error(1)
}

func (m *MockCourseRepository) List(ctx context.Context) ([]*domain.Course, error) {
	args := m.Called(ctx)
	if c, ok := args.Get(0).([]*domain.Course); ok {
		return c, args.Error(1)
	}
	return nil, args.Error(1)
}

type nopLogger struct{}

func (nopLogger) Info(string, ...interface{})  {}
func (nopLogger) Warn(string, ...interface{})  {}
func (nopLogger) Error(string, ...interface{}) {}

func intPtr(v int) *int { return &v }

func TestList(t *testing.T) {
	repo := &MockCourseRepository{}
	repo.On("List", mock.Anything).Return([]*domain.Course{
		{ID: 2, Name: "Yoga", Type: domain.CourseTypeYoga, DurationMinutes: 60, MaxParticipants: intPtr(12), Price: 2200},
		{ID: 1, Name: "Gym", Type: domain.CourseTypeGym, Price: 8800, IsMonthly: true},
	}, nil)

	resp, err := NewService(repo, nopLogger{}).List(context.Background())

	require.NoError(t, err)
	require.Len(t, resp.Courses, 2)
	assert.Equal(t, "yoga", resp.Courses[0].CourseType)
	assert.Equal(t, 12, *resp.Courses[0].MaxParticipants)
	assert.True(t, resp.Courses[1].IsMonthly)
}

func TestGetByIDErrors(t *testing.T) {
	tests := []struct {
		name      string
		repoErr   error
		wantError error
	}{
		{"not found", courseRepo.ErrCourseNotFound, ErrCourseNotFound},
		{"store down", pgerrors.Classify(&pq.Error{Code: "08001"}), ErrStoreUnavailable},
		{"other", errors.New("boom"), ErrInternal},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			repo := &MockCourseRepository{}
			repo.On("GetByID", mock.Anything, int64(3)).Return(nil, tt.repoErr)

			resp, err := NewService(repo, nopLogger{}).GetByID(context.Background(), 3)

			assert.Nil(t, resp)
			assert.ErrorIs(t, err, tt.wantError)
		})
	}
}
