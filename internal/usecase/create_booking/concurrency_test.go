package create_booking

import (
	"context"
	"errors"
	"sync"
	"sync/atomic"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/m04kA/SMC-FitnessBookingService/internal/domain"
	"github.com/m04kA/SMC-FitnessBookingService/internal/integrations/notifier"
)

// memoryStore хранилище бронирований в памяти.
// DoSerializable выполняет транзакции строго по очереди, как если бы
// проигравшие сериализуемые транзакции ждали победителя.
type memoryStore struct {
	txMu sync.Mutex

	mu       sync.Mutex
	nextID   int64
	bookings []*domain.Booking
}

func (s *memoryStore) DoSerializable(ctx context.Context, fn func(ctx context.Context) error) error {
	s.txMu.Lock()
	defer s.txMu.Unlock()
	return fn(ctx)
}

func (s *memoryStore) GetConfirmedByCourse(_ context.Context, courseID int64, from, to time.Time) ([]*domain.Booking, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	window := domain.Slot{Start: from, End: to}
	var out []*domain.Booking
	for _, b := range s.bookings {
		if b.CourseID == courseID && b.IsConfirmed() && window.Overlaps(b.Interval()) {
			out = append(out, b)
		}
	}
	return out, nil
}

func (s *memoryStore) Create(_ context.Context, booking *domain.Booking) (*domain.Booking, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.nextID++
	b := *booking
	b.ID = s.nextID
	s.bookings = append(s.bookings, &b)
	return &b, nil
}

func (s *memoryStore) count() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return len(s.bookings)
}

type staticProfiles struct{}

func (staticProfiles) GetByID(_ context.Context, id uuid.UUID) (*domain.Profile, error) {
	return &domain.Profile{ID: id, FullName: "Member", Email: "member@example.com"}, nil
}

type staticCourses struct{ course *domain.Course }

func (c staticCourses) GetByID(context.Context, int64) (*domain.Course, error) {
	return c.course, nil
}

type countingNotifier struct{ sent atomic.Int64 }

func (n *countingNotifier) NotifyBookingCreated(context.Context, notifier.BookingNotification) error {
	n.sent.Add(1)
	return nil
}

func runConcurrentCommits(t *testing.T, course *domain.Course, attempts int) (store *memoryStore, successes int, errs []error) {
	t.Helper()
	store = &memoryStore{}
	notify := &countingNotifier{}
	uc := NewUseCase(staticProfiles{}, staticCourses{course: course}, store, store, notify, nil, testPolicy(), time.Second, nopLogger{})
	uc.timeProvider = fixedTime{now: testNow}

	start := at(time.October, 15, 10, 0)
	end := start.Add(course.Duration())

	var (
		wg      sync.WaitGroup
		mu      sync.Mutex
		release = make(chan struct{})
	)
	for i := 0; i < attempts; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			<-release
			_, err := uc.Execute(context.Background(), &Request{ProfileID: uuid.New(), CourseID: course.ID, StartTime: start, EndTime: end})

			mu.Lock()
			defer mu.Unlock()
			if err == nil {
				successes++
				return
			}
			errs = append(errs, err)
		}()
	}
	close(release)
	wg.Wait()
	uc.Wait()

	assert.Equal(t, int64(successes), notify.sent.Load())
	return store, successes, errs
}

func TestConcurrentCommitsExclusiveSession(t *testing.T) {
	store, successes, errs := runConcurrentCommits(t, personal, 20)

	assert.Equal(t, 1, successes)
	assert.Equal(t, 1, store.count())
	require.Len(t, errs, 19)
	for _, err := range errs {
		assert.ErrorIs(t, err, ErrSlotUnavailable)
		assert.False(t, errors.Is(err, ErrCapacityExceeded))
	}
}

func TestConcurrentCommitsCapacityLimited(t *testing.T) {
	const capacity = 3
	course := &domain.Course{ID: 2, Name: "Yoga", Type: domain.CourseTypeYoga, DurationMinutes: 60, MaxParticipants: intPtr(capacity)}

	store, successes, errs := runConcurrentCommits(t, course, capacity+5)

	assert.Equal(t, capacity, successes)
	assert.Equal(t, capacity, store.count())
	require.Len(t, errs, 5)
	for _, err := range errs {
		assert.ErrorIs(t, err, ErrCapacityExceeded)
		assert.ErrorIs(t, err, ErrSlotUnavailable)
	}
}

func TestConcurrentCommitsUnrestrictedAccess(t *testing.T) {
	course := &domain.Course{ID: 1, Type: domain.CourseTypeGym}
	store := &memoryStore{}
	uc := NewUseCase(staticProfiles{}, staticCourses{course: course}, store, store, &countingNotifier{}, nil, testPolicy(), time.Second, nopLogger{})
	uc.timeProvider = fixedTime{now: testNow}

	day := at(time.October, 15, 0, 0)
	end := time.Date(2026, 10, 15, 23, 59, 59, 0, tokyo)

	var wg sync.WaitGroup
	for i := 0; i < 10; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			_, err := uc.Execute(context.Background(), &Request{ProfileID: uuid.New(), CourseID: 1, StartTime: day, EndTime: end})
			assert.NoError(t, err)
		}()
	}
	wg.Wait()
	uc.Wait()

	assert.Equal(t, 10, store.count())
}
