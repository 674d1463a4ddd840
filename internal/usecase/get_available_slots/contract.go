package get_available_slots

import (
	"context"
	"time"

	"github.com/m04kA/SMC-FitnessBookingService/internal/domain"
)

// CourseRepository интерфейс каталога курсов
type CourseRepository interface {
	GetByID(ctx context.Context, id int64) (*domain.Course, error)
}

// BookingRepository интерфейс репозитория бронирований
type BookingRepository interface {
	// GetConfirmedByCourse подтвержденные бронирования курса, пересекающиеся с [from, to)
	GetConfirmedByCourse(ctx context.Context, courseID int64, from, to time.Time) ([]*domain.Booking, error)
}

// TimeProvider интерфейс для получения текущего времени (для тестирования)
type TimeProvider interface {
	Now() time.Time
}

// Logger интерфейс для логирования
type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}

// RealTimeProvider реальный провайдер времени для production
type RealTimeProvider struct{}

// Now возвращает текущее время
func (p *RealTimeProvider) Now() time.Time {
	return time.Now()
}
