package create_booking

import (
	"context"
	"time"

	"github.com/google/uuid"

	"github.com/m04kA/SMC-FitnessBookingService/internal/domain"
	"github.com/m04kA/SMC-FitnessBookingService/internal/integrations/notifier"
)

// ProfileRepository интерфейс репозитория профилей
type ProfileRepository interface {
	GetByID(ctx context.Context, id uuid.UUID) (*domain.Profile, error)
}

// CourseRepository интерфейс каталога курсов
type CourseRepository interface {
	GetByID(ctx context.Context, id int64) (*domain.Course, error)
}

// BookingRepository интерфейс репозитория бронирований
type BookingRepository interface {
	// GetConfirmedByCourse внутри транзакции блокирует найденные строки (FOR UPDATE)
	GetConfirmedByCourse(ctx context.Context, courseID int64, from, to time.Time) ([]*domain.Booking, error)
	Create(ctx context.Context, booking *domain.Booking) (*domain.Booking, error)
}

// TransactionManager интерфейс для управления транзакциями
type TransactionManager interface {
	DoSerializable(ctx context.Context, fn func(ctx context.Context) error) error
}

// Notifier интерфейс отправки уведомлений о бронировании
type Notifier interface {
	NotifyBookingCreated(ctx context.Context, n notifier.BookingNotification) error
}

// MetricsRecorder интерфейс для метрик коммитов и уведомлений
type MetricsRecorder interface {
	RecordCommit(courseType, outcome string)
	RecordNotification(status string)
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
