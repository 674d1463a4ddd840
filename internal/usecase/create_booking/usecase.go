package create_booking

import (
	"context"
	"errors"
	"fmt"
	"sync"
	"time"

	"github.com/m04kA/SMC-FitnessBookingService/internal/domain"
	courseRepo "github.com/m04kA/SMC-FitnessBookingService/internal/infra/storage/course"
	profileRepo "github.com/m04kA/SMC-FitnessBookingService/internal/infra/storage/profile"
	"github.com/m04kA/SMC-FitnessBookingService/internal/integrations/notifier"
	"github.com/m04kA/SMC-FitnessBookingService/internal/slots"
	"github.com/m04kA/SMC-FitnessBookingService/pkg/pgerrors"
)

// Исходы коммита для метрик
const (
	outcomeConfirmed        = "confirmed"
	outcomeSlotUnavailable  = "slot_unavailable"
	outcomeCapacityExceeded = "capacity_exceeded"
	outcomeStoreUnavailable = "store_unavailable"
	outcomeRejected         = "rejected"
	outcomeError            = "error"
)

// Статусы уведомлений для метрик
const (
	notificationQueued = "queued"
	notificationFailed = "failed"
)

// UseCase use case для создания бронирования
type UseCase struct {
	profileRepo   ProfileRepository
	courseRepo    CourseRepository
	bookingRepo   BookingRepository
	txManager     TransactionManager
	notifier      Notifier
	metrics       MetricsRecorder
	policy        domain.CalendarPolicy
	notifyTimeout time.Duration
	timeProvider  TimeProvider
	logger        Logger

	// фоновые отправки уведомлений
	notifications sync.WaitGroup
}

// NewUseCase создает новый экземпляр use case
func NewUseCase(
	profileRepo ProfileRepository,
	courseRepo CourseRepository,
	bookingRepo BookingRepository,
	txManager TransactionManager,
	notifier Notifier,
	metrics MetricsRecorder,
	policy domain.CalendarPolicy,
	notifyTimeout time.Duration,
	logger Logger,
) *UseCase {
	if metrics == nil {
		metrics = noopMetrics{}
	}
	return &UseCase{
		profileRepo:   profileRepo,
		courseRepo:    courseRepo,
		bookingRepo:   bookingRepo,
		txManager:     txManager,
		notifier:      notifier,
		metrics:       metrics,
		policy:        policy,
		notifyTimeout: notifyTimeout,
		timeProvider:  &RealTimeProvider{},
		logger:        logger,
	}
}

// Execute выполняет use case создания бронирования.
// Проверка занятости и вставка выполняются в одной сериализуемой транзакции,
// поэтому из конкурентных запросов на последнее место успешен только один.
func (uc *UseCase) Execute(ctx context.Context, req *Request) (*Response, error) {
	uc.logger.Info("CreateBooking: profile=%s, course=%d, start=%s, end=%s",
		req.ProfileID, req.CourseID, req.StartTime.Format(time.RFC3339), req.EndTime.Format(time.RFC3339))

	// 1. Валидация входных данных
	if err := validateRequest(req); err != nil {
		uc.logger.Warn("CreateBooking: validation failed: %v", err)
		return nil, err
	}

	// 2. Получаем текущее время
	now := uc.timeProvider.Now()

	// 3. Получаем профиль
	profile, err := uc.profileRepo.GetByID(ctx, req.ProfileID)
	if err != nil {
		if errors.Is(err, profileRepo.ErrProfileNotFound) {
			uc.logger.Warn("CreateBooking: profile id=%s not found", req.ProfileID)
			return nil, ErrProfileNotFound
		}
		uc.logger.Error("CreateBooking: failed to get profile id=%s: %v", req.ProfileID, err)
		return nil, storeError("failed to get profile", err)
	}

	// 4. Получаем курс
	course, err := uc.courseRepo.GetByID(ctx, req.CourseID)
	if err != nil {
		if errors.Is(err, courseRepo.ErrCourseNotFound) {
			uc.logger.Warn("CreateBooking: course id=%d not found", req.CourseID)
			return nil, ErrCourseNotFound
		}
		uc.logger.Error("CreateBooking: failed to get course id=%d: %v", req.CourseID, err)
		return nil, storeError("failed to get course", err)
	}

	rule, err := course.Occupancy()
	if err != nil {
		uc.logger.Error("CreateBooking: %v", err)
		return nil, fmt.Errorf("%w: %v", ErrInternal, err)
	}

	// 5. Проверяем слот по календарю клуба
	slot := domain.Slot{Start: req.StartTime, End: req.EndTime}
	if err := validateSlot(uc.policy, rule, course.Duration(), slot, now); err != nil {
		uc.logger.Warn("CreateBooking: slot validation failed: %v", err)
		uc.metrics.RecordCommit(string(course.Type), outcomeRejected)
		return nil, err
	}

	// Переменная для хранения результата
	var result *domain.Booking

	// 6. Проверка занятости и вставка в сериализуемой транзакции
	err = uc.txManager.DoSerializable(ctx, func(txCtx context.Context) error {
		// 6.1. Подтвержденные бронирования курса, пересекающиеся со слотом (FOR UPDATE)
		bookings, err := uc.bookingRepo.GetConfirmedByCourse(txCtx, course.ID, slot.Start, slot.End)
		if err != nil {
			return fmt.Errorf("failed to get bookings: %w", err)
		}

		// 6.2. Проверяем доступность слота
		if err := slots.Check(rule, slot, bookings); err != nil {
			switch {
			case errors.Is(err, slots.ErrSlotTaken):
				uc.logger.Warn("CreateBooking: slot taken: %v", err)
				return fmt.Errorf("%w: %v", ErrSlotUnavailable, err)
			case errors.Is(err, slots.ErrCapacityReached):
				uc.logger.Warn("CreateBooking: capacity reached: %v", err)
				return fmt.Errorf("%w: %v", ErrCapacityExceeded, err)
			default:
				return fmt.Errorf("%w: %v", ErrInternal, err)
			}
		}

		// 6.3. Сохраняем бронирование
		created, err := uc.bookingRepo.Create(txCtx, &domain.Booking{
			ProfileID: profile.ID,
			CourseID:  course.ID,
			StartTime: slot.Start,
			EndTime:   slot.End,
			Status:    domain.StatusConfirmed,
			Exclusive: course.IsExclusive(),
		})
		if err != nil {
			return fmt.Errorf("failed to create booking: %w", err)
		}

		result = created
		return nil
	})

	if err != nil {
		err = commitError(err)
		uc.metrics.RecordCommit(string(course.Type), commitOutcome(err))
		if errors.Is(err, ErrSlotUnavailable) {
			uc.logger.Warn("CreateBooking: %v", err)
		} else {
			uc.logger.Error("CreateBooking: commit failed: %v", err)
		}
		return nil, err
	}

	uc.metrics.RecordCommit(string(course.Type), outcomeConfirmed)
	uc.logger.Info("CreateBooking: successfully created booking id=%d", result.ID)

	// 7. Уведомление отправляется после коммита и не влияет на результат
	uc.notify(notifier.BookingNotification{
		BookingID:  result.ID,
		CourseName: course.Name,
		FullName:   profile.FullName,
		Email:      profile.Email,
		StartTime:  result.StartTime,
		EndTime:    result.EndTime,
		CreatedAt:  result.CreatedAt,
	})

	return &Response{
		ID:         result.ID,
		ProfileID:  result.ProfileID,
		CourseID:   result.CourseID,
		StartTime:  result.StartTime,
		EndTime:    result.EndTime,
		Status:     string(result.Status),
		CourseName: course.Name,
		CourseType: string(course.Type),
		CreatedAt:  result.CreatedAt,
		UpdatedAt:  result.UpdatedAt,
	}, nil
}

// Wait ожидает завершения фоновых отправок уведомлений
func (uc *UseCase) Wait() {
	uc.notifications.Wait()
}

func (uc *UseCase) notify(n notifier.BookingNotification) {
	uc.notifications.Add(1)
	go func() {
		defer uc.notifications.Done()

		ctx, cancel := context.WithTimeout(context.Background(), uc.notifyTimeout)
		defer cancel()

		if err := uc.notifier.NotifyBookingCreated(ctx, n); err != nil {
			uc.metrics.RecordNotification(notificationFailed)
			uc.logger.Warn("CreateBooking: notification for booking id=%d failed: %v", n.BookingID, err)
			return
		}
		uc.metrics.RecordNotification(notificationQueued)
	}()
}

// commitError сводит ошибку транзакции к ошибкам use case.
// Проигравший конкурентный коммит (40001, 23P01) - слот занят, повторов нет.
func commitError(err error) error {
	switch {
	case errors.Is(err, ErrSlotUnavailable), errors.Is(err, ErrInternal):
		return err
	case pgerrors.IsConflict(err):
		return fmt.Errorf("%w: concurrent booking won: %v", ErrSlotUnavailable, err)
	case pgerrors.IsUnavailable(err):
		return fmt.Errorf("%w: %v", ErrStoreUnavailable, err)
	default:
		return fmt.Errorf("%w: %v", ErrInternal, err)
	}
}

func commitOutcome(err error) string {
	switch {
	case errors.Is(err, ErrCapacityExceeded):
		return outcomeCapacityExceeded
	case errors.Is(err, ErrSlotUnavailable):
		return outcomeSlotUnavailable
	case errors.Is(err, ErrStoreUnavailable):
		return outcomeStoreUnavailable
	default:
		return outcomeError
	}
}

// storeError различает недоступность БД и прочие ошибки
func storeError(msg string, err error) error {
	if pgerrors.IsUnavailable(err) {
		return fmt.Errorf("%w: %s: %v", ErrStoreUnavailable, msg, err)
	}
	return fmt.Errorf("%w: %s: %v", ErrInternal, msg, err)
}

type noopMetrics struct{}

func (noopMetrics) RecordCommit(string, string) {}
func (noopMetrics) RecordNotification(string)   {}
