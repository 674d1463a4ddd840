package get_available_slots

import (
	"context"
	"errors"
	"fmt"

	"github.com/m04kA/SMC-FitnessBookingService/internal/domain"
	courseRepo "github.com/m04kA/SMC-FitnessBookingService/internal/infra/storage/course"
	"github.com/m04kA/SMC-FitnessBookingService/internal/slots"
	"github.com/m04kA/SMC-FitnessBookingService/pkg/pgerrors"
)

// UseCase use case для получения доступных слотов курса на дату.
// Только чтение: снимок бронирований без блокировок, результат носит рекомендательный характер.
type UseCase struct {
	courseRepo   CourseRepository
	bookingRepo  BookingRepository
	policy       domain.CalendarPolicy
	timeProvider TimeProvider
	logger       Logger
}

// NewUseCase создает новый экземпляр use case
func NewUseCase(
	courseRepo CourseRepository,
	bookingRepo BookingRepository,
	policy domain.CalendarPolicy,
	logger Logger,
) *UseCase {
	return &UseCase{
		courseRepo:   courseRepo,
		bookingRepo:  bookingRepo,
		policy:       policy,
		timeProvider: &RealTimeProvider{},
		logger:       logger,
	}
}

// Execute выполняет use case получения доступных слотов
func (uc *UseCase) Execute(ctx context.Context, req *Request) (*Response, error) {
	uc.logger.Info("GetAvailableSlots: course=%d, date=%s", req.CourseID, req.Date.Format(domain.DateFormat))

	// 1. Валидация входных данных
	if err := validateRequest(req); err != nil {
		uc.logger.Warn("GetAvailableSlots: validation failed: %v", err)
		return nil, err
	}

	// 2. Получаем текущее время
	now := uc.timeProvider.Now()

	// 3. Получаем курс
	course, err := uc.courseRepo.GetByID(ctx, req.CourseID)
	if err != nil {
		if errors.Is(err, courseRepo.ErrCourseNotFound) {
			uc.logger.Warn("GetAvailableSlots: course id=%d not found", req.CourseID)
			return nil, ErrCourseNotFound
		}
		uc.logger.Error("GetAvailableSlots: failed to get course id=%d: %v", req.CourseID, err)
		return nil, storeError("failed to get course", err)
	}

	rule, err := course.Occupancy()
	if err != nil {
		uc.logger.Error("GetAvailableSlots: %v", err)
		return nil, fmt.Errorf("%w: %v", ErrInternal, err)
	}

	// 4. Проверяем горизонт бронирования
	if !uc.policy.WithinHorizon(req.Date, now) {
		uc.logger.Warn("GetAvailableSlots: date %s is outside the %d day horizon",
			req.Date.Format(domain.DateFormat), uc.policy.HorizonDays)
		return nil, fmt.Errorf("%w: can only book %d days in advance", ErrInvalidDateRange, uc.policy.HorizonDays)
	}

	// 5. Получаем расписание на дату
	day := uc.policy.OpenHours(req.Date)
	response := &Response{
		CourseID:   course.ID,
		CourseType: course.Type,
		Date:       day.Date,
		IsOpen:     day.IsOpen,
		Slots:      []Slot{},
	}

	if !day.IsOpen {
		uc.logger.Info("GetAvailableSlots: closed on %s", day.Date.Format(domain.DateFormat))
		return response, nil
	}

	// 6. Подтвержденные бронирования курса за день
	dayInterval := slots.FullDay(day.Date)
	bookings, err := uc.bookingRepo.GetConfirmedByCourse(ctx, course.ID, day.Date, day.Date.AddDate(0, 0, 1))
	if err != nil {
		uc.logger.Error("GetAvailableSlots: failed to get bookings: %v", err)
		return nil, storeError("failed to get bookings", err)
	}

	// 7. Фильтруем кандидатов: занятые и уже начавшиеся слоты не выдаем
	for slot := range slots.Generate(rule, course.Duration(), day) {
		if !slot.Equal(dayInterval) && slot.Start.Before(now) {
			continue
		}
		if !slots.IsAvailable(rule, slot, bookings) {
			continue
		}

		item := Slot{StartTime: slot.Start, EndTime: slot.End}
		if spots, ok := slots.SpotsFor(rule, slot, bookings); ok {
			item.AvailableSpots = &spots.Available
			item.TotalSpots = &spots.Total
		}
		response.Slots = append(response.Slots, item)
	}

	uc.logger.Info("GetAvailableSlots: %d slots available for course=%d, date=%s",
		len(response.Slots), course.ID, day.Date.Format(domain.DateFormat))

	return response, nil
}

// storeError различает недоступность БД и прочие ошибки
func storeError(msg string, err error) error {
	if pgerrors.IsUnavailable(err) {
		return fmt.Errorf("%w: %s: %v", ErrStoreUnavailable, msg, err)
	}
	return fmt.Errorf("%w: %s: %v", ErrInternal, msg, err)
}
