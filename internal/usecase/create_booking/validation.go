package create_booking

import (
	"fmt"
	"time"

	"github.com/google/uuid"

	"github.com/m04kA/SMC-FitnessBookingService/internal/domain"
	"github.com/m04kA/SMC-FitnessBookingService/internal/slots"
)

// validateRequest валидирует входные данные запроса
func validateRequest(req *Request) error {
	if req.ProfileID == uuid.Nil {
		return fmt.Errorf("%w: profileID is required", ErrInvalidInput)
	}

	if req.CourseID <= 0 {
		return fmt.Errorf("%w: courseID must be positive", ErrInvalidInput)
	}

	if req.StartTime.IsZero() || req.EndTime.IsZero() {
		return fmt.Errorf("%w: startTime and endTime are required", ErrInvalidInput)
	}

	if !req.EndTime.After(req.StartTime) {
		return fmt.Errorf("%w: endTime must be after startTime", ErrInvalidInput)
	}

	return nil
}

// validateSlot повторно проверяет слот по календарю клуба.
// Клиент мог получить слот давно, поэтому проверки выполняются заново при каждом коммите.
func validateSlot(
	policy domain.CalendarPolicy,
	rule domain.Occupancy,
	duration time.Duration,
	slot domain.Slot,
	now time.Time,
) error {
	date := policy.LocalDate(slot.Start)

	// Праздничное закрытие
	if policy.IsHoliday(date) {
		return fmt.Errorf("%w: %s", ErrHolidayBlackout, date.Format(domain.DateFormat))
	}

	// Горизонт бронирования
	if !policy.WithinHorizon(date, now) {
		return fmt.Errorf("%w: can only book %d days in advance", ErrInvalidDateRange, policy.HorizonDays)
	}

	day := policy.OpenHours(date)
	_, unrestricted := rule.(domain.UnrestrictedAccess)

	if !unrestricted {
		// Уже начавшееся занятие забронировать нельзя
		if slot.Start.Before(now) {
			return fmt.Errorf("%w: slot starts in the past", ErrInvalidDateRange)
		}

		if !day.IsOpen || slot.Start.Before(day.Open) || slot.End.After(day.Close) {
			return fmt.Errorf("%w: open %s-%s", ErrOutOfBusinessHours,
				day.Open.Format("15:04"), day.Close.Format("15:04"))
		}
	}

	// Слот должен совпадать с одним из кандидатов генератора (сетка и длительность)
	if !slots.Contains(slots.Generate(rule, duration, day), slot) {
		return fmt.Errorf("%w: %s - %s", ErrInvalidSlot,
			slot.Start.Format(time.RFC3339), slot.End.Format(time.RFC3339))
	}

	return nil
}
