// Package slots builds candidate slots for a course day and checks them
// against confirmed bookings. Everything here is pure: no I/O, no clock.
package slots

import (
	"iter"
	"time"

	"github.com/m04kA/SMC-FitnessBookingService/internal/domain"
)

// Generate возвращает кандидатов на бронирование для дня.
//
// Закрытый день - пустая последовательность.
// UnrestrictedAccess - один слот на весь день (00:00:00 - 23:59:59).
// Остальные курсы - слот на каждый целый час от открытия до закрытия,
// длина слота равна duration. Слоты, заканчивающиеся после закрытия, не выдаются.
//
// Последовательность конечна и может перебираться повторно с тем же результатом.
func Generate(rule domain.Occupancy, duration time.Duration, day domain.DaySchedule) iter.Seq[domain.Slot] {
	return func(yield func(domain.Slot) bool) {
		if !day.IsOpen {
			return
		}

		if _, ok := rule.(domain.UnrestrictedAccess); ok {
			yield(FullDay(day.Date))
			return
		}

		if duration <= 0 {
			return
		}

		for start := day.Open; start.Before(day.Close); start = start.Add(domain.SlotStep) {
			end := start.Add(duration)
			if end.After(day.Close) {
				return
			}
			if !yield(domain.Slot{Start: start, End: end}) {
				return
			}
		}
	}
}

// FullDay слот дневного доступа: [date 00:00:00, date 23:59:59]
func FullDay(date time.Time) domain.Slot {
	y, m, d := date.Date()
	return domain.Slot{
		Start: time.Date(y, m, d, 0, 0, 0, 0, date.Location()),
		End:   time.Date(y, m, d, 23, 59, 59, 0, date.Location()),
	}
}

// Contains проверяет, выдает ли генератор слот, совпадающий с candidate
func Contains(seq iter.Seq[domain.Slot], candidate domain.Slot) bool {
	for s := range seq {
		if s.Equal(candidate) {
			return true
		}
	}
	return false
}
