package slots

import (
	"errors"
	"fmt"

	"github.com/m04kA/SMC-FitnessBookingService/internal/domain"
)

var (
	// ErrSlotTaken слот персональной тренировки пересекается с подтвержденным бронированием
	ErrSlotTaken = errors.New("slots: slot overlaps a confirmed booking")

	// ErrCapacityReached все места группового занятия заняты
	ErrCapacityReached = errors.New("slots: capacity reached")
)

// CountOverlapping число подтвержденных бронирований, пересекающихся со слотом.
// Отмененные бронирования слот не занимают.
func CountOverlapping(slot domain.Slot, bookings []*domain.Booking) int {
	count := 0
	for _, b := range bookings {
		if b == nil || !b.IsConfirmed() {
			continue
		}
		if slot.Overlaps(b.Interval()) {
			count++
		}
	}
	return count
}

// Check проверяет, можно ли занять слот при текущем наборе бронирований курса.
// nil - свободно, ErrSlotTaken или ErrCapacityReached - занято.
func Check(rule domain.Occupancy, slot domain.Slot, bookings []*domain.Booking) error {
	switch r := rule.(type) {
	case domain.UnrestrictedAccess:
		return nil

	case domain.ExclusiveSession:
		if n := CountOverlapping(slot, bookings); n > 0 {
			return fmt.Errorf("%w: %d overlapping", ErrSlotTaken, n)
		}
		return nil

	case domain.CapacityLimited:
		if n := CountOverlapping(slot, bookings); n >= r.Capacity {
			return fmt.Errorf("%w: %d/%d spots taken", ErrCapacityReached, n, r.Capacity)
		}
		return nil

	default:
		return fmt.Errorf("slots: unsupported occupancy rule %T", rule)
	}
}

// IsAvailable true, если Check не вернул ошибку
func IsAvailable(rule domain.Occupancy, slot domain.Slot, bookings []*domain.Booking) bool {
	return Check(rule, slot, bookings) == nil
}

// Spots свободные и общие места слота
type Spots struct {
	Available int
	Total     int
}

// SpotsFor считает места слота. Для UnrestrictedAccess мест нет (ok=false).
func SpotsFor(rule domain.Occupancy, slot domain.Slot, bookings []*domain.Booking) (spots Spots, ok bool) {
	total := 0
	switch r := rule.(type) {
	case domain.CapacityLimited:
		total = r.Capacity
	case domain.ExclusiveSession:
		total = 1
	default:
		return Spots{}, false
	}

	available := total - CountOverlapping(slot, bookings)
	if available < 0 {
		available = 0
	}
	return Spots{Available: available, Total: total}, true
}
