package slots

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"

	"github.com/m04kA/SMC-FitnessBookingService/internal/domain"
)

func at(hour, min int) time.Time {
	return wednesday.Add(time.Duration(hour)*time.Hour + time.Duration(min)*time.Minute)
}

func booking(startHour, startMin, endHour, endMin int, status domain.BookingStatus) *domain.Booking {
	return &domain.Booking{StartTime: at(startHour, startMin), EndTime: at(endHour, endMin), Status: status}
}

func TestCountOverlapping(t *testing.T) {
	slot := domain.Slot{Start: at(11, 30), End: at(12, 0)}

	bookings := []*domain.Booking{
		booking(11, 20, 11, 40, domain.StatusConfirmed), // overlaps
		booking(11, 0, 11, 30, domain.StatusConfirmed),  // touches start
		booking(12, 0, 12, 30, domain.StatusConfirmed),  // touches end
		booking(11, 45, 12, 15, domain.StatusCancelled), // cancelled
		booking(8, 0, 9, 0, domain.StatusConfirmed),     // far before
		booking(11, 0, 13, 0, domain.StatusConfirmed),   // covers
		nil,
	}

	assert.Equal(t, 2, CountOverlapping(slot, bookings))
}

func TestCheckExclusive(t *testing.T) {
	slot := domain.Slot{Start: at(9, 0), End: at(10, 0)}
	rule := domain.ExclusiveSession{}

	assert.NoError(t, Check(rule, slot, nil))
	assert.NoError(t, Check(rule, slot, []*domain.Booking{booking(10, 0, 11, 0, domain.StatusConfirmed)}))
	assert.NoError(t, Check(rule, slot, []*domain.Booking{booking(9, 0, 10, 0, domain.StatusCancelled)}))
	assert.ErrorIs(t, Check(rule, slot, []*domain.Booking{booking(9, 30, 10, 30, domain.StatusConfirmed)}), ErrSlotTaken)
}

func TestCheckCapacity(t *testing.T) {
	slot := domain.Slot{Start: at(9, 0), End: at(10, 0)}
	rule := domain.CapacityLimited{Capacity: 2}

	one := []*domain.Booking{booking(9, 0, 10, 0, domain.StatusConfirmed)}
	two := append(one, booking(9, 0, 10, 0, domain.StatusConfirmed))

	assert.NoError(t, Check(rule, slot, one))
	assert.ErrorIs(t, Check(rule, slot, two), ErrCapacityReached)
	assert.False(t, IsAvailable(rule, slot, two))
	assert.True(t, IsAvailable(rule, domain.Slot{Start: at(10, 0), End: at(11, 0)}, two))
}

func TestCheckUnrestrictedAlwaysAvailable(t *testing.T) {
	slot := FullDay(wednesday)
	many := make([]*domain.Booking, 0, 100)
	for i := 0; i < 100; i++ {
		many = append(many, &domain.Booking{StartTime: slot.Start, EndTime: slot.End, Status: domain.StatusConfirmed})
	}

	assert.True(t, IsAvailable(domain.UnrestrictedAccess{}, slot, many))
}

func TestSpotsFor(t *testing.T) {
	slot := domain.Slot{Start: at(9, 0), End: at(10, 0)}
	bookings := []*domain.Booking{
		booking(9, 0, 10, 0, domain.StatusConfirmed),
		booking(9, 0, 10, 0, domain.StatusConfirmed),
		booking(9, 0, 10, 0, domain.StatusConfirmed),
	}

	spots, ok := SpotsFor(domain.CapacityLimited{Capacity: 5}, slot, bookings)
	assert.True(t, ok)
	assert.Equal(t, Spots{Available: 2, Total: 5}, spots)

	spots, ok = SpotsFor(domain.CapacityLimited{Capacity: 2}, slot, bookings)
	assert.True(t, ok)
	assert.Equal(t, Spots{Available: 0, Total: 2}, spots)

	spots, ok = SpotsFor(domain.ExclusiveSession{}, slot, nil)
	assert.True(t, ok)
	assert.Equal(t, Spots{Available: 1, Total: 1}, spots)

	_, ok = SpotsFor(domain.UnrestrictedAccess{}, slot, bookings)
	assert.False(t, ok)
}
