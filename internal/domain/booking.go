package domain

import (
	"time"

	"github.com/google/uuid"
)

// BookingStatus represents the status of a booking
type BookingStatus string

const (
	StatusConfirmed BookingStatus = "confirmed"
	StatusCancelled BookingStatus = "cancelled"
)

// IsValid returns true for a known status
func (s BookingStatus) IsValid() bool {
	return s == StatusConfirmed || s == StatusCancelled
}

// Booking represents a reserved session of a course
type Booking struct {
	ID        int64
	ProfileID uuid.UUID
	CourseID  int64
	StartTime time.Time
	EndTime   time.Time
	Status    BookingStatus

	// Exclusive is set for courses admitting one booking per interval.
	// The store guards such rows with an exclusion constraint.
	Exclusive bool

	CreatedAt time.Time
	UpdatedAt time.Time
}

// IsConfirmed returns true if the booking occupies its interval
func (b *Booking) IsConfirmed() bool {
	return b.Status == StatusConfirmed
}

// Interval returns the booked time interval
func (b *Booking) Interval() Slot {
	return Slot{Start: b.StartTime, End: b.EndTime}
}

// ProfileBookingsFilter фильтр бронирований профиля
type ProfileBookingsFilter struct {
	ProfileID uuid.UUID      // Обязательный параметр
	From      *time.Time     // Только бронирования, начинающиеся не раньше From
	Status    *BookingStatus // Фильтр по статусу (опционально)
}

// BookingDetails booking joined with the course it reserves
type BookingDetails struct {
	Booking
	CourseName string
	CourseType CourseType
}
