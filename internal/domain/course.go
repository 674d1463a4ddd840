package domain

import (
	"fmt"
	"time"
)

// CourseType тип курса в каталоге
type CourseType string

const (
	CourseTypeGym      CourseType = "gym"      // свободное посещение зала
	CourseTypeYoga     CourseType = "yoga"     // групповое занятие с ограничением мест
	CourseTypePersonal CourseType = "personal" // персональная тренировка
)

// IsValid проверяет, что тип курса известен
func (t CourseType) IsValid() bool {
	switch t {
	case CourseTypeGym, CourseTypeYoga, CourseTypePersonal:
		return true
	}
	return false
}

// Occupancy правило заполнения слота курса.
// Набор вариантов закрыт: UnrestrictedAccess, CapacityLimited, ExclusiveSession.
type Occupancy interface {
	occupancy()
}

// UnrestrictedAccess посещение без слотов, один доступ на весь день
type UnrestrictedAccess struct{}

// CapacityLimited не более Capacity подтвержденных бронирований на пересекающийся интервал
type CapacityLimited struct {
	Capacity int
}

// ExclusiveSession не более одного подтвержденного бронирования на пересекающийся интервал
type ExclusiveSession struct{}

func (UnrestrictedAccess) occupancy() {}
func (CapacityLimited) occupancy()    {}
func (ExclusiveSession) occupancy()   {}

// Course курс из каталога. Для движка бронирования только для чтения.
type Course struct {
	ID               int64
	Name             string
	Description      string
	Type             CourseType
	DurationMinutes  int  // длительность занятия, только для yoga/personal
	MaxParticipants  *int // вместимость, только для yoga
	Price            float64
	IsMonthly        bool
	SessionsPerMonth *int
	CreatedAt        time.Time
	UpdatedAt        time.Time
}

// Occupancy возвращает правило заполнения слотов курса.
// Несогласованная запись каталога возвращает ErrInvalidCourse.
func (c *Course) Occupancy() (Occupancy, error) {
	switch c.Type {
	case CourseTypeGym:
		return UnrestrictedAccess{}, nil

	case CourseTypeYoga:
		if c.DurationMinutes <= 0 {
			return nil, fmt.Errorf("%w: course id=%d has no duration", ErrInvalidCourse, c.ID)
		}
		if c.MaxParticipants == nil || *c.MaxParticipants <= 0 {
			return nil, fmt.Errorf("%w: course id=%d has no positive capacity", ErrInvalidCourse, c.ID)
		}
		return CapacityLimited{Capacity: *c.MaxParticipants}, nil

	case CourseTypePersonal:
		if c.DurationMinutes <= 0 {
			return nil, fmt.Errorf("%w: course id=%d has no duration", ErrInvalidCourse, c.ID)
		}
		return ExclusiveSession{}, nil

	default:
		return nil, fmt.Errorf("%w: course id=%d has unknown type %q", ErrInvalidCourse, c.ID, c.Type)
	}
}

// Duration длительность одного занятия
func (c *Course) Duration() time.Duration {
	return time.Duration(c.DurationMinutes) * time.Minute
}

// IsExclusive true для персональных тренировок (одно бронирование на интервал)
func (c *Course) IsExclusive() bool {
	return c.Type == CourseTypePersonal
}
