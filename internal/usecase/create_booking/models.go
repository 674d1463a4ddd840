package create_booking

import (
	"time"

	"github.com/google/uuid"
)

// Request модель запроса на создание бронирования
type Request struct {
	ProfileID uuid.UUID // ID профиля
	CourseID  int64     // ID курса
	StartTime time.Time // Начало слота
	EndTime   time.Time // Конец слота
}

// Response модель ответа с созданным бронированием
type Response struct {
	ID        int64
	ProfileID uuid.UUID
	CourseID  int64
	StartTime time.Time
	EndTime   time.Time
	Status    string

	// Денормализованные данные курса
	CourseName string
	CourseType string

	CreatedAt time.Time
	UpdatedAt time.Time
}
