package get_available_slots

import (
	"time"

	"github.com/m04kA/SMC-FitnessBookingService/internal/domain"
)

// Request модель запроса на получение доступных слотов
type Request struct {
	CourseID int64     // ID курса
	Date     time.Time // Дата (используются только год, месяц и день)
}

// Response модель ответа со списком доступных слотов
type Response struct {
	CourseID   int64             // ID курса
	CourseType domain.CourseType // Тип курса
	Date       time.Time         // Полночь даты в часовом поясе клуба
	IsOpen     bool              // Работает ли клуб в этот день
	Slots      []Slot            // Свободные слоты по возрастанию времени начала
}

// Slot модель свободного временного слота
type Slot struct {
	StartTime      time.Time
	EndTime        time.Time
	AvailableSpots *int // nil для свободного посещения
	TotalSpots     *int
}
