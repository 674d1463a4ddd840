package get_available_slots

import "errors"

var (
	// ErrCourseNotFound возвращается, когда курс не найден
	ErrCourseNotFound = errors.New("get_available_slots: course not found")

	// ErrInvalidDateRange возвращается, когда дата в прошлом или дальше горизонта бронирования
	ErrInvalidDateRange = errors.New("get_available_slots: date is outside the booking horizon")

	// ErrInvalidInput возвращается при некорректных входных данных
	ErrInvalidInput = errors.New("get_available_slots: invalid input data")

	// ErrStoreUnavailable возвращается при недоступности БД (можно повторить запрос)
	ErrStoreUnavailable = errors.New("get_available_slots: store unavailable")

	// ErrInternal возвращается при внутренних ошибках usecase
	ErrInternal = errors.New("get_available_slots: internal error")
)
