package courses

import "errors"

var (
	// ErrCourseNotFound возвращается, когда курс не найден
	ErrCourseNotFound = errors.New("course not found")

	// ErrStoreUnavailable возвращается при недоступности БД
	ErrStoreUnavailable = errors.New("service: store unavailable")

	// ErrInternal возвращается при внутренних ошибках сервиса
	ErrInternal = errors.New("service: internal error")
)
