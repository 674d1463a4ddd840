package create_booking

import (
	"errors"
	"fmt"
)

var (
	// ErrInvalidInput возвращается при некорректных входных данных
	ErrInvalidInput = errors.New("create_booking: invalid input data")

	// ErrProfileNotFound возвращается, когда профиль не найден
	ErrProfileNotFound = errors.New("create_booking: profile not found")

	// ErrCourseNotFound возвращается, когда курс не найден
	ErrCourseNotFound = errors.New("create_booking: course not found")

	// ErrInvalidDateRange возвращается, когда слот в прошлом или дальше горизонта бронирования
	ErrInvalidDateRange = errors.New("create_booking: slot is outside the booking horizon")

	// ErrHolidayBlackout возвращается, когда дата попадает на праздничное закрытие
	ErrHolidayBlackout = errors.New("create_booking: club is closed for holidays")

	// ErrOutOfBusinessHours возвращается, когда слот выходит за часы работы
	ErrOutOfBusinessHours = errors.New("create_booking: slot is outside business hours")

	// ErrInvalidSlot возвращается, когда интервал не совпадает ни с одним слотом расписания
	ErrInvalidSlot = errors.New("create_booking: slot does not match the schedule")

	// ErrSlotUnavailable возвращается, когда слот уже занят (в том числе при конкурентном коммите)
	ErrSlotUnavailable = errors.New("create_booking: slot is not available")

	// ErrCapacityExceeded возвращается, когда все места группового занятия заняты
	ErrCapacityExceeded = fmt.Errorf("%w: capacity exceeded", ErrSlotUnavailable)

	// ErrStoreUnavailable возвращается при недоступности БД или истечении таймаутов (можно повторить запрос)
	ErrStoreUnavailable = errors.New("create_booking: store unavailable")

	// ErrInternal возвращается при внутренних ошибках usecase
	ErrInternal = errors.New("create_booking: internal error")
)
