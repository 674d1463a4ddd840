package domain

import "errors"

var (
	// ErrInvalidCourse запись каталога противоречива (тип, вместимость, длительность)
	ErrInvalidCourse = errors.New("domain: invalid course definition")

	// ErrInvalidCalendar некорректная конфигурация календаря
	ErrInvalidCalendar = errors.New("domain: invalid calendar policy")
)
