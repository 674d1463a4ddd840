package domain

import (
	"fmt"
	"time"
)

// OpeningHours часы работы в пределах дня, [Open, Close) в целых часах
type OpeningHours struct {
	Open  int
	Close int
}

func (h OpeningHours) validate() error {
	if h.Open < 0 || h.Close > 24 || h.Open >= h.Close {
		return fmt.Errorf("%w: opening hours %d-%d", ErrInvalidCalendar, h.Open, h.Close)
	}
	return nil
}

// MonthDay день года без привязки к году
type MonthDay struct {
	Month time.Month
	Day   int
}

// ParseMonthDay разбирает строку формата MM-DD
func ParseMonthDay(s string) (MonthDay, error) {
	t, err := time.Parse(MonthDayFormat, s)
	if err != nil {
		return MonthDay{}, fmt.Errorf("%w: month-day %q: %v", ErrInvalidCalendar, s, err)
	}
	return MonthDay{Month: t.Month(), Day: t.Day()}, nil
}

func (d MonthDay) String() string {
	return fmt.Sprintf("%02d-%02d", int(d.Month), d.Day)
}

func (d MonthDay) before(o MonthDay) bool {
	if d.Month != o.Month {
		return d.Month < o.Month
	}
	return d.Day < o.Day
}

// HolidayWindow закрытый период [From, To] включительно.
// Если From позже To, период переходит через новый год (12-29 .. 01-03).
type HolidayWindow struct {
	From MonthDay
	To   MonthDay
}

// Contains проверяет, попадает ли календарная дата в период
func (w HolidayWindow) Contains(date time.Time) bool {
	md := MonthDay{Month: date.Month(), Day: date.Day()}
	if w.To.before(w.From) {
		return !md.before(w.From) || !w.To.before(md)
	}
	return !md.before(w.From) && !w.To.before(md)
}

// DaySchedule результат календаря на дату
type DaySchedule struct {
	Date   time.Time // полночь даты в часовом поясе клуба
	IsOpen bool
	Open   time.Time
	Close  time.Time
}

// CalendarPolicy часы работы и праздничные дни.
// Значение неизменяемо, загружается один раз при старте.
type CalendarPolicy struct {
	Location    *time.Location
	Weekday     OpeningHours
	Weekend     OpeningHours
	Holidays    []HolidayWindow
	HorizonDays int // на сколько дней вперед можно бронировать
}

// DefaultCalendarPolicy календарь по умолчанию: будни 7-22, выходные 8-20,
// закрыто с 29 декабря по 3 января, бронирование на 30 дней вперед
func DefaultCalendarPolicy() CalendarPolicy {
	loc, err := time.LoadLocation(DefaultTimezone)
	if err != nil {
		loc = time.UTC
	}
	return CalendarPolicy{
		Location: loc,
		Weekday:  OpeningHours{Open: DefaultWeekdayOpen, Close: DefaultWeekdayClose},
		Weekend:  OpeningHours{Open: DefaultWeekendOpen, Close: DefaultWeekendClose},
		Holidays: []HolidayWindow{{
			From: MonthDay{Month: time.December, Day: 29},
			To:   MonthDay{Month: time.January, Day: 3},
		}},
		HorizonDays: DefaultHorizonDays,
	}
}

// Validate проверяет согласованность настроек
func (p CalendarPolicy) Validate() error {
	if err := p.Weekday.validate(); err != nil {
		return fmt.Errorf("weekday: %w", err)
	}
	if err := p.Weekend.validate(); err != nil {
		return fmt.Errorf("weekend: %w", err)
	}
	if p.HorizonDays < 0 {
		return fmt.Errorf("%w: negative horizon %d", ErrInvalidCalendar, p.HorizonDays)
	}
	return nil
}

func (p CalendarPolicy) location() *time.Location {
	if p.Location == nil {
		return time.UTC
	}
	return p.Location
}

// Midnight начало календарной даты в часовом поясе клуба.
// Берутся поля год/месяц/день в том виде, в котором дата передана.
func (p CalendarPolicy) Midnight(date time.Time) time.Time {
	y, m, d := date.Date()
	return time.Date(y, m, d, 0, 0, 0, 0, p.location())
}

// LocalDate календарная дата момента времени в часовом поясе клуба
func (p CalendarPolicy) LocalDate(t time.Time) time.Time {
	return p.Midnight(t.In(p.location()))
}

// IsHoliday проверяет, попадает ли дата в праздничное закрытие
func (p CalendarPolicy) IsHoliday(date time.Time) bool {
	for _, w := range p.Holidays {
		if w.Contains(date) {
			return true
		}
	}
	return false
}

// IsWeekend суббота или воскресенье
func IsWeekend(date time.Time) bool {
	wd := date.Weekday()
	return wd == time.Saturday || wd == time.Sunday
}

// OpenHours возвращает расписание на дату
func (p CalendarPolicy) OpenHours(date time.Time) DaySchedule {
	day := p.Midnight(date)
	if p.IsHoliday(day) {
		return DaySchedule{Date: day}
	}

	hours := p.Weekday
	if IsWeekend(day) {
		hours = p.Weekend
	}

	y, m, d := day.Date()
	return DaySchedule{
		Date:   day,
		IsOpen: true,
		Open:   time.Date(y, m, d, hours.Open, 0, 0, 0, day.Location()),
		Close:  time.Date(y, m, d, hours.Close, 0, 0, 0, day.Location()),
	}
}

// WithinHorizon проверяет, что дата не в прошлом и не дальше HorizonDays от сегодня
func (p CalendarPolicy) WithinHorizon(date, now time.Time) bool {
	day := p.Midnight(date)
	today := p.LocalDate(now)
	last := today.AddDate(0, 0, p.HorizonDays)
	return !day.Before(today) && !day.After(last)
}
