package domain

import "time"

// Default calendar values
const (
	DefaultTimezone     = "Asia/Tokyo"
	DefaultWeekdayOpen  = 7
	DefaultWeekdayClose = 22
	DefaultWeekendOpen  = 8
	DefaultWeekendClose = 20
	DefaultHolidayStart = "12-29"
	DefaultHolidayEnd   = "01-03"
	DefaultHorizonDays  = 30
)

// SlotStep step between candidate slot starts
const SlotStep = time.Hour

// Time format constants
const (
	DateFormat     = "2006-01-02" // YYYY-MM-DD
	MonthDayFormat = "01-02"      // MM-DD
)
