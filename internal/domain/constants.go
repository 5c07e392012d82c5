package domain

import "time"

// Правила расписания
const (
	SlotStepMinutes = 30

	// Услуги длиннее 6 часов записываются только на утро: окно обрезается до 12:00
	LongServiceThresholdMinutes = 360
	LongServiceWindowEnd        = "12:00"

	CalendarGridDays = 42
	DaysInWeek       = 7

	DefaultDepositPercent = 50
)

// Business validation constants
const (
	MaxNotesLength              = 500
	MaxCancellationReasonLength = 500
	MaxBlockoutReasonLength     = 200
)

// Time format constants
const (
	TimeFormat  = "15:04"      // HH:MM
	DateFormat  = "2006-01-02" // YYYY-MM-DD
	MonthFormat = "2006-01"    // YYYY-MM
)

// DateOf отбрасывает время суток. Все даты в домене хранятся как полночь UTC.
func DateOf(t time.Time) time.Time {
	y, m, d := t.Date()
	return time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
}

// ParseDate парсит дату "YYYY-MM-DD"
func ParseDate(s string) (time.Time, error) {
	return time.ParseInLocation(DateFormat, s, time.UTC)
}

// ParseMonth парсит месяц "YYYY-MM" и возвращает его первое число
func ParseMonth(s string) (time.Time, error) {
	return time.ParseInLocation(MonthFormat, s, time.UTC)
}
