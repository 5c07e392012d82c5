// Package scheduling вычисляет доступность мастера: сетку календаря,
// слоты на день и пересечения с существующими записями.
// Все функции чистые и не обращаются к хранилищу.
package scheduling

import (
	"time"

	"github.com/m04kA/SMC-SalonBooking/internal/domain"
)

// DayPolicy решает, работает ли мастер в указанный день недели
type DayPolicy interface {
	IsWorkingDay(weekday time.Weekday) bool
}

// RulesPolicy рабочие дни по недельным правилам мастера
type RulesPolicy []*domain.AvailabilityRule

// IsWorkingDay есть хотя бы одно активное правило на этот день недели
func (p RulesPolicy) IsWorkingDay(weekday time.Weekday) bool {
	for _, rule := range p {
		if rule.Weekday == weekday && rule.IsActive() {
			return true
		}
	}
	return false
}

// WeekdaysPolicy политика, пока мастер не выбран: будни доступны, выходные нет
type WeekdaysPolicy struct{}

func (WeekdaysPolicy) IsWorkingDay(weekday time.Weekday) bool {
	return weekday != time.Saturday && weekday != time.Sunday
}

// EvaluateMonth строит сетку 6x7, начиная с воскресенья, которая покрывает month.
// День недоступен, если он вне месяца, нерабочий по policy, раньше today
// (сравниваются только даты) или входит в bookedDates.
func EvaluateMonth(month time.Time, policy DayPolicy, bookedDates []time.Time, today time.Time) []domain.CalendarDay {
	if policy == nil {
		policy = WeekdaysPolicy{}
	}

	first := time.Date(month.Year(), month.Month(), 1, 0, 0, 0, 0, time.UTC)
	gridStart := first.AddDate(0, 0, -int(first.Weekday()))
	todayDate := domain.DateOf(today)

	booked := make(map[time.Time]struct{}, len(bookedDates))
	for _, d := range bookedDates {
		booked[domain.DateOf(d)] = struct{}{}
	}

	days := make([]domain.CalendarDay, 0, domain.CalendarGridDays)
	for i := 0; i < domain.CalendarGridDays; i++ {
		date := gridStart.AddDate(0, 0, i)
		inMonth := date.Month() == first.Month() && date.Year() == first.Year()

		_, isBooked := booked[date]
		selectable := inMonth &&
			policy.IsWorkingDay(date.Weekday()) &&
			!date.Before(todayDate) &&
			!isBooked

		days = append(days, domain.CalendarDay{
			Date:       date,
			InMonth:    inMonth,
			Selectable: selectable,
		})
	}

	return days
}

// MonthRange первый и последний день месяца
func MonthRange(month time.Time) (time.Time, time.Time) {
	first := time.Date(month.Year(), month.Month(), 1, 0, 0, 0, 0, time.UTC)
	return first, first.AddDate(0, 1, -1)
}
