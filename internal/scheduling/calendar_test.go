package scheduling

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestEvaluateMonth_AlwaysSixWeeks(t *testing.T) {
	today := date(2020, time.January, 1)
	for year := 2024; year <= 2027; year++ {
		for month := time.January; month <= time.December; month++ {
			days := EvaluateMonth(date(year, month, 1), WeekdaysPolicy{}, nil, today)

			require.Len(t, days, 42, "%d-%02d", year, month)
			assert.Equal(t, time.Sunday, days[0].Date.Weekday())
			assert.Equal(t, time.Saturday, days[41].Date.Weekday())

			inMonth := 0
			for i, day := range days {
				if i > 0 {
					assert.Equal(t, days[i-1].Date.AddDate(0, 0, 1), day.Date)
				}
				if day.InMonth {
					inMonth++
					assert.Equal(t, month, day.Date.Month())
				} else {
					assert.False(t, day.Selectable)
				}
			}
			first, last := MonthRange(date(year, month, 1))
			assert.Equal(t, last.Day(), inMonth)
			assert.Equal(t, 1, first.Day())
		}
	}
}

func TestEvaluateMonth_GridStartsOnSunday(t *testing.T) {
	// 1 июля 2025 - вторник
	days := EvaluateMonth(date(2025, time.July, 1), WeekdaysPolicy{}, nil, date(2025, time.January, 1))

	assert.Equal(t, date(2025, time.June, 29), days[0].Date)
	assert.False(t, days[0].InMonth)
	assert.Equal(t, date(2025, time.July, 1), days[2].Date)
	assert.True(t, days[2].InMonth)
}

func TestEvaluateMonth_PastDatesNotSelectable(t *testing.T) {
	// Время суток не учитывается: сегодняшний день доступен даже вечером
	today := time.Date(2025, time.June, 18, 21, 45, 0, 0, time.UTC)
	days := EvaluateMonth(date(2025, time.June, 1), RulesPolicy(weekRules("09:00", "18:00")), nil, today)

	for _, day := range days {
		if !day.InMonth {
			continue
		}
		if day.Date.Before(date(2025, time.June, 18)) {
			assert.False(t, day.Selectable, day.Date.Format("2006-01-02"))
		} else {
			assert.True(t, day.Selectable, day.Date.Format("2006-01-02"))
		}
	}
}

func TestEvaluateMonth_RulesAndBookedDates(t *testing.T) {
	rules := RulesPolicy{
		rule(time.Monday, "09:00", "18:00"),
		rule(time.Wednesday, "09:00", "12:00"),
	}
	inactive := rule(time.Friday, "09:00", "18:00")
	inactive.IsAvailable = false
	rules = append(rules, inactive)

	booked := []time.Time{date(2025, time.June, 11)}
	days := EvaluateMonth(date(2025, time.June, 1), rules, booked, date(2025, time.June, 1))

	selectable := make(map[int]bool)
	for _, day := range days {
		if day.InMonth {
			selectable[day.Date.Day()] = day.Selectable
		}
	}

	assert.True(t, selectable[2])   // понедельник
	assert.True(t, selectable[4])   // среда
	assert.False(t, selectable[11]) // среда, но полностью занята
	assert.False(t, selectable[3])  // вторник без правила
	assert.False(t, selectable[6])  // пятница с неактивным правилом
	assert.False(t, selectable[7])  // суббота
}

func TestEvaluateMonth_NoProfessionalUsesWeekdays(t *testing.T) {
	days := EvaluateMonth(date(2025, time.June, 1), nil, nil, date(2025, time.June, 1))

	for _, day := range days {
		if !day.InMonth {
			continue
		}
		weekend := day.Date.Weekday() == time.Saturday || day.Date.Weekday() == time.Sunday
		assert.Equal(t, !weekend, day.Selectable, day.Date.Format("2006-01-02"))
	}
}
