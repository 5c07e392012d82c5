package scheduling

import (
	"time"

	"github.com/m04kA/SMC-SalonBooking/internal/domain"
	"github.com/m04kA/SMC-SalonBooking/pkg/types"
)

func date(y int, m time.Month, d int) time.Time {
	return time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
}

func rule(weekday time.Weekday, start, end string) *domain.AvailabilityRule {
	return &domain.AvailabilityRule{
		ProfessionalID: "pro-1",
		Weekday:        weekday,
		StartTime:      types.MustTimeString(start),
		EndTime:        types.MustTimeString(end),
		IsAvailable:    true,
	}
}

func appointment(d time.Time, start string, duration int, status domain.AppointmentStatus) *domain.Appointment {
	return &domain.Appointment{
		ProfessionalID:  "pro-1",
		Date:            d,
		StartTime:       types.MustTimeString(start),
		DurationMinutes: duration,
		Status:          status,
	}
}

func times(values ...string) []types.TimeString {
	result := make([]types.TimeString, len(values))
	for i, v := range values {
		result[i] = types.MustTimeString(v)
	}
	return result
}

func weekRules(start, end string) []*domain.AvailabilityRule {
	rules := make([]*domain.AvailabilityRule, 0, 7)
	for wd := time.Sunday; wd <= time.Saturday; wd++ {
		rules = append(rules, rule(wd, start, end))
	}
	return rules
}
