package domain

import (
	"time"

	"github.com/m04kA/SMC-SalonBooking/pkg/types"
)

// AvailabilityRule недельное правило рабочего времени мастера на один день недели.
// Интервал полуоткрытый: [StartTime, EndTime).
type AvailabilityRule struct {
	ID             int64
	ProfessionalID string
	Weekday        time.Weekday
	StartTime      types.TimeString
	EndTime        types.TimeString
	IsAvailable    bool
	CreatedAt      time.Time
	UpdatedAt      time.Time
}

// IsActive правило открывает окно для записи
func (r *AvailabilityRule) IsActive() bool {
	return r.IsAvailable && r.StartTime.IsBefore(r.EndTime)
}

// Overlaps пересекается ли правило с другим в тот же день недели
func (r *AvailabilityRule) Overlaps(other *AvailabilityRule) bool {
	if r.Weekday != other.Weekday {
		return false
	}
	return r.StartTime.Minutes() < other.EndTime.Minutes() &&
		other.StartTime.Minutes() < r.EndTime.Minutes()
}

// TimeRange интервал времени внутри дня
type TimeRange struct {
	Start types.TimeString
	End   types.TimeString
}
