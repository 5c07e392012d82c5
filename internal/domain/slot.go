package domain

import (
	"time"

	"github.com/m04kA/SMC-SalonBooking/pkg/types"
)

// Slot кандидат на время начала записи. Не хранится, вычисляется на каждый запрос.
type Slot struct {
	StartTime types.TimeString
	Available bool
}

// CalendarDay ячейка сетки календаря 6x7
type CalendarDay struct {
	Date       time.Time
	InMonth    bool
	Selectable bool
}
