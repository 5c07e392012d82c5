package scheduling

import (
	"time"

	"github.com/m04kA/SMC-SalonBooking/internal/domain"
)

// FullyBookedDates даты из [from, to], в которые у мастера есть рабочее окно,
// но не осталось ни одного свободного слота минимальной длины (один шаг генератора).
// Закрытые мастером дни (blockouts) добавляются всегда.
func (g *SlotGenerator) FullyBookedDates(
	from, to time.Time,
	rules []*domain.AvailabilityRule,
	appointments []*domain.Appointment,
	blockouts []*domain.Blockout,
) []time.Time {
	byDate := make(map[time.Time][]*domain.Appointment)
	for _, a := range appointments {
		if !a.IsActive() {
			continue
		}
		key := domain.DateOf(a.Date)
		byDate[key] = append(byDate[key], a)
	}

	blocked := make(map[time.Time]struct{}, len(blockouts))
	for _, b := range blockouts {
		blocked[domain.DateOf(b.Date)] = struct{}{}
	}

	probe := &domain.Service{DurationMinutes: g.stepMinutes}

	result := make([]time.Time, 0)
	for date := domain.DateOf(from); !date.After(domain.DateOf(to)); date = date.AddDate(0, 0, 1) {
		if _, ok := blocked[date]; ok {
			result = append(result, date)
			continue
		}

		dayAppointments := byDate[date]
		if len(dayAppointments) == 0 {
			continue
		}

		starts := g.Generate(date, probe, rules)
		if len(starts) == 0 {
			continue
		}

		slots := FilterConflicts(NewSlots(starts), dayAppointments, probe.DurationMinutes)
		if !HasAvailable(slots) {
			result = append(result, date)
		}
	}

	return result
}
