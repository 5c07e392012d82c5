package scheduling

import (
	"sort"
	"time"

	"github.com/m04kA/SMC-SalonBooking/internal/domain"
	"github.com/m04kA/SMC-SalonBooking/pkg/types"
)

// SlotGenerator генерирует кандидатов на время начала записи с фиксированным шагом
type SlotGenerator struct {
	stepMinutes int
}

// NewSlotGenerator создает генератор. Неположительный шаг заменяется на 30 минут.
func NewSlotGenerator(stepMinutes int) *SlotGenerator {
	if stepMinutes <= 0 {
		stepMinutes = domain.SlotStepMinutes
	}
	return &SlotGenerator{stepMinutes: stepMinutes}
}

// StepMinutes шаг генерации
func (g *SlotGenerator) StepMinutes() int {
	return g.stepMinutes
}

// Windows активные окна правил на день недели даты, по возрастанию начала
func Windows(date time.Time, rules []*domain.AvailabilityRule) []domain.TimeRange {
	weekday := date.Weekday()

	windows := make([]domain.TimeRange, 0, 1)
	for _, rule := range rules {
		if rule.Weekday != weekday || !rule.IsActive() {
			continue
		}
		windows = append(windows, domain.TimeRange{Start: rule.StartTime, End: rule.EndTime})
	}

	sort.Slice(windows, func(i, j int) bool {
		return windows[i].Start.IsBefore(windows[j].Start)
	})
	return windows
}

// Generate возвращает времена начала на дату для услуги по правилам мастера.
//
// Окно [start, end) берется из активного правила на день недели даты.
// Для услуг длиннее 6 часов конец окна обрезается до 12:00.
// Время начала добавляется, пока start + duration <= конец окна.
// Без услуги, без даты или без правила на этот день результат пустой.
func (g *SlotGenerator) Generate(date time.Time, service *domain.Service, rules []*domain.AvailabilityRule) []types.TimeString {
	if service == nil || service.DurationMinutes <= 0 || date.IsZero() {
		return []types.TimeString{}
	}

	longServiceEnd := types.MustTimeString(domain.LongServiceWindowEnd).Minutes()

	result := make([]types.TimeString, 0)
	last := -1
	for _, window := range Windows(date, rules) {
		start := window.Start.Minutes()
		end := window.End.Minutes()
		if service.IsLong() && end > longServiceEnd {
			end = longServiceEnd
		}

		for current := start; current+service.DurationMinutes <= end; current += g.stepMinutes {
			// Пересекающиеся правила не должны давать повторов
			if current <= last {
				continue
			}

			slot, err := types.NewTimeStringFromMinutes(current)
			if err != nil {
				break
			}
			result = append(result, slot)
			last = current
		}
	}

	return result
}
