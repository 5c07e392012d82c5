package scheduling

import (
	"github.com/m04kA/SMC-SalonBooking/internal/domain"
	"github.com/m04kA/SMC-SalonBooking/pkg/types"
)

// NewSlots оборачивает времена начала в слоты, изначально доступные
func NewSlots(starts []types.TimeString) []domain.Slot {
	slots := make([]domain.Slot, len(starts))
	for i, start := range starts {
		slots[i] = domain.Slot{StartTime: start, Available: true}
	}
	return slots
}

// FilterConflicts помечает недоступными слоты, интервал которых [c, c+durationMinutes)
// пересекается с интервалом любой неотмененной записи [s, s+appointment.DurationMinutes).
// Длительность существующей записи берется из неё самой, а не из новой услуги.
// Порядок сохраняется, слоты не удаляются, флаг только снимается, поэтому повторный вызов ничего не меняет.
func FilterConflicts(slots []domain.Slot, existing []*domain.Appointment, durationMinutes int) []domain.Slot {
	result := make([]domain.Slot, len(slots))

	for i, slot := range slots {
		result[i] = slot
		if !slot.Available {
			continue
		}

		candidateStart := slot.StartTime.Minutes()
		candidateEnd := slot.StartTime.EndMinutes(durationMinutes)

		for _, appointment := range existing {
			if !appointment.IsActive() {
				continue
			}
			// Касание границ пересечением не считается
			if candidateStart < appointment.EndMinutes() && appointment.StartMinutes() < candidateEnd {
				result[i].Available = false
				break
			}
		}
	}

	return result
}

// IsSlotAvailable есть ли start среди доступных слотов
func IsSlotAvailable(slots []domain.Slot, start types.TimeString) bool {
	for _, slot := range slots {
		if slot.Available && slot.StartTime.Equal(start) {
			return true
		}
	}
	return false
}

// HasAvailable есть ли хотя бы один доступный слот
func HasAvailable(slots []domain.Slot) bool {
	for _, slot := range slots {
		if slot.Available {
			return true
		}
	}
	return false
}
