package get_available_slots

import (
	"fmt"
	"time"

	"github.com/m04kA/SMC-SalonBooking/internal/domain"
	"github.com/m04kA/SMC-SalonBooking/pkg/types"
)

// validateRequest валидирует входные данные запроса
func validateRequest(req *Request) error {
	if req.ProfessionalID == "" {
		return fmt.Errorf("%w: professionalId is required", ErrInvalidInput)
	}

	if req.ServiceID <= 0 {
		return fmt.Errorf("%w: serviceId must be positive", ErrInvalidInput)
	}

	if req.Date.IsZero() {
		return fmt.Errorf("%w: date is required", ErrInvalidInput)
	}

	return nil
}

// markPast снимает доступность со слотов сегодняшнего дня, время которых уже наступило.
// now в часовом поясе салона.
func markPast(slots []domain.Slot, date, now time.Time) []domain.Slot {
	if !domain.DateOf(date).Equal(domain.DateOf(now)) {
		return slots
	}

	current := types.NewTimeString(now).Minutes()
	for i := range slots {
		if slots[i].StartTime.Minutes() <= current {
			slots[i].Available = false
		}
	}
	return slots
}
