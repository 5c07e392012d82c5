package create_appointment

import (
	"fmt"
	"time"

	"github.com/m04kA/SMC-SalonBooking/internal/domain"
	"github.com/m04kA/SMC-SalonBooking/pkg/types"
)

// validateRequest валидирует входные данные без обращения к хранилищу
func validateRequest(req *Request) error {
	if req.UserID == "" {
		return ErrUnauthenticated
	}

	if req.ProfessionalID == "" {
		return fmt.Errorf("%w: professionalId is required", ErrInvalidInput)
	}

	if req.ServiceID <= 0 {
		return fmt.Errorf("%w: serviceId must be positive", ErrInvalidInput)
	}

	if req.Date.IsZero() {
		return fmt.Errorf("%w: date is required", ErrInvalidInput)
	}

	if req.StartTime.IsZero() {
		return fmt.Errorf("%w: time is required", ErrInvalidInput)
	}

	if err := req.StartTime.Validate(); err != nil {
		return fmt.Errorf("%w: invalid time format: %v", ErrInvalidInput, err)
	}

	if req.Notes != nil && len(*req.Notes) > domain.MaxNotesLength {
		return fmt.Errorf("%w: notes must be at most %d characters", ErrInvalidInput, domain.MaxNotesLength)
	}

	return nil
}

// validateDate проверяет, что запись не в прошлом. now уже в часовом поясе салона.
func validateDate(date time.Time, startTime types.TimeString, now time.Time) error {
	today := domain.DateOf(now)
	day := domain.DateOf(date)

	if day.Before(today) {
		return ErrInvalidDate
	}

	if day.Equal(today) && startTime.Minutes() <= types.NewTimeString(now).Minutes() {
		return fmt.Errorf("%w: %s", ErrTooLateToBook, startTime)
	}

	return nil
}

// containsTime входит ли start в список кандидатов генератора
func containsTime(starts []types.TimeString, start types.TimeString) bool {
	for _, s := range starts {
		if s.Equal(start) {
			return true
		}
	}
	return false
}
