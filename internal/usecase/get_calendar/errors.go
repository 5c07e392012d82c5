package get_calendar

import (
	"fmt"

	"github.com/m04kA/SMC-SalonBooking/internal/domain"
)

var (
	// ErrInvalidInput возвращается при некорректных входных данных
	ErrInvalidInput = fmt.Errorf("get_calendar: invalid input data: %w", domain.ErrValidation)

	// ErrProfessionalNotFound возвращается, когда мастер не найден
	ErrProfessionalNotFound = fmt.Errorf("get_calendar: professional not found: %w", domain.ErrNotFound)

	// ErrInternal возвращается при сбоях хранилища
	ErrInternal = fmt.Errorf("get_calendar: internal error: %w", domain.ErrBackend)
)
