package simulate_payment

import (
	"fmt"

	"github.com/m04kA/SMC-SalonBooking/internal/domain"
)

var (
	// ErrInvalidInput возвращается при некорректных входных данных
	ErrInvalidInput = fmt.Errorf("simulate_payment: invalid input data: %w", domain.ErrValidation)

	// ErrPaymentNotFound возвращается, когда платеж не найден
	ErrPaymentNotFound = fmt.Errorf("simulate_payment: payment not found: %w", domain.ErrNotFound)

	// ErrInternal возвращается при сбоях хранилища или эмулятора
	ErrInternal = fmt.Errorf("simulate_payment: internal error: %w", domain.ErrBackend)
)
