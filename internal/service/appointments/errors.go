package appointments

import (
	"fmt"

	"github.com/m04kA/SMC-SalonBooking/internal/domain"
)

var (
	// ErrAppointmentNotFound возвращается, когда запись не найдена
	ErrAppointmentNotFound = fmt.Errorf("appointments: appointment not found: %w", domain.ErrNotFound)

	// ErrUnauthenticated возвращается, когда не передан пользователь
	ErrUnauthenticated = fmt.Errorf("appointments: user identity is required: %w", domain.ErrAuth)

	// ErrAccessDenied возвращается, когда у пользователя нет прав доступа
	ErrAccessDenied = fmt.Errorf("appointments: access denied: %w", domain.ErrAuth)

	// ErrCannotCancel возвращается, когда запись не может быть отменена
	ErrCannotCancel = fmt.Errorf("appointments: appointment cannot be cancelled: %w", domain.ErrConflict)

	// ErrCannotComplete возвращается, когда запись не подтверждена
	ErrCannotComplete = fmt.Errorf("appointments: appointment cannot be completed: %w", domain.ErrConflict)

	// ErrInvalidInput возвращается при некорректных входных данных
	ErrInvalidInput = fmt.Errorf("appointments: invalid input data: %w", domain.ErrValidation)

	// ErrInternal возвращается при внутренних ошибках сервиса
	ErrInternal = fmt.Errorf("appointments: internal error: %w", domain.ErrBackend)
)
