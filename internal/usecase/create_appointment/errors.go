package create_appointment

import (
	"fmt"

	"github.com/m04kA/SMC-SalonBooking/internal/domain"
)

var (
	// ErrUnauthenticated возвращается, когда не передан пользователь
	ErrUnauthenticated = fmt.Errorf("create_appointment: user identity is required: %w", domain.ErrAuth)

	// ErrInvalidInput возвращается при некорректных входных данных
	ErrInvalidInput = fmt.Errorf("create_appointment: invalid input data: %w", domain.ErrValidation)

	// ErrInvalidDate возвращается, когда дата записи в прошлом
	ErrInvalidDate = fmt.Errorf("create_appointment: invalid appointment date: %w", domain.ErrValidation)

	// ErrTooLateToBook возвращается, когда время начала сегодня уже прошло
	ErrTooLateToBook = fmt.Errorf("create_appointment: start time has already passed: %w", domain.ErrValidation)

	// ErrServiceNotFound возвращается, когда услуга не найдена
	ErrServiceNotFound = fmt.Errorf("create_appointment: service not found: %w", domain.ErrValidation)

	// ErrProfessionalNotFound возвращается, когда мастер не найден или пользователь не мастер
	ErrProfessionalNotFound = fmt.Errorf("create_appointment: professional not found: %w", domain.ErrValidation)

	// ErrInvalidTimeSlot возвращается, когда время не входит в рабочие слоты мастера на эту дату
	ErrInvalidTimeSlot = fmt.Errorf("create_appointment: invalid time slot: %w", domain.ErrValidation)

	// ErrDayBlocked возвращается, когда мастер закрыл день для записи
	ErrDayBlocked = fmt.Errorf("create_appointment: professional is not available on this date: %w", domain.ErrConflict)

	// ErrSlotNotAvailable возвращается, когда слот занят другой записью
	ErrSlotNotAvailable = fmt.Errorf("create_appointment: slot is not available: %w", domain.ErrConflict)

	// ErrInternal возвращается при сбоях хранилища
	ErrInternal = fmt.Errorf("create_appointment: internal error: %w", domain.ErrBackend)
)
