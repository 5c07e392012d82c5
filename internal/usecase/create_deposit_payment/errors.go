package create_deposit_payment

import (
	"fmt"

	"github.com/m04kA/SMC-SalonBooking/internal/domain"
)

var (
	// ErrUnauthenticated возвращается, когда не передан пользователь
	ErrUnauthenticated = fmt.Errorf("create_deposit_payment: user identity is required: %w", domain.ErrAuth)

	// ErrAccessDenied возвращается, когда запись принадлежит другому клиенту
	ErrAccessDenied = fmt.Errorf("create_deposit_payment: access denied: %w", domain.ErrAuth)

	// ErrInvalidInput возвращается при некорректных входных данных
	ErrInvalidInput = fmt.Errorf("create_deposit_payment: invalid input data: %w", domain.ErrValidation)

	// ErrAppointmentNotFound возвращается, когда запись не найдена
	ErrAppointmentNotFound = fmt.Errorf("create_deposit_payment: appointment not found: %w", domain.ErrNotFound)

	// ErrNotPending возвращается, когда запись уже подтверждена, завершена или отменена
	ErrNotPending = fmt.Errorf("create_deposit_payment: appointment is not pending: %w", domain.ErrConflict)

	// ErrPaymentExists возвращается, когда предоплата по записи уже создана
	ErrPaymentExists = fmt.Errorf("create_deposit_payment: payment already exists: %w", domain.ErrConflict)

	// ErrGateway возвращается при сбое платежного шлюза
	ErrGateway = fmt.Errorf("create_deposit_payment: payment gateway error: %w", domain.ErrBackend)

	// ErrInternal возвращается при сбоях хранилища
	ErrInternal = fmt.Errorf("create_deposit_payment: internal error: %w", domain.ErrBackend)
)
