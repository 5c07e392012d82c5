package process_payment_webhook

import (
	"fmt"

	"github.com/m04kA/SMC-SalonBooking/internal/domain"
)

var (
	// ErrInvalidInput возвращается при некорректном уведомлении
	ErrInvalidInput = fmt.Errorf("process_payment_webhook: invalid notification: %w", domain.ErrValidation)

	// ErrPaymentNotFound возвращается, когда платеж неизвестен шлюзу или сервису
	ErrPaymentNotFound = fmt.Errorf("process_payment_webhook: payment not found: %w", domain.ErrNotFound)

	// ErrReferenceMismatch возвращается, когда ссылка шлюза указывает на другую запись
	ErrReferenceMismatch = fmt.Errorf("process_payment_webhook: external reference does not match payment: %w", domain.ErrValidation)

	// ErrGateway возвращается при сбое платежного шлюза
	ErrGateway = fmt.Errorf("process_payment_webhook: payment gateway error: %w", domain.ErrBackend)

	// ErrInternal возвращается при сбоях хранилища
	ErrInternal = fmt.Errorf("process_payment_webhook: internal error: %w", domain.ErrBackend)
)
