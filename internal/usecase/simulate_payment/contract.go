package simulate_payment

import (
	"context"

	"github.com/m04kA/SMC-SalonBooking/internal/domain"
	"github.com/m04kA/SMC-SalonBooking/internal/integrations/paymentgateway"
	"github.com/m04kA/SMC-SalonBooking/internal/usecase/process_payment_webhook"
)

// PaymentRepository интерфейс репозитория платежей
type PaymentRepository interface {
	GetByID(ctx context.Context, id int64) (*domain.Payment, error)
}

// Settler эмулятор шлюза, умеющий проводить платежи
type Settler interface {
	Settle(ctx context.Context, id, status string) (*paymentgateway.Charge, error)
}

// WebhookProcessor обработчик уведомлений шлюза
type WebhookProcessor interface {
	Execute(ctx context.Context, req *process_payment_webhook.Request) (*process_payment_webhook.Response, error)
}

// Logger интерфейс для логирования
type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
