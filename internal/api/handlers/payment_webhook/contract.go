package payment_webhook

import (
	"context"

	processPaymentWebhook "github.com/m04kA/SMC-SalonBooking/internal/usecase/process_payment_webhook"
)

type ProcessPaymentWebhookUseCase interface {
	Execute(ctx context.Context, req *processPaymentWebhook.Request) (*processPaymentWebhook.Response, error)
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
