package paymentgateway

import "context"

// Logger интерфейс для логирования
type Logger interface {
	Info(format string, v ...interface{})
}

// Gateway операции платежного шлюза, которые нужны сервису
type Gateway interface {
	CreatePixCharge(ctx context.Context, req CreateChargeRequest) (*Charge, error)
	GetPayment(ctx context.Context, id string) (*Charge, error)
}

// Retrier политика повторов (txmanager.Policy)
type Retrier interface {
	Retry(ctx context.Context, op func() error, retryable func(error) bool) error
}
