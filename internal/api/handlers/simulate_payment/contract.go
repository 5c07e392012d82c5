package simulate_payment

import (
	"context"

	simulatePayment "github.com/m04kA/SMC-SalonBooking/internal/usecase/simulate_payment"
)

type SimulatePaymentUseCase interface {
	Execute(ctx context.Context, req *simulatePayment.Request) (*simulatePayment.Response, error)
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
