package create_deposit_payment

import (
	"context"

	createDepositPayment "github.com/m04kA/SMC-SalonBooking/internal/usecase/create_deposit_payment"
)

type CreateDepositPaymentUseCase interface {
	Execute(ctx context.Context, req *createDepositPayment.Request) (*createDepositPayment.Response, error)
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
