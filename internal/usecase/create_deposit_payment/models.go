package create_deposit_payment

import (
	"time"

	"github.com/shopspring/decimal"
)

// Request модель запроса на создание предоплаты
type Request struct {
	UserID        string
	AppointmentID int64
}

// Response модель ответа с PIX-кодом для оплаты
type Response struct {
	PaymentID         int64
	AppointmentID     int64
	Amount            decimal.Decimal
	Status            string
	PixCode           string
	ExternalReference string
	ExpiresAt         *time.Time
}
