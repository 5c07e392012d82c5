package paymentgateway

import (
	"time"

	"github.com/shopspring/decimal"
)

// Статусы платежа в шлюзе
const (
	StatusPending     = "pending"
	StatusApproved    = "approved"
	StatusRejected    = "rejected"
	StatusCancelled   = "cancelled"
	StatusRefunded    = "refunded"
	StatusChargedBack = "charged_back"
)

const methodPix = "pix"

// CreateChargeRequest запрос на создание PIX-платежа
type CreateChargeRequest struct {
	Amount            decimal.Decimal
	Description       string
	ExternalReference string
	PayerEmail        string
}

// Charge платеж в шлюзе
type Charge struct {
	ID                string
	Status            string
	Amount            decimal.Decimal
	ExternalReference string
	// PixCode строка "copia e cola" для оплаты
	PixCode   string
	ExpiresAt *time.Time
}

// paymentRequest тело POST /v1/payments
type paymentRequest struct {
	TransactionAmount decimal.Decimal `json:"transaction_amount"`
	Description       string          `json:"description"`
	PaymentMethodID   string          `json:"payment_method_id"`
	ExternalReference string          `json:"external_reference"`
	Payer             payer           `json:"payer"`
}

type payer struct {
	Email string `json:"email"`
}

// paymentResponse ответ шлюза с платежом
type paymentResponse struct {
	ID                 int64           `json:"id"`
	Status             string          `json:"status"`
	TransactionAmount  decimal.Decimal `json:"transaction_amount"`
	ExternalReference  string          `json:"external_reference"`
	DateOfExpiration   *time.Time      `json:"date_of_expiration"`
	PointOfInteraction struct {
		TransactionData struct {
			QRCode string `json:"qr_code"`
		} `json:"transaction_data"`
	} `json:"point_of_interaction"`
}
