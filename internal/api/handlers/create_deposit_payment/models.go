package create_deposit_payment

import (
	"time"

	createDepositPayment "github.com/m04kA/SMC-SalonBooking/internal/usecase/create_deposit_payment"
)

// PaymentResponse HTTP response model
type PaymentResponse struct {
	PaymentID         int64   `json:"paymentId"`
	AppointmentID     int64   `json:"appointmentId"`
	Amount            string  `json:"amount"` // "60.25"
	Status            string  `json:"status"`
	PixCode           string  `json:"pixCode"`
	ExternalReference string  `json:"externalReference"`
	ExpiresAt         *string `json:"expiresAt,omitempty"`
}

// FromUseCaseResponse конвертирует ответ use case в HTTP response
func FromUseCaseResponse(resp *createDepositPayment.Response) *PaymentResponse {
	out := &PaymentResponse{
		PaymentID:         resp.PaymentID,
		AppointmentID:     resp.AppointmentID,
		Amount:            resp.Amount.StringFixed(2),
		Status:            resp.Status,
		PixCode:           resp.PixCode,
		ExternalReference: resp.ExternalReference,
	}
	if resp.ExpiresAt != nil {
		expires := resp.ExpiresAt.Format(time.RFC3339)
		out.ExpiresAt = &expires
	}
	return out
}
