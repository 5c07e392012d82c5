package simulate_payment

import simulatePayment "github.com/m04kA/SMC-SalonBooking/internal/usecase/simulate_payment"

// SimulatePaymentRequest HTTP request model
type SimulatePaymentRequest struct {
	Status string `json:"status" validate:"required,oneof=approved rejected cancelled refunded charged_back pending"`
}

// SimulatePaymentResponse HTTP response model
type SimulatePaymentResponse struct {
	PaymentID         int64  `json:"paymentId"`
	AppointmentID     int64  `json:"appointmentId"`
	PaymentStatus     string `json:"paymentStatus"`
	AppointmentStatus string `json:"appointmentStatus"`
}

// FromUseCaseResponse конвертирует ответ use case в HTTP response
func FromUseCaseResponse(resp *simulatePayment.Response) *SimulatePaymentResponse {
	return &SimulatePaymentResponse{
		PaymentID:         resp.PaymentID,
		AppointmentID:     resp.AppointmentID,
		PaymentStatus:     resp.PaymentStatus,
		AppointmentStatus: resp.AppointmentStatus,
	}
}
