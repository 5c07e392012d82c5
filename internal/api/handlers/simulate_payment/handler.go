package simulate_payment

import (
	"errors"
	"net/http"

	"github.com/m04kA/SMC-SalonBooking/internal/api/handlers"
	simulatePayment "github.com/m04kA/SMC-SalonBooking/internal/usecase/simulate_payment"
)

const (
	msgInvalidPaymentID   = "некорректный ID платежа"
	msgInvalidRequestBody = "некорректное тело запроса"
	msgPaymentNotFound    = "платеж не найден"
	msgInvalidStatus      = "некорректный статус платежа"
)

type Handler struct {
	useCase SimulatePaymentUseCase
	logger  Logger
}

func NewHandler(useCase SimulatePaymentUseCase, logger Logger) *Handler {
	return &Handler{
		useCase: useCase,
		logger:  logger,
	}
}

// Handle POST /api/v1/payments/{paymentId}/simulate
// Регистрируется только при mock шлюзе.
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	paymentID, err := handlers.PathInt64(r, "paymentId")
	if err != nil {
		handlers.RespondBadRequest(w, msgInvalidPaymentID)
		return
	}

	var req SimulatePaymentRequest
	if err := handlers.DecodeJSON(r, &req); err != nil {
		h.logger.Warn("POST /payments/{id}/simulate - Invalid request body: %v", err)
		handlers.RespondBadRequest(w, msgInvalidRequestBody)
		return
	}

	result, err := h.useCase.Execute(r.Context(), &simulatePayment.Request{
		PaymentID: paymentID,
		Status:    req.Status,
	})
	if err != nil {
		switch {
		case errors.Is(err, simulatePayment.ErrPaymentNotFound):
			handlers.RespondNotFound(w, msgPaymentNotFound)
		case errors.Is(err, simulatePayment.ErrInvalidInput):
			handlers.RespondBadRequest(w, msgInvalidStatus)
		default:
			h.logger.Error("POST /payments/{id}/simulate - Failed to simulate: payment_id=%d, error=%v", paymentID, err)
			handlers.RespondDomainError(w, err, "")
		}
		return
	}

	h.logger.Info("POST /payments/{id}/simulate - Settled: payment_id=%d, status=%s, appointment_status=%s",
		paymentID, result.PaymentStatus, result.AppointmentStatus)
	handlers.RespondJSON(w, http.StatusOK, FromUseCaseResponse(result))
}
