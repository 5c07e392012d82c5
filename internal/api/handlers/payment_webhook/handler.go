package payment_webhook

import (
	"errors"
	"io"
	"net/http"

	"github.com/m04kA/SMC-SalonBooking/internal/api/handlers"
	processPaymentWebhook "github.com/m04kA/SMC-SalonBooking/internal/usecase/process_payment_webhook"
)

const (
	maxNotificationBytes = 64 << 10

	msgInvalidRequestBody = "некорректное уведомление"
	msgPaymentNotFound    = "платеж не найден"
)

type Handler struct {
	useCase ProcessPaymentWebhookUseCase
	logger  Logger
}

func NewHandler(useCase ProcessPaymentWebhookUseCase, logger Logger) *Handler {
	return &Handler{
		useCase: useCase,
		logger:  logger,
	}
}

// Handle POST /api/v1/payments/webhook
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	body, err := io.ReadAll(io.LimitReader(r.Body, maxNotificationBytes))
	if err != nil {
		h.logger.Warn("POST /payments/webhook - Failed to read body: %v", err)
		handlers.RespondBadRequest(w, msgInvalidRequestBody)
		return
	}

	useCaseReq, err := ToUseCaseRequest(body, r.URL.Query())
	if err != nil {
		h.logger.Warn("POST /payments/webhook - Invalid notification: %v", err)
		handlers.RespondBadRequest(w, msgInvalidRequestBody)
		return
	}

	result, err := h.useCase.Execute(r.Context(), useCaseReq)
	if err != nil {
		switch {
		case errors.Is(err, processPaymentWebhook.ErrPaymentNotFound):
			h.logger.Warn("POST /payments/webhook - Payment not found: payment=%s", useCaseReq.PaymentID)
			handlers.RespondNotFound(w, msgPaymentNotFound)

		case errors.Is(err, processPaymentWebhook.ErrInvalidInput),
			errors.Is(err, processPaymentWebhook.ErrReferenceMismatch):
			h.logger.Warn("POST /payments/webhook - Rejected notification: payment=%s, error=%v", useCaseReq.PaymentID, err)
			handlers.RespondBadRequest(w, msgInvalidRequestBody)

		default:
			// Шлюз повторит уведомление при ответе 5xx
			h.logger.Error("POST /payments/webhook - Failed to process: payment=%s, error=%v", useCaseReq.PaymentID, err)
			handlers.RespondDomainError(w, err, "")
		}
		return
	}

	h.logger.Info("POST /payments/webhook - Processed: type=%s, payment=%s, ignored=%t, appointment_status=%s",
		useCaseReq.Type, useCaseReq.PaymentID, result.Ignored, result.AppointmentStatus)
	handlers.RespondJSON(w, http.StatusOK, FromUseCaseResponse(result))
}
