package create_deposit_payment

import (
	"errors"
	"net/http"

	"github.com/m04kA/SMC-SalonBooking/internal/api/handlers"
	"github.com/m04kA/SMC-SalonBooking/internal/api/middleware"
	createDepositPayment "github.com/m04kA/SMC-SalonBooking/internal/usecase/create_deposit_payment"
)

const (
	msgInvalidAppointmentID = "некорректный ID записи"
	msgMissingUserID        = "отсутствует ID пользователя"
	msgNotFound             = "запись не найдена"
	msgForbidden            = "доступ запрещен"
	msgNotPending           = "предоплата возможна только для записи в статусе pending"
	msgPaymentExists        = "предоплата для записи уже создана"
)

type Handler struct {
	useCase CreateDepositPaymentUseCase
	logger  Logger
}

func NewHandler(useCase CreateDepositPaymentUseCase, logger Logger) *Handler {
	return &Handler{
		useCase: useCase,
		logger:  logger,
	}
}

// Handle POST /api/v1/appointments/{appointmentId}/payments
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	appointmentID, err := handlers.PathInt64(r, "appointmentId")
	if err != nil {
		handlers.RespondBadRequest(w, msgInvalidAppointmentID)
		return
	}

	userID, ok := middleware.GetUserID(r.Context())
	if !ok {
		handlers.RespondUnauthorized(w, msgMissingUserID)
		return
	}

	result, err := h.useCase.Execute(r.Context(), &createDepositPayment.Request{
		UserID:        userID,
		AppointmentID: appointmentID,
	})
	if err != nil {
		switch {
		case errors.Is(err, createDepositPayment.ErrAppointmentNotFound):
			handlers.RespondNotFound(w, msgNotFound)

		case errors.Is(err, createDepositPayment.ErrAccessDenied):
			h.logger.Warn("POST /appointments/{id}/payments - Access denied: appointment_id=%d, user_id=%s", appointmentID, userID)
			handlers.RespondForbidden(w, msgForbidden)

		case errors.Is(err, createDepositPayment.ErrNotPending):
			handlers.RespondConflict(w, msgNotPending)

		case errors.Is(err, createDepositPayment.ErrPaymentExists):
			handlers.RespondConflict(w, msgPaymentExists)

		default:
			h.logger.Error("POST /appointments/{id}/payments - Failed to create payment: appointment_id=%d, error=%v", appointmentID, err)
			handlers.RespondDomainError(w, err, "")
		}
		return
	}

	h.logger.Info("POST /appointments/{id}/payments - Deposit created: appointment_id=%d, payment_id=%d, amount=%s",
		appointmentID, result.PaymentID, result.Amount.StringFixed(2))
	handlers.RespondJSON(w, http.StatusCreated, FromUseCaseResponse(result))
}
