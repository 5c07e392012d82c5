package simulate_payment

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"

	"github.com/m04kA/SMC-SalonBooking/internal/integrations/paymentgateway"
	paymentRepo "github.com/m04kA/SMC-SalonBooking/internal/infra/storage/payment"
	"github.com/m04kA/SMC-SalonBooking/internal/usecase/process_payment_webhook"
)

// notification тело уведомления в формате шлюза
type notification struct {
	Type string `json:"type"`
	Data struct {
		ID string `json:"id"`
	} `json:"data"`
}

// UseCase проводит платеж в эмуляторе шлюза и запускает обработку уведомления
type UseCase struct {
	paymentRepo PaymentRepository
	settler     Settler
	webhook     WebhookProcessor
	logger      Logger
}

// NewUseCase создает новый экземпляр use case
func NewUseCase(paymentRepo PaymentRepository, settler Settler, webhook WebhookProcessor, logger Logger) *UseCase {
	return &UseCase{
		paymentRepo: paymentRepo,
		settler:     settler,
		webhook:     webhook,
		logger:      logger,
	}
}

// Execute выполняет use case эмуляции оплаты
func (uc *UseCase) Execute(ctx context.Context, req *Request) (*Response, error) {
	uc.logger.Info("SimulatePayment: payment=%d, status=%s", req.PaymentID, req.Status)

	if req.PaymentID <= 0 {
		return nil, fmt.Errorf("%w: paymentId must be positive", ErrInvalidInput)
	}
	if req.Status == "" {
		return nil, fmt.Errorf("%w: status is required", ErrInvalidInput)
	}

	payment, err := uc.paymentRepo.GetByID(ctx, req.PaymentID)
	if err != nil {
		if errors.Is(err, paymentRepo.ErrPaymentNotFound) {
			uc.logger.Warn("SimulatePayment: payment id=%d not found", req.PaymentID)
			return nil, ErrPaymentNotFound
		}
		uc.logger.Error("SimulatePayment: failed to get payment id=%d: %v", req.PaymentID, err)
		return nil, fmt.Errorf("%w: failed to get payment: %w", ErrInternal, err)
	}

	if _, err := uc.settler.Settle(ctx, payment.ExternalID, req.Status); err != nil {
		switch {
		case errors.Is(err, paymentgateway.ErrInvalidStatus):
			return nil, fmt.Errorf("%w: %v", ErrInvalidInput, err)
		case errors.Is(err, paymentgateway.ErrPaymentNotFound):
			uc.logger.Warn("SimulatePayment: charge=%s unknown to the gateway", payment.ExternalID)
			return nil, ErrPaymentNotFound
		default:
			uc.logger.Error("SimulatePayment: settle failed for payment id=%d: %v", payment.ID, err)
			return nil, fmt.Errorf("%w: settle failed: %w", ErrInternal, err)
		}
	}

	var body notification
	body.Type = process_payment_webhook.NotificationTypePayment
	body.Data.ID = payment.ExternalID
	raw, err := json.Marshal(body)
	if err != nil {
		return nil, fmt.Errorf("%w: failed to encode notification: %v", ErrInternal, err)
	}

	result, err := uc.webhook.Execute(ctx, &process_payment_webhook.Request{
		Type:      body.Type,
		PaymentID: payment.ExternalID,
		RawBody:   raw,
	})
	if err != nil {
		return nil, err
	}

	return &Response{
		PaymentID:         result.PaymentID,
		AppointmentID:     result.AppointmentID,
		PaymentStatus:     result.PaymentStatus,
		AppointmentStatus: result.AppointmentStatus,
	}, nil
}
