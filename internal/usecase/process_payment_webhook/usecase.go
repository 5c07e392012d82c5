package process_payment_webhook

import (
	"context"
	"errors"
	"fmt"

	"github.com/m04kA/SMC-SalonBooking/internal/domain"
	"github.com/m04kA/SMC-SalonBooking/internal/integrations/paymentgateway"
	appointmentRepo "github.com/m04kA/SMC-SalonBooking/internal/infra/storage/appointment"
	paymentRepo "github.com/m04kA/SMC-SalonBooking/internal/infra/storage/payment"
	"github.com/m04kA/SMC-SalonBooking/pkg/ptr"
)

const rejectedPaymentReason = "payment rejected"

// UseCase use case обработки уведомления платежного шлюза
type UseCase struct {
	appointmentRepo AppointmentRepository
	paymentRepo     PaymentRepository
	gateway         PaymentGateway
	txManager       TransactionManager
	logger          Logger
}

// NewUseCase создает новый экземпляр use case
func NewUseCase(
	appointmentRepo AppointmentRepository,
	paymentRepo PaymentRepository,
	gateway PaymentGateway,
	txManager TransactionManager,
	logger Logger,
) *UseCase {
	return &UseCase{
		appointmentRepo: appointmentRepo,
		paymentRepo:     paymentRepo,
		gateway:         gateway,
		txManager:       txManager,
		logger:          logger,
	}
}

// Execute запрашивает актуальный статус платежа в шлюзе, обновляет платеж
// и переводит запись: approved -> confirmed, rejected -> cancelled.
func (uc *UseCase) Execute(ctx context.Context, req *Request) (*Response, error) {
	uc.logger.Info("ProcessPaymentWebhook: type=%s, payment=%s", req.Type, req.PaymentID)

	if req.Type != NotificationTypePayment {
		uc.logger.Info("ProcessPaymentWebhook: ignoring notification type=%s", req.Type)
		return &Response{Ignored: true}, nil
	}

	if req.PaymentID == "" {
		uc.logger.Warn("ProcessPaymentWebhook: missing data.id")
		return nil, fmt.Errorf("%w: data.id is required", ErrInvalidInput)
	}

	// 1. Статус берем из шлюза, телу уведомления не доверяем
	charge, err := uc.gateway.GetPayment(ctx, req.PaymentID)
	if err != nil {
		if errors.Is(err, paymentgateway.ErrPaymentNotFound) {
			uc.logger.Warn("ProcessPaymentWebhook: payment=%s not found in gateway", req.PaymentID)
			return nil, ErrPaymentNotFound
		}
		uc.logger.Error("ProcessPaymentWebhook: gateway failed for payment=%s: %v", req.PaymentID, err)
		return nil, fmt.Errorf("%w: %w", ErrGateway, err)
	}

	status := domain.MapGatewayStatus(charge.Status)

	appointmentID, err := domain.ParseExternalReference(charge.ExternalReference)
	if err != nil {
		uc.logger.Warn("ProcessPaymentWebhook: %v", err)
		return nil, fmt.Errorf("%w: %v", ErrInvalidInput, err)
	}

	resp := &Response{AppointmentID: appointmentID, PaymentStatus: string(status)}

	// 2. Платеж, запись и журнал меняются атомарно
	err = uc.txManager.Do(ctx, func(txCtx context.Context) error {
		payment, err := uc.paymentRepo.GetByExternalID(txCtx, charge.ID)
		if err != nil {
			if errors.Is(err, paymentRepo.ErrPaymentNotFound) {
				return ErrPaymentNotFound
			}
			return fmt.Errorf("%w: failed to get payment: %w", ErrInternal, err)
		}
		if payment.AppointmentID != appointmentID {
			return fmt.Errorf("%w: payment id=%d belongs to appointment id=%d", ErrReferenceMismatch, payment.ID, payment.AppointmentID)
		}
		resp.PaymentID = payment.ID

		if payment.Status != status {
			if err := uc.paymentRepo.UpdateStatus(txCtx, payment.ID, status); err != nil {
				return fmt.Errorf("%w: failed to update payment: %w", ErrInternal, err)
			}
		}

		appointment, err := uc.appointmentRepo.GetByIDForUpdate(txCtx, appointmentID)
		if err != nil {
			if errors.Is(err, appointmentRepo.ErrAppointmentNotFound) {
				return fmt.Errorf("%w: appointment id=%d", ErrReferenceMismatch, appointmentID)
			}
			return fmt.Errorf("%w: failed to get appointment: %w", ErrInternal, err)
		}
		resp.AppointmentStatus = string(appointment.Status)

		if next, ok := domain.AppointmentStatusFor(status); ok && appointment.Status != next {
			if !appointment.Status.CanTransitionTo(next) {
				uc.logger.Warn("ProcessPaymentWebhook: appointment id=%d cannot move from %s to %s",
					appointment.ID, appointment.Status, next)
			} else {
				if err := uc.transition(txCtx, appointment.ID, next); err != nil {
					return err
				}
				resp.AppointmentStatus = string(next)
			}
		}

		raw := req.RawBody
		if len(raw) == 0 {
			raw = []byte("{}")
		}
		if err := uc.paymentRepo.SaveNotification(txCtx, &domain.PaymentNotification{
			PaymentID:         payment.ID,
			ExternalPaymentID: charge.ID,
			Status:            status,
			RawData:           raw,
		}); err != nil {
			return fmt.Errorf("%w: failed to save notification: %w", ErrInternal, err)
		}

		return nil
	})

	if err != nil {
		switch {
		case errors.Is(err, domain.ErrValidation), errors.Is(err, domain.ErrNotFound):
			uc.logger.Warn("ProcessPaymentWebhook: rejected: %v", err)
			return nil, err
		case errors.Is(err, domain.ErrBackend):
			uc.logger.Error("ProcessPaymentWebhook: %v", err)
			return nil, err
		default:
			uc.logger.Error("ProcessPaymentWebhook: transaction failed: %v", err)
			return nil, fmt.Errorf("%w: %w", ErrInternal, err)
		}
	}

	uc.logger.Info("ProcessPaymentWebhook: payment id=%d is %s, appointment id=%d is %s",
		resp.PaymentID, resp.PaymentStatus, resp.AppointmentID, resp.AppointmentStatus)

	return resp, nil
}

func (uc *UseCase) transition(ctx context.Context, appointmentID int64, next domain.AppointmentStatus) error {
	var err error
	if next == domain.StatusCancelled {
		err = uc.appointmentRepo.Cancel(ctx, appointmentID, ptr.Ptr(rejectedPaymentReason))
	} else {
		err = uc.appointmentRepo.UpdateStatus(ctx, appointmentID, next)
	}
	if err != nil {
		return fmt.Errorf("%w: failed to move appointment id=%d to %s: %w", ErrInternal, appointmentID, next, err)
	}
	return nil
}
