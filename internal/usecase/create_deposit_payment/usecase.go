package create_deposit_payment

import (
	"context"
	"errors"
	"fmt"

	"github.com/m04kA/SMC-SalonBooking/internal/domain"
	"github.com/m04kA/SMC-SalonBooking/internal/integrations/paymentgateway"
	appointmentRepo "github.com/m04kA/SMC-SalonBooking/internal/infra/storage/appointment"
	paymentRepo "github.com/m04kA/SMC-SalonBooking/internal/infra/storage/payment"
	profileRepo "github.com/m04kA/SMC-SalonBooking/internal/infra/storage/profile"
)

// UseCase use case для создания предоплаты (sinal) по записи
type UseCase struct {
	appointmentRepo AppointmentRepository
	paymentRepo     PaymentRepository
	serviceRepo     ServiceRepository
	profileRepo     ProfileRepository
	gateway         PaymentGateway
	depositPercent  int
	timeProvider    TimeProvider
	logger          Logger
}

// NewUseCase создает новый экземпляр use case
func NewUseCase(
	appointmentRepo AppointmentRepository,
	paymentRepo PaymentRepository,
	serviceRepo ServiceRepository,
	profileRepo ProfileRepository,
	gateway PaymentGateway,
	depositPercent int,
	logger Logger,
) *UseCase {
	if depositPercent <= 0 {
		depositPercent = domain.DefaultDepositPercent
	}
	return &UseCase{
		appointmentRepo: appointmentRepo,
		paymentRepo:     paymentRepo,
		serviceRepo:     serviceRepo,
		profileRepo:     profileRepo,
		gateway:         gateway,
		depositPercent:  depositPercent,
		timeProvider:    &RealTimeProvider{},
		logger:          logger,
	}
}

// Execute создает PIX-платеж на процент от цены услуги
func (uc *UseCase) Execute(ctx context.Context, req *Request) (*Response, error) {
	uc.logger.Info("CreateDepositPayment: user=%s, appointment=%d", req.UserID, req.AppointmentID)

	if err := validateRequest(req); err != nil {
		uc.logger.Warn("CreateDepositPayment: validation failed: %v", err)
		return nil, err
	}

	// 1. Запись принадлежит клиенту и ждет оплаты
	appointment, err := uc.appointmentRepo.GetByID(ctx, req.AppointmentID)
	if err != nil {
		if errors.Is(err, appointmentRepo.ErrAppointmentNotFound) {
			uc.logger.Warn("CreateDepositPayment: appointment id=%d not found", req.AppointmentID)
			return nil, ErrAppointmentNotFound
		}
		uc.logger.Error("CreateDepositPayment: failed to get appointment id=%d: %v", req.AppointmentID, err)
		return nil, fmt.Errorf("%w: failed to get appointment: %w", ErrInternal, err)
	}

	if appointment.UserID != req.UserID {
		uc.logger.Warn("CreateDepositPayment: user=%s is not the owner of appointment id=%d", req.UserID, appointment.ID)
		return nil, ErrAccessDenied
	}

	if appointment.Status != domain.StatusPending {
		uc.logger.Warn("CreateDepositPayment: appointment id=%d has status=%s", appointment.ID, appointment.Status)
		return nil, ErrNotPending
	}

	// 2. Одна предоплата на запись
	existing, err := uc.paymentRepo.GetByAppointmentID(ctx, appointment.ID)
	if err != nil && !errors.Is(err, paymentRepo.ErrPaymentNotFound) {
		uc.logger.Error("CreateDepositPayment: failed to get payment for appointment id=%d: %v", appointment.ID, err)
		return nil, fmt.Errorf("%w: failed to get payment: %w", ErrInternal, err)
	}
	if existing != nil {
		uc.logger.Warn("CreateDepositPayment: appointment id=%d already has payment id=%d", appointment.ID, existing.ID)
		return nil, ErrPaymentExists
	}

	// 3. Сумма предоплаты
	service, err := uc.serviceRepo.GetByID(ctx, appointment.ServiceID)
	if err != nil {
		uc.logger.Error("CreateDepositPayment: failed to get service id=%d: %v", appointment.ServiceID, err)
		return nil, fmt.Errorf("%w: failed to get service: %w", ErrInternal, err)
	}
	amount := service.DepositAmount(uc.depositPercent)

	payer, err := uc.profileRepo.GetByID(ctx, req.UserID)
	if err != nil && !errors.Is(err, profileRepo.ErrProfileNotFound) {
		uc.logger.Error("CreateDepositPayment: failed to get profile id=%s: %v", req.UserID, err)
		return nil, fmt.Errorf("%w: failed to get profile: %w", ErrInternal, err)
	}

	chargeReq := paymentgateway.CreateChargeRequest{
		Amount:            amount,
		Description:       fmt.Sprintf("Sinal: %s", service.Name),
		ExternalReference: domain.ExternalReferenceFor(appointment.ID, uc.timeProvider.Now()),
	}
	if payer != nil {
		chargeReq.PayerEmail = payer.Email
	}

	// 4. Платеж в шлюзе
	charge, err := uc.gateway.CreatePixCharge(ctx, chargeReq)
	if err != nil {
		uc.logger.Error("CreateDepositPayment: gateway failed for appointment id=%d: %v", appointment.ID, err)
		return nil, fmt.Errorf("%w: %w", ErrGateway, err)
	}

	// 5. Сохраняем платеж
	payment, err := uc.paymentRepo.Create(ctx, &domain.Payment{
		AppointmentID:     appointment.ID,
		Amount:            amount,
		Status:            domain.MapGatewayStatus(charge.Status),
		Method:            domain.PaymentMethodPix,
		ExternalID:        charge.ID,
		ExternalReference: chargeReq.ExternalReference,
		PixCode:           charge.PixCode,
		ExpiresAt:         charge.ExpiresAt,
	})
	if err != nil {
		if errors.Is(err, paymentRepo.ErrPaymentExists) {
			uc.logger.Warn("CreateDepositPayment: concurrent payment for appointment id=%d", appointment.ID)
			return nil, ErrPaymentExists
		}
		uc.logger.Error("CreateDepositPayment: failed to save payment for appointment id=%d: %v", appointment.ID, err)
		return nil, fmt.Errorf("%w: failed to save payment: %w", ErrInternal, err)
	}

	uc.logger.Info("CreateDepositPayment: created payment id=%d amount=%s for appointment id=%d",
		payment.ID, amount.StringFixed(2), appointment.ID)

	return &Response{
		PaymentID:         payment.ID,
		AppointmentID:     appointment.ID,
		Amount:            payment.Amount,
		Status:            string(payment.Status),
		PixCode:           payment.PixCode,
		ExternalReference: payment.ExternalReference,
		ExpiresAt:         payment.ExpiresAt,
	}, nil
}
