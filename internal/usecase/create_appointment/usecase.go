package create_appointment

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/m04kA/SMC-SalonBooking/internal/domain"
	appointmentRepo "github.com/m04kA/SMC-SalonBooking/internal/infra/storage/appointment"
	profileRepo "github.com/m04kA/SMC-SalonBooking/internal/infra/storage/profile"
	serviceRepo "github.com/m04kA/SMC-SalonBooking/internal/infra/storage/service"
	"github.com/m04kA/SMC-SalonBooking/internal/scheduling"
	"github.com/m04kA/SMC-SalonBooking/pkg/metrics"
	"github.com/m04kA/SMC-SalonBooking/pkg/pgerr"
	"github.com/m04kA/SMC-SalonBooking/pkg/ptr"
)

// UseCase use case для создания записи
type UseCase struct {
	appointmentRepo  AppointmentRepository
	serviceRepo      ServiceRepository
	profileRepo      ProfileRepository
	availabilityRepo AvailabilityRepository
	blockoutRepo     BlockoutRepository
	generator        SlotGenerator
	txManager        TransactionManager
	observer         BookingObserver
	location         *time.Location
	timeProvider     TimeProvider
	logger           Logger
}

// NewUseCase создает новый экземпляр use case
func NewUseCase(
	appointmentRepo AppointmentRepository,
	serviceRepo ServiceRepository,
	profileRepo ProfileRepository,
	availabilityRepo AvailabilityRepository,
	blockoutRepo BlockoutRepository,
	generator SlotGenerator,
	txManager TransactionManager,
	observer BookingObserver,
	location *time.Location,
	logger Logger,
) *UseCase {
	if location == nil {
		location = time.UTC
	}
	return &UseCase{
		appointmentRepo:  appointmentRepo,
		serviceRepo:      serviceRepo,
		profileRepo:      profileRepo,
		availabilityRepo: availabilityRepo,
		blockoutRepo:     blockoutRepo,
		generator:        generator,
		txManager:        txManager,
		observer:         observer,
		location:         location,
		timeProvider:     &RealTimeProvider{},
		logger:           logger,
	}
}

// Execute создает запись в статусе pending.
// Доступность слота перепроверяется на свежем состоянии внутри сериализуемой транзакции.
func (uc *UseCase) Execute(ctx context.Context, req *Request) (*Response, error) {
	resp, err := uc.execute(ctx, req)
	uc.observer.ObserveBooking(outcomeOf(err))
	return resp, err
}

func (uc *UseCase) execute(ctx context.Context, req *Request) (*Response, error) {
	uc.logger.Info("CreateAppointment: user=%s, professional=%s, service=%d, date=%s, time=%s",
		req.UserID, req.ProfessionalID, req.ServiceID, req.Date.Format(domain.DateFormat), req.StartTime)

	// 1. Локальная валидация, без обращения к хранилищу
	if err := validateRequest(req); err != nil {
		uc.logger.Warn("CreateAppointment: validation failed: %v", err)
		return nil, err
	}

	date := domain.DateOf(req.Date)
	now := uc.timeProvider.Now().In(uc.location)

	if err := validateDate(date, req.StartTime, now); err != nil {
		uc.logger.Warn("CreateAppointment: date validation failed: %v", err)
		return nil, err
	}

	// 2. Услуга (справочные данные, могут идти из кэша)
	service, err := uc.serviceRepo.GetByID(ctx, req.ServiceID)
	if err != nil {
		if errors.Is(err, serviceRepo.ErrServiceNotFound) {
			uc.logger.Warn("CreateAppointment: service id=%d not found", req.ServiceID)
			return nil, ErrServiceNotFound
		}
		uc.logger.Error("CreateAppointment: failed to get service id=%d: %v", req.ServiceID, err)
		return nil, fmt.Errorf("%w: failed to get service: %w", ErrInternal, err)
	}

	var result *domain.Appointment

	// 3. Проверка и вставка в одной сериализуемой транзакции
	err = uc.txManager.DoSerializable(ctx, func(txCtx context.Context) error {
		role, err := uc.profileRepo.GetRole(txCtx, req.ProfessionalID)
		if err != nil {
			if errors.Is(err, profileRepo.ErrProfileNotFound) {
				return ErrProfessionalNotFound
			}
			return fmt.Errorf("%w: failed to get professional: %w", ErrInternal, err)
		}
		if role != domain.RoleProfessional {
			return ErrProfessionalNotFound
		}

		blockouts, err := uc.blockoutRepo.GetByProfessional(txCtx, req.ProfessionalID, date, date)
		if err != nil {
			return fmt.Errorf("%w: failed to get blockouts: %w", ErrInternal, err)
		}
		if len(blockouts) > 0 {
			return ErrDayBlocked
		}

		rules, err := uc.availabilityRepo.GetByProfessional(txCtx, req.ProfessionalID)
		if err != nil {
			return fmt.Errorf("%w: failed to get availability: %w", ErrInternal, err)
		}

		starts := uc.generator.Generate(date, service, rules)
		if !containsTime(starts, req.StartTime) {
			return fmt.Errorf("%w: %s is outside working hours", ErrInvalidTimeSlot, req.StartTime)
		}

		// Записи мастера на дату с блокировкой (FOR UPDATE)
		existing, err := uc.appointmentRepo.GetWithFilterForUpdate(txCtx, domain.AppointmentsFilter{
			ProfessionalID: ptr.Ptr(req.ProfessionalID),
			StartDate:      &date,
			EndDate:        &date,
		})
		if err != nil {
			return fmt.Errorf("%w: failed to get appointments: %w", ErrInternal, err)
		}

		slots := scheduling.FilterConflicts(scheduling.NewSlots(starts), existing, service.DurationMinutes)
		if !scheduling.IsSlotAvailable(slots, req.StartTime) {
			return ErrSlotNotAvailable
		}

		created, err := uc.appointmentRepo.Create(txCtx, &domain.Appointment{
			UserID:          req.UserID,
			ProfessionalID:  req.ProfessionalID,
			ServiceID:       service.ID,
			Date:            date,
			StartTime:       req.StartTime,
			DurationMinutes: service.DurationMinutes,
			Status:          domain.StatusPending,
			Notes:           req.Notes,
		})
		if err != nil {
			if errors.Is(err, appointmentRepo.ErrSlotTaken) {
				return fmt.Errorf("%w: %v", ErrSlotNotAvailable, err)
			}
			return fmt.Errorf("%w: failed to create appointment: %w", ErrInternal, err)
		}

		result = created
		return nil
	})

	if err != nil {
		switch {
		case errors.Is(err, domain.ErrValidation), errors.Is(err, domain.ErrConflict):
			uc.logger.Warn("CreateAppointment: rejected: %v", err)
			return nil, err
		case pgerr.IsSerializationFailure(err):
			// Повторы исчерпаны, параллельная запись заняла слот
			uc.logger.Warn("CreateAppointment: serialization failure after retries: %v", err)
			return nil, fmt.Errorf("%w: %v", ErrSlotNotAvailable, err)
		case errors.Is(err, domain.ErrBackend):
			uc.logger.Error("CreateAppointment: %v", err)
			return nil, err
		default:
			uc.logger.Error("CreateAppointment: transaction failed: %v", err)
			return nil, fmt.Errorf("%w: %w", ErrInternal, err)
		}
	}

	uc.logger.Info("CreateAppointment: successfully created appointment id=%d", result.ID)

	return &Response{
		ID:              result.ID,
		UserID:          result.UserID,
		ProfessionalID:  result.ProfessionalID,
		ServiceID:       result.ServiceID,
		Date:            result.Date,
		StartTime:       result.StartTime,
		DurationMinutes: result.DurationMinutes,
		Status:          string(result.Status),
		Notes:           result.Notes,
		CreatedAt:       result.CreatedAt,
		UpdatedAt:       result.UpdatedAt,
	}, nil
}

// outcomeOf исход бронирования для метрик
func outcomeOf(err error) string {
	switch {
	case err == nil:
		return metrics.OutcomeCommitted
	case errors.Is(err, domain.ErrConflict):
		return metrics.OutcomeConflict
	case errors.Is(err, domain.ErrBackend):
		return metrics.OutcomeBackend
	default:
		return metrics.OutcomeValidation
	}
}
