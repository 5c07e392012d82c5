package get_available_slots

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/m04kA/SMC-SalonBooking/internal/domain"
	serviceRepo "github.com/m04kA/SMC-SalonBooking/internal/infra/storage/service"
	"github.com/m04kA/SMC-SalonBooking/internal/scheduling"
	"github.com/m04kA/SMC-SalonBooking/pkg/ptr"
)

// UseCase use case для получения слотов мастера на дату
type UseCase struct {
	appointmentRepo  AppointmentRepository
	serviceRepo      ServiceRepository
	availabilityRepo AvailabilityRepository
	blockoutRepo     BlockoutRepository
	generator        SlotGenerator
	txManager        TransactionManager
	location         *time.Location
	timeProvider     TimeProvider
	logger           Logger
}

// NewUseCase создает новый экземпляр use case
func NewUseCase(
	appointmentRepo AppointmentRepository,
	serviceRepo ServiceRepository,
	availabilityRepo AvailabilityRepository,
	blockoutRepo BlockoutRepository,
	generator SlotGenerator,
	txManager TransactionManager,
	location *time.Location,
	logger Logger,
) *UseCase {
	if location == nil {
		location = time.UTC
	}
	return &UseCase{
		appointmentRepo:  appointmentRepo,
		serviceRepo:      serviceRepo,
		availabilityRepo: availabilityRepo,
		blockoutRepo:     blockoutRepo,
		generator:        generator,
		txManager:        txManager,
		location:         location,
		timeProvider:     &RealTimeProvider{},
		logger:           logger,
	}
}

// Execute генерирует слоты и помечает занятые существующими записями
func (uc *UseCase) Execute(ctx context.Context, req *Request) (*Response, error) {
	uc.logger.Info("GetAvailableSlots: professional=%s, service=%d, date=%s",
		req.ProfessionalID, req.ServiceID, req.Date.Format(domain.DateFormat))

	// 1. Валидация входных данных
	if err := validateRequest(req); err != nil {
		uc.logger.Warn("GetAvailableSlots: validation failed: %v", err)
		return nil, err
	}

	date := domain.DateOf(req.Date)
	now := uc.timeProvider.Now().In(uc.location)

	if date.Before(domain.DateOf(now)) {
		uc.logger.Warn("GetAvailableSlots: date %s is in the past", date.Format(domain.DateFormat))
		return nil, ErrInvalidDate
	}

	// 2. Получаем услугу
	service, err := uc.serviceRepo.GetByID(ctx, req.ServiceID)
	if err != nil {
		if errors.Is(err, serviceRepo.ErrServiceNotFound) {
			uc.logger.Warn("GetAvailableSlots: service id=%d not found", req.ServiceID)
			return nil, ErrServiceNotFound
		}
		uc.logger.Error("GetAvailableSlots: failed to get service id=%d: %v", req.ServiceID, err)
		return nil, fmt.Errorf("%w: failed to get service: %w", ErrInternal, err)
	}

	var slots []domain.Slot

	// 3. Правила, закрытые дни и записи читаем из одного снимка
	err = uc.txManager.DoReadOnly(ctx, func(txCtx context.Context) error {
		rules, err := uc.availabilityRepo.GetByProfessional(txCtx, req.ProfessionalID)
		if err != nil {
			return fmt.Errorf("%w: failed to get availability: %w", ErrInternal, err)
		}

		slots = scheduling.NewSlots(uc.generator.Generate(date, service, rules))
		if len(slots) == 0 {
			return nil
		}

		blockouts, err := uc.blockoutRepo.GetByProfessional(txCtx, req.ProfessionalID, date, date)
		if err != nil {
			return fmt.Errorf("%w: failed to get blockouts: %w", ErrInternal, err)
		}
		if len(blockouts) > 0 {
			for i := range slots {
				slots[i].Available = false
			}
			return nil
		}

		appointments, err := uc.appointmentRepo.GetWithFilter(txCtx, domain.AppointmentsFilter{
			ProfessionalID: ptr.Ptr(req.ProfessionalID),
			StartDate:      &date,
			EndDate:        &date,
		})
		if err != nil {
			return fmt.Errorf("%w: failed to get appointments: %w", ErrInternal, err)
		}

		slots = scheduling.FilterConflicts(slots, appointments, service.DurationMinutes)
		return nil
	})

	if err != nil {
		uc.logger.Error("GetAvailableSlots: %v", err)
		if !errors.Is(err, domain.ErrBackend) {
			err = fmt.Errorf("%w: %w", ErrInternal, err)
		}
		return nil, err
	}

	slots = markPast(slots, date, now)

	uc.logger.Info("GetAvailableSlots: generated %d slots for professional=%s, service=%d, date=%s",
		len(slots), req.ProfessionalID, req.ServiceID, date.Format(domain.DateFormat))

	return &Response{
		Date:            date,
		ProfessionalID:  req.ProfessionalID,
		ServiceID:       req.ServiceID,
		DurationMinutes: service.DurationMinutes,
		Slots:           slots,
	}, nil
}
