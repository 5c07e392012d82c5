package get_calendar

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/m04kA/SMC-SalonBooking/internal/domain"
	profileRepo "github.com/m04kA/SMC-SalonBooking/internal/infra/storage/profile"
	"github.com/m04kA/SMC-SalonBooking/internal/scheduling"
	"github.com/m04kA/SMC-SalonBooking/pkg/ptr"
)

// UseCase use case для построения календаря записи
type UseCase struct {
	appointmentRepo  AppointmentRepository
	profileRepo      ProfileRepository
	availabilityRepo AvailabilityRepository
	blockoutRepo     BlockoutRepository
	booked           BookedDatesCalculator
	txManager        TransactionManager
	location         *time.Location
	timeProvider     TimeProvider
	logger           Logger
}

// NewUseCase создает новый экземпляр use case
func NewUseCase(
	appointmentRepo AppointmentRepository,
	profileRepo ProfileRepository,
	availabilityRepo AvailabilityRepository,
	blockoutRepo BlockoutRepository,
	booked BookedDatesCalculator,
	txManager TransactionManager,
	location *time.Location,
	logger Logger,
) *UseCase {
	if location == nil {
		location = time.UTC
	}
	return &UseCase{
		appointmentRepo:  appointmentRepo,
		profileRepo:      profileRepo,
		availabilityRepo: availabilityRepo,
		blockoutRepo:     blockoutRepo,
		booked:           booked,
		txManager:        txManager,
		location:         location,
		timeProvider:     &RealTimeProvider{},
		logger:           logger,
	}
}

// Execute строит сетку месяца. Без мастера выходные недоступны, будни доступны.
func (uc *UseCase) Execute(ctx context.Context, req *Request) (*Response, error) {
	if req.Month.IsZero() {
		return nil, fmt.Errorf("%w: month is required", ErrInvalidInput)
	}

	month, _ := scheduling.MonthRange(req.Month)
	today := domain.DateOf(uc.timeProvider.Now().In(uc.location))

	uc.logger.Info("GetCalendar: month=%s, professional=%q", month.Format(domain.MonthFormat), req.ProfessionalID)

	if req.ProfessionalID == "" {
		return &Response{
			Month: month,
			Days:  scheduling.EvaluateMonth(month, scheduling.WeekdaysPolicy{}, nil, today),
		}, nil
	}

	var (
		rules       []*domain.AvailabilityRule
		bookedDates []time.Time
	)

	err := uc.txManager.DoReadOnly(ctx, func(txCtx context.Context) error {
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

		rules, err = uc.availabilityRepo.GetByProfessional(txCtx, req.ProfessionalID)
		if err != nil {
			return fmt.Errorf("%w: failed to get availability: %w", ErrInternal, err)
		}

		from, to := scheduling.MonthRange(month)
		if to.Before(today) {
			return nil
		}
		if from.Before(today) {
			from = today
		}

		blockouts, err := uc.blockoutRepo.GetByProfessional(txCtx, req.ProfessionalID, from, to)
		if err != nil {
			return fmt.Errorf("%w: failed to get blockouts: %w", ErrInternal, err)
		}

		appointments, err := uc.appointmentRepo.GetWithFilter(txCtx, domain.AppointmentsFilter{
			ProfessionalID: ptr.Ptr(req.ProfessionalID),
			StartDate:      &from,
			EndDate:        &to,
		})
		if err != nil {
			return fmt.Errorf("%w: failed to get appointments: %w", ErrInternal, err)
		}

		bookedDates = uc.booked.FullyBookedDates(from, to, rules, appointments, blockouts)
		return nil
	})

	if err != nil {
		if errors.Is(err, ErrProfessionalNotFound) {
			uc.logger.Warn("GetCalendar: professional=%s not found", req.ProfessionalID)
			return nil, err
		}
		uc.logger.Error("GetCalendar: %v", err)
		if !errors.Is(err, domain.ErrBackend) {
			err = fmt.Errorf("%w: %w", ErrInternal, err)
		}
		return nil, err
	}

	uc.logger.Info("GetCalendar: professional=%s has %d booked dates in %s",
		req.ProfessionalID, len(bookedDates), month.Format(domain.MonthFormat))

	return &Response{
		Month:          month,
		ProfessionalID: req.ProfessionalID,
		Days:           scheduling.EvaluateMonth(month, scheduling.RulesPolicy(rules), bookedDates, today),
	}, nil
}
