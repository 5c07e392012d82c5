package appointments

import (
	"context"
	"errors"
	"fmt"

	"github.com/m04kA/SMC-SalonBooking/internal/domain"
	appointmentRepo "github.com/m04kA/SMC-SalonBooking/internal/infra/storage/appointment"
	"github.com/m04kA/SMC-SalonBooking/internal/service/appointments/models"
	"github.com/m04kA/SMC-SalonBooking/pkg/ptr"
)

// Service сервис для работы с записями
type Service struct {
	appointmentRepo AppointmentRepository
	serviceRepo     ServiceRepository
	txManager       TransactionManager
	logger          Logger
}

// NewService создает новый экземпляр сервиса записей
func NewService(
	appointmentRepo AppointmentRepository,
	serviceRepo ServiceRepository,
	txManager TransactionManager,
	logger Logger,
) *Service {
	return &Service{
		appointmentRepo: appointmentRepo,
		serviceRepo:     serviceRepo,
		txManager:       txManager,
		logger:          logger,
	}
}

// GetByID получает запись по ID.
// Видна клиенту, мастеру записи и администратору.
func (s *Service) GetByID(ctx context.Context, id int64, identity domain.Identity) (*models.AppointmentResponse, error) {
	s.logger.Info("GetByID: fetching appointment id=%d for user=%s", id, identity.UserID)

	if identity.IsZero() {
		return nil, ErrUnauthenticated
	}

	appointment, err := s.appointmentRepo.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, appointmentRepo.ErrAppointmentNotFound) {
			s.logger.Warn("GetByID: appointment id=%d not found", id)
			return nil, ErrAppointmentNotFound
		}
		s.logger.Error("GetByID: repository error for appointment id=%d: %v", id, err)
		return nil, fmt.Errorf("%w: GetByID - repository error: %v", ErrInternal, err)
	}

	if !appointment.IsVisibleTo(identity) {
		s.logger.Warn("GetByID: access denied for user=%s to appointment id=%d", identity.UserID, id)
		return nil, ErrAccessDenied
	}

	services := s.lookupServices(ctx, []*domain.Appointment{appointment})

	s.logger.Info("GetByID: successfully fetched appointment id=%d", id)
	return models.FromDomainAppointment(appointment, services[appointment.ServiceID]), nil
}

// ListMine получает записи клиента, новые сначала. Опционально фильтрует по статусу.
func (s *Service) ListMine(ctx context.Context, req *models.ListMineRequest) (*models.AppointmentListResponse, error) {
	s.logger.Info("ListMine: fetching appointments for user=%s, status=%v", req.Identity.UserID, req.Status)

	if req.Identity.IsZero() {
		return nil, ErrUnauthenticated
	}

	filter := domain.AppointmentsFilter{
		UserID:          ptr.Ptr(req.Identity.UserID),
		IncludeInactive: true,
	}
	if req.Status != nil {
		status, err := models.ToDomainStatus(*req.Status)
		if err != nil {
			s.logger.Warn("ListMine: invalid status=%s for user=%s", *req.Status, req.Identity.UserID)
			return nil, fmt.Errorf("%w: invalid status", ErrInvalidInput)
		}
		filter.Status = &status
	}

	appointments, err := s.appointmentRepo.GetWithFilter(ctx, filter)
	if err != nil {
		s.logger.Error("ListMine: repository error for user=%s: %v", req.Identity.UserID, err)
		return nil, fmt.Errorf("%w: ListMine - repository error: %v", ErrInternal, err)
	}

	s.logger.Info("ListMine: successfully fetched %d appointments for user=%s", len(appointments), req.Identity.UserID)
	return models.FromDomainAppointmentList(appointments, s.lookupServices(ctx, appointments)), nil
}

// Agenda получает записи мастера с фильтрацией по периоду и статусу.
// Мастер видит только свою агенду, администратор указывает мастера явно.
func (s *Service) Agenda(ctx context.Context, req *models.AgendaRequest) (*models.AppointmentListResponse, error) {
	s.logger.Info("Agenda: fetching agenda for user=%s, role=%s", req.Identity.UserID, req.Identity.Role)

	if req.Identity.IsZero() {
		return nil, ErrUnauthenticated
	}

	var professionalID string
	switch {
	case req.Identity.IsProfessional():
		professionalID = req.Identity.UserID
	case req.Identity.IsAdmin() && req.ProfessionalID != nil && *req.ProfessionalID != "":
		professionalID = *req.ProfessionalID
	case req.Identity.IsAdmin():
		return nil, fmt.Errorf("%w: professionalId is required", ErrInvalidInput)
	default:
		s.logger.Warn("Agenda: user=%s with role=%s is not a professional", req.Identity.UserID, req.Identity.Role)
		return nil, ErrAccessDenied
	}

	if req.StartDate != nil && req.EndDate != nil && req.EndDate.Before(*req.StartDate) {
		return nil, fmt.Errorf("%w: endDate is before startDate", ErrInvalidInput)
	}

	filter, err := req.ToDomainFilter(professionalID)
	if err != nil {
		s.logger.Warn("Agenda: invalid filter for professional=%s: %v", professionalID, err)
		return nil, fmt.Errorf("%w: invalid filter", ErrInvalidInput)
	}

	appointments, err := s.appointmentRepo.GetWithFilter(ctx, filter)
	if err != nil {
		s.logger.Error("Agenda: repository error for professional=%s: %v", professionalID, err)
		return nil, fmt.Errorf("%w: Agenda - repository error: %v", ErrInternal, err)
	}

	s.logger.Info("Agenda: successfully fetched %d appointments for professional=%s", len(appointments), professionalID)
	return models.FromDomainAppointmentList(appointments, s.lookupServices(ctx, appointments)), nil
}

// Cancel отменяет запись. Доступно клиенту, мастеру записи и администратору,
// только из статусов pending и confirmed.
func (s *Service) Cancel(ctx context.Context, id int64, req *models.CancelRequest) (*models.AppointmentResponse, error) {
	s.logger.Info("Cancel: cancelling appointment id=%d by user=%s", id, req.Identity.UserID)

	if req.Identity.IsZero() {
		return nil, ErrUnauthenticated
	}
	if req.CancellationReason != nil && len(*req.CancellationReason) > domain.MaxCancellationReasonLength {
		return nil, fmt.Errorf("%w: cancellationReason must be at most %d characters", ErrInvalidInput, domain.MaxCancellationReasonLength)
	}

	var result *domain.Appointment
	err := s.txManager.Do(ctx, func(txCtx context.Context) error {
		appointment, err := s.getForUpdate(txCtx, "Cancel", id)
		if err != nil {
			return err
		}

		if !appointment.IsVisibleTo(req.Identity) {
			s.logger.Warn("Cancel: access denied for user=%s to appointment id=%d", req.Identity.UserID, id)
			return ErrAccessDenied
		}

		if !appointment.Status.CanTransitionTo(domain.StatusCancelled) {
			s.logger.Warn("Cancel: appointment id=%d cannot be cancelled, status=%s", id, appointment.Status)
			return ErrCannotCancel
		}

		if err := s.appointmentRepo.Cancel(txCtx, id, req.CancellationReason); err != nil {
			return s.mapWriteError("Cancel", id, err)
		}

		result, err = s.getForUpdate(txCtx, "Cancel", id)
		return err
	})
	if err != nil {
		return nil, err
	}

	s.logger.Info("Cancel: successfully cancelled appointment id=%d", id)
	return models.FromDomainAppointment(result, nil), nil
}

// Complete отмечает подтвержденную запись выполненной.
// Доступно мастеру записи и администратору.
func (s *Service) Complete(ctx context.Context, id int64, identity domain.Identity) (*models.AppointmentResponse, error) {
	s.logger.Info("Complete: completing appointment id=%d by user=%s", id, identity.UserID)

	if identity.IsZero() {
		return nil, ErrUnauthenticated
	}

	var result *domain.Appointment
	err := s.txManager.Do(ctx, func(txCtx context.Context) error {
		appointment, err := s.getForUpdate(txCtx, "Complete", id)
		if err != nil {
			return err
		}

		if !identity.IsAdmin() && appointment.ProfessionalID != identity.UserID {
			s.logger.Warn("Complete: access denied for user=%s to appointment id=%d", identity.UserID, id)
			return ErrAccessDenied
		}

		if !appointment.Status.CanTransitionTo(domain.StatusCompleted) {
			s.logger.Warn("Complete: appointment id=%d cannot be completed, status=%s", id, appointment.Status)
			return ErrCannotComplete
		}

		if err := s.appointmentRepo.UpdateStatus(txCtx, id, domain.StatusCompleted); err != nil {
			return s.mapWriteError("Complete", id, err)
		}

		appointment.Status = domain.StatusCompleted
		result = appointment
		return nil
	})
	if err != nil {
		return nil, err
	}

	s.logger.Info("Complete: successfully completed appointment id=%d", id)
	return models.FromDomainAppointment(result, nil), nil
}

// Вспомогательные методы

func (s *Service) getForUpdate(ctx context.Context, op string, id int64) (*domain.Appointment, error) {
	appointment, err := s.appointmentRepo.GetByIDForUpdate(ctx, id)
	if err != nil {
		if errors.Is(err, appointmentRepo.ErrAppointmentNotFound) {
			s.logger.Warn("%s: appointment id=%d not found", op, id)
			return nil, ErrAppointmentNotFound
		}
		s.logger.Error("%s: repository error for appointment id=%d: %v", op, id, err)
		return nil, fmt.Errorf("%w: %s - repository error: %w", ErrInternal, op, err)
	}
	return appointment, nil
}

func (s *Service) mapWriteError(op string, id int64, err error) error {
	if errors.Is(err, appointmentRepo.ErrAppointmentNotFound) {
		s.logger.Warn("%s: appointment id=%d not found during update", op, id)
		return ErrAppointmentNotFound
	}
	s.logger.Error("%s: repository error for appointment id=%d: %v", op, id, err)
	return fmt.Errorf("%w: %s - repository error: %w", ErrInternal, op, err)
}

// lookupServices подтягивает названия услуг. Ошибка каталога не ломает ответ.
func (s *Service) lookupServices(ctx context.Context, appointments []*domain.Appointment) map[int64]*domain.Service {
	if len(appointments) == 0 {
		return nil
	}

	seen := make(map[int64]struct{}, len(appointments))
	ids := make([]int64, 0, len(appointments))
	for _, a := range appointments {
		if _, ok := seen[a.ServiceID]; ok {
			continue
		}
		seen[a.ServiceID] = struct{}{}
		ids = append(ids, a.ServiceID)
	}

	services, err := s.serviceRepo.GetByIDs(ctx, ids)
	if err != nil {
		s.logger.Warn("lookupServices: failed to load services %v: %v", ids, err)
		return nil
	}
	return services
}
