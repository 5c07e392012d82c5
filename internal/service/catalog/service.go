package catalog

import (
	"context"
	"errors"
	"fmt"

	"github.com/m04kA/SMC-SalonBooking/internal/domain"
	serviceRepo "github.com/m04kA/SMC-SalonBooking/internal/infra/storage/service"
	"github.com/m04kA/SMC-SalonBooking/internal/service/catalog/models"
)

// Service публичный каталог: услуги и мастера
type Service struct {
	serviceRepo ServiceRepository
	profileRepo ProfileRepository
	logger      Logger
}

// NewService создает новый экземпляр сервиса каталога
func NewService(serviceRepo ServiceRepository, profileRepo ProfileRepository, logger Logger) *Service {
	return &Service{
		serviceRepo: serviceRepo,
		profileRepo: profileRepo,
		logger:      logger,
	}
}

// ListServices услуги по названию
func (s *Service) ListServices(ctx context.Context) (*models.ServiceListResponse, error) {
	services, err := s.serviceRepo.List(ctx)
	if err != nil {
		s.logger.Error("ListServices: repository error: %v", err)
		return nil, fmt.Errorf("%w: ListServices - repository error: %v", ErrInternal, err)
	}

	s.logger.Info("ListServices: fetched %d services", len(services))
	return models.FromDomainServiceList(services), nil
}

// GetService услуга по ID
func (s *Service) GetService(ctx context.Context, id int64) (*models.ServiceResponse, error) {
	if id <= 0 {
		return nil, fmt.Errorf("%w: serviceId must be positive", ErrInvalidInput)
	}

	service, err := s.serviceRepo.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, serviceRepo.ErrServiceNotFound) {
			s.logger.Warn("GetService: service id=%d not found", id)
			return nil, ErrServiceNotFound
		}
		s.logger.Error("GetService: repository error for service id=%d: %v", id, err)
		return nil, fmt.Errorf("%w: GetService - repository error: %v", ErrInternal, err)
	}

	return models.FromDomainService(service), nil
}

// ListProfessionals профили с ролью professional
func (s *Service) ListProfessionals(ctx context.Context) (*models.ProfessionalListResponse, error) {
	profiles, err := s.profileRepo.ListByRole(ctx, domain.RoleProfessional)
	if err != nil {
		s.logger.Error("ListProfessionals: repository error: %v", err)
		return nil, fmt.Errorf("%w: ListProfessionals - repository error: %v", ErrInternal, err)
	}

	s.logger.Info("ListProfessionals: fetched %d professionals", len(profiles))
	return models.FromDomainProfessionalList(profiles), nil
}
