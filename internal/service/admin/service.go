package admin

import (
	"context"
	"errors"
	"fmt"

	"github.com/m04kA/SMC-SalonBooking/internal/domain"
	profileRepo "github.com/m04kA/SMC-SalonBooking/internal/infra/storage/profile"
	"github.com/m04kA/SMC-SalonBooking/internal/service/admin/models"
)

// Service сервис администрирования пользователей
type Service struct {
	profileRepo ProfileRepository
	logger      Logger
}

// NewService создает новый экземпляр сервиса
func NewService(profileRepo ProfileRepository, logger Logger) *Service {
	return &Service{
		profileRepo: profileRepo,
		logger:      logger,
	}
}

// ListUsers возвращает всех пользователей, упорядоченных по роли и имени
func (s *Service) ListUsers(ctx context.Context, identity domain.Identity) (*models.UserListResponse, error) {
	if err := checkAdmin(identity); err != nil {
		s.logger.Warn("ListUsers: access denied for user=%s role=%s", identity.UserID, identity.Role)
		return nil, err
	}

	profiles, err := s.profileRepo.List(ctx)
	if err != nil {
		s.logger.Error("ListUsers: repository error: %v", err)
		return nil, fmt.Errorf("%w: ListUsers - repository error: %w", ErrInternal, err)
	}

	s.logger.Info("ListUsers: found %d users", len(profiles))
	return models.FromDomainProfileList(profiles), nil
}

// UpdateRole меняет роль пользователя
func (s *Service) UpdateRole(ctx context.Context, req *models.UpdateRoleRequest) (*models.UserResponse, error) {
	s.logger.Info("UpdateRole: admin=%s sets role=%s for user=%s", req.Identity.UserID, req.Role, req.UserID)

	if err := checkAdmin(req.Identity); err != nil {
		s.logger.Warn("UpdateRole: access denied for user=%s role=%s", req.Identity.UserID, req.Identity.Role)
		return nil, err
	}

	role := domain.Role(req.Role)
	if !role.IsValid() {
		return nil, ErrInvalidRole
	}
	if req.UserID == "" {
		return nil, ErrUserNotFound
	}

	profile, err := s.profileRepo.UpdateRole(ctx, req.UserID, role)
	if err != nil {
		if errors.Is(err, profileRepo.ErrProfileNotFound) {
			s.logger.Warn("UpdateRole: user=%s not found", req.UserID)
			return nil, ErrUserNotFound
		}
		s.logger.Error("UpdateRole: repository error for user=%s: %v", req.UserID, err)
		return nil, fmt.Errorf("%w: UpdateRole - repository error: %w", ErrInternal, err)
	}

	return models.FromDomainProfile(profile), nil
}

func checkAdmin(identity domain.Identity) error {
	if identity.IsZero() {
		return ErrUnauthenticated
	}
	if !identity.IsAdmin() {
		return ErrAccessDenied
	}
	return nil
}
