package models

import (
	"time"

	"github.com/m04kA/SMC-SalonBooking/internal/domain"
)

// UpdateRoleRequest смена роли пользователя
type UpdateRoleRequest struct {
	Identity domain.Identity
	UserID   string
	Role     string `json:"role" validate:"required,oneof=admin professional client"`
}

// UserResponse профиль пользователя для администратора
type UserResponse struct {
	ID        string    `json:"id"`
	Email     string    `json:"email"`
	Name      string    `json:"name"`
	Phone     *string   `json:"phone,omitempty"`
	Role      string    `json:"role"`
	CreatedAt time.Time `json:"createdAt"`
	UpdatedAt time.Time `json:"updatedAt"`
}

// UserListResponse список пользователей
type UserListResponse struct {
	Users []UserResponse `json:"users"`
}

// FromDomainProfile конвертирует domain модель в DTO
func FromDomainProfile(p *domain.Profile) *UserResponse {
	if p == nil {
		return nil
	}
	return &UserResponse{
		ID:        p.ID,
		Email:     p.Email,
		Name:      p.Name,
		Phone:     p.Phone,
		Role:      string(p.Role),
		CreatedAt: p.CreatedAt,
		UpdatedAt: p.UpdatedAt,
	}
}

// FromDomainProfileList конвертирует список профилей
func FromDomainProfileList(profiles []*domain.Profile) *UserListResponse {
	resp := &UserListResponse{Users: make([]UserResponse, 0, len(profiles))}
	for _, p := range profiles {
		if item := FromDomainProfile(p); item != nil {
			resp.Users = append(resp.Users, *item)
		}
	}
	return resp
}
