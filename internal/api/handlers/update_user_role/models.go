package update_user_role

import (
	"github.com/m04kA/SMC-SalonBooking/internal/domain"
	"github.com/m04kA/SMC-SalonBooking/internal/service/admin/models"
)

// UpdateRoleRequest HTTP request model
type UpdateRoleRequest struct {
	Role string `json:"role" validate:"required,oneof=admin professional client"`
}

// ToServiceRequest конвертирует HTTP request в модель сервиса
func (r *UpdateRoleRequest) ToServiceRequest(identity domain.Identity, userID string) *models.UpdateRoleRequest {
	return &models.UpdateRoleRequest{
		Identity: identity,
		UserID:   userID,
		Role:     r.Role,
	}
}
