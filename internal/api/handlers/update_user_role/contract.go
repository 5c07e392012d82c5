package update_user_role

import (
	"context"

	"github.com/m04kA/SMC-SalonBooking/internal/service/admin/models"
)

type AdminService interface {
	UpdateRole(ctx context.Context, req *models.UpdateRoleRequest) (*models.UserResponse, error)
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
