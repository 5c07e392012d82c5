package create_blockout

import (
	"context"

	"github.com/m04kA/SMC-SalonBooking/internal/service/availability/models"
)

type AvailabilityService interface {
	CreateBlockout(ctx context.Context, req *models.CreateBlockoutRequest) (*models.BlockoutResponse, error)
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
