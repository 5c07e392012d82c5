package list_blockouts

import (
	"context"

	"github.com/m04kA/SMC-SalonBooking/internal/service/availability/models"
)

type AvailabilityService interface {
	ListBlockouts(ctx context.Context, req *models.ListBlockoutsRequest) (*models.BlockoutListResponse, error)
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
