package replace_availability_day

import (
	"context"

	"github.com/m04kA/SMC-SalonBooking/internal/service/availability/models"
)

type AvailabilityService interface {
	ReplaceDay(ctx context.Context, req *models.ReplaceDayRequest) (*models.DayAvailability, error)
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
