package delete_blockout

import (
	"context"

	"github.com/m04kA/SMC-SalonBooking/internal/domain"
)

type AvailabilityService interface {
	DeleteBlockout(ctx context.Context, identity domain.Identity, id int64) error
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
