package admin

import (
	"context"

	"github.com/m04kA/SMC-SalonBooking/internal/domain"
)

// ProfileRepository интерфейс репозитория профилей
type ProfileRepository interface {
	List(ctx context.Context) ([]*domain.Profile, error)
	UpdateRole(ctx context.Context, id string, role domain.Role) (*domain.Profile, error)
}

// Logger интерфейс для логирования
type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
