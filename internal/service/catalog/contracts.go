package catalog

import (
	"context"

	"github.com/m04kA/SMC-SalonBooking/internal/domain"
)

// ServiceRepository интерфейс каталога услуг
type ServiceRepository interface {
	GetByID(ctx context.Context, id int64) (*domain.Service, error)
	List(ctx context.Context) ([]*domain.Service, error)
}

// ProfileRepository интерфейс репозитория профилей
type ProfileRepository interface {
	ListByRole(ctx context.Context, role domain.Role) ([]*domain.Profile, error)
}

// Logger интерфейс для логирования
type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
