package cache

import (
	"context"

	"github.com/m04kA/SMC-SalonBooking/internal/domain"
)

// ServiceRepository источник данных за кэшем
type ServiceRepository interface {
	GetByID(ctx context.Context, id int64) (*domain.Service, error)
	GetByIDs(ctx context.Context, ids []int64) (map[int64]*domain.Service, error)
	List(ctx context.Context) ([]*domain.Service, error)
}

// Logger интерфейс для логирования
type Logger interface {
	Warn(format string, v ...interface{})
}
