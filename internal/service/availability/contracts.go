package availability

import (
	"context"
	"time"

	"github.com/m04kA/SMC-SalonBooking/internal/domain"
)

// AvailabilityRepository интерфейс репозитория недельных правил мастера
type AvailabilityRepository interface {
	GetByProfessional(ctx context.Context, professionalID string) ([]*domain.AvailabilityRule, error)
	ReplaceDay(ctx context.Context, professionalID string, weekday time.Weekday, ranges []domain.TimeRange) ([]*domain.AvailabilityRule, error)
}

// BlockoutRepository интерфейс репозитория закрытых дней
type BlockoutRepository interface {
	Create(ctx context.Context, blockout *domain.Blockout) (*domain.Blockout, error)
	GetByProfessional(ctx context.Context, professionalID string, from, to time.Time) ([]*domain.Blockout, error)
	Delete(ctx context.Context, professionalID string, id int64) error
}

// TransactionManager интерфейс для управления транзакциями
type TransactionManager interface {
	Do(ctx context.Context, fn func(ctx context.Context) error) error
}

// TimeProvider интерфейс для получения текущего времени (для тестирования)
type TimeProvider interface {
	Now() time.Time
}

// Logger интерфейс для логирования
type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}

// RealTimeProvider реальный провайдер времени для production
type RealTimeProvider struct{}

// Now возвращает текущее время
func (p *RealTimeProvider) Now() time.Time {
	return time.Now()
}
