package get_available_slots

import (
	"context"
	"time"

	"github.com/m04kA/SMC-SalonBooking/internal/domain"
	"github.com/m04kA/SMC-SalonBooking/pkg/types"
)

// AppointmentRepository интерфейс репозитория записей
type AppointmentRepository interface {
	GetWithFilter(ctx context.Context, filter domain.AppointmentsFilter) ([]*domain.Appointment, error)
}

// ServiceRepository интерфейс каталога услуг
type ServiceRepository interface {
	GetByID(ctx context.Context, id int64) (*domain.Service, error)
}

// AvailabilityRepository интерфейс репозитория недельных правил мастера
type AvailabilityRepository interface {
	GetByProfessional(ctx context.Context, professionalID string) ([]*domain.AvailabilityRule, error)
}

// BlockoutRepository интерфейс репозитория закрытых дней
type BlockoutRepository interface {
	GetByProfessional(ctx context.Context, professionalID string, from, to time.Time) ([]*domain.Blockout, error)
}

// SlotGenerator генератор времени начала записи
type SlotGenerator interface {
	Generate(date time.Time, service *domain.Service, rules []*domain.AvailabilityRule) []types.TimeString
}

// TransactionManager интерфейс для управления транзакциями
type TransactionManager interface {
	DoReadOnly(ctx context.Context, fn func(ctx context.Context) error) error
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
