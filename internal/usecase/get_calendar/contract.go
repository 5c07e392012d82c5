package get_calendar

import (
	"context"
	"time"

	"github.com/m04kA/SMC-SalonBooking/internal/domain"
)

// AppointmentRepository интерфейс репозитория записей
type AppointmentRepository interface {
	GetWithFilter(ctx context.Context, filter domain.AppointmentsFilter) ([]*domain.Appointment, error)
}

// ProfileRepository интерфейс репозитория профилей
type ProfileRepository interface {
	GetRole(ctx context.Context, id string) (domain.Role, error)
}

// AvailabilityRepository интерфейс репозитория недельных правил мастера
type AvailabilityRepository interface {
	GetByProfessional(ctx context.Context, professionalID string) ([]*domain.AvailabilityRule, error)
}

// BlockoutRepository интерфейс репозитория закрытых дней
type BlockoutRepository interface {
	GetByProfessional(ctx context.Context, professionalID string, from, to time.Time) ([]*domain.Blockout, error)
}

// BookedDatesCalculator считает полностью занятые даты
type BookedDatesCalculator interface {
	FullyBookedDates(
		from, to time.Time,
		rules []*domain.AvailabilityRule,
		appointments []*domain.Appointment,
		blockouts []*domain.Blockout,
	) []time.Time
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
