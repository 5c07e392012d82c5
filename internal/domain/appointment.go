package domain

import (
	"time"

	"github.com/m04kA/SMC-SalonBooking/pkg/types"
)

// AppointmentStatus represents the status of an appointment
type AppointmentStatus string

const (
	StatusPending   AppointmentStatus = "pending"
	StatusConfirmed AppointmentStatus = "confirmed"
	StatusCompleted AppointmentStatus = "completed"
	StatusCancelled AppointmentStatus = "cancelled"
)

// IsValid проверяет, что статус известен
func (s AppointmentStatus) IsValid() bool {
	switch s {
	case StatusPending, StatusConfirmed, StatusCompleted, StatusCancelled:
		return true
	}
	return false
}

// transitions допустимые переходы. Переходы однонаправленные, из терминальных статусов выхода нет.
var transitions = map[AppointmentStatus][]AppointmentStatus{
	StatusPending:   {StatusConfirmed, StatusCancelled},
	StatusConfirmed: {StatusCompleted, StatusCancelled},
}

// CanTransitionTo проверяет переход статуса
func (s AppointmentStatus) CanTransitionTo(next AppointmentStatus) bool {
	for _, allowed := range transitions[s] {
		if allowed == next {
			return true
		}
	}
	return false
}

// IsTerminal completed и cancelled
func (s AppointmentStatus) IsTerminal() bool {
	return len(transitions[s]) == 0
}

// Appointment запись клиента к мастеру
type Appointment struct {
	ID             int64
	UserID         string
	ProfessionalID string
	ServiceID      int64
	Date           time.Time
	StartTime      types.TimeString
	// DurationMinutes длительность услуги на момент записи
	DurationMinutes int
	Status          AppointmentStatus
	Notes           *string

	CancellationReason *string
	CancelledAt        *time.Time

	CreatedAt time.Time
	UpdatedAt time.Time
}

// IsActive запись занимает время мастера
func (a *Appointment) IsActive() bool {
	return a.Status != StatusCancelled
}

// StartMinutes начало в минутах от полуночи
func (a *Appointment) StartMinutes() int {
	return a.StartTime.Minutes()
}

// EndMinutes конец полуоткрытого интервала в минутах от полуночи
func (a *Appointment) EndMinutes() int {
	return a.StartTime.EndMinutes(a.DurationMinutes)
}

// StartsAt момент начала записи в указанной локации
func (a *Appointment) StartsAt(loc *time.Location) time.Time {
	y, m, d := a.Date.Date()
	return a.StartTime.On(time.Date(y, m, d, 0, 0, 0, 0, loc))
}

// IsVisibleTo клиент, мастер записи или администратор
func (a *Appointment) IsVisibleTo(identity Identity) bool {
	return identity.IsAdmin() || a.UserID == identity.UserID || a.ProfessionalID == identity.UserID
}

// AppointmentsFilter фильтр выборки записей
type AppointmentsFilter struct {
	UserID          *string
	ProfessionalID  *string
	StartDate       *time.Time
	EndDate         *time.Time
	Status          *AppointmentStatus
	IncludeInactive bool
}
