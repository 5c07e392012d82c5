package get_calendar

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/m04kA/SMC-SalonBooking/internal/domain"
	profileRepo "github.com/m04kA/SMC-SalonBooking/internal/infra/storage/profile"
	"github.com/m04kA/SMC-SalonBooking/internal/scheduling"
)

const professionalID = "pro-1"

type fakeAppointments struct {
	items []*domain.Appointment
	err   error
	calls int
}

func (f *fakeAppointments) GetWithFilter(_ context.Context, _ domain.AppointmentsFilter) ([]*domain.Appointment, error) {
	f.calls++
	return f.items, f.err
}

type fakeProfiles map[string]domain.Role

func (f fakeProfiles) GetRole(_ context.Context, id string) (domain.Role, error) {
	role, ok := f[id]
	if !ok {
		return "", profileRepo.ErrProfileNotFound
	}
	return role, nil
}

type fakeAvailability []*domain.AvailabilityRule

func (f fakeAvailability) GetByProfessional(_ context.Context, _ string) ([]*domain.AvailabilityRule, error) {
	return f, nil
}

type fakeBlockouts []*domain.Blockout

func (f fakeBlockouts) GetByProfessional(_ context.Context, _ string, _, _ time.Time) ([]*domain.Blockout, error) {
	return f, nil
}

type fakeTxManager struct {
	calls int
}

func (f *fakeTxManager) DoReadOnly(ctx context.Context, fn func(ctx context.Context) error) error {
	f.calls++
	return fn(ctx)
}

type fixedTime struct {
	now time.Time
}

func (f fixedTime) Now() time.Time {
	return f.now
}

type noopLogger struct{}

func (noopLogger) Info(string, ...interface{})  {}
func (noopLogger) Warn(string, ...interface{})  {}
func (noopLogger) Error(string, ...interface{}) {}

func date(y int, m time.Month, d int) time.Time {
	return time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
}

type fixture struct {
	appointments *fakeAppointments
	profiles     fakeProfiles
	rules        fakeAvailability
	blockouts    fakeBlockouts
	tx           *fakeTxManager
}

func newFixture() *fixture {
	return &fixture{
		appointments: &fakeAppointments{},
		profiles:     fakeProfiles{professionalID: domain.RoleProfessional, "client": domain.RoleClient},
		rules: fakeAvailability{{
			ProfessionalID: professionalID,
			Weekday:        time.Wednesday,
			StartTime:      "09:00",
			EndTime:        "10:00",
			IsAvailable:    true,
		}},
		tx: &fakeTxManager{},
	}
}

func (f *fixture) useCase(now time.Time) *UseCase {
	uc := NewUseCase(
		f.appointments,
		f.profiles,
		f.rules,
		f.blockouts,
		scheduling.NewSlotGenerator(domain.SlotStepMinutes),
		f.tx,
		time.UTC,
		noopLogger{},
	)
	uc.timeProvider = fixedTime{now: now}
	return uc
}

func selectable(days []domain.CalendarDay) []int {
	result := make([]int, 0)
	for _, d := range days {
		if d.Selectable {
			result = append(result, d.Date.Day())
		}
	}
	return result
}

func TestExecute_WithoutProfessionalUsesWeekdays(t *testing.T) {
	f := newFixture()

	resp, err := f.useCase(date(2025, 5, 20)).Execute(context.Background(), &Request{Month: date(2025, 6, 15)})

	require.NoError(t, err)
	require.Len(t, resp.Days, domain.CalendarGridDays)
	assert.Equal(t, date(2025, 6, 1), resp.Month)
	// Июнь 2025 начинается в воскресенье
	assert.Equal(t, date(2025, 6, 1), resp.Days[0].Date)
	assert.False(t, resp.Days[0].Selectable)
	assert.True(t, resp.Days[1].Selectable)
	assert.Zero(t, f.tx.calls)
}

func TestExecute_ProfessionalRulesAndBookedDates(t *testing.T) {
	f := newFixture()
	// 4 июня занят целиком, 11 июня занят частично, 18 июня закрыт
	f.appointments.items = []*domain.Appointment{
		{ProfessionalID: professionalID, Date: date(2025, 6, 4), StartTime: "09:00", DurationMinutes: 60, Status: domain.StatusConfirmed},
		{ProfessionalID: professionalID, Date: date(2025, 6, 11), StartTime: "09:00", DurationMinutes: 30, Status: domain.StatusPending},
	}
	f.blockouts = fakeBlockouts{{ProfessionalID: professionalID, Date: date(2025, 6, 18)}}

	resp, err := f.useCase(date(2025, 6, 2)).Execute(context.Background(), &Request{
		Month:          date(2025, 6, 1),
		ProfessionalID: professionalID,
	})

	require.NoError(t, err)
	assert.Equal(t, []int{11, 25}, selectable(resp.Days))
	assert.Equal(t, 1, f.tx.calls)
}

func TestExecute_PastMonthSkipsBookedLookup(t *testing.T) {
	f := newFixture()

	resp, err := f.useCase(date(2025, 7, 10)).Execute(context.Background(), &Request{
		Month:          date(2025, 6, 1),
		ProfessionalID: professionalID,
	})

	require.NoError(t, err)
	assert.Empty(t, selectable(resp.Days))
	assert.Zero(t, f.appointments.calls)
}

func TestExecute_Errors(t *testing.T) {
	t.Run("missing month", func(t *testing.T) {
		_, err := newFixture().useCase(date(2025, 6, 1)).Execute(context.Background(), &Request{})
		require.ErrorIs(t, err, domain.ErrValidation)
	})

	t.Run("unknown professional", func(t *testing.T) {
		_, err := newFixture().useCase(date(2025, 6, 1)).Execute(context.Background(), &Request{
			Month:          date(2025, 6, 1),
			ProfessionalID: "ghost",
		})
		require.ErrorIs(t, err, domain.ErrNotFound)
	})

	t.Run("client is not a professional", func(t *testing.T) {
		_, err := newFixture().useCase(date(2025, 6, 1)).Execute(context.Background(), &Request{
			Month:          date(2025, 6, 1),
			ProfessionalID: "client",
		})
		require.ErrorIs(t, err, ErrProfessionalNotFound)
	})

	t.Run("backend failure", func(t *testing.T) {
		f := newFixture()
		f.appointments.err = errors.New("connection reset")

		_, err := f.useCase(date(2025, 6, 1)).Execute(context.Background(), &Request{
			Month:          date(2025, 6, 1),
			ProfessionalID: professionalID,
		})
		require.ErrorIs(t, err, domain.ErrBackend)
	})
}
