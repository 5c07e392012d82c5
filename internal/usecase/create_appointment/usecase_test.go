package create_appointment

import (
	"context"
	"errors"
	"fmt"
	"sync"
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/m04kA/SMC-SalonBooking/internal/domain"
	appointmentRepo "github.com/m04kA/SMC-SalonBooking/internal/infra/storage/appointment"
	profileRepo "github.com/m04kA/SMC-SalonBooking/internal/infra/storage/profile"
	serviceRepo "github.com/m04kA/SMC-SalonBooking/internal/infra/storage/service"
	"github.com/m04kA/SMC-SalonBooking/internal/scheduling"
	"github.com/m04kA/SMC-SalonBooking/pkg/metrics"
	"github.com/m04kA/SMC-SalonBooking/pkg/types"
)

const (
	clientID       = "client-1"
	professionalID = "pro-1"
	serviceID      = int64(7)
)

var errDBDown = errors.New("connection refused")

// Fakes

type fakeAppointments struct {
	mu      sync.Mutex
	items   []*domain.Appointment
	nextID  int64
	reads   int
	creates int
	readErr error
	// barrier заставляет параллельные транзакции прочитать состояние до вставки
	barrier *sync.WaitGroup
}

func (f *fakeAppointments) GetWithFilterForUpdate(_ context.Context, filter domain.AppointmentsFilter) ([]*domain.Appointment, error) {
	f.mu.Lock()
	f.reads++
	if f.readErr != nil {
		f.mu.Unlock()
		return nil, f.readErr
	}
	result := make([]*domain.Appointment, 0)
	for _, a := range f.items {
		if a.ProfessionalID == *filter.ProfessionalID && a.Date.Equal(*filter.StartDate) && a.IsActive() {
			copied := *a
			result = append(result, &copied)
		}
	}
	f.mu.Unlock()

	if f.barrier != nil {
		f.barrier.Done()
		f.barrier.Wait()
	}
	return result, nil
}

// Create ведет себя как exclusion constraint
func (f *fakeAppointments) Create(_ context.Context, a *domain.Appointment) (*domain.Appointment, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.creates++

	for _, existing := range f.items {
		if existing.ProfessionalID != a.ProfessionalID || !existing.Date.Equal(a.Date) || !existing.IsActive() {
			continue
		}
		if a.StartMinutes() < existing.EndMinutes() && existing.StartMinutes() < a.EndMinutes() {
			return nil, fmt.Errorf("%w: Create - exclusion violation", appointmentRepo.ErrSlotTaken)
		}
	}

	f.nextID++
	created := *a
	created.ID = f.nextID
	f.items = append(f.items, &created)
	return &created, nil
}

type fakeServices struct {
	items map[int64]*domain.Service
	calls int
}

func (f *fakeServices) GetByID(_ context.Context, id int64) (*domain.Service, error) {
	f.calls++
	s, ok := f.items[id]
	if !ok {
		return nil, serviceRepo.ErrServiceNotFound
	}
	return s, nil
}

type fakeProfiles struct {
	roles map[string]domain.Role
	calls int
}

func (f *fakeProfiles) GetRole(_ context.Context, id string) (domain.Role, error) {
	f.calls++
	role, ok := f.roles[id]
	if !ok {
		return "", profileRepo.ErrProfileNotFound
	}
	return role, nil
}

type fakeAvailability struct {
	rules []*domain.AvailabilityRule
	calls int
}

func (f *fakeAvailability) GetByProfessional(_ context.Context, _ string) ([]*domain.AvailabilityRule, error) {
	f.calls++
	return f.rules, nil
}

type fakeBlockouts struct {
	items []*domain.Blockout
}

func (f *fakeBlockouts) GetByProfessional(_ context.Context, _ string, from, to time.Time) ([]*domain.Blockout, error) {
	result := make([]*domain.Blockout, 0)
	for _, b := range f.items {
		if !b.Date.Before(from) && !b.Date.After(to) {
			result = append(result, b)
		}
	}
	return result, nil
}

type fakeTxManager struct {
	mu    sync.Mutex
	calls int
}

func (f *fakeTxManager) DoSerializable(ctx context.Context, fn func(ctx context.Context) error) error {
	f.mu.Lock()
	f.calls++
	f.mu.Unlock()
	return fn(ctx)
}

type fakeObserver struct {
	mu       sync.Mutex
	outcomes []string
}

func (f *fakeObserver) ObserveBooking(outcome string) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.outcomes = append(f.outcomes, outcome)
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

// Fixture

type fixture struct {
	uc           *UseCase
	appointments *fakeAppointments
	services     *fakeServices
	profiles     *fakeProfiles
	availability *fakeAvailability
	blockouts    *fakeBlockouts
	tx           *fakeTxManager
	observer     *fakeObserver
}

func newFixture(t *testing.T) *fixture {
	t.Helper()

	loc, err := time.LoadLocation("America/Sao_Paulo")
	require.NoError(t, err)

	f := &fixture{
		appointments: &fakeAppointments{},
		services: &fakeServices{items: map[int64]*domain.Service{
			serviceID: {ID: serviceID, Name: "Corte", DurationMinutes: 60, Price: decimal.NewFromInt(120)},
		}},
		profiles: &fakeProfiles{roles: map[string]domain.Role{
			professionalID: domain.RoleProfessional,
			clientID:       domain.RoleClient,
		}},
		availability: &fakeAvailability{rules: []*domain.AvailabilityRule{{
			ProfessionalID: professionalID,
			Weekday:        time.Tuesday,
			StartTime:      "09:00",
			EndTime:        "18:00",
			IsAvailable:    true,
		}}},
		blockouts: &fakeBlockouts{},
		tx:        &fakeTxManager{},
		observer:  &fakeObserver{},
	}

	f.uc = NewUseCase(
		f.appointments,
		f.services,
		f.profiles,
		f.availability,
		f.blockouts,
		scheduling.NewSlotGenerator(domain.SlotStepMinutes),
		f.tx,
		f.observer,
		loc,
		noopLogger{},
	)
	// Понедельник 2 июня 2025, 08:00 по Сан-Паулу
	f.uc.timeProvider = fixedTime{now: time.Date(2025, 6, 2, 8, 0, 0, 0, loc)}

	return f
}

func tuesday() time.Time {
	return time.Date(2025, 6, 3, 0, 0, 0, 0, time.UTC)
}

func validRequest() *Request {
	return &Request{
		UserID:         clientID,
		ProfessionalID: professionalID,
		ServiceID:      serviceID,
		Date:           tuesday(),
		StartTime:      "10:00",
	}
}

func (f *fixture) existing(start string, duration int) {
	f.appointments.nextID++
	f.appointments.items = append(f.appointments.items, &domain.Appointment{
		ID:              f.appointments.nextID,
		UserID:          "someone",
		ProfessionalID:  professionalID,
		ServiceID:       serviceID,
		Date:            tuesday(),
		StartTime:       types.TimeString(start),
		DurationMinutes: duration,
		Status:          domain.StatusConfirmed,
	})
}

// Tests

func TestExecute_CreatesPendingAppointment(t *testing.T) {
	f := newFixture(t)
	req := validRequest()
	notes := "primeira vez"
	req.Notes = &notes

	resp, err := f.uc.Execute(context.Background(), req)

	require.NoError(t, err)
	assert.Equal(t, int64(1), resp.ID)
	assert.Equal(t, string(domain.StatusPending), resp.Status)
	assert.Equal(t, 60, resp.DurationMinutes)
	assert.Equal(t, types.TimeString("10:00"), resp.StartTime)
	assert.Equal(t, tuesday(), resp.Date)
	assert.Equal(t, &notes, resp.Notes)
	require.Len(t, f.appointments.items, 1)
	assert.Equal(t, []string{metrics.OutcomeCommitted}, f.observer.outcomes)
}

func TestExecute_LocalValidationNeverTouchesBackend(t *testing.T) {
	tests := []struct {
		name    string
		mutate  func(r *Request)
		wantErr error
	}{
		{"missing professional", func(r *Request) { r.ProfessionalID = "" }, domain.ErrValidation},
		{"missing service", func(r *Request) { r.ServiceID = 0 }, domain.ErrValidation},
		{"missing date", func(r *Request) { r.Date = time.Time{} }, domain.ErrValidation},
		{"missing time", func(r *Request) { r.StartTime = "" }, domain.ErrValidation},
		{"malformed time", func(r *Request) { r.StartTime = "25:99" }, domain.ErrValidation},
		{"past date", func(r *Request) { r.Date = time.Date(2025, 6, 1, 0, 0, 0, 0, time.UTC) }, domain.ErrValidation},
		{"missing identity", func(r *Request) { r.UserID = "" }, domain.ErrAuth},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			f := newFixture(t)
			req := validRequest()
			tt.mutate(req)

			resp, err := f.uc.Execute(context.Background(), req)

			require.ErrorIs(t, err, tt.wantErr)
			assert.Nil(t, resp)
			assert.Zero(t, f.services.calls)
			assert.Zero(t, f.profiles.calls)
			assert.Zero(t, f.availability.calls)
			assert.Zero(t, f.appointments.reads)
			assert.Zero(t, f.appointments.creates)
			assert.Zero(t, f.tx.calls)
		})
	}
}

func TestExecute_TodayPassedTimeRejected(t *testing.T) {
	f := newFixture(t)
	loc := f.uc.location
	// Вторник 10:30 по Сан-Паулу, в UTC уже 13:30
	f.uc.timeProvider = fixedTime{now: time.Date(2025, 6, 3, 10, 30, 0, 0, loc).UTC()}

	_, err := f.uc.Execute(context.Background(), validRequest())
	require.ErrorIs(t, err, ErrTooLateToBook)
	require.ErrorIs(t, err, domain.ErrValidation)

	req := validRequest()
	req.StartTime = "11:00"
	_, err = f.uc.Execute(context.Background(), req)
	require.NoError(t, err)
}

func TestExecute_TimeOutsideWorkingHours(t *testing.T) {
	for _, start := range []string{"08:30", "10:15", "17:30", "18:00"} {
		t.Run(start, func(t *testing.T) {
			f := newFixture(t)
			req := validRequest()
			req.StartTime = types.TimeString(start)

			_, err := f.uc.Execute(context.Background(), req)

			require.ErrorIs(t, err, ErrInvalidTimeSlot)
			require.ErrorIs(t, err, domain.ErrValidation)
			assert.Zero(t, f.appointments.creates)
		})
	}
}

func TestExecute_OverlapWithExistingAppointment(t *testing.T) {
	f := newFixture(t)
	f.existing("10:00", 60)

	req := validRequest()
	req.StartTime = "10:30"
	_, err := f.uc.Execute(context.Background(), req)
	require.ErrorIs(t, err, ErrSlotNotAvailable)
	require.ErrorIs(t, err, domain.ErrConflict)

	// Касание границы пересечением не считается
	req.StartTime = "11:00"
	_, err = f.uc.Execute(context.Background(), req)
	require.NoError(t, err)

	req.StartTime = "09:00"
	_, err = f.uc.Execute(context.Background(), req)
	require.NoError(t, err)

	assert.Equal(t, []string{metrics.OutcomeConflict, metrics.OutcomeCommitted, metrics.OutcomeCommitted}, f.observer.outcomes)
}

func TestExecute_CancelledAppointmentDoesNotBlock(t *testing.T) {
	f := newFixture(t)
	f.existing("10:00", 60)
	f.appointments.items[0].Status = domain.StatusCancelled

	_, err := f.uc.Execute(context.Background(), validRequest())
	require.NoError(t, err)
}

func TestExecute_ServiceAndProfessionalChecks(t *testing.T) {
	t.Run("unknown service", func(t *testing.T) {
		f := newFixture(t)
		req := validRequest()
		req.ServiceID = 999

		_, err := f.uc.Execute(context.Background(), req)
		require.ErrorIs(t, err, ErrServiceNotFound)
		require.ErrorIs(t, err, domain.ErrValidation)
		assert.Zero(t, f.tx.calls)
	})

	t.Run("unknown professional", func(t *testing.T) {
		f := newFixture(t)
		req := validRequest()
		req.ProfessionalID = "ghost"

		_, err := f.uc.Execute(context.Background(), req)
		require.ErrorIs(t, err, ErrProfessionalNotFound)
	})

	t.Run("not a professional", func(t *testing.T) {
		f := newFixture(t)
		req := validRequest()
		req.ProfessionalID = clientID

		_, err := f.uc.Execute(context.Background(), req)
		require.ErrorIs(t, err, ErrProfessionalNotFound)
		require.ErrorIs(t, err, domain.ErrValidation)
	})
}

func TestExecute_BlockedDay(t *testing.T) {
	f := newFixture(t)
	f.blockouts.items = []*domain.Blockout{{ID: 1, ProfessionalID: professionalID, Date: tuesday()}}

	_, err := f.uc.Execute(context.Background(), validRequest())

	require.ErrorIs(t, err, ErrDayBlocked)
	require.ErrorIs(t, err, domain.ErrConflict)
	assert.Zero(t, f.appointments.creates)
}

func TestExecute_BackendFailureIsNotAConflict(t *testing.T) {
	f := newFixture(t)
	f.appointments.readErr = fmt.Errorf("%w: GetWithFilterForUpdate - execute query: %w", appointmentRepo.ErrExecQuery, errDBDown)

	resp, err := f.uc.Execute(context.Background(), validRequest())

	require.ErrorIs(t, err, domain.ErrBackend)
	require.ErrorIs(t, err, errDBDown)
	assert.NotErrorIs(t, err, domain.ErrConflict)
	assert.Nil(t, resp)
	assert.Equal(t, []string{metrics.OutcomeBackend}, f.observer.outcomes)
}

func TestExecute_LongServiceOnlyInTheMorning(t *testing.T) {
	f := newFixture(t)
	f.services.items[serviceID].DurationMinutes = 420

	// Для 7 часов окно обрезается до 12:00 и слотов нет
	_, err := f.uc.Execute(context.Background(), validRequest())
	require.ErrorIs(t, err, ErrInvalidTimeSlot)
}

func TestExecute_ConcurrentCommitsOfSameSlot(t *testing.T) {
	f := newFixture(t)
	barrier := &sync.WaitGroup{}
	barrier.Add(2)
	f.appointments.barrier = barrier

	var wg sync.WaitGroup
	errs := make([]error, 2)
	for i := 0; i < 2; i++ {
		wg.Add(1)
		go func(i int) {
			defer wg.Done()
			req := validRequest()
			req.UserID = fmt.Sprintf("client-%d", i)
			_, errs[i] = f.uc.Execute(context.Background(), req)
		}(i)
	}
	wg.Wait()

	succeeded, conflicts := 0, 0
	for _, err := range errs {
		switch {
		case err == nil:
			succeeded++
		case errors.Is(err, domain.ErrConflict):
			conflicts++
		default:
			t.Fatalf("unexpected error: %v", err)
		}
	}

	assert.Equal(t, 1, succeeded)
	assert.Equal(t, 1, conflicts)
	assert.Len(t, f.appointments.items, 1)
}
