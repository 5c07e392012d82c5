package appointments

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/m04kA/SMC-SalonBooking/internal/domain"
	appointmentRepo "github.com/m04kA/SMC-SalonBooking/internal/infra/storage/appointment"
	"github.com/m04kA/SMC-SalonBooking/internal/service/appointments/models"
	"github.com/m04kA/SMC-SalonBooking/pkg/ptr"
)

var (
	client       = domain.Identity{UserID: "client-1", Role: domain.RoleClient}
	stranger     = domain.Identity{UserID: "client-2", Role: domain.RoleClient}
	professional = domain.Identity{UserID: "pro-1", Role: domain.RoleProfessional}
	otherPro     = domain.Identity{UserID: "pro-2", Role: domain.RoleProfessional}
	admin        = domain.Identity{UserID: "admin-1", Role: domain.RoleAdmin}
)

type fakeRepo struct {
	items      map[int64]*domain.Appointment
	lastFilter domain.AppointmentsFilter
	err        error
}

func (f *fakeRepo) GetByID(_ context.Context, id int64) (*domain.Appointment, error) {
	return f.GetByIDForUpdate(context.Background(), id)
}

func (f *fakeRepo) GetByIDForUpdate(_ context.Context, id int64) (*domain.Appointment, error) {
	if f.err != nil {
		return nil, f.err
	}
	a, ok := f.items[id]
	if !ok {
		return nil, appointmentRepo.ErrAppointmentNotFound
	}
	copied := *a
	return &copied, nil
}

func (f *fakeRepo) GetWithFilter(_ context.Context, filter domain.AppointmentsFilter) ([]*domain.Appointment, error) {
	f.lastFilter = filter
	if f.err != nil {
		return nil, f.err
	}
	result := make([]*domain.Appointment, 0)
	for _, a := range f.items {
		if filter.UserID != nil && a.UserID != *filter.UserID {
			continue
		}
		if filter.ProfessionalID != nil && a.ProfessionalID != *filter.ProfessionalID {
			continue
		}
		if filter.Status != nil && a.Status != *filter.Status {
			continue
		}
		result = append(result, a)
	}
	return result, nil
}

func (f *fakeRepo) UpdateStatus(_ context.Context, id int64, status domain.AppointmentStatus) error {
	f.items[id].Status = status
	return nil
}

func (f *fakeRepo) Cancel(_ context.Context, id int64, reason *string) error {
	now := time.Now()
	f.items[id].Status = domain.StatusCancelled
	f.items[id].CancellationReason = reason
	f.items[id].CancelledAt = &now
	return nil
}

type fakeServices struct {
	err error
}

func (f fakeServices) GetByIDs(_ context.Context, ids []int64) (map[int64]*domain.Service, error) {
	if f.err != nil {
		return nil, f.err
	}
	result := make(map[int64]*domain.Service, len(ids))
	for _, id := range ids {
		result[id] = &domain.Service{ID: id, Name: "Manicure"}
	}
	return result, nil
}

type fakeTxManager struct{}

func (fakeTxManager) Do(ctx context.Context, fn func(ctx context.Context) error) error {
	return fn(ctx)
}

type noopLogger struct{}

func (noopLogger) Info(string, ...interface{})  {}
func (noopLogger) Warn(string, ...interface{})  {}
func (noopLogger) Error(string, ...interface{}) {}

func newService(services fakeServices) (*Service, *fakeRepo) {
	repo := &fakeRepo{items: map[int64]*domain.Appointment{
		1: {ID: 1, UserID: client.UserID, ProfessionalID: professional.UserID, ServiceID: 3,
			Date: time.Date(2025, 6, 3, 0, 0, 0, 0, time.UTC), StartTime: "10:00", DurationMinutes: 90, Status: domain.StatusPending},
		2: {ID: 2, UserID: client.UserID, ProfessionalID: professional.UserID, ServiceID: 3,
			Date: time.Date(2025, 6, 4, 0, 0, 0, 0, time.UTC), StartTime: "09:00", DurationMinutes: 30, Status: domain.StatusConfirmed},
		3: {ID: 3, UserID: stranger.UserID, ProfessionalID: otherPro.UserID, ServiceID: 4,
			Date: time.Date(2025, 6, 4, 0, 0, 0, 0, time.UTC), StartTime: "09:00", DurationMinutes: 30, Status: domain.StatusCompleted},
	}}
	return NewService(repo, services, fakeTxManager{}, noopLogger{}), repo
}

func TestGetByID_Visibility(t *testing.T) {
	tests := []struct {
		name     string
		identity domain.Identity
		wantErr  error
	}{
		{"owner", client, nil},
		{"professional of appointment", professional, nil},
		{"admin", admin, nil},
		{"another client", stranger, ErrAccessDenied},
		{"another professional", otherPro, ErrAccessDenied},
		{"anonymous", domain.Identity{}, domain.ErrAuth},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			svc, _ := newService(fakeServices{})

			resp, err := svc.GetByID(context.Background(), 1, tt.identity)

			if tt.wantErr != nil {
				require.ErrorIs(t, err, tt.wantErr)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, "Manicure", resp.ServiceName)
			assert.Equal(t, "2025-06-03", resp.Date)
			assert.Equal(t, "10:00", resp.StartTime)
			assert.Equal(t, "11:30", resp.EndTime)
		})
	}
}

func TestGetByID_NotFoundAndBackend(t *testing.T) {
	svc, repo := newService(fakeServices{})

	_, err := svc.GetByID(context.Background(), 404, client)
	require.ErrorIs(t, err, domain.ErrNotFound)

	repo.err = errors.New("connection reset")
	_, err = svc.GetByID(context.Background(), 1, client)
	require.ErrorIs(t, err, domain.ErrBackend)
}

func TestListMine_OnlyOwnAppointments(t *testing.T) {
	svc, repo := newService(fakeServices{err: errors.New("cache down")})

	resp, err := svc.ListMine(context.Background(), &models.ListMineRequest{Identity: client})

	require.NoError(t, err)
	assert.Len(t, resp.Appointments, 2)
	assert.True(t, repo.lastFilter.IncludeInactive)
	// Каталог недоступен, но список все равно возвращается
	assert.Empty(t, resp.Appointments[0].ServiceName)

	_, err = svc.ListMine(context.Background(), &models.ListMineRequest{Identity: client, Status: ptr.Ptr("unknown")})
	require.ErrorIs(t, err, domain.ErrValidation)
}

func TestAgenda_Access(t *testing.T) {
	svc, repo := newService(fakeServices{})

	resp, err := svc.Agenda(context.Background(), &models.AgendaRequest{Identity: professional, Status: ptr.Ptr("confirmed")})
	require.NoError(t, err)
	require.Len(t, resp.Appointments, 1)
	assert.Equal(t, int64(2), resp.Appointments[0].ID)
	assert.Equal(t, professional.UserID, *repo.lastFilter.ProfessionalID)

	// Мастер не может подсмотреть чужую агенду
	_, err = svc.Agenda(context.Background(), &models.AgendaRequest{Identity: professional, ProfessionalID: ptr.Ptr(otherPro.UserID)})
	require.NoError(t, err)
	assert.Equal(t, professional.UserID, *repo.lastFilter.ProfessionalID)

	resp, err = svc.Agenda(context.Background(), &models.AgendaRequest{Identity: admin, ProfessionalID: ptr.Ptr(otherPro.UserID), IncludeInactive: true})
	require.NoError(t, err)
	assert.Len(t, resp.Appointments, 1)

	_, err = svc.Agenda(context.Background(), &models.AgendaRequest{Identity: admin})
	require.ErrorIs(t, err, domain.ErrValidation)

	_, err = svc.Agenda(context.Background(), &models.AgendaRequest{Identity: client})
	require.ErrorIs(t, err, ErrAccessDenied)

	start := time.Date(2025, 6, 10, 0, 0, 0, 0, time.UTC)
	end := time.Date(2025, 6, 1, 0, 0, 0, 0, time.UTC)
	_, err = svc.Agenda(context.Background(), &models.AgendaRequest{Identity: professional, StartDate: &start, EndDate: &end})
	require.ErrorIs(t, err, domain.ErrValidation)
}

func TestCancel(t *testing.T) {
	t.Run("owner cancels pending", func(t *testing.T) {
		svc, repo := newService(fakeServices{})

		resp, err := svc.Cancel(context.Background(), 1, &models.CancelRequest{Identity: client, CancellationReason: ptr.Ptr("imprevisto")})

		require.NoError(t, err)
		assert.Equal(t, string(domain.StatusCancelled), resp.Status)
		require.NotNil(t, resp.CancelledAt)
		assert.Equal(t, "imprevisto", *repo.items[1].CancellationReason)
	})

	t.Run("professional cancels confirmed", func(t *testing.T) {
		svc, _ := newService(fakeServices{})
		_, err := svc.Cancel(context.Background(), 2, &models.CancelRequest{Identity: professional})
		require.NoError(t, err)
	})

	t.Run("completed is terminal", func(t *testing.T) {
		svc, _ := newService(fakeServices{})
		_, err := svc.Cancel(context.Background(), 3, &models.CancelRequest{Identity: admin})
		require.ErrorIs(t, err, ErrCannotCancel)
		require.ErrorIs(t, err, domain.ErrConflict)
	})

	t.Run("stranger denied", func(t *testing.T) {
		svc, repo := newService(fakeServices{})
		_, err := svc.Cancel(context.Background(), 1, &models.CancelRequest{Identity: stranger})
		require.ErrorIs(t, err, ErrAccessDenied)
		assert.Equal(t, domain.StatusPending, repo.items[1].Status)
	})
}

func TestComplete(t *testing.T) {
	svc, repo := newService(fakeServices{})

	_, err := svc.Complete(context.Background(), 1, professional)
	require.ErrorIs(t, err, ErrCannotComplete)

	_, err = svc.Complete(context.Background(), 2, client)
	require.ErrorIs(t, err, ErrAccessDenied)

	_, err = svc.Complete(context.Background(), 2, otherPro)
	require.ErrorIs(t, err, ErrAccessDenied)

	resp, err := svc.Complete(context.Background(), 2, professional)
	require.NoError(t, err)
	assert.Equal(t, string(domain.StatusCompleted), resp.Status)
	assert.Equal(t, domain.StatusCompleted, repo.items[2].Status)

	_, err = svc.Cancel(context.Background(), 2, &models.CancelRequest{Identity: professional})
	require.ErrorIs(t, err, ErrCannotCancel)
}
