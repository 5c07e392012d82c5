package catalog

import (
	"context"
	"errors"
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/m04kA/SMC-SalonBooking/internal/domain"
	serviceRepo "github.com/m04kA/SMC-SalonBooking/internal/infra/storage/service"
)

type fakeServices struct {
	items []*domain.Service
	err   error
}

func (f fakeServices) GetByID(_ context.Context, id int64) (*domain.Service, error) {
	if f.err != nil {
		return nil, f.err
	}
	for _, s := range f.items {
		if s.ID == id {
			return s, nil
		}
	}
	return nil, serviceRepo.ErrServiceNotFound
}

func (f fakeServices) List(_ context.Context) ([]*domain.Service, error) {
	return f.items, f.err
}

type fakeProfiles struct {
	requested domain.Role
}

func (f *fakeProfiles) ListByRole(_ context.Context, role domain.Role) ([]*domain.Profile, error) {
	f.requested = role
	return []*domain.Profile{{ID: "pro-1", Name: "Ana", Email: "ana@example.com", Role: role}}, nil
}

type noopLogger struct{}

func (noopLogger) Info(string, ...interface{})  {}
func (noopLogger) Warn(string, ...interface{})  {}
func (noopLogger) Error(string, ...interface{}) {}

func TestCatalog_Services(t *testing.T) {
	svc := NewService(fakeServices{items: []*domain.Service{
		{ID: 1, Name: "Corte", DurationMinutes: 60, Price: decimal.NewFromInt(80)},
		{ID: 2, Name: "Escova", DurationMinutes: 30, Price: decimal.RequireFromString("45.5")},
	}}, &fakeProfiles{}, noopLogger{})

	list, err := svc.ListServices(context.Background())
	require.NoError(t, err)
	require.Len(t, list.Services, 2)
	assert.Equal(t, "80.00", list.Services[0].Price)

	one, err := svc.GetService(context.Background(), 2)
	require.NoError(t, err)
	assert.Equal(t, "45.50", one.Price)

	_, err = svc.GetService(context.Background(), 3)
	require.ErrorIs(t, err, domain.ErrNotFound)

	_, err = svc.GetService(context.Background(), 0)
	require.ErrorIs(t, err, domain.ErrValidation)
}

func TestCatalog_ServicesBackendError(t *testing.T) {
	svc := NewService(fakeServices{err: errors.New("timeout")}, &fakeProfiles{}, noopLogger{})

	_, err := svc.ListServices(context.Background())
	require.ErrorIs(t, err, domain.ErrBackend)
}

func TestCatalog_Professionals(t *testing.T) {
	profiles := &fakeProfiles{}
	svc := NewService(fakeServices{}, profiles, noopLogger{})

	resp, err := svc.ListProfessionals(context.Background())

	require.NoError(t, err)
	assert.Equal(t, domain.RoleProfessional, profiles.requested)
	require.Len(t, resp.Professionals, 1)
	assert.Equal(t, "Ana", resp.Professionals[0].Name)
}
