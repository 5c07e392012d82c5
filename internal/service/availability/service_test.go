package availability

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/m04kA/SMC-SalonBooking/internal/domain"
	availabilityRepo "github.com/m04kA/SMC-SalonBooking/internal/infra/storage/availability"
	blockoutRepo "github.com/m04kA/SMC-SalonBooking/internal/infra/storage/blockout"
	"github.com/m04kA/SMC-SalonBooking/internal/service/availability/models"
	"github.com/m04kA/SMC-SalonBooking/pkg/ptr"
	"github.com/m04kA/SMC-SalonBooking/pkg/types"
)

var (
	professional = domain.Identity{UserID: "pro-1", Role: domain.RoleProfessional}
	client       = domain.Identity{UserID: "client-1", Role: domain.RoleClient}
)

type fakeRules struct {
	rules       []*domain.AvailabilityRule
	replaceErr  error
	replaceCall int
}

func (f *fakeRules) GetByProfessional(_ context.Context, professionalID string) ([]*domain.AvailabilityRule, error) {
	result := make([]*domain.AvailabilityRule, 0)
	for _, r := range f.rules {
		if r.ProfessionalID == professionalID {
			result = append(result, r)
		}
	}
	return result, nil
}

func (f *fakeRules) ReplaceDay(_ context.Context, professionalID string, weekday time.Weekday, ranges []domain.TimeRange) ([]*domain.AvailabilityRule, error) {
	f.replaceCall++
	if f.replaceErr != nil {
		return nil, f.replaceErr
	}
	kept := make([]*domain.AvailabilityRule, 0)
	for _, r := range f.rules {
		if r.ProfessionalID != professionalID || r.Weekday != weekday {
			kept = append(kept, r)
		}
	}
	created := make([]*domain.AvailabilityRule, 0, len(ranges))
	for _, tr := range ranges {
		created = append(created, &domain.AvailabilityRule{
			ProfessionalID: professionalID,
			Weekday:        weekday,
			StartTime:      tr.Start,
			EndTime:        tr.End,
			IsAvailable:    true,
		})
	}
	f.rules = append(kept, created...)
	return created, nil
}

type fakeBlockouts struct {
	items  map[int64]*domain.Blockout
	nextID int64
}

func newFakeBlockouts() *fakeBlockouts {
	return &fakeBlockouts{items: make(map[int64]*domain.Blockout), nextID: 1}
}

func (f *fakeBlockouts) Create(_ context.Context, b *domain.Blockout) (*domain.Blockout, error) {
	for _, existing := range f.items {
		if existing.ProfessionalID == b.ProfessionalID && existing.Date.Equal(b.Date) {
			return nil, blockoutRepo.ErrDuplicateBlockout
		}
	}
	created := *b
	created.ID = f.nextID
	f.nextID++
	f.items[created.ID] = &created
	return &created, nil
}

func (f *fakeBlockouts) GetByProfessional(_ context.Context, professionalID string, from, to time.Time) ([]*domain.Blockout, error) {
	result := make([]*domain.Blockout, 0)
	for _, b := range f.items {
		if b.ProfessionalID != professionalID {
			continue
		}
		if !from.IsZero() && b.Date.Before(from) {
			continue
		}
		if !to.IsZero() && b.Date.After(to) {
			continue
		}
		result = append(result, b)
	}
	return result, nil
}

func (f *fakeBlockouts) Delete(_ context.Context, professionalID string, id int64) error {
	b, ok := f.items[id]
	if !ok || b.ProfessionalID != professionalID {
		return blockoutRepo.ErrBlockoutNotFound
	}
	delete(f.items, id)
	return nil
}

type fakeTx struct{ calls int }

func (f *fakeTx) Do(ctx context.Context, fn func(ctx context.Context) error) error {
	f.calls++
	return fn(ctx)
}

type fixedTime struct{ now time.Time }

func (f fixedTime) Now() time.Time { return f.now }

type noopLogger struct{}

func (noopLogger) Info(string, ...interface{})  {}
func (noopLogger) Warn(string, ...interface{})  {}
func (noopLogger) Error(string, ...interface{}) {}

func newTestService(t *testing.T) (*Service, *fakeRules, *fakeBlockouts, *fakeTx) {
	t.Helper()
	loc, err := time.LoadLocation("America/Sao_Paulo")
	require.NoError(t, err)

	rules := &fakeRules{}
	blockouts := newFakeBlockouts()
	tx := &fakeTx{}
	svc := NewService(rules, blockouts, tx, loc, noopLogger{})
	// 2025-06-02 08:00 по Сан-Паулу
	svc.timeProvider = fixedTime{now: time.Date(2025, 6, 2, 11, 0, 0, 0, time.UTC)}
	return svc, rules, blockouts, tx
}

func TestService_ListRules(t *testing.T) {
	svc, rules, _, _ := newTestService(t)
	rules.rules = []*domain.AvailabilityRule{
		{ProfessionalID: "pro-1", Weekday: time.Tuesday, StartTime: "14:00", EndTime: "18:00", IsAvailable: true},
		{ProfessionalID: "pro-1", Weekday: time.Tuesday, StartTime: "09:00", EndTime: "12:00", IsAvailable: true},
		{ProfessionalID: "pro-1", Weekday: time.Sunday, StartTime: "00:00", EndTime: "00:00", IsAvailable: false},
		{ProfessionalID: "pro-2", Weekday: time.Monday, StartTime: "09:00", EndTime: "18:00", IsAvailable: true},
	}

	resp, err := svc.ListRules(context.Background(), professional)
	require.NoError(t, err)
	require.Len(t, resp.Days, domain.DaysInWeek)

	assert.False(t, resp.Days[time.Sunday].Available)
	assert.False(t, resp.Days[time.Monday].Available, "rules of other professionals must not leak")

	tuesday := resp.Days[time.Tuesday]
	assert.True(t, tuesday.Available)
	assert.Equal(t, []models.TimeRange{
		{Start: "09:00", End: "12:00"},
		{Start: "14:00", End: "18:00"},
	}, tuesday.Ranges)
}

func TestService_ListRules_AccessDenied(t *testing.T) {
	svc, _, _, _ := newTestService(t)

	_, err := svc.ListRules(context.Background(), client)
	assert.ErrorIs(t, err, ErrAccessDenied)
	assert.ErrorIs(t, err, domain.ErrAuth)

	_, err = svc.ListRules(context.Background(), domain.Identity{})
	assert.ErrorIs(t, err, ErrUnauthenticated)
}

func TestService_ReplaceDay(t *testing.T) {
	svc, rules, _, tx := newTestService(t)
	rules.rules = []*domain.AvailabilityRule{
		{ProfessionalID: "pro-1", Weekday: time.Wednesday, StartTime: "08:00", EndTime: "20:00", IsAvailable: true},
	}

	day, err := svc.ReplaceDay(context.Background(), &models.ReplaceDayRequest{
		Identity: professional,
		Weekday:  int(time.Wednesday),
		Ranges: []models.TimeRange{
			{Start: "14:00", End: "18:00"},
			{Start: "09:00", End: "12:00"},
			{Start: "12:00", End: "13:00"},
		},
	})
	require.NoError(t, err)
	assert.Equal(t, 1, tx.calls)
	assert.True(t, day.Available)
	assert.Equal(t, []models.TimeRange{
		{Start: "09:00", End: "12:00"},
		{Start: "12:00", End: "13:00"},
		{Start: "14:00", End: "18:00"},
	}, day.Ranges)

	weekly, err := svc.ListRules(context.Background(), professional)
	require.NoError(t, err)
	assert.Len(t, weekly.Days[time.Wednesday].Ranges, 3)
}

func TestService_ReplaceDay_EmptyClosesDay(t *testing.T) {
	svc, rules, _, _ := newTestService(t)
	rules.rules = []*domain.AvailabilityRule{
		{ProfessionalID: "pro-1", Weekday: time.Friday, StartTime: "09:00", EndTime: "18:00", IsAvailable: true},
	}

	day, err := svc.ReplaceDay(context.Background(), &models.ReplaceDayRequest{
		Identity: professional,
		Weekday:  int(time.Friday),
	})
	require.NoError(t, err)
	assert.False(t, day.Available)
	assert.Empty(t, day.Ranges)
}

func TestService_ReplaceDay_Validation(t *testing.T) {
	tests := []struct {
		name    string
		req     *models.ReplaceDayRequest
		wantErr error
	}{
		{
			name:    "client cannot edit",
			req:     &models.ReplaceDayRequest{Identity: client, Weekday: 1},
			wantErr: ErrAccessDenied,
		},
		{
			name:    "weekday out of range",
			req:     &models.ReplaceDayRequest{Identity: professional, Weekday: 7},
			wantErr: ErrInvalidInput,
		},
		{
			name: "bad time format",
			req: &models.ReplaceDayRequest{Identity: professional, Weekday: 1, Ranges: []models.TimeRange{
				{Start: "9h", End: "12:00"},
			}},
			wantErr: ErrInvalidInput,
		},
		{
			name: "start after end",
			req: &models.ReplaceDayRequest{Identity: professional, Weekday: 1, Ranges: []models.TimeRange{
				{Start: "12:00", End: "09:00"},
			}},
			wantErr: ErrInvalidInput,
		},
		{
			name: "empty range",
			req: &models.ReplaceDayRequest{Identity: professional, Weekday: 1, Ranges: []models.TimeRange{
				{Start: "09:00", End: "09:00"},
			}},
			wantErr: ErrInvalidInput,
		},
		{
			name: "overlapping ranges",
			req: &models.ReplaceDayRequest{Identity: professional, Weekday: 1, Ranges: []models.TimeRange{
				{Start: "09:00", End: "12:00"},
				{Start: "11:30", End: "14:00"},
			}},
			wantErr: ErrOverlappingRanges,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			svc, rules, _, tx := newTestService(t)

			_, err := svc.ReplaceDay(context.Background(), tt.req)
			assert.ErrorIs(t, err, tt.wantErr)
			assert.Zero(t, rules.replaceCall)
			assert.Zero(t, tx.calls)
		})
	}
}

func TestService_ReplaceDay_RepositoryErrors(t *testing.T) {
	req := &models.ReplaceDayRequest{Identity: professional, Weekday: 2, Ranges: []models.TimeRange{
		{Start: "09:00", End: "12:00"},
	}}

	t.Run("overlap detected by storage", func(t *testing.T) {
		svc, rules, _, _ := newTestService(t)
		rules.replaceErr = availabilityRepo.ErrOverlappingRules

		_, err := svc.ReplaceDay(context.Background(), req)
		assert.ErrorIs(t, err, ErrOverlappingRanges)
		assert.ErrorIs(t, err, domain.ErrValidation)
	})

	t.Run("backend failure", func(t *testing.T) {
		svc, rules, _, _ := newTestService(t)
		rules.replaceErr = errors.New("connection reset")

		_, err := svc.ReplaceDay(context.Background(), req)
		assert.ErrorIs(t, err, ErrInternal)
		assert.ErrorIs(t, err, domain.ErrBackend)
	})
}

func TestService_Blockouts(t *testing.T) {
	svc, _, _, _ := newTestService(t)
	ctx := context.Background()

	created, err := svc.CreateBlockout(ctx, &models.CreateBlockoutRequest{
		Identity: professional,
		Date:     time.Date(2025, 6, 10, 0, 0, 0, 0, time.UTC),
		Reason:   ptr.Ptr("Férias"),
	})
	require.NoError(t, err)
	assert.Equal(t, "2025-06-10", created.Date)
	assert.Equal(t, "Férias", *created.Reason)

	_, err = svc.CreateBlockout(ctx, &models.CreateBlockoutRequest{
		Identity: professional,
		Date:     time.Date(2025, 6, 10, 0, 0, 0, 0, time.UTC),
	})
	assert.ErrorIs(t, err, ErrBlockoutExists)
	assert.ErrorIs(t, err, domain.ErrConflict)

	_, err = svc.CreateBlockout(ctx, &models.CreateBlockoutRequest{
		Identity: professional,
		Date:     time.Date(2025, 6, 2, 0, 0, 0, 0, time.UTC),
	})
	require.NoError(t, err, "today can be blocked")

	from := time.Date(2025, 6, 5, 0, 0, 0, 0, time.UTC)
	list, err := svc.ListBlockouts(ctx, &models.ListBlockoutsRequest{Identity: professional, From: &from})
	require.NoError(t, err)
	require.Len(t, list.Blockouts, 1)
	assert.Equal(t, created.ID, list.Blockouts[0].ID)

	require.NoError(t, svc.DeleteBlockout(ctx, professional, created.ID))
	assert.ErrorIs(t, svc.DeleteBlockout(ctx, professional, created.ID), ErrBlockoutNotFound)
}

func TestService_CreateBlockout_Validation(t *testing.T) {
	tests := []struct {
		name    string
		req     *models.CreateBlockoutRequest
		wantErr error
	}{
		{
			name:    "client",
			req:     &models.CreateBlockoutRequest{Identity: client, Date: time.Date(2025, 6, 10, 0, 0, 0, 0, time.UTC)},
			wantErr: ErrAccessDenied,
		},
		{
			name:    "missing date",
			req:     &models.CreateBlockoutRequest{Identity: professional},
			wantErr: ErrInvalidInput,
		},
		{
			name:    "past date",
			req:     &models.CreateBlockoutRequest{Identity: professional, Date: time.Date(2025, 6, 1, 0, 0, 0, 0, time.UTC)},
			wantErr: ErrInvalidInput,
		},
		{
			name: "reason too long",
			req: &models.CreateBlockoutRequest{
				Identity: professional,
				Date:     time.Date(2025, 6, 10, 0, 0, 0, 0, time.UTC),
				Reason:   ptr.Ptr(string(make([]byte, domain.MaxBlockoutReasonLength+1))),
			},
			wantErr: ErrInvalidInput,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			svc, _, blockouts, _ := newTestService(t)

			_, err := svc.CreateBlockout(context.Background(), tt.req)
			assert.ErrorIs(t, err, tt.wantErr)
			assert.Empty(t, blockouts.items)
		})
	}
}

func TestService_DeleteBlockout_OtherProfessional(t *testing.T) {
	svc, _, blockouts, _ := newTestService(t)
	blockouts.items[7] = &domain.Blockout{ID: 7, ProfessionalID: "pro-2", Date: time.Date(2025, 6, 10, 0, 0, 0, 0, time.UTC)}

	err := svc.DeleteBlockout(context.Background(), professional, 7)
	assert.ErrorIs(t, err, ErrBlockoutNotFound)
	assert.Len(t, blockouts.items, 1)
}

func TestParseRanges_Touching(t *testing.T) {
	ranges, err := parseRanges([]models.TimeRange{{Start: "13:00", End: "15:00"}, {Start: "10:00", End: "13:00"}})
	require.NoError(t, err)
	assert.Equal(t, types.TimeString("10:00"), ranges[0].Start)
	assert.Equal(t, types.TimeString("13:00"), ranges[1].Start)
}
