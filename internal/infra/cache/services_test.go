package cache

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/redis/go-redis/v9"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/m04kA/SMC-SalonBooking/internal/domain"
)

type fakeRepo struct {
	services map[int64]*domain.Service
	calls    int
}

func (f *fakeRepo) GetByID(_ context.Context, id int64) (*domain.Service, error) {
	f.calls++
	s, ok := f.services[id]
	if !ok {
		return nil, errors.New("not found")
	}
	return s, nil
}

func (f *fakeRepo) GetByIDs(_ context.Context, ids []int64) (map[int64]*domain.Service, error) {
	f.calls++
	result := make(map[int64]*domain.Service)
	for _, id := range ids {
		if s, ok := f.services[id]; ok {
			result[id] = s
		}
	}
	return result, nil
}

func (f *fakeRepo) List(_ context.Context) ([]*domain.Service, error) {
	f.calls++
	result := make([]*domain.Service, 0, len(f.services))
	for _, s := range f.services {
		result = append(result, s)
	}
	return result, nil
}

type nopLogger struct{ warnings int }

func (l *nopLogger) Warn(string, ...interface{}) { l.warnings++ }

// unreachableRedis клиент без сервера: все команды завершаются ошибкой соединения
func unreachableRedis() *redis.Client {
	return redis.NewClient(&redis.Options{
		Addr:        "127.0.0.1:1",
		DialTimeout: 50 * time.Millisecond,
		MaxRetries:  -1,
	})
}

func TestServiceCache_FallsBackToRepositoryWhenRedisIsDown(t *testing.T) {
	repo := &fakeRepo{services: map[int64]*domain.Service{
		1: {ID: 1, Name: "Box braids", DurationMinutes: 240, Price: decimal.RequireFromString("350.00")},
	}}
	logger := &nopLogger{}
	rdb := unreachableRedis()
	defer rdb.Close()

	cache := NewServiceCache(repo, rdb, time.Minute, logger)

	service, err := cache.GetByID(context.Background(), 1)
	require.NoError(t, err)
	assert.Equal(t, "Box braids", service.Name)
	assert.Equal(t, 1, repo.calls)
	assert.Positive(t, logger.warnings)

	services, err := cache.GetByIDs(context.Background(), []int64{1, 1})
	require.NoError(t, err)
	assert.Len(t, services, 1)

	list, err := cache.List(context.Background())
	require.NoError(t, err)
	assert.Len(t, list, 1)
}

func TestCachedService_RoundTripKeepsPrice(t *testing.T) {
	original := &domain.Service{ID: 7, Name: "Twist", DurationMinutes: 180, Price: decimal.RequireFromString("199.90")}

	restored, err := toCached(original).toDomain()
	require.NoError(t, err)

	assert.True(t, original.Price.Equal(restored.Price))
	assert.Equal(t, original.DurationMinutes, restored.DurationMinutes)
}
