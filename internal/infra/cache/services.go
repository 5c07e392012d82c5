// Package cache read-through кэш справочника услуг в Redis.
// Ошибки Redis не прерывают запрос: данные берутся из репозитория.
package cache

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"

	"github.com/m04kA/SMC-SalonBooking/internal/domain"
)

const (
	keyPrefix  = "salon:services"
	listKey    = keyPrefix + ":all"
	defaultTTL = 5 * time.Minute
)

// ServiceCache кэширующая обёртка над репозиторием услуг
type ServiceCache struct {
	repo   ServiceRepository
	rdb    *redis.Client
	ttl    time.Duration
	logger Logger
}

// NewServiceCache создает кэш. Неположительный ttl заменяется на 5 минут.
func NewServiceCache(repo ServiceRepository, rdb *redis.Client, ttl time.Duration, logger Logger) *ServiceCache {
	if ttl <= 0 {
		ttl = defaultTTL
	}
	return &ServiceCache{repo: repo, rdb: rdb, ttl: ttl, logger: logger}
}

// cachedService представление услуги в кэше
type cachedService struct {
	ID              int64     `json:"id"`
	Name            string    `json:"name"`
	Description     string    `json:"description"`
	DurationMinutes int       `json:"duration_minutes"`
	Price           string    `json:"price"`
	ImageURL        *string   `json:"image_url,omitempty"`
	CreatedAt       time.Time `json:"created_at"`
}

func toCached(s *domain.Service) cachedService {
	return cachedService{
		ID:              s.ID,
		Name:            s.Name,
		Description:     s.Description,
		DurationMinutes: s.DurationMinutes,
		Price:           s.Price.String(),
		ImageURL:        s.ImageURL,
		CreatedAt:       s.CreatedAt,
	}
}

func (c cachedService) toDomain() (*domain.Service, error) {
	s := &domain.Service{
		ID:              c.ID,
		Name:            c.Name,
		Description:     c.Description,
		DurationMinutes: c.DurationMinutes,
		ImageURL:        c.ImageURL,
		CreatedAt:       c.CreatedAt,
	}
	if err := s.Price.UnmarshalText([]byte(c.Price)); err != nil {
		return nil, err
	}
	return s, nil
}

func serviceKey(id int64) string {
	return fmt.Sprintf("%s:%d", keyPrefix, id)
}

// GetByID услуга из кэша или из репозитория
func (c *ServiceCache) GetByID(ctx context.Context, id int64) (*domain.Service, error) {
	var cached cachedService
	if c.get(ctx, serviceKey(id), &cached) {
		if service, err := cached.toDomain(); err == nil {
			return service, nil
		}
	}

	service, err := c.repo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}

	c.set(ctx, serviceKey(id), toCached(service))
	return service, nil
}

// GetByIDs несколько услуг. Отсутствующие в кэше запрашиваются одним запросом.
func (c *ServiceCache) GetByIDs(ctx context.Context, ids []int64) (map[int64]*domain.Service, error) {
	result := make(map[int64]*domain.Service, len(ids))
	missing := make([]int64, 0)

	for _, id := range ids {
		if _, ok := result[id]; ok {
			continue
		}
		var cached cachedService
		if c.get(ctx, serviceKey(id), &cached) {
			if service, err := cached.toDomain(); err == nil {
				result[id] = service
				continue
			}
		}
		missing = append(missing, id)
	}

	if len(missing) == 0 {
		return result, nil
	}

	loaded, err := c.repo.GetByIDs(ctx, missing)
	if err != nil {
		return nil, err
	}
	for id, service := range loaded {
		result[id] = service
		c.set(ctx, serviceKey(id), toCached(service))
	}

	return result, nil
}

// List список услуг
func (c *ServiceCache) List(ctx context.Context) ([]*domain.Service, error) {
	var cached []cachedService
	if c.get(ctx, listKey, &cached) {
		services := make([]*domain.Service, 0, len(cached))
		for _, item := range cached {
			service, err := item.toDomain()
			if err != nil {
				services = nil
				break
			}
			services = append(services, service)
		}
		if services != nil {
			return services, nil
		}
	}

	services, err := c.repo.List(ctx)
	if err != nil {
		return nil, err
	}

	toStore := make([]cachedService, len(services))
	for i, s := range services {
		toStore[i] = toCached(s)
	}
	c.set(ctx, listKey, toStore)

	return services, nil
}

func (c *ServiceCache) get(ctx context.Context, key string, dest interface{}) bool {
	raw, err := c.rdb.Get(ctx, key).Bytes()
	if errors.Is(err, redis.Nil) {
		return false
	}
	if err != nil {
		c.logger.Warn("ServiceCache: get %s: %v", key, err)
		return false
	}

	if err := json.Unmarshal(raw, dest); err != nil {
		c.logger.Warn("ServiceCache: decode %s: %v", key, err)
		return false
	}
	return true
}

func (c *ServiceCache) set(ctx context.Context, key string, value interface{}) {
	raw, err := json.Marshal(value)
	if err != nil {
		c.logger.Warn("ServiceCache: encode %s: %v", key, err)
		return
	}

	if err := c.rdb.Set(ctx, key, raw, c.ttl).Err(); err != nil {
		c.logger.Warn("ServiceCache: set %s: %v", key, err)
	}
}
