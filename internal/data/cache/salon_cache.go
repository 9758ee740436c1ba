package cache

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"glamhaven/internal/data/entity"
	"glamhaven/internal/data/repository"
	"glamhaven/pkg/utils"

	"github.com/redis/go-redis/v9"
	"go.uber.org/zap"
)

// ConnectRedis opens and pings a redis client
func ConnectRedis(cfg utils.RedisConfig) (*redis.Client, error) {
	rdb := redis.NewClient(&redis.Options{
		Addr:         cfg.Addr,
		Password:     cfg.Password,
		DB:           cfg.DB,
		PoolSize:     20,
		DialTimeout:  5 * time.Second,
		ReadTimeout:  5 * time.Second,
		WriteTimeout: 3 * time.Second,
	})

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	if err := rdb.Ping(ctx).Err(); err != nil {
		return nil, fmt.Errorf("redis ping failed: %w", err)
	}

	return rdb, nil
}

// CachedSalonRepository is a read-through decorator over SalonRepository.
// Redis failures degrade to the real repository, never to an error.
type CachedSalonRepository struct {
	realRepo repository.SalonRepository
	redis    *redis.Client
	ttl      time.Duration
	log      *zap.Logger
}

func NewCachedSalonRepository(realRepo repository.SalonRepository, rdb *redis.Client, log *zap.Logger) *CachedSalonRepository {
	return &CachedSalonRepository{
		realRepo: realRepo,
		redis:    rdb,
		ttl:      5 * time.Minute,
		log:      log.With(zap.String("cache", "salon")),
	}
}

func salonKey(id int) string {
	return fmt.Sprintf("salon:%d", id)
}

func (c *CachedSalonRepository) FindByID(ctx context.Context, id int) (*entity.Salon, error) {
	key := salonKey(id)

	data, err := c.redis.Get(ctx, key).Bytes()

	switch {
	case err == nil:
		var salon entity.Salon
		if err := json.Unmarshal(data, &salon); err != nil {
			c.log.Warn("Failed to unmarshal cached salon, falling through to store", zap.Error(err))
			break
		}
		return &salon, nil

	case errors.Is(err, redis.Nil):
		// cache miss

	default:
		c.log.Warn("Redis error, falling through to store", zap.Error(err))
	}

	salon, err := c.realRepo.FindByID(ctx, id)
	if err != nil || salon == nil {
		return salon, err
	}

	jsonData, err := json.Marshal(salon)
	if err != nil {
		c.log.Warn("Failed to marshal salon for cache", zap.Error(err))
		return salon, nil
	}

	if err := c.redis.Set(ctx, key, jsonData, c.ttl).Err(); err != nil {
		c.log.Warn("Failed to cache salon", zap.Error(err))
	}

	return salon, nil
}

func (c *CachedSalonRepository) Create(ctx context.Context, salon *entity.Salon) error {
	return c.realRepo.Create(ctx, salon)
}

func (c *CachedSalonRepository) FindAll(ctx context.Context, filter repository.SalonFilter) ([]*entity.Salon, error) {
	return c.realRepo.FindAll(ctx, filter)
}

func (c *CachedSalonRepository) FindByOwnerID(ctx context.Context, ownerID int) ([]*entity.Salon, error) {
	return c.realRepo.FindByOwnerID(ctx, ownerID)
}

func (c *CachedSalonRepository) Update(ctx context.Context, salon *entity.Salon) error {
	c.invalidate(ctx, salon.ID)
	return c.realRepo.Update(ctx, salon)
}

func (c *CachedSalonRepository) UpdateRating(ctx context.Context, id, rating int) error {
	c.invalidate(ctx, id)
	return c.realRepo.UpdateRating(ctx, id, rating)
}

func (c *CachedSalonRepository) invalidate(ctx context.Context, id int) {
	if err := c.redis.Del(ctx, salonKey(id)).Err(); err != nil {
		c.log.Warn("Failed to invalidate salon cache", zap.Int("salon_id", id), zap.Error(err))
	}
}
