package repository

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/example/foodcourt/pkg/config"
	"github.com/example/foodcourt/pkg/models"
	"github.com/go-redis/redis/v8"
)

type RedisRepository struct {
	client *redis.Client
	config *config.RedisConfig
}

func NewRedisRepository(cfg *config.RedisConfig) *RedisRepository {
	return &RedisRepository{
		client: redis.NewClient(&redis.Options{
			Addr:     cfg.Addr,
			Password: cfg.Password,
			DB:       cfg.DB,
			PoolSize: cfg.PoolSize,
		}),
		config: cfg,
	}
}

func (r *RedisRepository) Ping(ctx context.Context) error {
	return r.client.Ping(ctx).Err()
}

func (r *RedisRepository) Set(ctx context.Context, key string, value interface{}, expiration time.Duration) error {
	return r.client.Set(ctx, key, value, expiration).Err()
}

func (r *RedisRepository) Get(ctx context.Context, key string) (string, error) {
	return r.client.Get(ctx, key).Result()
}

func (r *RedisRepository) Del(ctx context.Context, keys ...string) error {
	return r.client.Del(ctx, keys...).Err()
}

func (r *RedisRepository) SetJSON(ctx context.Context, key string, value interface{}, expiration time.Duration) error {
	data, err := json.Marshal(value)
	if err != nil {
		return err
	}
	return r.client.Set(ctx, key, data, expiration).Err()
}

func (r *RedisRepository) GetJSON(ctx context.Context, key string, dest interface{}) error {
	data, err := r.client.Get(ctx, key).Result()
	if err != nil {
		return err
	}
	return json.Unmarshal([]byte(data), dest)
}

func (r *RedisRepository) Close() error {
	return r.client.Close()
}

// Transient per-user cart state. Carts idle for a week are dropped.
const cartTTL = 7 * 24 * time.Hour

func cartKey(userID string) string {
	return fmt.Sprintf("cart:%s", userID)
}

func (r *RedisRepository) GetCart(ctx context.Context, userID string) ([]models.CartItem, error) {
	var items []models.CartItem
	err := r.GetJSON(ctx, cartKey(userID), &items)
	if errors.Is(err, redis.Nil) {
		return []models.CartItem{}, nil
	}
	if err != nil {
		return nil, err
	}
	return items, nil
}

func (r *RedisRepository) SaveCart(ctx context.Context, userID string, items []models.CartItem) error {
	return r.SetJSON(ctx, cartKey(userID), items, cartTTL)
}

func (r *RedisRepository) ClearCart(ctx context.Context, userID string) error {
	return r.Del(ctx, cartKey(userID))
}
