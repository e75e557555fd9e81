package util

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"octobermarket/catalog-service/internal/app/catalog/entity"
	"octobermarket/pkg/metrics"

	"github.com/redis/go-redis/v9"
)

const (
	brandsCacheKey     = "brands:all"
	categoriesCacheKey = "categories:all"

	serviceName = "catalog"
)

// RedisCache хранит полные списки брендов и категорий.
// Постраничные запросы всегда идут в PostgreSQL, кеш обслуживает
// проверки ссылок и выдачу полных списков
type RedisCache struct {
	client *redis.Client
}

// NewRedisCache подключается к Redis и проверяет соединение через Ping
func NewRedisCache(addr, password string, db int) (*RedisCache, error) {
	client := redis.NewClient(&redis.Options{
		Addr:     addr,
		Password: password,
		DB:       db,
	})

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	if err := client.Ping(ctx).Err(); err != nil {
		return nil, fmt.Errorf("failed to connect to redis: %w", err)
	}

	return &RedisCache{client: client}, nil
}

func (r *RedisCache) GetBrands(ctx context.Context) ([]entity.Brand, error) {
	var brands []entity.Brand
	if err := r.getJSON(ctx, brandsCacheKey, &brands); err != nil {
		return nil, err
	}
	return brands, nil
}

func (r *RedisCache) SetBrands(ctx context.Context, brands []entity.Brand, ttl time.Duration) error {
	return r.setJSON(ctx, brandsCacheKey, brands, ttl)
}

func (r *RedisCache) DeleteBrands(ctx context.Context) error {
	if err := r.client.Del(ctx, brandsCacheKey).Err(); err != nil {
		return fmt.Errorf("failed to delete brands from cache: %w", err)
	}
	return nil
}

func (r *RedisCache) GetCategories(ctx context.Context) ([]entity.Category, error) {
	var categories []entity.Category
	if err := r.getJSON(ctx, categoriesCacheKey, &categories); err != nil {
		return nil, err
	}
	return categories, nil
}

func (r *RedisCache) SetCategories(ctx context.Context, categories []entity.Category, ttl time.Duration) error {
	return r.setJSON(ctx, categoriesCacheKey, categories, ttl)
}

func (r *RedisCache) DeleteCategories(ctx context.Context) error {
	if err := r.client.Del(ctx, categoriesCacheKey).Err(); err != nil {
		return fmt.Errorf("failed to delete categories from cache: %w", err)
	}
	return nil
}

func (r *RedisCache) Close() error {
	return r.client.Close()
}

// getJSON читает и десериализует значение ключа.
// Отсутствие ключа не ошибка - dest остается нулевым
func (r *RedisCache) getJSON(ctx context.Context, key string, dest interface{}) error {
	data, err := r.client.Get(ctx, key).Bytes()
	if err != nil {
		if err == redis.Nil {
			metrics.RecordCacheMiss(serviceName, key)
			return nil
		}
		return fmt.Errorf("failed to get %s from cache: %w", key, err)
	}

	metrics.RecordCacheHit(serviceName, key)

	if err := json.Unmarshal(data, dest); err != nil {
		return fmt.Errorf("failed to unmarshal %s: %w", key, err)
	}
	return nil
}

func (r *RedisCache) setJSON(ctx context.Context, key string, value interface{}, ttl time.Duration) error {
	data, err := json.Marshal(value)
	if err != nil {
		return fmt.Errorf("failed to marshal %s: %w", key, err)
	}

	if err := r.client.Set(ctx, key, data, ttl).Err(); err != nil {
		return fmt.Errorf("failed to set %s in cache: %w", key, err)
	}
	return nil
}
