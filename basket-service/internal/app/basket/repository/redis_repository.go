package repository

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"octobermarket/basket-service/internal/app/basket/entity"

	"github.com/redis/go-redis/v9"
)

const (
	basketKeyPrefix = "basket:"

	// basketTTL продлевается при каждом сохранении корзины
	basketTTL = 30 * 24 * time.Hour
)

type redisBasketRepository struct {
	client *redis.Client
}

// NewRedisBasketRepository подключается к Redis и проверяет соединение
func NewRedisBasketRepository(addr, password string, db int) (BasketRepository, error) {
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

	return &redisBasketRepository{client: client}, nil
}

func basketKey(buyerID string) string {
	return basketKeyPrefix + buyerID
}

// Get читает корзину покупателя
func (r *redisBasketRepository) Get(ctx context.Context, buyerID string) (*entity.CustomerBasket, error) {
	data, err := r.client.Get(ctx, basketKey(buyerID)).Bytes()
	if err != nil {
		if err == redis.Nil {
			return nil, ErrNotFound
		}
		return nil, fmt.Errorf("failed to get basket: %w", err)
	}

	var basket entity.CustomerBasket
	if err := json.Unmarshal(data, &basket); err != nil {
		return nil, fmt.Errorf("failed to unmarshal basket: %w", err)
	}
	return &basket, nil
}

// Save сохраняет корзину целиком и обновляет TTL
func (r *redisBasketRepository) Save(ctx context.Context, basket *entity.CustomerBasket) error {
	data, err := json.Marshal(basket)
	if err != nil {
		return fmt.Errorf("failed to marshal basket: %w", err)
	}

	if err := r.client.Set(ctx, basketKey(basket.BuyerID), data, basketTTL).Err(); err != nil {
		return fmt.Errorf("failed to save basket: %w", err)
	}
	return nil
}

// Delete удаляет корзину покупателя. Отсутствие корзины не ошибка
func (r *redisBasketRepository) Delete(ctx context.Context, buyerID string) error {
	if err := r.client.Del(ctx, basketKey(buyerID)).Err(); err != nil {
		return fmt.Errorf("failed to delete basket: %w", err)
	}
	return nil
}

// BuyerIDs сканирует ключи корзин. SCAN вместо KEYS, чтобы не
// блокировать Redis на большом числе корзин
func (r *redisBasketRepository) BuyerIDs(ctx context.Context) ([]string, error) {
	var ids []string

	iter := r.client.Scan(ctx, 0, basketKeyPrefix+"*", 100).Iterator()
	for iter.Next(ctx) {
		ids = append(ids, iter.Val()[len(basketKeyPrefix):])
	}
	if err := iter.Err(); err != nil {
		return nil, fmt.Errorf("failed to scan basket keys: %w", err)
	}
	return ids, nil
}
