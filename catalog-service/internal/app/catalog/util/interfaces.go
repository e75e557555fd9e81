package util

import (
	"context"
	"time"

	"octobermarket/catalog-service/internal/app/catalog/entity"
)

// ListCache кеширует полные списки брендов и категорий в Redis.
// Интерфейс нужен для dependency injection и подмены в тестах
type ListCache interface {
	GetBrands(ctx context.Context) ([]entity.Brand, error)
	SetBrands(ctx context.Context, brands []entity.Brand, ttl time.Duration) error
	DeleteBrands(ctx context.Context) error
	GetCategories(ctx context.Context) ([]entity.Category, error)
	SetCategories(ctx context.Context, categories []entity.Category, ttl time.Duration) error
	DeleteCategories(ctx context.Context) error
	Close() error
}

// EventPublisher отправляет события о товарах в очередь (Kafka)
type EventPublisher interface {
	PublishItemEvent(ctx context.Context, event entity.ItemEvent) error
	Close() error
}
