package repository

import (
	"context"
	"errors"

	"octobermarket/basket-service/internal/app/basket/entity"
)

// ErrNotFound возвращается когда у покупателя нет сохраненной корзины
var ErrNotFound = errors.New("basket not found")

// BasketRepository хранит корзины целиком, по одной на покупателя
type BasketRepository interface {
	Get(ctx context.Context, buyerID string) (*entity.CustomerBasket, error)
	Save(ctx context.Context, basket *entity.CustomerBasket) error
	Delete(ctx context.Context, buyerID string) error
	// BuyerIDs возвращает идентификаторы всех покупателей с корзинами,
	// используется консьюмером событий каталога
	BuyerIDs(ctx context.Context) ([]string, error)
}
