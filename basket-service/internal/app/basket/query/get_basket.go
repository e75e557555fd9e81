package query

import (
	"context"
	"errors"

	"octobermarket/basket-service/internal/app/basket/entity"
	"octobermarket/basket-service/internal/app/basket/repository"
	"octobermarket/pkg/mediator"
	"octobermarket/pkg/result"
)

// GetBasket запрос корзины покупателя
type GetBasket struct {
	BuyerID string
}

// NewGetBasketHandler создает обработчик чтения корзины.
// Отсутствие сохраненной корзины не ошибка - возвращается пустая
func NewGetBasketHandler(baskets repository.BasketRepository) mediator.Handler[GetBasket, entity.CustomerBasket] {
	return func(ctx context.Context, q GetBasket) result.Result[entity.CustomerBasket] {
		if q.BuyerID == "" {
			return result.Failure[entity.CustomerBasket](result.ErrNullValue)
		}

		basket, err := baskets.Get(ctx, q.BuyerID)
		if err != nil {
			if errors.Is(err, repository.ErrNotFound) {
				return result.Success(*entity.NewCustomerBasket(q.BuyerID))
			}
			return result.Failure[entity.CustomerBasket](result.Unexpected(err))
		}
		return result.Success(*basket)
	}
}
