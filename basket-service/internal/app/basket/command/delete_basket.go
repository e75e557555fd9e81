package command

import (
	"context"
	"errors"

	"octobermarket/basket-service/internal/app/basket/entity"
	"octobermarket/basket-service/internal/app/basket/repository"
	"octobermarket/pkg/mediator"
	"octobermarket/pkg/result"
)

// DeleteBasket удаляет корзину покупателя
type DeleteBasket struct {
	BuyerID string
}

func (c DeleteBasket) Validate() []result.Error {
	if c.BuyerID == "" {
		return []result.Error{*entity.BasketEmptyBuyerID}
	}
	return nil
}

// NewDeleteBasketHandler создает обработчик удаления корзины
func NewDeleteBasketHandler(baskets repository.BasketRepository) mediator.Handler[DeleteBasket, result.Unit] {
	return func(ctx context.Context, cmd DeleteBasket) result.Result[result.Unit] {
		if _, err := baskets.Get(ctx, cmd.BuyerID); err != nil {
			if errors.Is(err, repository.ErrNotFound) {
				return result.Failure[result.Unit](entity.BasketNotFound(cmd.BuyerID))
			}
			return result.Failure[result.Unit](result.Unexpected(err))
		}

		if err := baskets.Delete(ctx, cmd.BuyerID); err != nil {
			return result.Failure[result.Unit](result.Unexpected(err))
		}
		return result.Ok()
	}
}
