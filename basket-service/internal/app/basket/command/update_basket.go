package command

import (
	"context"
	"fmt"

	"octobermarket/basket-service/internal/app/basket/entity"
	"octobermarket/basket-service/internal/app/basket/repository"
	"octobermarket/pkg/mediator"
	"octobermarket/pkg/result"

	"github.com/google/uuid"
)

// UpdateBasket полностью заменяет содержимое корзины покупателя
type UpdateBasket struct {
	BuyerID string
	Items   []entity.BasketItemRequest
}

func (c UpdateBasket) Validate() []result.Error {
	var errs []result.Error
	if c.BuyerID == "" {
		errs = append(errs, *entity.BasketEmptyBuyerID)
	}
	for i, item := range c.Items {
		if item.ProductID <= 0 {
			errs = append(errs, *result.Validation("Basket.InvalidProductID",
				itemError(i, "product id must be a positive integer")))
		}
		if item.ProductName == "" {
			errs = append(errs, *result.Validation("Basket.ProductNameRequired",
				itemError(i, "product name is required")))
		}
		if item.UnitPrice <= 0 {
			errs = append(errs, *result.Validation("Basket.InvalidUnitPrice",
				itemError(i, "unit price must be greater than zero")))
		}
		if item.Quantity <= 0 {
			errs = append(errs, *result.Validation("Basket.InvalidQuantity",
				itemError(i, "quantity must be greater than zero")))
		}
	}
	return errs
}

func itemError(index int, msg string) string {
	return fmt.Sprintf("Item %d: %s", index, msg)
}

// NewUpdateBasketHandler создает обработчик сохранения корзины.
// Позиции получают новые идентификаторы при каждом сохранении
func NewUpdateBasketHandler(baskets repository.BasketRepository) mediator.Handler[UpdateBasket, entity.CustomerBasket] {
	return func(ctx context.Context, cmd UpdateBasket) result.Result[entity.CustomerBasket] {
		basket := entity.NewCustomerBasket(cmd.BuyerID)
		for _, item := range cmd.Items {
			basket.Items = append(basket.Items, entity.BasketItem{
				ID:          uuid.NewString(),
				ProductID:   item.ProductID,
				ProductName: item.ProductName,
				UnitPrice:   item.UnitPrice,
				Quantity:    item.Quantity,
				PictureURL:  item.PictureURL,
			})
		}

		if err := baskets.Save(ctx, basket); err != nil {
			return result.Failure[entity.CustomerBasket](result.Unexpected(err))
		}
		return result.Success(*basket)
	}
}
