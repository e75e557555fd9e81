package command

import (
	"context"
	"errors"

	"octobermarket/catalog-service/internal/app/catalog/entity"
	"octobermarket/catalog-service/internal/app/catalog/repository"
	"octobermarket/pkg/mediator"
	"octobermarket/pkg/result"
)

// AddStock команда пополнения остатка товара
type AddStock struct {
	ID       int
	Quantity int
}

func (c AddStock) Validate() []result.Error {
	var errs []result.Error
	if c.ID <= 0 {
		errs = append(errs, *result.Validation("CatalogItems.InvalidID", "Item id must be a positive integer"))
	}
	if c.Quantity <= 0 {
		errs = append(errs, *result.Validation("CatalogItems.InvalidQuantity", "Quantity must be greater than zero"))
	}
	return errs
}

// NewAddStockHandler создает обработчик пополнения остатка.
// Пополнение сверх максимального порога склада запрещено.
// Когда остаток снова достигает порога дозаказа, флаг дозаказа снимается
func NewAddStockHandler(items repository.ItemRepository) mediator.Handler[AddStock, entity.ItemResponse] {
	return func(ctx context.Context, cmd AddStock) result.Result[entity.ItemResponse] {
		item, err := items.GetByID(ctx, cmd.ID)
		if err != nil {
			if errors.Is(err, repository.ErrNotFound) {
				return result.Failure[entity.ItemResponse](entity.ItemNotFound(cmd.ID))
			}
			return result.Failure[entity.ItemResponse](result.Unexpected(err))
		}

		if item.MaxStockThreshold > 0 && item.AvailableStock+cmd.Quantity > item.MaxStockThreshold {
			return result.Failure[entity.ItemResponse](entity.ItemExceedsMaxStock(cmd.ID, item.MaxStockThreshold))
		}

		item.AvailableStock += cmd.Quantity
		if item.AvailableStock >= item.RestockThreshold {
			item.OnReorder = false
		}

		if err := items.Update(ctx, item); err != nil {
			if errors.Is(err, repository.ErrNotFound) {
				return result.Failure[entity.ItemResponse](entity.ItemNotFound(cmd.ID))
			}
			return result.Failure[entity.ItemResponse](result.Unexpected(err))
		}

		return result.Success(entity.NewItemResponse(item))
	}
}
