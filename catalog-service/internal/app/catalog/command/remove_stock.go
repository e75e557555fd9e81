package command

import (
	"context"
	"errors"

	"octobermarket/catalog-service/internal/app/catalog/entity"
	"octobermarket/catalog-service/internal/app/catalog/repository"
	"octobermarket/pkg/mediator"
	"octobermarket/pkg/result"
)

// RemoveStock команда списания остатка товара
type RemoveStock struct {
	ID       int
	Quantity int
}

func (c RemoveStock) Validate() []result.Error {
	var errs []result.Error
	if c.ID <= 0 {
		errs = append(errs, *result.Validation("CatalogItems.InvalidID", "Item id must be a positive integer"))
	}
	if c.Quantity <= 0 {
		errs = append(errs, *result.Validation("CatalogItems.InvalidQuantity", "Quantity must be greater than zero"))
	}
	return errs
}

// NewRemoveStockHandler создает обработчик списания остатка.
// Списание не уходит в минус: снимается не больше, чем есть на складе
func NewRemoveStockHandler(items repository.ItemRepository) mediator.Handler[RemoveStock, entity.ItemResponse] {
	return func(ctx context.Context, cmd RemoveStock) result.Result[entity.ItemResponse] {
		item, err := items.GetByID(ctx, cmd.ID)
		if err != nil {
			if errors.Is(err, repository.ErrNotFound) {
				return result.Failure[entity.ItemResponse](entity.ItemNotFound(cmd.ID))
			}
			return result.Failure[entity.ItemResponse](result.Unexpected(err))
		}

		if item.AvailableStock == 0 {
			return result.Failure[entity.ItemResponse](entity.ItemOutOfStock(cmd.ID))
		}

		removed := cmd.Quantity
		if removed > item.AvailableStock {
			removed = item.AvailableStock
		}
		item.AvailableStock -= removed

		if err := items.Update(ctx, item); err != nil {
			if errors.Is(err, repository.ErrNotFound) {
				return result.Failure[entity.ItemResponse](entity.ItemNotFound(cmd.ID))
			}
			return result.Failure[entity.ItemResponse](result.Unexpected(err))
		}

		return result.Success(entity.NewItemResponse(item))
	}
}
