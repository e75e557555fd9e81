package command

import (
	"context"
	"errors"

	"octobermarket/catalog-service/internal/app/catalog/entity"
	"octobermarket/catalog-service/internal/app/catalog/repository"
	"octobermarket/pkg/mediator"
	"octobermarket/pkg/result"
)

// DeleteItem команда удаления товара
type DeleteItem struct {
	ID int
}

func (c DeleteItem) Validate() []result.Error {
	if c.ID <= 0 {
		return []result.Error{*result.Validation("CatalogItems.InvalidID", "Item id must be a positive integer")}
	}
	return nil
}

// NewDeleteItemHandler создает обработчик удаления товара.
// Связи с категориями удаляются вместе с товаром
func NewDeleteItemHandler(items repository.ItemRepository) mediator.Handler[DeleteItem, result.Unit] {
	return func(ctx context.Context, cmd DeleteItem) result.Result[result.Unit] {
		if _, err := items.GetByID(ctx, cmd.ID); err != nil {
			if errors.Is(err, repository.ErrNotFound) {
				return result.Failure[result.Unit](entity.ItemNotFound(cmd.ID))
			}
			return result.Failure[result.Unit](result.Unexpected(err))
		}

		if err := items.Delete(ctx, cmd.ID); err != nil {
			if errors.Is(err, repository.ErrNotFound) {
				return result.Failure[result.Unit](entity.ItemNotFound(cmd.ID))
			}
			return result.Failure[result.Unit](result.Unexpected(err))
		}

		return result.Ok()
	}
}
