package command

import (
	"context"
	"errors"

	"octobermarket/catalog-service/internal/app/catalog/entity"
	"octobermarket/catalog-service/internal/app/catalog/repository"
	"octobermarket/catalog-service/internal/app/catalog/util"
	"octobermarket/pkg/logger"
	"octobermarket/pkg/mediator"
	"octobermarket/pkg/result"
)

// DeleteCategory команда удаления категории
type DeleteCategory struct {
	ID int
}

func (c DeleteCategory) Validate() []result.Error {
	if c.ID <= 0 {
		return []result.Error{*result.Validation("CatalogCategories.InvalidID", "Category id must be a positive integer")}
	}
	return nil
}

// NewDeleteCategoryHandler создает обработчик: категорию с привязанными
// товарами удалить нельзя
func NewDeleteCategoryHandler(categories repository.CategoryRepository, cache util.ListCache) mediator.Handler[DeleteCategory, result.Unit] {
	return func(ctx context.Context, cmd DeleteCategory) result.Result[result.Unit] {
		if _, err := categories.GetByID(ctx, cmd.ID); err != nil {
			if errors.Is(err, repository.ErrNotFound) {
				return result.Failure[result.Unit](entity.CategoryNotFound(cmd.ID))
			}
			return result.Failure[result.Unit](result.Unexpected(err))
		}

		count, err := categories.CountItems(ctx, cmd.ID)
		if err != nil {
			return result.Failure[result.Unit](result.Unexpected(err))
		}
		if count > 0 {
			return result.Failure[result.Unit](entity.CategoryCannotDeleteWithItems(cmd.ID))
		}

		if err := categories.Delete(ctx, cmd.ID); err != nil {
			switch {
			case errors.Is(err, repository.ErrNotFound):
				return result.Failure[result.Unit](entity.CategoryNotFound(cmd.ID))
			case errors.Is(err, repository.ErrReferenced):
				return result.Failure[result.Unit](entity.CategoryCannotDeleteWithItems(cmd.ID))
			default:
				return result.Failure[result.Unit](result.Unexpected(err))
			}
		}

		if err := cache.DeleteCategories(ctx); err != nil {
			logger.Warn().Err(err).Msg("не удалось сбросить кеш категорий")
		}

		return result.Ok()
	}
}
