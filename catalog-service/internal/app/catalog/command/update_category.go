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

// UpdateCategory команда переименования категории
type UpdateCategory struct {
	ID   int
	Name string
}

func (c UpdateCategory) Validate() []result.Error {
	var errs []result.Error
	if c.ID <= 0 {
		errs = append(errs, *result.Validation("CatalogCategories.InvalidID", "Category id must be a positive integer"))
	}
	if c.Name == "" {
		errs = append(errs, *result.Validation("CatalogCategories.NameRequired", "Category name is required"))
	}
	if len(c.Name) > 255 {
		errs = append(errs, *result.Validation("CatalogCategories.NameTooLong", "Category name must not exceed 255 characters"))
	}
	return errs
}

// NewUpdateCategoryHandler создает обработчик переименования категории
func NewUpdateCategoryHandler(categories repository.CategoryRepository, cache util.ListCache) mediator.Handler[UpdateCategory, entity.CategoryResponse] {
	return func(ctx context.Context, cmd UpdateCategory) result.Result[entity.CategoryResponse] {
		category, err := categories.GetByID(ctx, cmd.ID)
		if err != nil {
			if errors.Is(err, repository.ErrNotFound) {
				return result.Failure[entity.CategoryResponse](entity.CategoryNotFound(cmd.ID))
			}
			return result.Failure[entity.CategoryResponse](result.Unexpected(err))
		}

		exists, err := categories.ExistsByName(ctx, cmd.Name, cmd.ID)
		if err != nil {
			return result.Failure[entity.CategoryResponse](result.Unexpected(err))
		}
		if exists {
			return result.Failure[entity.CategoryResponse](entity.CategoryNameAlreadyExists)
		}

		category.Name = cmd.Name
		if err := categories.Update(ctx, category); err != nil {
			switch {
			case errors.Is(err, repository.ErrNotFound):
				return result.Failure[entity.CategoryResponse](entity.CategoryNotFound(cmd.ID))
			case errors.Is(err, repository.ErrDuplicate):
				return result.Failure[entity.CategoryResponse](entity.CategoryNameAlreadyExists)
			default:
				return result.Failure[entity.CategoryResponse](result.Unexpected(err))
			}
		}

		if err := cache.DeleteCategories(ctx); err != nil {
			logger.Warn().Err(err).Msg("не удалось сбросить кеш категорий")
		}

		return result.Success(entity.NewCategoryResponse(category))
	}
}
