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

// CreateCategory команда создания категории
type CreateCategory struct {
	Name string
}

func (c CreateCategory) Validate() []result.Error {
	var errs []result.Error
	if c.Name == "" {
		errs = append(errs, *result.Validation("CatalogCategories.NameRequired", "Category name is required"))
	}
	if len(c.Name) > 255 {
		errs = append(errs, *result.Validation("CatalogCategories.NameTooLong", "Category name must not exceed 255 characters"))
	}
	return errs
}

// NewCreateCategoryHandler создает обработчик создания категории
func NewCreateCategoryHandler(categories repository.CategoryRepository, cache util.ListCache) mediator.Handler[CreateCategory, entity.CategoryResponse] {
	return func(ctx context.Context, cmd CreateCategory) result.Result[entity.CategoryResponse] {
		exists, err := categories.ExistsByName(ctx, cmd.Name, 0)
		if err != nil {
			return result.Failure[entity.CategoryResponse](result.Unexpected(err))
		}
		if exists {
			return result.Failure[entity.CategoryResponse](entity.CategoryNameAlreadyExists)
		}

		category := &entity.Category{Name: cmd.Name}
		if err := categories.Create(ctx, category); err != nil {
			if errors.Is(err, repository.ErrDuplicate) {
				return result.Failure[entity.CategoryResponse](entity.CategoryNameAlreadyExists)
			}
			return result.Failure[entity.CategoryResponse](result.Unexpected(err))
		}

		if err := cache.DeleteCategories(ctx); err != nil {
			logger.Warn().Err(err).Msg("не удалось сбросить кеш категорий")
		}

		return result.Success(entity.NewCategoryResponse(category))
	}
}
