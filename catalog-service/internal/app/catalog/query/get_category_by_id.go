package query

import (
	"context"
	"errors"

	"octobermarket/catalog-service/internal/app/catalog/entity"
	"octobermarket/catalog-service/internal/app/catalog/repository"
	"octobermarket/pkg/mediator"
	"octobermarket/pkg/result"
)

// GetCategoryByID запрос одной категории
type GetCategoryByID struct {
	ID int
}

func (q GetCategoryByID) Validate() []result.Error {
	if q.ID <= 0 {
		return []result.Error{*result.Validation("CatalogCategories.InvalidID", "Category id must be a positive integer")}
	}
	return nil
}

// NewGetCategoryByIDHandler создает обработчик чтения категории по идентификатору
func NewGetCategoryByIDHandler(categories repository.CategoryRepository) mediator.Handler[GetCategoryByID, entity.CategoryResponse] {
	return func(ctx context.Context, q GetCategoryByID) result.Result[entity.CategoryResponse] {
		category, err := categories.GetByID(ctx, q.ID)
		if err != nil {
			if errors.Is(err, repository.ErrNotFound) {
				return result.Failure[entity.CategoryResponse](entity.CategoryNotFound(q.ID))
			}
			return result.Failure[entity.CategoryResponse](result.Unexpected(err))
		}
		return result.Success(entity.NewCategoryResponse(category))
	}
}
