package query

import (
	"context"

	"octobermarket/catalog-service/internal/app/catalog/entity"
	"octobermarket/catalog-service/internal/app/catalog/repository"
	"octobermarket/pkg/mediator"
	"octobermarket/pkg/paging"
	"octobermarket/pkg/result"
)

// GetItems постраничный запрос товаров с фильтрами по имени, бренду и категории
type GetItems struct {
	Name       string
	BrandID    int
	CategoryID int
	paging.Options
}

func (q GetItems) Validate() []result.Error {
	errs := q.Options.Validate("CatalogItems", []string{"name", "price"})
	if len(q.Name) > 100 {
		errs = append(errs, *result.Validation("CatalogItems.NameFilterTooLong",
			"Name filter must not exceed 100 characters"))
	}
	if q.BrandID < 0 {
		errs = append(errs, *result.Validation("CatalogItems.InvalidBrandFilter",
			"Brand filter must not be negative"))
	}
	if q.CategoryID < 0 {
		errs = append(errs, *result.Validation("CatalogItems.InvalidCategoryFilter",
			"Category filter must not be negative"))
	}
	return errs
}

// NewGetItemsHandler создает обработчик каталога товаров
func NewGetItemsHandler(items repository.ItemRepository) mediator.Handler[GetItems, paging.Paged[entity.ItemResponse]] {
	return func(ctx context.Context, q GetItems) result.Result[paging.Paged[entity.ItemResponse]] {
		filter := repository.ItemFilter{
			Name:       q.Name,
			BrandID:    q.BrandID,
			CategoryID: q.CategoryID,
		}
		list, total, err := items.List(ctx, filter, q.Options)
		if err != nil {
			return result.Failure[paging.Paged[entity.ItemResponse]](result.Unexpected(err))
		}

		responses := make([]entity.ItemResponse, 0, len(list))
		for i := range list {
			responses = append(responses, entity.NewItemResponse(&list[i]))
		}
		return result.Success(paging.NewPaged(responses, total, q.Options))
	}
}
