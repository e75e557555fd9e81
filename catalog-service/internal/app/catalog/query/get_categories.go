package query

import (
	"context"
	"sort"

	"octobermarket/catalog-service/internal/app/catalog/entity"
	"octobermarket/catalog-service/internal/app/catalog/repository"
	"octobermarket/catalog-service/internal/app/catalog/util"
	"octobermarket/pkg/logger"
	"octobermarket/pkg/mediator"
	"octobermarket/pkg/paging"
	"octobermarket/pkg/result"
)

// GetCategories постраничный запрос категорий
type GetCategories struct {
	Name string
	paging.Options
}

func (q GetCategories) Validate() []result.Error {
	errs := q.Options.Validate("CatalogCategories", []string{"name"})
	if len(q.Name) > 100 {
		errs = append(errs, *result.Validation("CatalogCategories.NameFilterTooLong",
			"Name filter must not exceed 100 characters"))
	}
	return errs
}

// NewGetCategoriesHandler создает обработчик списка категорий.
// Схема кеширования та же, что и для брендов
func NewGetCategoriesHandler(categories repository.CategoryRepository, cache util.ListCache) mediator.Handler[GetCategories, paging.Paged[entity.CategoryResponse]] {
	return func(ctx context.Context, q GetCategories) result.Result[paging.Paged[entity.CategoryResponse]] {
		var (
			list  []entity.Category
			total int64
		)

		if q.Name == "" {
			all, err := cache.GetCategories(ctx)
			if err != nil {
				logger.Warn().Err(err).Msg("кеш категорий недоступен, читаем из базы")
			}
			if all == nil {
				all, err = categories.ListAll(ctx)
				if err != nil {
					return result.Failure[paging.Paged[entity.CategoryResponse]](result.Unexpected(err))
				}
				if all == nil {
					// Пустой каталог кешируется как [], nil означает промах
					all = []entity.Category{}
				}
				if cerr := cache.SetCategories(ctx, all, listCacheTTL); cerr != nil {
					logger.Warn().Err(cerr).Msg("не удалось записать кеш категорий")
				}
			}

			if field, order := q.Sort(); field == "name" {
				sort.SliceStable(all, func(i, j int) bool {
					if order == paging.Descending {
						return all[i].Name > all[j].Name
					}
					return all[i].Name < all[j].Name
				})
			}

			total = int64(len(all))
			list = pageSlice(all, q.Options)
		} else {
			var err error
			list, total, err = categories.List(ctx, repository.CategoryFilter{Name: q.Name}, q.Options)
			if err != nil {
				return result.Failure[paging.Paged[entity.CategoryResponse]](result.Unexpected(err))
			}
		}

		responses := make([]entity.CategoryResponse, 0, len(list))
		for i := range list {
			responses = append(responses, entity.NewCategoryResponse(&list[i]))
		}
		return result.Success(paging.NewPaged(responses, total, q.Options))
	}
}
