package query

import (
	"context"
	"sort"
	"time"

	"octobermarket/catalog-service/internal/app/catalog/entity"
	"octobermarket/catalog-service/internal/app/catalog/repository"
	"octobermarket/catalog-service/internal/app/catalog/util"
	"octobermarket/pkg/logger"
	"octobermarket/pkg/mediator"
	"octobermarket/pkg/paging"
	"octobermarket/pkg/result"
)

// listCacheTTL ограничивает время жизни кешированных списков.
// Кеш также сбрасывается явно при любой мутации
const listCacheTTL = time.Hour

// GetBrands постраничный запрос брендов
type GetBrands struct {
	Name string
	paging.Options
}

func (q GetBrands) Validate() []result.Error {
	errs := q.Options.Validate("CatalogBrands", []string{"name"})
	if len(q.Name) > 100 {
		errs = append(errs, *result.Validation("CatalogBrands.NameFilterTooLong",
			"Name filter must not exceed 100 characters"))
	}
	return errs
}

// pageSlice вырезает запрошенную страницу из полного списка
func pageSlice[T any](items []T, opts paging.Options) []T {
	lo := opts.Offset()
	if lo >= len(items) {
		return []T{}
	}
	hi := lo + opts.Limit()
	if hi > len(items) {
		hi = len(items)
	}
	return items[lo:hi]
}

// NewGetBrandsHandler создает обработчик списка брендов.
// Запросы без фильтра обслуживаются из Redis-кеша полного списка,
// запросы с фильтром по имени идут напрямую в PostgreSQL
func NewGetBrandsHandler(brands repository.BrandRepository, cache util.ListCache) mediator.Handler[GetBrands, paging.Paged[entity.BrandResponse]] {
	return func(ctx context.Context, q GetBrands) result.Result[paging.Paged[entity.BrandResponse]] {
		var (
			list  []entity.Brand
			total int64
		)

		if q.Name == "" {
			all, err := cache.GetBrands(ctx)
			if err != nil {
				logger.Warn().Err(err).Msg("кеш брендов недоступен, читаем из базы")
			}
			if all == nil {
				all, err = brands.ListAll(ctx)
				if err != nil {
					return result.Failure[paging.Paged[entity.BrandResponse]](result.Unexpected(err))
				}
				if all == nil {
					// Пустой каталог кешируется как [], nil означает промах
					all = []entity.Brand{}
				}
				if cerr := cache.SetBrands(ctx, all, listCacheTTL); cerr != nil {
					logger.Warn().Err(cerr).Msg("не удалось записать кеш брендов")
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
			list, total, err = brands.List(ctx, repository.BrandFilter{Name: q.Name}, q.Options)
			if err != nil {
				return result.Failure[paging.Paged[entity.BrandResponse]](result.Unexpected(err))
			}
		}

		responses := make([]entity.BrandResponse, 0, len(list))
		for i := range list {
			responses = append(responses, entity.NewBrandResponse(&list[i]))
		}
		return result.Success(paging.NewPaged(responses, total, q.Options))
	}
}
