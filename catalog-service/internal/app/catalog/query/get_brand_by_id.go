package query

import (
	"context"
	"errors"

	"octobermarket/catalog-service/internal/app/catalog/entity"
	"octobermarket/catalog-service/internal/app/catalog/repository"
	"octobermarket/pkg/mediator"
	"octobermarket/pkg/result"
)

// GetBrandByID запрос одного бренда
type GetBrandByID struct {
	ID int
}

func (q GetBrandByID) Validate() []result.Error {
	if q.ID <= 0 {
		return []result.Error{*result.Validation("CatalogBrands.InvalidID", "Brand id must be a positive integer")}
	}
	return nil
}

// NewGetBrandByIDHandler создает обработчик чтения бренда по идентификатору
func NewGetBrandByIDHandler(brands repository.BrandRepository) mediator.Handler[GetBrandByID, entity.BrandResponse] {
	return func(ctx context.Context, q GetBrandByID) result.Result[entity.BrandResponse] {
		brand, err := brands.GetByID(ctx, q.ID)
		if err != nil {
			if errors.Is(err, repository.ErrNotFound) {
				return result.Failure[entity.BrandResponse](entity.BrandNotFound(q.ID))
			}
			return result.Failure[entity.BrandResponse](result.Unexpected(err))
		}
		return result.Success(entity.NewBrandResponse(brand))
	}
}
