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

// DeleteBrand команда удаления бренда
type DeleteBrand struct {
	ID int
}

func (c DeleteBrand) Validate() []result.Error {
	if c.ID <= 0 {
		return []result.Error{*result.Validation("CatalogBrands.InvalidID", "Brand id must be a positive integer")}
	}
	return nil
}

// NewDeleteBrandHandler создает обработчик: бренд с привязанными товарами
// удалить нельзя, сначала нужно перенести или удалить товары
func NewDeleteBrandHandler(brands repository.BrandRepository, cache util.ListCache) mediator.Handler[DeleteBrand, result.Unit] {
	return func(ctx context.Context, cmd DeleteBrand) result.Result[result.Unit] {
		if _, err := brands.GetByID(ctx, cmd.ID); err != nil {
			if errors.Is(err, repository.ErrNotFound) {
				return result.Failure[result.Unit](entity.BrandNotFound(cmd.ID))
			}
			return result.Failure[result.Unit](result.Unexpected(err))
		}

		count, err := brands.CountItems(ctx, cmd.ID)
		if err != nil {
			return result.Failure[result.Unit](result.Unexpected(err))
		}
		if count > 0 {
			return result.Failure[result.Unit](entity.BrandCannotDeleteWithItems(cmd.ID))
		}

		if err := brands.Delete(ctx, cmd.ID); err != nil {
			switch {
			case errors.Is(err, repository.ErrNotFound):
				return result.Failure[result.Unit](entity.BrandNotFound(cmd.ID))
			case errors.Is(err, repository.ErrReferenced):
				return result.Failure[result.Unit](entity.BrandCannotDeleteWithItems(cmd.ID))
			default:
				return result.Failure[result.Unit](result.Unexpected(err))
			}
		}

		if err := cache.DeleteBrands(ctx); err != nil {
			logger.Warn().Err(err).Msg("не удалось сбросить кеш брендов")
		}

		return result.Ok()
	}
}
