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

// UpdateBrand команда переименования бренда
type UpdateBrand struct {
	ID   int
	Name string
}

func (c UpdateBrand) Validate() []result.Error {
	var errs []result.Error
	if c.ID <= 0 {
		errs = append(errs, *result.Validation("CatalogBrands.InvalidID", "Brand id must be a positive integer"))
	}
	if c.Name == "" {
		errs = append(errs, *result.Validation("CatalogBrands.NameRequired", "Brand name is required"))
	}
	if len(c.Name) > 255 {
		errs = append(errs, *result.Validation("CatalogBrands.NameTooLong", "Brand name must not exceed 255 characters"))
	}
	return errs
}

// NewUpdateBrandHandler создает обработчик: бренд должен существовать,
// новое имя должно быть уникальным среди остальных брендов
func NewUpdateBrandHandler(brands repository.BrandRepository, cache util.ListCache) mediator.Handler[UpdateBrand, entity.BrandResponse] {
	return func(ctx context.Context, cmd UpdateBrand) result.Result[entity.BrandResponse] {
		brand, err := brands.GetByID(ctx, cmd.ID)
		if err != nil {
			if errors.Is(err, repository.ErrNotFound) {
				return result.Failure[entity.BrandResponse](entity.BrandNotFound(cmd.ID))
			}
			return result.Failure[entity.BrandResponse](result.Unexpected(err))
		}

		exists, err := brands.ExistsByName(ctx, cmd.Name, cmd.ID)
		if err != nil {
			return result.Failure[entity.BrandResponse](result.Unexpected(err))
		}
		if exists {
			return result.Failure[entity.BrandResponse](entity.BrandNameAlreadyExists)
		}

		brand.Name = cmd.Name
		if err := brands.Update(ctx, brand); err != nil {
			switch {
			case errors.Is(err, repository.ErrNotFound):
				return result.Failure[entity.BrandResponse](entity.BrandNotFound(cmd.ID))
			case errors.Is(err, repository.ErrDuplicate):
				return result.Failure[entity.BrandResponse](entity.BrandNameAlreadyExists)
			default:
				return result.Failure[entity.BrandResponse](result.Unexpected(err))
			}
		}

		if err := cache.DeleteBrands(ctx); err != nil {
			logger.Warn().Err(err).Msg("не удалось сбросить кеш брендов")
		}

		return result.Success(entity.NewBrandResponse(brand))
	}
}
