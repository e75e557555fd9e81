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

// CreateBrand команда создания бренда
type CreateBrand struct {
	Name string
}

func (c CreateBrand) Validate() []result.Error {
	var errs []result.Error
	if c.Name == "" {
		errs = append(errs, *result.Validation("CatalogBrands.NameRequired", "Brand name is required"))
	}
	if len(c.Name) > 255 {
		errs = append(errs, *result.Validation("CatalogBrands.NameTooLong", "Brand name must not exceed 255 characters"))
	}
	return errs
}

// NewCreateBrandHandler создает обработчик: проверяет уникальность имени,
// сохраняет бренд и сбрасывает кеш списка брендов
func NewCreateBrandHandler(brands repository.BrandRepository, cache util.ListCache) mediator.Handler[CreateBrand, entity.BrandResponse] {
	return func(ctx context.Context, cmd CreateBrand) result.Result[entity.BrandResponse] {
		exists, err := brands.ExistsByName(ctx, cmd.Name, 0)
		if err != nil {
			return result.Failure[entity.BrandResponse](result.Unexpected(err))
		}
		if exists {
			return result.Failure[entity.BrandResponse](entity.BrandNameAlreadyExists)
		}

		brand := &entity.Brand{Name: cmd.Name}
		if err := brands.Create(ctx, brand); err != nil {
			if errors.Is(err, repository.ErrDuplicate) {
				return result.Failure[entity.BrandResponse](entity.BrandNameAlreadyExists)
			}
			return result.Failure[entity.BrandResponse](result.Unexpected(err))
		}

		if err := cache.DeleteBrands(ctx); err != nil {
			logger.Warn().Err(err).Msg("не удалось сбросить кеш брендов")
		}

		return result.Success(entity.NewBrandResponse(brand))
	}
}
