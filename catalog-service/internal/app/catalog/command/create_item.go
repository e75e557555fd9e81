package command

import (
	"context"
	"errors"

	"octobermarket/catalog-service/internal/app/catalog/entity"
	"octobermarket/catalog-service/internal/app/catalog/repository"
	"octobermarket/pkg/mediator"
	"octobermarket/pkg/result"
)

// CreateItem команда создания товара
type CreateItem struct {
	Slug              string
	Name              string
	Description       string
	Price             float64
	PictureFileName   string
	BrandID           int
	CategoryIDs       []int
	AvailableStock    int
	RestockThreshold  int
	MaxStockThreshold int
	OnReorder         bool
}

func (c CreateItem) Validate() []result.Error {
	return validateItemFields(c.Slug, c.Name, c.Price, c.BrandID, c.CategoryIDs,
		c.AvailableStock, c.RestockThreshold, c.MaxStockThreshold)
}

// resolveCategories загружает категории по списку идентификаторов.
// Возвращает ошибку с первым отсутствующим идентификатором
func resolveCategories(ctx context.Context, categories repository.CategoryRepository, ids []int) ([]entity.Category, *result.Error) {
	found, err := categories.GetByIDs(ctx, ids)
	if err != nil {
		return nil, result.Unexpected(err)
	}
	if len(found) != len(ids) {
		existing := make(map[int]struct{}, len(found))
		for _, c := range found {
			existing[c.ID] = struct{}{}
		}
		for _, id := range ids {
			if _, ok := existing[id]; !ok {
				return nil, entity.ItemInvalidCategory(id)
			}
		}
	}
	return found, nil
}

// NewCreateItemHandler создает обработчик: slug уникален, бренд и все
// категории должны существовать
func NewCreateItemHandler(items repository.ItemRepository, brands repository.BrandRepository, categories repository.CategoryRepository) mediator.Handler[CreateItem, entity.ItemResponse] {
	return func(ctx context.Context, cmd CreateItem) result.Result[entity.ItemResponse] {
		exists, err := items.ExistsBySlug(ctx, cmd.Slug, 0)
		if err != nil {
			return result.Failure[entity.ItemResponse](result.Unexpected(err))
		}
		if exists {
			return result.Failure[entity.ItemResponse](entity.ItemDuplicateSlug(cmd.Slug))
		}

		brand, err := brands.GetByID(ctx, cmd.BrandID)
		if err != nil {
			if errors.Is(err, repository.ErrNotFound) {
				return result.Failure[entity.ItemResponse](entity.ItemInvalidBrand(cmd.BrandID))
			}
			return result.Failure[entity.ItemResponse](result.Unexpected(err))
		}

		cats, rerr := resolveCategories(ctx, categories, cmd.CategoryIDs)
		if rerr != nil {
			return result.Failure[entity.ItemResponse](rerr)
		}

		item := &entity.Item{
			Slug:              cmd.Slug,
			Name:              cmd.Name,
			Description:       cmd.Description,
			Price:             cmd.Price,
			PictureFileName:   cmd.PictureFileName,
			BrandID:           cmd.BrandID,
			AvailableStock:    cmd.AvailableStock,
			RestockThreshold:  cmd.RestockThreshold,
			MaxStockThreshold: cmd.MaxStockThreshold,
			OnReorder:         cmd.OnReorder,
			Categories:        cats,
		}
		if err := items.Create(ctx, item); err != nil {
			switch {
			case errors.Is(err, repository.ErrDuplicate):
				return result.Failure[entity.ItemResponse](entity.ItemDuplicateSlug(cmd.Slug))
			case errors.Is(err, repository.ErrReferenced):
				return result.Failure[entity.ItemResponse](entity.ItemInvalidBrand(cmd.BrandID))
			default:
				return result.Failure[entity.ItemResponse](result.Unexpected(err))
			}
		}

		item.Brand = brand
		return result.Success(entity.NewItemResponse(item))
	}
}
