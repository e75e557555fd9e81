package command

import (
	"context"
	"errors"
	"time"

	"octobermarket/catalog-service/internal/app/catalog/entity"
	"octobermarket/catalog-service/internal/app/catalog/repository"
	"octobermarket/catalog-service/internal/app/catalog/util"
	"octobermarket/pkg/logger"
	"octobermarket/pkg/mediator"
	"octobermarket/pkg/result"
)

// UpdateItem команда полной замены полей товара
type UpdateItem struct {
	ID                int
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

func (c UpdateItem) Validate() []result.Error {
	errs := validateItemFields(c.Slug, c.Name, c.Price, c.BrandID, c.CategoryIDs,
		c.AvailableStock, c.RestockThreshold, c.MaxStockThreshold)
	if c.ID <= 0 {
		errs = append(errs, *result.Validation("CatalogItems.InvalidID", "Item id must be a positive integer"))
	}
	return errs
}

// NewUpdateItemHandler создает обработчик обновления товара.
// При изменении цены публикует событие ITEM_PRICE_CHANGED для корзин
func NewUpdateItemHandler(items repository.ItemRepository, brands repository.BrandRepository, categories repository.CategoryRepository, publisher util.EventPublisher) mediator.Handler[UpdateItem, entity.ItemResponse] {
	return func(ctx context.Context, cmd UpdateItem) result.Result[entity.ItemResponse] {
		item, err := items.GetByID(ctx, cmd.ID)
		if err != nil {
			if errors.Is(err, repository.ErrNotFound) {
				return result.Failure[entity.ItemResponse](entity.ItemNotFound(cmd.ID))
			}
			return result.Failure[entity.ItemResponse](result.Unexpected(err))
		}

		exists, err := items.ExistsBySlug(ctx, cmd.Slug, cmd.ID)
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

		oldPrice := item.Price

		item.Slug = cmd.Slug
		item.Name = cmd.Name
		item.Description = cmd.Description
		item.Price = cmd.Price
		item.PictureFileName = cmd.PictureFileName
		item.BrandID = cmd.BrandID
		item.AvailableStock = cmd.AvailableStock
		item.RestockThreshold = cmd.RestockThreshold
		item.MaxStockThreshold = cmd.MaxStockThreshold
		item.OnReorder = cmd.OnReorder
		item.Categories = cats

		if err := items.Update(ctx, item); err != nil {
			switch {
			case errors.Is(err, repository.ErrNotFound):
				return result.Failure[entity.ItemResponse](entity.ItemNotFound(cmd.ID))
			case errors.Is(err, repository.ErrDuplicate):
				return result.Failure[entity.ItemResponse](entity.ItemDuplicateSlug(cmd.Slug))
			case errors.Is(err, repository.ErrReferenced):
				return result.Failure[entity.ItemResponse](entity.ItemInvalidBrand(cmd.BrandID))
			default:
				return result.Failure[entity.ItemResponse](result.Unexpected(err))
			}
		}

		if oldPrice != item.Price {
			event := entity.ItemEvent{
				EventType: entity.EventItemPriceChanged,
				ItemID:    item.ID,
				Slug:      item.Slug,
				OldPrice:  oldPrice,
				NewPrice:  item.Price,
				Stock:     item.AvailableStock,
				Timestamp: time.Now().UTC(),
			}
			if err := publisher.PublishItemEvent(ctx, event); err != nil {
				logger.Error().Err(err).Int("item_id", item.ID).Msg("не удалось опубликовать событие изменения цены")
			}
		}

		item.Brand = brand
		return result.Success(entity.NewItemResponse(item))
	}
}
