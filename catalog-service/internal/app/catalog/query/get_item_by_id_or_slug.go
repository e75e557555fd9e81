package query

import (
	"context"
	"errors"
	"strconv"

	"octobermarket/catalog-service/internal/app/catalog/entity"
	"octobermarket/catalog-service/internal/app/catalog/repository"
	"octobermarket/pkg/mediator"
	"octobermarket/pkg/result"
)

// GetItemByIDOrSlug запрос товара по идентификатору или slug.
// Чисто числовое значение трактуется только как ID: slug по формату
// не может состоять из одних цифр без букв и дефисов
type GetItemByIDOrSlug struct {
	IDOrSlug string
}

func (q GetItemByIDOrSlug) Validate() []result.Error { return nil }

// NewGetItemByIDOrSlugHandler создает обработчик чтения товара
func NewGetItemByIDOrSlugHandler(items repository.ItemRepository) mediator.Handler[GetItemByIDOrSlug, entity.ItemResponse] {
	return func(ctx context.Context, q GetItemByIDOrSlug) result.Result[entity.ItemResponse] {
		if q.IDOrSlug == "" {
			return result.Failure[entity.ItemResponse](result.ErrNullValue)
		}

		var (
			item *entity.Item
			err  error
		)
		if id, convErr := strconv.Atoi(q.IDOrSlug); convErr == nil {
			item, err = items.GetByID(ctx, id)
			if err != nil {
				if errors.Is(err, repository.ErrNotFound) {
					return result.Failure[entity.ItemResponse](entity.ItemNotFound(id))
				}
				return result.Failure[entity.ItemResponse](result.Unexpected(err))
			}
		} else {
			item, err = items.GetBySlug(ctx, q.IDOrSlug)
			if err != nil {
				if errors.Is(err, repository.ErrNotFound) {
					return result.Failure[entity.ItemResponse](entity.ItemNotFoundBySlug(q.IDOrSlug))
				}
				return result.Failure[entity.ItemResponse](result.Unexpected(err))
			}
		}

		return result.Success(entity.NewItemResponse(item))
	}
}
