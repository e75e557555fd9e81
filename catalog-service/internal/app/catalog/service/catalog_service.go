package service

import (
	"octobermarket/catalog-service/internal/app/catalog/command"
	"octobermarket/catalog-service/internal/app/catalog/entity"
	"octobermarket/catalog-service/internal/app/catalog/query"
	"octobermarket/catalog-service/internal/app/catalog/repository"
	"octobermarket/catalog-service/internal/app/catalog/util"
	"octobermarket/pkg/mediator"
	"octobermarket/pkg/paging"
	"octobermarket/pkg/result"
)

// CatalogService собирает все pipelines каталога.
// Каждая команда и запрос проходят через цепочку behaviors (валидация),
// обработчики получают зависимости через замыкания при старте сервиса
type CatalogService struct {
	CreateBrand *mediator.Pipeline[command.CreateBrand, entity.BrandResponse]
	UpdateBrand *mediator.Pipeline[command.UpdateBrand, entity.BrandResponse]
	DeleteBrand *mediator.Pipeline[command.DeleteBrand, result.Unit]

	CreateCategory *mediator.Pipeline[command.CreateCategory, entity.CategoryResponse]
	UpdateCategory *mediator.Pipeline[command.UpdateCategory, entity.CategoryResponse]
	DeleteCategory *mediator.Pipeline[command.DeleteCategory, result.Unit]

	CreateItem  *mediator.Pipeline[command.CreateItem, entity.ItemResponse]
	UpdateItem  *mediator.Pipeline[command.UpdateItem, entity.ItemResponse]
	DeleteItem  *mediator.Pipeline[command.DeleteItem, result.Unit]
	AddStock    *mediator.Pipeline[command.AddStock, entity.ItemResponse]
	RemoveStock *mediator.Pipeline[command.RemoveStock, entity.ItemResponse]

	GetBrands       *mediator.Pipeline[query.GetBrands, paging.Paged[entity.BrandResponse]]
	GetBrandByID    *mediator.Pipeline[query.GetBrandByID, entity.BrandResponse]
	GetCategories   *mediator.Pipeline[query.GetCategories, paging.Paged[entity.CategoryResponse]]
	GetCategoryByID *mediator.Pipeline[query.GetCategoryByID, entity.CategoryResponse]
	GetItems        *mediator.Pipeline[query.GetItems, paging.Paged[entity.ItemResponse]]
	GetItem         *mediator.Pipeline[query.GetItemByIDOrSlug, entity.ItemResponse]
}

// NewCatalogService связывает репозитории, кеш и издатель событий
// с обработчиками команд и запросов
func NewCatalogService(
	brands repository.BrandRepository,
	categories repository.CategoryRepository,
	items repository.ItemRepository,
	cache util.ListCache,
	publisher util.EventPublisher,
) *CatalogService {
	return &CatalogService{
		CreateBrand: mediator.New(command.NewCreateBrandHandler(brands, cache)),
		UpdateBrand: mediator.New(command.NewUpdateBrandHandler(brands, cache)),
		DeleteBrand: mediator.New(command.NewDeleteBrandHandler(brands, cache)),

		CreateCategory: mediator.New(command.NewCreateCategoryHandler(categories, cache)),
		UpdateCategory: mediator.New(command.NewUpdateCategoryHandler(categories, cache)),
		DeleteCategory: mediator.New(command.NewDeleteCategoryHandler(categories, cache)),

		CreateItem:  mediator.New(command.NewCreateItemHandler(items, brands, categories)),
		UpdateItem:  mediator.New(command.NewUpdateItemHandler(items, brands, categories, publisher)),
		DeleteItem:  mediator.New(command.NewDeleteItemHandler(items)),
		AddStock:    mediator.New(command.NewAddStockHandler(items)),
		RemoveStock: mediator.New(command.NewRemoveStockHandler(items)),

		GetBrands:       mediator.New(query.NewGetBrandsHandler(brands, cache)),
		GetBrandByID:    mediator.New(query.NewGetBrandByIDHandler(brands)),
		GetCategories:   mediator.New(query.NewGetCategoriesHandler(categories, cache)),
		GetCategoryByID: mediator.New(query.NewGetCategoryByIDHandler(categories)),
		GetItems:        mediator.New(query.NewGetItemsHandler(items)),
		GetItem:         mediator.New(query.NewGetItemByIDOrSlugHandler(items)),
	}
}
