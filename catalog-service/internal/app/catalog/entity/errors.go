package entity

import (
	"fmt"

	"octobermarket/pkg/result"
)

// Каталог доменных ошибок. Клиенты API ветвятся по коду ошибки,
// поэтому коды стабильны и не меняются вместе с текстом.

// --- Бренды ---

func BrandNotFound(id int) *result.Error {
	return result.NotFound("CatalogBrands.NotFound",
		fmt.Sprintf("The catalog brand with id = '%d' was not found", id))
}

var BrandNameAlreadyExists = result.Conflict("CatalogBrands.NameAlreadyExists",
	"Brand with the same name already exists")

func BrandCannotDeleteWithItems(id int) *result.Error {
	return result.Conflict("CatalogBrands.CannotDeleteWithItems",
		fmt.Sprintf("The catalog brand with id = '%d' cannot be deleted because it has associated catalog items", id))
}

// --- Категории ---

func CategoryNotFound(id int) *result.Error {
	return result.NotFound("CatalogCategories.NotFound",
		fmt.Sprintf("The catalog category with id = '%d' was not found", id))
}

var CategoryNameAlreadyExists = result.Conflict("CatalogCategories.NameAlreadyExists",
	"Category with the same name already exists")

func CategoryCannotDeleteWithItems(id int) *result.Error {
	return result.Conflict("CatalogCategories.CannotDeleteWithItems",
		fmt.Sprintf("The catalog category with id = '%d' cannot be deleted because it has associated catalog items", id))
}

// --- Товары ---

func ItemNotFound(id int) *result.Error {
	return result.NotFound("CatalogItems.NotFound",
		fmt.Sprintf("The catalog item with id = '%d' was not found", id))
}

func ItemNotFoundBySlug(slug string) *result.Error {
	return result.NotFound("CatalogItems.NotFoundBySlug",
		fmt.Sprintf("The catalog item with slug = '%s' was not found", slug))
}

func ItemDuplicateSlug(slug string) *result.Error {
	return result.Conflict("CatalogItems.DuplicateSlug",
		fmt.Sprintf("A catalog item with slug = '%s' already exists", slug))
}

func ItemInvalidBrand(brandID int) *result.Error {
	return result.Problem("CatalogItems.InvalidBrand",
		fmt.Sprintf("The specified brand (id = '%d') is invalid or unavailable for this operation", brandID))
}

func ItemInvalidCategory(categoryID int) *result.Error {
	return result.Problem("CatalogItems.InvalidCategory",
		fmt.Sprintf("The specified category (id = '%d') is invalid or unavailable for this operation", categoryID))
}

func ItemOutOfStock(id int) *result.Error {
	return result.Problem("CatalogItems.OutOfStock",
		fmt.Sprintf("The catalog item with id = '%d' is out of stock", id))
}

func ItemExceedsMaxStock(id, maxStock int) *result.Error {
	return result.Problem("CatalogItems.ExceedsMaxStock",
		fmt.Sprintf("Adding stock would exceed the maximum allowed (%d) for catalog item with id = '%d'", maxStock, id))
}
