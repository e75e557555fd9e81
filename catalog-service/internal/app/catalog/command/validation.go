package command

import (
	"regexp"

	"octobermarket/pkg/result"
)

// slugPattern: только строчные латинские буквы и цифры, разделенные дефисами
var slugPattern = regexp.MustCompile(`^[a-z0-9]+(?:-[a-z0-9]+)*$`)

// validateItemFields проверяет общие поля команд создания и обновления товара
func validateItemFields(slug, name string, price float64, brandID int, categoryIDs []int,
	availableStock, restockThreshold, maxStockThreshold int) []result.Error {

	var errs []result.Error
	switch {
	case slug == "":
		errs = append(errs, *result.Validation("CatalogItems.SlugRequired", "Item slug is required"))
	case len(slug) > 50:
		errs = append(errs, *result.Validation("CatalogItems.SlugTooLong", "Item slug must not exceed 50 characters"))
	case !slugPattern.MatchString(slug):
		errs = append(errs, *result.Validation("CatalogItems.InvalidSlug",
			"Item slug must contain only lowercase letters, digits and hyphens"))
	}

	if name == "" {
		errs = append(errs, *result.Validation("CatalogItems.NameRequired", "Item name is required"))
	}
	if len(name) > 100 {
		errs = append(errs, *result.Validation("CatalogItems.NameTooLong", "Item name must not exceed 100 characters"))
	}
	if price <= 0 {
		errs = append(errs, *result.Validation("CatalogItems.InvalidPrice", "Item price must be greater than zero"))
	}
	if brandID <= 0 {
		errs = append(errs, *result.Validation("CatalogItems.BrandRequired", "Item brand id must be a positive integer"))
	}
	if len(categoryIDs) == 0 {
		errs = append(errs, *result.Validation("CatalogItems.CategoriesRequired", "Item must belong to at least one category"))
	}
	for _, id := range categoryIDs {
		if id <= 0 {
			errs = append(errs, *result.Validation("CatalogItems.InvalidCategoryID", "Category ids must be positive integers"))
			break
		}
	}
	if availableStock < 0 {
		errs = append(errs, *result.Validation("CatalogItems.InvalidStock", "Available stock must not be negative"))
	}
	if restockThreshold < 0 || maxStockThreshold < 0 {
		errs = append(errs, *result.Validation("CatalogItems.InvalidThreshold", "Stock thresholds must not be negative"))
	} else if restockThreshold > 0 && maxStockThreshold > 0 && maxStockThreshold < restockThreshold {
		errs = append(errs, *result.Validation("CatalogItems.InvalidThreshold",
			"Max stock threshold must not be below restock threshold"))
	}
	return errs
}
