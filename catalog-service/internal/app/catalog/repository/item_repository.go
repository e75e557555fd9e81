package repository

import (
	"context"
	"fmt"

	"octobermarket/catalog-service/internal/app/catalog/entity"
	"octobermarket/pkg/paging"

	"gorm.io/gorm"
)

type itemRepository struct {
	db *gorm.DB
}

// NewItemRepository создает gorm-репозиторий товаров
func NewItemRepository(db *gorm.DB) ItemRepository {
	return &itemRepository{db: db}
}

// Create вставляет товар вместе со связями на категории
func (r *itemRepository) Create(ctx context.Context, item *entity.Item) error {
	// Категории уже существуют, gorm должен только записать связи
	err := r.db.WithContext(ctx).Omit("Categories.*").Create(item).Error
	if err != nil {
		return fmt.Errorf("failed to create item: %w", translate(err))
	}
	return nil
}

// GetByID получает товар с категориями по ID
func (r *itemRepository) GetByID(ctx context.Context, id int) (*entity.Item, error) {
	var item entity.Item
	err := r.db.WithContext(ctx).Preload("Categories").First(&item, "id = ?", id).Error
	if err != nil {
		return nil, translate(err)
	}
	return &item, nil
}

// GetBySlug получает товар с категориями по слагу
func (r *itemRepository) GetBySlug(ctx context.Context, slug string) (*entity.Item, error) {
	var item entity.Item
	err := r.db.WithContext(ctx).Preload("Categories").First(&item, "slug = ?", slug).Error
	if err != nil {
		return nil, translate(err)
	}
	return &item, nil
}

// List возвращает страницу товаров и общее количество по фильтрам.
// Фильтр по категории идет через связующую таблицу item_categories
func (r *itemRepository) List(ctx context.Context, filter ItemFilter, opts paging.Options) ([]entity.Item, int64, error) {
	query := r.db.WithContext(ctx).Model(&entity.Item{})

	if filter.Name != "" {
		query = query.Where("name LIKE ?", "%"+filter.Name+"%")
	}
	if filter.BrandID > 0 {
		query = query.Where("brand_id = ?", filter.BrandID)
	}
	if filter.CategoryID > 0 {
		query = query.Where(
			"id IN (SELECT item_id FROM item_categories WHERE category_id = ?)",
			filter.CategoryID,
		)
	}

	var total int64
	if err := query.Count(&total).Error; err != nil {
		return nil, 0, fmt.Errorf("failed to count items: %w", err)
	}

	var items []entity.Item
	query = applySort(query, opts, map[string]string{"name": "name", "price": "price"})
	err := query.Preload("Categories").
		Offset(opts.Offset()).Limit(opts.Limit()).
		Find(&items).Error
	if err != nil {
		return nil, 0, fmt.Errorf("failed to list items: %w", err)
	}

	return items, total, nil
}

// ExistsBySlug проверяет занятость слага, исключая excludeID
func (r *itemRepository) ExistsBySlug(ctx context.Context, slug string, excludeID int) (bool, error) {
	var count int64
	err := r.db.WithContext(ctx).Model(&entity.Item{}).
		Where("slug = ? AND id <> ?", slug, excludeID).
		Count(&count).Error
	if err != nil {
		return false, fmt.Errorf("failed to check item slug: %w", err)
	}
	return count > 0, nil
}

// Update заменяет все редактируемые поля товара и набор категорий
func (r *itemRepository) Update(ctx context.Context, item *entity.Item) error {
	err := r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		res := tx.Model(&entity.Item{}).Where("id = ?", item.ID).
			Updates(map[string]interface{}{
				"slug":                item.Slug,
				"name":                item.Name,
				"description":         item.Description,
				"price":               item.Price,
				"picture_file_name":   item.PictureFileName,
				"brand_id":            item.BrandID,
				"available_stock":     item.AvailableStock,
				"restock_threshold":   item.RestockThreshold,
				"max_stock_threshold": item.MaxStockThreshold,
				"on_reorder":          item.OnReorder,
			})
		if res.Error != nil {
			return res.Error
		}
		if res.RowsAffected == 0 {
			return ErrNotFound
		}

		// Полная замена набора категорий
		return tx.Model(item).Association("Categories").Replace(item.Categories)
	})
	if err != nil {
		return translate(err)
	}
	return nil
}

// Delete физически удаляет товар со связями на категории
func (r *itemRepository) Delete(ctx context.Context, id int) error {
	err := r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.Exec("DELETE FROM item_categories WHERE item_id = ?", id).Error; err != nil {
			return err
		}

		res := tx.Delete(&entity.Item{}, "id = ?", id)
		if res.Error != nil {
			return res.Error
		}
		if res.RowsAffected == 0 {
			return ErrNotFound
		}
		return nil
	})
	if err != nil {
		return translate(err)
	}
	return nil
}

// ListBelowRestock возвращает товары, требующие дозаказа
func (r *itemRepository) ListBelowRestock(ctx context.Context) ([]entity.Item, error) {
	var items []entity.Item
	err := r.db.WithContext(ctx).
		Where("restock_threshold > 0 AND available_stock < restock_threshold AND on_reorder = ?", false).
		Order("id ASC").
		Find(&items).Error
	if err != nil {
		return nil, fmt.Errorf("failed to list items below restock threshold: %w", err)
	}
	return items, nil
}

// SetOnReorder помечает товар как находящийся в дозаказе
func (r *itemRepository) SetOnReorder(ctx context.Context, id int, onReorder bool) error {
	res := r.db.WithContext(ctx).Model(&entity.Item{}).Where("id = ?", id).
		Update("on_reorder", onReorder)
	if res.Error != nil {
		return fmt.Errorf("failed to set on_reorder: %w", res.Error)
	}
	if res.RowsAffected == 0 {
		return ErrNotFound
	}
	return nil
}
