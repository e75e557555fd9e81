package repository

import (
	"context"
	"fmt"

	"octobermarket/catalog-service/internal/app/catalog/entity"
	"octobermarket/pkg/paging"

	"gorm.io/gorm"
)

type categoryRepository struct {
	db *gorm.DB
}

// NewCategoryRepository создает gorm-репозиторий категорий
func NewCategoryRepository(db *gorm.DB) CategoryRepository {
	return &categoryRepository{db: db}
}

// Create вставляет категорию
func (r *categoryRepository) Create(ctx context.Context, category *entity.Category) error {
	if err := r.db.WithContext(ctx).Create(category).Error; err != nil {
		return fmt.Errorf("failed to create category: %w", translate(err))
	}
	return nil
}

// GetByID получает категорию по ID
func (r *categoryRepository) GetByID(ctx context.Context, id int) (*entity.Category, error) {
	var category entity.Category
	if err := r.db.WithContext(ctx).First(&category, "id = ?", id).Error; err != nil {
		return nil, translate(err)
	}
	return &category, nil
}

// GetByIDs получает категории по списку идентификаторов.
// Обработчики товаров сверяют длину результата со списком для поиска
// несуществующих ссылок
func (r *categoryRepository) GetByIDs(ctx context.Context, ids []int) ([]entity.Category, error) {
	var categories []entity.Category
	if err := r.db.WithContext(ctx).Where("id IN ?", ids).Find(&categories).Error; err != nil {
		return nil, fmt.Errorf("failed to get categories by ids: %w", err)
	}
	return categories, nil
}

// List возвращает страницу категорий и общее количество по фильтру
func (r *categoryRepository) List(ctx context.Context, filter CategoryFilter, opts paging.Options) ([]entity.Category, int64, error) {
	query := r.db.WithContext(ctx).Model(&entity.Category{})
	if filter.Name != "" {
		query = query.Where("name LIKE ?", "%"+filter.Name+"%")
	}

	var total int64
	if err := query.Count(&total).Error; err != nil {
		return nil, 0, fmt.Errorf("failed to count categories: %w", err)
	}

	var categories []entity.Category
	query = applySort(query, opts, map[string]string{"name": "name"})
	if err := query.Offset(opts.Offset()).Limit(opts.Limit()).Find(&categories).Error; err != nil {
		return nil, 0, fmt.Errorf("failed to list categories: %w", err)
	}

	return categories, total, nil
}

// ListAll возвращает все категории по возрастанию ID, используется для прогрева кеша
func (r *categoryRepository) ListAll(ctx context.Context) ([]entity.Category, error) {
	var categories []entity.Category
	if err := r.db.WithContext(ctx).Order("id ASC").Find(&categories).Error; err != nil {
		return nil, fmt.Errorf("failed to list all categories: %w", err)
	}
	return categories, nil
}

// ExistsByName проверяет занятость имени, исключая excludeID
func (r *categoryRepository) ExistsByName(ctx context.Context, name string, excludeID int) (bool, error) {
	var count int64
	err := r.db.WithContext(ctx).Model(&entity.Category{}).
		Where("name = ? AND id <> ?", name, excludeID).
		Count(&count).Error
	if err != nil {
		return false, fmt.Errorf("failed to check category name: %w", err)
	}
	return count > 0, nil
}

// Update сохраняет новое имя категории
func (r *categoryRepository) Update(ctx context.Context, category *entity.Category) error {
	res := r.db.WithContext(ctx).Model(category).Where("id = ?", category.ID).
		Update("name", category.Name)
	if res.Error != nil {
		return fmt.Errorf("failed to update category: %w", translate(res.Error))
	}
	if res.RowsAffected == 0 {
		return ErrNotFound
	}
	return nil
}

// Delete физически удаляет категорию
func (r *categoryRepository) Delete(ctx context.Context, id int) error {
	res := r.db.WithContext(ctx).Delete(&entity.Category{}, "id = ?", id)
	if res.Error != nil {
		return fmt.Errorf("failed to delete category: %w", translate(res.Error))
	}
	if res.RowsAffected == 0 {
		return ErrNotFound
	}
	return nil
}

// CountItems считает товары категории через связующую таблицу
func (r *categoryRepository) CountItems(ctx context.Context, categoryID int) (int64, error) {
	var count int64
	err := r.db.WithContext(ctx).Table("item_categories").
		Where("category_id = ?", categoryID).
		Count(&count).Error
	if err != nil {
		return 0, fmt.Errorf("failed to count category items: %w", err)
	}
	return count, nil
}
