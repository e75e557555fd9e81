package repository

import (
	"context"
	"fmt"

	"octobermarket/catalog-service/internal/app/catalog/entity"
	"octobermarket/pkg/paging"

	"gorm.io/gorm"
)

type brandRepository struct {
	db *gorm.DB
}

// NewBrandRepository создает gorm-репозиторий брендов
func NewBrandRepository(db *gorm.DB) BrandRepository {
	return &brandRepository{db: db}
}

// Create вставляет бренд, идентификатор присваивает PostgreSQL
func (r *brandRepository) Create(ctx context.Context, brand *entity.Brand) error {
	if err := r.db.WithContext(ctx).Create(brand).Error; err != nil {
		return fmt.Errorf("failed to create brand: %w", translate(err))
	}
	return nil
}

// GetByID получает бренд по ID
func (r *brandRepository) GetByID(ctx context.Context, id int) (*entity.Brand, error) {
	var brand entity.Brand
	if err := r.db.WithContext(ctx).First(&brand, "id = ?", id).Error; err != nil {
		return nil, translate(err)
	}
	return &brand, nil
}

// List возвращает страницу брендов и общее количество по фильтру
func (r *brandRepository) List(ctx context.Context, filter BrandFilter, opts paging.Options) ([]entity.Brand, int64, error) {
	query := r.db.WithContext(ctx).Model(&entity.Brand{})
	if filter.Name != "" {
		query = query.Where("name LIKE ?", "%"+filter.Name+"%")
	}

	// Total считается до применения offset/limit
	var total int64
	if err := query.Count(&total).Error; err != nil {
		return nil, 0, fmt.Errorf("failed to count brands: %w", err)
	}

	var brands []entity.Brand
	query = applySort(query, opts, map[string]string{"name": "name"})
	if err := query.Offset(opts.Offset()).Limit(opts.Limit()).Find(&brands).Error; err != nil {
		return nil, 0, fmt.Errorf("failed to list brands: %w", err)
	}

	return brands, total, nil
}

// ListAll возвращает все бренды по возрастанию ID, используется для прогрева кеша
func (r *brandRepository) ListAll(ctx context.Context) ([]entity.Brand, error) {
	var brands []entity.Brand
	if err := r.db.WithContext(ctx).Order("id ASC").Find(&brands).Error; err != nil {
		return nil, fmt.Errorf("failed to list all brands: %w", err)
	}
	return brands, nil
}

// ExistsByName проверяет занятость имени, исключая excludeID (для update)
func (r *brandRepository) ExistsByName(ctx context.Context, name string, excludeID int) (bool, error) {
	var count int64
	err := r.db.WithContext(ctx).Model(&entity.Brand{}).
		Where("name = ? AND id <> ?", name, excludeID).
		Count(&count).Error
	if err != nil {
		return false, fmt.Errorf("failed to check brand name: %w", err)
	}
	return count > 0, nil
}

// Update сохраняет новое имя бренда
func (r *brandRepository) Update(ctx context.Context, brand *entity.Brand) error {
	res := r.db.WithContext(ctx).Model(brand).Where("id = ?", brand.ID).
		Update("name", brand.Name)
	if res.Error != nil {
		return fmt.Errorf("failed to update brand: %w", translate(res.Error))
	}
	if res.RowsAffected == 0 {
		return ErrNotFound
	}
	return nil
}

// Delete физически удаляет бренд.
// FK RESTRICT на items перехватывается как ErrReferenced
func (r *brandRepository) Delete(ctx context.Context, id int) error {
	res := r.db.WithContext(ctx).Delete(&entity.Brand{}, "id = ?", id)
	if res.Error != nil {
		return fmt.Errorf("failed to delete brand: %w", translate(res.Error))
	}
	if res.RowsAffected == 0 {
		return ErrNotFound
	}
	return nil
}

// CountItems считает товары бренда для проверки перед удалением
func (r *brandRepository) CountItems(ctx context.Context, brandID int) (int64, error) {
	var count int64
	err := r.db.WithContext(ctx).Model(&entity.Item{}).
		Where("brand_id = ?", brandID).
		Count(&count).Error
	if err != nil {
		return 0, fmt.Errorf("failed to count brand items: %w", err)
	}
	return count, nil
}
