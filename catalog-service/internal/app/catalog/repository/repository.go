package repository

import (
	"context"
	"errors"

	"octobermarket/catalog-service/internal/app/catalog/entity"
	"octobermarket/pkg/paging"
)

var (
	// Стандартные ошибки репозитория для обработки в слое команд/запросов
	ErrNotFound = errors.New("not found")
	// ErrDuplicate возвращается при нарушении уникального индекса.
	// Предварительная проверка имени/слага неатомарна, финальный арбитр -
	// уникальный индекс в PostgreSQL
	ErrDuplicate = errors.New("duplicate key")
	// ErrReferenced возвращается при нарушении внешнего ключа (RESTRICT)
	ErrReferenced = errors.New("referenced by other rows")
)

// BrandFilter - фильтры постраничного запроса брендов
type BrandFilter struct {
	Name string // подстрока имени
}

// CategoryFilter - фильтры постраничного запроса категорий
type CategoryFilter struct {
	Name string
}

// ItemFilter - фильтры постраничного запроса товаров
type ItemFilter struct {
	Name       string
	BrandID    int
	CategoryID int
}

type BrandRepository interface {
	Create(ctx context.Context, brand *entity.Brand) error
	GetByID(ctx context.Context, id int) (*entity.Brand, error)
	List(ctx context.Context, filter BrandFilter, opts paging.Options) ([]entity.Brand, int64, error)
	ListAll(ctx context.Context) ([]entity.Brand, error)
	ExistsByName(ctx context.Context, name string, excludeID int) (bool, error)
	Update(ctx context.Context, brand *entity.Brand) error
	Delete(ctx context.Context, id int) error
	CountItems(ctx context.Context, brandID int) (int64, error)
}

type CategoryRepository interface {
	Create(ctx context.Context, category *entity.Category) error
	GetByID(ctx context.Context, id int) (*entity.Category, error)
	GetByIDs(ctx context.Context, ids []int) ([]entity.Category, error)
	List(ctx context.Context, filter CategoryFilter, opts paging.Options) ([]entity.Category, int64, error)
	ListAll(ctx context.Context) ([]entity.Category, error)
	ExistsByName(ctx context.Context, name string, excludeID int) (bool, error)
	Update(ctx context.Context, category *entity.Category) error
	Delete(ctx context.Context, id int) error
	CountItems(ctx context.Context, categoryID int) (int64, error)
}

type ItemRepository interface {
	Create(ctx context.Context, item *entity.Item) error
	GetByID(ctx context.Context, id int) (*entity.Item, error)
	GetBySlug(ctx context.Context, slug string) (*entity.Item, error)
	List(ctx context.Context, filter ItemFilter, opts paging.Options) ([]entity.Item, int64, error)
	ExistsBySlug(ctx context.Context, slug string, excludeID int) (bool, error)
	Update(ctx context.Context, item *entity.Item) error
	Delete(ctx context.Context, id int) error
	// ListBelowRestock возвращает товары с остатком ниже порога дозаказа,
	// еще не помеченные OnReorder. Используется монитором дозаказа
	ListBelowRestock(ctx context.Context) ([]entity.Item, error)
	SetOnReorder(ctx context.Context, id int, onReorder bool) error
}
