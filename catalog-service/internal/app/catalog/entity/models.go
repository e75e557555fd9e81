package entity

// Brand представляет бренд каталога
// Имя уникально, идентификатор выдает PostgreSQL
type Brand struct {
	ID   int    `json:"id" gorm:"primaryKey"`
	Name string `json:"name" gorm:"size:255;uniqueIndex;not null"`
}

// Category представляет категорию каталога
// Связана с товарами many-to-many через item_categories
type Category struct {
	ID   int    `json:"id" gorm:"primaryKey"`
	Name string `json:"name" gorm:"size:255;uniqueIndex;not null"`
}

// Item представляет товар каталога
type Item struct {
	ID              int     `json:"id" gorm:"primaryKey"`
	Slug            string  `json:"slug" gorm:"size:50;uniqueIndex;not null"`
	Name            string  `json:"name" gorm:"size:100;not null"`
	Description     string  `json:"description"`
	Price           float64 `json:"price" gorm:"not null"`
	PictureFileName string  `json:"picture_file_name"`
	// Удаление бренда с товарами запрещено на уровне БД (RESTRICT)
	BrandID int    `json:"brand_id" gorm:"not null"`
	Brand   *Brand `json:"-" gorm:"constraint:OnDelete:RESTRICT"`

	// Складские поля
	AvailableStock    int  `json:"available_stock"`     // Текущий остаток
	RestockThreshold  int  `json:"restock_threshold"`   // Остаток, при котором нужен дозаказ
	MaxStockThreshold int  `json:"max_stock_threshold"` // Максимум единиц на складе
	OnReorder         bool `json:"on_reorder"`          // Товар в дозаказе

	Categories []Category `json:"categories" gorm:"many2many:item_categories;constraint:OnDelete:RESTRICT"`
}

// CategoryIDs возвращает идентификаторы категорий товара
func (i *Item) CategoryIDs() []int {
	ids := make([]int, 0, len(i.Categories))
	for _, c := range i.Categories {
		ids = append(ids, c.ID)
	}
	return ids
}
