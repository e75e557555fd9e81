package entity

import "time"

// HTTP запросы. Тэги binding дают раннюю проверку формы на уровне gin,
// доменные правила проверяет валидатор команды в pipeline.

type CreateBrandRequest struct {
	Name string `json:"name" binding:"required"`
}

type UpdateBrandRequest struct {
	Name string `json:"name" binding:"required"`
}

type CreateCategoryRequest struct {
	Name string `json:"name" binding:"required"`
}

type UpdateCategoryRequest struct {
	Name string `json:"name" binding:"required"`
}

type CreateItemRequest struct {
	Slug              string  `json:"slug" binding:"required,slug"`
	Name              string  `json:"name" binding:"required"`
	Description       string  `json:"description"`
	Price             float64 `json:"price" binding:"required"`
	PictureFileName   string  `json:"picture_file_name"`
	BrandID           int     `json:"brand_id" binding:"required"`
	AvailableStock    int     `json:"available_stock"`
	RestockThreshold  int     `json:"restock_threshold"`
	MaxStockThreshold int     `json:"max_stock_threshold"`
	OnReorder         bool    `json:"on_reorder"`
	CategoryIDs       []int   `json:"category_ids" binding:"required"`
}

// UpdateItemRequest заменяет весь набор редактируемых полей, частичного
// обновления нет
type UpdateItemRequest struct {
	Slug              string  `json:"slug" binding:"required,slug"`
	Name              string  `json:"name" binding:"required"`
	Description       string  `json:"description"`
	Price             float64 `json:"price" binding:"required"`
	PictureFileName   string  `json:"picture_file_name"`
	BrandID           int     `json:"brand_id" binding:"required"`
	AvailableStock    int     `json:"available_stock"`
	RestockThreshold  int     `json:"restock_threshold"`
	MaxStockThreshold int     `json:"max_stock_threshold"`
	OnReorder         bool    `json:"on_reorder"`
	CategoryIDs       []int   `json:"category_ids" binding:"required"`
}

type StockRequest struct {
	Quantity int `json:"quantity" binding:"required"`
}

// Ответы API

type BrandResponse struct {
	ID   int    `json:"id"`
	Name string `json:"name"`
}

type CategoryResponse struct {
	ID   int    `json:"id"`
	Name string `json:"name"`
}

type ItemResponse struct {
	ID                int     `json:"id"`
	Slug              string  `json:"slug"`
	Name              string  `json:"name"`
	Description       string  `json:"description,omitempty"`
	Price             float64 `json:"price"`
	PictureFileName   string  `json:"picture_file_name,omitempty"`
	BrandID           int     `json:"brand_id"`
	AvailableStock    int     `json:"available_stock"`
	RestockThreshold  int     `json:"restock_threshold"`
	MaxStockThreshold int     `json:"max_stock_threshold"`
	OnReorder         bool    `json:"on_reorder"`
	CategoryIDs       []int   `json:"category_ids"`
}

// NewBrandResponse проецирует бренд в ответ API
func NewBrandResponse(b *Brand) BrandResponse {
	return BrandResponse{ID: b.ID, Name: b.Name}
}

// NewCategoryResponse проецирует категорию в ответ API
func NewCategoryResponse(c *Category) CategoryResponse {
	return CategoryResponse{ID: c.ID, Name: c.Name}
}

// NewItemResponse проецирует товар в ответ API
func NewItemResponse(i *Item) ItemResponse {
	return ItemResponse{
		ID:                i.ID,
		Slug:              i.Slug,
		Name:              i.Name,
		Description:       i.Description,
		Price:             i.Price,
		PictureFileName:   i.PictureFileName,
		BrandID:           i.BrandID,
		AvailableStock:    i.AvailableStock,
		RestockThreshold:  i.RestockThreshold,
		MaxStockThreshold: i.MaxStockThreshold,
		OnReorder:         i.OnReorder,
		CategoryIDs:       i.CategoryIDs(),
	}
}

// События Kafka

const (
	EventItemPriceChanged = "ITEM_PRICE_CHANGED"
	EventRestockNeeded    = "RESTOCK_NEEDED"
)

// ItemEvent отправляется в Kafka при изменении цены товара
// и при падении остатка ниже порога дозаказа
type ItemEvent struct {
	EventType string    `json:"event_type"`
	ItemID    int       `json:"item_id"`
	Slug      string    `json:"slug"`
	OldPrice  float64   `json:"old_price,omitempty"`
	NewPrice  float64   `json:"new_price,omitempty"`
	Stock     int       `json:"stock,omitempty"`
	Timestamp time.Time `json:"timestamp"`
}
