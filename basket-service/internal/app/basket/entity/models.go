package entity

// CustomerBasket - корзина покупателя, хранится в Redis целиком.
// BuyerID берется из JWT, клиент не может читать чужие корзины
type CustomerBasket struct {
	BuyerID string       `json:"buyer_id"`
	Items   []BasketItem `json:"items"`
}

// BasketItem - позиция корзины. OldUnitPrice заполняется консьюмером
// событий каталога, чтобы клиент увидел изменение цены
type BasketItem struct {
	ID           string  `json:"id"`
	ProductID    int     `json:"product_id"`
	ProductName  string  `json:"product_name"`
	UnitPrice    float64 `json:"unit_price"`
	OldUnitPrice float64 `json:"old_unit_price,omitempty"`
	Quantity     int     `json:"quantity"`
	PictureURL   string  `json:"picture_url,omitempty"`
}

// NewCustomerBasket создает пустую корзину покупателя
func NewCustomerBasket(buyerID string) *CustomerBasket {
	return &CustomerBasket{
		BuyerID: buyerID,
		Items:   []BasketItem{},
	}
}

// UpdateItemPrice обновляет цену всех позиций с данным товаром.
// Возвращает true если хотя бы одна позиция изменилась
func (b *CustomerBasket) UpdateItemPrice(productID int, newPrice float64) bool {
	updated := false
	for i := range b.Items {
		if b.Items[i].ProductID == productID && b.Items[i].UnitPrice != newPrice {
			b.Items[i].OldUnitPrice = b.Items[i].UnitPrice
			b.Items[i].UnitPrice = newPrice
			updated = true
		}
	}
	return updated
}

// UpdateBasketRequest - полная замена содержимого корзины
type UpdateBasketRequest struct {
	Items []BasketItemRequest `json:"items" binding:"required"`
}

// BasketItemRequest - позиция в запросе обновления корзины
type BasketItemRequest struct {
	ProductID   int     `json:"product_id" binding:"required"`
	ProductName string  `json:"product_name" binding:"required"`
	UnitPrice   float64 `json:"unit_price" binding:"required"`
	Quantity    int     `json:"quantity" binding:"required"`
	PictureURL  string  `json:"picture_url"`
}
