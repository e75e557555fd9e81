package entity

// EventItemPriceChanged приходит из каталога при изменении цены товара
const EventItemPriceChanged = "ITEM_PRICE_CHANGED"

// ItemEvent - событие каталога. Корзине интересны только события
// изменения цены, остальные типы пропускаются
type ItemEvent struct {
	EventType string  `json:"event_type"`
	ItemID    int     `json:"item_id"`
	NewPrice  float64 `json:"new_price"`
}
