package entity

import (
	"fmt"

	"octobermarket/pkg/result"
)

// Каталог доменных ошибок корзины

func BasketNotFound(buyerID string) *result.Error {
	return result.NotFound("Basket.NotFound",
		fmt.Sprintf("The basket for buyer = '%s' was not found", buyerID))
}

var BasketEmptyBuyerID = result.Validation("Basket.EmptyBuyerID",
	"Buyer id must not be empty")
