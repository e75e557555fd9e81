package query

import (
	"context"
	"errors"
	"testing"

	"octobermarket/basket-service/internal/app/basket/entity"
	"octobermarket/basket-service/internal/app/basket/repository"
	"octobermarket/basket-service/internal/app/basket/repository/mocks"
	"octobermarket/pkg/result"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestGetBasket_Existing(t *testing.T) {
	ctx := context.Background()
	baskets := new(mocks.MockBasketRepository)

	stored := &entity.CustomerBasket{
		BuyerID: "buyer-1",
		Items:   []entity.BasketItem{{ID: "li-1", ProductID: 5, ProductName: "Laptop", UnitPrice: 1499.99, Quantity: 1}},
	}
	baskets.On("Get", ctx, "buyer-1").Return(stored, nil)

	h := NewGetBasketHandler(baskets)

	res := h(ctx, GetBasket{BuyerID: "buyer-1"})

	require.True(t, res.IsSuccess())
	assert.Len(t, res.Value().Items, 1)
}

func TestGetBasket_Missing_ReturnsEmptyBasket(t *testing.T) {
	// Отсутствие корзины не ошибка: новый покупатель получает пустую
	ctx := context.Background()
	baskets := new(mocks.MockBasketRepository)

	baskets.On("Get", ctx, "new-buyer").Return(nil, repository.ErrNotFound)

	h := NewGetBasketHandler(baskets)

	res := h(ctx, GetBasket{BuyerID: "new-buyer"})

	require.True(t, res.IsSuccess())
	assert.Equal(t, "new-buyer", res.Value().BuyerID)
	assert.Empty(t, res.Value().Items)
}

func TestGetBasket_EmptyBuyer_ReturnsNullValue(t *testing.T) {
	ctx := context.Background()
	baskets := new(mocks.MockBasketRepository)

	h := NewGetBasketHandler(baskets)

	res := h(ctx, GetBasket{})

	require.True(t, res.IsFailure())
	assert.Equal(t, result.TypeNullValue, res.Error().Type)
}

func TestGetBasket_StorageError_ReturnsUnexpected(t *testing.T) {
	ctx := context.Background()
	baskets := new(mocks.MockBasketRepository)

	baskets.On("Get", ctx, "buyer-1").Return(nil, errors.New("redis down"))

	h := NewGetBasketHandler(baskets)

	res := h(ctx, GetBasket{BuyerID: "buyer-1"})

	require.True(t, res.IsFailure())
	assert.Equal(t, "General.Unexpected", res.Error().Code)
}
