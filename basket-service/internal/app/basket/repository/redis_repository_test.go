package repository

import (
	"context"
	"testing"

	"octobermarket/basket-service/internal/app/basket/entity"

	"github.com/alicebob/miniredis/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestRepo(t *testing.T) BasketRepository {
	t.Helper()
	mr := miniredis.RunT(t)

	repo, err := NewRedisBasketRepository(mr.Addr(), "", 0)
	require.NoError(t, err)
	return repo
}

func testBasket(buyerID string) *entity.CustomerBasket {
	return &entity.CustomerBasket{
		BuyerID: buyerID,
		Items: []entity.BasketItem{
			{ID: "li-1", ProductID: 5, ProductName: "Gaming Laptop", UnitPrice: 1499.99, Quantity: 1},
		},
	}
}

func TestRedisBasketRepository_SaveAndGet(t *testing.T) {
	ctx := context.Background()
	repo := newTestRepo(t)

	require.NoError(t, repo.Save(ctx, testBasket("buyer-1")))

	got, err := repo.Get(ctx, "buyer-1")
	require.NoError(t, err)
	assert.Equal(t, "buyer-1", got.BuyerID)
	require.Len(t, got.Items, 1)
	assert.Equal(t, 5, got.Items[0].ProductID)
}

func TestRedisBasketRepository_Get_Missing_ReturnsErrNotFound(t *testing.T) {
	ctx := context.Background()
	repo := newTestRepo(t)

	got, err := repo.Get(ctx, "nobody")

	assert.ErrorIs(t, err, ErrNotFound)
	assert.Nil(t, got)
}

func TestRedisBasketRepository_Delete(t *testing.T) {
	ctx := context.Background()
	repo := newTestRepo(t)

	require.NoError(t, repo.Save(ctx, testBasket("buyer-1")))
	require.NoError(t, repo.Delete(ctx, "buyer-1"))

	_, err := repo.Get(ctx, "buyer-1")
	assert.ErrorIs(t, err, ErrNotFound)

	// Повторное удаление не ошибка
	assert.NoError(t, repo.Delete(ctx, "buyer-1"))
}

func TestRedisBasketRepository_BuyerIDs(t *testing.T) {
	ctx := context.Background()
	repo := newTestRepo(t)

	require.NoError(t, repo.Save(ctx, testBasket("buyer-1")))
	require.NoError(t, repo.Save(ctx, testBasket("buyer-2")))

	ids, err := repo.BuyerIDs(ctx)
	require.NoError(t, err)
	assert.ElementsMatch(t, []string{"buyer-1", "buyer-2"}, ids)
}
