package mocks

import (
	"context"

	"octobermarket/basket-service/internal/app/basket/entity"

	"github.com/stretchr/testify/mock"
)

// MockBasketRepository мок для BasketRepository
type MockBasketRepository struct {
	mock.Mock
}

func (m *MockBasketRepository) Get(ctx context.Context, buyerID string) (*entity.CustomerBasket, error) {
	args := m.Called(ctx, buyerID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*entity.CustomerBasket), args.Error(1)
}

func (m *MockBasketRepository) Save(ctx context.Context, basket *entity.CustomerBasket) error {
	args := m.Called(ctx, basket)
	return args.Error(0)
}

func (m *MockBasketRepository) Delete(ctx context.Context, buyerID string) error {
	args := m.Called(ctx, buyerID)
	return args.Error(0)
}

func (m *MockBasketRepository) BuyerIDs(ctx context.Context) ([]string, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]string), args.Error(1)
}
