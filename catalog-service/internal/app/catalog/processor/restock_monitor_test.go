package processor

import (
	"context"
	"errors"
	"testing"

	"octobermarket/catalog-service/internal/app/catalog/entity"
	"octobermarket/catalog-service/internal/app/catalog/repository/mocks"
	"octobermarket/pkg/logger"

	"github.com/stretchr/testify/mock"
)

func init() {
	logger.Init("catalog-test", "error")
}

func TestRestockMonitor_Run_PublishesAndFlagsItems(t *testing.T) {
	// Arrange
	ctx := context.Background()
	itemRepo := new(mocks.MockItemRepository)
	publisher := new(mocks.MockEventPublisher)

	low := []entity.Item{
		{ID: 5, Slug: "gaming-laptop", AvailableStock: 1, RestockThreshold: 3},
		{ID: 8, Slug: "office-mouse", AvailableStock: 0, RestockThreshold: 10},
	}
	itemRepo.On("ListBelowRestock", ctx).Return(low, nil)
	publisher.On("PublishItemEvent", ctx, mock.MatchedBy(func(e entity.ItemEvent) bool {
		return e.EventType == entity.EventRestockNeeded
	})).Return(nil).Twice()
	itemRepo.On("SetOnReorder", ctx, 5, true).Return(nil)
	itemRepo.On("SetOnReorder", ctx, 8, true).Return(nil)

	m := NewRestockMonitor(itemRepo, publisher)

	// Act
	m.Run(ctx)

	// Assert
	itemRepo.AssertExpectations(t)
	publisher.AssertExpectations(t)
}

func TestRestockMonitor_Run_PublishFails_FlagNotSet(t *testing.T) {
	// Флаг ставится только после успешной публикации, иначе товар
	// попадет в следующий проход
	ctx := context.Background()
	itemRepo := new(mocks.MockItemRepository)
	publisher := new(mocks.MockEventPublisher)

	low := []entity.Item{{ID: 5, Slug: "gaming-laptop", AvailableStock: 1, RestockThreshold: 3}}
	itemRepo.On("ListBelowRestock", ctx).Return(low, nil)
	publisher.On("PublishItemEvent", ctx, mock.Anything).Return(errors.New("broker unavailable"))

	m := NewRestockMonitor(itemRepo, publisher)

	m.Run(ctx)

	itemRepo.AssertNotCalled(t, "SetOnReorder", mock.Anything, mock.Anything, mock.Anything)
}

func TestRestockMonitor_Run_NothingBelowThreshold(t *testing.T) {
	ctx := context.Background()
	itemRepo := new(mocks.MockItemRepository)
	publisher := new(mocks.MockEventPublisher)

	itemRepo.On("ListBelowRestock", ctx).Return([]entity.Item{}, nil)

	m := NewRestockMonitor(itemRepo, publisher)

	m.Run(ctx)

	publisher.AssertNotCalled(t, "PublishItemEvent", mock.Anything, mock.Anything)
}
