package service

import (
	"octobermarket/basket-service/internal/app/basket/command"
	"octobermarket/basket-service/internal/app/basket/entity"
	"octobermarket/basket-service/internal/app/basket/query"
	"octobermarket/basket-service/internal/app/basket/repository"
	"octobermarket/pkg/mediator"
	"octobermarket/pkg/result"
)

// BasketService собирает pipelines корзины
type BasketService struct {
	GetBasket    *mediator.Pipeline[query.GetBasket, entity.CustomerBasket]
	UpdateBasket *mediator.Pipeline[command.UpdateBasket, entity.CustomerBasket]
	DeleteBasket *mediator.Pipeline[command.DeleteBasket, result.Unit]
}

// NewBasketService связывает репозиторий с обработчиками
func NewBasketService(baskets repository.BasketRepository) *BasketService {
	return &BasketService{
		GetBasket:    mediator.New(query.NewGetBasketHandler(baskets)),
		UpdateBasket: mediator.New(command.NewUpdateBasketHandler(baskets)),
		DeleteBasket: mediator.New(command.NewDeleteBasketHandler(baskets)),
	}
}
