package handler

import (
	"net/http"

	"octobermarket/basket-service/internal/app/basket/command"
	"octobermarket/basket-service/internal/app/basket/entity"
	"octobermarket/basket-service/internal/app/basket/query"
	"octobermarket/basket-service/internal/app/basket/service"
	"octobermarket/pkg/logger"
	"octobermarket/pkg/result"

	"github.com/gin-gonic/gin"
)

// BasketHandler обрабатывает HTTP запросы корзины
type BasketHandler struct {
	svc *service.BasketService
}

// NewBasketHandler создает новый обработчик корзины
func NewBasketHandler(svc *service.BasketService) *BasketHandler {
	return &BasketHandler{svc: svc}
}

// writeResult транслирует Result в HTTP-ответ
func writeResult[T any](c *gin.Context, res result.Result[T], err error, successStatus int) {
	if err != nil {
		c.JSON(http.StatusServiceUnavailable, gin.H{"error": gin.H{
			"code":        "General.Cancelled",
			"description": "Request was cancelled",
		}})
		return
	}

	if res.IsFailure() {
		e := res.Error()
		if e.Type == result.TypeFailure {
			logger.Error().Err(e.Cause).Str("code", e.Code).Msg("необработанная ошибка запроса")
		}
		c.JSON(e.StatusCode(), gin.H{"error": e})
		return
	}

	if successStatus == http.StatusNoContent {
		c.Status(http.StatusNoContent)
		return
	}
	c.JSON(successStatus, res.Value())
}

// buyerID достает идентификатор покупателя, положенный Authenticate
func buyerID(c *gin.Context) string {
	return c.GetString("user_id")
}

// GetBasket обрабатывает GET /basket
func (h *BasketHandler) GetBasket(c *gin.Context) {
	res, err := h.svc.GetBasket.Send(c.Request.Context(), query.GetBasket{BuyerID: buyerID(c)})
	writeResult(c, res, err, http.StatusOK)
}

// UpdateBasket обрабатывает PUT /basket
func (h *BasketHandler) UpdateBasket(c *gin.Context) {
	var req entity.UpdateBasketRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": result.Validation("General.BadRequest", err.Error())})
		return
	}

	res, err := h.svc.UpdateBasket.Send(c.Request.Context(), command.UpdateBasket{
		BuyerID: buyerID(c),
		Items:   req.Items,
	})
	writeResult(c, res, err, http.StatusOK)
}

// DeleteBasket обрабатывает DELETE /basket
func (h *BasketHandler) DeleteBasket(c *gin.Context) {
	res, err := h.svc.DeleteBasket.Send(c.Request.Context(), command.DeleteBasket{BuyerID: buyerID(c)})
	writeResult(c, res, err, http.StatusNoContent)
}
