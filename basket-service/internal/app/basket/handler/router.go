package handler

import (
	"net/http"

	"octobermarket/pkg/logger"
	"octobermarket/pkg/metrics"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

// SetupRoutes настраивает маршруты Basket Service.
// Все операции с корзиной требуют аутентификации: покупатель
// определяется по токену, а не по параметрам запроса
func SetupRoutes(basketHandler *BasketHandler, authMiddleware *AuthMiddleware) *gin.Engine {
	router := gin.New()
	router.Use(gin.Recovery())
	router.Use(logger.GinMiddleware())
	router.Use(metrics.GinMiddleware("basket"))
	router.Use(cors.Default())

	router.GET("/health", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{
			"status":  "ok",
			"service": "basket-service",
		})
	})

	router.GET("/metrics", gin.WrapH(promhttp.Handler()))

	basket := router.Group("/basket")
	basket.Use(authMiddleware.Authenticate())
	{
		basket.GET("", basketHandler.GetBasket)
		basket.PUT("", basketHandler.UpdateBasket)
		basket.DELETE("", basketHandler.DeleteBasket)
	}

	return router
}
