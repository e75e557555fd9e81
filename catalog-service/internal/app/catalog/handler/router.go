package handler

import (
	"net/http"

	"octobermarket/pkg/logger"
	"octobermarket/pkg/metrics"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

// SetupRoutes настраивает все маршруты Catalog Service.
// Чтение каталога публичное, мутации требуют JWT с ролью manager или admin
func SetupRoutes(catalogHandler *CatalogHandler, authMiddleware *AuthMiddleware) *gin.Engine {
	router := gin.New()
	router.Use(gin.Recovery())
	router.Use(logger.GinMiddleware())
	router.Use(metrics.GinMiddleware("catalog"))
	router.Use(cors.Default())

	// Health check endpoint - публичный, без аутентификации
	router.GET("/health", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{
			"status":  "ok",
			"service": "catalog-service",
		})
	})

	router.GET("/metrics", gin.WrapH(promhttp.Handler()))

	brands := router.Group("/brands")
	{
		brands.GET("", catalogHandler.GetBrands)
		brands.GET("/:id", catalogHandler.GetBrand)

		brands.POST("", authMiddleware.Authenticate(), authMiddleware.RequireRole("manager", "admin"), catalogHandler.CreateBrand)
		brands.PUT("/:id", authMiddleware.Authenticate(), authMiddleware.RequireRole("manager", "admin"), catalogHandler.UpdateBrand)
		brands.DELETE("/:id", authMiddleware.Authenticate(), authMiddleware.RequireRole("admin"), catalogHandler.DeleteBrand)
	}

	categories := router.Group("/categories")
	{
		categories.GET("", catalogHandler.GetCategories)
		categories.GET("/:id", catalogHandler.GetCategory)

		categories.POST("", authMiddleware.Authenticate(), authMiddleware.RequireRole("manager", "admin"), catalogHandler.CreateCategory)
		categories.PUT("/:id", authMiddleware.Authenticate(), authMiddleware.RequireRole("manager", "admin"), catalogHandler.UpdateCategory)
		categories.DELETE("/:id", authMiddleware.Authenticate(), authMiddleware.RequireRole("admin"), catalogHandler.DeleteCategory)
	}

	items := router.Group("/items")
	{
		items.GET("", catalogHandler.GetItems)
		items.GET("/:idOrSlug", catalogHandler.GetItem)

		items.POST("", authMiddleware.Authenticate(), authMiddleware.RequireRole("manager", "admin"), catalogHandler.CreateItem)
		items.PUT("/:id", authMiddleware.Authenticate(), authMiddleware.RequireRole("manager", "admin"), catalogHandler.UpdateItem)
		items.DELETE("/:id", authMiddleware.Authenticate(), authMiddleware.RequireRole("admin"), catalogHandler.DeleteItem)

		// Операции со складом доступны менеджерам
		items.POST("/:id/stock/add", authMiddleware.Authenticate(), authMiddleware.RequireRole("manager", "admin"), catalogHandler.AddStock)
		items.POST("/:id/stock/remove", authMiddleware.Authenticate(), authMiddleware.RequireRole("manager", "admin"), catalogHandler.RemoveStock)
	}

	return router
}
