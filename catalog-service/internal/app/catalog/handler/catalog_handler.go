package handler

import (
	"fmt"
	"net/http"
	"strconv"

	"octobermarket/catalog-service/internal/app/catalog/command"
	"octobermarket/catalog-service/internal/app/catalog/entity"
	"octobermarket/catalog-service/internal/app/catalog/query"
	"octobermarket/catalog-service/internal/app/catalog/service"
	"octobermarket/pkg/logger"
	"octobermarket/pkg/paging"
	"octobermarket/pkg/result"

	"github.com/gin-gonic/gin"
)

// CatalogHandler обрабатывает HTTP запросы каталога
type CatalogHandler struct {
	svc *service.CatalogService
}

// NewCatalogHandler создает новый обработчик каталога
func NewCatalogHandler(svc *service.CatalogService) *CatalogHandler {
	return &CatalogHandler{svc: svc}
}

// writeResult транслирует Result в HTTP-ответ: тип доменной ошибки
// определяет статус, инфраструктурные ошибки логируются с причиной
func writeResult[T any](c *gin.Context, res result.Result[T], err error, successStatus int) {
	if err != nil {
		// Send возвращает ошибку только при отмененном контексте
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

func badRequest(c *gin.Context, description string) {
	c.JSON(http.StatusBadRequest, gin.H{"error": result.Validation("General.BadRequest", description)})
}

// pathID разбирает числовой идентификатор из параметра пути
func pathID(c *gin.Context) (int, bool) {
	id, err := strconv.Atoi(c.Param("id"))
	if err != nil {
		badRequest(c, "Identifier must be an integer")
		return 0, false
	}
	return id, true
}

// listParams - общие query-параметры постраничных запросов
type listParams struct {
	Name string `form:"name"`
	paging.Options
}

// itemListParams расширяет listParams фильтрами товаров
type itemListParams struct {
	Name       string `form:"name"`
	BrandID    int    `form:"brandId"`
	CategoryID int    `form:"categoryId"`
	paging.Options
}

func normalize(opts *paging.Options) {
	if opts.Page == 0 {
		opts.Page = 1
	}
}

// --- Бренды ---

// CreateBrand обрабатывает POST /brands
func (h *CatalogHandler) CreateBrand(c *gin.Context) {
	var req entity.CreateBrandRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		badRequest(c, err.Error())
		return
	}

	res, err := h.svc.CreateBrand.Send(c.Request.Context(), command.CreateBrand{Name: req.Name})
	if err == nil && res.IsSuccess() {
		c.Header("Location", fmt.Sprintf("/brands/%d", res.Value().ID))
	}
	writeResult(c, res, err, http.StatusCreated)
}

// GetBrands обрабатывает GET /brands
func (h *CatalogHandler) GetBrands(c *gin.Context) {
	var params listParams
	if err := c.ShouldBindQuery(&params); err != nil {
		badRequest(c, err.Error())
		return
	}
	normalize(&params.Options)

	res, err := h.svc.GetBrands.Send(c.Request.Context(), query.GetBrands{
		Name:    params.Name,
		Options: params.Options,
	})
	writeResult(c, res, err, http.StatusOK)
}

// GetBrand обрабатывает GET /brands/:id
func (h *CatalogHandler) GetBrand(c *gin.Context) {
	id, ok := pathID(c)
	if !ok {
		return
	}
	res, err := h.svc.GetBrandByID.Send(c.Request.Context(), query.GetBrandByID{ID: id})
	writeResult(c, res, err, http.StatusOK)
}

// UpdateBrand обрабатывает PUT /brands/:id
func (h *CatalogHandler) UpdateBrand(c *gin.Context) {
	id, ok := pathID(c)
	if !ok {
		return
	}
	var req entity.UpdateBrandRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		badRequest(c, err.Error())
		return
	}

	res, err := h.svc.UpdateBrand.Send(c.Request.Context(), command.UpdateBrand{ID: id, Name: req.Name})
	writeResult(c, res, err, http.StatusOK)
}

// DeleteBrand обрабатывает DELETE /brands/:id
func (h *CatalogHandler) DeleteBrand(c *gin.Context) {
	id, ok := pathID(c)
	if !ok {
		return
	}
	res, err := h.svc.DeleteBrand.Send(c.Request.Context(), command.DeleteBrand{ID: id})
	writeResult(c, res, err, http.StatusNoContent)
}

// --- Категории ---

// CreateCategory обрабатывает POST /categories
func (h *CatalogHandler) CreateCategory(c *gin.Context) {
	var req entity.CreateCategoryRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		badRequest(c, err.Error())
		return
	}

	res, err := h.svc.CreateCategory.Send(c.Request.Context(), command.CreateCategory{Name: req.Name})
	if err == nil && res.IsSuccess() {
		c.Header("Location", fmt.Sprintf("/categories/%d", res.Value().ID))
	}
	writeResult(c, res, err, http.StatusCreated)
}

// GetCategories обрабатывает GET /categories
func (h *CatalogHandler) GetCategories(c *gin.Context) {
	var params listParams
	if err := c.ShouldBindQuery(&params); err != nil {
		badRequest(c, err.Error())
		return
	}
	normalize(&params.Options)

	res, err := h.svc.GetCategories.Send(c.Request.Context(), query.GetCategories{
		Name:    params.Name,
		Options: params.Options,
	})
	writeResult(c, res, err, http.StatusOK)
}

// GetCategory обрабатывает GET /categories/:id
func (h *CatalogHandler) GetCategory(c *gin.Context) {
	id, ok := pathID(c)
	if !ok {
		return
	}
	res, err := h.svc.GetCategoryByID.Send(c.Request.Context(), query.GetCategoryByID{ID: id})
	writeResult(c, res, err, http.StatusOK)
}

// UpdateCategory обрабатывает PUT /categories/:id
func (h *CatalogHandler) UpdateCategory(c *gin.Context) {
	id, ok := pathID(c)
	if !ok {
		return
	}
	var req entity.UpdateCategoryRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		badRequest(c, err.Error())
		return
	}

	res, err := h.svc.UpdateCategory.Send(c.Request.Context(), command.UpdateCategory{ID: id, Name: req.Name})
	writeResult(c, res, err, http.StatusOK)
}

// DeleteCategory обрабатывает DELETE /categories/:id
func (h *CatalogHandler) DeleteCategory(c *gin.Context) {
	id, ok := pathID(c)
	if !ok {
		return
	}
	res, err := h.svc.DeleteCategory.Send(c.Request.Context(), command.DeleteCategory{ID: id})
	writeResult(c, res, err, http.StatusNoContent)
}

// --- Товары ---

// CreateItem обрабатывает POST /items
func (h *CatalogHandler) CreateItem(c *gin.Context) {
	var req entity.CreateItemRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		badRequest(c, err.Error())
		return
	}

	res, err := h.svc.CreateItem.Send(c.Request.Context(), command.CreateItem{
		Slug:              req.Slug,
		Name:              req.Name,
		Description:       req.Description,
		Price:             req.Price,
		PictureFileName:   req.PictureFileName,
		BrandID:           req.BrandID,
		CategoryIDs:       req.CategoryIDs,
		AvailableStock:    req.AvailableStock,
		RestockThreshold:  req.RestockThreshold,
		MaxStockThreshold: req.MaxStockThreshold,
		OnReorder:         req.OnReorder,
	})
	if err == nil && res.IsSuccess() {
		c.Header("Location", fmt.Sprintf("/items/%d", res.Value().ID))
	}
	writeResult(c, res, err, http.StatusCreated)
}

// GetItems обрабатывает GET /items
func (h *CatalogHandler) GetItems(c *gin.Context) {
	var params itemListParams
	if err := c.ShouldBindQuery(&params); err != nil {
		badRequest(c, err.Error())
		return
	}
	normalize(&params.Options)

	res, err := h.svc.GetItems.Send(c.Request.Context(), query.GetItems{
		Name:       params.Name,
		BrandID:    params.BrandID,
		CategoryID: params.CategoryID,
		Options:    params.Options,
	})
	writeResult(c, res, err, http.StatusOK)
}

// GetItem обрабатывает GET /items/:idOrSlug
func (h *CatalogHandler) GetItem(c *gin.Context) {
	res, err := h.svc.GetItem.Send(c.Request.Context(), query.GetItemByIDOrSlug{
		IDOrSlug: c.Param("idOrSlug"),
	})
	writeResult(c, res, err, http.StatusOK)
}

// UpdateItem обрабатывает PUT /items/:id
func (h *CatalogHandler) UpdateItem(c *gin.Context) {
	id, ok := pathID(c)
	if !ok {
		return
	}
	var req entity.UpdateItemRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		badRequest(c, err.Error())
		return
	}

	res, err := h.svc.UpdateItem.Send(c.Request.Context(), command.UpdateItem{
		ID:                id,
		Slug:              req.Slug,
		Name:              req.Name,
		Description:       req.Description,
		Price:             req.Price,
		PictureFileName:   req.PictureFileName,
		BrandID:           req.BrandID,
		CategoryIDs:       req.CategoryIDs,
		AvailableStock:    req.AvailableStock,
		RestockThreshold:  req.RestockThreshold,
		MaxStockThreshold: req.MaxStockThreshold,
		OnReorder:         req.OnReorder,
	})
	writeResult(c, res, err, http.StatusOK)
}

// DeleteItem обрабатывает DELETE /items/:id
func (h *CatalogHandler) DeleteItem(c *gin.Context) {
	id, ok := pathID(c)
	if !ok {
		return
	}
	res, err := h.svc.DeleteItem.Send(c.Request.Context(), command.DeleteItem{ID: id})
	writeResult(c, res, err, http.StatusNoContent)
}

// AddStock обрабатывает POST /items/:id/stock/add
func (h *CatalogHandler) AddStock(c *gin.Context) {
	id, ok := pathID(c)
	if !ok {
		return
	}
	var req entity.StockRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		badRequest(c, err.Error())
		return
	}

	res, err := h.svc.AddStock.Send(c.Request.Context(), command.AddStock{ID: id, Quantity: req.Quantity})
	writeResult(c, res, err, http.StatusOK)
}

// RemoveStock обрабатывает POST /items/:id/stock/remove
func (h *CatalogHandler) RemoveStock(c *gin.Context) {
	id, ok := pathID(c)
	if !ok {
		return
	}
	var req entity.StockRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		badRequest(c, err.Error())
		return
	}

	res, err := h.svc.RemoveStock.Send(c.Request.Context(), command.RemoveStock{ID: id, Quantity: req.Quantity})
	writeResult(c, res, err, http.StatusOK)
}
