package handler

import (
	"bytes"
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"octobermarket/catalog-service/internal/app/catalog/entity"
	"octobermarket/catalog-service/internal/app/catalog/repository"
	"octobermarket/catalog-service/internal/app/catalog/repository/mocks"
	"octobermarket/catalog-service/internal/app/catalog/service"
	"octobermarket/pkg/logger"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func init() {
	gin.SetMode(gin.TestMode)
	logger.Init("catalog-test", "error")
}

type handlerMocks struct {
	brands     *mocks.MockBrandRepository
	categories *mocks.MockCategoryRepository
	items      *mocks.MockItemRepository
	cache      *mocks.MockListCache
	publisher  *mocks.MockEventPublisher
}

// setupRouter собирает маршруты без auth middleware: авторизация
// тестируется отдельно в middleware_test.go
func setupRouter() (*gin.Engine, handlerMocks) {
	m := handlerMocks{
		brands:     new(mocks.MockBrandRepository),
		categories: new(mocks.MockCategoryRepository),
		items:      new(mocks.MockItemRepository),
		cache:      new(mocks.MockListCache),
		publisher:  new(mocks.MockEventPublisher),
	}

	svc := service.NewCatalogService(m.brands, m.categories, m.items, m.cache, m.publisher)
	h := NewCatalogHandler(svc)

	r := gin.New()
	r.GET("/brands", h.GetBrands)
	r.GET("/brands/:id", h.GetBrand)
	r.POST("/brands", h.CreateBrand)
	r.PUT("/brands/:id", h.UpdateBrand)
	r.DELETE("/brands/:id", h.DeleteBrand)
	r.GET("/items", h.GetItems)
	r.GET("/items/:idOrSlug", h.GetItem)
	r.POST("/items", h.CreateItem)
	r.POST("/items/:id/stock/add", h.AddStock)
	return r, m
}

func doJSON(r *gin.Engine, method, path string, body any) *httptest.ResponseRecorder {
	var buf bytes.Buffer
	if body != nil {
		_ = json.NewEncoder(&buf).Encode(body)
	}
	req := httptest.NewRequest(method, path, &buf)
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	return w
}

func TestGetBrand_ReturnsOK(t *testing.T) {
	r, m := setupRouter()
	m.brands.On("GetByID", mock.Anything, 7).Return(&entity.Brand{ID: 7, Name: "Acme"}, nil)

	w := doJSON(r, http.MethodGet, "/brands/7", nil)

	require.Equal(t, http.StatusOK, w.Code)

	var resp entity.BrandResponse
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.Equal(t, "Acme", resp.Name)
}

func TestGetBrand_NotFound_Returns404(t *testing.T) {
	r, m := setupRouter()
	m.brands.On("GetByID", mock.Anything, 99).Return(nil, repository.ErrNotFound)

	w := doJSON(r, http.MethodGet, "/brands/99", nil)

	require.Equal(t, http.StatusNotFound, w.Code)
	assert.Contains(t, w.Body.String(), "CatalogBrands.NotFound")
}

func TestGetBrand_NonNumericID_Returns400(t *testing.T) {
	r, _ := setupRouter()

	w := doJSON(r, http.MethodGet, "/brands/abc", nil)

	require.Equal(t, http.StatusBadRequest, w.Code)
}

func TestCreateBrand_Returns201WithLocation(t *testing.T) {
	r, m := setupRouter()
	m.brands.On("ExistsByName", mock.Anything, "Acme", 0).Return(false, nil)
	m.brands.On("Create", mock.Anything, mock.AnythingOfType("*entity.Brand")).Return(nil).Run(func(args mock.Arguments) {
		args.Get(1).(*entity.Brand).ID = 7
	})
	m.cache.On("DeleteBrands", mock.Anything).Return(nil)

	w := doJSON(r, http.MethodPost, "/brands", entity.CreateBrandRequest{Name: "Acme"})

	require.Equal(t, http.StatusCreated, w.Code)
	assert.Equal(t, "/brands/7", w.Header().Get("Location"))
}

func TestCreateBrand_DuplicateName_Returns409(t *testing.T) {
	r, m := setupRouter()
	m.brands.On("ExistsByName", mock.Anything, "Acme", 0).Return(true, nil)

	w := doJSON(r, http.MethodPost, "/brands", entity.CreateBrandRequest{Name: "Acme"})

	require.Equal(t, http.StatusConflict, w.Code)
	assert.Contains(t, w.Body.String(), "CatalogBrands.NameAlreadyExists")
}

func TestCreateBrand_MissingName_Returns400(t *testing.T) {
	r, _ := setupRouter()

	w := doJSON(r, http.MethodPost, "/brands", map[string]string{})

	require.Equal(t, http.StatusBadRequest, w.Code)
}

func TestGetBrands_InvalidPageSize_Returns400(t *testing.T) {
	// pageSize за верхней границей отсеивает валидатор в pipeline
	r, _ := setupRouter()

	w := doJSON(r, http.MethodGet, "/brands?pageSize=100", nil)

	require.Equal(t, http.StatusBadRequest, w.Code)
	assert.Contains(t, w.Body.String(), "General.Validation")
}

func TestDeleteBrand_Returns204(t *testing.T) {
	r, m := setupRouter()
	m.brands.On("GetByID", mock.Anything, 7).Return(&entity.Brand{ID: 7, Name: "Acme"}, nil)
	m.brands.On("CountItems", mock.Anything, 7).Return(int64(0), nil)
	m.brands.On("Delete", mock.Anything, 7).Return(nil)
	m.cache.On("DeleteBrands", mock.Anything).Return(nil)

	w := doJSON(r, http.MethodDelete, "/brands/7", nil)

	require.Equal(t, http.StatusNoContent, w.Code)
	assert.Empty(t, w.Body.String())
}

func TestDeleteBrand_WithItems_Returns409(t *testing.T) {
	r, m := setupRouter()
	m.brands.On("GetByID", mock.Anything, 7).Return(&entity.Brand{ID: 7, Name: "Acme"}, nil)
	m.brands.On("CountItems", mock.Anything, 7).Return(int64(2), nil)

	w := doJSON(r, http.MethodDelete, "/brands/7", nil)

	require.Equal(t, http.StatusConflict, w.Code)
}

func TestGetItem_BySlug_ReturnsOK(t *testing.T) {
	r, m := setupRouter()
	m.items.On("GetBySlug", mock.Anything, "gaming-laptop").
		Return(&entity.Item{ID: 5, Slug: "gaming-laptop", Name: "Laptop"}, nil)

	w := doJSON(r, http.MethodGet, "/items/gaming-laptop", nil)

	require.Equal(t, http.StatusOK, w.Code)

	var resp entity.ItemResponse
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.Equal(t, 5, resp.ID)
}

func TestCreateItem_UnknownBrand_Returns400(t *testing.T) {
	r, m := setupRouter()
	m.items.On("ExistsBySlug", mock.Anything, "gaming-laptop", 0).Return(false, nil)
	m.brands.On("GetByID", mock.Anything, 9).Return(nil, repository.ErrNotFound)

	req := entity.CreateItemRequest{
		Slug:        "gaming-laptop",
		Name:        "Gaming Laptop",
		Price:       1499.99,
		BrandID:     9,
		CategoryIDs: []int{1},
	}
	w := doJSON(r, http.MethodPost, "/items", req)

	require.Equal(t, http.StatusBadRequest, w.Code)
	assert.Contains(t, w.Body.String(), "CatalogItems.InvalidBrand")
}

func TestAddStock_Returns200(t *testing.T) {
	r, m := setupRouter()
	item := &entity.Item{ID: 5, Slug: "gaming-laptop", AvailableStock: 2, RestockThreshold: 3, MaxStockThreshold: 50}
	m.items.On("GetByID", mock.Anything, 5).Return(item, nil)
	m.items.On("Update", mock.Anything, mock.AnythingOfType("*entity.Item")).Return(nil)

	w := doJSON(r, http.MethodPost, "/items/5/stock/add", entity.StockRequest{Quantity: 10})

	require.Equal(t, http.StatusOK, w.Code)

	var resp entity.ItemResponse
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.Equal(t, 12, resp.AvailableStock)
}

func TestWriteResult_RepositoryError_Returns500(t *testing.T) {
	r, m := setupRouter()
	m.brands.On("GetByID", mock.Anything, 7).Return(nil, context.DeadlineExceeded)

	w := doJSON(r, http.MethodGet, "/brands/7", nil)

	require.Equal(t, http.StatusInternalServerError, w.Code)
	assert.Contains(t, w.Body.String(), "General.Unexpected")
}
