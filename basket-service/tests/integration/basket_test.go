//go:build integration

package integration

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"octobermarket/basket-service/internal/app/basket/entity"
	"octobermarket/basket-service/internal/app/basket/handler"
	"octobermarket/basket-service/internal/app/basket/processor"
	"octobermarket/basket-service/internal/app/basket/repository"
	"octobermarket/basket-service/internal/app/basket/service"
	"octobermarket/pkg/logger"

	"github.com/golang-jwt/jwt/v5"
	"github.com/redis/go-redis/v9"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/stretchr/testify/suite"
)

const jwtSecret = "test-secret-key"

// BasketIntegrationTestSuite содержит интеграционные тесты для basket-service
// Требует запущенный Redis
type BasketIntegrationTestSuite struct {
	suite.Suite
	redisClient *redis.Client
	baskets     repository.BasketRepository
	router      http.Handler
}

// SetupSuite выполняется один раз перед всеми тестами
func (s *BasketIntegrationTestSuite) SetupSuite() {
	logger.Init("basket-integration", "error")

	// Отдельная БД Redis для тестов, значения соответствуют docker-compose.test.yml
	s.redisClient = redis.NewClient(&redis.Options{
		Addr:     "localhost:6379",
		Password: "redis_password",
		DB:       14,
	})
	err := s.redisClient.Ping(context.Background()).Err()
	require.NoError(s.T(), err, "Failed to connect to Redis")

	baskets, err := repository.NewRedisBasketRepository("localhost:6379", "redis_password", 14)
	require.NoError(s.T(), err)
	s.baskets = baskets

	svc := service.NewBasketService(baskets)
	basketHandler := handler.NewBasketHandler(svc)
	authMiddleware := handler.NewAuthMiddleware(jwtSecret)
	s.router = handler.SetupRoutes(basketHandler, authMiddleware)
}

// TearDownSuite выполняется один раз после всех тестов
func (s *BasketIntegrationTestSuite) TearDownSuite() {
	if s.redisClient != nil {
		s.redisClient.FlushDB(context.Background())
		s.redisClient.Close()
	}
}

// SetupTest выполняется перед каждым тестом
func (s *BasketIntegrationTestSuite) SetupTest() {
	s.redisClient.FlushDB(context.Background())
}

func (s *BasketIntegrationTestSuite) signToken(userID string) string {
	claims := handler.JWTClaims{
		UserID: userID,
		RegisteredClaims: jwt.RegisteredClaims{
			ExpiresAt: jwt.NewNumericDate(time.Now().Add(time.Hour)),
		},
	}
	signed, err := jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString([]byte(jwtSecret))
	require.NoError(s.T(), err)
	return signed
}

func (s *BasketIntegrationTestSuite) do(method, path, token string, body any) *httptest.ResponseRecorder {
	var buf bytes.Buffer
	if body != nil {
		require.NoError(s.T(), json.NewEncoder(&buf).Encode(body))
	}
	req := httptest.NewRequest(method, path, &buf)
	req.Header.Set("Content-Type", "application/json")
	if token != "" {
		req.Header.Set("Authorization", fmt.Sprintf("Bearer %s", token))
	}
	rec := httptest.NewRecorder()
	s.router.ServeHTTP(rec, req)
	return rec
}

func (s *BasketIntegrationTestSuite) putBasket(buyerID string, items ...entity.BasketItemRequest) entity.CustomerBasket {
	rec := s.do(http.MethodPut, "/basket", s.signToken(buyerID), entity.UpdateBasketRequest{Items: items})
	require.Equal(s.T(), http.StatusOK, rec.Code)

	var basket entity.CustomerBasket
	require.NoError(s.T(), json.Unmarshal(rec.Body.Bytes(), &basket))
	return basket
}

// ==================== Test Cases ====================

func (s *BasketIntegrationTestSuite) TestGetBasket_NewBuyer_ReturnsEmpty() {
	// Act
	rec := s.do(http.MethodGet, "/basket", s.signToken("buyer-1"), nil)

	// Assert
	require.Equal(s.T(), http.StatusOK, rec.Code)

	var basket entity.CustomerBasket
	require.NoError(s.T(), json.Unmarshal(rec.Body.Bytes(), &basket))
	assert.Equal(s.T(), "buyer-1", basket.BuyerID)
	assert.Empty(s.T(), basket.Items)
}

func (s *BasketIntegrationTestSuite) TestUpdateBasket_RoundTrip() {
	// Act
	saved := s.putBasket("buyer-1",
		entity.BasketItemRequest{ProductID: 5, ProductName: "Laptop", UnitPrice: 1499.99, Quantity: 1},
		entity.BasketItemRequest{ProductID: 7, ProductName: "Mouse", UnitPrice: 29.90, Quantity: 2},
	)

	// Assert - корзина читается обратно с присвоенными id позиций
	require.Len(s.T(), saved.Items, 2)
	assert.NotEmpty(s.T(), saved.Items[0].ID)
	assert.NotEqual(s.T(), saved.Items[0].ID, saved.Items[1].ID)

	rec := s.do(http.MethodGet, "/basket", s.signToken("buyer-1"), nil)
	require.Equal(s.T(), http.StatusOK, rec.Code)

	var got entity.CustomerBasket
	require.NoError(s.T(), json.Unmarshal(rec.Body.Bytes(), &got))
	assert.Equal(s.T(), saved.Items, got.Items)
}

func (s *BasketIntegrationTestSuite) TestUpdateBasket_ReplacesPreviousContents() {
	// Arrange
	s.putBasket("buyer-1",
		entity.BasketItemRequest{ProductID: 5, ProductName: "Laptop", UnitPrice: 1499.99, Quantity: 1})

	// Act - полная замена содержимого
	saved := s.putBasket("buyer-1",
		entity.BasketItemRequest{ProductID: 7, ProductName: "Mouse", UnitPrice: 29.90, Quantity: 1})

	// Assert
	require.Len(s.T(), saved.Items, 1)
	assert.Equal(s.T(), 7, saved.Items[0].ProductID)
}

func (s *BasketIntegrationTestSuite) TestBuyerIsolation() {
	// Arrange
	s.putBasket("buyer-1",
		entity.BasketItemRequest{ProductID: 5, ProductName: "Laptop", UnitPrice: 1499.99, Quantity: 1})

	// Act - другой покупатель видит только свою корзину
	rec := s.do(http.MethodGet, "/basket", s.signToken("buyer-2"), nil)

	// Assert
	require.Equal(s.T(), http.StatusOK, rec.Code)

	var basket entity.CustomerBasket
	require.NoError(s.T(), json.Unmarshal(rec.Body.Bytes(), &basket))
	assert.Equal(s.T(), "buyer-2", basket.BuyerID)
	assert.Empty(s.T(), basket.Items)
}

func (s *BasketIntegrationTestSuite) TestDeleteBasket_Success() {
	// Arrange
	s.putBasket("buyer-1",
		entity.BasketItemRequest{ProductID: 5, ProductName: "Laptop", UnitPrice: 1499.99, Quantity: 1})

	// Act
	rec := s.do(http.MethodDelete, "/basket", s.signToken("buyer-1"), nil)

	// Assert
	assert.Equal(s.T(), http.StatusNoContent, rec.Code)

	after := s.do(http.MethodGet, "/basket", s.signToken("buyer-1"), nil)
	require.Equal(s.T(), http.StatusOK, after.Code)

	var basket entity.CustomerBasket
	require.NoError(s.T(), json.Unmarshal(after.Body.Bytes(), &basket))
	assert.Empty(s.T(), basket.Items)
}

func (s *BasketIntegrationTestSuite) TestDeleteBasket_Missing_NotFound() {
	// Act
	rec := s.do(http.MethodDelete, "/basket", s.signToken("buyer-1"), nil)

	// Assert
	assert.Equal(s.T(), http.StatusNotFound, rec.Code)
	assert.Contains(s.T(), rec.Body.String(), "Basket.NotFound")
}

func (s *BasketIntegrationTestSuite) TestPriceChange_AppliedToStoredBaskets() {
	// Arrange - две корзины, товар 5 только в первой
	s.putBasket("buyer-1",
		entity.BasketItemRequest{ProductID: 5, ProductName: "Laptop", UnitPrice: 1499.99, Quantity: 1})
	s.putBasket("buyer-2",
		entity.BasketItemRequest{ProductID: 7, ProductName: "Mouse", UnitPrice: 29.90, Quantity: 1})

	applier := processor.NewPriceApplier(s.baskets)

	// Act
	err := applier.ApplyPriceChange(context.Background(), entity.ItemEvent{
		EventType: entity.EventItemPriceChanged,
		ItemID:    5,
		NewPrice:  1299.99,
	})

	// Assert
	require.NoError(s.T(), err)

	rec := s.do(http.MethodGet, "/basket", s.signToken("buyer-1"), nil)
	require.Equal(s.T(), http.StatusOK, rec.Code)

	var basket entity.CustomerBasket
	require.NoError(s.T(), json.Unmarshal(rec.Body.Bytes(), &basket))
	require.Len(s.T(), basket.Items, 1)
	assert.Equal(s.T(), 1299.99, basket.Items[0].UnitPrice)
	assert.Equal(s.T(), 1499.99, basket.Items[0].OldUnitPrice)
}

func (s *BasketIntegrationTestSuite) TestGetBasket_Unauthorized() {
	// Act - без токена
	rec := s.do(http.MethodGet, "/basket", "", nil)

	// Assert
	assert.Equal(s.T(), http.StatusUnauthorized, rec.Code)
}

func (s *BasketIntegrationTestSuite) TestHealthCheck() {
	// Act
	rec := s.do(http.MethodGet, "/health", "", nil)

	// Assert
	assert.Equal(s.T(), http.StatusOK, rec.Code)
}

// Запуск test suite
func TestBasketIntegrationTestSuite(t *testing.T) {
	suite.Run(t, new(BasketIntegrationTestSuite))
}
