package main

import (
	"context"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"gorm.io/driver/postgres"
	"gorm.io/gorm"
	gormlogger "gorm.io/gorm/logger"

	"octobermarket/catalog-service/internal/app/catalog/config"
	"octobermarket/catalog-service/internal/app/catalog/entity"
	"octobermarket/catalog-service/internal/app/catalog/handler"
	"octobermarket/catalog-service/internal/app/catalog/processor"
	"octobermarket/catalog-service/internal/app/catalog/repository"
	"octobermarket/catalog-service/internal/app/catalog/service"
	"octobermarket/catalog-service/internal/app/catalog/util"
	"octobermarket/pkg/logger"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		fmt.Fprintf(os.Stderr, "failed to load config: %v\n", err)
		os.Exit(1)
	}

	logger.Init("catalog-service", cfg.LogLevel)

	db, err := connectDB(cfg.Database)
	if err != nil {
		logger.Fatal().Err(err).Msg("не удалось подключиться к PostgreSQL")
	}
	logger.Info().Msg("подключение к PostgreSQL установлено")

	if err := db.AutoMigrate(&entity.Brand{}, &entity.Category{}, &entity.Item{}); err != nil {
		logger.Fatal().Err(err).Msg("не удалось выполнить миграции")
	}

	cache, err := util.NewRedisCache(cfg.Redis.Address(), cfg.Redis.Password, cfg.Redis.DB)
	if err != nil {
		logger.Fatal().Err(err).Msg("не удалось подключиться к Redis")
	}
	defer cache.Close()
	logger.Info().Msg("подключение к Redis установлено")

	publisher := util.NewKafkaPublisher(cfg.Kafka.Brokers, cfg.Kafka.Topic)
	defer publisher.Close()
	logger.Info().Str("topic", cfg.Kafka.Topic).Msg("Kafka producer инициализирован")

	brandRepo := repository.NewBrandRepository(db)
	categoryRepo := repository.NewCategoryRepository(db)
	itemRepo := repository.NewItemRepository(db)

	catalogService := service.NewCatalogService(brandRepo, categoryRepo, itemRepo, cache, publisher)

	catalogHandler := handler.NewCatalogHandler(catalogService)
	authMiddleware := handler.NewAuthMiddleware(cfg.JWT.Secret)
	router := handler.SetupRoutes(catalogHandler, authMiddleware)

	// Монитор остатков работает в фоне весь срок жизни сервиса
	monitorCtx, cancelMonitor := context.WithCancel(context.Background())
	defer cancelMonitor()

	monitor := processor.NewRestockMonitor(itemRepo, publisher)
	if err := monitor.Start(monitorCtx, cfg.Restock.Schedule); err != nil {
		logger.Fatal().Err(err).Msg("не удалось запустить монитор остатков")
	}

	server := &http.Server{
		Addr:         cfg.Server.Address(),
		Handler:      router,
		ReadTimeout:  15 * time.Second,
		WriteTimeout: 15 * time.Second,
		IdleTimeout:  60 * time.Second,
	}

	go func() {
		logger.Info().Str("addr", cfg.Server.Address()).Msg("запуск Catalog Service")
		if err := server.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			logger.Fatal().Err(err).Msg("ошибка HTTP сервера")
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	logger.Info().Msg("остановка Catalog Service")

	monitor.Stop()
	cancelMonitor()

	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	if err := server.Shutdown(ctx); err != nil {
		logger.Fatal().Err(err).Msg("принудительная остановка сервера")
	}

	logger.Info().Msg("Catalog Service остановлен")
}

// connectDB открывает соединение с PostgreSQL через gorm.
// Повторяет попытки подключения для устойчивости при старте в Docker
func connectDB(cfg config.DatabaseConfig) (*gorm.DB, error) {
	var db *gorm.DB
	var err error

	for attempt := 1; attempt <= 10; attempt++ {
		db, err = gorm.Open(postgres.Open(cfg.DSN()), &gorm.Config{
			Logger: gormlogger.Default.LogMode(gormlogger.Silent),
		})
		if err == nil {
			return db, nil
		}
		logger.Warn().Err(err).Int("attempt", attempt).Msg("PostgreSQL недоступен, повтор через 3 секунды")
		time.Sleep(3 * time.Second)
	}

	return nil, fmt.Errorf("failed to connect after 10 attempts: %w", err)
}
