package main

import (
	"context"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"octobermarket/basket-service/internal/app/basket/config"
	"octobermarket/basket-service/internal/app/basket/handler"
	"octobermarket/basket-service/internal/app/basket/processor"
	"octobermarket/basket-service/internal/app/basket/repository"
	"octobermarket/basket-service/internal/app/basket/service"
	"octobermarket/pkg/logger"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		fmt.Fprintf(os.Stderr, "failed to load config: %v\n", err)
		os.Exit(1)
	}

	logger.Init("basket-service", cfg.LogLevel)

	basketRepo, err := repository.NewRedisBasketRepository(cfg.Redis.Address(), cfg.Redis.Password, cfg.Redis.DB)
	if err != nil {
		logger.Fatal().Err(err).Msg("не удалось подключиться к Redis")
	}
	logger.Info().Msg("подключение к Redis установлено")

	basketService := service.NewBasketService(basketRepo)

	basketHandler := handler.NewBasketHandler(basketService)
	authMiddleware := handler.NewAuthMiddleware(cfg.JWT.Secret)
	router := handler.SetupRoutes(basketHandler, authMiddleware)

	// Consumer событий каталога обновляет цены в сохраненных корзинах
	consumerCtx, cancelConsumer := context.WithCancel(context.Background())
	defer cancelConsumer()

	consumer := processor.NewPriceConsumer(cfg.Kafka.Brokers, cfg.Kafka.Topic, cfg.Kafka.GroupID, basketRepo)
	consumer.Start(consumerCtx)

	server := &http.Server{
		Addr:         cfg.Server.Address(),
		Handler:      router,
		ReadTimeout:  15 * time.Second,
		WriteTimeout: 15 * time.Second,
		IdleTimeout:  60 * time.Second,
	}

	go func() {
		logger.Info().Str("addr", cfg.Server.Address()).Msg("запуск Basket Service")
		if err := server.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			logger.Fatal().Err(err).Msg("ошибка HTTP сервера")
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	logger.Info().Msg("остановка Basket Service")

	cancelConsumer()
	consumer.Stop()

	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	if err := server.Shutdown(ctx); err != nil {
		logger.Fatal().Err(err).Msg("принудительная остановка сервера")
	}

	logger.Info().Msg("Basket Service остановлен")
}
