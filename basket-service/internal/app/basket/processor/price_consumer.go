package processor

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"octobermarket/basket-service/internal/app/basket/entity"
	"octobermarket/basket-service/internal/app/basket/repository"
	"octobermarket/pkg/logger"
	"octobermarket/pkg/metrics"

	"github.com/segmentio/kafka-go"
)

const serviceName = "basket"

// PriceApplier применяет изменения цен к сохраненным корзинам
type PriceApplier struct {
	baskets repository.BasketRepository
}

// NewPriceApplier создает applier поверх хранилища корзин
func NewPriceApplier(baskets repository.BasketRepository) *PriceApplier {
	return &PriceApplier{baskets: baskets}
}

// PriceConsumer слушает события каталога и обновляет цены в сохраненных
// корзинах. Покупатель видит старую и новую цену при следующем открытии
type PriceConsumer struct {
	*PriceApplier
	reader   *kafka.Reader
	stopChan chan struct{}
	doneChan chan struct{}
}

// NewPriceConsumer создает consumer событий каталога
func NewPriceConsumer(brokers []string, topic, groupID string, baskets repository.BasketRepository) *PriceConsumer {
	reader := kafka.NewReader(kafka.ReaderConfig{
		Brokers:        brokers,
		Topic:          topic,
		GroupID:        groupID,
		MinBytes:       1,
		MaxBytes:       10e6,
		StartOffset:    kafka.LastOffset,
		CommitInterval: time.Second,
		ReadBackoffMin: 100 * time.Millisecond,
		ReadBackoffMax: 1 * time.Second,
	})

	return &PriceConsumer{
		PriceApplier: NewPriceApplier(baskets),
		reader:       reader,
		stopChan:     make(chan struct{}),
		doneChan:     make(chan struct{}),
	}
}

// Start запускает consumer в отдельной горутине
func (c *PriceConsumer) Start(ctx context.Context) {
	logger.Info().Str("topic", c.reader.Config().Topic).Msg("запуск consumer событий каталога")
	go c.consume(ctx)
}

// Stop останавливает consumer и дожидается завершения цикла чтения
func (c *PriceConsumer) Stop() {
	close(c.stopChan)
	<-c.doneChan
	c.reader.Close()
	logger.Info().Msg("consumer событий каталога остановлен")
}

func (c *PriceConsumer) consume(ctx context.Context) {
	defer close(c.doneChan)

	for {
		select {
		case <-c.stopChan:
			return
		default:
			readCtx, cancel := context.WithTimeout(ctx, 10*time.Second)
			message, err := c.reader.FetchMessage(readCtx)
			cancel()

			if err != nil {
				if ctx.Err() != nil {
					return
				}
				// Таймаут чтения при пустом топике - это нормальный цикл
				continue
			}

			if err := c.processMessage(ctx, message); err != nil {
				metrics.KafkaErrors.WithLabelValues(serviceName, c.reader.Config().Topic, "process").Inc()
				logger.Error().Err(err).Msg("не удалось обработать событие каталога")
				// Offset не коммитится - сообщение будет обработано повторно
				continue
			}

			if err := c.reader.CommitMessages(ctx, message); err != nil {
				logger.Error().Err(err).Msg("не удалось закоммитить offset")
			}
		}
	}
}

// processMessage применяет новое значение цены ко всем корзинам
func (c *PriceConsumer) processMessage(ctx context.Context, message kafka.Message) error {
	metrics.KafkaMessagesConsumed.WithLabelValues(serviceName, c.reader.Config().Topic, c.reader.Config().GroupID).Inc()

	var event entity.ItemEvent
	if err := json.Unmarshal(message.Value, &event); err != nil {
		return fmt.Errorf("failed to unmarshal item event: %w", err)
	}

	if event.EventType != entity.EventItemPriceChanged {
		return nil
	}

	logger.Info().Int("item_id", event.ItemID).Float64("new_price", event.NewPrice).
		Msg("получено событие изменения цены")

	return c.ApplyPriceChange(ctx, event)
}

// ApplyPriceChange обновляет цену товара во всех сохраненных корзинах
func (a *PriceApplier) ApplyPriceChange(ctx context.Context, event entity.ItemEvent) error {
	buyerIDs, err := a.baskets.BuyerIDs(ctx)
	if err != nil {
		return fmt.Errorf("failed to list buyers: %w", err)
	}

	for _, buyerID := range buyerIDs {
		basket, err := a.baskets.Get(ctx, buyerID)
		if err != nil {
			// Корзина могла истечь между SCAN и GET
			continue
		}

		if !basket.UpdateItemPrice(event.ItemID, event.NewPrice) {
			continue
		}

		if err := a.baskets.Save(ctx, basket); err != nil {
			return fmt.Errorf("failed to save basket for buyer %s: %w", buyerID, err)
		}
	}
	return nil
}
