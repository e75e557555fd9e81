package util

import (
	"context"
	"encoding/json"
	"fmt"
	"strconv"
	"time"

	"octobermarket/catalog-service/internal/app/catalog/entity"
	"octobermarket/pkg/metrics"

	"github.com/segmentio/kafka-go"
)

// KafkaPublisher отправляет события о товарах в топик item_events.
// Basket-service подписан на топик и применяет изменения цен к корзинам
type KafkaPublisher struct {
	writer *kafka.Writer
	topic  string
}

// NewKafkaPublisher создает producer для топика событий товаров
func NewKafkaPublisher(brokers []string, topic string) *KafkaPublisher {
	writer := &kafka.Writer{
		Addr:  kafka.TCP(brokers...),
		Topic: topic,
		// Балансировка по наименьшему количеству байт
		Balancer:     &kafka.LeastBytes{},
		BatchSize:    100,
		BatchTimeout: 10 * time.Millisecond,
	}

	return &KafkaPublisher{writer: writer, topic: topic}
}

// PublishItemEvent сериализует событие и отправляет его в Kafka.
// Ключ сообщения - ID товара: события одного товара попадают в одну
// партицию и сохраняют порядок
func (p *KafkaPublisher) PublishItemEvent(ctx context.Context, event entity.ItemEvent) error {
	data, err := json.Marshal(event)
	if err != nil {
		return fmt.Errorf("failed to marshal item event: %w", err)
	}

	message := kafka.Message{
		Key:   []byte(strconv.Itoa(event.ItemID)),
		Value: data,
		Time:  time.Now(),
	}

	if err := p.writer.WriteMessages(ctx, message); err != nil {
		metrics.KafkaErrors.WithLabelValues(serviceName, p.topic, "produce").Inc()
		return fmt.Errorf("failed to write message to kafka: %w", err)
	}

	metrics.KafkaMessagesProduced.WithLabelValues(serviceName, p.topic).Inc()
	return nil
}

// Close закрывает Kafka writer
func (p *KafkaPublisher) Close() error {
	return p.writer.Close()
}
