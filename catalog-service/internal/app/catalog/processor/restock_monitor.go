package processor

import (
	"context"
	"time"

	"octobermarket/catalog-service/internal/app/catalog/entity"
	"octobermarket/catalog-service/internal/app/catalog/repository"
	"octobermarket/catalog-service/internal/app/catalog/util"
	"octobermarket/pkg/logger"

	"github.com/robfig/cron/v3"
)

// RestockMonitor периодически находит товары с остатком ниже порога
// дозаказа, помечает их флагом on_reorder и публикует RESTOCK_NEEDED.
// Флаг предотвращает повторные события по одному товару
type RestockMonitor struct {
	cron      *cron.Cron
	items     repository.ItemRepository
	publisher util.EventPublisher
}

// NewRestockMonitor создает монитор остатков
func NewRestockMonitor(items repository.ItemRepository, publisher util.EventPublisher) *RestockMonitor {
	return &RestockMonitor{
		cron:      cron.New(),
		items:     items,
		publisher: publisher,
	}
}

// Start запускает периодическую проверку по cron-расписанию
// и выполняет первый проход сразу
func (m *RestockMonitor) Start(ctx context.Context, schedule string) error {
	logger.Info().Str("schedule", schedule).Msg("запуск монитора остатков")

	_, err := m.cron.AddFunc(schedule, func() {
		m.Run(ctx)
	})
	if err != nil {
		return err
	}

	m.cron.Start()
	m.Run(ctx)
	return nil
}

// Run выполняет один проход проверки остатков
func (m *RestockMonitor) Run(ctx context.Context) {
	items, err := m.items.ListBelowRestock(ctx)
	if err != nil {
		logger.Error().Err(err).Msg("не удалось получить товары ниже порога дозаказа")
		return
	}

	for _, item := range items {
		event := entity.ItemEvent{
			EventType: entity.EventRestockNeeded,
			ItemID:    item.ID,
			Slug:      item.Slug,
			Stock:     item.AvailableStock,
			Timestamp: time.Now().UTC(),
		}
		if err := m.publisher.PublishItemEvent(ctx, event); err != nil {
			logger.Error().Err(err).Int("item_id", item.ID).Msg("не удалось опубликовать событие дозаказа")
			continue
		}

		// Флаг ставится только после успешной публикации
		if err := m.items.SetOnReorder(ctx, item.ID, true); err != nil {
			logger.Error().Err(err).Int("item_id", item.ID).Msg("не удалось установить флаг дозаказа")
		}
	}

	if len(items) > 0 {
		logger.Info().Int("count", len(items)).Msg("обнаружены товары ниже порога дозаказа")
	}
}

// Stop останавливает планировщик и дожидается завершения текущего прохода
func (m *RestockMonitor) Stop() {
	ctx := m.cron.Stop()
	<-ctx.Done()
	logger.Info().Msg("монитор остатков остановлен")
}
