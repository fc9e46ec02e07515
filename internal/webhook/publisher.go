package webhook

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"github.com/Eliseu75766/dashboard-riscos-logisticos/internal/models"
	"github.com/google/uuid"
	"github.com/redis/go-redis/v9"
)

//go:generate mockgen -source=publisher.go -destination=mocks/mock_publisher.go -package=mocks

const (
	webhookQueueKey = "webhook_events"

	// EventDatasetGenerated - тип события о новом наборе данных
	EventDatasetGenerated = "dataset.generated"
)

// WebhookEvent - структура для данных вебхука
type WebhookEvent struct {
	Type          string                 `json:"type"`
	RunID         uuid.UUID              `json:"run_id"`
	Seed          int64                  `json:"seed"`
	RowCount      int                    `json:"row_count"`
	TotalCost     int64                  `json:"total_cost"`
	CarrierCounts map[models.Carrier]int `json:"carrier_counts"`
	OutputPath    string                 `json:"output_path,omitempty"`
	Timestamp     time.Time              `json:"timestamp"`
}

// NewDatasetGeneratedEvent строит событие по итогам запуска генерации
func NewDatasetGeneratedEvent(run *models.GenerationRun) WebhookEvent {
	return WebhookEvent{
		Type:          EventDatasetGenerated,
		RunID:         run.ID,
		Seed:          run.Seed,
		RowCount:      run.RowCount,
		TotalCost:     run.TotalCost,
		CarrierCounts: run.CarrierCounts,
		OutputPath:    run.OutputPath,
		Timestamp:     run.GeneratedAt,
	}
}

// WebhookPublisher - интерфейс для публикации вебхуков
type WebhookPublisher interface {
	Publish(ctx context.Context, event WebhookEvent) error
}

// RedisWebhookPublisher - реализация WebhookPublisher, использующая Redis
type RedisWebhookPublisher struct {
	redisClient *redis.Client
}

// NewRedisWebhookPublisher создает новый RedisWebhookPublisher
func NewRedisWebhookPublisher(client *redis.Client) *RedisWebhookPublisher {
	return &RedisWebhookPublisher{
		redisClient: client,
	}
}

// Publish публикует событие вебхука в очередь Redis
func (p *RedisWebhookPublisher) Publish(ctx context.Context, event WebhookEvent) error {
	payload, err := json.Marshal(event)
	if err != nil {
		return fmt.Errorf("failed to marshal webhook event: %w", err)
	}

	// LPUSH в голову списка, воркер забирает из хвоста через BRPOP
	if err := p.redisClient.LPush(ctx, webhookQueueKey, payload).Err(); err != nil {
		return fmt.Errorf("failed to publish webhook event to Redis: %w", err)
	}
	return nil
}
