package repository

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/Eliseu75766/dashboard-riscos-logisticos/internal/report"
	"github.com/Eliseu75766/dashboard-riscos-logisticos/internal/service"
	"github.com/redis/go-redis/v9"
)

const summaryKeyPrefix = "report:summary:"

// RedisSummaryCache хранит показатели панели в Redis с ограниченным сроком жизни
type RedisSummaryCache struct {
	redisClient *redis.Client
	ttl         time.Duration
}

func NewRedisSummaryCache(redisClient *redis.Client, ttl time.Duration) service.SummaryCache {
	return &RedisSummaryCache{
		redisClient: redisClient,
		ttl:         ttl,
	}
}

// GetSummary пытается получить показатели из Redis
func (c *RedisSummaryCache) GetSummary(ctx context.Context, key string) (*report.Summary, error) {
	val, err := c.redisClient.Get(ctx, summaryKeyPrefix+key).Bytes()
	if err != nil {
		if errors.Is(err, redis.Nil) {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to get summary from cache: %w", err)
	}

	summary := &report.Summary{}
	if err := json.Unmarshal(val, summary); err != nil {
		return nil, fmt.Errorf("failed to unmarshal summary from cache: %w", err)
	}
	return summary, nil
}

// SetSummary сохраняет показатели в Redis
func (c *RedisSummaryCache) SetSummary(ctx context.Context, key string, summary report.Summary) error {
	val, err := json.Marshal(summary)
	if err != nil {
		return fmt.Errorf("failed to marshal summary for cache: %w", err)
	}
	if err := c.redisClient.Set(ctx, summaryKeyPrefix+key, val, c.ttl).Err(); err != nil {
		return fmt.Errorf("failed to set summary in cache: %w", err)
	}
	return nil
}

// Invalidate удаляет все закэшированные показатели после смены набора
func (c *RedisSummaryCache) Invalidate(ctx context.Context) error {
	iter := c.redisClient.Scan(ctx, 0, summaryKeyPrefix+"*", 100).Iterator()
	var keys []string
	for iter.Next(ctx) {
		keys = append(keys, iter.Val())
	}
	if err := iter.Err(); err != nil {
		return fmt.Errorf("failed to scan summary cache: %w", err)
	}
	if len(keys) == 0 {
		return nil
	}
	if err := c.redisClient.Del(ctx, keys...).Err(); err != nil {
		return fmt.Errorf("failed to invalidate summary cache: %w", err)
	}
	return nil
}
