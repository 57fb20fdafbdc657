package redisx

import (
	"context"
	"fmt"
	"time"

	"github.com/Yaseeru/glowgroove/internal/config"

	"github.com/redis/go-redis/v9"
)

const keyWebhookDedup = "glowgroove:dedup:webhook:%s"

func New(ctx context.Context, cfg config.Redis) (*redis.Client, error) {
	client := redis.NewClient(&redis.Options{
		Addr:     cfg.Addr,
		Password: cfg.Password,
		DB:       cfg.DB,
	})
	if err := client.Ping(ctx).Err(); err != nil {
		return nil, fmt.Errorf("failed to ping redis: %w", err)
	}
	return client, nil
}

// DedupStore short-circuits repeated webhook deliveries. It is a fast
// path only: a miss or a redis outage falls through to the database
// claim, which stays the source of truth.
type DedupStore struct {
	client *redis.Client
	ttl    time.Duration
}

func NewDedupStore(client *redis.Client, ttl time.Duration) *DedupStore {
	return &DedupStore{client: client, ttl: ttl}
}

func (s *DedupStore) Seen(ctx context.Context, key string) (bool, error) {
	n, err := s.client.Exists(ctx, fmt.Sprintf(keyWebhookDedup, key)).Result()
	if err != nil {
		return false, fmt.Errorf("failed to check dedup key: %w", err)
	}
	return n > 0, nil
}

func (s *DedupStore) Mark(ctx context.Context, key string) error {
	err := s.client.Set(ctx, fmt.Sprintf(keyWebhookDedup, key), "1", s.ttl).Err()
	if err != nil {
		return fmt.Errorf("failed to set dedup key: %w", err)
	}
	return nil
}
