package store

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"

	"zentro/internal/models"
)

// RedisHandoff backs the handoff slot with Redis so the confirmation read can
// land on a different instance than the checkout write. GETDEL keeps the
// read-once contract atomic.
type RedisHandoff struct {
	client *redis.Client
	ttl    time.Duration
}

// NewRedisHandoff connects to Redis at addr and verifies the connection.
func NewRedisHandoff(ctx context.Context, addr string, ttl time.Duration) (*RedisHandoff, error) {
	client := redis.NewClient(&redis.Options{Addr: addr})
	if err := client.Ping(ctx).Err(); err != nil {
		return nil, fmt.Errorf("redis ping failed: %w", err)
	}
	return &RedisHandoff{client: client, ttl: ttl}, nil
}

func (s *RedisHandoff) key(k string) string {
	return "zentro:handoff:" + k
}

// Put stores the serialized summary under the session key with a TTL, so an
// abandoned confirmation never leaves a slot behind forever.
func (s *RedisHandoff) Put(ctx context.Context, key string, summary models.TransactionSummary) error {
	data, err := json.Marshal(summary)
	if err != nil {
		return fmt.Errorf("marshal summary: %w", err)
	}
	if err := s.client.Set(ctx, s.key(key), data, s.ttl).Err(); err != nil {
		return fmt.Errorf("store summary: %w", err)
	}
	return nil
}

// Take atomically reads and deletes the slot.
func (s *RedisHandoff) Take(ctx context.Context, key string) (*models.TransactionSummary, error) {
	data, err := s.client.GetDel(ctx, s.key(key)).Bytes()
	if errors.Is(err, redis.Nil) {
		return nil, ErrNoSummary
	}
	if err != nil {
		return nil, fmt.Errorf("read summary: %w", err)
	}
	var summary models.TransactionSummary
	if err := json.Unmarshal(data, &summary); err != nil {
		return nil, fmt.Errorf("decode summary: %w", err)
	}
	return &summary, nil
}

// Close releases the underlying Redis connection.
func (s *RedisHandoff) Close() error {
	return s.client.Close()
}
