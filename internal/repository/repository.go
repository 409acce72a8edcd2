package repository

import (
	"context"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"

	"smsbridge/internal/service"
)

const keyPrefix = "smsbridge:msgid:"

// RedisRepo records delivered provider message IDs so redeliveries can be dropped.
type RedisRepo struct {
	client *redis.Client
	ttl    time.Duration
}

func NewRedisRepo(ctx context.Context, addr, password string, ttl time.Duration) (*RedisRepo, error) {
	client := redis.NewClient(&redis.Options{
		Addr:     addr,
		Password: password,
		DB:       0,
	})
	if err := client.Ping(ctx).Err(); err != nil {
		return nil, fmt.Errorf("failed to connect to redis: %w", err)
	}
	return &RedisRepo{client: client, ttl: ttl}, nil
}

var _ service.MessageCache = (*RedisRepo)(nil)

func (r *RedisRepo) IsDelivered(ctx context.Context, messageID string) (bool, error) {
	n, err := r.client.Exists(ctx, keyPrefix+messageID).Result()
	if err != nil {
		return false, err
	}
	return n > 0, nil
}

func (r *RedisRepo) StoreDelivered(ctx context.Context, messageID string, deliveredAt time.Time) error {
	return r.client.Set(ctx, keyPrefix+messageID, deliveredAt.Format(time.RFC3339), r.ttl).Err()
}

func (r *RedisRepo) Close() error {
	return r.client.Close()
}
