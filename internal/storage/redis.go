package storage

import (
	"context"
	"errors"
	"fmt"

	redis "github.com/redis/go-redis/v9"
)

// RedisConfig defines connection parameters for the Redis-backed store.
type RedisConfig struct {
	Addr     string
	Password string
	DB       int
}

// RedisStore persists values as plain Redis strings without expiry. Keys are
// already namespaced by the callers ("fitconnect_..."), so no extra prefix
// is applied here.
type RedisStore struct {
	client *redis.Client
}

// NewRedisStore connects to Redis with cfg and verifies the connection with
// a ping before returning.
func NewRedisStore(ctx context.Context, cfg RedisConfig) (*RedisStore, error) {
	client := redis.NewClient(&redis.Options{
		Addr:     cfg.Addr,
		Password: cfg.Password,
		DB:       cfg.DB,
	})
	if err := client.Ping(ctx).Err(); err != nil {
		return nil, fmt.Errorf("failed to connect to redis: %w", err)
	}
	return &RedisStore{client: client}, nil
}

func (s *RedisStore) Get(ctx context.Context, key string) (string, error) {
	value, err := s.client.Get(ctx, key).Result()
	if err != nil {
		if errors.Is(err, redis.Nil) {
			return "", ErrNotFound
		}
		return "", err
	}
	return value, nil
}

func (s *RedisStore) Set(ctx context.Context, key, value string) error {
	return s.client.Set(ctx, key, value, 0).Err()
}

func (s *RedisStore) Delete(ctx context.Context, key string) error {
	return s.client.Del(ctx, key).Err()
}

// Close shuts down the underlying Redis client.
func (s *RedisStore) Close() error {
	return s.client.Close()
}
