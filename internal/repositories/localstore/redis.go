package localstore

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"
)

const (
	// defaultSettingsKey is the hash holding shared settings
	defaultSettingsKey = "bonedash:settings"

	redisOpTimeout = 3 * time.Second
)

// RedisConfig holds configuration for the Redis-backed store
type RedisConfig struct {
	// Redis client
	RedisClient *redis.Client

	// Key of the hash, defaults to bonedash:settings
	Key string
}

// redisStore keeps every key as a field of one Redis hash so that every
// process sharing the server sees the same competition window
type redisStore struct {
	client *redis.Client
	key    string
}

// NewRedis creates a store backed by a Redis hash
func NewRedis(cfg *RedisConfig) (*redisStore, error) {
	if cfg == nil {
		return nil, errors.New("config cannot be nil")
	}

	if cfg.RedisClient == nil {
		return nil, errors.New("redis client cannot be nil")
	}

	key := cfg.Key
	if key == "" {
		key = defaultSettingsKey
	}

	return &redisStore{
		client: cfg.RedisClient,
		key:    key,
	}, nil
}

func (r *redisStore) Get(key string) (string, bool, error) {
	ctx, cancel := context.WithTimeout(context.Background(), redisOpTimeout)
	defer cancel()

	v, err := r.client.HGet(ctx, r.key, key).Result()
	if errors.Is(err, redis.Nil) {
		return "", false, nil
	}
	if err != nil {
		return "", false, fmt.Errorf("failed to get %s: %w", key, err)
	}
	return v, true, nil
}

func (r *redisStore) Set(key, value string) error {
	ctx, cancel := context.WithTimeout(context.Background(), redisOpTimeout)
	defer cancel()

	if err := r.client.HSet(ctx, r.key, key, value).Err(); err != nil {
		return fmt.Errorf("failed to set %s: %w", key, err)
	}
	return nil
}

func (r *redisStore) Delete(key string) error {
	ctx, cancel := context.WithTimeout(context.Background(), redisOpTimeout)
	defer cancel()

	if err := r.client.HDel(ctx, r.key, key).Err(); err != nil {
		return fmt.Errorf("failed to delete %s: %w", key, err)
	}
	return nil
}
