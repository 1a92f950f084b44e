package database

import (
	"context"
	"crypto/sha256"
	"encoding/hex"
	"encoding/json"
	stderrors "errors"
	"fmt"
	"time"

	"adsynth-workers/internal/common/config"
	"adsynth-workers/internal/models"

	"github.com/redis/go-redis/v9"
)

const (
	adSetKeyPrefix    = "adsynth:adset:"
	brandKitKeyPrefix = "adsynth:brandkit:"
)

type RedisClient struct {
	Client redis.Cmdable
}

func NewRedis(cfg config.RedisConfig) (*RedisClient, error) {
	rdb := redis.NewClient(&redis.Options{
		Addr:         cfg.Address,
		Password:     cfg.Password,
		DB:           cfg.DB,
		DialTimeout:  5 * time.Second,
		ReadTimeout:  3 * time.Second,
		WriteTimeout: 3 * time.Second,
		PoolSize:     10,
		MinIdleConns: 5,
	})

	return &RedisClient{Client: rdb}, nil
}

// NewRedisFromClient wraps an existing client, e.g. one backed by miniredis or redismock.
func NewRedisFromClient(c redis.Cmdable) *RedisClient {
	return &RedisClient{Client: c}
}

func (c *RedisClient) Ping(ctx context.Context) error {
	if err := c.Client.Ping(ctx).Err(); err != nil {
		return fmt.Errorf("redis ping failed: %w", err)
	}
	return nil
}

func (c *RedisClient) Close() error {
	if closer, ok := c.Client.(interface{ Close() error }); ok {
		return closer.Close()
	}
	return nil
}

// GetJSON decodes the value stored at key into dst. A missing key yields ErrNotFound.
func (c *RedisClient) GetJSON(ctx context.Context, key string, dst interface{}) error {
	raw, err := c.Client.Get(ctx, key).Bytes()
	if stderrors.Is(err, redis.Nil) {
		return ErrNotFound
	}
	if err != nil {
		return fmt.Errorf("redis get %s: %w", key, err)
	}
	if err := json.Unmarshal(raw, dst); err != nil {
		return fmt.Errorf("decode %s: %w", key, err)
	}
	return nil
}

func (c *RedisClient) SetJSON(ctx context.Context, key string, value interface{}, ttl time.Duration) error {
	raw, err := json.Marshal(value)
	if err != nil {
		return fmt.Errorf("encode %s: %w", key, err)
	}
	if err := c.Client.Set(ctx, key, raw, ttl).Err(); err != nil {
		return fmt.Errorf("redis set %s: %w", key, err)
	}
	return nil
}

// ProfileHash identifies a profile for caching and persistence. Equal profiles
// produce the same ad set apart from the timestamp.
func ProfileHash(p models.Profile) string {
	raw, _ := json.Marshal(p)
	sum := sha256.Sum256(raw)
	return hex.EncodeToString(sum[:])
}

func (c *RedisClient) GetAdSet(ctx context.Context, profileHash string) (*models.AdSet, error) {
	var set models.AdSet
	if err := c.GetJSON(ctx, adSetKeyPrefix+profileHash, &set); err != nil {
		return nil, err
	}
	return &set, nil
}

func (c *RedisClient) SetAdSet(ctx context.Context, profileHash string, set *models.AdSet, ttl time.Duration) error {
	return c.SetJSON(ctx, adSetKeyPrefix+profileHash, set, ttl)
}

// GetBrandKitDefinition returns a cached brand kit definition.
func (c *RedisClient) GetBrandKitDefinition(ctx context.Context, id string) ([]byte, error) {
	raw, err := c.Client.Get(ctx, brandKitKeyPrefix+id).Bytes()
	if stderrors.Is(err, redis.Nil) {
		return nil, ErrNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("redis get brand kit %s: %w", id, err)
	}
	return raw, nil
}

func (c *RedisClient) SetBrandKitDefinition(ctx context.Context, id string, definition []byte, ttl time.Duration) error {
	if err := c.Client.Set(ctx, brandKitKeyPrefix+id, definition, ttl).Err(); err != nil {
		return fmt.Errorf("redis set brand kit %s: %w", id, err)
	}
	return nil
}
