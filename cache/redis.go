package cache

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"
	"go.uber.org/zap"
)

const DefaultPrefix = "storefront:catalog:"

// RedisCatalog shares cached listings across replicas.
type RedisCatalog struct {
	client *redis.Client
	ttl    time.Duration
	prefix string
	logger *zap.Logger
}

// ConnectRedis pings addr before handing back a client.
func ConnectRedis(ctx context.Context, addr, password string, db int) (*redis.Client, error) {
	client := redis.NewClient(&redis.Options{
		Addr:     addr,
		Password: password,
		DB:       db,
	})
	if err := client.Ping(ctx).Err(); err != nil {
		_ = client.Close()
		return nil, fmt.Errorf("connect redis %s: %w", addr, err)
	}
	return client, nil
}

func NewRedisCatalog(client *redis.Client, ttl time.Duration, logger *zap.Logger) *RedisCatalog {
	if ttl <= 0 {
		ttl = 5 * time.Minute
	}
	return &RedisCatalog{client: client, ttl: ttl, prefix: DefaultPrefix, logger: logger}
}

func (c *RedisCatalog) Get(ctx context.Context, key string, dst interface{}) bool {
	data, err := c.client.Get(ctx, c.prefix+key).Bytes()
	if err != nil {
		if err != redis.Nil {
			c.logger.Warn("catalog cache read failed", zap.String("key", key), zap.Error(err))
		}
		return false
	}
	return json.Unmarshal(data, dst) == nil
}

func (c *RedisCatalog) Set(ctx context.Context, key string, v interface{}) error {
	data, err := json.Marshal(v)
	if err != nil {
		return err
	}
	return c.client.Set(ctx, c.prefix+key, data, c.ttl).Err()
}

// Invalidate drops every key under the catalog prefix.
func (c *RedisCatalog) Invalidate(ctx context.Context) error {
	iter := c.client.Scan(ctx, 0, c.prefix+"*", 100).Iterator()
	var keys []string
	for iter.Next(ctx) {
		keys = append(keys, iter.Val())
	}
	if err := iter.Err(); err != nil {
		return err
	}
	if len(keys) == 0 {
		return nil
	}
	return c.client.Del(ctx, keys...).Err()
}
