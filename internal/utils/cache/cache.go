package cache

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"
)

// TTLs for the read-through caches. Stale reads inside these windows are
// tolerated; writes delete the key eagerly.
const (
	TTLCart       = 1 * time.Minute
	TTLFoods      = 5 * time.Minute
	TTLCategories = 10 * time.Minute
	TTLSettings   = 1 * time.Hour
)

const (
	KeyCategories   = "categories_list"
	KeySiteSettings = "site_settings"
)

func KeyCart(cartID string) string {
	return fmt.Sprintf("cart_items_%s", cartID)
}

func KeyFoods(categoryID string) string {
	if categoryID == "" {
		categoryID = "all"
	}
	return fmt.Sprintf("foods_list_%s", categoryID)
}

type (
	// Client is the injected cache dependency. Get reports a hit after
	// unmarshalling into dest; misses and transport errors both read as a
	// miss so callers always fall through to the database.
	Client interface {
		Get(ctx context.Context, key string, dest interface{}) bool
		Set(ctx context.Context, key string, value interface{}, ttl time.Duration) error
		Delete(ctx context.Context, keys ...string) error
	}

	redisClient struct {
		rdb *redis.Client
	}
)

// NewRedisClient connects to Redis and verifies the connection with a ping.
func NewRedisClient(addr, password string) (Client, error) {
	rdb := redis.NewClient(&redis.Options{
		Addr:     addr,
		Password: password,
		DB:       0,
	})
	if err := rdb.Ping(context.Background()).Err(); err != nil {
		return nil, fmt.Errorf("cache: redis ping: %w", err)
	}
	return &redisClient{rdb: rdb}, nil
}

func (c *redisClient) Get(ctx context.Context, key string, dest interface{}) bool {
	val, err := c.rdb.Get(ctx, key).Result()
	if err != nil {
		return false
	}
	if err := json.Unmarshal([]byte(val), dest); err != nil {
		return false
	}
	return true
}

func (c *redisClient) Set(ctx context.Context, key string, value interface{}, ttl time.Duration) error {
	data, err := json.Marshal(value)
	if err != nil {
		return err
	}
	return c.rdb.Set(ctx, key, data, ttl).Err()
}

func (c *redisClient) Delete(ctx context.Context, keys ...string) error {
	if len(keys) == 0 {
		return nil
	}
	return c.rdb.Del(ctx, keys...).Err()
}
