package cache

import (
	"context"
	"encoding/json"
	"time"

	"github.com/redis/go-redis/v9"
)

// Client wraps redis.Client but fails safe by swallowing connectivity errors.
// A nil *Client is valid and behaves as an always-empty cache.
type Client struct {
	client *redis.Client
}

// New creates a new Redis client. An empty addr disables caching.
func New(addr, password string, db int) *Client {
	if addr == "" {
		return nil
	}
	opts := &redis.Options{
		Addr:     addr,
		Password: password,
		DB:       db,
	}
	return &Client{client: redis.NewClient(opts)}
}

// NewFromRedis wraps an existing redis client.
func NewFromRedis(rdb *redis.Client) *Client {
	return &Client{client: rdb}
}

// MemberKey is the cache key of a member record.
func MemberKey(email string) string {
	return "member:" + email
}

// Get returns value or nil if missing or redis unavailable.
func (c *Client) Get(ctx context.Context, key string) ([]byte, error) {
	if c == nil || c.client == nil {
		return nil, nil
	}
	res, err := c.client.Get(ctx, key).Bytes()
	if err == redis.Nil {
		return nil, nil
	}
	if err != nil {
		// fail safe: behave like cache miss
		return nil, nil
	}
	return res, nil
}

// GetJSON decodes a cached value into dst. It reports false on a miss or when
// the cached bytes do not decode.
func (c *Client) GetJSON(ctx context.Context, key string, dst interface{}) bool {
	data, _ := c.Get(ctx, key)
	if data == nil {
		return false
	}
	return json.Unmarshal(data, dst) == nil
}

// Set stores value with TTL, ignoring redis errors.
func (c *Client) Set(ctx context.Context, key string, value []byte, ttl time.Duration) error {
	if c == nil || c.client == nil {
		return nil
	}
	if err := c.client.Set(ctx, key, value, ttl).Err(); err != nil {
		// fail safe: ignore redis errors
		return nil
	}
	return nil
}

// SetJSON encodes value and stores it with TTL.
func (c *Client) SetJSON(ctx context.Context, key string, value interface{}, ttl time.Duration) error {
	data, err := json.Marshal(value)
	if err != nil {
		return err
	}
	return c.Set(ctx, key, data, ttl)
}

// Delete removes keys, ignoring redis errors.
func (c *Client) Delete(ctx context.Context, keys ...string) error {
	if c == nil || c.client == nil || len(keys) == 0 {
		return nil
	}
	if err := c.client.Del(ctx, keys...).Err(); err != nil {
		return nil
	}
	return nil
}

// Ping reports whether redis answers. A disabled cache reports true.
func (c *Client) Ping(ctx context.Context) bool {
	if c == nil || c.client == nil {
		return true
	}
	return c.client.Ping(ctx).Err() == nil
}

// Close releases the underlying connection pool.
func (c *Client) Close() error {
	if c == nil || c.client == nil {
		return nil
	}
	return c.client.Close()
}
