package redis

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"
	"go.uber.org/zap"
)

var ErrNotFound = errors.New("key not found")

// Options locate the Redis instance.
type Options struct {
	Addr     string
	Password string
	DB       int
}

// Cache holds sessions, resumes, conversation state and rate limit counters.
type Cache struct {
	client *redis.Client
	logger *zap.Logger
}

// New connects and pings; the returned Cache is ready to use.
func New(opts Options, logger *zap.Logger) (*Cache, error) {
	client := redis.NewClient(&redis.Options{
		Addr:         opts.Addr,
		Password:     opts.Password,
		DB:           opts.DB,
		DialTimeout:  5 * time.Second,
		ReadTimeout:  3 * time.Second,
		WriteTimeout: 3 * time.Second,
		PoolSize:     10,
		MinIdleConns: 2,
	})

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	if err := client.Ping(ctx).Err(); err != nil {
		_ = client.Close()
		return nil, fmt.Errorf("failed to connect to redis at %s: %w", opts.Addr, err)
	}

	logger.Info("redis connected", zap.String("addr", opts.Addr), zap.Int("db", opts.DB))

	return NewWithClient(client, logger), nil
}

// NewWithClient wraps an existing client without checking the connection.
func NewWithClient(client *redis.Client, logger *zap.Logger) *Cache {
	return &Cache{client: client, logger: logger}
}

func (c *Cache) Close() error {
	return c.client.Close()
}

func (c *Cache) Ping(ctx context.Context) error {
	return c.client.Ping(ctx).Err()
}

// failed logs a command error against its key and wraps it.
func (c *Cache) failed(op, key string, err error) error {
	c.logger.Error("redis command failed",
		zap.String("op", op),
		zap.String("key", key),
		zap.Error(err),
	)
	return fmt.Errorf("redis %s: %w", op, err)
}

// Set stores value as JSON. A zero ttl keeps the key until deleted.
func (c *Cache) Set(ctx context.Context, key string, value any, ttl time.Duration) error {
	data, err := json.Marshal(value)
	if err != nil {
		return fmt.Errorf("encode %s: %w", key, err)
	}
	if err := c.client.Set(ctx, key, data, ttl).Err(); err != nil {
		return c.failed("set", key, err)
	}
	return nil
}

// Get decodes the JSON value at key into dest, or returns ErrNotFound.
func (c *Cache) Get(ctx context.Context, key string, dest any) error {
	data, err := c.client.Get(ctx, key).Bytes()
	switch {
	case errors.Is(err, redis.Nil):
		return ErrNotFound
	case err != nil:
		return c.failed("get", key, err)
	}

	if err := json.Unmarshal(data, dest); err != nil {
		return fmt.Errorf("decode %s: %w", key, err)
	}
	return nil
}

func (c *Cache) Delete(ctx context.Context, key string) error {
	if err := c.client.Del(ctx, key).Err(); err != nil {
		return c.failed("del", key, err)
	}
	return nil
}

func (c *Cache) SetString(ctx context.Context, key, value string, ttl time.Duration) error {
	if err := c.client.Set(ctx, key, value, ttl).Err(); err != nil {
		return c.failed("set", key, err)
	}
	return nil
}

// GetString returns ErrNotFound when the key does not exist.
func (c *Cache) GetString(ctx context.Context, key string) (string, error) {
	value, err := c.client.Get(ctx, key).Result()
	switch {
	case errors.Is(err, redis.Nil):
		return "", ErrNotFound
	case err != nil:
		return "", c.failed("get", key, err)
	}
	return value, nil
}

// IncrementWithExpiry increments a counter and (re)arms its TTL in one round trip.
func (c *Cache) IncrementWithExpiry(ctx context.Context, key string, ttl time.Duration) (int64, error) {
	pipe := c.client.TxPipeline()
	incr := pipe.Incr(ctx, key)
	pipe.Expire(ctx, key, ttl)

	if _, err := pipe.Exec(ctx); err != nil {
		return 0, c.failed("incr", key, err)
	}
	return incr.Val(), nil
}
