// Package cache opens Redis connections for the cache pool. Each pooled
// Client owns a single connection; pooling is left to the pool package.
package cache

import (
	"context"
	"errors"
	"net"
	"strconv"
	"time"

	"github.com/ourchat/ourchat/internal/common"
	"github.com/ourchat/ourchat/internal/pool"
	"github.com/ourchat/ourchat/internal/server/config"
	"github.com/redis/go-redis/v9"
	"github.com/samber/oops"
)

// Commands is the set of cache operations repositories rely on.
type Commands interface {
	SetEx(ctx context.Context, key, value string, ttl time.Duration) error
	Get(ctx context.Context, key string) (string, error)
	Del(ctx context.Context, keys ...string) (int64, error)
}

type Client struct {
	rdb            *redis.Client
	commandTimeout time.Duration
}

// NewClient wraps rdb. A zero commandTimeout leaves deadlines to the caller.
func NewClient(rdb *redis.Client, commandTimeout time.Duration) *Client {
	return &Client{rdb: rdb, commandTimeout: commandTimeout}
}

func (c *Client) withTimeout(ctx context.Context) (context.Context, context.CancelFunc) {
	if c.commandTimeout <= 0 {
		return ctx, func() {}
	}
	return context.WithTimeout(ctx, c.commandTimeout)
}

func (c *Client) Ping(ctx context.Context) error {
	ctx, cancel := c.withTimeout(ctx)
	defer cancel()
	return c.rdb.Ping(ctx).Err()
}

func (c *Client) SetEx(ctx context.Context, key, value string, ttl time.Duration) error {
	ctx, cancel := c.withTimeout(ctx)
	defer cancel()
	if err := c.rdb.SetEx(ctx, key, value, ttl).Err(); err != nil {
		return oops.In("cache").With("key", key).Wrapf(err, "setex")
	}
	return nil
}

// Get returns common.ErrorNotFound for a missing key.
func (c *Client) Get(ctx context.Context, key string) (string, error) {
	ctx, cancel := c.withTimeout(ctx)
	defer cancel()
	v, err := c.rdb.Get(ctx, key).Result()
	if err != nil {
		if errors.Is(err, redis.Nil) {
			return "", common.ErrorNotFound
		}
		return "", oops.In("cache").With("key", key).Wrapf(err, "get")
	}
	return v, nil
}

func (c *Client) Del(ctx context.Context, keys ...string) (int64, error) {
	ctx, cancel := c.withTimeout(ctx)
	defer cancel()
	n, err := c.rdb.Del(ctx, keys...).Result()
	if err != nil {
		return 0, oops.In("cache").With("keys", keys).Wrapf(err, "del")
	}
	return n, nil
}

func (c *Client) Close() error {
	return c.rdb.Close()
}

// Options translates cfg into go-redis options for a single-connection client.
func Options(cfg config.CacheConfig) *redis.Options {
	return &redis.Options{
		Addr:         net.JoinHostPort(cfg.Host, strconv.Itoa(cfg.Port)),
		Password:     cfg.Password,
		DB:           cfg.DB,
		PoolSize:     1,
		MinIdleConns: 1,
		MaxRetries:   -1,
	}
}

// Connect opens a client and pings it before returning.
func Connect(ctx context.Context, cfg config.CacheConfig) (*Client, error) {
	c := NewClient(redis.NewClient(Options(cfg)), cfg.CommandTimeout)
	if err := c.Ping(ctx); err != nil {
		_ = c.Close()
		return nil, oops.In("cache").
			With("host", cfg.Host, "port", cfg.Port, "db", cfg.DB).
			Wrapf(err, "connect")
	}
	return c, nil
}

// Connector adapts Connect for pool.New.
func Connector(cfg config.CacheConfig) pool.Connector[*Client] {
	return func(ctx context.Context) (*Client, error) {
		return Connect(ctx, cfg)
	}
}
