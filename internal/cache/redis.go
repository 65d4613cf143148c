// Copyright 2026 Canonical Ltd.
// SPDX-License-Identifier: AGPL-3.0

package cache

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"

	"github.com/indevian-dev/TIKTAK-MONOREPO-sub000/internal/logging"
	"github.com/indevian-dev/TIKTAK-MONOREPO-sub000/internal/monitoring"
	"github.com/indevian-dev/TIKTAK-MONOREPO-sub000/internal/tracing"
)

var ErrMiss = errors.New("cache miss")

var _ CacheInterface = (*RedisCache)(nil)

type RedisCache struct {
	client *redis.Client

	tracer  tracing.TracingInterface
	monitor monitoring.MonitorInterface
	logger  logging.LoggerInterface
}

func (c *RedisCache) Get(ctx context.Context, key string) ([]byte, error) {
	ctx, span := c.tracer.Start(ctx, "cache.RedisCache.Get")
	defer span.End()

	v, err := c.client.Get(ctx, key).Bytes()
	if errors.Is(err, redis.Nil) {
		return nil, ErrMiss
	}
	c.recordAvailability(err)
	if err != nil {
		return nil, fmt.Errorf("failed to get %s: %w", key, err)
	}

	return v, nil
}

func (c *RedisCache) Set(ctx context.Context, key string, value []byte, ttl time.Duration) error {
	ctx, span := c.tracer.Start(ctx, "cache.RedisCache.Set")
	defer span.End()

	err := c.client.Set(ctx, key, value, ttl).Err()
	c.recordAvailability(err)
	if err != nil {
		return fmt.Errorf("failed to set %s: %w", key, err)
	}

	return nil
}

func (c *RedisCache) Delete(ctx context.Context, keys ...string) error {
	ctx, span := c.tracer.Start(ctx, "cache.RedisCache.Delete")
	defer span.End()

	if len(keys) == 0 {
		return nil
	}

	err := c.client.Del(ctx, keys...).Err()
	c.recordAvailability(err)
	if err != nil {
		return fmt.Errorf("failed to delete %v: %w", keys, err)
	}

	return nil
}

func (c *RedisCache) Ping(ctx context.Context) error {
	err := c.client.Ping(ctx).Err()
	c.recordAvailability(err)
	return err
}

func (c *RedisCache) Close() error {
	return c.client.Close()
}

func (c *RedisCache) recordAvailability(err error) {
	available := 1.0
	if err != nil {
		available = 0.0
	}

	if mErr := c.monitor.SetDependencyAvailability(map[string]string{"component": "redis"}, available); mErr != nil {
		c.logger.Debugf("failed to record redis availability: %v", mErr)
	}
}

func NewRedisCache(url string, tracer tracing.TracingInterface, monitor monitoring.MonitorInterface, logger logging.LoggerInterface) (*RedisCache, error) {
	opts, err := redis.ParseURL(url)
	if err != nil {
		return nil, fmt.Errorf("invalid redis url: %w", err)
	}

	return NewRedisCacheWithClient(redis.NewClient(opts), tracer, monitor, logger), nil
}

func NewRedisCacheWithClient(client *redis.Client, tracer tracing.TracingInterface, monitor monitoring.MonitorInterface, logger logging.LoggerInterface) *RedisCache {
	c := new(RedisCache)

	c.client = client
	c.tracer = tracer
	c.monitor = monitor
	c.logger = logger

	return c
}
