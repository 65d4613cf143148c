// Copyright 2026 Canonical Ltd.
// SPDX-License-Identifier: AGPL-3.0

package cache

import (
	"context"
	"testing"
	"time"

	"github.com/redis/go-redis/v9"
	"github.com/stretchr/testify/assert"

	"github.com/indevian-dev/TIKTAK-MONOREPO-sub000/internal/logging"
	"github.com/indevian-dev/TIKTAK-MONOREPO-sub000/internal/monitoring"
	"github.com/indevian-dev/TIKTAK-MONOREPO-sub000/internal/tracing"
)

func TestNoopCache(t *testing.T) {
	c := NewNoopCache()
	ctx := context.Background()

	assert.NoError(t, c.Set(ctx, "k", []byte("v"), time.Minute))

	_, err := c.Get(ctx, "k")
	assert.ErrorIs(t, err, ErrMiss)

	assert.NoError(t, c.Delete(ctx, "k"))
	assert.NoError(t, c.Ping(ctx))
}

func TestNewRedisCache_InvalidURL(t *testing.T) {
	logger := logging.NewNoopLogger()

	_, err := NewRedisCache("not a url", tracing.NewNoopTracer(), monitoring.NewNoopMonitor("test", logger), logger)
	assert.Error(t, err)
}

func TestRedisCache_Unreachable(t *testing.T) {
	logger := logging.NewNoopLogger()
	client := redis.NewClient(&redis.Options{Addr: "127.0.0.1:1", DialTimeout: 50 * time.Millisecond, MaxRetries: -1})

	c := NewRedisCacheWithClient(client, tracing.NewNoopTracer(), monitoring.NewNoopMonitor("test", logger), logger)
	defer c.Close()

	_, err := c.Get(context.Background(), "k")
	assert.Error(t, err)
	assert.NotErrorIs(t, err, ErrMiss)

	assert.NoError(t, c.Delete(context.Background()))
}
