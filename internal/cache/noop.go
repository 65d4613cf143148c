// Copyright 2026 Canonical Ltd.
// SPDX-License-Identifier: AGPL-3.0

package cache

import (
	"context"
	"time"
)

var _ CacheInterface = (*NoopCache)(nil)

// NoopCache never holds anything; every read is a miss.
type NoopCache struct{}

func (NoopCache) Get(context.Context, string) ([]byte, error) {
	return nil, ErrMiss
}

func (NoopCache) Set(context.Context, string, []byte, time.Duration) error {
	return nil
}

func (NoopCache) Delete(context.Context, ...string) error {
	return nil
}

func (NoopCache) Ping(context.Context) error {
	return nil
}

func NewNoopCache() *NoopCache {
	return new(NoopCache)
}
