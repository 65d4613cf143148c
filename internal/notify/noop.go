// Copyright 2026 Canonical Ltd.
// SPDX-License-Identifier: AGPL-3.0

package notify

import (
	"context"

	"github.com/indevian-dev/TIKTAK-MONOREPO-sub000/internal/logging"
)

var _ PublisherInterface = (*NoopPublisher)(nil)

// NoopPublisher only logs what would have been delivered.
type NoopPublisher struct {
	logger logging.LoggerInterface
}

func (p *NoopPublisher) Publish(_ context.Context, key string, body []byte) error {
	p.logger.Debugw("notification dropped", "key", key, "body", string(body))
	return nil
}

func (p *NoopPublisher) Close() error {
	return nil
}

func NewNoopPublisher(logger logging.LoggerInterface) *NoopPublisher {
	return &NoopPublisher{logger: logger}
}
