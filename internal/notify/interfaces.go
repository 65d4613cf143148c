// Copyright 2026 Canonical Ltd.
// SPDX-License-Identifier: AGPL-3.0

package notify

import (
	"context"

	"github.com/segmentio/kafka-go"
)

type NotifierInterface interface {
	Notify(context.Context, *Notification)
	Close() error
}

// PublisherInterface delivers an encoded notification to a broker.
type PublisherInterface interface {
	Publish(ctx context.Context, key string, body []byte) error
	Close() error
}

// KafkaWriterInterface is the subset of kafka.Writer used by the publisher.
type KafkaWriterInterface interface {
	WriteMessages(ctx context.Context, msgs ...kafka.Message) error
	Close() error
}
