// Copyright 2026 Canonical Ltd.
// SPDX-License-Identifier: AGPL-3.0

package notify

import (
	"context"
	"fmt"

	"github.com/segmentio/kafka-go"
)

var _ PublisherInterface = (*KafkaPublisher)(nil)

type KafkaPublisher struct {
	writer KafkaWriterInterface
}

func (p *KafkaPublisher) Publish(ctx context.Context, key string, body []byte) error {
	if err := p.writer.WriteMessages(ctx, kafka.Message{Key: []byte(key), Value: body}); err != nil {
		return fmt.Errorf("kafka write failed: %w", err)
	}
	return nil
}

func (p *KafkaPublisher) Close() error {
	return p.writer.Close()
}

func NewKafkaPublisher(brokers []string, topic string) *KafkaPublisher {
	return NewKafkaPublisherWithWriter(
		&kafka.Writer{
			Addr:                   kafka.TCP(brokers...),
			Topic:                  topic,
			Balancer:               &kafka.Hash{},
			AllowAutoTopicCreation: true,
		},
	)
}

func NewKafkaPublisherWithWriter(w KafkaWriterInterface) *KafkaPublisher {
	return &KafkaPublisher{writer: w}
}
