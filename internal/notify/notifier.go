// Copyright 2026 Canonical Ltd.
// SPDX-License-Identifier: AGPL-3.0

package notify

import (
	"context"
	"encoding/json"
	"sync"
	"time"

	"github.com/indevian-dev/TIKTAK-MONOREPO-sub000/internal/logging"
	"github.com/indevian-dev/TIKTAK-MONOREPO-sub000/internal/monitoring"
	"github.com/indevian-dev/TIKTAK-MONOREPO-sub000/internal/tracing"
)

var _ NotifierInterface = (*Notifier)(nil)

// Notifier sends notifications fire-and-forget. Delivery runs detached from
// the caller's cancellation and is bounded by timeout.
type Notifier struct {
	publisher PublisherInterface
	timeout   time.Duration
	now       func() time.Time

	wg sync.WaitGroup

	tracer  tracing.TracingInterface
	monitor monitoring.MonitorInterface
	logger  logging.LoggerInterface
}

func (n *Notifier) Notify(ctx context.Context, notification *Notification) {
	if notification == nil {
		return
	}

	if notification.CreatedAt.IsZero() {
		notification.CreatedAt = n.now()
	}

	body, err := json.Marshal(notification)
	if err != nil {
		n.logger.Errorf("failed to encode %s notification: %v", notification.Kind, err)
		return
	}

	key := notification.Key()
	detached := context.WithoutCancel(ctx)

	n.wg.Add(1)
	go func() {
		defer n.wg.Done()

		ctx, cancel := context.WithTimeout(detached, n.timeout)
		defer cancel()

		ctx, span := n.tracer.Start(ctx, "notify.Notifier.Notify")
		defer span.End()

		err := n.publisher.Publish(ctx, key, body)

		available := 1.0
		if err != nil {
			available = 0.0
			n.logger.Warnf("failed to deliver %s notification: %v", notification.Kind, err)
		}

		if mErr := n.monitor.SetDependencyAvailability(map[string]string{"component": "notifier"}, available); mErr != nil {
			n.logger.Debugf("failed to record notifier availability: %v", mErr)
		}
	}()
}

// Close waits for in-flight deliveries before closing the publisher.
func (n *Notifier) Close() error {
	n.wg.Wait()
	return n.publisher.Close()
}

func NewNotifier(publisher PublisherInterface, timeout time.Duration, tracer tracing.TracingInterface, monitor monitoring.MonitorInterface, logger logging.LoggerInterface) *Notifier {
	n := new(Notifier)

	n.publisher = publisher
	n.timeout = timeout
	n.now = time.Now

	n.tracer = tracer
	n.monitor = monitor
	n.logger = logger

	return n
}
