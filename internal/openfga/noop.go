// Copyright 2026 Canonical Ltd.
// SPDX-License-Identifier: AGPL-3.0

package openfga

import (
	"context"

	"github.com/indevian-dev/TIKTAK-MONOREPO-sub000/internal/logging"
	"github.com/indevian-dev/TIKTAK-MONOREPO-sub000/internal/monitoring"
	"github.com/indevian-dev/TIKTAK-MONOREPO-sub000/internal/tracing"
)

var _ OpenFGAClientInterface = (*NoopClient)(nil)

// NoopClient allows every check and drops every write.
type NoopClient struct {
	tracer  tracing.TracingInterface
	monitor monitoring.MonitorInterface
	logger  logging.LoggerInterface
}

func (c *NoopClient) Check(ctx context.Context, user, relation, object string, _ ...Tuple) (bool, error) {
	_, span := c.tracer.Start(ctx, "openfga.NoopClient.Check")
	defer span.End()

	return true, nil
}

func (c *NoopClient) WriteTuples(ctx context.Context, _ ...Tuple) error {
	_, span := c.tracer.Start(ctx, "openfga.NoopClient.WriteTuples")
	defer span.End()

	return nil
}

func (c *NoopClient) DeleteTuples(ctx context.Context, _ ...Tuple) error {
	_, span := c.tracer.Start(ctx, "openfga.NoopClient.DeleteTuples")
	defer span.End()

	return nil
}

func NewNoopClient(tracer tracing.TracingInterface, monitor monitoring.MonitorInterface, logger logging.LoggerInterface) *NoopClient {
	c := new(NoopClient)

	c.tracer = tracer
	c.monitor = monitor
	c.logger = logger

	return c
}
