// Copyright 2026 Canonical Ltd.
// SPDX-License-Identifier: AGPL-3.0

package tracing

import (
	"context"
	"testing"

	"github.com/indevian-dev/TIKTAK-MONOREPO-sub000/internal/logging"
)

func TestNewTracerDisabledIsNoop(t *testing.T) {
	tracer := NewTracer(NewConfig(false, "", "", logging.NewNoopLogger()))

	_, span := tracer.Start(context.Background(), "test.Span")
	defer span.End()

	if span.SpanContext().IsValid() {
		t.Error("expected noop span to carry an invalid span context")
	}
}

func TestNoopTracer(t *testing.T) {
	ctx, span := NewNoopTracer().Start(context.Background(), "test.Span")
	span.End()

	if ctx == nil {
		t.Fatal("expected a context")
	}
}
