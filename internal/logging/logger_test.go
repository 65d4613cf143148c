// Copyright 2026 Canonical Ltd.
// SPDX-License-Identifier: AGPL-3.0

package logging

import (
	"testing"

	"go.uber.org/zap/zapcore"
)

func TestDebugLogger(t *testing.T) {
	l := NewLogger("DEBUG")
	if !l.Desugar().Core().Enabled(zapcore.DebugLevel) {
		t.Error("expected debug level to be enabled")
	}
}

func TestInvalidLevelFallsBackToError(t *testing.T) {
	l := NewLogger("invalid")
	if l.Desugar().Core().Enabled(zapcore.InfoLevel) {
		t.Error("expected info level to be disabled")
	}
	if !l.Desugar().Core().Enabled(zapcore.ErrorLevel) {
		t.Error("expected error level to be enabled")
	}
}

func TestNoopLoggerSecurity(t *testing.T) {
	l := NewNoopLogger()
	l.Security().SystemStartup()
	l.Security().AuthzFailure("account-1", "staff")
	l.Security().AdminAction("account-1", "evaluate", "workspace:1")
	l.Security().SystemShutdown()
}
