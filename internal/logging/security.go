// Copyright 2026 Canonical Ltd.
// SPDX-License-Identifier: AGPL-3.0

package logging

import (
	"go.uber.org/zap"
)

type SecurityLogger struct {
	l *zap.Logger
}

func (s *SecurityLogger) SystemStartup() {
	s.l.Info("system startup", zap.String("event", "sys_startup"))
}

func (s *SecurityLogger) SystemShutdown() {
	s.l.Info("system shutdown", zap.String("event", "sys_shutdown"))
}

func (s *SecurityLogger) AuthzFailure(accountID, resource string) {
	s.l.Warn(
		"authorization failure",
		zap.String("event", "authz_fail"),
		zap.String("account_id", accountID),
		zap.String("resource", resource),
	)
}

func (s *SecurityLogger) AdminAction(accountID, action, resource string) {
	s.l.Info(
		"admin action",
		zap.String("event", "admin_action"),
		zap.String("account_id", accountID),
		zap.String("action", action),
		zap.String("resource", resource),
	)
}
