// Copyright 2026 Canonical Ltd.
// SPDX-License-Identifier: AGPL-3.0

package authorization

import (
	"context"
	"net/http"

	httptypes "github.com/indevian-dev/TIKTAK-MONOREPO-sub000/internal/http/types"
	"github.com/indevian-dev/TIKTAK-MONOREPO-sub000/internal/logging"
	"github.com/indevian-dev/TIKTAK-MONOREPO-sub000/internal/monitoring"
	"github.com/indevian-dev/TIKTAK-MONOREPO-sub000/internal/tracing"
)

// AccountResolver extracts the authenticated account of a request.
type AccountResolver func(context.Context) (string, bool)

type Middleware struct {
	authorizer AuthorizerInterface
	account    AccountResolver

	tracer  tracing.TracingInterface
	monitor monitoring.MonitorInterface
	logger  logging.LoggerInterface
}

// StaffOnly lets a request through only when its account administers the platform.
func (m *Middleware) StaffOnly() func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			ctx, span := m.tracer.Start(r.Context(), "authorization.Middleware.StaffOnly")
			defer span.End()

			accountId, ok := m.account(ctx)
			if !ok {
				httptypes.WriteErrorCode(w, http.StatusUnauthorized, "unauthorized", "missing account")
				return
			}

			allowed, err := m.authorizer.CheckStaff(ctx, accountId)
			if err != nil {
				m.logger.Errorf("staff check failed for %s: %v", accountId, err)
				httptypes.WriteErrorCode(w, http.StatusInternalServerError, "internal", http.StatusText(http.StatusInternalServerError))
				return
			}

			if !allowed {
				m.logger.Security().AuthzFailure(accountId, r.URL.Path)
				httptypes.WriteErrorCode(w, http.StatusForbidden, "forbidden", "staff privilege required")
				return
			}

			next.ServeHTTP(w, r.WithContext(ctx))
		})
	}
}

func NewMiddleware(authorizer AuthorizerInterface, account AccountResolver, tracer tracing.TracingInterface, monitor monitoring.MonitorInterface, logger logging.LoggerInterface) *Middleware {
	return &Middleware{
		authorizer: authorizer,
		account:    account,
		tracer:     tracer,
		monitor:    monitor,
		logger:     logger,
	}
}
