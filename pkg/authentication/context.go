// Copyright 2026 Canonical Ltd.
// SPDX-License-Identifier: AGPL-3.0

package authentication

import (
	"context"
	"net/http"

	httptypes "github.com/indevian-dev/TIKTAK-MONOREPO-sub000/internal/http/types"
)

type contextKey struct{}

var accountContextKey = contextKey{}

// WithAccountID returns a copy of ctx carrying the authenticated account ID.
func WithAccountID(ctx context.Context, accountID string) context.Context {
	return context.WithValue(ctx, accountContextKey, accountID)
}

// AccountID returns the authenticated account ID, false when the request is anonymous.
func AccountID(ctx context.Context) (string, bool) {
	id, ok := ctx.Value(accountContextKey).(string)
	return id, ok && id != ""
}

// RequireAccountID writes a 401 envelope when the request carries no account.
func RequireAccountID(w http.ResponseWriter, r *http.Request) (string, bool) {
	id, ok := AccountID(r.Context())
	if !ok {
		httptypes.WriteErrorCode(w, http.StatusUnauthorized, "unauthorized", "missing account")
	}
	return id, ok
}
