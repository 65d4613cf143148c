// Copyright 2026 Canonical Ltd.
// SPDX-License-Identifier: AGPL-3.0

package kratos

import (
	"context"

	"github.com/indevian-dev/TIKTAK-MONOREPO-sub000/internal/types"
)

// DirectoryInterface resolves accounts owned by the identity provider.
type DirectoryInterface interface {
	GetAccountByEmail(context.Context, string) (*types.Account, error)
	GetAccount(context.Context, string) (*types.Account, error)
}
