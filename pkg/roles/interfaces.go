// Copyright 2026 Canonical Ltd.
// SPDX-License-Identifier: AGPL-3.0

package roles

import (
	"context"

	"github.com/indevian-dev/TIKTAK-MONOREPO-sub000/internal/storage"
	"github.com/indevian-dev/TIKTAK-MONOREPO-sub000/internal/types"
)

type ServiceInterface interface {
	FindAll(context.Context) ([]*types.Role, error)
	FindByName(context.Context, string) (*types.Role, error)
	Create(context.Context, *types.Role) (*types.Role, error)
	Update(context.Context, string, *types.RoleUpdate) (*types.Role, error)
	Delete(context.Context, string) error
	AddPermission(ctx context.Context, roleName, permission string) (*types.Role, error)
	RemovePermission(ctx context.Context, roleName, permission string) (*types.Role, error)
}

type StorageInterface interface {
	storage.RoleStorageInterface
	storage.TxManagerInterface
}
