// Copyright 2026 Canonical Ltd.
// SPDX-License-Identifier: AGPL-3.0

package workspaces

import (
	"context"

	"github.com/indevian-dev/TIKTAK-MONOREPO-sub000/internal/storage"
	"github.com/indevian-dev/TIKTAK-MONOREPO-sub000/internal/types"
)

type ServiceInterface interface {
	Get(context.Context, string) (*types.Workspace, error)
	Update(ctx context.Context, actorID, id string, u *types.WorkspaceUpdate) (*types.Workspace, error)
	ListByType(context.Context, types.WorkspaceType, types.WorkspaceFilter, types.WorkspaceSort, types.Pagination) (*types.PageResult[*types.Workspace], error)
	ListDistinctTags(context.Context) ([]string, error)

	StaffUpdateProvider(context.Context, string, *types.WorkspaceUpdate) (*types.Workspace, error)
	StaffEvaluateApplication(ctx context.Context, id string, approve bool) (*types.Workspace, error)
	StaffDeleteProvider(context.Context, string) error
}

type StorageInterface interface {
	storage.WorkspaceStorageInterface
	FindAccess(ctx context.Context, actorID, targetID, viaID string) (*types.Access, error)
}
