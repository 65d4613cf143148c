// Copyright 2026 Canonical Ltd.
// SPDX-License-Identifier: AGPL-3.0

package accessgraph

import (
	"context"
	"time"

	"github.com/indevian-dev/TIKTAK-MONOREPO-sub000/internal/storage"
	"github.com/indevian-dev/TIKTAK-MONOREPO-sub000/internal/types"
)

type ServiceInterface interface {
	FindAccess(ctx context.Context, actorID, targetID, viaID string) (*types.Access, error)
	AddAccess(context.Context, *types.Access) (*types.Access, error)
	ListForActor(context.Context, string) ([]*types.Workspace, error)
	ListOwnedConnected(context.Context, string) (*types.OwnedConnected, error)
	ListEnrolled(context.Context, string, types.Pagination) (*types.PageResult[*types.Member], error)
	ListDirectMembers(context.Context, string, types.Pagination) (*types.PageResult[*types.Member], error)
	ListConnections(context.Context, string) ([]*types.Access, error)
	UpdateSubscription(ctx context.Context, accessID string, until *time.Time, tier string) (*types.Access, error)
	RemoveAccess(context.Context, string) error
}

// StorageInterface is the subset of internal/storage read and written by the access graph.
type StorageInterface interface {
	storage.WorkspaceStorageInterface
	storage.AccessStorageInterface

	GetRoleByName(context.Context, string) (*types.Role, error)
}

// StaffGraphInterface mirrors direct staff edges into the authorization model.
type StaffGraphInterface interface {
	AssignStaffMember(ctx context.Context, workspaceID, accountID string) error
	RemoveStaffMember(ctx context.Context, workspaceID, accountID string) error
}

// DirectoryInterface resolves account ids to account details.
type DirectoryInterface interface {
	GetAccount(context.Context, string) (*types.Account, error)
}
