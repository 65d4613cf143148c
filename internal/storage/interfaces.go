// Copyright 2026 Canonical Ltd.
// SPDX-License-Identifier: AGPL-3.0

package storage

import (
	"context"
	"time"

	"github.com/indevian-dev/TIKTAK-MONOREPO-sub000/internal/types"
)

type WorkspaceStorageInterface interface {
	CreateWorkspace(context.Context, *types.Workspace) (*types.Workspace, error)
	GetWorkspace(context.Context, string) (*types.Workspace, error)
	GetWorkspacesByIDs(context.Context, []string) ([]*types.Workspace, error)
	UpdateWorkspace(context.Context, string, *types.WorkspaceUpdate) (*types.Workspace, error)
	DeleteWorkspace(context.Context, string) error
	ListWorkspacesByType(context.Context, types.WorkspaceType, types.WorkspaceFilter, types.WorkspaceSort, types.Pagination) ([]*types.Workspace, int64, error)
	ListDistinctProviderTags(context.Context) ([]string, error)
}

type AccessStorageInterface interface {
	CreateAccess(context.Context, *types.Access) (*types.Access, error)
	GetAccess(context.Context, string) (*types.Access, error)
	FindAccess(ctx context.Context, actorID, targetID, viaID string) (*types.Access, error)
	ListAccessByActor(context.Context, string) ([]*types.Access, error)
	ListTargetIDsByActor(context.Context, string) ([]string, error)
	ListViaIDsByActor(context.Context, string) ([]string, error)
	ListLinkedAccessByTarget(context.Context, string, types.Pagination) ([]*types.Access, int64, error)
	ListDirectAccessByWorkspace(context.Context, string, types.Pagination) ([]*types.Access, int64, error)
	ListLinkedAccessByVia(context.Context, string) ([]*types.Access, error)
	UpdateAccessSubscription(ctx context.Context, id string, until *time.Time, tier string) (*types.Access, error)
	DeleteAccess(context.Context, string) error
}

type RoleStorageInterface interface {
	CreateRole(context.Context, *types.Role) (*types.Role, error)
	GetRole(context.Context, string) (*types.Role, error)
	GetRoleByName(context.Context, string) (*types.Role, error)
	ListRoles(context.Context) ([]*types.Role, error)
	UpdateRole(context.Context, string, *types.RoleUpdate) (*types.Role, error)
	DeleteRole(context.Context, string) error
}

type InvitationStorageInterface interface {
	CreateInvitation(context.Context, *types.Invitation) (*types.Invitation, error)
	GetInvitation(context.Context, string) (*types.Invitation, error)
	ResolveInvitation(ctx context.Context, id string, approve bool, resolvedBy string, at time.Time) (*types.Invitation, error)
	ListPendingInvitationsByAccount(ctx context.Context, accountID string, now time.Time) ([]*types.Invitation, error)
	ListInvitationsByWorkspace(context.Context, string) ([]*types.Invitation, error)
	DeclineExpiredInvitations(ctx context.Context, now time.Time, resolvedBy string) (int64, error)
}

// TxManagerInterface runs fn inside a single transaction, rolling back when fn fails.
type TxManagerInterface interface {
	WithTx(ctx context.Context, fn func(context.Context) error) error
}

type StorageInterface interface {
	WorkspaceStorageInterface
	AccessStorageInterface
	RoleStorageInterface
	InvitationStorageInterface
	TxManagerInterface
}
