// Copyright 2026 Canonical Ltd.
// SPDX-License-Identifier: AGPL-3.0

package lifecycle

import (
	"context"

	"github.com/indevian-dev/TIKTAK-MONOREPO-sub000/internal/notify"
	"github.com/indevian-dev/TIKTAK-MONOREPO-sub000/internal/storage"
	"github.com/indevian-dev/TIKTAK-MONOREPO-sub000/internal/types"
)

type ServiceInterface interface {
	CreateWorkspace(ctx context.Context, ownerID string, in *NewWorkspace) (*types.Workspace, error)
	SubmitProviderApplication(ctx context.Context, ownerID string, in *ProviderApplication) (*types.Workspace, error)
	CreateStudentWorkspace(ctx context.Context, ownerID string, in *NewStudentWorkspace) (*types.Workspace, error)
	StartParentWorkspaceFlow(ctx context.Context, ownerID string, studentWorkspaceIDs []string) (*types.Workspace, error)
	AddUserToStaffWorkspace(context.Context, *StaffMember) (*types.Access, error)
}

type StorageInterface interface {
	storage.TxManagerInterface

	CreateWorkspace(context.Context, *types.Workspace) (*types.Workspace, error)
	GetWorkspace(context.Context, string) (*types.Workspace, error)
	CreateAccess(context.Context, *types.Access) (*types.Access, error)
	FindAccess(ctx context.Context, actorID, targetID, viaID string) (*types.Access, error)
	ListDirectAccessByWorkspace(context.Context, string, types.Pagination) ([]*types.Access, int64, error)
	GetRoleByName(context.Context, string) (*types.Role, error)
}

type NotifierInterface interface {
	Notify(context.Context, *notify.Notification)
}

// StaffGraphInterface mirrors staff memberships into the authorization model.
type StaffGraphInterface interface {
	LinkStaffWorkspace(context.Context, string) error
	AssignStaffMember(context.Context, string, string) error
}

type CacheInterface interface {
	Delete(context.Context, ...string) error
}
