// Copyright 2026 Canonical Ltd.
// SPDX-License-Identifier: AGPL-3.0

package invitations

import (
	"context"

	"github.com/indevian-dev/TIKTAK-MONOREPO-sub000/internal/notify"
	"github.com/indevian-dev/TIKTAK-MONOREPO-sub000/internal/storage"
	"github.com/indevian-dev/TIKTAK-MONOREPO-sub000/internal/types"
)

type ServiceInterface interface {
	Invite(ctx context.Context, workspaceID, invitedBy, email, roleName string) (*types.Invitation, error)
	Respond(ctx context.Context, invitationID, accountID string, action types.InvitationAction) (*types.Invitation, error)
	ListPendingForAccount(context.Context, string) ([]*types.Invitation, error)
	ListForWorkspace(ctx context.Context, actorID, workspaceID string) ([]*types.Invitation, error)
	SweepExpired(ctx context.Context, actorID string) (int64, error)
}

type StorageInterface interface {
	storage.InvitationStorageInterface
	storage.TxManagerInterface

	GetWorkspace(context.Context, string) (*types.Workspace, error)
	GetRoleByName(context.Context, string) (*types.Role, error)
	FindAccess(ctx context.Context, actorID, targetID, viaID string) (*types.Access, error)
	CreateAccess(context.Context, *types.Access) (*types.Access, error)
}

type DirectoryInterface interface {
	GetAccountByEmail(context.Context, string) (*types.Account, error)
}

type NotifierInterface interface {
	Notify(context.Context, *notify.Notification)
}

// StaffGraphInterface mirrors staff memberships into the authorization model.
type StaffGraphInterface interface {
	AssignStaffMember(ctx context.Context, workspaceID, accountID string) error
}
