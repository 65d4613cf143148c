// Copyright 2026 Canonical Ltd.
// SPDX-License-Identifier: AGPL-3.0

package webhooks

import (
	"context"

	"github.com/indevian-dev/TIKTAK-MONOREPO-sub000/internal/types"
	"github.com/indevian-dev/TIKTAK-MONOREPO-sub000/pkg/lifecycle"
)

// StorageInterface is the subset of internal/storage read by the webhooks package.
type StorageInterface interface {
	ListAccessByActor(context.Context, string) ([]*types.Access, error)
	GetWorkspacesByIDs(context.Context, []string) ([]*types.Workspace, error)
}

// LifecycleInterface is the subset of the lifecycle service used to provision
// new accounts.
type LifecycleInterface interface {
	CreateWorkspace(ctx context.Context, ownerID string, in *lifecycle.NewWorkspace) (*types.Workspace, error)
}

type ServiceInterface interface {
	HandleRegistration(ctx context.Context, identityID, email string) (*types.Workspace, error)
}
