// Copyright 2026 Canonical Ltd.
// SPDX-License-Identifier: AGPL-3.0

package authorization

import (
	"context"

	"github.com/indevian-dev/TIKTAK-MONOREPO-sub000/internal/openfga"
)

type AuthorizerInterface interface {
	Check(context.Context, string, string, string, ...openfga.Tuple) (bool, error)
	CheckStaff(context.Context, string) (bool, error)

	// LinkStaffWorkspace grants platform staff to every member of the workspace.
	LinkStaffWorkspace(context.Context, string) error
	AssignStaffMember(context.Context, string, string) error
	RemoveStaffMember(context.Context, string, string) error
}

type AuthzClientInterface interface {
	Check(ctx context.Context, user, relation, object string, contextualTuples ...openfga.Tuple) (bool, error)
	WriteTuples(context.Context, ...openfga.Tuple) error
	DeleteTuples(context.Context, ...openfga.Tuple) error
}
