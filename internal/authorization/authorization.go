// Copyright 2026 Canonical Ltd.
// SPDX-License-Identifier: AGPL-3.0

package authorization

import (
	"context"

	"github.com/indevian-dev/TIKTAK-MONOREPO-sub000/internal/logging"
	"github.com/indevian-dev/TIKTAK-MONOREPO-sub000/internal/monitoring"
	"github.com/indevian-dev/TIKTAK-MONOREPO-sub000/internal/openfga"
	"github.com/indevian-dev/TIKTAK-MONOREPO-sub000/internal/tracing"
)

var _ AuthorizerInterface = (*Authorizer)(nil)

// Authorizer keeps the staff relations of the workspace graph mirrored in OpenFGA:
//
//	user:<account>              member  workspace:<staff workspace>
//	workspace:<staff>#member    staff   platform:marketplace
//
// so that can_administer on the platform follows staff workspace membership.
type Authorizer struct {
	client AuthzClientInterface

	tracer  tracing.TracingInterface
	monitor monitoring.MonitorInterface
	logger  logging.LoggerInterface
}

func (a *Authorizer) Check(ctx context.Context, user string, relation string, object string, contextualTuples ...openfga.Tuple) (bool, error) {
	ctx, span := a.tracer.Start(ctx, "authorization.Authorizer.Check")
	defer span.End()

	return a.client.Check(ctx, user, relation, object, contextualTuples...)
}

func (a *Authorizer) CheckStaff(ctx context.Context, accountId string) (bool, error) {
	ctx, span := a.tracer.Start(ctx, "authorization.Authorizer.CheckStaff")
	defer span.End()

	return a.Check(ctx, UserTuple(accountId), CAN_ADMINISTER_PERMISSION, PlatformTuple(MARKETPLACE_PLATFORM))
}

func (a *Authorizer) LinkStaffWorkspace(ctx context.Context, workspaceId string) error {
	ctx, span := a.tracer.Start(ctx, "authorization.Authorizer.LinkStaffWorkspace")
	defer span.End()

	return a.client.WriteTuples(ctx, *openfga.NewTuple(WorkspaceMembersTuple(workspaceId), STAFF_RELATION, PlatformTuple(MARKETPLACE_PLATFORM)))
}

func (a *Authorizer) AssignStaffMember(ctx context.Context, workspaceId, accountId string) error {
	ctx, span := a.tracer.Start(ctx, "authorization.Authorizer.AssignStaffMember")
	defer span.End()

	return a.client.WriteTuples(ctx, *openfga.NewTuple(UserTuple(accountId), MEMBER_RELATION, WorkspaceTuple(workspaceId)))
}

func (a *Authorizer) RemoveStaffMember(ctx context.Context, workspaceId, accountId string) error {
	ctx, span := a.tracer.Start(ctx, "authorization.Authorizer.RemoveStaffMember")
	defer span.End()

	return a.client.DeleteTuples(ctx, *openfga.NewTuple(UserTuple(accountId), MEMBER_RELATION, WorkspaceTuple(workspaceId)))
}

func NewAuthorizer(client AuthzClientInterface, tracer tracing.TracingInterface, monitor monitoring.MonitorInterface, logger logging.LoggerInterface) *Authorizer {
	authorizer := new(Authorizer)
	authorizer.client = client
	authorizer.tracer = tracer
	authorizer.monitor = monitor
	authorizer.logger = logger

	return authorizer
}
