// Copyright 2026 Canonical Ltd.
// SPDX-License-Identifier: AGPL-3.0

package invitations

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/indevian-dev/TIKTAK-MONOREPO-sub000/internal/kratos"
	"github.com/indevian-dev/TIKTAK-MONOREPO-sub000/internal/logging"
	"github.com/indevian-dev/TIKTAK-MONOREPO-sub000/internal/monitoring"
	"github.com/indevian-dev/TIKTAK-MONOREPO-sub000/internal/notify"
	"github.com/indevian-dev/TIKTAK-MONOREPO-sub000/internal/storage"
	"github.com/indevian-dev/TIKTAK-MONOREPO-sub000/internal/tracing"
	"github.com/indevian-dev/TIKTAK-MONOREPO-sub000/internal/types"
)

const (
	DefaultLifetime = 7 * 24 * time.Hour

	permissionInvitationsRead = "invitations.read"
)

var _ ServiceInterface = (*Service)(nil)

type Service struct {
	storage   StorageInterface
	directory DirectoryInterface
	notifier  NotifierInterface
	staff     StaffGraphInterface

	lifetime time.Duration
	now      func() time.Time

	tracer  tracing.TracingInterface
	monitor monitoring.MonitorInterface
	logger  logging.LoggerInterface
}

func NewService(
	storage StorageInterface,
	directory DirectoryInterface,
	notifier NotifierInterface,
	staff StaffGraphInterface,
	lifetime time.Duration,
	now func() time.Time,
	tracer tracing.TracingInterface,
	monitor monitoring.MonitorInterface,
	logger logging.LoggerInterface,
) *Service {
	s := new(Service)

	s.storage = storage
	s.directory = directory
	s.notifier = notifier
	s.staff = staff

	s.lifetime = lifetime
	if s.lifetime <= 0 {
		s.lifetime = DefaultLifetime
	}

	s.now = now
	if s.now == nil {
		s.now = time.Now
	}

	s.tracer = tracer
	s.monitor = monitor
	s.logger = logger

	return s
}

// Invite records a pending invitation of the account registered under email.
// The inviter must hold a direct edge whose role grants members.invite.
func (s *Service) Invite(ctx context.Context, workspaceID, invitedBy, email, roleName string) (*types.Invitation, error) {
	ctx, span := s.tracer.Start(ctx, "invitations.Service.Invite")
	defer span.End()

	role, err := s.storage.GetRoleByName(ctx, roleName)
	if errors.Is(err, storage.ErrNotFound) {
		return nil, fmt.Errorf("%w: %q", types.ErrUnknownRole, roleName)
	}
	if err != nil {
		return nil, fmt.Errorf("failed to read role: %w", err)
	}

	ws, err := s.storage.GetWorkspace(ctx, workspaceID)
	if err != nil {
		return nil, storage.DomainError(err, types.ErrConflict)
	}

	if !role.AppliesTo(ws.Type) {
		return nil, fmt.Errorf("%w: role %s is reserved for %s workspaces", types.ErrInvalidType, role.Name, role.ForWorkspaceType)
	}

	if err := s.requirePermission(ctx, invitedBy, ws.ID, types.PermissionMembersInvite); err != nil {
		return nil, err
	}

	account, err := s.directory.GetAccountByEmail(ctx, strings.TrimSpace(email))
	if errors.Is(err, kratos.ErrIdentityNotFound) {
		return nil, fmt.Errorf("%w: %s", types.ErrAccountNotFound, email)
	}
	if err != nil {
		return nil, fmt.Errorf("failed to resolve invitee: %w", err)
	}

	if _, err := s.storage.FindAccess(ctx, account.ID, ws.ID, ws.ID); err == nil {
		return nil, fmt.Errorf("%w: %s already belongs to %s", types.ErrAlreadyMember, account.ID, ws.ID)
	} else if !errors.Is(err, storage.ErrNotFound) {
		return nil, fmt.Errorf("failed to read membership: %w", err)
	}

	now := s.now()

	var created *types.Invitation
	err = s.storage.WithTx(ctx, func(ctx context.Context) error {
		if err := s.retireExpired(ctx, ws.ID, account.ID, now); err != nil {
			return err
		}

		inv, err := s.storage.CreateInvitation(ctx, &types.Invitation{
			ForWorkspaceID:     ws.ID,
			InvitedAccountID:   account.ID,
			InvitedByAccountID: invitedBy,
			AccessRole:         role.Name,
			ExpireAt:           now.Add(s.lifetime),
		})
		if err != nil {
			return storage.DomainError(err, types.ErrConflict)
		}

		created = inv
		return nil
	})
	if err != nil {
		return nil, s.txFailed("invite", err)
	}

	s.notifier.Notify(ctx, &notify.Notification{
		Kind:        notify.KindInvitationCreated,
		AccountID:   account.ID,
		WorkspaceID: ws.ID,
		Payload: map[string]string{
			"invitation_id": created.ID,
			"invited_by":    invitedBy,
			"role":          role.Name,
			"workspace":     ws.Title,
		},
		CreatedAt: now,
	})

	return created, nil
}

// Respond resolves a pending invitation on behalf of its invitee. Approving
// inserts the direct edge with the stored role in the same transaction.
func (s *Service) Respond(ctx context.Context, invitationID, accountID string, action types.InvitationAction) (*types.Invitation, error) {
	ctx, span := s.tracer.Start(ctx, "invitations.Service.Respond")
	defer span.End()

	var approve bool
	switch action {
	case types.InvitationActionApprove:
		approve = true
	case types.InvitationActionDecline:
	default:
		return nil, fmt.Errorf("%w: unknown action %q", types.ErrInvalidInput, action)
	}

	inv, err := s.storage.GetInvitation(ctx, invitationID)
	if err != nil {
		return nil, storage.DomainError(err, types.ErrConflict)
	}

	if inv.InvitedAccountID != accountID {
		s.logger.Security().AuthzFailure(accountID, "invitation:"+inv.ID)
		return nil, fmt.Errorf("%w: invitation belongs to another account", types.ErrForbidden)
	}

	if !inv.IsPending() {
		return nil, fmt.Errorf("%w: invitation is %s", types.ErrAlreadyProcessed, inv.State())
	}

	now := s.now()
	if approve && inv.IsExpired(now) {
		return nil, fmt.Errorf("%w: at %s", types.ErrExpired, inv.ExpireAt.Format(time.RFC3339))
	}

	var resolved *types.Invitation
	err = s.storage.WithTx(ctx, func(ctx context.Context) error {
		r, err := s.storage.ResolveInvitation(ctx, inv.ID, approve, accountID, now)
		if errors.Is(err, storage.ErrNotFound) {
			// lost the race against another response
			return fmt.Errorf("%w: invitation was resolved concurrently", types.ErrAlreadyProcessed)
		}
		if err != nil {
			return err
		}

		if approve {
			_, err := s.storage.CreateAccess(ctx, &types.Access{
				ActorAccountID:    r.InvitedAccountID,
				TargetWorkspaceID: r.ForWorkspaceID,
				ViaWorkspaceID:    r.ForWorkspaceID,
				AccessRole:        r.AccessRole,
			})
			if err != nil {
				return storage.DomainError(err, types.ErrAlreadyMember)
			}
		}

		resolved = r
		return nil
	})
	if err != nil {
		return nil, s.txFailed("respond to invitation", err)
	}

	if approve {
		s.mirrorStaffMember(ctx, resolved.ForWorkspaceID, resolved.InvitedAccountID)
	}

	s.notifier.Notify(ctx, &notify.Notification{
		Kind:        notify.KindInvitationResolved,
		AccountID:   resolved.InvitedByAccountID,
		WorkspaceID: resolved.ForWorkspaceID,
		Payload: map[string]string{
			"invitation_id": resolved.ID,
			"invitee":       resolved.InvitedAccountID,
			"state":         string(resolved.State()),
		},
		CreatedAt: now,
	})

	return resolved, nil
}

func (s *Service) ListPendingForAccount(ctx context.Context, accountID string) ([]*types.Invitation, error) {
	ctx, span := s.tracer.Start(ctx, "invitations.Service.ListPendingForAccount")
	defer span.End()

	invs, err := s.storage.ListPendingInvitationsByAccount(ctx, accountID, s.now())
	if err != nil {
		return nil, fmt.Errorf("failed to list pending invitations: %w", err)
	}

	return invs, nil
}

// ListForWorkspace returns every invitation of the workspace, in any state,
// to members whose role grants invitations.read.
func (s *Service) ListForWorkspace(ctx context.Context, actorID, workspaceID string) ([]*types.Invitation, error) {
	ctx, span := s.tracer.Start(ctx, "invitations.Service.ListForWorkspace")
	defer span.End()

	if _, err := s.storage.GetWorkspace(ctx, workspaceID); err != nil {
		return nil, storage.DomainError(err, types.ErrConflict)
	}

	if err := s.requirePermission(ctx, actorID, workspaceID, permissionInvitationsRead); err != nil {
		return nil, err
	}

	invs, err := s.storage.ListInvitationsByWorkspace(ctx, workspaceID)
	if err != nil {
		return nil, fmt.Errorf("failed to list invitations: %w", err)
	}

	return invs, nil
}

// SweepExpired declines every pending invitation past its expiry, recording
// actorID as the resolver.
func (s *Service) SweepExpired(ctx context.Context, actorID string) (int64, error) {
	ctx, span := s.tracer.Start(ctx, "invitations.Service.SweepExpired")
	defer span.End()

	if actorID == "" {
		return 0, fmt.Errorf("%w: sweep requires an actor", types.ErrInvalidInput)
	}

	n, err := s.storage.DeclineExpiredInvitations(ctx, s.now(), actorID)
	if err != nil {
		return 0, fmt.Errorf("failed to decline expired invitations: %w", err)
	}

	if n > 0 {
		s.logger.Infof("declined %d expired invitations", n)
	}

	return n, nil
}

// retireExpired declines an expired pending invitation of the same pair so a
// fresh one can take its place.
func (s *Service) retireExpired(ctx context.Context, workspaceID, accountID string, now time.Time) error {
	invs, err := s.storage.ListInvitationsByWorkspace(ctx, workspaceID)
	if err != nil {
		return err
	}

	for _, inv := range invs {
		if inv.InvitedAccountID != accountID || !inv.IsPending() || !inv.IsExpired(now) {
			continue
		}

		if _, err := s.storage.ResolveInvitation(ctx, inv.ID, false, types.SystemAccountID, now); err != nil && !errors.Is(err, storage.ErrNotFound) {
			return err
		}
	}

	return nil
}

func (s *Service) requirePermission(ctx context.Context, actorID, workspaceID, permission string) error {
	edge, err := s.storage.FindAccess(ctx, actorID, workspaceID, workspaceID)
	if errors.Is(err, storage.ErrNotFound) {
		s.logger.Security().AuthzFailure(actorID, workspaceID)
		return fmt.Errorf("%w: %s is not a member of %s", types.ErrForbidden, actorID, workspaceID)
	}
	if err != nil {
		return fmt.Errorf("failed to read membership: %w", err)
	}

	role, err := s.storage.GetRoleByName(ctx, edge.AccessRole)
	if err != nil {
		return fmt.Errorf("failed to read role %s: %w", edge.AccessRole, err)
	}

	if !role.Permissions.Has(permission) {
		s.logger.Security().AuthzFailure(actorID, workspaceID)
		return fmt.Errorf("%w: role %s lacks %s", types.ErrForbidden, role.Name, permission)
	}

	return nil
}

// mirrorStaffMember grants a new direct member of a staff workspace its
// authorization tuple. Failures are logged, the edge stays committed.
func (s *Service) mirrorStaffMember(ctx context.Context, workspaceID, accountID string) {
	w, err := s.storage.GetWorkspace(ctx, workspaceID)
	if err != nil {
		s.logger.Errorf("failed to read workspace %s: %v", workspaceID, err)
		return
	}

	if w.Type != types.WorkspaceTypeStaff {
		return
	}

	if err := s.staff.AssignStaffMember(ctx, workspaceID, accountID); err != nil {
		s.logger.Errorf("failed to mirror staff member %s of %s: %v", accountID, workspaceID, err)
	}
}

func (s *Service) txFailed(op string, err error) error {
	err = storage.TxError(err)
	if errors.Is(err, types.ErrTransactionFailed) {
		s.logger.Errorf("%s: %v", op, err)
	}
	return err
}
