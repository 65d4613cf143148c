// Copyright 2026 Canonical Ltd.
// SPDX-License-Identifier: AGPL-3.0

package storage

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	sq "github.com/Masterminds/squirrel"
	"github.com/google/uuid"

	"github.com/indevian-dev/TIKTAK-MONOREPO-sub000/internal/types"
)

var invitationColumns = []string{
	"i.id", "i.for_workspace_id", "i.invited_account_id", "i.invited_by_account_id", "i.access_role",
	"i.is_approved", "i.is_declined", "i.expire_at", "i.created_at", "i.resolved_at", "i.resolved_by_account_id",
}

// pendingInvitation is the state predicate shared by every conditional transition.
var pendingInvitation = sq.Eq{"i.is_approved": false, "i.is_declined": false}

func scanInvitation(row scanner) (*types.Invitation, error) {
	var (
		inv        types.Invitation
		resolvedAt sql.NullTime
		resolvedBy sql.NullString
	)

	err := row.Scan(
		&inv.ID, &inv.ForWorkspaceID, &inv.InvitedAccountID, &inv.InvitedByAccountID, &inv.AccessRole,
		&inv.IsApproved, &inv.IsDeclined, &inv.ExpireAt, &inv.CreatedAt, &resolvedAt, &resolvedBy,
	)
	if err != nil {
		return nil, err
	}
	inv.ResolvedAt = timePtr(resolvedAt)
	inv.ResolvedByAccountID = resolvedBy.String

	return &inv, nil
}

func (s *Storage) CreateInvitation(ctx context.Context, inv *types.Invitation) (*types.Invitation, error) {
	ctx, span := s.tracer.Start(ctx, "storage.Storage.CreateInvitation")
	defer span.End()

	id, err := uuid.NewV7()
	if err != nil {
		return nil, fmt.Errorf("failed to generate invitation ID: %w", err)
	}

	row := s.db.Statement(ctx).
		Insert("workspace_invitations AS i").
		Columns("id", "for_workspace_id", "invited_account_id", "invited_by_account_id", "access_role", "expire_at").
		Values(id.String(), inv.ForWorkspaceID, inv.InvitedAccountID, inv.InvitedByAccountID, inv.AccessRole, inv.ExpireAt).
		Suffix("RETURNING " + joinColumns(invitationColumns)).
		QueryRowContext(ctx)

	created, err := scanInvitation(row)
	if err != nil {
		return nil, translateWriteError(err, "insert invitation")
	}

	return created, nil
}

func (s *Storage) GetInvitation(ctx context.Context, id string) (*types.Invitation, error) {
	ctx, span := s.tracer.Start(ctx, "storage.Storage.GetInvitation")
	defer span.End()

	if !validID(id) {
		return nil, ErrNotFound
	}

	row := s.db.Statement(ctx).
		Select(invitationColumns...).
		From("workspace_invitations i").
		Where(sq.Eq{"i.id": id}).
		QueryRowContext(ctx)

	inv, err := scanInvitation(row)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, ErrNotFound
		}
		return nil, fmt.Errorf("failed to get invitation: %w", err)
	}

	return inv, nil
}

// ResolveInvitation moves a pending invitation to its terminal state. The update
// only matches pending rows, so ErrNotFound also covers an invitation resolved
// concurrently; callers re-read to tell the two apart.
func (s *Storage) ResolveInvitation(ctx context.Context, id string, approve bool, resolvedBy string, at time.Time) (*types.Invitation, error) {
	ctx, span := s.tracer.Start(ctx, "storage.Storage.ResolveInvitation")
	defer span.End()

	if !validID(id) {
		return nil, ErrNotFound
	}

	row := s.db.Statement(ctx).
		Update("workspace_invitations AS i").
		Set("is_approved", approve).
		Set("is_declined", !approve).
		Set("resolved_at", at).
		Set("resolved_by_account_id", resolvedBy).
		Where(sq.And{sq.Eq{"i.id": id}, pendingInvitation}).
		Suffix("RETURNING " + joinColumns(invitationColumns)).
		QueryRowContext(ctx)

	inv, err := scanInvitation(row)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, ErrNotFound
		}
		return nil, fmt.Errorf("failed to resolve invitation: %w", err)
	}

	return inv, nil
}

func (s *Storage) ListPendingInvitationsByAccount(ctx context.Context, accountID string, now time.Time) ([]*types.Invitation, error) {
	ctx, span := s.tracer.Start(ctx, "storage.Storage.ListPendingInvitationsByAccount")
	defer span.End()

	return s.listInvitations(ctx, sq.And{
		sq.Eq{"i.invited_account_id": accountID},
		pendingInvitation,
		sq.Gt{"i.expire_at": now},
	})
}

func (s *Storage) ListInvitationsByWorkspace(ctx context.Context, workspaceID string) ([]*types.Invitation, error) {
	ctx, span := s.tracer.Start(ctx, "storage.Storage.ListInvitationsByWorkspace")
	defer span.End()

	if !validID(workspaceID) {
		return []*types.Invitation{}, nil
	}

	return s.listInvitations(ctx, sq.Eq{"i.for_workspace_id": workspaceID})
}

// DeclineExpiredInvitations declines every pending invitation whose expiry has passed.
func (s *Storage) DeclineExpiredInvitations(ctx context.Context, now time.Time, resolvedBy string) (int64, error) {
	ctx, span := s.tracer.Start(ctx, "storage.Storage.DeclineExpiredInvitations")
	defer span.End()

	res, err := s.db.Statement(ctx).
		Update("workspace_invitations AS i").
		Set("is_declined", true).
		Set("resolved_at", now).
		Set("resolved_by_account_id", resolvedBy).
		Where(sq.And{pendingInvitation, sq.LtOrEq{"i.expire_at": now}}).
		ExecContext(ctx)
	if err != nil {
		return 0, fmt.Errorf("failed to decline expired invitations: %w", err)
	}

	n, err := res.RowsAffected()
	if err != nil {
		return 0, fmt.Errorf("failed to check rows affected: %w", err)
	}

	return n, nil
}

func (s *Storage) listInvitations(ctx context.Context, where sq.Sqlizer) ([]*types.Invitation, error) {
	rows, err := s.db.Statement(ctx).
		Select(invitationColumns...).
		From("workspace_invitations i").
		Where(where).
		OrderBy("i.created_at DESC").
		QueryContext(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to list invitations: %w", err)
	}
	defer rows.Close()

	invitations := make([]*types.Invitation, 0)
	for rows.Next() {
		inv, err := scanInvitation(rows)
		if err != nil {
			return nil, fmt.Errorf("failed to scan invitation: %w", err)
		}
		invitations = append(invitations, inv)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("rows iteration error: %w", err)
	}

	return invitations, nil
}
