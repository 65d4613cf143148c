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

	"github.com/indevian-dev/TIKTAK-MONOREPO-sub000/internal/db"
	"github.com/indevian-dev/TIKTAK-MONOREPO-sub000/internal/types"
)

var accessColumns = []string{
	"a.id", "a.actor_account_id", "a.target_workspace_id", "a.via_workspace_id",
	"a.access_role", "a.subscribed_until", "a.subscription_tier", "a.created_at",
}

func scanAccess(row scanner) (*types.Access, error) {
	var (
		a     types.Access
		until sql.NullTime
		tier  sql.NullString
	)

	err := row.Scan(&a.ID, &a.ActorAccountID, &a.TargetWorkspaceID, &a.ViaWorkspaceID, &a.AccessRole, &until, &tier, &a.CreatedAt)
	if err != nil {
		return nil, err
	}
	a.SubscribedUntil = timePtr(until)
	a.SubscriptionTier = tier.String

	return &a, nil
}

func (s *Storage) CreateAccess(ctx context.Context, a *types.Access) (*types.Access, error) {
	ctx, span := s.tracer.Start(ctx, "storage.Storage.CreateAccess")
	defer span.End()

	id, err := uuid.NewV7()
	if err != nil {
		return nil, fmt.Errorf("failed to generate access ID: %w", err)
	}

	row := s.db.Statement(ctx).
		Insert("workspace_accesses AS a").
		Columns("id", "actor_account_id", "target_workspace_id", "via_workspace_id", "access_role", "subscribed_until", "subscription_tier").
		Values(id.String(), a.ActorAccountID, a.TargetWorkspaceID, a.ViaWorkspaceID, a.AccessRole, nullTime(a.SubscribedUntil), nullString(a.SubscriptionTier)).
		Suffix("RETURNING " + joinColumns(accessColumns)).
		QueryRowContext(ctx)

	created, err := scanAccess(row)
	if err != nil {
		return nil, translateWriteError(err, "insert access")
	}

	return created, nil
}

func (s *Storage) GetAccess(ctx context.Context, id string) (*types.Access, error) {
	ctx, span := s.tracer.Start(ctx, "storage.Storage.GetAccess")
	defer span.End()

	if !validID(id) {
		return nil, ErrNotFound
	}

	row := s.db.Statement(ctx).
		Select(accessColumns...).
		From("workspace_accesses a").
		Where(sq.Eq{"a.id": id}).
		QueryRowContext(ctx)

	a, err := scanAccess(row)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, ErrNotFound
		}
		return nil, fmt.Errorf("failed to get access: %w", err)
	}

	return a, nil
}

// FindAccess looks up an edge by actor and target; an empty viaID matches any path.
func (s *Storage) FindAccess(ctx context.Context, actorID, targetID, viaID string) (*types.Access, error) {
	ctx, span := s.tracer.Start(ctx, "storage.Storage.FindAccess")
	defer span.End()

	if !validID(targetID) || (viaID != "" && !validID(viaID)) {
		return nil, ErrNotFound
	}

	where := sq.Eq{
		"a.actor_account_id":    actorID,
		"a.target_workspace_id": targetID,
	}
	if viaID != "" {
		where["a.via_workspace_id"] = viaID
	}

	row := s.db.Statement(ctx).
		Select(accessColumns...).
		From("workspace_accesses a").
		Where(where).
		OrderBy("a.created_at ASC").
		Limit(1).
		QueryRowContext(ctx)

	a, err := scanAccess(row)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, ErrNotFound
		}
		return nil, fmt.Errorf("failed to find access: %w", err)
	}

	return a, nil
}

func (s *Storage) ListAccessByActor(ctx context.Context, actorID string) ([]*types.Access, error) {
	ctx, span := s.tracer.Start(ctx, "storage.Storage.ListAccessByActor")
	defer span.End()

	rows, err := s.db.Statement(ctx).
		Select(accessColumns...).
		From("workspace_accesses a").
		Where(sq.Eq{"a.actor_account_id": actorID}).
		OrderBy("a.created_at ASC").
		QueryContext(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to list access: %w", err)
	}
	defer rows.Close()

	return collectAccess(rows)
}

func (s *Storage) ListTargetIDsByActor(ctx context.Context, actorID string) ([]string, error) {
	return s.listWorkspaceIDsByActor(ctx, actorID, "a.target_workspace_id")
}

func (s *Storage) ListViaIDsByActor(ctx context.Context, actorID string) ([]string, error) {
	return s.listWorkspaceIDsByActor(ctx, actorID, "a.via_workspace_id")
}

func (s *Storage) listWorkspaceIDsByActor(ctx context.Context, actorID, col string) ([]string, error) {
	ctx, span := s.tracer.Start(ctx, "storage.Storage.listWorkspaceIDsByActor")
	defer span.End()

	rows, err := s.db.Statement(ctx).
		Select("DISTINCT "+col).
		From("workspace_accesses a").
		Where(sq.Eq{"a.actor_account_id": actorID}).
		QueryContext(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to list workspace ids: %w", err)
	}
	defer rows.Close()

	ids := make([]string, 0)
	for rows.Next() {
		var id string
		if err := rows.Scan(&id); err != nil {
			return nil, fmt.Errorf("failed to scan workspace id: %w", err)
		}
		ids = append(ids, id)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("rows iteration error: %w", err)
	}

	return ids, nil
}

// ListLinkedAccessByTarget pages the edges reaching targetID through another workspace, newest first.
func (s *Storage) ListLinkedAccessByTarget(ctx context.Context, targetID string, p types.Pagination) ([]*types.Access, int64, error) {
	ctx, span := s.tracer.Start(ctx, "storage.Storage.ListLinkedAccessByTarget")
	defer span.End()

	if !validID(targetID) {
		return []*types.Access{}, 0, nil
	}

	return s.pageAccess(ctx, sq.And{sq.Eq{"a.target_workspace_id": targetID}, LinkedEdge("a")}, p)
}

// ListDirectAccessByWorkspace pages the memberships of workspaceID itself, newest first.
func (s *Storage) ListDirectAccessByWorkspace(ctx context.Context, workspaceID string, p types.Pagination) ([]*types.Access, int64, error) {
	ctx, span := s.tracer.Start(ctx, "storage.Storage.ListDirectAccessByWorkspace")
	defer span.End()

	if !validID(workspaceID) {
		return []*types.Access{}, 0, nil
	}

	return s.pageAccess(ctx, sq.And{sq.Eq{"a.target_workspace_id": workspaceID}, DirectEdge("a")}, p)
}

func (s *Storage) ListLinkedAccessByVia(ctx context.Context, viaID string) ([]*types.Access, error) {
	ctx, span := s.tracer.Start(ctx, "storage.Storage.ListLinkedAccessByVia")
	defer span.End()

	if !validID(viaID) {
		return []*types.Access{}, nil
	}

	rows, err := s.db.Statement(ctx).
		Select(accessColumns...).
		From("workspace_accesses a").
		Where(sq.And{sq.Eq{"a.via_workspace_id": viaID}, LinkedEdge("a")}).
		OrderBy("a.created_at DESC", "a.id DESC").
		QueryContext(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to list connections: %w", err)
	}
	defer rows.Close()

	return collectAccess(rows)
}

func (s *Storage) UpdateAccessSubscription(ctx context.Context, id string, until *time.Time, tier string) (*types.Access, error) {
	ctx, span := s.tracer.Start(ctx, "storage.Storage.UpdateAccessSubscription")
	defer span.End()

	if !validID(id) {
		return nil, ErrNotFound
	}

	row := s.db.Statement(ctx).
		Update("workspace_accesses AS a").
		Set("subscribed_until", nullTime(until)).
		Set("subscription_tier", nullString(tier)).
		Where(sq.Eq{"a.id": id}).
		Suffix("RETURNING " + joinColumns(accessColumns)).
		QueryRowContext(ctx)

	a, err := scanAccess(row)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, ErrNotFound
		}
		return nil, fmt.Errorf("failed to update access subscription: %w", err)
	}

	return a, nil
}

func (s *Storage) DeleteAccess(ctx context.Context, id string) error {
	ctx, span := s.tracer.Start(ctx, "storage.Storage.DeleteAccess")
	defer span.End()

	if !validID(id) {
		return ErrNotFound
	}

	res, err := s.db.Statement(ctx).
		Delete("workspace_accesses").
		Where(sq.Eq{"id": id}).
		ExecContext(ctx)
	if err != nil {
		return fmt.Errorf("failed to delete access: %w", err)
	}

	return requireAffected(res)
}

func (s *Storage) pageAccess(ctx context.Context, where sq.Sqlizer, p types.Pagination) ([]*types.Access, int64, error) {
	var total int64
	err := s.db.Statement(ctx).
		Select("COUNT(*)").
		From("workspace_accesses a").
		Where(where).
		QueryRowContext(ctx).
		Scan(&total)
	if err != nil {
		return nil, 0, fmt.Errorf("failed to count access: %w", err)
	}

	pageSize := db.PageSize(p.Size)
	rows, err := s.db.Statement(ctx).
		Select(accessColumns...).
		From("workspace_accesses a").
		Where(where).
		OrderBy("a.created_at DESC", "a.id DESC").
		Limit(pageSize).
		Offset(db.Offset(p.Page, pageSize)).
		QueryContext(ctx)
	if err != nil {
		return nil, 0, fmt.Errorf("failed to list access: %w", err)
	}
	defer rows.Close()

	edges, err := collectAccess(rows)
	if err != nil {
		return nil, 0, err
	}

	return edges, total, nil
}

func collectAccess(rows *sql.Rows) ([]*types.Access, error) {
	edges := make([]*types.Access, 0)
	for rows.Next() {
		a, err := scanAccess(rows)
		if err != nil {
			return nil, fmt.Errorf("failed to scan access: %w", err)
		}
		edges = append(edges, a)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("rows iteration error: %w", err)
	}

	return edges, nil
}
