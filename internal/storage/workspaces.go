// Copyright 2026 Canonical Ltd.
// SPDX-License-Identifier: AGPL-3.0

package storage

import (
	"context"
	"database/sql"
	"encoding/json"
	"errors"
	"fmt"

	sq "github.com/Masterminds/squirrel"
	"github.com/google/uuid"

	"github.com/indevian-dev/TIKTAK-MONOREPO-sub000/internal/db"
	"github.com/indevian-dev/TIKTAK-MONOREPO-sub000/internal/types"
)

var workspaceColumns = []string{
	"w.id", "w.type", "w.title", "w.profile", "w.city_id",
	"w.is_active", "w.is_blocked", "w.created_at", "w.updated_at",
}

var workspaceSortColumns = map[string]string{
	types.SortCreatedAt: "w.created_at",
	types.SortUpdatedAt: "w.updated_at",
	types.SortTitle:     "w.title",
}

func scanWorkspace(row scanner) (*types.Workspace, error) {
	var (
		w      types.Workspace
		cityID sql.NullString
	)

	err := row.Scan(&w.ID, &w.Type, &w.Title, &w.Profile, &cityID, &w.IsActive, &w.IsBlocked, &w.CreatedAt, &w.UpdatedAt)
	if err != nil {
		return nil, err
	}
	w.CityID = cityID.String

	return &w, nil
}

func (s *Storage) CreateWorkspace(ctx context.Context, w *types.Workspace) (*types.Workspace, error) {
	ctx, span := s.tracer.Start(ctx, "storage.Storage.CreateWorkspace")
	defer span.End()

	id, err := uuid.NewV7()
	if err != nil {
		return nil, fmt.Errorf("failed to generate workspace ID: %w", err)
	}

	row := s.db.Statement(ctx).
		Insert("workspaces AS w").
		Columns("id", "type", "title", "profile", "city_id", "is_active", "is_blocked").
		Values(id.String(), w.Type, w.Title, w.Profile, nullString(w.CityID), w.IsActive, w.IsBlocked).
		Suffix("RETURNING " + joinColumns(workspaceColumns)).
		QueryRowContext(ctx)

	created, err := scanWorkspace(row)
	if err != nil {
		return nil, translateWriteError(err, "insert workspace")
	}

	return created, nil
}

func (s *Storage) GetWorkspace(ctx context.Context, id string) (*types.Workspace, error) {
	ctx, span := s.tracer.Start(ctx, "storage.Storage.GetWorkspace")
	defer span.End()

	if !validID(id) {
		return nil, ErrNotFound
	}

	row := s.db.Statement(ctx).
		Select(workspaceColumns...).
		From("workspaces w").
		Where(sq.Eq{"w.id": id}).
		QueryRowContext(ctx)

	w, err := scanWorkspace(row)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, ErrNotFound
		}
		return nil, fmt.Errorf("failed to get workspace: %w", err)
	}

	return w, nil
}

// GetWorkspacesByIDs returns the rows that exist among ids; unknown ids are skipped.
func (s *Storage) GetWorkspacesByIDs(ctx context.Context, ids []string) ([]*types.Workspace, error) {
	ctx, span := s.tracer.Start(ctx, "storage.Storage.GetWorkspacesByIDs")
	defer span.End()

	valid := make([]string, 0, len(ids))
	for _, id := range ids {
		if validID(id) {
			valid = append(valid, id)
		}
	}
	if len(valid) == 0 {
		return []*types.Workspace{}, nil
	}

	rows, err := s.db.Statement(ctx).
		Select(workspaceColumns...).
		From("workspaces w").
		Where(sq.Eq{"w.id": valid}).
		OrderBy("w.created_at DESC").
		QueryContext(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to list workspaces: %w", err)
	}
	defer rows.Close()

	return collectWorkspaces(rows)
}

func (s *Storage) UpdateWorkspace(ctx context.Context, id string, u *types.WorkspaceUpdate) (*types.Workspace, error) {
	ctx, span := s.tracer.Start(ctx, "storage.Storage.UpdateWorkspace")
	defer span.End()

	if !validID(id) {
		return nil, ErrNotFound
	}

	updateMap := map[string]interface{}{
		"updated_at": sq.Expr("now()"),
	}
	if u.Title != nil {
		updateMap["title"] = *u.Title
	}
	if u.Profile != nil {
		updateMap["profile"] = *u.Profile
	}
	if u.CityID != nil {
		updateMap["city_id"] = nullString(*u.CityID)
	}
	if u.IsActive != nil {
		updateMap["is_active"] = *u.IsActive
	}
	if u.IsBlocked != nil {
		updateMap["is_blocked"] = *u.IsBlocked
	}

	row := s.db.Statement(ctx).
		Update("workspaces AS w").
		SetMap(updateMap).
		Where(sq.Eq{"w.id": id}).
		Suffix("RETURNING " + joinColumns(workspaceColumns)).
		QueryRowContext(ctx)

	w, err := scanWorkspace(row)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, ErrNotFound
		}
		return nil, fmt.Errorf("failed to update workspace: %w", err)
	}

	return w, nil
}

// DeleteWorkspace removes the row; access edges and invitations cascade.
func (s *Storage) DeleteWorkspace(ctx context.Context, id string) error {
	ctx, span := s.tracer.Start(ctx, "storage.Storage.DeleteWorkspace")
	defer span.End()

	if !validID(id) {
		return ErrNotFound
	}

	res, err := s.db.Statement(ctx).
		Delete("workspaces").
		Where(sq.Eq{"id": id}).
		ExecContext(ctx)
	if err != nil {
		return fmt.Errorf("failed to delete workspace: %w", err)
	}

	return requireAffected(res)
}

func (s *Storage) ListWorkspacesByType(ctx context.Context, t types.WorkspaceType, f types.WorkspaceFilter, sort types.WorkspaceSort, p types.Pagination) ([]*types.Workspace, int64, error) {
	ctx, span := s.tracer.Start(ctx, "storage.Storage.ListWorkspacesByType")
	defer span.End()

	where, err := workspaceFilter(t, f)
	if err != nil {
		return nil, 0, err
	}

	var total int64
	err = s.db.Statement(ctx).
		Select("COUNT(*)").
		From("workspaces w").
		Where(where).
		QueryRowContext(ctx).
		Scan(&total)
	if err != nil {
		return nil, 0, fmt.Errorf("failed to count workspaces: %w", err)
	}

	pageSize := db.PageSize(p.Size)
	rows, err := s.db.Statement(ctx).
		Select(workspaceColumns...).
		From("workspaces w").
		Where(where).
		OrderBy(workspaceOrder(sort)...).
		Limit(pageSize).
		Offset(db.Offset(p.Page, pageSize)).
		QueryContext(ctx)
	if err != nil {
		return nil, 0, fmt.Errorf("failed to list workspaces: %w", err)
	}
	defer rows.Close()

	workspaces, err := collectWorkspaces(rows)
	if err != nil {
		return nil, 0, err
	}

	return workspaces, total, nil
}

// ListDistinctProviderTags aggregates profile tags of visible providers.
// Profiles whose tags field is not an array are ignored.
func (s *Storage) ListDistinctProviderTags(ctx context.Context) ([]string, error) {
	ctx, span := s.tracer.Start(ctx, "storage.Storage.ListDistinctProviderTags")
	defer span.End()

	rows, err := s.db.Statement(ctx).
		Select("DISTINCT t.tag").
		From("workspaces w").
		CrossJoin("jsonb_array_elements_text(CASE WHEN jsonb_typeof(w.profile->'tags') = 'array' THEN w.profile->'tags' ELSE '[]'::jsonb END) AS t(tag)").
		Where(sq.Eq{
			"w.type":       types.WorkspaceTypeProvider,
			"w.is_active":  true,
			"w.is_blocked": false,
		}).
		OrderBy("t.tag").
		QueryContext(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to list provider tags: %w", err)
	}
	defer rows.Close()

	tags := make([]string, 0)
	for rows.Next() {
		var tag string
		if err := rows.Scan(&tag); err != nil {
			return nil, fmt.Errorf("failed to scan tag: %w", err)
		}
		tags = append(tags, tag)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("rows iteration error: %w", err)
	}

	return tags, nil
}

func workspaceFilter(t types.WorkspaceType, f types.WorkspaceFilter) (sq.And, error) {
	where := sq.And{sq.Eq{"w.type": t}}

	if f.IsActive != nil {
		where = append(where, sq.Eq{"w.is_active": *f.IsActive})
	}
	if f.IsBlocked != nil {
		where = append(where, sq.Eq{"w.is_blocked": *f.IsBlocked})
	}
	if f.CityID != "" {
		where = append(where, sq.Eq{"w.city_id": f.CityID})
	}
	if f.Search != "" {
		where = append(where, sq.ILike{"w.title": "%" + f.Search + "%"})
	}
	if f.Tag != "" {
		tag, err := json.Marshal([]string{f.Tag})
		if err != nil {
			return nil, fmt.Errorf("failed to encode tag filter: %w", err)
		}
		where = append(where, sq.Expr("w.profile->'tags' @> ?::jsonb", string(tag)))
	}

	return where, nil
}

func workspaceOrder(sort types.WorkspaceSort) []string {
	col, ok := workspaceSortColumns[sort.Field]
	if !ok {
		col = workspaceSortColumns[types.SortCreatedAt]
	}

	dir := "ASC"
	if sort.Desc {
		dir = "DESC"
	}

	return []string{col + " " + dir, "w.id " + dir}
}

func collectWorkspaces(rows *sql.Rows) ([]*types.Workspace, error) {
	workspaces := make([]*types.Workspace, 0)
	for rows.Next() {
		w, err := scanWorkspace(rows)
		if err != nil {
			return nil, fmt.Errorf("failed to scan workspace: %w", err)
		}
		workspaces = append(workspaces, w)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("rows iteration error: %w", err)
	}

	return workspaces, nil
}

func requireAffected(res sql.Result) error {
	n, err := res.RowsAffected()
	if err != nil {
		return fmt.Errorf("failed to check rows affected: %w", err)
	}
	if n == 0 {
		return ErrNotFound
	}
	return nil
}
