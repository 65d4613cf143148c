// Copyright 2026 Canonical Ltd.
// SPDX-License-Identifier: AGPL-3.0

package storage

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	sq "github.com/Masterminds/squirrel"
	"github.com/google/uuid"

	"github.com/indevian-dev/TIKTAK-MONOREPO-sub000/internal/types"
)

var roleColumns = []string{
	"r.id", "r.name", "r.permissions", "r.for_workspace_type", "r.is_staff", "r.created_at", "r.updated_at",
}

func scanRole(row scanner) (*types.Role, error) {
	var (
		r       types.Role
		forType sql.NullString
	)

	err := row.Scan(&r.ID, &r.Name, &r.Permissions, &forType, &r.IsStaff, &r.CreatedAt, &r.UpdatedAt)
	if err != nil {
		return nil, err
	}
	r.ForWorkspaceType = types.WorkspaceType(forType.String)

	return &r, nil
}

func (s *Storage) CreateRole(ctx context.Context, r *types.Role) (*types.Role, error) {
	ctx, span := s.tracer.Start(ctx, "storage.Storage.CreateRole")
	defer span.End()

	id, err := uuid.NewV7()
	if err != nil {
		return nil, fmt.Errorf("failed to generate role ID: %w", err)
	}

	row := s.db.Statement(ctx).
		Insert("roles AS r").
		Columns("id", "name", "permissions", "for_workspace_type", "is_staff").
		Values(id.String(), r.Name, r.Permissions, nullString(string(r.ForWorkspaceType)), r.IsStaff).
		Suffix("RETURNING " + joinColumns(roleColumns)).
		QueryRowContext(ctx)

	created, err := scanRole(row)
	if err != nil {
		return nil, translateWriteError(err, "insert role")
	}

	return created, nil
}

func (s *Storage) GetRole(ctx context.Context, id string) (*types.Role, error) {
	ctx, span := s.tracer.Start(ctx, "storage.Storage.GetRole")
	defer span.End()

	if !validID(id) {
		return nil, ErrNotFound
	}

	return s.getRole(ctx, sq.Eq{"r.id": id})
}

func (s *Storage) GetRoleByName(ctx context.Context, name string) (*types.Role, error) {
	ctx, span := s.tracer.Start(ctx, "storage.Storage.GetRoleByName")
	defer span.End()

	return s.getRole(ctx, sq.Eq{"r.name": name})
}

func (s *Storage) getRole(ctx context.Context, where sq.Eq) (*types.Role, error) {
	row := s.db.Statement(ctx).
		Select(roleColumns...).
		From("roles r").
		Where(where).
		QueryRowContext(ctx)

	r, err := scanRole(row)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, ErrNotFound
		}
		return nil, fmt.Errorf("failed to get role: %w", err)
	}

	return r, nil
}

func (s *Storage) ListRoles(ctx context.Context) ([]*types.Role, error) {
	ctx, span := s.tracer.Start(ctx, "storage.Storage.ListRoles")
	defer span.End()

	rows, err := s.db.Statement(ctx).
		Select(roleColumns...).
		From("roles r").
		OrderBy("r.name").
		QueryContext(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to list roles: %w", err)
	}
	defer rows.Close()

	roles := make([]*types.Role, 0)
	for rows.Next() {
		r, err := scanRole(rows)
		if err != nil {
			return nil, fmt.Errorf("failed to scan role: %w", err)
		}
		roles = append(roles, r)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("rows iteration error: %w", err)
	}

	return roles, nil
}

// UpdateRole applies the non-nil fields; a permission set replaces the stored one.
// Renaming a role still referenced by edges or invitations fails with ErrForeignKeyViolation.
func (s *Storage) UpdateRole(ctx context.Context, id string, u *types.RoleUpdate) (*types.Role, error) {
	ctx, span := s.tracer.Start(ctx, "storage.Storage.UpdateRole")
	defer span.End()

	if !validID(id) {
		return nil, ErrNotFound
	}

	updateMap := map[string]interface{}{
		"updated_at": sq.Expr("now()"),
	}
	if u.Name != nil {
		updateMap["name"] = *u.Name
	}
	if u.Permissions != nil {
		updateMap["permissions"] = *u.Permissions
	}
	if u.ForWorkspaceType != nil {
		updateMap["for_workspace_type"] = nullString(string(*u.ForWorkspaceType))
	}
	if u.IsStaff != nil {
		updateMap["is_staff"] = *u.IsStaff
	}

	row := s.db.Statement(ctx).
		Update("roles AS r").
		SetMap(updateMap).
		Where(sq.Eq{"r.id": id}).
		Suffix("RETURNING " + joinColumns(roleColumns)).
		QueryRowContext(ctx)

	r, err := scanRole(row)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, ErrNotFound
		}
		return nil, translateWriteError(err, "update role")
	}

	return r, nil
}

func (s *Storage) DeleteRole(ctx context.Context, id string) error {
	ctx, span := s.tracer.Start(ctx, "storage.Storage.DeleteRole")
	defer span.End()

	if !validID(id) {
		return ErrNotFound
	}

	res, err := s.db.Statement(ctx).
		Delete("roles").
		Where(sq.Eq{"id": id}).
		ExecContext(ctx)
	if err != nil {
		return translateWriteError(err, "delete role")
	}

	return requireAffected(res)
}
