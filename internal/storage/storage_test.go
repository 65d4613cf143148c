// Copyright 2026 Canonical Ltd.
// SPDX-License-Identifier: AGPL-3.0

package storage

import (
	"errors"
	"fmt"
	"strings"
	"testing"

	sq "github.com/Masterminds/squirrel"
	"github.com/jackc/pgx/v5/pgconn"

	"github.com/indevian-dev/TIKTAK-MONOREPO-sub000/internal/types"
)

func TestEdgePredicates(t *testing.T) {
	tests := []struct {
		name     string
		pred     sq.Sqlizer
		expected string
	}{
		{name: "direct aliased", pred: DirectEdge("a"), expected: "a.via_workspace_id = a.target_workspace_id"},
		{name: "linked aliased", pred: LinkedEdge("a"), expected: "a.via_workspace_id <> a.target_workspace_id"},
		{name: "direct bare", pred: DirectEdge(""), expected: "via_workspace_id = target_workspace_id"},
	}

	for _, test := range tests {
		t.Run(test.name, func(t *testing.T) {
			sql, args, err := test.pred.ToSql()
			if err != nil {
				t.Fatalf("unexpected error: %v", err)
			}
			if sql != test.expected {
				t.Fatalf("expected %q, got %q", test.expected, sql)
			}
			if len(args) != 0 {
				t.Fatalf("expected no args, got %v", args)
			}
		})
	}
}

func TestWorkspaceFilter(t *testing.T) {
	active := true
	where, err := workspaceFilter(types.WorkspaceTypeProvider, types.WorkspaceFilter{
		IsActive: &active,
		CityID:   "baku",
		Search:   "math",
		Tag:      "robotics",
	})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	sql, args, err := sq.Select("w.id").From("workspaces w").Where(where).PlaceholderFormat(sq.Dollar).ToSql()
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	for _, fragment := range []string{"w.type = $1", "w.is_active = $2", "w.city_id = $3", "w.title ILIKE $4", "w.profile->'tags' @> $5::jsonb"} {
		if !strings.Contains(sql, fragment) {
			t.Fatalf("expected %q in %q", fragment, sql)
		}
	}

	if len(args) != 5 || args[3] != "%math%" || args[4] != `["robotics"]` {
		t.Fatalf("unexpected args %v", args)
	}
}

func TestWorkspaceOrder(t *testing.T) {
	if got := workspaceOrder(types.WorkspaceSort{Field: "title", Desc: true}); got[0] != "w.title DESC" {
		t.Fatalf("unexpected order %v", got)
	}

	if got := workspaceOrder(types.WorkspaceSort{Field: "drop table"}); got[0] != "w.created_at ASC" {
		t.Fatalf("expected unknown fields to fall back to created_at, got %v", got)
	}
}

func TestTranslateWriteError(t *testing.T) {
	tests := []struct {
		name     string
		err      error
		expected error
	}{
		{name: "unique", err: &pgconn.PgError{Code: "23505"}, expected: ErrDuplicateKey},
		{name: "foreign key", err: fmt.Errorf("wrapped: %w", &pgconn.PgError{Code: "23503"}), expected: ErrForeignKeyViolation},
	}

	for _, test := range tests {
		t.Run(test.name, func(t *testing.T) {
			if err := translateWriteError(test.err, "insert"); !errors.Is(err, test.expected) {
				t.Fatalf("expected %v, got %v", test.expected, err)
			}
		})
	}

	other := errors.New("connection reset")
	err := translateWriteError(other, "insert")
	if !errors.Is(err, other) || errors.Is(err, ErrDuplicateKey) {
		t.Fatalf("unexpected translation %v", err)
	}
}

func TestValidID(t *testing.T) {
	if validID("not-a-uuid") {
		t.Fatalf("expected invalid id")
	}
	if !validID("0190a5b2-7c1e-7d4a-8f3e-2b6c9d0e1f23") {
		t.Fatalf("expected valid id")
	}
}

func TestDomainError(t *testing.T) {
	tests := []struct {
		name     string
		err      error
		expected error
	}{
		{name: "not found", err: ErrNotFound, expected: types.ErrNotFound},
		{name: "duplicate", err: fmt.Errorf("insert access: %w", ErrDuplicateKey), expected: types.ErrAlreadyEnrolled},
		{name: "foreign key", err: ErrForeignKeyViolation, expected: types.ErrConflict},
	}

	for _, test := range tests {
		t.Run(test.name, func(t *testing.T) {
			if err := DomainError(test.err, types.ErrAlreadyEnrolled); !errors.Is(err, test.expected) {
				t.Fatalf("expected %v, got %v", test.expected, err)
			}
		})
	}

	if DomainError(nil, types.ErrConflict) != nil {
		t.Fatalf("expected nil to stay nil")
	}

	other := errors.New("connection reset")
	if err := DomainError(other, types.ErrConflict); err != other {
		t.Fatalf("expected unknown errors to pass through, got %v", err)
	}
}

func TestTxError(t *testing.T) {
	if TxError(nil) != nil {
		t.Fatalf("expected nil to stay nil")
	}

	if err := TxError(fmt.Errorf("respond: %w", types.ErrExpired)); !errors.Is(err, types.ErrExpired) {
		t.Fatalf("expected domain error to pass through, got %v", err)
	}

	if err := TxError(errors.New("connection reset")); !errors.Is(err, types.ErrTransactionFailed) {
		t.Fatalf("expected transaction failure, got %v", err)
	}
}
