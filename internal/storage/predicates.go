// Copyright 2026 Canonical Ltd.
// SPDX-License-Identifier: AGPL-3.0

package storage

import (
	sq "github.com/Masterminds/squirrel"
)

// DirectEdge matches access rows that are memberships of the target workspace
// itself (via == target). Every membership query goes through this helper.
func DirectEdge(alias string) sq.Sqlizer {
	return sq.Expr(column(alias, "via_workspace_id") + " = " + column(alias, "target_workspace_id"))
}

// LinkedEdge matches access rows reaching the target through another workspace
// (via != target), i.e. enrollments and monitoring links.
func LinkedEdge(alias string) sq.Sqlizer {
	return sq.Expr(column(alias, "via_workspace_id") + " <> " + column(alias, "target_workspace_id"))
}

func column(alias, name string) string {
	if alias == "" {
		return name
	}
	return alias + "." + name
}
