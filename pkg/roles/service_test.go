// Copyright 2026 Canonical Ltd.
// SPDX-License-Identifier: AGPL-3.0

package roles

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/indevian-dev/TIKTAK-MONOREPO-sub000/internal/logging"
	"github.com/indevian-dev/TIKTAK-MONOREPO-sub000/internal/monitoring"
	"github.com/indevian-dev/TIKTAK-MONOREPO-sub000/internal/storage/memory"
	"github.com/indevian-dev/TIKTAK-MONOREPO-sub000/internal/tracing"
	"github.com/indevian-dev/TIKTAK-MONOREPO-sub000/internal/types"
)

func newTestService() (*Service, *memory.Store) {
	logger := logging.NewNoopLogger()
	tracer := tracing.NewNoopTracer()
	monitor := monitoring.NewNoopMonitor("test", logger)

	store := memory.NewStore(nil, tracer, monitor, logger)
	return NewService(store, tracer, monitor, logger), store
}

func TestService_Create(t *testing.T) {
	ctx := context.Background()
	s, _ := newTestService()

	tests := []struct {
		name     string
		role     *types.Role
		expected error
	}{
		{name: "blank name", role: &types.Role{Name: "  "}, expected: types.ErrInvalidInput},
		{name: "unknown workspace type", role: &types.Role{Name: "tutor", ForWorkspaceType: "school"}, expected: types.ErrInvalidType},
		{name: "duplicate seeded name", role: &types.Role{Name: types.RoleManager}, expected: types.ErrConflict},
	}

	for _, test := range tests {
		t.Run(test.name, func(t *testing.T) {
			_, err := s.Create(ctx, test.role)
			assert.ErrorIs(t, err, test.expected)
		})
	}

	created, err := s.Create(ctx, &types.Role{
		Name:             " tutor ",
		Permissions:      types.Permissions{"lessons.write", "lessons.write", ""},
		ForWorkspaceType: types.WorkspaceTypeProvider,
	})
	require.NoError(t, err)
	assert.Equal(t, "tutor", created.Name)
	assert.Equal(t, types.Permissions{"lessons.write"}, created.Permissions)

	found, err := s.FindByName(ctx, "tutor")
	require.NoError(t, err)
	assert.Equal(t, created.ID, found.ID)
}

func TestService_UpdateReplacesPermissions(t *testing.T) {
	ctx := context.Background()
	s, _ := newTestService()

	created, err := s.Create(ctx, &types.Role{Name: "tutor", Permissions: types.Permissions{"a", "b"}})
	require.NoError(t, err)

	permissions := types.Permissions{"c"}
	updated, err := s.Update(ctx, created.ID, &types.RoleUpdate{Permissions: &permissions})
	require.NoError(t, err)
	assert.Equal(t, types.Permissions{"c"}, updated.Permissions)

	_, err = s.Update(ctx, "missing", &types.RoleUpdate{Permissions: &permissions})
	assert.ErrorIs(t, err, types.ErrNotFound)

	taken := types.RoleMember
	_, err = s.Update(ctx, created.ID, &types.RoleUpdate{Name: &taken})
	assert.ErrorIs(t, err, types.ErrConflict)
}

func TestService_ReferencedRoleIsProtected(t *testing.T) {
	ctx := context.Background()
	s, store := newTestService()

	w, err := store.CreateWorkspace(ctx, &types.Workspace{Type: types.WorkspaceTypePersonal, Title: "Home", IsActive: true})
	require.NoError(t, err)

	tutor, err := s.Create(ctx, &types.Role{Name: "tutor"})
	require.NoError(t, err)

	_, err = store.CreateAccess(ctx, &types.Access{ActorAccountID: "alice", TargetWorkspaceID: w.ID, ViaWorkspaceID: w.ID, AccessRole: "tutor"})
	require.NoError(t, err)

	renamed := "instructor"
	_, err = s.Update(ctx, tutor.ID, &types.RoleUpdate{Name: &renamed})
	assert.ErrorIs(t, err, types.ErrConflict)

	assert.ErrorIs(t, s.Delete(ctx, tutor.ID), types.ErrConflict)

	unused, err := s.Create(ctx, &types.Role{Name: "unused"})
	require.NoError(t, err)
	require.NoError(t, s.Delete(ctx, unused.ID))

	_, err = s.FindByName(ctx, "unused")
	assert.ErrorIs(t, err, types.ErrNotFound)
}

func TestService_PermissionMutations(t *testing.T) {
	ctx := context.Background()
	s, _ := newTestService()

	r, err := s.AddPermission(ctx, types.RoleMember, types.PermissionMembersInvite)
	require.NoError(t, err)
	assert.True(t, r.Permissions.Has(types.PermissionMembersInvite))

	r, err = s.AddPermission(ctx, types.RoleMember, types.PermissionMembersInvite)
	require.NoError(t, err)
	assert.Len(t, r.Permissions, 2)

	r, err = s.RemovePermission(ctx, types.RoleMember, types.PermissionMembersInvite)
	require.NoError(t, err)
	assert.False(t, r.Permissions.Has(types.PermissionMembersInvite))

	_, err = s.AddPermission(ctx, "missing", "x")
	assert.ErrorIs(t, err, types.ErrNotFound)

	_, err = s.AddPermission(ctx, types.RoleMember, " ")
	assert.ErrorIs(t, err, types.ErrInvalidInput)
}
