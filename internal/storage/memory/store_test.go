// Copyright 2026 Canonical Ltd.
// SPDX-License-Identifier: AGPL-3.0

package memory

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/indevian-dev/TIKTAK-MONOREPO-sub000/internal/logging"
	"github.com/indevian-dev/TIKTAK-MONOREPO-sub000/internal/monitoring"
	"github.com/indevian-dev/TIKTAK-MONOREPO-sub000/internal/storage"
	"github.com/indevian-dev/TIKTAK-MONOREPO-sub000/internal/tracing"
	"github.com/indevian-dev/TIKTAK-MONOREPO-sub000/internal/types"
)

func newTestStore() *Store {
	logger := logging.NewNoopLogger()
	return NewStore(nil, tracing.NewNoopTracer(), monitoring.NewNoopMonitor("test", logger), logger)
}

func mustWorkspace(t *testing.T, s *Store, wt types.WorkspaceType, title string) *types.Workspace {
	t.Helper()

	w, err := s.CreateWorkspace(context.Background(), &types.Workspace{Type: wt, Title: title, IsActive: true})
	require.NoError(t, err)
	return w
}

func TestStoreSeedsDefaultRoles(t *testing.T) {
	s := newTestStore()

	roles, err := s.ListRoles(context.Background())
	require.NoError(t, err)
	assert.Len(t, roles, len(types.DefaultRoles()))

	r, err := s.GetRoleByName(context.Background(), types.RoleParentMonitor)
	require.NoError(t, err)
	assert.Equal(t, types.WorkspaceTypeStudent, r.ForWorkspaceType)
}

func TestCreateAccessConstraints(t *testing.T) {
	ctx := context.Background()
	s := newTestStore()

	provider := mustWorkspace(t, s, types.WorkspaceTypeProvider, "P")
	student := mustWorkspace(t, s, types.WorkspaceTypeStudent, "S")
	other := mustWorkspace(t, s, types.WorkspaceTypeStudent, "S2")

	_, err := s.CreateAccess(ctx, &types.Access{ActorAccountID: "a", TargetWorkspaceID: provider.ID, ViaWorkspaceID: student.ID, AccessRole: types.RoleStudent})
	require.NoError(t, err)

	tests := []struct {
		name     string
		access   types.Access
		expected error
	}{
		{
			name:     "duplicate triple",
			access:   types.Access{ActorAccountID: "a", TargetWorkspaceID: provider.ID, ViaWorkspaceID: student.ID, AccessRole: types.RoleStudent},
			expected: storage.ErrDuplicateKey,
		},
		{
			name:     "second linked edge for the same actor and target",
			access:   types.Access{ActorAccountID: "a", TargetWorkspaceID: provider.ID, ViaWorkspaceID: other.ID, AccessRole: types.RoleStudent},
			expected: storage.ErrDuplicateKey,
		},
		{
			name:     "unknown role",
			access:   types.Access{ActorAccountID: "b", TargetWorkspaceID: provider.ID, ViaWorkspaceID: provider.ID, AccessRole: "ghost"},
			expected: storage.ErrForeignKeyViolation,
		},
		{
			name:     "unknown workspace",
			access:   types.Access{ActorAccountID: "b", TargetWorkspaceID: "missing", ViaWorkspaceID: "missing", AccessRole: types.RoleMember},
			expected: storage.ErrForeignKeyViolation,
		},
	}

	for _, test := range tests {
		t.Run(test.name, func(t *testing.T) {
			_, err := s.CreateAccess(ctx, &test.access)
			assert.ErrorIs(t, err, test.expected)
		})
	}

	// a direct edge next to a linked one is a different shape and allowed
	_, err = s.CreateAccess(ctx, &types.Access{ActorAccountID: "a", TargetWorkspaceID: provider.ID, ViaWorkspaceID: provider.ID, AccessRole: types.RoleMember})
	assert.NoError(t, err)
}

func TestWithTxRollsBackOnError(t *testing.T) {
	ctx := context.Background()
	s := newTestStore()
	boom := errors.New("boom")

	var created *types.Workspace
	err := s.WithTx(ctx, func(ctx context.Context) error {
		var err error
		created, err = s.CreateWorkspace(ctx, &types.Workspace{Type: types.WorkspaceTypeParent, Title: "D"})
		if err != nil {
			return err
		}
		return boom
	})
	require.ErrorIs(t, err, boom)

	_, err = s.GetWorkspace(ctx, created.ID)
	assert.ErrorIs(t, err, storage.ErrNotFound)

	err = s.WithTx(ctx, func(ctx context.Context) error {
		created, err = s.CreateWorkspace(ctx, &types.Workspace{Type: types.WorkspaceTypeParent, Title: "D"})
		return err
	})
	require.NoError(t, err)

	_, err = s.GetWorkspace(ctx, created.ID)
	assert.NoError(t, err)
}

func TestDirectAndLinkedListingsDoNotOverlap(t *testing.T) {
	ctx := context.Background()
	s := newTestStore()

	provider := mustWorkspace(t, s, types.WorkspaceTypeProvider, "P")
	student := mustWorkspace(t, s, types.WorkspaceTypeStudent, "S")

	_, err := s.CreateAccess(ctx, &types.Access{ActorAccountID: "owner", TargetWorkspaceID: provider.ID, ViaWorkspaceID: provider.ID, AccessRole: types.RoleManager})
	require.NoError(t, err)
	_, err = s.CreateAccess(ctx, &types.Access{ActorAccountID: "kid", TargetWorkspaceID: provider.ID, ViaWorkspaceID: student.ID, AccessRole: types.RoleStudent})
	require.NoError(t, err)

	direct, total, err := s.ListDirectAccessByWorkspace(ctx, provider.ID, types.Pagination{})
	require.NoError(t, err)
	assert.EqualValues(t, 1, total)
	assert.Equal(t, "owner", direct[0].ActorAccountID)

	linked, total, err := s.ListLinkedAccessByTarget(ctx, provider.ID, types.Pagination{})
	require.NoError(t, err)
	assert.EqualValues(t, 1, total)
	assert.Equal(t, "kid", linked[0].ActorAccountID)

	via, err := s.ListLinkedAccessByVia(ctx, student.ID)
	require.NoError(t, err)
	require.Len(t, via, 1)
	assert.Equal(t, provider.ID, via[0].TargetWorkspaceID)
}

func TestRoleReferencedCannotBeRenamedOrDeleted(t *testing.T) {
	ctx := context.Background()
	s := newTestStore()

	w := mustWorkspace(t, s, types.WorkspaceTypePersonal, "W")
	_, err := s.CreateAccess(ctx, &types.Access{ActorAccountID: "a", TargetWorkspaceID: w.ID, ViaWorkspaceID: w.ID, AccessRole: types.RoleManager})
	require.NoError(t, err)

	manager, err := s.GetRoleByName(ctx, types.RoleManager)
	require.NoError(t, err)

	rename := "boss"
	_, err = s.UpdateRole(ctx, manager.ID, &types.RoleUpdate{Name: &rename})
	assert.ErrorIs(t, err, storage.ErrForeignKeyViolation)

	err = s.DeleteRole(ctx, manager.ID)
	assert.ErrorIs(t, err, storage.ErrForeignKeyViolation)

	member, err := s.GetRoleByName(ctx, types.RoleMember)
	require.NoError(t, err)
	assert.NoError(t, s.DeleteRole(ctx, member.ID))
}

func TestResolveInvitationOnlyOnce(t *testing.T) {
	ctx := context.Background()
	s := newTestStore()
	now := time.Now()

	w := mustWorkspace(t, s, types.WorkspaceTypeProvider, "P")
	inv, err := s.CreateInvitation(ctx, &types.Invitation{ForWorkspaceID: w.ID, InvitedAccountID: "x", InvitedByAccountID: "y", AccessRole: types.RoleMember, ExpireAt: now.Add(time.Hour)})
	require.NoError(t, err)

	_, err = s.CreateInvitation(ctx, &types.Invitation{ForWorkspaceID: w.ID, InvitedAccountID: "x", InvitedByAccountID: "y", AccessRole: types.RoleMember, ExpireAt: now.Add(time.Hour)})
	assert.ErrorIs(t, err, storage.ErrDuplicateKey)

	resolved, err := s.ResolveInvitation(ctx, inv.ID, true, "x", now)
	require.NoError(t, err)
	assert.Equal(t, types.InvitationApproved, resolved.State())

	_, err = s.ResolveInvitation(ctx, inv.ID, false, "x", now)
	assert.ErrorIs(t, err, storage.ErrNotFound)
}

func TestDeclineExpiredInvitations(t *testing.T) {
	ctx := context.Background()
	s := newTestStore()
	now := time.Now()

	w := mustWorkspace(t, s, types.WorkspaceTypeProvider, "P")
	_, err := s.CreateInvitation(ctx, &types.Invitation{ForWorkspaceID: w.ID, InvitedAccountID: "old", AccessRole: types.RoleMember, ExpireAt: now.Add(-time.Minute)})
	require.NoError(t, err)
	_, err = s.CreateInvitation(ctx, &types.Invitation{ForWorkspaceID: w.ID, InvitedAccountID: "fresh", AccessRole: types.RoleMember, ExpireAt: now.Add(time.Hour)})
	require.NoError(t, err)

	n, err := s.DeclineExpiredInvitations(ctx, now, types.SystemAccountID)
	require.NoError(t, err)
	assert.EqualValues(t, 1, n)

	all, err := s.ListInvitationsByWorkspace(ctx, w.ID)
	require.NoError(t, err)
	for _, inv := range all {
		if inv.InvitedAccountID == "old" {
			assert.True(t, inv.IsDeclined)
			assert.Equal(t, types.SystemAccountID, inv.ResolvedByAccountID)
		} else {
			assert.True(t, inv.IsPending())
		}
	}
}

func TestListWorkspacesByTypeFiltersAndPages(t *testing.T) {
	ctx := context.Background()
	s := newTestStore()

	for _, title := range []string{"Alpha school", "Beta school", "Gamma club"} {
		_, err := s.CreateWorkspace(ctx, &types.Workspace{Type: types.WorkspaceTypeProvider, Title: title, IsActive: true, Profile: types.Profile{Tags: []string{"math"}}})
		require.NoError(t, err)
	}
	_, err := s.CreateWorkspace(ctx, &types.Workspace{Type: types.WorkspaceTypeProvider, Title: "Hidden school", IsBlocked: true})
	require.NoError(t, err)

	blocked := false
	items, total, err := s.ListWorkspacesByType(ctx, types.WorkspaceTypeProvider,
		types.WorkspaceFilter{IsBlocked: &blocked, Search: "SCHOOL"},
		types.WorkspaceSort{Field: types.SortTitle, Desc: true},
		types.Pagination{Page: 1, Size: 1},
	)
	require.NoError(t, err)
	assert.EqualValues(t, 2, total)
	require.Len(t, items, 1)
	assert.Equal(t, "Beta school", items[0].Title)

	tags, err := s.ListDistinctProviderTags(ctx)
	require.NoError(t, err)
	assert.Equal(t, []string{"math"}, tags)
}
