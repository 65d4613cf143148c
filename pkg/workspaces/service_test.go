// Copyright 2026 Canonical Ltd.
// SPDX-License-Identifier: AGPL-3.0

package workspaces

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"

	"github.com/indevian-dev/TIKTAK-MONOREPO-sub000/internal/cache"
	"github.com/indevian-dev/TIKTAK-MONOREPO-sub000/internal/logging"
	"github.com/indevian-dev/TIKTAK-MONOREPO-sub000/internal/monitoring"
	"github.com/indevian-dev/TIKTAK-MONOREPO-sub000/internal/storage/memory"
	"github.com/indevian-dev/TIKTAK-MONOREPO-sub000/internal/tracing"
	"github.com/indevian-dev/TIKTAK-MONOREPO-sub000/internal/types"
)

//go:generate mockgen -build_flags=--mod=mod -package workspaces -destination ./mock_cache.go -source=../../internal/cache/interfaces.go

func newTestService(c cache.CacheInterface) (*Service, *memory.Store) {
	logger := logging.NewNoopLogger()
	tracer := tracing.NewNoopTracer()
	monitor := monitoring.NewNoopMonitor("test", logger)

	store := memory.NewStore(nil, tracer, monitor, logger)
	return NewService(store, c, time.Minute, tracer, monitor, logger), store
}

func seedOwned(t *testing.T, store *memory.Store, wt types.WorkspaceType, owner, role string, profile types.Profile) *types.Workspace {
	t.Helper()
	ctx := context.Background()

	w, err := store.CreateWorkspace(ctx, &types.Workspace{Type: wt, Title: "W", Profile: profile, IsActive: true})
	require.NoError(t, err)

	_, err = store.CreateAccess(ctx, &types.Access{ActorAccountID: owner, TargetWorkspaceID: w.ID, ViaWorkspaceID: w.ID, AccessRole: role})
	require.NoError(t, err)

	return w
}

func ptr[T any](v T) *T {
	return &v
}

func TestService_Update(t *testing.T) {
	ctx := context.Background()
	s, store := newTestService(cache.NewNoopCache())

	personal := seedOwned(t, store, types.WorkspaceTypePersonal, "alice", types.RoleManager, types.Profile{})
	staff := seedOwned(t, store, types.WorkspaceTypeStaff, "bob", types.RoleStaffEditor, types.Profile{})

	tests := []struct {
		name     string
		actor    string
		id       string
		update   *types.WorkspaceUpdate
		expected error
	}{
		{name: "stranger", actor: "bob", id: personal.ID, update: &types.WorkspaceUpdate{Title: ptr("x")}, expected: types.ErrForbidden},
		{name: "direct member without owner role", actor: "bob", id: staff.ID, update: &types.WorkspaceUpdate{Title: ptr("x")}, expected: types.ErrForbidden},
		{name: "moderation flags", actor: "alice", id: personal.ID, update: &types.WorkspaceUpdate{IsActive: ptr(false)}, expected: types.ErrForbidden},
		{name: "missing workspace", actor: "alice", id: "missing", update: &types.WorkspaceUpdate{Title: ptr("x")}, expected: types.ErrNotFound},
		{name: "empty update", actor: "alice", id: personal.ID, update: &types.WorkspaceUpdate{}, expected: types.ErrInvalidInput},
		{name: "invalid profile", actor: "alice", id: personal.ID, update: &types.WorkspaceUpdate{Profile: &types.Profile{Email: "nope"}}, expected: types.ErrInvalidInput},
	}

	for _, test := range tests {
		t.Run(test.name, func(t *testing.T) {
			_, err := s.Update(ctx, test.actor, test.id, test.update)
			assert.ErrorIs(t, err, test.expected)
		})
	}

	updated, err := s.Update(ctx, "alice", personal.ID, &types.WorkspaceUpdate{
		Title:   ptr("Renamed"),
		Profile: &types.Profile{Tags: []string{" math ", "math", ""}},
	})
	require.NoError(t, err)
	assert.Equal(t, "Renamed", updated.Title)
	assert.Equal(t, []string{"math"}, updated.Profile.Tags)
	assert.False(t, updated.UpdatedAt.Before(personal.UpdatedAt))
}

func TestService_ListByType(t *testing.T) {
	ctx := context.Background()
	s, store := newTestService(cache.NewNoopCache())

	for i := 0; i < 3; i++ {
		seedOwned(t, store, types.WorkspaceTypeProvider, "mgr", types.RoleManager, types.Profile{})
	}
	seedOwned(t, store, types.WorkspaceTypePersonal, "mgr", types.RoleManager, types.Profile{})

	_, err := s.ListByType(ctx, "school", types.WorkspaceFilter{}, types.WorkspaceSort{}, types.Pagination{})
	assert.ErrorIs(t, err, types.ErrInvalidType)

	_, err = s.ListByType(ctx, types.WorkspaceTypeProvider, types.WorkspaceFilter{}, types.WorkspaceSort{Field: "owner"}, types.Pagination{})
	assert.ErrorIs(t, err, types.ErrInvalidInput)

	result, err := s.ListByType(ctx, types.WorkspaceTypeProvider, types.WorkspaceFilter{}, types.WorkspaceSort{Field: types.SortCreatedAt, Desc: true}, types.Pagination{Page: 2, Size: 2})
	require.NoError(t, err)
	assert.Len(t, result.Items, 1)
	assert.EqualValues(t, 3, result.Total)
	assert.EqualValues(t, 2, result.Page)
	assert.EqualValues(t, 2, result.Size)
}

func TestService_ListDistinctTags(t *testing.T) {
	ctx := context.Background()

	tests := []struct {
		name       string
		setupMocks func(*MockCacheInterface)
		expected   []string
	}{
		{
			name: "cache hit",
			setupMocks: func(c *MockCacheInterface) {
				c.EXPECT().Get(gomock.Any(), cache.ProviderTagsKey).Return([]byte(`["cached"]`), nil)
			},
			expected: []string{"cached"},
		},
		{
			name: "cache miss populates",
			setupMocks: func(c *MockCacheInterface) {
				c.EXPECT().Get(gomock.Any(), cache.ProviderTagsKey).Return(nil, cache.ErrMiss)
				c.EXPECT().Set(gomock.Any(), cache.ProviderTagsKey, []byte(`["art","math"]`), time.Minute).Return(nil)
			},
			expected: []string{"art", "math"},
		},
		{
			name: "cache down falls back to storage",
			setupMocks: func(c *MockCacheInterface) {
				c.EXPECT().Get(gomock.Any(), cache.ProviderTagsKey).Return(nil, errors.New("connection refused"))
				c.EXPECT().Set(gomock.Any(), cache.ProviderTagsKey, gomock.Any(), time.Minute).Return(errors.New("connection refused"))
			},
			expected: []string{"art", "math"},
		},
	}

	for _, test := range tests {
		t.Run(test.name, func(t *testing.T) {
			ctrl := gomock.NewController(t)
			defer ctrl.Finish()

			mockCache := NewMockCacheInterface(ctrl)
			test.setupMocks(mockCache)

			s, store := newTestService(mockCache)
			seedOwned(t, store, types.WorkspaceTypeProvider, "mgr", types.RoleManager, types.Profile{Tags: []string{"math", "art"}})

			blocked, err := store.CreateWorkspace(ctx, &types.Workspace{Type: types.WorkspaceTypeProvider, Title: "B", IsActive: true, IsBlocked: true, Profile: types.Profile{Tags: []string{"hidden"}}})
			require.NoError(t, err)
			require.NotEmpty(t, blocked.ID)

			tags, err := s.ListDistinctTags(ctx)
			require.NoError(t, err)
			assert.Equal(t, test.expected, tags)
		})
	}
}

func TestService_StaffAdministration(t *testing.T) {
	ctx := context.Background()

	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockCache := NewMockCacheInterface(ctrl)
	mockCache.EXPECT().Delete(gomock.Any(), cache.ProviderTagsKey).Return(nil).Times(4)

	s, store := newTestService(mockCache)

	applicant, err := store.CreateWorkspace(ctx, &types.Workspace{Type: types.WorkspaceTypeProvider, Title: "Applicant"})
	require.NoError(t, err)
	rejected, err := store.CreateWorkspace(ctx, &types.Workspace{Type: types.WorkspaceTypeProvider, Title: "Rejected"})
	require.NoError(t, err)
	personal := seedOwned(t, store, types.WorkspaceTypePersonal, "alice", types.RoleManager, types.Profile{})

	approved, err := s.StaffEvaluateApplication(ctx, applicant.ID, true)
	require.NoError(t, err)
	assert.True(t, approved.IsActive)
	assert.False(t, approved.IsBlocked)

	blocked, err := s.StaffEvaluateApplication(ctx, rejected.ID, false)
	require.NoError(t, err)
	assert.True(t, blocked.IsBlocked)
	assert.False(t, blocked.IsActive)

	reconsidered, err := s.StaffEvaluateApplication(ctx, rejected.ID, true)
	require.NoError(t, err)
	assert.True(t, reconsidered.IsActive)
	assert.False(t, reconsidered.IsBlocked)

	_, err = s.StaffEvaluateApplication(ctx, personal.ID, true)
	assert.ErrorIs(t, err, types.ErrInvalidType)

	_, err = store.CreateAccess(ctx, &types.Access{ActorAccountID: "mgr", TargetWorkspaceID: applicant.ID, ViaWorkspaceID: applicant.ID, AccessRole: types.RoleManager})
	require.NoError(t, err)

	require.NoError(t, s.StaffDeleteProvider(ctx, applicant.ID))

	_, err = s.Get(ctx, applicant.ID)
	assert.ErrorIs(t, err, types.ErrNotFound)

	_, err = store.FindAccess(ctx, "mgr", applicant.ID, "")
	assert.Error(t, err)

	assert.ErrorIs(t, s.StaffDeleteProvider(ctx, applicant.ID), types.ErrNotFound)
}

// interleavedTagStore runs during in the middle of the tag read, as a provider
// update landing between the read and the cache fill would.
type interleavedTagStore struct {
	*memory.Store
	during func()
}

func (s *interleavedTagStore) ListDistinctProviderTags(ctx context.Context) ([]string, error) {
	tags, err := s.Store.ListDistinctProviderTags(ctx)
	if s.during != nil {
		s.during()
	}
	return tags, err
}

func TestService_ListDistinctTagsSkipsFillAfterInvalidation(t *testing.T) {
	ctx := context.Background()

	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	logger := logging.NewNoopLogger()
	tracer := tracing.NewNoopTracer()
	monitor := monitoring.NewNoopMonitor("test", logger)

	mockCache := NewMockCacheInterface(ctrl)
	store := &interleavedTagStore{Store: memory.NewStore(nil, tracer, monitor, logger)}
	s := NewService(store, mockCache, time.Minute, tracer, monitor, logger)

	p := seedOwned(t, store.Store, types.WorkspaceTypeProvider, "alice", types.RoleManager, types.Profile{Tags: []string{"math"}})

	gomock.InOrder(
		mockCache.EXPECT().Get(gomock.Any(), cache.ProviderTagsKey).Return(nil, cache.ErrMiss),
		mockCache.EXPECT().Delete(gomock.Any(), cache.ProviderTagsKey).Return(nil),
	)

	store.during = func() {
		store.during = nil
		_, err := s.StaffUpdateProvider(ctx, p.ID, &types.WorkspaceUpdate{Profile: &types.Profile{Tags: []string{"music"}}})
		require.NoError(t, err)
	}

	tags, err := s.ListDistinctTags(ctx)
	require.NoError(t, err)
	assert.Equal(t, []string{"math"}, tags)

	gomock.InOrder(
		mockCache.EXPECT().Get(gomock.Any(), cache.ProviderTagsKey).Return(nil, cache.ErrMiss),
		mockCache.EXPECT().Set(gomock.Any(), cache.ProviderTagsKey, []byte(`["music"]`), time.Minute).Return(nil),
	)

	tags, err = s.ListDistinctTags(ctx)
	require.NoError(t, err)
	assert.Equal(t, []string{"music"}, tags)
}
