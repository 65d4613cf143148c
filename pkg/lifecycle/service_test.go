// Copyright 2026 Canonical Ltd.
// SPDX-License-Identifier: AGPL-3.0

package lifecycle

import (
	"context"
	"errors"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"

	"github.com/indevian-dev/TIKTAK-MONOREPO-sub000/internal/cache"
	"github.com/indevian-dev/TIKTAK-MONOREPO-sub000/internal/kratos"
	"github.com/indevian-dev/TIKTAK-MONOREPO-sub000/internal/logging"
	"github.com/indevian-dev/TIKTAK-MONOREPO-sub000/internal/monitoring"
	"github.com/indevian-dev/TIKTAK-MONOREPO-sub000/internal/notify"
	"github.com/indevian-dev/TIKTAK-MONOREPO-sub000/internal/storage"
	"github.com/indevian-dev/TIKTAK-MONOREPO-sub000/internal/storage/memory"
	"github.com/indevian-dev/TIKTAK-MONOREPO-sub000/internal/tracing"
	"github.com/indevian-dev/TIKTAK-MONOREPO-sub000/internal/types"
	"github.com/indevian-dev/TIKTAK-MONOREPO-sub000/pkg/accessgraph"
)

var epoch = time.Date(2026, 5, 4, 9, 30, 0, 0, time.UTC)

type fixture struct {
	store    *memory.Store
	graph    *accessgraph.Service
	notifier *MockNotifierInterface
	staff    *MockStaffGraphInterface
	cache    *MockCacheInterface
	service  *Service
}

func newFixture(t *testing.T, ctrl *gomock.Controller) *fixture {
	t.Helper()

	logger := logging.NewNoopLogger()
	tracer := tracing.NewNoopTracer()
	monitor := monitoring.NewNoopMonitor("test", logger)

	now := func() time.Time { return epoch }

	f := new(fixture)
	f.store = memory.NewStore(now, tracer, monitor, logger)
	f.graph = accessgraph.NewService(f.store, kratos.NewStaticDirectory(
		types.Account{ID: "a1", Email: "a1@x.com"},
		types.Account{ID: "a2", Email: "a2@x.com"},
		types.Account{ID: "a3", Email: "a3@x.com"},
	), accessgraph.NewMockStaffGraphInterface(ctrl), tracer, monitor, logger)
	f.notifier = NewMockNotifierInterface(ctrl)
	f.staff = NewMockStaffGraphInterface(ctrl)
	f.cache = NewMockCacheInterface(ctrl)
	f.service = NewService(f.store, f.notifier, f.staff, f.cache, now, tracer, monitor, logger)

	return f
}

func (f *fixture) quiet() {
	f.notifier.EXPECT().Notify(gomock.Any(), gomock.Any()).AnyTimes()
	f.cache.EXPECT().Delete(gomock.Any(), gomock.Any()).Return(nil).AnyTimes()
}

func (f *fixture) provider(t *testing.T, owner string, trialDays int) *types.Workspace {
	t.Helper()

	p, err := f.service.CreateWorkspace(context.Background(), owner, &NewWorkspace{
		Title:   "Academy",
		Type:    types.WorkspaceTypeProvider,
		Profile: types.Profile{ProviderTrialDaysCount: trialDays, Tags: []string{"math"}},
	})
	require.NoError(t, err)
	return p
}

func workspaceIDs(ws []*types.Workspace) []string {
	out := make([]string, 0, len(ws))
	for _, w := range ws {
		out = append(out, w.ID)
	}
	return out
}

func assertOwnerEdge(t *testing.T, store *memory.Store, owner string, w *types.Workspace) {
	t.Helper()

	edge, err := store.FindAccess(context.Background(), owner, w.ID, w.ID)
	require.NoError(t, err)

	role, _ := types.OwnerRole(w.Type)
	assert.Equal(t, role, edge.AccessRole)
}

func assertPartition(t *testing.T, graph *accessgraph.Service, actor string) {
	t.Helper()
	ctx := context.Background()

	all, err := graph.ListForActor(ctx, actor)
	require.NoError(t, err)

	split, err := graph.ListOwnedConnected(ctx, actor)
	require.NoError(t, err)

	seen := make(map[string]int)
	for _, w := range split.Owned {
		seen[w.ID]++
	}
	for _, w := range split.Connected {
		seen[w.ID]++
	}

	assert.Len(t, seen, len(all))
	for _, id := range workspaceIDs(all) {
		assert.Equal(t, 1, seen[id], "workspace %s must appear exactly once", id)
	}
}

func TestService_Scenarios(t *testing.T) {
	ctx := context.Background()

	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	f := newFixture(t, ctrl)

	// A: provider owned by a1
	f.cache.EXPECT().Delete(gomock.Any(), cache.ProviderTagsKey).Return(nil)
	p := f.provider(t, "a1", 7)

	assert.True(t, p.IsActive)
	assertOwnerEdge(t, f.store, "a1", p)

	owned, err := f.graph.ListOwnedConnected(ctx, "a1")
	require.NoError(t, err)
	assert.Contains(t, workspaceIDs(owned.Owned), p.ID)

	// B: a2 enrolls with a seven day trial
	f.notifier.EXPECT().Notify(gomock.Any(), gomock.Any()).Do(func(_ context.Context, n *notify.Notification) {
		assert.Equal(t, notify.KindStudentEnrolled, n.Kind)
		assert.Equal(t, "a2", n.AccountID)
		assert.Equal(t, p.ID, n.WorkspaceID)
	})

	s, err := f.service.CreateStudentWorkspace(ctx, "a2", &NewStudentWorkspace{DisplayName: "Sam", GradeLevel: "5", ProviderID: p.ID})
	require.NoError(t, err)
	assert.Equal(t, types.WorkspaceTypeStudent, s.Type)
	assert.Equal(t, "Sam", s.Profile.DisplayName)
	assertOwnerEdge(t, f.store, "a2", s)

	enrolled, err := f.graph.ListEnrolled(ctx, p.ID, types.Pagination{})
	require.NoError(t, err)
	require.Len(t, enrolled.Items, 1)
	assert.Equal(t, "a2", enrolled.Items[0].AccountID)
	require.NotNil(t, enrolled.Items[0].SubscribedUntil)
	assert.Equal(t, epoch.AddDate(0, 0, 7), *enrolled.Items[0].SubscribedUntil)
	assert.Equal(t, types.SubscriptionTierTrial, enrolled.Items[0].SubscriptionTier)

	owned, err = f.graph.ListOwnedConnected(ctx, "a2")
	require.NoError(t, err)
	assert.Contains(t, workspaceIDs(owned.Owned), s.ID)

	connections, err := f.graph.ListConnections(ctx, s.ID)
	require.NoError(t, err)
	require.Len(t, connections, 1)
	assert.Equal(t, p.ID, connections[0].TargetWorkspaceID)

	// enrolling twice is rejected without a second edge
	_, err = f.service.CreateStudentWorkspace(ctx, "a2", &NewStudentWorkspace{DisplayName: "Sam again", ProviderID: p.ID})
	assert.ErrorIs(t, err, types.ErrAlreadyEnrolled)

	edges, err := f.store.ListAccessByActor(ctx, "a2")
	require.NoError(t, err)
	assert.Len(t, edges, 2)

	// C: a3 monitors the student workspace
	f.notifier.EXPECT().Notify(gomock.Any(), gomock.Any()).Do(func(_ context.Context, n *notify.Notification) {
		assert.Equal(t, notify.KindParentLinked, n.Kind)
		assert.Equal(t, "a2", n.AccountID)
		assert.Equal(t, s.ID, n.WorkspaceID)
	})

	d, err := f.service.StartParentWorkspaceFlow(ctx, "a3", []string{s.ID, s.ID})
	require.NoError(t, err)
	assert.Equal(t, types.WorkspaceTypeParent, d.Type)
	assertOwnerEdge(t, f.store, "a3", d)

	owned, err = f.graph.ListOwnedConnected(ctx, "a3")
	require.NoError(t, err)
	assert.Contains(t, workspaceIDs(owned.Owned), d.ID)

	connections, err = f.graph.ListConnections(ctx, d.ID)
	require.NoError(t, err)
	require.Len(t, connections, 1)
	assert.Equal(t, s.ID, connections[0].TargetWorkspaceID)
	assert.Equal(t, types.RoleParentMonitor, connections[0].AccessRole)

	for _, actor := range []string{"a1", "a2", "a3"} {
		assertPartition(t, f.graph, actor)
	}
}

func TestService_CreateWorkspaceRejections(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	f := newFixture(t, ctrl)

	tests := []struct {
		name     string
		in       *NewWorkspace
		expected error
	}{
		{name: "student through the generic flow", in: &NewWorkspace{Title: "S", Type: types.WorkspaceTypeStudent}, expected: types.ErrInvalidType},
		{name: "parent through the generic flow", in: &NewWorkspace{Title: "P", Type: types.WorkspaceTypeParent}, expected: types.ErrInvalidType},
		{name: "unknown type", in: &NewWorkspace{Title: "X", Type: "school"}, expected: types.ErrInvalidType},
		{name: "blank title", in: &NewWorkspace{Title: "  ", Type: types.WorkspaceTypePersonal}, expected: types.ErrInvalidInput},
		{name: "trial too long", in: &NewWorkspace{Title: "X", Type: types.WorkspaceTypeProvider, Profile: types.Profile{ProviderTrialDaysCount: 400}}, expected: types.ErrInvalidInput},
	}

	for _, test := range tests {
		t.Run(test.name, func(t *testing.T) {
			_, err := f.service.CreateWorkspace(context.Background(), "a1", test.in)
			assert.ErrorIs(t, err, test.expected)
		})
	}

	created, _, err := f.store.ListWorkspacesByType(context.Background(), types.WorkspaceTypePersonal, types.WorkspaceFilter{}, types.WorkspaceSort{}, types.Pagination{})
	require.NoError(t, err)
	assert.Empty(t, created)
}

func TestService_SubmitProviderApplication(t *testing.T) {
	ctx := context.Background()

	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	f := newFixture(t, ctrl)

	_, err := f.service.SubmitProviderApplication(ctx, "a1", &ProviderApplication{Title: "Tutors", Type: types.WorkspaceTypePersonal})
	assert.ErrorIs(t, err, types.ErrInvalidType)

	app, err := f.service.SubmitProviderApplication(ctx, "a1", &ProviderApplication{Title: "Tutors", Profile: types.Profile{Website: "https://tutors.example"}})
	require.NoError(t, err)
	assert.Equal(t, types.WorkspaceTypeProvider, app.Type)
	assert.False(t, app.IsActive)
	assert.Equal(t, "https://tutors.example", app.Profile.Website)
	assertOwnerEdge(t, f.store, "a1", app)

	// not visible to students until approved
	_, err = f.service.CreateStudentWorkspace(ctx, "a2", &NewStudentWorkspace{DisplayName: "Sam", ProviderID: app.ID})
	assert.ErrorIs(t, err, types.ErrNotFound)
}

func TestService_CreateStudentWorkspaceRejections(t *testing.T) {
	ctx := context.Background()

	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	f := newFixture(t, ctrl)
	f.quiet()

	p := f.provider(t, "a1", 0)

	personal, err := f.service.CreateWorkspace(ctx, "a1", &NewWorkspace{Title: "Home", Type: types.WorkspaceTypePersonal})
	require.NoError(t, err)

	blocked := f.provider(t, "a1", 0)
	flag := true
	_, err = f.store.UpdateWorkspace(ctx, blocked.ID, &types.WorkspaceUpdate{IsBlocked: &flag})
	require.NoError(t, err)

	tests := []struct {
		name     string
		owner    string
		provider string
		expected error
	}{
		{name: "missing provider", owner: "a2", provider: "missing", expected: types.ErrNotFound},
		{name: "not a provider", owner: "a2", provider: personal.ID, expected: types.ErrInvalidType},
		{name: "blocked provider", owner: "a2", provider: blocked.ID, expected: types.ErrNotFound},
		{name: "owner already reaches the provider", owner: "a1", provider: p.ID, expected: types.ErrAlreadyEnrolled},
	}

	for _, test := range tests {
		t.Run(test.name, func(t *testing.T) {
			_, err := f.service.CreateStudentWorkspace(ctx, test.owner, &NewStudentWorkspace{DisplayName: "Sam", ProviderID: test.provider})
			assert.ErrorIs(t, err, test.expected)
		})
	}

	// no trial: the subscription ends immediately and carries no tier
	_, err = f.service.CreateStudentWorkspace(ctx, "a2", &NewStudentWorkspace{DisplayName: "Sam", ProviderID: p.ID})
	require.NoError(t, err)

	edge, err := f.store.FindAccess(ctx, "a2", p.ID, "")
	require.NoError(t, err)
	require.NotNil(t, edge.SubscribedUntil)
	assert.Equal(t, epoch, *edge.SubscribedUntil)
	assert.Empty(t, edge.SubscriptionTier)
}

func TestService_StartParentWorkspaceFlowRejections(t *testing.T) {
	ctx := context.Background()

	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	f := newFixture(t, ctrl)
	f.quiet()

	personal, err := f.service.CreateWorkspace(ctx, "a1", &NewWorkspace{Title: "Home", Type: types.WorkspaceTypePersonal})
	require.NoError(t, err)

	tests := []struct {
		name     string
		ids      []string
		expected error
	}{
		{name: "no students", ids: nil, expected: types.ErrInvalidInput},
		{name: "blank ids", ids: []string{" ", ""}, expected: types.ErrInvalidInput},
		{name: "missing student", ids: []string{"missing"}, expected: types.ErrNotFound},
		{name: "not a student workspace", ids: []string{personal.ID}, expected: types.ErrInvalidType},
	}

	for _, test := range tests {
		t.Run(test.name, func(t *testing.T) {
			_, err := f.service.StartParentWorkspaceFlow(ctx, "a3", test.ids)
			assert.ErrorIs(t, err, test.expected)
		})
	}

	parents, _, err := f.store.ListWorkspacesByType(ctx, types.WorkspaceTypeParent, types.WorkspaceFilter{}, types.WorkspaceSort{}, types.Pagination{})
	require.NoError(t, err)
	assert.Empty(t, parents)
}

func TestService_StaffWorkspaces(t *testing.T) {
	ctx := context.Background()

	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	f := newFixture(t, ctrl)
	f.quiet()

	gomock.InOrder(
		f.staff.EXPECT().LinkStaffWorkspace(gomock.Any(), gomock.Any()).Return(nil),
		f.staff.EXPECT().AssignStaffMember(gomock.Any(), gomock.Any(), "a1").Return(nil),
	)

	staff, err := f.service.CreateWorkspace(ctx, "a1", &NewWorkspace{Title: "Moderation", Type: types.WorkspaceTypeStaff})
	require.NoError(t, err)
	assertOwnerEdge(t, f.store, "a1", staff)

	personal, err := f.service.CreateWorkspace(ctx, "a1", &NewWorkspace{Title: "Home", Type: types.WorkspaceTypePersonal})
	require.NoError(t, err)

	tests := []struct {
		name     string
		in       *StaffMember
		expected error
	}{
		{name: "missing workspace", in: &StaffMember{AccountID: "a2", WorkspaceID: "missing", AccessRole: types.RoleStaffEditor}, expected: types.ErrNotFound},
		{name: "not a staff workspace", in: &StaffMember{AccountID: "a2", WorkspaceID: personal.ID, AccessRole: types.RoleStaffEditor}, expected: types.ErrInvalidType},
		{name: "unknown role", in: &StaffMember{AccountID: "a2", WorkspaceID: staff.ID, AccessRole: "ghost"}, expected: types.ErrUnknownRole},
		{name: "role scoped to students", in: &StaffMember{AccountID: "a2", WorkspaceID: staff.ID, AccessRole: types.RoleParentMonitor}, expected: types.ErrInvalidType},
		{name: "owner is already a member", in: &StaffMember{AccountID: "a1", WorkspaceID: staff.ID, AccessRole: types.RoleStaffAdmin}, expected: types.ErrAlreadyMember},
	}

	for _, test := range tests {
		t.Run(test.name, func(t *testing.T) {
			_, err := f.service.AddUserToStaffWorkspace(ctx, test.in)
			assert.ErrorIs(t, err, test.expected)
		})
	}

	f.staff.EXPECT().AssignStaffMember(gomock.Any(), staff.ID, "a2").Return(errors.New("openfga unavailable"))

	edge, err := f.service.AddUserToStaffWorkspace(ctx, &StaffMember{AccountID: "a2", WorkspaceID: staff.ID, AccessRole: types.RoleStaffAdmin})
	require.NoError(t, err)
	assert.True(t, edge.IsDirect())
	assert.Equal(t, types.RoleStaffAdmin, edge.AccessRole)

	_, err = f.service.AddUserToStaffWorkspace(ctx, &StaffMember{AccountID: "a2", WorkspaceID: staff.ID, AccessRole: types.RoleStaffEditor})
	assert.ErrorIs(t, err, types.ErrAlreadyMember)
}

type failingEnrollmentStore struct {
	*memory.Store
}

func (s *failingEnrollmentStore) CreateAccess(ctx context.Context, a *types.Access) (*types.Access, error) {
	if !a.IsDirect() {
		return nil, errors.New("connection reset by peer")
	}
	return s.Store.CreateAccess(ctx, a)
}

func TestService_FailedFlowLeavesNoPartialState(t *testing.T) {
	ctx := context.Background()

	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	f := newFixture(t, ctrl)
	f.quiet()

	p := f.provider(t, "a1", 7)

	logger := logging.NewNoopLogger()
	s := NewService(&failingEnrollmentStore{Store: f.store}, f.notifier, f.staff, f.cache, func() time.Time { return epoch }, tracing.NewNoopTracer(), monitoring.NewNoopMonitor("test", logger), logger)

	_, err := s.CreateStudentWorkspace(ctx, "a2", &NewStudentWorkspace{DisplayName: "Sam", ProviderID: p.ID})
	assert.ErrorIs(t, err, types.ErrTransactionFailed)

	students, _, err := f.store.ListWorkspacesByType(ctx, types.WorkspaceTypeStudent, types.WorkspaceFilter{}, types.WorkspaceSort{}, types.Pagination{})
	require.NoError(t, err)
	assert.Empty(t, students)

	edges, err := f.store.ListAccessByActor(ctx, "a2")
	require.NoError(t, err)
	assert.Empty(t, edges)
}

// staleReadStore answers every edge lookup with not found, as a read racing a
// concurrent writer would, so only the insert sees the existing edge.
type staleReadStore struct {
	*memory.Store
}

func (s *staleReadStore) FindAccess(context.Context, string, string, string) (*types.Access, error) {
	return nil, storage.ErrNotFound
}

func TestService_DuplicateInsertAfterStaleRead(t *testing.T) {
	ctx := context.Background()

	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	f := newFixture(t, ctrl)
	f.quiet()

	gomock.InOrder(
		f.staff.EXPECT().LinkStaffWorkspace(gomock.Any(), gomock.Any()).Return(nil),
		f.staff.EXPECT().AssignStaffMember(gomock.Any(), gomock.Any(), "a1").Return(nil),
	)

	p := f.provider(t, "a1", 7)
	ops, err := f.service.CreateWorkspace(ctx, "a1", &NewWorkspace{Title: "Moderation", Type: types.WorkspaceTypeStaff})
	require.NoError(t, err)

	_, err = f.service.CreateStudentWorkspace(ctx, "a2", &NewStudentWorkspace{DisplayName: "Sam", ProviderID: p.ID})
	require.NoError(t, err)

	logger := logging.NewNoopLogger()
	s := NewService(&staleReadStore{Store: f.store}, f.notifier, f.staff, f.cache, func() time.Time { return epoch }, tracing.NewNoopTracer(), monitoring.NewNoopMonitor("test", logger), logger)

	_, err = s.CreateStudentWorkspace(ctx, "a2", &NewStudentWorkspace{DisplayName: "Sam again", ProviderID: p.ID})
	assert.ErrorIs(t, err, types.ErrAlreadyEnrolled)
	assert.NotErrorIs(t, err, types.ErrTransactionFailed)

	_, err = s.AddUserToStaffWorkspace(ctx, &StaffMember{AccountID: "a1", WorkspaceID: ops.ID, AccessRole: types.RoleStaffEditor})
	assert.ErrorIs(t, err, types.ErrAlreadyMember)
	assert.NotErrorIs(t, err, types.ErrTransactionFailed)

	students, _, err := f.store.ListWorkspacesByType(ctx, types.WorkspaceTypeStudent, types.WorkspaceFilter{}, types.WorkspaceSort{}, types.Pagination{})
	require.NoError(t, err)
	assert.Len(t, students, 1)

	edges, err := f.store.ListAccessByActor(ctx, "a2")
	require.NoError(t, err)
	assert.Len(t, edges, 2)
}

func TestService_ConcurrentEnrollmentsEnrollOnce(t *testing.T) {
	ctx := context.Background()

	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	f := newFixture(t, ctrl)
	f.quiet()

	p := f.provider(t, "a1", 0)

	const attempts = 8

	var (
		wg   sync.WaitGroup
		errs = make([]error, attempts)
	)

	for i := range attempts {
		wg.Add(1)
		go func() {
			defer wg.Done()
			_, errs[i] = f.service.CreateStudentWorkspace(ctx, "a2", &NewStudentWorkspace{DisplayName: "Sam", ProviderID: p.ID})
		}()
	}
	wg.Wait()

	var ok int
	for _, err := range errs {
		if err == nil {
			ok++
			continue
		}
		assert.ErrorIs(t, err, types.ErrAlreadyEnrolled)
	}
	assert.Equal(t, 1, ok)

	students, _, err := f.store.ListWorkspacesByType(ctx, types.WorkspaceTypeStudent, types.WorkspaceFilter{}, types.WorkspaceSort{}, types.Pagination{})
	require.NoError(t, err)
	assert.Len(t, students, 1)

	edges, err := f.store.ListAccessByActor(ctx, "a2")
	require.NoError(t, err)
	assert.Len(t, edges, 2)
}
