// Copyright 2026 Canonical Ltd.
// SPDX-License-Identifier: AGPL-3.0

package lifecycle

import (
	"context"
	"errors"
	"fmt"
	"slices"
	"strings"
	"time"

	"github.com/indevian-dev/TIKTAK-MONOREPO-sub000/internal/cache"
	"github.com/indevian-dev/TIKTAK-MONOREPO-sub000/internal/logging"
	"github.com/indevian-dev/TIKTAK-MONOREPO-sub000/internal/monitoring"
	"github.com/indevian-dev/TIKTAK-MONOREPO-sub000/internal/notify"
	"github.com/indevian-dev/TIKTAK-MONOREPO-sub000/internal/storage"
	"github.com/indevian-dev/TIKTAK-MONOREPO-sub000/internal/tracing"
	"github.com/indevian-dev/TIKTAK-MONOREPO-sub000/internal/types"
)

const parentWorkspaceTitle = "Parent workspace"

// creatable lists the types open to the generic creation flow; student and
// parent workspaces have dedicated flows.
var creatable = map[types.WorkspaceType]bool{
	types.WorkspaceTypePersonal: true,
	types.WorkspaceTypeProvider: true,
	types.WorkspaceTypeStaff:    true,
}

var _ ServiceInterface = (*Service)(nil)

// Service runs the flows that write more than one entity. Each flow commits
// in a single transaction; notifications and authorization tuples follow the
// commit and never fail the flow.
type Service struct {
	storage  StorageInterface
	notifier NotifierInterface
	staff    StaffGraphInterface
	cache    CacheInterface

	now func() time.Time

	tracer  tracing.TracingInterface
	monitor monitoring.MonitorInterface
	logger  logging.LoggerInterface
}

func NewService(
	storage StorageInterface,
	notifier NotifierInterface,
	staff StaffGraphInterface,
	cache CacheInterface,
	now func() time.Time,
	tracer tracing.TracingInterface,
	monitor monitoring.MonitorInterface,
	logger logging.LoggerInterface,
) *Service {
	s := new(Service)

	s.storage = storage
	s.notifier = notifier
	s.staff = staff
	s.cache = cache

	s.now = now
	if s.now == nil {
		s.now = time.Now
	}

	s.tracer = tracer
	s.monitor = monitor
	s.logger = logger

	return s
}

// CreateWorkspace creates an active personal, provider or staff workspace
// together with its owner edge.
func (s *Service) CreateWorkspace(ctx context.Context, ownerID string, in *NewWorkspace) (*types.Workspace, error) {
	ctx, span := s.tracer.Start(ctx, "lifecycle.Service.CreateWorkspace")
	defer span.End()

	if !creatable[in.Type] {
		return nil, fmt.Errorf("%w: %q cannot be created directly", types.ErrInvalidType, in.Type)
	}

	w, err := s.draft(in.Title, in.Type, in.Profile, in.CityID)
	if err != nil {
		return nil, err
	}
	w.IsActive = true

	var created *types.Workspace
	err = s.withTx(ctx, "create workspace", func(ctx context.Context) error {
		created, err = s.createOwned(ctx, ownerID, w)
		return err
	})
	if err != nil {
		return nil, err
	}

	switch created.Type {
	case types.WorkspaceTypeProvider:
		s.invalidateTags(ctx)
	case types.WorkspaceTypeStaff:
		if err := s.staff.LinkStaffWorkspace(ctx, created.ID); err != nil {
			s.logger.Errorf("failed to link staff workspace %s: %v", created.ID, err)
		}
		s.mirrorStaffMember(ctx, created.ID, ownerID)
	}

	return created, nil
}

// SubmitProviderApplication creates an inactive provider which becomes
// visible once staff approve it.
func (s *Service) SubmitProviderApplication(ctx context.Context, ownerID string, in *ProviderApplication) (*types.Workspace, error) {
	ctx, span := s.tracer.Start(ctx, "lifecycle.Service.SubmitProviderApplication")
	defer span.End()

	t := in.Type
	if t == "" {
		t = types.WorkspaceTypeProvider
	}
	if t != types.WorkspaceTypeProvider {
		return nil, fmt.Errorf("%w: applications are for providers, got %q", types.ErrInvalidType, t)
	}

	w, err := s.draft(in.Title, t, in.Profile, in.CityID)
	if err != nil {
		return nil, err
	}

	var created *types.Workspace
	err = s.withTx(ctx, "submit provider application", func(ctx context.Context) error {
		created, err = s.createOwned(ctx, ownerID, w)
		return err
	})
	if err != nil {
		return nil, err
	}

	return created, nil
}

// CreateStudentWorkspace creates the owner's student workspace and enrolls it
// into the provider, starting the provider's trial.
func (s *Service) CreateStudentWorkspace(ctx context.Context, ownerID string, in *NewStudentWorkspace) (*types.Workspace, error) {
	ctx, span := s.tracer.Start(ctx, "lifecycle.Service.CreateStudentWorkspace")
	defer span.End()

	if _, err := s.storage.FindAccess(ctx, ownerID, in.ProviderID, ""); err == nil {
		return nil, fmt.Errorf("%w: %s already reaches %s", types.ErrAlreadyEnrolled, ownerID, in.ProviderID)
	} else if !errors.Is(err, storage.ErrNotFound) {
		return nil, fmt.Errorf("failed to read enrollment: %w", err)
	}

	provider, err := s.storage.GetWorkspace(ctx, in.ProviderID)
	if err != nil {
		return nil, storage.DomainError(err, types.ErrConflict)
	}

	if provider.Type != types.WorkspaceTypeProvider {
		return nil, fmt.Errorf("%w: %s is a %s workspace", types.ErrInvalidType, provider.ID, provider.Type)
	}

	if !provider.IsActive || provider.IsBlocked {
		return nil, fmt.Errorf("%w: provider %s is not accepting students", types.ErrNotFound, provider.ID)
	}

	w, err := s.draft(in.DisplayName, types.WorkspaceTypeStudent, types.Profile{DisplayName: in.DisplayName, GradeLevel: in.GradeLevel}, "")
	if err != nil {
		return nil, err
	}
	w.IsActive = true

	now := s.now()
	trialDays := provider.Profile.ProviderTrialDaysCount
	until := now.AddDate(0, 0, trialDays)

	enrollment := &types.Access{
		ActorAccountID:    ownerID,
		TargetWorkspaceID: provider.ID,
		AccessRole:        types.RoleStudent,
		SubscribedUntil:   &until,
	}
	if trialDays > 0 {
		enrollment.SubscriptionTier = types.SubscriptionTierTrial
	}

	var created *types.Workspace
	err = s.withTx(ctx, "create student workspace", func(ctx context.Context) error {
		created, err = s.createOwned(ctx, ownerID, w)
		if err != nil {
			return err
		}

		enrollment.ViaWorkspaceID = created.ID
		if _, err := s.storage.CreateAccess(ctx, enrollment); err != nil {
			return storage.DomainError(err, types.ErrAlreadyEnrolled)
		}

		return nil
	})
	if err != nil {
		return nil, err
	}

	s.notifier.Notify(ctx, &notify.Notification{
		Kind:        notify.KindStudentEnrolled,
		AccountID:   ownerID,
		WorkspaceID: provider.ID,
		Payload: map[string]string{
			"provider":          provider.Title,
			"student_workspace": created.ID,
			"subscribed_until":  until.Format(time.RFC3339),
		},
		CreatedAt: now,
	})

	return created, nil
}

// StartParentWorkspaceFlow creates the owner's parent workspace and links it
// to every given student workspace with a parent_monitor edge.
func (s *Service) StartParentWorkspaceFlow(ctx context.Context, ownerID string, studentWorkspaceIDs []string) (*types.Workspace, error) {
	ctx, span := s.tracer.Start(ctx, "lifecycle.Service.StartParentWorkspaceFlow")
	defer span.End()

	ids := make([]string, 0, len(studentWorkspaceIDs))
	for _, id := range studentWorkspaceIDs {
		id = strings.TrimSpace(id)
		if id != "" && !slices.Contains(ids, id) {
			ids = append(ids, id)
		}
	}

	if len(ids) == 0 {
		return nil, fmt.Errorf("%w: at least one student workspace is required", types.ErrInvalidInput)
	}

	for _, id := range ids {
		student, err := s.storage.GetWorkspace(ctx, id)
		if err != nil {
			return nil, storage.DomainError(err, types.ErrConflict)
		}
		if student.Type != types.WorkspaceTypeStudent {
			return nil, fmt.Errorf("%w: %s is a %s workspace", types.ErrInvalidType, id, student.Type)
		}
	}

	w, err := s.draft(parentWorkspaceTitle, types.WorkspaceTypeParent, types.Profile{}, "")
	if err != nil {
		return nil, err
	}
	w.IsActive = true

	var created *types.Workspace
	err = s.withTx(ctx, "start parent workspace flow", func(ctx context.Context) error {
		created, err = s.createOwned(ctx, ownerID, w)
		if err != nil {
			return err
		}

		for _, id := range ids {
			_, err := s.storage.CreateAccess(ctx, &types.Access{
				ActorAccountID:    ownerID,
				TargetWorkspaceID: id,
				ViaWorkspaceID:    created.ID,
				AccessRole:        types.RoleParentMonitor,
			})
			if err != nil {
				return storage.DomainError(err, types.ErrConflict)
			}
		}

		return nil
	})
	if err != nil {
		return nil, err
	}

	for _, id := range ids {
		s.notifyStudentOwners(ctx, id, ownerID)
	}

	return created, nil
}

// AddUserToStaffWorkspace grants an account a direct edge into a staff
// workspace and mirrors it into the authorization model.
func (s *Service) AddUserToStaffWorkspace(ctx context.Context, in *StaffMember) (*types.Access, error) {
	ctx, span := s.tracer.Start(ctx, "lifecycle.Service.AddUserToStaffWorkspace")
	defer span.End()

	ws, err := s.storage.GetWorkspace(ctx, in.WorkspaceID)
	if err != nil {
		return nil, storage.DomainError(err, types.ErrConflict)
	}

	if ws.Type != types.WorkspaceTypeStaff {
		return nil, fmt.Errorf("%w: %s is a %s workspace", types.ErrInvalidType, ws.ID, ws.Type)
	}

	role, err := s.storage.GetRoleByName(ctx, in.AccessRole)
	if errors.Is(err, storage.ErrNotFound) {
		return nil, fmt.Errorf("%w: %q", types.ErrUnknownRole, in.AccessRole)
	}
	if err != nil {
		return nil, fmt.Errorf("failed to read role: %w", err)
	}

	if !role.AppliesTo(types.WorkspaceTypeStaff) {
		return nil, fmt.Errorf("%w: role %s is reserved for %s workspaces", types.ErrInvalidType, role.Name, role.ForWorkspaceType)
	}

	if _, err := s.storage.FindAccess(ctx, in.AccountID, ws.ID, ws.ID); err == nil {
		return nil, fmt.Errorf("%w: %s already belongs to %s", types.ErrAlreadyMember, in.AccountID, ws.ID)
	} else if !errors.Is(err, storage.ErrNotFound) {
		return nil, fmt.Errorf("failed to read membership: %w", err)
	}

	var edge *types.Access
	err = s.withTx(ctx, "add staff member", func(ctx context.Context) error {
		edge, err = s.storage.CreateAccess(ctx, &types.Access{
			ActorAccountID:    in.AccountID,
			TargetWorkspaceID: ws.ID,
			ViaWorkspaceID:    ws.ID,
			AccessRole:        role.Name,
		})
		return storage.DomainError(err, types.ErrAlreadyMember)
	})
	if err != nil {
		return nil, err
	}

	s.mirrorStaffMember(ctx, ws.ID, in.AccountID)

	s.notifier.Notify(ctx, &notify.Notification{
		Kind:        notify.KindStaffMemberAdded,
		AccountID:   in.AccountID,
		WorkspaceID: ws.ID,
		Payload:     map[string]string{"role": role.Name, "workspace": ws.Title},
		CreatedAt:   s.now(),
	})

	return edge, nil
}

// draft validates the caller supplied fields of a new workspace.
func (s *Service) draft(title string, t types.WorkspaceType, profile types.Profile, cityID string) (*types.Workspace, error) {
	title = strings.TrimSpace(title)
	if title == "" {
		return nil, fmt.Errorf("%w: title is required", types.ErrInvalidInput)
	}

	profile.Normalize()
	if err := profile.Validate(); err != nil {
		return nil, err
	}

	return &types.Workspace{Type: t, Title: title, Profile: profile, CityID: cityID}, nil
}

// createOwned inserts the workspace and the owner's direct edge. It must run
// inside a transaction.
func (s *Service) createOwned(ctx context.Context, ownerID string, w *types.Workspace) (*types.Workspace, error) {
	role, ok := types.OwnerRole(w.Type)
	if !ok {
		return nil, fmt.Errorf("%w: %q", types.ErrInvalidType, w.Type)
	}

	created, err := s.storage.CreateWorkspace(ctx, w)
	if err != nil {
		return nil, storage.DomainError(err, types.ErrConflict)
	}

	_, err = s.storage.CreateAccess(ctx, &types.Access{
		ActorAccountID:    ownerID,
		TargetWorkspaceID: created.ID,
		ViaWorkspaceID:    created.ID,
		AccessRole:        role,
	})
	if err != nil {
		return nil, storage.DomainError(err, types.ErrConflict)
	}

	return created, nil
}

func (s *Service) withTx(ctx context.Context, op string, fn func(context.Context) error) error {
	err := storage.TxError(s.storage.WithTx(ctx, fn))
	if errors.Is(err, types.ErrTransactionFailed) {
		s.logger.Errorf("%s rolled back: %v", op, err)
	}
	return err
}

func (s *Service) mirrorStaffMember(ctx context.Context, workspaceID, accountID string) {
	if err := s.staff.AssignStaffMember(ctx, workspaceID, accountID); err != nil {
		s.logger.Errorf("failed to mirror staff member %s of %s: %v", accountID, workspaceID, err)
	}
}

func (s *Service) notifyStudentOwners(ctx context.Context, studentID, parentID string) {
	edges, _, err := s.storage.ListDirectAccessByWorkspace(ctx, studentID, types.Pagination{})
	if err != nil {
		s.logger.Warnf("failed to read owners of %s: %v", studentID, err)
		return
	}

	for _, e := range edges {
		if e.AccessRole != types.RoleStudent {
			continue
		}

		s.notifier.Notify(ctx, &notify.Notification{
			Kind:        notify.KindParentLinked,
			AccountID:   e.ActorAccountID,
			WorkspaceID: studentID,
			Payload:     map[string]string{"parent": parentID},
			CreatedAt:   s.now(),
		})
	}
}

func (s *Service) invalidateTags(ctx context.Context) {
	if err := s.cache.Delete(ctx, cache.ProviderTagsKey); err != nil {
		s.logger.Warnf("failed to invalidate tag cache: %v", err)
	}
}
