// Copyright 2026 Canonical Ltd.
// SPDX-License-Identifier: AGPL-3.0

package accessgraph

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/indevian-dev/TIKTAK-MONOREPO-sub000/internal/db"
	"github.com/indevian-dev/TIKTAK-MONOREPO-sub000/internal/logging"
	"github.com/indevian-dev/TIKTAK-MONOREPO-sub000/internal/monitoring"
	"github.com/indevian-dev/TIKTAK-MONOREPO-sub000/internal/storage"
	"github.com/indevian-dev/TIKTAK-MONOREPO-sub000/internal/tracing"
	"github.com/indevian-dev/TIKTAK-MONOREPO-sub000/internal/types"
)

// unknownEmail stands in for accounts the directory cannot resolve.
const unknownEmail = "unknown"

var _ ServiceInterface = (*Service)(nil)

type Service struct {
	storage   StorageInterface
	directory DirectoryInterface
	staff     StaffGraphInterface
	tracer    tracing.TracingInterface
	monitor   monitoring.MonitorInterface
	logger    logging.LoggerInterface
}

func NewService(
	storage StorageInterface,
	directory DirectoryInterface,
	staff StaffGraphInterface,
	tracer tracing.TracingInterface,
	monitor monitoring.MonitorInterface,
	logger logging.LoggerInterface,
) *Service {
	return &Service{
		storage:   storage,
		directory: directory,
		staff:     staff,
		tracer:    tracer,
		monitor:   monitor,
		logger:    logger,
	}
}

// FindAccess returns the edge from actor to target. An empty viaID matches
// the edge regardless of its path.
func (s *Service) FindAccess(ctx context.Context, actorID, targetID, viaID string) (*types.Access, error) {
	ctx, span := s.tracer.Start(ctx, "accessgraph.Service.FindAccess")
	defer span.End()

	a, err := s.storage.FindAccess(ctx, actorID, targetID, viaID)
	if err != nil {
		return nil, storage.DomainError(err, types.ErrConflict)
	}

	return a, nil
}

// AddAccess records an edge after checking that the role exists and applies
// to the target's type and that both endpoints exist.
func (s *Service) AddAccess(ctx context.Context, a *types.Access) (*types.Access, error) {
	ctx, span := s.tracer.Start(ctx, "accessgraph.Service.AddAccess")
	defer span.End()

	if a.ActorAccountID == "" || a.TargetWorkspaceID == "" || a.ViaWorkspaceID == "" || a.AccessRole == "" {
		return nil, fmt.Errorf("%w: actor, target, via and role are required", types.ErrInvalidInput)
	}

	role, err := s.storage.GetRoleByName(ctx, a.AccessRole)
	if errors.Is(err, storage.ErrNotFound) {
		return nil, fmt.Errorf("%w: %q", types.ErrUnknownRole, a.AccessRole)
	}
	if err != nil {
		return nil, fmt.Errorf("failed to resolve role: %w", err)
	}

	target, err := s.storage.GetWorkspace(ctx, a.TargetWorkspaceID)
	if err != nil {
		return nil, fmt.Errorf("target workspace: %w", storage.DomainError(err, types.ErrConflict))
	}

	if !a.IsDirect() {
		if _, err := s.storage.GetWorkspace(ctx, a.ViaWorkspaceID); err != nil {
			return nil, fmt.Errorf("via workspace: %w", storage.DomainError(err, types.ErrConflict))
		}
	}

	if !role.AppliesTo(target.Type) {
		return nil, fmt.Errorf("%w: role %s does not apply to %s workspaces", types.ErrInvalidType, role.Name, target.Type)
	}

	created, err := s.storage.CreateAccess(ctx, a)
	if err != nil {
		return nil, fmt.Errorf("failed to add access: %w", storage.DomainError(err, types.ErrConflict))
	}

	if created.IsDirect() && target.Type == types.WorkspaceTypeStaff {
		if err := s.staff.AssignStaffMember(ctx, target.ID, created.ActorAccountID); err != nil {
			s.logger.Errorf("failed to mirror staff member %s of %s: %v", created.ActorAccountID, target.ID, err)
		}
	}

	return created, nil
}

// ListForActor resolves every workspace the actor reaches, as target or as via.
// The two id reads are separate queries, so a concurrent write may show up in
// one and not the other.
func (s *Service) ListForActor(ctx context.Context, actorID string) ([]*types.Workspace, error) {
	ctx, span := s.tracer.Start(ctx, "accessgraph.Service.ListForActor")
	defer span.End()

	targets, err := s.storage.ListTargetIDsByActor(ctx, actorID)
	if err != nil {
		return nil, fmt.Errorf("failed to list targets: %w", err)
	}

	vias, err := s.storage.ListViaIDsByActor(ctx, actorID)
	if err != nil {
		return nil, fmt.Errorf("failed to list vias: %w", err)
	}

	ids := dedup(append(targets, vias...))
	if len(ids) == 0 {
		return []*types.Workspace{}, nil
	}

	workspaces, err := s.storage.GetWorkspacesByIDs(ctx, ids)
	if err != nil {
		return nil, fmt.Errorf("failed to resolve workspaces: %w", err)
	}

	return workspaces, nil
}

// ListOwnedConnected partitions ListForActor: a workspace is owned when a
// direct edge carries the owner role of its type, connected otherwise.
func (s *Service) ListOwnedConnected(ctx context.Context, actorID string) (*types.OwnedConnected, error) {
	ctx, span := s.tracer.Start(ctx, "accessgraph.Service.ListOwnedConnected")
	defer span.End()

	workspaces, err := s.ListForActor(ctx, actorID)
	if err != nil {
		return nil, err
	}

	edges, err := s.storage.ListAccessByActor(ctx, actorID)
	if err != nil {
		return nil, fmt.Errorf("failed to list edges: %w", err)
	}

	result := &types.OwnedConnected{
		Owned:     []*types.Workspace{},
		Connected: []*types.ConnectedWorkspace{},
	}

	for _, w := range workspaces {
		if isOwner(w, edges) {
			result.Owned = append(result.Owned, w)
			continue
		}

		result.Connected = append(result.Connected, &types.ConnectedWorkspace{
			Workspace:    w,
			RelationType: relationType(w.ID, edges),
		})
	}

	return result, nil
}

func (s *Service) ListEnrolled(ctx context.Context, providerID string, p types.Pagination) (*types.PageResult[*types.Member], error) {
	ctx, span := s.tracer.Start(ctx, "accessgraph.Service.ListEnrolled")
	defer span.End()

	if _, err := s.storage.GetWorkspace(ctx, providerID); err != nil {
		return nil, storage.DomainError(err, types.ErrConflict)
	}

	edges, total, err := s.storage.ListLinkedAccessByTarget(ctx, providerID, p)
	if err != nil {
		return nil, fmt.Errorf("failed to list enrollments: %w", err)
	}

	viaIDs := make([]string, 0, len(edges))
	for _, e := range edges {
		viaIDs = append(viaIDs, e.ViaWorkspaceID)
	}

	vias := make(map[string]*types.Workspace, len(viaIDs))
	if len(viaIDs) > 0 {
		workspaces, err := s.storage.GetWorkspacesByIDs(ctx, dedup(viaIDs))
		if err != nil {
			return nil, fmt.Errorf("failed to resolve enrolled workspaces: %w", err)
		}
		for _, w := range workspaces {
			vias[w.ID] = w
		}
	}

	members := make([]*types.Member, 0, len(edges))
	for _, e := range edges {
		m := s.member(ctx, e)
		m.Via = vias[e.ViaWorkspaceID]
		members = append(members, m)
	}

	return page(members, p, total), nil
}

func (s *Service) ListDirectMembers(ctx context.Context, workspaceID string, p types.Pagination) (*types.PageResult[*types.Member], error) {
	ctx, span := s.tracer.Start(ctx, "accessgraph.Service.ListDirectMembers")
	defer span.End()

	if _, err := s.storage.GetWorkspace(ctx, workspaceID); err != nil {
		return nil, storage.DomainError(err, types.ErrConflict)
	}

	edges, total, err := s.storage.ListDirectAccessByWorkspace(ctx, workspaceID, p)
	if err != nil {
		return nil, fmt.Errorf("failed to list members: %w", err)
	}

	members := make([]*types.Member, 0, len(edges))
	for _, e := range edges {
		members = append(members, s.member(ctx, e))
	}

	return page(members, p, total), nil
}

// ListConnections returns the linked edges passing through the workspace.
func (s *Service) ListConnections(ctx context.Context, viaID string) ([]*types.Access, error) {
	ctx, span := s.tracer.Start(ctx, "accessgraph.Service.ListConnections")
	defer span.End()

	edges, err := s.storage.ListLinkedAccessByVia(ctx, viaID)
	if err != nil {
		return nil, fmt.Errorf("failed to list connections: %w", err)
	}

	return edges, nil
}

func (s *Service) UpdateSubscription(ctx context.Context, accessID string, until *time.Time, tier string) (*types.Access, error) {
	ctx, span := s.tracer.Start(ctx, "accessgraph.Service.UpdateSubscription")
	defer span.End()

	a, err := s.storage.UpdateAccessSubscription(ctx, accessID, until, tier)
	if err != nil {
		return nil, storage.DomainError(err, types.ErrConflict)
	}

	return a, nil
}

// RemoveAccess deletes the edge. Removing a direct staff edge also drops the
// account from the staff workspace in the authorization model.
func (s *Service) RemoveAccess(ctx context.Context, accessID string) error {
	ctx, span := s.tracer.Start(ctx, "accessgraph.Service.RemoveAccess")
	defer span.End()

	a, err := s.storage.GetAccess(ctx, accessID)
	if err != nil {
		return storage.DomainError(err, types.ErrConflict)
	}

	var staffEdge bool
	if a.IsDirect() {
		w, err := s.storage.GetWorkspace(ctx, a.TargetWorkspaceID)
		if err != nil {
			return storage.DomainError(err, types.ErrConflict)
		}
		staffEdge = w.Type == types.WorkspaceTypeStaff
	}

	if err := s.storage.DeleteAccess(ctx, accessID); err != nil {
		return storage.DomainError(err, types.ErrConflict)
	}

	if staffEdge {
		if err := s.staff.RemoveStaffMember(ctx, a.TargetWorkspaceID, a.ActorAccountID); err != nil {
			s.logger.Errorf("failed to drop staff member %s of %s: %v", a.ActorAccountID, a.TargetWorkspaceID, err)
		}
	}

	return nil
}

// member projects an edge with its actor's account. Directory failures degrade
// to an unknown email instead of failing the listing.
func (s *Service) member(ctx context.Context, e *types.Access) *types.Member {
	m := &types.Member{
		AccessID:         e.ID,
		AccountID:        e.ActorAccountID,
		Email:            unknownEmail,
		AccessRole:       e.AccessRole,
		SubscribedUntil:  e.SubscribedUntil,
		SubscriptionTier: e.SubscriptionTier,
		JoinedAt:         e.CreatedAt,
	}

	account, err := s.directory.GetAccount(ctx, e.ActorAccountID)
	if err != nil {
		s.logger.Warnf("failed to resolve account %s: %v", e.ActorAccountID, err)
		return m
	}

	m.Email = account.Email
	m.Name = account.Name

	return m
}

func isOwner(w *types.Workspace, edges []*types.Access) bool {
	ownerRole, ok := types.OwnerRole(w.Type)
	if !ok {
		return false
	}

	for _, e := range edges {
		if e.TargetWorkspaceID == w.ID && e.IsDirect() && e.AccessRole == ownerRole {
			return true
		}
	}

	return false
}

// relationType prefers the role of an edge targeting the workspace over one passing via it.
func relationType(workspaceID string, edges []*types.Access) string {
	for _, e := range edges {
		if e.TargetWorkspaceID == workspaceID {
			return e.AccessRole
		}
	}

	for _, e := range edges {
		if e.ViaWorkspaceID == workspaceID {
			return e.AccessRole
		}
	}

	return ""
}

func dedup(ids []string) []string {
	seen := make(map[string]bool, len(ids))
	out := make([]string, 0, len(ids))
	for _, id := range ids {
		if id == "" || seen[id] {
			continue
		}
		seen[id] = true
		out = append(out, id)
	}
	return out
}

func page[T any](items []T, p types.Pagination, total int64) *types.PageResult[T] {
	return types.NewPageResult(items, int64(db.Page(p.Page)), int64(db.PageSize(p.Size)), total)
}
