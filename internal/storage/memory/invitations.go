// Copyright 2026 Canonical Ltd.
// SPDX-License-Identifier: AGPL-3.0

package memory

import (
	"context"
	"fmt"
	"sort"
	"time"

	"github.com/indevian-dev/TIKTAK-MONOREPO-sub000/internal/storage"
	"github.com/indevian-dev/TIKTAK-MONOREPO-sub000/internal/types"
)

func (s *Store) CreateInvitation(ctx context.Context, inv *types.Invitation) (*types.Invitation, error) {
	_, span := s.tracer.Start(ctx, "memory.Store.CreateInvitation")
	defer span.End()

	id, err := s.newID()
	if err != nil {
		return nil, err
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	if _, ok := s.data.workspaces[inv.ForWorkspaceID]; !ok {
		return nil, fmt.Errorf("insert invitation: workspace: %w", storage.ErrForeignKeyViolation)
	}
	if _, ok := s.roleByName(inv.AccessRole); !ok {
		return nil, fmt.Errorf("insert invitation: role: %w", storage.ErrForeignKeyViolation)
	}
	for _, existing := range s.data.invitations {
		if existing.ForWorkspaceID == inv.ForWorkspaceID && existing.InvitedAccountID == inv.InvitedAccountID && existing.IsPending() {
			return nil, fmt.Errorf("insert invitation: %w", storage.ErrDuplicateKey)
		}
	}

	created := types.Invitation{
		ID:                 id,
		ForWorkspaceID:     inv.ForWorkspaceID,
		InvitedAccountID:   inv.InvitedAccountID,
		InvitedByAccountID: inv.InvitedByAccountID,
		AccessRole:         inv.AccessRole,
		ExpireAt:           inv.ExpireAt,
		CreatedAt:          s.now(),
	}
	s.data.invitations[id] = created

	return &created, nil
}

func (s *Store) GetInvitation(ctx context.Context, id string) (*types.Invitation, error) {
	_, span := s.tracer.Start(ctx, "memory.Store.GetInvitation")
	defer span.End()

	s.mu.RLock()
	defer s.mu.RUnlock()

	inv, ok := s.data.invitations[id]
	if !ok {
		return nil, storage.ErrNotFound
	}

	return &inv, nil
}

func (s *Store) ResolveInvitation(ctx context.Context, id string, approve bool, resolvedBy string, at time.Time) (*types.Invitation, error) {
	_, span := s.tracer.Start(ctx, "memory.Store.ResolveInvitation")
	defer span.End()

	s.mu.Lock()
	defer s.mu.Unlock()

	inv, ok := s.data.invitations[id]
	if !ok || !inv.IsPending() {
		return nil, storage.ErrNotFound
	}

	resolve(&inv, approve, resolvedBy, at)
	s.data.invitations[id] = inv

	return &inv, nil
}

func (s *Store) ListPendingInvitationsByAccount(ctx context.Context, accountID string, now time.Time) ([]*types.Invitation, error) {
	_, span := s.tracer.Start(ctx, "memory.Store.ListPendingInvitationsByAccount")
	defer span.End()

	return s.filterInvitations(func(inv *types.Invitation) bool {
		return inv.InvitedAccountID == accountID && inv.IsPending() && !inv.IsExpired(now)
	}), nil
}

func (s *Store) ListInvitationsByWorkspace(ctx context.Context, workspaceID string) ([]*types.Invitation, error) {
	_, span := s.tracer.Start(ctx, "memory.Store.ListInvitationsByWorkspace")
	defer span.End()

	return s.filterInvitations(func(inv *types.Invitation) bool {
		return inv.ForWorkspaceID == workspaceID
	}), nil
}

func (s *Store) DeclineExpiredInvitations(ctx context.Context, now time.Time, resolvedBy string) (int64, error) {
	_, span := s.tracer.Start(ctx, "memory.Store.DeclineExpiredInvitations")
	defer span.End()

	s.mu.Lock()
	defer s.mu.Unlock()

	var n int64
	for id, inv := range s.data.invitations {
		if !inv.IsPending() || !inv.IsExpired(now) {
			continue
		}
		resolve(&inv, false, resolvedBy, now)
		s.data.invitations[id] = inv
		n++
	}

	return n, nil
}

func (s *Store) filterInvitations(match func(*types.Invitation) bool) []*types.Invitation {
	s.mu.RLock()
	defer s.mu.RUnlock()

	out := make([]*types.Invitation, 0)
	for _, inv := range s.data.invitations {
		if match(&inv) {
			out = append(out, &inv)
		}
	}

	sort.Slice(out, func(i, j int) bool {
		return newerFirst(out[i].CreatedAt, out[i].ID, out[j].CreatedAt, out[j].ID)
	})

	return out
}

func resolve(inv *types.Invitation, approve bool, resolvedBy string, at time.Time) {
	inv.IsApproved = approve
	inv.IsDeclined = !approve
	resolvedAt := at
	inv.ResolvedAt = &resolvedAt
	inv.ResolvedByAccountID = resolvedBy
}
