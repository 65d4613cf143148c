// Copyright 2026 Canonical Ltd.
// SPDX-License-Identifier: AGPL-3.0

package memory

import (
	"context"
	"fmt"
	"sort"
	"strings"
	"time"

	"github.com/indevian-dev/TIKTAK-MONOREPO-sub000/internal/storage"
	"github.com/indevian-dev/TIKTAK-MONOREPO-sub000/internal/types"
)

func (s *Store) CreateAccess(ctx context.Context, a *types.Access) (*types.Access, error) {
	_, span := s.tracer.Start(ctx, "memory.Store.CreateAccess")
	defer span.End()

	id, err := s.newID()
	if err != nil {
		return nil, err
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	if _, ok := s.data.workspaces[a.TargetWorkspaceID]; !ok {
		return nil, fmt.Errorf("insert access: target: %w", storage.ErrForeignKeyViolation)
	}
	if _, ok := s.data.workspaces[a.ViaWorkspaceID]; !ok {
		return nil, fmt.Errorf("insert access: via: %w", storage.ErrForeignKeyViolation)
	}
	if _, ok := s.roleByName(a.AccessRole); !ok {
		return nil, fmt.Errorf("insert access: role: %w", storage.ErrForeignKeyViolation)
	}

	for _, existing := range s.data.accesses {
		if existing.ActorAccountID != a.ActorAccountID || existing.TargetWorkspaceID != a.TargetWorkspaceID {
			continue
		}
		if existing.ViaWorkspaceID == a.ViaWorkspaceID {
			return nil, fmt.Errorf("insert access: %w", storage.ErrDuplicateKey)
		}
		if !existing.IsDirect() && !a.IsDirect() {
			return nil, fmt.Errorf("insert access: linked: %w", storage.ErrDuplicateKey)
		}
	}

	created := *a
	created.ID = id
	created.CreatedAt = s.now()
	if a.SubscribedUntil != nil {
		until := *a.SubscribedUntil
		created.SubscribedUntil = &until
	}
	s.data.accesses[id] = created

	return &created, nil
}

func (s *Store) GetAccess(ctx context.Context, id string) (*types.Access, error) {
	_, span := s.tracer.Start(ctx, "memory.Store.GetAccess")
	defer span.End()

	s.mu.RLock()
	defer s.mu.RUnlock()

	a, ok := s.data.accesses[id]
	if !ok {
		return nil, storage.ErrNotFound
	}

	return &a, nil
}

func (s *Store) FindAccess(ctx context.Context, actorID, targetID, viaID string) (*types.Access, error) {
	_, span := s.tracer.Start(ctx, "memory.Store.FindAccess")
	defer span.End()

	edges := s.filterAccess(func(a *types.Access) bool {
		return a.ActorAccountID == actorID &&
			a.TargetWorkspaceID == targetID &&
			(viaID == "" || a.ViaWorkspaceID == viaID)
	})
	if len(edges) == 0 {
		return nil, storage.ErrNotFound
	}

	return edges[len(edges)-1], nil
}

func (s *Store) ListAccessByActor(ctx context.Context, actorID string) ([]*types.Access, error) {
	_, span := s.tracer.Start(ctx, "memory.Store.ListAccessByActor")
	defer span.End()

	edges := s.filterAccess(func(a *types.Access) bool {
		return a.ActorAccountID == actorID
	})
	reverse(edges)

	return edges, nil
}

func (s *Store) ListTargetIDsByActor(ctx context.Context, actorID string) ([]string, error) {
	_, span := s.tracer.Start(ctx, "memory.Store.ListTargetIDsByActor")
	defer span.End()

	return s.workspaceIDsByActor(actorID, func(a *types.Access) string { return a.TargetWorkspaceID }), nil
}

func (s *Store) ListViaIDsByActor(ctx context.Context, actorID string) ([]string, error) {
	_, span := s.tracer.Start(ctx, "memory.Store.ListViaIDsByActor")
	defer span.End()

	return s.workspaceIDsByActor(actorID, func(a *types.Access) string { return a.ViaWorkspaceID }), nil
}

func (s *Store) ListLinkedAccessByTarget(ctx context.Context, targetID string, p types.Pagination) ([]*types.Access, int64, error) {
	_, span := s.tracer.Start(ctx, "memory.Store.ListLinkedAccessByTarget")
	defer span.End()

	edges := s.filterAccess(func(a *types.Access) bool {
		return a.TargetWorkspaceID == targetID && !a.IsDirect()
	})

	return paginate(edges, p), int64(len(edges)), nil
}

func (s *Store) ListDirectAccessByWorkspace(ctx context.Context, workspaceID string, p types.Pagination) ([]*types.Access, int64, error) {
	_, span := s.tracer.Start(ctx, "memory.Store.ListDirectAccessByWorkspace")
	defer span.End()

	edges := s.filterAccess(func(a *types.Access) bool {
		return a.TargetWorkspaceID == workspaceID && a.IsDirect()
	})

	return paginate(edges, p), int64(len(edges)), nil
}

func (s *Store) ListLinkedAccessByVia(ctx context.Context, viaID string) ([]*types.Access, error) {
	_, span := s.tracer.Start(ctx, "memory.Store.ListLinkedAccessByVia")
	defer span.End()

	return s.filterAccess(func(a *types.Access) bool {
		return a.ViaWorkspaceID == viaID && !a.IsDirect()
	}), nil
}

func (s *Store) UpdateAccessSubscription(ctx context.Context, id string, until *time.Time, tier string) (*types.Access, error) {
	_, span := s.tracer.Start(ctx, "memory.Store.UpdateAccessSubscription")
	defer span.End()

	s.mu.Lock()
	defer s.mu.Unlock()

	a, ok := s.data.accesses[id]
	if !ok {
		return nil, storage.ErrNotFound
	}

	a.SubscribedUntil = nil
	if until != nil {
		u := *until
		a.SubscribedUntil = &u
	}
	a.SubscriptionTier = tier
	s.data.accesses[id] = a

	return &a, nil
}

func (s *Store) DeleteAccess(ctx context.Context, id string) error {
	_, span := s.tracer.Start(ctx, "memory.Store.DeleteAccess")
	defer span.End()

	s.mu.Lock()
	defer s.mu.Unlock()

	if _, ok := s.data.accesses[id]; !ok {
		return storage.ErrNotFound
	}
	delete(s.data.accesses, id)

	return nil
}

// filterAccess returns matching edges newest first.
func (s *Store) filterAccess(match func(*types.Access) bool) []*types.Access {
	s.mu.RLock()
	defer s.mu.RUnlock()

	out := make([]*types.Access, 0)
	for _, a := range s.data.accesses {
		if match(&a) {
			out = append(out, &a)
		}
	}

	sort.Slice(out, func(i, j int) bool {
		return newerFirst(out[i].CreatedAt, out[i].ID, out[j].CreatedAt, out[j].ID)
	})

	return out
}

func (s *Store) workspaceIDsByActor(actorID string, pick func(*types.Access) string) []string {
	edges := s.filterAccess(func(a *types.Access) bool {
		return a.ActorAccountID == actorID
	})

	seen := make(map[string]bool, len(edges))
	ids := make([]string, 0, len(edges))
	for _, a := range edges {
		id := pick(a)
		if !seen[id] {
			seen[id] = true
			ids = append(ids, id)
		}
	}

	return ids
}

func newerFirst(aTime time.Time, aID string, bTime time.Time, bID string) bool {
	if !aTime.Equal(bTime) {
		return aTime.After(bTime)
	}
	return strings.Compare(aID, bID) > 0
}

func reverse[T any](items []T) {
	for i, j := 0, len(items)-1; i < j; i, j = i+1, j-1 {
		items[i], items[j] = items[j], items[i]
	}
}
