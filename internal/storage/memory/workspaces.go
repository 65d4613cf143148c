// Copyright 2026 Canonical Ltd.
// SPDX-License-Identifier: AGPL-3.0

package memory

import (
	"context"
	"slices"
	"sort"
	"strings"

	"github.com/indevian-dev/TIKTAK-MONOREPO-sub000/internal/db"
	"github.com/indevian-dev/TIKTAK-MONOREPO-sub000/internal/storage"
	"github.com/indevian-dev/TIKTAK-MONOREPO-sub000/internal/types"
)

func (s *Store) CreateWorkspace(ctx context.Context, w *types.Workspace) (*types.Workspace, error) {
	_, span := s.tracer.Start(ctx, "memory.Store.CreateWorkspace")
	defer span.End()

	id, err := s.newID()
	if err != nil {
		return nil, err
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	created := *w
	created.ID = id
	created.Profile.Tags = slices.Clone(w.Profile.Tags)
	created.CreatedAt = s.now()
	created.UpdatedAt = created.CreatedAt
	s.data.workspaces[id] = created

	return &created, nil
}

func (s *Store) GetWorkspace(ctx context.Context, id string) (*types.Workspace, error) {
	_, span := s.tracer.Start(ctx, "memory.Store.GetWorkspace")
	defer span.End()

	s.mu.RLock()
	defer s.mu.RUnlock()

	w, ok := s.data.workspaces[id]
	if !ok {
		return nil, storage.ErrNotFound
	}

	return &w, nil
}

func (s *Store) GetWorkspacesByIDs(ctx context.Context, ids []string) ([]*types.Workspace, error) {
	_, span := s.tracer.Start(ctx, "memory.Store.GetWorkspacesByIDs")
	defer span.End()

	s.mu.RLock()
	defer s.mu.RUnlock()

	out := make([]*types.Workspace, 0, len(ids))
	seen := make(map[string]bool, len(ids))
	for _, id := range ids {
		w, ok := s.data.workspaces[id]
		if !ok || seen[id] {
			continue
		}
		seen[id] = true
		out = append(out, &w)
	}

	sort.SliceStable(out, func(i, j int) bool {
		return newerFirst(out[i].CreatedAt, out[i].ID, out[j].CreatedAt, out[j].ID)
	})

	return out, nil
}

func (s *Store) UpdateWorkspace(ctx context.Context, id string, u *types.WorkspaceUpdate) (*types.Workspace, error) {
	_, span := s.tracer.Start(ctx, "memory.Store.UpdateWorkspace")
	defer span.End()

	s.mu.Lock()
	defer s.mu.Unlock()

	w, ok := s.data.workspaces[id]
	if !ok {
		return nil, storage.ErrNotFound
	}

	if u.Title != nil {
		w.Title = *u.Title
	}
	if u.Profile != nil {
		w.Profile = *u.Profile
		w.Profile.Tags = slices.Clone(u.Profile.Tags)
	}
	if u.CityID != nil {
		w.CityID = *u.CityID
	}
	if u.IsActive != nil {
		w.IsActive = *u.IsActive
	}
	if u.IsBlocked != nil {
		w.IsBlocked = *u.IsBlocked
	}
	w.UpdatedAt = s.now()
	s.data.workspaces[id] = w

	return &w, nil
}

// DeleteWorkspace cascades to the edges and invitations referencing the workspace.
func (s *Store) DeleteWorkspace(ctx context.Context, id string) error {
	_, span := s.tracer.Start(ctx, "memory.Store.DeleteWorkspace")
	defer span.End()

	s.mu.Lock()
	defer s.mu.Unlock()

	if _, ok := s.data.workspaces[id]; !ok {
		return storage.ErrNotFound
	}
	delete(s.data.workspaces, id)

	for aid, a := range s.data.accesses {
		if a.TargetWorkspaceID == id || a.ViaWorkspaceID == id {
			delete(s.data.accesses, aid)
		}
	}
	for iid, inv := range s.data.invitations {
		if inv.ForWorkspaceID == id {
			delete(s.data.invitations, iid)
		}
	}

	return nil
}

func (s *Store) ListWorkspacesByType(ctx context.Context, t types.WorkspaceType, f types.WorkspaceFilter, order types.WorkspaceSort, p types.Pagination) ([]*types.Workspace, int64, error) {
	_, span := s.tracer.Start(ctx, "memory.Store.ListWorkspacesByType")
	defer span.End()

	s.mu.RLock()
	defer s.mu.RUnlock()

	matched := make([]*types.Workspace, 0)
	for _, w := range s.data.workspaces {
		if !matchesFilter(&w, t, f) {
			continue
		}
		matched = append(matched, &w)
	}

	sort.SliceStable(matched, func(i, j int) bool {
		return lessWorkspace(matched[i], matched[j], order)
	})

	return paginate(matched, p), int64(len(matched)), nil
}

func (s *Store) ListDistinctProviderTags(ctx context.Context) ([]string, error) {
	_, span := s.tracer.Start(ctx, "memory.Store.ListDistinctProviderTags")
	defer span.End()

	s.mu.RLock()
	defer s.mu.RUnlock()

	seen := make(map[string]bool)
	tags := make([]string, 0)
	for _, w := range s.data.workspaces {
		if w.Type != types.WorkspaceTypeProvider || !w.IsActive || w.IsBlocked {
			continue
		}
		for _, tag := range w.Profile.Tags {
			if !seen[tag] {
				seen[tag] = true
				tags = append(tags, tag)
			}
		}
	}
	sort.Strings(tags)

	return tags, nil
}

func matchesFilter(w *types.Workspace, t types.WorkspaceType, f types.WorkspaceFilter) bool {
	if w.Type != t {
		return false
	}
	if f.IsActive != nil && w.IsActive != *f.IsActive {
		return false
	}
	if f.IsBlocked != nil && w.IsBlocked != *f.IsBlocked {
		return false
	}
	if f.CityID != "" && w.CityID != f.CityID {
		return false
	}
	if f.Search != "" && !strings.Contains(strings.ToLower(w.Title), strings.ToLower(f.Search)) {
		return false
	}
	if f.Tag != "" && !slices.Contains(w.Profile.Tags, f.Tag) {
		return false
	}
	return true
}

func lessWorkspace(a, b *types.Workspace, order types.WorkspaceSort) bool {
	var cmp int
	switch order.Field {
	case types.SortTitle:
		cmp = strings.Compare(a.Title, b.Title)
	case types.SortUpdatedAt:
		cmp = a.UpdatedAt.Compare(b.UpdatedAt)
	default:
		cmp = a.CreatedAt.Compare(b.CreatedAt)
	}
	if cmp == 0 {
		cmp = strings.Compare(a.ID, b.ID)
	}
	if order.Desc {
		return cmp > 0
	}
	return cmp < 0
}

func paginate[T any](items []T, p types.Pagination) []T {
	size := db.PageSize(p.Size)
	offset := db.Offset(p.Page, size)

	if offset >= uint64(len(items)) {
		return []T{}
	}
	end := offset + size
	if end > uint64(len(items)) {
		end = uint64(len(items))
	}

	return items[offset:end]
}
