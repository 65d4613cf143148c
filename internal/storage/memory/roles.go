// Copyright 2026 Canonical Ltd.
// SPDX-License-Identifier: AGPL-3.0

package memory

import (
	"context"
	"fmt"
	"slices"
	"sort"

	"github.com/indevian-dev/TIKTAK-MONOREPO-sub000/internal/storage"
	"github.com/indevian-dev/TIKTAK-MONOREPO-sub000/internal/types"
)

func (s *Store) CreateRole(ctx context.Context, r *types.Role) (*types.Role, error) {
	_, span := s.tracer.Start(ctx, "memory.Store.CreateRole")
	defer span.End()

	id, err := s.newID()
	if err != nil {
		return nil, err
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	if _, ok := s.roleByName(r.Name); ok {
		return nil, fmt.Errorf("insert role: %w", storage.ErrDuplicateKey)
	}

	created := *r
	created.ID = id
	created.Permissions = slices.Clone(r.Permissions)
	if created.Permissions == nil {
		created.Permissions = types.Permissions{}
	}
	created.CreatedAt = s.now()
	created.UpdatedAt = created.CreatedAt
	s.data.roles[id] = created

	return &created, nil
}

func (s *Store) GetRole(ctx context.Context, id string) (*types.Role, error) {
	_, span := s.tracer.Start(ctx, "memory.Store.GetRole")
	defer span.End()

	s.mu.RLock()
	defer s.mu.RUnlock()

	r, ok := s.data.roles[id]
	if !ok {
		return nil, storage.ErrNotFound
	}

	return cloneRole(r), nil
}

func (s *Store) GetRoleByName(ctx context.Context, name string) (*types.Role, error) {
	_, span := s.tracer.Start(ctx, "memory.Store.GetRoleByName")
	defer span.End()

	s.mu.RLock()
	defer s.mu.RUnlock()

	r, ok := s.roleByName(name)
	if !ok {
		return nil, storage.ErrNotFound
	}

	return cloneRole(r), nil
}

func (s *Store) ListRoles(ctx context.Context) ([]*types.Role, error) {
	_, span := s.tracer.Start(ctx, "memory.Store.ListRoles")
	defer span.End()

	s.mu.RLock()
	defer s.mu.RUnlock()

	roles := make([]*types.Role, 0, len(s.data.roles))
	for _, r := range s.data.roles {
		roles = append(roles, cloneRole(r))
	}
	sort.Slice(roles, func(i, j int) bool { return roles[i].Name < roles[j].Name })

	return roles, nil
}

func (s *Store) UpdateRole(ctx context.Context, id string, u *types.RoleUpdate) (*types.Role, error) {
	_, span := s.tracer.Start(ctx, "memory.Store.UpdateRole")
	defer span.End()

	s.mu.Lock()
	defer s.mu.Unlock()

	r, ok := s.data.roles[id]
	if !ok {
		return nil, storage.ErrNotFound
	}

	if u.Name != nil && *u.Name != r.Name {
		if _, taken := s.roleByName(*u.Name); taken {
			return nil, fmt.Errorf("update role: %w", storage.ErrDuplicateKey)
		}
		if s.roleReferenced(r.Name) {
			return nil, fmt.Errorf("update role: %w", storage.ErrForeignKeyViolation)
		}
		r.Name = *u.Name
	}
	if u.Permissions != nil {
		r.Permissions = slices.Clone(*u.Permissions)
	}
	if u.ForWorkspaceType != nil {
		r.ForWorkspaceType = *u.ForWorkspaceType
	}
	if u.IsStaff != nil {
		r.IsStaff = *u.IsStaff
	}
	r.UpdatedAt = s.now()
	s.data.roles[id] = r

	return cloneRole(r), nil
}

func (s *Store) DeleteRole(ctx context.Context, id string) error {
	_, span := s.tracer.Start(ctx, "memory.Store.DeleteRole")
	defer span.End()

	s.mu.Lock()
	defer s.mu.Unlock()

	r, ok := s.data.roles[id]
	if !ok {
		return storage.ErrNotFound
	}
	if s.roleReferenced(r.Name) {
		return fmt.Errorf("delete role: %w", storage.ErrForeignKeyViolation)
	}
	delete(s.data.roles, id)

	return nil
}

// roleByName expects s.mu to be held.
func (s *Store) roleByName(name string) (types.Role, bool) {
	for _, r := range s.data.roles {
		if r.Name == name {
			return r, true
		}
	}
	return types.Role{}, false
}

// roleReferenced expects s.mu to be held.
func (s *Store) roleReferenced(name string) bool {
	for _, a := range s.data.accesses {
		if a.AccessRole == name {
			return true
		}
	}
	for _, inv := range s.data.invitations {
		if inv.AccessRole == name {
			return true
		}
	}
	return false
}

func cloneRole(r types.Role) *types.Role {
	r.Permissions = slices.Clone(r.Permissions)
	return &r
}
