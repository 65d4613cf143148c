// Copyright 2026 Canonical Ltd.
// SPDX-License-Identifier: AGPL-3.0

package roles

import (
	"context"
	"fmt"
	"strings"

	"github.com/indevian-dev/TIKTAK-MONOREPO-sub000/internal/logging"
	"github.com/indevian-dev/TIKTAK-MONOREPO-sub000/internal/monitoring"
	"github.com/indevian-dev/TIKTAK-MONOREPO-sub000/internal/storage"
	"github.com/indevian-dev/TIKTAK-MONOREPO-sub000/internal/tracing"
	"github.com/indevian-dev/TIKTAK-MONOREPO-sub000/internal/types"
)

var _ ServiceInterface = (*Service)(nil)

type Service struct {
	storage StorageInterface
	tracer  tracing.TracingInterface
	monitor monitoring.MonitorInterface
	logger  logging.LoggerInterface
}

func NewService(
	storage StorageInterface,
	tracer tracing.TracingInterface,
	monitor monitoring.MonitorInterface,
	logger logging.LoggerInterface,
) *Service {
	return &Service{
		storage: storage,
		tracer:  tracer,
		monitor: monitor,
		logger:  logger,
	}
}

func (s *Service) FindAll(ctx context.Context) ([]*types.Role, error) {
	ctx, span := s.tracer.Start(ctx, "roles.Service.FindAll")
	defer span.End()

	roles, err := s.storage.ListRoles(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to list roles: %w", err)
	}

	return roles, nil
}

func (s *Service) FindByName(ctx context.Context, name string) (*types.Role, error) {
	ctx, span := s.tracer.Start(ctx, "roles.Service.FindByName")
	defer span.End()

	r, err := s.storage.GetRoleByName(ctx, name)
	if err != nil {
		return nil, storage.DomainError(err, types.ErrConflict)
	}

	return r, nil
}

func (s *Service) Create(ctx context.Context, r *types.Role) (*types.Role, error) {
	ctx, span := s.tracer.Start(ctx, "roles.Service.Create")
	defer span.End()

	r.Name = strings.TrimSpace(r.Name)
	if r.Name == "" {
		return nil, fmt.Errorf("%w: role name is required", types.ErrInvalidInput)
	}

	if r.ForWorkspaceType != "" && !r.ForWorkspaceType.Valid() {
		return nil, fmt.Errorf("%w: %q", types.ErrInvalidType, r.ForWorkspaceType)
	}

	r.Permissions = r.Permissions.Dedup()

	created, err := s.storage.CreateRole(ctx, r)
	if err != nil {
		return nil, fmt.Errorf("failed to create role %s: %w", r.Name, storage.DomainError(err, types.ErrConflict))
	}

	return created, nil
}

// Update replaces the given fields; a non-nil permission set replaces the whole set.
func (s *Service) Update(ctx context.Context, id string, u *types.RoleUpdate) (*types.Role, error) {
	ctx, span := s.tracer.Start(ctx, "roles.Service.Update")
	defer span.End()

	if u.Name != nil {
		name := strings.TrimSpace(*u.Name)
		if name == "" {
			return nil, fmt.Errorf("%w: role name cannot be empty", types.ErrInvalidInput)
		}
		u.Name = &name
	}

	if u.ForWorkspaceType != nil && *u.ForWorkspaceType != "" && !u.ForWorkspaceType.Valid() {
		return nil, fmt.Errorf("%w: %q", types.ErrInvalidType, *u.ForWorkspaceType)
	}

	if u.Permissions != nil {
		p := u.Permissions.Dedup()
		u.Permissions = &p
	}

	updated, err := s.storage.UpdateRole(ctx, id, u)
	if err != nil {
		return nil, storage.DomainError(err, types.ErrConflict)
	}

	return updated, nil
}

// Delete fails with ErrConflict while any edge or invitation references the role.
func (s *Service) Delete(ctx context.Context, id string) error {
	ctx, span := s.tracer.Start(ctx, "roles.Service.Delete")
	defer span.End()

	if err := s.storage.DeleteRole(ctx, id); err != nil {
		return storage.DomainError(err, types.ErrConflict)
	}

	return nil
}

func (s *Service) AddPermission(ctx context.Context, roleName, permission string) (*types.Role, error) {
	ctx, span := s.tracer.Start(ctx, "roles.Service.AddPermission")
	defer span.End()

	return s.mutatePermissions(ctx, roleName, permission, types.Permissions.With)
}

func (s *Service) RemovePermission(ctx context.Context, roleName, permission string) (*types.Role, error) {
	ctx, span := s.tracer.Start(ctx, "roles.Service.RemovePermission")
	defer span.End()

	return s.mutatePermissions(ctx, roleName, permission, types.Permissions.Without)
}

func (s *Service) mutatePermissions(ctx context.Context, roleName, permission string, mutate func(types.Permissions, string) types.Permissions) (*types.Role, error) {
	permission = strings.TrimSpace(permission)
	if permission == "" {
		return nil, fmt.Errorf("%w: permission is required", types.ErrInvalidInput)
	}

	var updated *types.Role
	err := s.storage.WithTx(ctx, func(ctx context.Context) error {
		r, err := s.storage.GetRoleByName(ctx, roleName)
		if err != nil {
			return storage.DomainError(err, types.ErrConflict)
		}

		permissions := mutate(r.Permissions, permission)

		updated, err = s.storage.UpdateRole(ctx, r.ID, &types.RoleUpdate{Permissions: &permissions})
		return storage.DomainError(err, types.ErrConflict)
	})
	if err != nil {
		return nil, err
	}

	return updated, nil
}
