// Copyright 2026 Canonical Ltd.
// SPDX-License-Identifier: AGPL-3.0

package workspaces

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"sync/atomic"
	"time"

	"github.com/indevian-dev/TIKTAK-MONOREPO-sub000/internal/cache"
	"github.com/indevian-dev/TIKTAK-MONOREPO-sub000/internal/db"
	"github.com/indevian-dev/TIKTAK-MONOREPO-sub000/internal/logging"
	"github.com/indevian-dev/TIKTAK-MONOREPO-sub000/internal/monitoring"
	"github.com/indevian-dev/TIKTAK-MONOREPO-sub000/internal/storage"
	"github.com/indevian-dev/TIKTAK-MONOREPO-sub000/internal/tracing"
	"github.com/indevian-dev/TIKTAK-MONOREPO-sub000/internal/types"
)

var _ ServiceInterface = (*Service)(nil)

var sortFields = map[string]bool{
	"":                  true,
	types.SortCreatedAt: true,
	types.SortUpdatedAt: true,
	types.SortTitle:     true,
}

type Service struct {
	storage StorageInterface
	cache   cache.CacheInterface
	tagTTL  time.Duration
	// tagsGen counts tag invalidations issued by this service
	tagsGen atomic.Uint64
	tracer  tracing.TracingInterface
	monitor monitoring.MonitorInterface
	logger  logging.LoggerInterface
}

func NewService(
	storage StorageInterface,
	cache cache.CacheInterface,
	tagTTL time.Duration,
	tracer tracing.TracingInterface,
	monitor monitoring.MonitorInterface,
	logger logging.LoggerInterface,
) *Service {
	return &Service{
		storage: storage,
		cache:   cache,
		tagTTL:  tagTTL,
		tracer:  tracer,
		monitor: monitor,
		logger:  logger,
	}
}

func (s *Service) Get(ctx context.Context, id string) (*types.Workspace, error) {
	ctx, span := s.tracer.Start(ctx, "workspaces.Service.Get")
	defer span.End()

	w, err := s.storage.GetWorkspace(ctx, id)
	if err != nil {
		return nil, storage.DomainError(err, types.ErrConflict)
	}

	return w, nil
}

// Update applies an owner's changes. Only the holder of a direct edge with the
// owner role of the workspace type may update, and never the moderation flags.
func (s *Service) Update(ctx context.Context, actorID, id string, u *types.WorkspaceUpdate) (*types.Workspace, error) {
	ctx, span := s.tracer.Start(ctx, "workspaces.Service.Update")
	defer span.End()

	if u.IsActive != nil || u.IsBlocked != nil {
		return nil, fmt.Errorf("%w: moderation flags are managed by staff", types.ErrForbidden)
	}

	w, err := s.Get(ctx, id)
	if err != nil {
		return nil, err
	}

	if err := s.requireOwner(ctx, actorID, w); err != nil {
		return nil, err
	}

	return s.update(ctx, w, u)
}

func (s *Service) ListByType(ctx context.Context, t types.WorkspaceType, f types.WorkspaceFilter, order types.WorkspaceSort, p types.Pagination) (*types.PageResult[*types.Workspace], error) {
	ctx, span := s.tracer.Start(ctx, "workspaces.Service.ListByType")
	defer span.End()

	if !t.Valid() {
		return nil, fmt.Errorf("%w: %q", types.ErrInvalidType, t)
	}

	if !sortFields[order.Field] {
		return nil, fmt.Errorf("%w: cannot sort by %q", types.ErrInvalidInput, order.Field)
	}

	items, total, err := s.storage.ListWorkspacesByType(ctx, t, f, order, p)
	if err != nil {
		return nil, fmt.Errorf("failed to list %s workspaces: %w", t, err)
	}

	return types.NewPageResult(items, int64(db.Page(p.Page)), int64(db.PageSize(p.Size)), total), nil
}

// ListDistinctTags returns the tags of active, unblocked providers, served from
// the cache when possible. Cache failures fall back to storage.
func (s *Service) ListDistinctTags(ctx context.Context) ([]string, error) {
	ctx, span := s.tracer.Start(ctx, "workspaces.Service.ListDistinctTags")
	defer span.End()

	raw, err := s.cache.Get(ctx, cache.ProviderTagsKey)
	switch {
	case err == nil:
		var tags []string
		if jErr := json.Unmarshal(raw, &tags); jErr == nil {
			return tags, nil
		}
		s.logger.Warnf("discarding malformed cached tags")
	case !errors.Is(err, cache.ErrMiss):
		s.logger.Warnf("tag cache unavailable: %v", err)
	}

	gen := s.tagsGen.Load()

	tags, err := s.storage.ListDistinctProviderTags(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to list tags: %w", err)
	}

	// A list read before an invalidation must not be stored after it. Writers
	// in other services or processes are only bounded by the tag TTL.
	if s.tagsGen.Load() != gen {
		return tags, nil
	}

	if raw, err := json.Marshal(tags); err == nil {
		if err := s.cache.Set(ctx, cache.ProviderTagsKey, raw, s.tagTTL); err != nil {
			s.logger.Warnf("failed to cache tags: %v", err)
		}
	}

	return tags, nil
}

func (s *Service) StaffUpdateProvider(ctx context.Context, id string, u *types.WorkspaceUpdate) (*types.Workspace, error) {
	ctx, span := s.tracer.Start(ctx, "workspaces.Service.StaffUpdateProvider")
	defer span.End()

	w, err := s.provider(ctx, id)
	if err != nil {
		return nil, err
	}

	return s.update(ctx, w, u)
}

// StaffEvaluateApplication activates an approved provider and blocks a rejected one.
func (s *Service) StaffEvaluateApplication(ctx context.Context, id string, approve bool) (*types.Workspace, error) {
	ctx, span := s.tracer.Start(ctx, "workspaces.Service.StaffEvaluateApplication")
	defer span.End()

	w, err := s.provider(ctx, id)
	if err != nil {
		return nil, err
	}

	on, off := true, false
	u := &types.WorkspaceUpdate{IsBlocked: &on}
	if approve {
		// approving a previously rejected application lifts the block
		u = &types.WorkspaceUpdate{IsActive: &on, IsBlocked: &off}
	}

	return s.update(ctx, w, u)
}

// StaffDeleteProvider hard deletes the provider; its edges and invitations cascade.
func (s *Service) StaffDeleteProvider(ctx context.Context, id string) error {
	ctx, span := s.tracer.Start(ctx, "workspaces.Service.StaffDeleteProvider")
	defer span.End()

	if _, err := s.provider(ctx, id); err != nil {
		return err
	}

	if err := s.storage.DeleteWorkspace(ctx, id); err != nil {
		return storage.DomainError(err, types.ErrConflict)
	}

	s.invalidateTags(ctx)

	return nil
}

func (s *Service) update(ctx context.Context, w *types.Workspace, u *types.WorkspaceUpdate) (*types.Workspace, error) {
	if u.Empty() {
		return nil, fmt.Errorf("%w: nothing to update", types.ErrInvalidInput)
	}

	if u.Title != nil && *u.Title == "" {
		return nil, fmt.Errorf("%w: title cannot be empty", types.ErrInvalidInput)
	}

	if u.Profile != nil {
		u.Profile.Normalize()
		if err := u.Profile.Validate(); err != nil {
			return nil, err
		}
	}

	updated, err := s.storage.UpdateWorkspace(ctx, w.ID, u)
	if err != nil {
		return nil, storage.DomainError(err, types.ErrConflict)
	}

	if updated.Type == types.WorkspaceTypeProvider {
		s.invalidateTags(ctx)
	}

	return updated, nil
}

func (s *Service) provider(ctx context.Context, id string) (*types.Workspace, error) {
	w, err := s.Get(ctx, id)
	if err != nil {
		return nil, err
	}

	if w.Type != types.WorkspaceTypeProvider {
		return nil, fmt.Errorf("%w: %s is a %s workspace", types.ErrInvalidType, id, w.Type)
	}

	return w, nil
}

func (s *Service) requireOwner(ctx context.Context, actorID string, w *types.Workspace) error {
	ownerRole, ok := types.OwnerRole(w.Type)
	if !ok {
		return fmt.Errorf("%w: %q", types.ErrInvalidType, w.Type)
	}

	edge, err := s.storage.FindAccess(ctx, actorID, w.ID, w.ID)
	if errors.Is(err, storage.ErrNotFound) || (err == nil && edge.AccessRole != ownerRole) {
		s.logger.Security().AuthzFailure(actorID, w.ID)
		return fmt.Errorf("%w: %s does not own %s", types.ErrForbidden, actorID, w.ID)
	}
	if err != nil {
		return fmt.Errorf("failed to read ownership: %w", err)
	}

	return nil
}

func (s *Service) invalidateTags(ctx context.Context) {
	s.tagsGen.Add(1)
	if err := s.cache.Delete(ctx, cache.ProviderTagsKey); err != nil {
		s.logger.Warnf("failed to invalidate tag cache: %v", err)
	}
}
