// Copyright 2026 Canonical Ltd.
// SPDX-License-Identifier: AGPL-3.0

package webhooks

import (
	"context"
	"fmt"

	"github.com/indevian-dev/TIKTAK-MONOREPO-sub000/internal/logging"
	"github.com/indevian-dev/TIKTAK-MONOREPO-sub000/internal/monitoring"
	"github.com/indevian-dev/TIKTAK-MONOREPO-sub000/internal/tracing"
	"github.com/indevian-dev/TIKTAK-MONOREPO-sub000/internal/types"
	"github.com/indevian-dev/TIKTAK-MONOREPO-sub000/pkg/lifecycle"
)

var _ ServiceInterface = (*Service)(nil)

type Service struct {
	storage   StorageInterface
	lifecycle LifecycleInterface
	tracer    tracing.TracingInterface
	monitor   monitoring.MonitorInterface
	logger    logging.LoggerInterface
}

func NewService(
	storage StorageInterface,
	lifecycle LifecycleInterface,
	tracer tracing.TracingInterface,
	monitor monitoring.MonitorInterface,
	logger logging.LoggerInterface,
) *Service {
	return &Service{
		storage:   storage,
		lifecycle: lifecycle,
		tracer:    tracer,
		monitor:   monitor,
		logger:    logger,
	}
}

// HandleRegistration provisions the personal workspace of a newly registered
// identity. Kratos retries failed hooks, so an existing personal workspace is
// returned as is.
func (s *Service) HandleRegistration(ctx context.Context, identityID, email string) (*types.Workspace, error) {
	ctx, span := s.tracer.Start(ctx, "webhooks.Service.HandleRegistration")
	defer span.End()

	s.logger.Debugf("Handling registration for identity %s", identityID)

	if identityID == "" {
		return nil, fmt.Errorf("%w: identity ID is empty", types.ErrInvalidInput)
	}

	existing, err := s.personalWorkspace(ctx, identityID)
	if err != nil {
		return nil, err
	}
	if existing != nil {
		return existing, nil
	}

	ws, err := s.lifecycle.CreateWorkspace(ctx, identityID, &lifecycle.NewWorkspace{
		Title:   fmt.Sprintf("%s's workspace", email),
		Type:    types.WorkspaceTypePersonal,
		Profile: types.Profile{Email: email},
	})
	if err != nil {
		return nil, fmt.Errorf("failed to create personal workspace: %w", err)
	}

	s.logger.Infof("Provisioned personal workspace %s for identity %s", ws.ID, identityID)
	return ws, nil
}

func (s *Service) personalWorkspace(ctx context.Context, identityID string) (*types.Workspace, error) {
	edges, err := s.storage.ListAccessByActor(ctx, identityID)
	if err != nil {
		return nil, fmt.Errorf("failed to list edges: %w", err)
	}

	ownerRole, _ := types.OwnerRole(types.WorkspaceTypePersonal)

	ids := make([]string, 0, len(edges))
	for _, e := range edges {
		if e.IsDirect() && e.AccessRole == ownerRole {
			ids = append(ids, e.TargetWorkspaceID)
		}
	}

	if len(ids) == 0 {
		return nil, nil
	}

	workspaces, err := s.storage.GetWorkspacesByIDs(ctx, ids)
	if err != nil {
		return nil, fmt.Errorf("failed to read workspaces: %w", err)
	}

	for _, w := range workspaces {
		if w.Type == types.WorkspaceTypePersonal {
			return w, nil
		}
	}

	return nil, nil
}
