// Copyright 2026 Canonical Ltd.
// SPDX-License-Identifier: AGPL-3.0

package webhooks

import (
	"context"
	"errors"
	"testing"

	"go.opentelemetry.io/otel/trace"
	"go.uber.org/mock/gomock"

	"github.com/indevian-dev/TIKTAK-MONOREPO-sub000/internal/types"
	"github.com/indevian-dev/TIKTAK-MONOREPO-sub000/pkg/lifecycle"
)

//go:generate mockgen -build_flags=--mod=mod -package webhooks -destination ./mock_logger.go -source=../../internal/logging/interfaces.go
//go:generate mockgen -build_flags=--mod=mod -package webhooks -destination ./mock_monitor.go -source=../../internal/monitoring/interfaces.go
//go:generate mockgen -build_flags=--mod=mod -package webhooks -destination ./mock_tracer.go -source=../../internal/tracing/interfaces.go
//go:generate mockgen -build_flags=--mod=mod -package webhooks -destination ./mock_interfaces.go -source=./interfaces.go

func TestService_HandleRegistration(t *testing.T) {
	personal := &types.Workspace{ID: "p1", Type: types.WorkspaceTypePersonal}

	tests := []struct {
		name        string
		identityID  string
		setupMocks  func(*MockStorageInterface, *MockLifecycleInterface)
		expectedID  string
		expectedErr error
	}{
		{
			name:        "empty identity",
			identityID:  "",
			setupMocks:  func(*MockStorageInterface, *MockLifecycleInterface) {},
			expectedErr: types.ErrInvalidInput,
		},
		{
			name:       "first registration creates personal workspace",
			identityID: "acc-1",
			setupMocks: func(storage *MockStorageInterface, lc *MockLifecycleInterface) {
				storage.EXPECT().ListAccessByActor(gomock.Any(), "acc-1").Return(nil, nil)
				lc.EXPECT().CreateWorkspace(gomock.Any(), "acc-1", gomock.Any()).DoAndReturn(
					func(_ context.Context, _ string, in *lifecycle.NewWorkspace) (*types.Workspace, error) {
						if in.Type != types.WorkspaceTypePersonal || in.Title != "a@x.com's workspace" || in.Profile.Email != "a@x.com" {
							t.Errorf("unexpected draft %+v", in)
						}
						return personal, nil
					},
				)
			},
			expectedID: "p1",
		},
		{
			name:       "redelivery returns existing personal workspace",
			identityID: "acc-1",
			setupMocks: func(storage *MockStorageInterface, _ *MockLifecycleInterface) {
				storage.EXPECT().ListAccessByActor(gomock.Any(), "acc-1").Return([]*types.Access{
					{ActorAccountID: "acc-1", TargetWorkspaceID: "s1", ViaWorkspaceID: "prov", AccessRole: types.RoleStudent},
					{ActorAccountID: "acc-1", TargetWorkspaceID: "prov2", ViaWorkspaceID: "prov2", AccessRole: types.RoleManager},
					{ActorAccountID: "acc-1", TargetWorkspaceID: "p1", ViaWorkspaceID: "p1", AccessRole: types.RoleManager},
				}, nil)
				storage.EXPECT().GetWorkspacesByIDs(gomock.Any(), []string{"prov2", "p1"}).Return([]*types.Workspace{
					{ID: "prov2", Type: types.WorkspaceTypeProvider},
					personal,
				}, nil)
			},
			expectedID: "p1",
		},
		{
			name:       "owner of other workspaces only",
			identityID: "acc-1",
			setupMocks: func(storage *MockStorageInterface, lc *MockLifecycleInterface) {
				storage.EXPECT().ListAccessByActor(gomock.Any(), "acc-1").Return([]*types.Access{
					{ActorAccountID: "acc-1", TargetWorkspaceID: "prov2", ViaWorkspaceID: "prov2", AccessRole: types.RoleManager},
				}, nil)
				storage.EXPECT().GetWorkspacesByIDs(gomock.Any(), []string{"prov2"}).Return([]*types.Workspace{
					{ID: "prov2", Type: types.WorkspaceTypeProvider},
				}, nil)
				lc.EXPECT().CreateWorkspace(gomock.Any(), "acc-1", gomock.Any()).Return(personal, nil)
			},
			expectedID: "p1",
		},
		{
			name:       "storage failure",
			identityID: "acc-1",
			setupMocks: func(storage *MockStorageInterface, _ *MockLifecycleInterface) {
				storage.EXPECT().ListAccessByActor(gomock.Any(), "acc-1").Return(nil, types.ErrTransactionFailed)
			},
			expectedErr: types.ErrTransactionFailed,
		},
		{
			name:       "lifecycle failure",
			identityID: "acc-1",
			setupMocks: func(storage *MockStorageInterface, lc *MockLifecycleInterface) {
				storage.EXPECT().ListAccessByActor(gomock.Any(), "acc-1").Return(nil, nil)
				lc.EXPECT().CreateWorkspace(gomock.Any(), "acc-1", gomock.Any()).Return(nil, types.ErrTransactionFailed)
			},
			expectedErr: types.ErrTransactionFailed,
		},
	}

	for _, test := range tests {
		t.Run(test.name, func(t *testing.T) {
			ctrl := gomock.NewController(t)
			defer ctrl.Finish()

			mockStorage := NewMockStorageInterface(ctrl)
			mockLifecycle := NewMockLifecycleInterface(ctrl)
			mockTracer := NewMockTracingInterface(ctrl)
			mockMonitor := NewMockMonitorInterface(ctrl)
			mockLogger := NewMockLoggerInterface(ctrl)

			ctx := context.Background()
			mockTracer.EXPECT().Start(gomock.Any(), "webhooks.Service.HandleRegistration").Return(ctx, trace.SpanFromContext(ctx))
			mockLogger.EXPECT().Debugf(gomock.Any(), gomock.Any()).AnyTimes()
			mockLogger.EXPECT().Infof(gomock.Any(), gomock.Any()).AnyTimes()

			test.setupMocks(mockStorage, mockLifecycle)

			svc := NewService(mockStorage, mockLifecycle, mockTracer, mockMonitor, mockLogger)

			ws, err := svc.HandleRegistration(ctx, test.identityID, "a@x.com")

			if test.expectedErr != nil {
				if !errors.Is(err, test.expectedErr) {
					t.Fatalf("expected error %v, got %v", test.expectedErr, err)
				}
				return
			}

			if err != nil {
				t.Fatalf("unexpected error: %v", err)
			}

			if ws.ID != test.expectedID {
				t.Fatalf("expected workspace %s, got %s", test.expectedID, ws.ID)
			}
		})
	}
}
