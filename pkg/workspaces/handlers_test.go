// Copyright 2026 Canonical Ltd.
// SPDX-License-Identifier: AGPL-3.0

package workspaces

import (
	"bytes"
	"errors"
	"io"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/go-chi/chi/v5"
	"go.uber.org/mock/gomock"

	"github.com/indevian-dev/TIKTAK-MONOREPO-sub000/internal/types"
	"github.com/indevian-dev/TIKTAK-MONOREPO-sub000/pkg/authentication"
)

//go:generate mockgen -build_flags=--mod=mod -package workspaces -destination ./mock_logger.go -source=../../internal/logging/interfaces.go
//go:generate mockgen -build_flags=--mod=mod -package workspaces -destination ./mock_monitor.go -source=../../internal/monitoring/interfaces.go
//go:generate mockgen -build_flags=--mod=mod -package workspaces -destination ./mock_tracer.go -source=../../internal/tracing/interfaces.go
//go:generate mockgen -build_flags=--mod=mod -package workspaces -destination ./mock_interfaces.go -source=./interfaces.go

func TestAPI_Endpoints(t *testing.T) {
	active := true

	tests := []struct {
		name           string
		method         string
		path           string
		body           string
		account        string
		setupMocks     func(*MockServiceInterface, *MockLoggerInterface, *MockSecurityLoggerInterface)
		expectedStatus int
	}{
		{
			name:   "list providers",
			method: http.MethodGet,
			path:   "/workspaces?type=provider&isActive=true&tag=math&sort=title&desc=true&page=2&size=5",
			setupMocks: func(svc *MockServiceInterface, _ *MockLoggerInterface, _ *MockSecurityLoggerInterface) {
				svc.EXPECT().ListByType(
					gomock.Any(),
					types.WorkspaceTypeProvider,
					types.WorkspaceFilter{IsActive: &active, Tag: "math"},
					types.WorkspaceSort{Field: types.SortTitle, Desc: true},
					types.Pagination{Page: 2, Size: 5},
				).Return(types.NewPageResult[*types.Workspace](nil, 2, 5, 0), nil)
			},
			expectedStatus: http.StatusOK,
		},
		{
			name:           "list with unknown type",
			method:         http.MethodGet,
			path:           "/workspaces?type=school",
			setupMocks:     func(*MockServiceInterface, *MockLoggerInterface, *MockSecurityLoggerInterface) {},
			expectedStatus: http.StatusBadRequest,
		},
		{
			name:   "get missing",
			method: http.MethodGet,
			path:   "/workspaces/w404",
			setupMocks: func(svc *MockServiceInterface, _ *MockLoggerInterface, _ *MockSecurityLoggerInterface) {
				svc.EXPECT().Get(gomock.Any(), "w404").Return(nil, types.ErrNotFound)
			},
			expectedStatus: http.StatusNotFound,
		},
		{
			name:           "update anonymous",
			method:         http.MethodPatch,
			path:           "/workspaces/w1",
			body:           `{"title":"x"}`,
			setupMocks:     func(*MockServiceInterface, *MockLoggerInterface, *MockSecurityLoggerInterface) {},
			expectedStatus: http.StatusUnauthorized,
		},
		{
			name:    "update by non owner",
			method:  http.MethodPatch,
			path:    "/workspaces/w1",
			body:    `{"title":"x"}`,
			account: "acc-1",
			setupMocks: func(svc *MockServiceInterface, _ *MockLoggerInterface, _ *MockSecurityLoggerInterface) {
				svc.EXPECT().Update(gomock.Any(), "acc-1", "w1", gomock.Any()).Return(nil, types.ErrForbidden)
			},
			expectedStatus: http.StatusForbidden,
		},
		{
			name:    "update",
			method:  http.MethodPatch,
			path:    "/workspaces/w1",
			body:    `{"title":"Renamed"}`,
			account: "acc-1",
			setupMocks: func(svc *MockServiceInterface, _ *MockLoggerInterface, _ *MockSecurityLoggerInterface) {
				svc.EXPECT().Update(gomock.Any(), "acc-1", "w1", gomock.Any()).
					DoAndReturn(func(_ any, _ string, _ string, u *types.WorkspaceUpdate) (*types.Workspace, error) {
						return &types.Workspace{ID: "w1", Title: *u.Title}, nil
					})
			},
			expectedStatus: http.StatusOK,
		},
		{
			name:   "tags backend failure",
			method: http.MethodGet,
			path:   "/tags",
			setupMocks: func(svc *MockServiceInterface, logger *MockLoggerInterface, _ *MockSecurityLoggerInterface) {
				svc.EXPECT().ListDistinctTags(gomock.Any()).Return(nil, errors.New("db down"))
				logger.EXPECT().Errorf(gomock.Any(), gomock.Any()).AnyTimes()
			},
			expectedStatus: http.StatusInternalServerError,
		},
		{
			name:           "evaluate without decision",
			method:         http.MethodPost,
			path:           "/staff/providers/p1/evaluation",
			body:           `{}`,
			account:        "staff-1",
			setupMocks:     func(*MockServiceInterface, *MockLoggerInterface, *MockSecurityLoggerInterface) {},
			expectedStatus: http.StatusBadRequest,
		},
		{
			name:    "reject application",
			method:  http.MethodPost,
			path:    "/staff/providers/p1/evaluation",
			body:    `{"approve":false}`,
			account: "staff-1",
			setupMocks: func(svc *MockServiceInterface, logger *MockLoggerInterface, security *MockSecurityLoggerInterface) {
				svc.EXPECT().StaffEvaluateApplication(gomock.Any(), "p1", false).Return(&types.Workspace{ID: "p1", IsBlocked: true}, nil)
				logger.EXPECT().Security().Return(security)
				security.EXPECT().AdminAction("staff-1", "provider.reject", "p1")
			},
			expectedStatus: http.StatusOK,
		},
		{
			name:    "evaluate non provider",
			method:  http.MethodPost,
			path:    "/staff/providers/w1/evaluation",
			body:    `{"approve":true}`,
			account: "staff-1",
			setupMocks: func(svc *MockServiceInterface, _ *MockLoggerInterface, _ *MockSecurityLoggerInterface) {
				svc.EXPECT().StaffEvaluateApplication(gomock.Any(), "w1", true).Return(nil, types.ErrInvalidType)
			},
			expectedStatus: http.StatusBadRequest,
		},
		{
			name:    "delete provider",
			method:  http.MethodDelete,
			path:    "/staff/providers/p1",
			account: "staff-1",
			setupMocks: func(svc *MockServiceInterface, logger *MockLoggerInterface, security *MockSecurityLoggerInterface) {
				svc.EXPECT().StaffDeleteProvider(gomock.Any(), "p1").Return(nil)
				logger.EXPECT().Security().Return(security)
				security.EXPECT().AdminAction("staff-1", "provider.delete", "p1")
			},
			expectedStatus: http.StatusNoContent,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ctrl := gomock.NewController(t)
			defer ctrl.Finish()

			mockService := NewMockServiceInterface(ctrl)
			mockLogger := NewMockLoggerInterface(ctrl)
			mockSecurity := NewMockSecurityLoggerInterface(ctrl)

			tt.setupMocks(mockService, mockLogger, mockSecurity)

			api := NewAPI(mockService, NewMockTracingInterface(ctrl), NewMockMonitorInterface(ctrl), mockLogger)

			mux := chi.NewMux()
			api.RegisterEndpoints(mux)
			mux.Route("/staff", api.RegisterStaffEndpoints)

			req := httptest.NewRequest(tt.method, tt.path, bytes.NewBufferString(tt.body))
			if tt.account != "" {
				req = req.WithContext(authentication.WithAccountID(req.Context(), tt.account))
			}
			w := httptest.NewRecorder()

			mux.ServeHTTP(w, req)

			res := w.Result()
			defer res.Body.Close()

			if res.StatusCode != tt.expectedStatus {
				raw, _ := io.ReadAll(res.Body)
				t.Fatalf("expected status %d, got %d. Body: %s", tt.expectedStatus, res.StatusCode, string(raw))
			}
		})
	}
}
