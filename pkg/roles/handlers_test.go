// Copyright 2026 Canonical Ltd.
// SPDX-License-Identifier: AGPL-3.0

package roles

import (
	"bytes"
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/go-chi/chi/v5"
	"go.uber.org/mock/gomock"

	"github.com/indevian-dev/TIKTAK-MONOREPO-sub000/internal/types"
	"github.com/indevian-dev/TIKTAK-MONOREPO-sub000/pkg/authentication"
)

//go:generate mockgen -build_flags=--mod=mod -package roles -destination ./mock_logger.go -source=../../internal/logging/interfaces.go
//go:generate mockgen -build_flags=--mod=mod -package roles -destination ./mock_monitor.go -source=../../internal/monitoring/interfaces.go
//go:generate mockgen -build_flags=--mod=mod -package roles -destination ./mock_tracer.go -source=../../internal/tracing/interfaces.go
//go:generate mockgen -build_flags=--mod=mod -package roles -destination ./mock_interfaces.go -source=./interfaces.go

func TestAPI_Endpoints(t *testing.T) {
	tests := []struct {
		name           string
		method         string
		path           string
		body           string
		setupMocks     func(*MockServiceInterface, *MockLoggerInterface, *MockSecurityLoggerInterface)
		expectedStatus int
	}{
		{
			name:   "list roles",
			method: http.MethodGet,
			path:   "/roles",
			setupMocks: func(svc *MockServiceInterface, _ *MockLoggerInterface, _ *MockSecurityLoggerInterface) {
				svc.EXPECT().FindAll(gomock.Any()).Return([]*types.Role{{Name: types.RoleManager}}, nil)
			},
			expectedStatus: http.StatusOK,
		},
		{
			name:   "unknown role",
			method: http.MethodGet,
			path:   "/roles/ghost",
			setupMocks: func(svc *MockServiceInterface, _ *MockLoggerInterface, _ *MockSecurityLoggerInterface) {
				svc.EXPECT().FindByName(gomock.Any(), "ghost").Return(nil, types.ErrNotFound)
			},
			expectedStatus: http.StatusNotFound,
		},
		{
			name:           "create without name",
			method:         http.MethodPost,
			path:           "/staff/roles",
			body:           `{"permissions":["a"]}`,
			setupMocks:     func(*MockServiceInterface, *MockLoggerInterface, *MockSecurityLoggerInterface) {},
			expectedStatus: http.StatusBadRequest,
		},
		{
			name:   "create",
			method: http.MethodPost,
			path:   "/staff/roles",
			body:   `{"name":"tutor","permissions":["lessons.write"],"forWorkspaceType":"provider"}`,
			setupMocks: func(svc *MockServiceInterface, logger *MockLoggerInterface, security *MockSecurityLoggerInterface) {
				svc.EXPECT().Create(gomock.Any(), &types.Role{
					Name:             "tutor",
					Permissions:      types.Permissions{"lessons.write"},
					ForWorkspaceType: types.WorkspaceTypeProvider,
				}).Return(&types.Role{ID: "r1", Name: "tutor"}, nil)
				logger.EXPECT().Security().Return(security)
				security.EXPECT().AdminAction("staff-1", "role.create", "tutor")
			},
			expectedStatus: http.StatusCreated,
		},
		{
			name:   "delete referenced",
			method: http.MethodDelete,
			path:   "/staff/roles/r1",
			setupMocks: func(svc *MockServiceInterface, _ *MockLoggerInterface, _ *MockSecurityLoggerInterface) {
				svc.EXPECT().Delete(gomock.Any(), "r1").Return(types.ErrConflict)
			},
			expectedStatus: http.StatusConflict,
		},
		{
			name:   "revoke permission",
			method: http.MethodDelete,
			path:   "/staff/roles/member/permissions/members.invite",
			setupMocks: func(svc *MockServiceInterface, logger *MockLoggerInterface, security *MockSecurityLoggerInterface) {
				svc.EXPECT().RemovePermission(gomock.Any(), "member", "members.invite").Return(&types.Role{Name: "member"}, nil)
				logger.EXPECT().Security().Return(security)
				security.EXPECT().AdminAction("staff-1", "role.revoke", "member")
			},
			expectedStatus: http.StatusOK,
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
			req = req.WithContext(authentication.WithAccountID(req.Context(), "staff-1"))
			w := httptest.NewRecorder()

			mux.ServeHTTP(w, req)

			res := w.Result()
			defer res.Body.Close()

			if res.StatusCode != tt.expectedStatus {
				raw, _ := io.ReadAll(res.Body)
				t.Fatalf("expected status %d, got %d. Body: %s", tt.expectedStatus, res.StatusCode, string(raw))
			}

			if res.StatusCode == http.StatusOK {
				var envelope map[string]any
				if err := json.NewDecoder(res.Body).Decode(&envelope); err != nil {
					t.Fatalf("failed to decode response: %v", err)
				}
				if envelope["success"] != true {
					t.Errorf("expected success envelope, got %v", envelope)
				}
			}
		})
	}
}
