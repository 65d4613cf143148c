// Copyright 2026 Canonical Ltd.
// SPDX-License-Identifier: AGPL-3.0

package lifecycle

import (
	"bytes"
	"io"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/go-chi/chi/v5"
	"go.uber.org/mock/gomock"

	"github.com/indevian-dev/TIKTAK-MONOREPO-sub000/internal/types"
	"github.com/indevian-dev/TIKTAK-MONOREPO-sub000/pkg/authentication"
)

//go:generate mockgen -build_flags=--mod=mod -package lifecycle -destination ./mock_logger.go -source=../../internal/logging/interfaces.go
//go:generate mockgen -build_flags=--mod=mod -package lifecycle -destination ./mock_monitor.go -source=../../internal/monitoring/interfaces.go
//go:generate mockgen -build_flags=--mod=mod -package lifecycle -destination ./mock_tracer.go -source=../../internal/tracing/interfaces.go
//go:generate mockgen -build_flags=--mod=mod -package lifecycle -destination ./mock_interfaces.go -source=./interfaces.go

func TestAPI_Endpoints(t *testing.T) {
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
			name:           "create anonymous",
			method:         http.MethodPost,
			path:           "/workspaces",
			body:           `{"title":"Home","type":"personal"}`,
			setupMocks:     func(*MockServiceInterface, *MockLoggerInterface, *MockSecurityLoggerInterface) {},
			expectedStatus: http.StatusUnauthorized,
		},
		{
			name:    "create personal",
			method:  http.MethodPost,
			path:    "/workspaces",
			body:    `{"title":"Home","type":"personal"}`,
			account: "a1",
			setupMocks: func(svc *MockServiceInterface, _ *MockLoggerInterface, _ *MockSecurityLoggerInterface) {
				svc.EXPECT().CreateWorkspace(gomock.Any(), "a1", &NewWorkspace{Title: "Home", Type: types.WorkspaceTypePersonal}).
					Return(&types.Workspace{ID: "w1", Type: types.WorkspaceTypePersonal}, nil)
			},
			expectedStatus: http.StatusCreated,
		},
		{
			name:    "create staff outside the staff routes",
			method:  http.MethodPost,
			path:    "/workspaces",
			body:    `{"title":"Ops","type":"staff"}`,
			account: "a1",
			setupMocks: func(_ *MockServiceInterface, logger *MockLoggerInterface, security *MockSecurityLoggerInterface) {
				logger.EXPECT().Security().Return(security)
				security.EXPECT().AuthzFailure("a1", "workspace:staff")
			},
			expectedStatus: http.StatusForbidden,
		},
		{
			name:    "create with invalid type",
			method:  http.MethodPost,
			path:    "/workspaces",
			body:    `{"title":"Kid","type":"student"}`,
			account: "a1",
			setupMocks: func(svc *MockServiceInterface, _ *MockLoggerInterface, _ *MockSecurityLoggerInterface) {
				svc.EXPECT().CreateWorkspace(gomock.Any(), "a1", gomock.Any()).Return(nil, types.ErrInvalidType)
			},
			expectedStatus: http.StatusBadRequest,
		},
		{
			name:    "enroll twice",
			method:  http.MethodPost,
			path:    "/students",
			body:    `{"displayName":"Sam","providerId":"p1"}`,
			account: "a2",
			setupMocks: func(svc *MockServiceInterface, _ *MockLoggerInterface, _ *MockSecurityLoggerInterface) {
				svc.EXPECT().CreateStudentWorkspace(gomock.Any(), "a2", &NewStudentWorkspace{DisplayName: "Sam", ProviderID: "p1"}).Return(nil, types.ErrAlreadyEnrolled)
			},
			expectedStatus: http.StatusConflict,
		},
		{
			name:           "enroll without provider",
			method:         http.MethodPost,
			path:           "/students",
			body:           `{"displayName":"Sam"}`,
			account:        "a2",
			setupMocks:     func(*MockServiceInterface, *MockLoggerInterface, *MockSecurityLoggerInterface) {},
			expectedStatus: http.StatusBadRequest,
		},
		{
			name:           "parent flow without students",
			method:         http.MethodPost,
			path:           "/parents",
			body:           `{"studentWorkspaceIds":[]}`,
			account:        "a3",
			setupMocks:     func(*MockServiceInterface, *MockLoggerInterface, *MockSecurityLoggerInterface) {},
			expectedStatus: http.StatusBadRequest,
		},
		{
			name:    "parent flow",
			method:  http.MethodPost,
			path:    "/parents",
			body:    `{"studentWorkspaceIds":["s1"]}`,
			account: "a3",
			setupMocks: func(svc *MockServiceInterface, _ *MockLoggerInterface, _ *MockSecurityLoggerInterface) {
				svc.EXPECT().StartParentWorkspaceFlow(gomock.Any(), "a3", []string{"s1"}).Return(&types.Workspace{ID: "d1", Type: types.WorkspaceTypeParent}, nil)
			},
			expectedStatus: http.StatusCreated,
		},
		{
			name:    "provider application",
			method:  http.MethodPost,
			path:    "/providers/applications",
			body:    `{"title":"Tutors"}`,
			account: "a1",
			setupMocks: func(svc *MockServiceInterface, _ *MockLoggerInterface, _ *MockSecurityLoggerInterface) {
				svc.EXPECT().SubmitProviderApplication(gomock.Any(), "a1", &ProviderApplication{Title: "Tutors"}).Return(&types.Workspace{ID: "p2"}, nil)
			},
			expectedStatus: http.StatusCreated,
		},
		{
			name:    "staff workspace",
			method:  http.MethodPost,
			path:    "/staff/workspaces",
			body:    `{"title":"Ops"}`,
			account: "staff-1",
			setupMocks: func(svc *MockServiceInterface, logger *MockLoggerInterface, security *MockSecurityLoggerInterface) {
				svc.EXPECT().CreateWorkspace(gomock.Any(), "staff-1", &NewWorkspace{Title: "Ops", Type: types.WorkspaceTypeStaff}).Return(&types.Workspace{ID: "st1"}, nil)
				logger.EXPECT().Security().Return(security)
				security.EXPECT().AdminAction("staff-1", "staff_workspace.create", "st1")
			},
			expectedStatus: http.StatusCreated,
		},
		{
			name:    "staff member already present",
			method:  http.MethodPost,
			path:    "/staff/members",
			body:    `{"accountId":"a2","workspaceId":"st1","accessRole":"staff_editor"}`,
			account: "staff-1",
			setupMocks: func(svc *MockServiceInterface, _ *MockLoggerInterface, _ *MockSecurityLoggerInterface) {
				svc.EXPECT().AddUserToStaffWorkspace(gomock.Any(), &StaffMember{AccountID: "a2", WorkspaceID: "st1", AccessRole: "staff_editor"}).Return(nil, types.ErrAlreadyMember)
			},
			expectedStatus: http.StatusConflict,
		},
		{
			name:    "staff member",
			method:  http.MethodPost,
			path:    "/staff/members",
			body:    `{"accountId":"a2","workspaceId":"st1","accessRole":"staff_editor"}`,
			account: "staff-1",
			setupMocks: func(svc *MockServiceInterface, logger *MockLoggerInterface, security *MockSecurityLoggerInterface) {
				svc.EXPECT().AddUserToStaffWorkspace(gomock.Any(), gomock.Any()).Return(&types.Access{ID: "e1"}, nil)
				logger.EXPECT().Security().Return(security)
				security.EXPECT().AdminAction("staff-1", "staff_member.add", "st1/a2")
			},
			expectedStatus: http.StatusCreated,
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
