// Copyright 2026 Canonical Ltd.
// SPDX-License-Identifier: AGPL-3.0

package accessgraph

import (
	"bytes"
	"encoding/json"
	"errors"
	"io"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/go-chi/chi/v5"
	"go.uber.org/mock/gomock"

	httptypes "github.com/indevian-dev/TIKTAK-MONOREPO-sub000/internal/http/types"
	"github.com/indevian-dev/TIKTAK-MONOREPO-sub000/internal/types"
	"github.com/indevian-dev/TIKTAK-MONOREPO-sub000/pkg/authentication"
)

//go:generate mockgen -build_flags=--mod=mod -package accessgraph -destination ./mock_logger.go -source=../../internal/logging/interfaces.go
//go:generate mockgen -build_flags=--mod=mod -package accessgraph -destination ./mock_monitor.go -source=../../internal/monitoring/interfaces.go
//go:generate mockgen -build_flags=--mod=mod -package accessgraph -destination ./mock_tracer.go -source=../../internal/tracing/interfaces.go
//go:generate mockgen -build_flags=--mod=mod -package accessgraph -destination ./mock_interfaces.go -source=./interfaces.go

func TestAPI_Endpoints(t *testing.T) {
	tests := []struct {
		name           string
		method         string
		path           string
		account        string
		body           any
		setupMocks     func(*MockServiceInterface, *MockLoggerInterface, *MockSecurityLoggerInterface)
		expectedStatus int
		expectedCode   string
	}{
		{
			name:           "list own workspaces without account",
			method:         http.MethodGet,
			path:           "/me/workspaces",
			setupMocks:     func(*MockServiceInterface, *MockLoggerInterface, *MockSecurityLoggerInterface) {},
			expectedStatus: http.StatusUnauthorized,
			expectedCode:   "unauthorized",
		},
		{
			name:    "list own workspaces",
			method:  http.MethodGet,
			path:    "/me/workspaces",
			account: "alice",
			setupMocks: func(svc *MockServiceInterface, _ *MockLoggerInterface, _ *MockSecurityLoggerInterface) {
				svc.EXPECT().ListOwnedConnected(gomock.Any(), "alice").Return(&types.OwnedConnected{}, nil)
			},
			expectedStatus: http.StatusOK,
		},
		{
			name:    "list own workspaces storage failure",
			method:  http.MethodGet,
			path:    "/me/workspaces",
			account: "alice",
			setupMocks: func(svc *MockServiceInterface, logger *MockLoggerInterface, _ *MockSecurityLoggerInterface) {
				svc.EXPECT().ListOwnedConnected(gomock.Any(), "alice").Return(nil, errors.New("connection reset"))
				logger.EXPECT().Errorf(gomock.Any(), gomock.Any()).Times(1)
			},
			expectedStatus: http.StatusInternalServerError,
			expectedCode:   "internal",
		},
		{
			name:    "members of a foreign workspace",
			method:  http.MethodGet,
			path:    "/workspaces/ws-1/members",
			account: "bob",
			setupMocks: func(svc *MockServiceInterface, logger *MockLoggerInterface, security *MockSecurityLoggerInterface) {
				svc.EXPECT().FindAccess(gomock.Any(), "bob", "ws-1", "").Return(nil, types.ErrNotFound)
				logger.EXPECT().Security().Return(security)
				security.EXPECT().AuthzFailure("bob", "ws-1")
			},
			expectedStatus: http.StatusForbidden,
			expectedCode:   "forbidden",
		},
		{
			name:    "enrollments of an own provider",
			method:  http.MethodGet,
			path:    "/workspaces/ws-1/enrollments?page=2&size=5",
			account: "alice",
			setupMocks: func(svc *MockServiceInterface, _ *MockLoggerInterface, _ *MockSecurityLoggerInterface) {
				svc.EXPECT().FindAccess(gomock.Any(), "alice", "ws-1", "").Return(&types.Access{ID: "e1"}, nil)
				svc.EXPECT().ListEnrolled(gomock.Any(), "ws-1", types.Pagination{Page: 2, Size: 5}).
					Return(types.NewPageResult([]*types.Member{}, 2, 5, 0), nil)
			},
			expectedStatus: http.StatusOK,
		},
		{
			name:           "add access with invalid body",
			method:         http.MethodPost,
			path:           "/staff/accesses",
			account:        "staff-1",
			body:           map[string]string{"actorAccountId": "alice"},
			setupMocks:     func(*MockServiceInterface, *MockLoggerInterface, *MockSecurityLoggerInterface) {},
			expectedStatus: http.StatusBadRequest,
			expectedCode:   "invalid_input",
		},
		{
			name:    "add direct access",
			method:  http.MethodPost,
			path:    "/staff/accesses",
			account: "staff-1",
			body:    AddAccessRequest{ActorAccountID: "alice", TargetWorkspaceID: "ws-1", AccessRole: types.RoleMember},
			setupMocks: func(svc *MockServiceInterface, logger *MockLoggerInterface, security *MockSecurityLoggerInterface) {
				svc.EXPECT().AddAccess(gomock.Any(), &types.Access{
					ActorAccountID:    "alice",
					TargetWorkspaceID: "ws-1",
					ViaWorkspaceID:    "ws-1",
					AccessRole:        types.RoleMember,
				}).Return(&types.Access{ID: "e1"}, nil)
				logger.EXPECT().Security().Return(security)
				security.EXPECT().AdminAction("staff-1", "access.add", "e1")
			},
			expectedStatus: http.StatusCreated,
		},
		{
			name:    "add duplicate access",
			method:  http.MethodPost,
			path:    "/staff/accesses",
			account: "staff-1",
			body:    AddAccessRequest{ActorAccountID: "alice", TargetWorkspaceID: "ws-1", AccessRole: types.RoleMember},
			setupMocks: func(svc *MockServiceInterface, _ *MockLoggerInterface, _ *MockSecurityLoggerInterface) {
				svc.EXPECT().AddAccess(gomock.Any(), gomock.Any()).Return(nil, types.ErrConflict)
			},
			expectedStatus: http.StatusConflict,
			expectedCode:   "conflict",
		},
		{
			name:    "remove missing access",
			method:  http.MethodDelete,
			path:    "/staff/accesses/e9",
			account: "staff-1",
			setupMocks: func(svc *MockServiceInterface, _ *MockLoggerInterface, _ *MockSecurityLoggerInterface) {
				svc.EXPECT().RemoveAccess(gomock.Any(), "e9").Return(types.ErrNotFound)
			},
			expectedStatus: http.StatusNotFound,
			expectedCode:   "not_found",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ctrl := gomock.NewController(t)
			defer ctrl.Finish()

			mockService := NewMockServiceInterface(ctrl)
			mockTracer := NewMockTracingInterface(ctrl)
			mockMonitor := NewMockMonitorInterface(ctrl)
			mockLogger := NewMockLoggerInterface(ctrl)
			mockSecurity := NewMockSecurityLoggerInterface(ctrl)

			tt.setupMocks(mockService, mockLogger, mockSecurity)

			api := NewAPI(mockService, mockTracer, mockMonitor, mockLogger)

			mux := chi.NewMux()
			api.RegisterEndpoints(mux)
			mux.Route("/staff", api.RegisterStaffEndpoints)

			var body io.Reader
			if tt.body != nil {
				raw, err := json.Marshal(tt.body)
				if err != nil {
					t.Fatalf("failed to marshal request: %v", err)
				}
				body = bytes.NewReader(raw)
			}

			req := httptest.NewRequest(tt.method, tt.path, body)
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

			if tt.expectedCode == "" {
				return
			}

			var envelope httptypes.Response
			if err := json.NewDecoder(res.Body).Decode(&envelope); err != nil {
				t.Fatalf("failed to decode response: %v", err)
			}
			if envelope.Success || envelope.Code != tt.expectedCode {
				t.Errorf("expected error code %q, got %+v", tt.expectedCode, envelope)
			}
		})
	}
}
