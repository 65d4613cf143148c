// Copyright 2026 Canonical Ltd.
// SPDX-License-Identifier: AGPL-3.0

package invitations

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

//go:generate mockgen -build_flags=--mod=mod -package invitations -destination ./mock_logger.go -source=../../internal/logging/interfaces.go
//go:generate mockgen -build_flags=--mod=mod -package invitations -destination ./mock_monitor.go -source=../../internal/monitoring/interfaces.go
//go:generate mockgen -build_flags=--mod=mod -package invitations -destination ./mock_tracer.go -source=../../internal/tracing/interfaces.go
//go:generate mockgen -build_flags=--mod=mod -package invitations -destination ./mock_interfaces.go -source=./interfaces.go

func TestAPI_Endpoints(t *testing.T) {
	tests := []struct {
		name           string
		method         string
		path           string
		body           string
		account        string
		setupMocks     func(*MockServiceInterface, *MockLoggerInterface, *MockSecurityLoggerInterface)
		expectedStatus int
		expectedCode   string
	}{
		{
			name:           "invite anonymous",
			method:         http.MethodPost,
			path:           "/workspaces/w1/invitations",
			body:           `{"email":"new@x.com","role":"member"}`,
			setupMocks:     func(*MockServiceInterface, *MockLoggerInterface, *MockSecurityLoggerInterface) {},
			expectedStatus: http.StatusUnauthorized,
		},
		{
			name:           "invite malformed email",
			method:         http.MethodPost,
			path:           "/workspaces/w1/invitations",
			body:           `{"email":"not-an-email","role":"member"}`,
			account:        "owner",
			setupMocks:     func(*MockServiceInterface, *MockLoggerInterface, *MockSecurityLoggerInterface) {},
			expectedStatus: http.StatusBadRequest,
			expectedCode:   "invalid_input",
		},
		{
			name:    "invite",
			method:  http.MethodPost,
			path:    "/workspaces/w1/invitations",
			body:    `{"email":"new@x.com","role":"member"}`,
			account: "owner",
			setupMocks: func(svc *MockServiceInterface, _ *MockLoggerInterface, _ *MockSecurityLoggerInterface) {
				svc.EXPECT().Invite(gomock.Any(), "w1", "owner", "new@x.com", "member").Return(&types.Invitation{ID: "i1"}, nil)
			},
			expectedStatus: http.StatusCreated,
		},
		{
			name:    "invite unknown account",
			method:  http.MethodPost,
			path:    "/workspaces/w1/invitations",
			body:    `{"email":"nobody@x.com","role":"member"}`,
			account: "owner",
			setupMocks: func(svc *MockServiceInterface, _ *MockLoggerInterface, _ *MockSecurityLoggerInterface) {
				svc.EXPECT().Invite(gomock.Any(), "w1", "owner", "nobody@x.com", "member").Return(nil, types.ErrAccountNotFound)
			},
			expectedStatus: http.StatusNotFound,
			expectedCode:   "account_not_found",
		},
		{
			name:           "respond with unknown action",
			method:         http.MethodPost,
			path:           "/invitations/i1/response",
			body:           `{"action":"maybe"}`,
			account:        "newcomer",
			setupMocks:     func(*MockServiceInterface, *MockLoggerInterface, *MockSecurityLoggerInterface) {},
			expectedStatus: http.StatusBadRequest,
		},
		{
			name:    "respond expired",
			method:  http.MethodPost,
			path:    "/invitations/i1/response",
			body:    `{"action":"approve"}`,
			account: "newcomer",
			setupMocks: func(svc *MockServiceInterface, _ *MockLoggerInterface, _ *MockSecurityLoggerInterface) {
				svc.EXPECT().Respond(gomock.Any(), "i1", "newcomer", types.InvitationActionApprove).Return(nil, types.ErrExpired)
			},
			expectedStatus: http.StatusGone,
			expectedCode:   "expired",
		},
		{
			name:    "respond twice",
			method:  http.MethodPost,
			path:    "/invitations/i1/response",
			body:    `{"action":"decline"}`,
			account: "newcomer",
			setupMocks: func(svc *MockServiceInterface, _ *MockLoggerInterface, _ *MockSecurityLoggerInterface) {
				svc.EXPECT().Respond(gomock.Any(), "i1", "newcomer", types.InvitationActionDecline).Return(nil, types.ErrAlreadyProcessed)
			},
			expectedStatus: http.StatusConflict,
			expectedCode:   "already_processed",
		},
		{
			name:    "list pending",
			method:  http.MethodGet,
			path:    "/me/invitations",
			account: "newcomer",
			setupMocks: func(svc *MockServiceInterface, _ *MockLoggerInterface, _ *MockSecurityLoggerInterface) {
				svc.EXPECT().ListPendingForAccount(gomock.Any(), "newcomer").Return([]*types.Invitation{{ID: "i1"}}, nil)
			},
			expectedStatus: http.StatusOK,
		},
		{
			name:    "list workspace invitations forbidden",
			method:  http.MethodGet,
			path:    "/workspaces/w1/invitations",
			account: "member",
			setupMocks: func(svc *MockServiceInterface, _ *MockLoggerInterface, _ *MockSecurityLoggerInterface) {
				svc.EXPECT().ListForWorkspace(gomock.Any(), "member", "w1").Return(nil, types.ErrForbidden)
			},
			expectedStatus: http.StatusForbidden,
		},
		{
			name:    "staff sweep",
			method:  http.MethodPost,
			path:    "/staff/invitations/sweep",
			account: "staff-1",
			setupMocks: func(svc *MockServiceInterface, logger *MockLoggerInterface, security *MockSecurityLoggerInterface) {
				svc.EXPECT().SweepExpired(gomock.Any(), "staff-1").Return(int64(3), nil)
				logger.EXPECT().Security().Return(security)
				security.EXPECT().AdminAction("staff-1", "invitations.sweep", "invitations")
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
			if tt.account != "" {
				req = req.WithContext(authentication.WithAccountID(req.Context(), tt.account))
			}
			w := httptest.NewRecorder()

			mux.ServeHTTP(w, req)

			res := w.Result()
			defer res.Body.Close()

			raw, _ := io.ReadAll(res.Body)
			if res.StatusCode != tt.expectedStatus {
				t.Fatalf("expected status %d, got %d. Body: %s", tt.expectedStatus, res.StatusCode, string(raw))
			}

			if tt.expectedCode == "" {
				return
			}

			var envelope struct {
				Success bool   `json:"success"`
				Code    string `json:"code"`
			}
			if err := json.Unmarshal(raw, &envelope); err != nil {
				t.Fatalf("failed to decode response: %v", err)
			}
			if envelope.Success || envelope.Code != tt.expectedCode {
				t.Errorf("expected error code %q, got %+v", tt.expectedCode, envelope)
			}
		})
	}
}
