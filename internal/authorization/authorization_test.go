// Copyright 2026 Canonical Ltd.
// SPDX-License-Identifier: AGPL-3.0

package authorization

import (
	"context"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"go.opentelemetry.io/otel/trace"
	"go.uber.org/mock/gomock"

	"github.com/indevian-dev/TIKTAK-MONOREPO-sub000/internal/openfga"
)

//go:generate mockgen -build_flags=--mod=mod -package authorization -destination ./mock_interfaces.go -source=./interfaces.go
//go:generate mockgen -build_flags=--mod=mod -package authorization -destination ./mock_logger.go -source=../logging/interfaces.go
//go:generate mockgen -build_flags=--mod=mod -package authorization -destination ./mock_monitor.go -source=../monitoring/interfaces.go
//go:generate mockgen -build_flags=--mod=mod -package authorization -destination ./mock_tracing.go -source=../tracing/interfaces.go

func TestAuthorizer_CheckStaff(t *testing.T) {
	testCases := []struct {
		name           string
		setupMocks     func(*MockAuthzClientInterface)
		expectedResult bool
		expectedErr    bool
	}{
		{
			name: "success - staff",
			setupMocks: func(mockClient *MockAuthzClientInterface) {
				mockClient.EXPECT().Check(gomock.Any(), "user:acc-1", CAN_ADMINISTER_PERMISSION, "platform:marketplace").Return(true, nil)
			},
			expectedResult: true,
		},
		{
			name: "success - not staff",
			setupMocks: func(mockClient *MockAuthzClientInterface) {
				mockClient.EXPECT().Check(gomock.Any(), "user:acc-1", CAN_ADMINISTER_PERMISSION, "platform:marketplace").Return(false, nil)
			},
			expectedResult: false,
		},
		{
			name: "error - client error",
			setupMocks: func(mockClient *MockAuthzClientInterface) {
				mockClient.EXPECT().Check(gomock.Any(), "user:acc-1", CAN_ADMINISTER_PERMISSION, "platform:marketplace").Return(false, errors.New("client error"))
			},
			expectedErr: true,
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			ctrl := gomock.NewController(t)
			defer ctrl.Finish()

			mockClient := NewMockAuthzClientInterface(ctrl)
			mockTracer := NewMockTracingInterface(ctrl)
			mockMonitor := NewMockMonitorInterface(ctrl)
			mockLogger := NewMockLoggerInterface(ctrl)

			a := NewAuthorizer(mockClient, mockTracer, mockMonitor, mockLogger)

			mockTracer.EXPECT().Start(gomock.Any(), "authorization.Authorizer.CheckStaff").
				Return(context.Background(), trace.SpanFromContext(context.Background()))
			mockTracer.EXPECT().Start(gomock.Any(), "authorization.Authorizer.Check").
				Return(context.Background(), trace.SpanFromContext(context.Background()))
			tc.setupMocks(mockClient)

			result, err := a.CheckStaff(context.Background(), "acc-1")

			if tc.expectedErr {
				if err == nil {
					t.Error("expected error but got none")
				}
			} else if err != nil {
				t.Errorf("unexpected error: %v", err)
			}

			if result != tc.expectedResult {
				t.Errorf("expected result %v, got %v", tc.expectedResult, result)
			}
		})
	}
}

func TestAuthorizer_TupleWrites(t *testing.T) {
	testCases := []struct {
		name       string
		span       string
		call       func(*Authorizer) error
		setupMocks func(*MockAuthzClientInterface)
	}{
		{
			name: "link staff workspace",
			span: "authorization.Authorizer.LinkStaffWorkspace",
			call: func(a *Authorizer) error { return a.LinkStaffWorkspace(context.Background(), "ws-1") },
			setupMocks: func(mockClient *MockAuthzClientInterface) {
				mockClient.EXPECT().WriteTuples(gomock.Any(), *openfga.NewTuple("workspace:ws-1#member", STAFF_RELATION, "platform:marketplace")).Return(nil)
			},
		},
		{
			name: "assign staff member",
			span: "authorization.Authorizer.AssignStaffMember",
			call: func(a *Authorizer) error { return a.AssignStaffMember(context.Background(), "ws-1", "acc-1") },
			setupMocks: func(mockClient *MockAuthzClientInterface) {
				mockClient.EXPECT().WriteTuples(gomock.Any(), *openfga.NewTuple("user:acc-1", MEMBER_RELATION, "workspace:ws-1")).Return(nil)
			},
		},
		{
			name: "remove staff member",
			span: "authorization.Authorizer.RemoveStaffMember",
			call: func(a *Authorizer) error { return a.RemoveStaffMember(context.Background(), "ws-1", "acc-1") },
			setupMocks: func(mockClient *MockAuthzClientInterface) {
				mockClient.EXPECT().DeleteTuples(gomock.Any(), *openfga.NewTuple("user:acc-1", MEMBER_RELATION, "workspace:ws-1")).Return(nil)
			},
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			ctrl := gomock.NewController(t)
			defer ctrl.Finish()

			mockClient := NewMockAuthzClientInterface(ctrl)
			mockTracer := NewMockTracingInterface(ctrl)
			mockMonitor := NewMockMonitorInterface(ctrl)
			mockLogger := NewMockLoggerInterface(ctrl)

			mockTracer.EXPECT().Start(gomock.Any(), tc.span).
				Return(context.Background(), trace.SpanFromContext(context.Background()))
			tc.setupMocks(mockClient)

			if err := tc.call(NewAuthorizer(mockClient, mockTracer, mockMonitor, mockLogger)); err != nil {
				t.Errorf("unexpected error: %v", err)
			}
		})
	}
}

func TestMiddleware_StaffOnly(t *testing.T) {
	testCases := []struct {
		name           string
		account        AccountResolver
		setupMocks     func(*MockAuthorizerInterface, *MockLoggerInterface, *MockSecurityLoggerInterface)
		expectedStatus int
	}{
		{
			name:           "anonymous request",
			account:        func(context.Context) (string, bool) { return "", false },
			setupMocks:     func(*MockAuthorizerInterface, *MockLoggerInterface, *MockSecurityLoggerInterface) {},
			expectedStatus: http.StatusUnauthorized,
		},
		{
			name:    "staff account",
			account: func(context.Context) (string, bool) { return "acc-1", true },
			setupMocks: func(a *MockAuthorizerInterface, _ *MockLoggerInterface, _ *MockSecurityLoggerInterface) {
				a.EXPECT().CheckStaff(gomock.Any(), "acc-1").Return(true, nil)
			},
			expectedStatus: http.StatusOK,
		},
		{
			name:    "non staff account",
			account: func(context.Context) (string, bool) { return "acc-1", true },
			setupMocks: func(a *MockAuthorizerInterface, l *MockLoggerInterface, s *MockSecurityLoggerInterface) {
				a.EXPECT().CheckStaff(gomock.Any(), "acc-1").Return(false, nil)
				l.EXPECT().Security().Return(s)
				s.EXPECT().AuthzFailure("acc-1", "/api/v1/staff/providers")
			},
			expectedStatus: http.StatusForbidden,
		},
		{
			name:    "check failure",
			account: func(context.Context) (string, bool) { return "acc-1", true },
			setupMocks: func(a *MockAuthorizerInterface, l *MockLoggerInterface, _ *MockSecurityLoggerInterface) {
				a.EXPECT().CheckStaff(gomock.Any(), "acc-1").Return(false, errors.New("openfga down"))
				l.EXPECT().Errorf(gomock.Any(), gomock.Any()).Times(1)
			},
			expectedStatus: http.StatusInternalServerError,
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			ctrl := gomock.NewController(t)
			defer ctrl.Finish()

			mockAuthorizer := NewMockAuthorizerInterface(ctrl)
			mockTracer := NewMockTracingInterface(ctrl)
			mockMonitor := NewMockMonitorInterface(ctrl)
			mockLogger := NewMockLoggerInterface(ctrl)
			mockSecurity := NewMockSecurityLoggerInterface(ctrl)

			mockTracer.EXPECT().Start(gomock.Any(), "authorization.Middleware.StaffOnly").
				Return(context.Background(), trace.SpanFromContext(context.Background()))
			tc.setupMocks(mockAuthorizer, mockLogger, mockSecurity)

			next := http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
				w.WriteHeader(http.StatusOK)
			})

			req := httptest.NewRequest(http.MethodGet, "/api/v1/staff/providers", nil)
			rr := httptest.NewRecorder()

			NewMiddleware(mockAuthorizer, tc.account, mockTracer, mockMonitor, mockLogger).StaffOnly()(next).ServeHTTP(rr, req)

			if rr.Code != tc.expectedStatus {
				t.Errorf("expected status %d, got %d", tc.expectedStatus, rr.Code)
			}
		})
	}
}
