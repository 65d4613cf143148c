// Copyright 2026 Canonical Ltd.
// SPDX-License-Identifier: AGPL-3.0

package webhooks

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/go-chi/chi/v5"
	"go.uber.org/mock/gomock"

	"github.com/indevian-dev/TIKTAK-MONOREPO-sub000/internal/types"
)

func TestAPI_Registration(t *testing.T) {
	tests := []struct {
		name           string
		apiKey         string
		header         string
		body           string
		setupMocks     func(*MockServiceInterface, *MockLoggerInterface, *MockSecurityLoggerInterface)
		expectedStatus int
		expectedCode   string
	}{
		{
			name: "valid payload without configured key",
			body: `{"id":"acc-1","traits":{"email":"a@x.com"}}`,
			setupMocks: func(svc *MockServiceInterface, _ *MockLoggerInterface, _ *MockSecurityLoggerInterface) {
				svc.EXPECT().HandleRegistration(gomock.Any(), "acc-1", "a@x.com").Return(&types.Workspace{ID: "p1"}, nil)
			},
			expectedStatus: http.StatusOK,
		},
		{
			name:   "matching key",
			apiKey: "secret",
			header: "secret",
			body:   `{"id":"acc-1","traits":{"email":"a@x.com"}}`,
			setupMocks: func(svc *MockServiceInterface, _ *MockLoggerInterface, _ *MockSecurityLoggerInterface) {
				svc.EXPECT().HandleRegistration(gomock.Any(), "acc-1", "a@x.com").Return(&types.Workspace{ID: "p1"}, nil)
			},
			expectedStatus: http.StatusOK,
		},
		{
			name:   "wrong key",
			apiKey: "secret",
			header: "guess",
			body:   `{"id":"acc-1","traits":{"email":"a@x.com"}}`,
			setupMocks: func(_ *MockServiceInterface, logger *MockLoggerInterface, security *MockSecurityLoggerInterface) {
				logger.EXPECT().Security().Return(security)
				security.EXPECT().AuthzFailure("kratos", "/webhooks/registration")
			},
			expectedStatus: http.StatusUnauthorized,
			expectedCode:   "unauthorized",
		},
		{
			name: "missing email",
			body: `{"id":"acc-1","traits":{}}`,
			setupMocks: func(_ *MockServiceInterface, logger *MockLoggerInterface, _ *MockSecurityLoggerInterface) {
				logger.EXPECT().Errorf(gomock.Any(), gomock.Any())
			},
			expectedStatus: http.StatusBadRequest,
			expectedCode:   "invalid_input",
		},
		{
			name: "service failure",
			body: `{"id":"acc-1","traits":{"email":"a@x.com"}}`,
			setupMocks: func(svc *MockServiceInterface, logger *MockLoggerInterface, _ *MockSecurityLoggerInterface) {
				svc.EXPECT().HandleRegistration(gomock.Any(), "acc-1", "a@x.com").Return(nil, types.ErrTransactionFailed)
				logger.EXPECT().Errorf(gomock.Any(), gomock.Any()).AnyTimes()
			},
			expectedStatus: http.StatusInternalServerError,
			expectedCode:   "transaction_failed",
		},
	}

	for _, test := range tests {
		t.Run(test.name, func(t *testing.T) {
			ctrl := gomock.NewController(t)
			defer ctrl.Finish()

			mockService := NewMockServiceInterface(ctrl)
			mockLogger := NewMockLoggerInterface(ctrl)
			mockSecurity := NewMockSecurityLoggerInterface(ctrl)

			test.setupMocks(mockService, mockLogger, mockSecurity)

			router := chi.NewRouter()
			NewAPI(mockService, test.apiKey, mockLogger).RegisterEndpoints(router)

			req := httptest.NewRequest(http.MethodPost, "/webhooks/registration", bytes.NewBufferString(test.body))
			if test.header != "" {
				req.Header.Set(APIKeyHeader, test.header)
			}
			rr := httptest.NewRecorder()

			router.ServeHTTP(rr, req)

			if rr.Code != test.expectedStatus {
				t.Fatalf("expected status %d, got %d: %s", test.expectedStatus, rr.Code, rr.Body.String())
			}

			if test.expectedCode == "" {
				return
			}

			var body struct {
				Code string `json:"code"`
			}
			if err := json.NewDecoder(rr.Body).Decode(&body); err != nil {
				t.Fatalf("failed to decode body: %v", err)
			}
			if body.Code != test.expectedCode {
				t.Fatalf("expected code %q, got %q", test.expectedCode, body.Code)
			}
		})
	}
}
