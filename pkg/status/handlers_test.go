// Copyright 2026 Canonical Ltd.
// SPDX-License-Identifier: AGPL-3.0

package status

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/go-chi/chi/v5"

	"github.com/indevian-dev/TIKTAK-MONOREPO-sub000/internal/logging"
	"github.com/indevian-dev/TIKTAK-MONOREPO-sub000/internal/monitoring"
	"github.com/indevian-dev/TIKTAK-MONOREPO-sub000/internal/tracing"
	"github.com/indevian-dev/TIKTAK-MONOREPO-sub000/internal/version"
)

func TestAPI_Endpoints(t *testing.T) {
	logger := logging.NewNoopLogger()

	router := chi.NewRouter()
	NewAPI(tracing.NewNoopTracer(), monitoring.NewNoopMonitor("test", logger), logger).RegisterEndpoints(router)

	tests := []struct {
		path            string
		expectBuildInfo bool
	}{
		{path: "/api/v0/status"},
		{path: "/api/v0/version", expectBuildInfo: true},
	}

	for _, test := range tests {
		t.Run(test.path, func(t *testing.T) {
			rr := httptest.NewRecorder()
			router.ServeHTTP(rr, httptest.NewRequest(http.MethodGet, test.path, nil))

			if rr.Code != http.StatusOK {
				t.Fatalf("expected status 200, got %d", rr.Code)
			}

			var body Status
			if err := json.NewDecoder(rr.Body).Decode(&body); err != nil {
				t.Fatalf("failed to decode body: %v", err)
			}

			if body.Status != okValue {
				t.Fatalf("expected %q, got %q", okValue, body.Status)
			}

			if !test.expectBuildInfo {
				if body.BuildInfo != nil {
					t.Fatalf("unexpected build info %+v", body.BuildInfo)
				}
				return
			}

			if body.BuildInfo == nil || body.BuildInfo.Version != version.Version {
				t.Fatalf("unexpected build info %+v", body.BuildInfo)
			}
		})
	}
}
