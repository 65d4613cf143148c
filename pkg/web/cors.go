// Copyright 2026 Canonical Ltd.
// SPDX-License-Identifier: AGPL-3.0

package web

import (
	"net/http"

	"github.com/go-chi/cors"

	"github.com/indevian-dev/TIKTAK-MONOREPO-sub000/pkg/webhooks"
)

func middlewareCORS(origins []string) func(http.Handler) http.Handler {
	if len(origins) == 0 {
		origins = []string{"*"}
	}

	opts := cors.Options{
		AllowedOrigins: origins,
		AllowedMethods: []string{
			http.MethodGet,
			http.MethodPost,
			http.MethodPut,
			http.MethodPatch,
			http.MethodDelete,
			http.MethodOptions,
		},
		AllowedHeaders: []string{
			"Accept",
			"Authorization",
			"Content-Type",
			"X-Request-Id",
			webhooks.APIKeyHeader,
		},
		ExposedHeaders: []string{"X-Request-Id"},
		MaxAge:         300,
	}

	// credentials cannot be combined with a wildcard origin
	opts.AllowCredentials = !(len(origins) == 1 && origins[0] == "*")

	return cors.Handler(opts)
}
