// Copyright 2026 Canonical Ltd.
// SPDX-License-Identifier: AGPL-3.0

package webhooks

import (
	"crypto/subtle"
	"net/http"

	"github.com/go-chi/chi/v5"

	httptypes "github.com/indevian-dev/TIKTAK-MONOREPO-sub000/internal/http/types"
	"github.com/indevian-dev/TIKTAK-MONOREPO-sub000/internal/logging"
)

// APIKeyHeader carries the shared secret configured on the Kratos web hook.
const APIKeyHeader = "X-Webhook-Key"

type API struct {
	service ServiceInterface
	apiKey  string
	logger  logging.LoggerInterface
}

// NewAPI returns the web hook endpoints. An empty apiKey disables the shared
// secret check.
func NewAPI(service ServiceInterface, apiKey string, logger logging.LoggerInterface) *API {
	return &API{
		service: service,
		apiKey:  apiKey,
		logger:  logger,
	}
}

func (a *API) RegisterEndpoints(r chi.Router) {
	r.Post("/webhooks/registration", a.registration)
}

func (a *API) registration(w http.ResponseWriter, r *http.Request) {
	if a.apiKey != "" && subtle.ConstantTimeCompare([]byte(r.Header.Get(APIKeyHeader)), []byte(a.apiKey)) != 1 {
		a.logger.Security().AuthzFailure("kratos", r.URL.Path)
		httptypes.WriteErrorCode(w, http.StatusUnauthorized, "unauthorized", "invalid web hook key")
		return
	}

	var identity KratosIdentity
	if err := httptypes.DecodeAndValidate(r, &identity); err != nil {
		a.logger.Errorf("invalid registration payload: %v", err)
		httptypes.WriteError(w, err)
		return
	}

	ws, err := a.service.HandleRegistration(r.Context(), identity.ID, identity.Traits.Email)
	if err != nil {
		httptypes.WriteServiceError(w, a.logger, "handle registration", err)
		return
	}

	httptypes.WriteData(w, http.StatusOK, ws)
}
