// Copyright 2026 Canonical Ltd.
// SPDX-License-Identifier: AGPL-3.0

package invitations

import (
	"net/http"

	"github.com/go-chi/chi/v5"

	httptypes "github.com/indevian-dev/TIKTAK-MONOREPO-sub000/internal/http/types"
	"github.com/indevian-dev/TIKTAK-MONOREPO-sub000/internal/logging"
	"github.com/indevian-dev/TIKTAK-MONOREPO-sub000/internal/monitoring"
	"github.com/indevian-dev/TIKTAK-MONOREPO-sub000/internal/tracing"
	"github.com/indevian-dev/TIKTAK-MONOREPO-sub000/internal/types"
	"github.com/indevian-dev/TIKTAK-MONOREPO-sub000/pkg/authentication"
)

type InviteRequest struct {
	Email string `json:"email" validate:"required,email"`
	Role  string `json:"role" validate:"required"`
}

type RespondRequest struct {
	Action types.InvitationAction `json:"action" validate:"required,oneof=approve decline"`
}

type SweepResponse struct {
	Declined int64 `json:"declined"`
}

type API struct {
	service ServiceInterface

	tracer  tracing.TracingInterface
	monitor monitoring.MonitorInterface
	logger  logging.LoggerInterface
}

func NewAPI(service ServiceInterface, tracer tracing.TracingInterface, monitor monitoring.MonitorInterface, logger logging.LoggerInterface) *API {
	return &API{
		service: service,
		tracer:  tracer,
		monitor: monitor,
		logger:  logger,
	}
}

func (a *API) RegisterEndpoints(r chi.Router) {
	r.Post("/workspaces/{id}/invitations", a.invite)
	r.Get("/workspaces/{id}/invitations", a.listForWorkspace)
	r.Get("/me/invitations", a.listPending)
	r.Post("/invitations/{id}/response", a.respond)
}

func (a *API) RegisterStaffEndpoints(r chi.Router) {
	r.Post("/invitations/sweep", a.sweep)
}

func (a *API) invite(w http.ResponseWriter, r *http.Request) {
	actor, ok := authentication.RequireAccountID(w, r)
	if !ok {
		return
	}

	var req InviteRequest
	if err := httptypes.DecodeAndValidate(r, &req); err != nil {
		httptypes.WriteError(w, err)
		return
	}

	inv, err := a.service.Invite(r.Context(), chi.URLParam(r, "id"), actor, req.Email, req.Role)
	if err != nil {
		httptypes.WriteServiceError(w, a.logger, "invite", err)
		return
	}

	httptypes.WriteData(w, http.StatusCreated, inv)
}

func (a *API) listForWorkspace(w http.ResponseWriter, r *http.Request) {
	actor, ok := authentication.RequireAccountID(w, r)
	if !ok {
		return
	}

	invs, err := a.service.ListForWorkspace(r.Context(), actor, chi.URLParam(r, "id"))
	if err != nil {
		httptypes.WriteServiceError(w, a.logger, "list workspace invitations", err)
		return
	}

	httptypes.WriteData(w, http.StatusOK, invs)
}

func (a *API) listPending(w http.ResponseWriter, r *http.Request) {
	actor, ok := authentication.RequireAccountID(w, r)
	if !ok {
		return
	}

	invs, err := a.service.ListPendingForAccount(r.Context(), actor)
	if err != nil {
		httptypes.WriteServiceError(w, a.logger, "list pending invitations", err)
		return
	}

	httptypes.WriteData(w, http.StatusOK, invs)
}

func (a *API) respond(w http.ResponseWriter, r *http.Request) {
	actor, ok := authentication.RequireAccountID(w, r)
	if !ok {
		return
	}

	var req RespondRequest
	if err := httptypes.DecodeAndValidate(r, &req); err != nil {
		httptypes.WriteError(w, err)
		return
	}

	inv, err := a.service.Respond(r.Context(), chi.URLParam(r, "id"), actor, req.Action)
	if err != nil {
		httptypes.WriteServiceError(w, a.logger, "respond to invitation", err)
		return
	}

	httptypes.WriteData(w, http.StatusOK, inv)
}

func (a *API) sweep(w http.ResponseWriter, r *http.Request) {
	actor, ok := authentication.RequireAccountID(w, r)
	if !ok {
		return
	}

	n, err := a.service.SweepExpired(r.Context(), actor)
	if err != nil {
		httptypes.WriteServiceError(w, a.logger, "sweep invitations", err)
		return
	}

	a.logger.Security().AdminAction(actor, "invitations.sweep", "invitations")
	httptypes.WriteData(w, http.StatusOK, SweepResponse{Declined: n})
}
