// Copyright 2026 Canonical Ltd.
// SPDX-License-Identifier: AGPL-3.0

package workspaces

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

type EvaluateApplicationRequest struct {
	Approve *bool `json:"approve" validate:"required"`
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
	r.Get("/workspaces", a.listByType)
	r.Get("/workspaces/{id}", a.get)
	r.Patch("/workspaces/{id}", a.update)
	r.Get("/tags", a.listTags)
}

func (a *API) RegisterStaffEndpoints(r chi.Router) {
	r.Patch("/providers/{id}", a.staffUpdate)
	r.Post("/providers/{id}/evaluation", a.staffEvaluate)
	r.Delete("/providers/{id}", a.staffDelete)
}

func (a *API) listByType(w http.ResponseWriter, r *http.Request) {
	q := r.URL.Query()

	t, err := types.ParseWorkspaceType(q.Get("type"))
	if err != nil {
		httptypes.WriteError(w, err)
		return
	}

	filter := types.WorkspaceFilter{
		IsActive:  httptypes.ParseBool(r, "isActive"),
		IsBlocked: httptypes.ParseBool(r, "isBlocked"),
		CityID:    q.Get("cityId"),
		Search:    q.Get("search"),
		Tag:       q.Get("tag"),
	}

	order := types.WorkspaceSort{Field: q.Get("sort")}
	if desc := httptypes.ParseBool(r, "desc"); desc != nil {
		order.Desc = *desc
	}

	result, err := a.service.ListByType(r.Context(), t, filter, order, httptypes.ParsePagination(r))
	if err != nil {
		httptypes.WriteServiceError(w, a.logger, "list workspaces", err)
		return
	}

	httptypes.WriteData(w, http.StatusOK, result)
}

func (a *API) get(w http.ResponseWriter, r *http.Request) {
	ws, err := a.service.Get(r.Context(), chi.URLParam(r, "id"))
	if err != nil {
		httptypes.WriteServiceError(w, a.logger, "get workspace", err)
		return
	}

	httptypes.WriteData(w, http.StatusOK, ws)
}

func (a *API) update(w http.ResponseWriter, r *http.Request) {
	actor, ok := authentication.RequireAccountID(w, r)
	if !ok {
		return
	}

	var req types.WorkspaceUpdate
	if err := httptypes.DecodeAndValidate(r, &req); err != nil {
		httptypes.WriteError(w, err)
		return
	}

	ws, err := a.service.Update(r.Context(), actor, chi.URLParam(r, "id"), &req)
	if err != nil {
		httptypes.WriteServiceError(w, a.logger, "update workspace", err)
		return
	}

	httptypes.WriteData(w, http.StatusOK, ws)
}

func (a *API) listTags(w http.ResponseWriter, r *http.Request) {
	tags, err := a.service.ListDistinctTags(r.Context())
	if err != nil {
		httptypes.WriteServiceError(w, a.logger, "list tags", err)
		return
	}

	httptypes.WriteData(w, http.StatusOK, tags)
}

func (a *API) staffUpdate(w http.ResponseWriter, r *http.Request) {
	var req types.WorkspaceUpdate
	if err := httptypes.DecodeAndValidate(r, &req); err != nil {
		httptypes.WriteError(w, err)
		return
	}

	ws, err := a.service.StaffUpdateProvider(r.Context(), chi.URLParam(r, "id"), &req)
	if err != nil {
		httptypes.WriteServiceError(w, a.logger, "update provider", err)
		return
	}

	a.audit(r, "provider.update", ws.ID)
	httptypes.WriteData(w, http.StatusOK, ws)
}

func (a *API) staffEvaluate(w http.ResponseWriter, r *http.Request) {
	var req EvaluateApplicationRequest
	if err := httptypes.DecodeAndValidate(r, &req); err != nil {
		httptypes.WriteError(w, err)
		return
	}

	ws, err := a.service.StaffEvaluateApplication(r.Context(), chi.URLParam(r, "id"), *req.Approve)
	if err != nil {
		httptypes.WriteServiceError(w, a.logger, "evaluate application", err)
		return
	}

	action := "provider.reject"
	if *req.Approve {
		action = "provider.approve"
	}

	a.audit(r, action, ws.ID)
	httptypes.WriteData(w, http.StatusOK, ws)
}

func (a *API) staffDelete(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "id")

	if err := a.service.StaffDeleteProvider(r.Context(), id); err != nil {
		httptypes.WriteServiceError(w, a.logger, "delete provider", err)
		return
	}

	a.audit(r, "provider.delete", id)
	w.WriteHeader(http.StatusNoContent)
}

func (a *API) audit(r *http.Request, action, resource string) {
	if staff, ok := authentication.AccountID(r.Context()); ok {
		a.logger.Security().AdminAction(staff, action, resource)
	}
}
