// Copyright 2026 Canonical Ltd.
// SPDX-License-Identifier: AGPL-3.0

package roles

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

type CreateRoleRequest struct {
	Name             string              `json:"name" validate:"required,max=64"`
	Permissions      types.Permissions   `json:"permissions" validate:"max=64,dive,min=1,max=64"`
	ForWorkspaceType types.WorkspaceType `json:"forWorkspaceType"`
	IsStaff          bool                `json:"isStaff"`
}

type PermissionRequest struct {
	Permission string `json:"permission" validate:"required,max=64"`
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
	r.Get("/roles", a.list)
	r.Get("/roles/{name}", a.get)
}

func (a *API) RegisterStaffEndpoints(r chi.Router) {
	r.Post("/roles", a.create)
	r.Patch("/roles/{id}", a.update)
	r.Delete("/roles/{id}", a.delete)
	r.Post("/roles/{name}/permissions", a.addPermission)
	r.Delete("/roles/{name}/permissions/{permission}", a.removePermission)
}

func (a *API) list(w http.ResponseWriter, r *http.Request) {
	roles, err := a.service.FindAll(r.Context())
	if err != nil {
		httptypes.WriteServiceError(w, a.logger, "list roles", err)
		return
	}

	httptypes.WriteData(w, http.StatusOK, roles)
}

func (a *API) get(w http.ResponseWriter, r *http.Request) {
	role, err := a.service.FindByName(r.Context(), chi.URLParam(r, "name"))
	if err != nil {
		httptypes.WriteServiceError(w, a.logger, "get role", err)
		return
	}

	httptypes.WriteData(w, http.StatusOK, role)
}

func (a *API) create(w http.ResponseWriter, r *http.Request) {
	var req CreateRoleRequest
	if err := httptypes.DecodeAndValidate(r, &req); err != nil {
		httptypes.WriteError(w, err)
		return
	}

	role, err := a.service.Create(r.Context(), &types.Role{
		Name:             req.Name,
		Permissions:      req.Permissions,
		ForWorkspaceType: req.ForWorkspaceType,
		IsStaff:          req.IsStaff,
	})
	if err != nil {
		httptypes.WriteServiceError(w, a.logger, "create role", err)
		return
	}

	a.audit(r, "role.create", role.Name)
	httptypes.WriteData(w, http.StatusCreated, role)
}

func (a *API) update(w http.ResponseWriter, r *http.Request) {
	var req types.RoleUpdate
	if err := httptypes.DecodeAndValidate(r, &req); err != nil {
		httptypes.WriteError(w, err)
		return
	}

	role, err := a.service.Update(r.Context(), chi.URLParam(r, "id"), &req)
	if err != nil {
		httptypes.WriteServiceError(w, a.logger, "update role", err)
		return
	}

	a.audit(r, "role.update", role.Name)
	httptypes.WriteData(w, http.StatusOK, role)
}

func (a *API) delete(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "id")

	if err := a.service.Delete(r.Context(), id); err != nil {
		httptypes.WriteServiceError(w, a.logger, "delete role", err)
		return
	}

	a.audit(r, "role.delete", id)
	w.WriteHeader(http.StatusNoContent)
}

func (a *API) addPermission(w http.ResponseWriter, r *http.Request) {
	var req PermissionRequest
	if err := httptypes.DecodeAndValidate(r, &req); err != nil {
		httptypes.WriteError(w, err)
		return
	}

	role, err := a.service.AddPermission(r.Context(), chi.URLParam(r, "name"), req.Permission)
	if err != nil {
		httptypes.WriteServiceError(w, a.logger, "add permission", err)
		return
	}

	a.audit(r, "role.grant", role.Name)
	httptypes.WriteData(w, http.StatusOK, role)
}

func (a *API) removePermission(w http.ResponseWriter, r *http.Request) {
	role, err := a.service.RemovePermission(r.Context(), chi.URLParam(r, "name"), chi.URLParam(r, "permission"))
	if err != nil {
		httptypes.WriteServiceError(w, a.logger, "remove permission", err)
		return
	}

	a.audit(r, "role.revoke", role.Name)
	httptypes.WriteData(w, http.StatusOK, role)
}

func (a *API) audit(r *http.Request, action, resource string) {
	if staff, ok := authentication.AccountID(r.Context()); ok {
		a.logger.Security().AdminAction(staff, action, resource)
	}
}
