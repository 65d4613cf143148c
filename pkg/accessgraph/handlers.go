// Copyright 2026 Canonical Ltd.
// SPDX-License-Identifier: AGPL-3.0

package accessgraph

import (
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"

	httptypes "github.com/indevian-dev/TIKTAK-MONOREPO-sub000/internal/http/types"
	"github.com/indevian-dev/TIKTAK-MONOREPO-sub000/internal/logging"
	"github.com/indevian-dev/TIKTAK-MONOREPO-sub000/internal/monitoring"
	"github.com/indevian-dev/TIKTAK-MONOREPO-sub000/internal/tracing"
	"github.com/indevian-dev/TIKTAK-MONOREPO-sub000/internal/types"
	"github.com/indevian-dev/TIKTAK-MONOREPO-sub000/pkg/authentication"
)

type AddAccessRequest struct {
	ActorAccountID    string     `json:"actorAccountId" validate:"required"`
	TargetWorkspaceID string     `json:"targetWorkspaceId" validate:"required"`
	ViaWorkspaceID    string     `json:"viaWorkspaceId"`
	AccessRole        string     `json:"accessRole" validate:"required"`
	SubscribedUntil   *time.Time `json:"subscribedUntil"`
	SubscriptionTier  string     `json:"subscriptionTier" validate:"max=32"`
}

type UpdateSubscriptionRequest struct {
	SubscribedUntil  *time.Time `json:"subscribedUntil"`
	SubscriptionTier string     `json:"subscriptionTier" validate:"max=32"`
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
	r.Get("/me/workspaces", a.listOwnedConnected)
	r.Get("/workspaces/{id}/members", a.listDirectMembers)
	r.Get("/workspaces/{id}/enrollments", a.listEnrolled)
	r.Get("/workspaces/{id}/connections", a.listConnections)
}

// RegisterStaffEndpoints mounts the edge administration routes, expected behind the staff gate.
func (a *API) RegisterStaffEndpoints(r chi.Router) {
	r.Get("/accounts/{accountId}/workspaces", a.listForActor)
	r.Post("/accesses", a.addAccess)
	r.Put("/accesses/{id}/subscription", a.updateSubscription)
	r.Delete("/accesses/{id}", a.removeAccess)
}

func (a *API) listOwnedConnected(w http.ResponseWriter, r *http.Request) {
	actor, ok := authentication.RequireAccountID(w, r)
	if !ok {
		return
	}

	result, err := a.service.ListOwnedConnected(r.Context(), actor)
	if err != nil {
		httptypes.WriteServiceError(w, a.logger, "list workspaces", err)
		return
	}

	httptypes.WriteData(w, http.StatusOK, result)
}

func (a *API) listDirectMembers(w http.ResponseWriter, r *http.Request) {
	workspaceID, ok := a.authorizeWorkspace(w, r)
	if !ok {
		return
	}

	members, err := a.service.ListDirectMembers(r.Context(), workspaceID, httptypes.ParsePagination(r))
	if err != nil {
		httptypes.WriteServiceError(w, a.logger, "list members", err)
		return
	}

	httptypes.WriteData(w, http.StatusOK, members)
}

func (a *API) listEnrolled(w http.ResponseWriter, r *http.Request) {
	workspaceID, ok := a.authorizeWorkspace(w, r)
	if !ok {
		return
	}

	members, err := a.service.ListEnrolled(r.Context(), workspaceID, httptypes.ParsePagination(r))
	if err != nil {
		httptypes.WriteServiceError(w, a.logger, "list enrollments", err)
		return
	}

	httptypes.WriteData(w, http.StatusOK, members)
}

func (a *API) listConnections(w http.ResponseWriter, r *http.Request) {
	workspaceID, ok := a.authorizeWorkspace(w, r)
	if !ok {
		return
	}

	edges, err := a.service.ListConnections(r.Context(), workspaceID)
	if err != nil {
		httptypes.WriteServiceError(w, a.logger, "list connections", err)
		return
	}

	httptypes.WriteData(w, http.StatusOK, edges)
}

func (a *API) listForActor(w http.ResponseWriter, r *http.Request) {
	workspaces, err := a.service.ListForActor(r.Context(), chi.URLParam(r, "accountId"))
	if err != nil {
		httptypes.WriteServiceError(w, a.logger, "list account workspaces", err)
		return
	}

	httptypes.WriteData(w, http.StatusOK, workspaces)
}

func (a *API) addAccess(w http.ResponseWriter, r *http.Request) {
	var req AddAccessRequest
	if err := httptypes.DecodeAndValidate(r, &req); err != nil {
		httptypes.WriteError(w, err)
		return
	}

	via := req.ViaWorkspaceID
	if via == "" {
		via = req.TargetWorkspaceID
	}

	created, err := a.service.AddAccess(r.Context(), &types.Access{
		ActorAccountID:    req.ActorAccountID,
		TargetWorkspaceID: req.TargetWorkspaceID,
		ViaWorkspaceID:    via,
		AccessRole:        req.AccessRole,
		SubscribedUntil:   req.SubscribedUntil,
		SubscriptionTier:  req.SubscriptionTier,
	})
	if err != nil {
		httptypes.WriteServiceError(w, a.logger, "add access", err)
		return
	}

	if staff, ok := authentication.AccountID(r.Context()); ok {
		a.logger.Security().AdminAction(staff, "access.add", created.ID)
	}

	httptypes.WriteData(w, http.StatusCreated, created)
}

func (a *API) updateSubscription(w http.ResponseWriter, r *http.Request) {
	var req UpdateSubscriptionRequest
	if err := httptypes.DecodeAndValidate(r, &req); err != nil {
		httptypes.WriteError(w, err)
		return
	}

	updated, err := a.service.UpdateSubscription(r.Context(), chi.URLParam(r, "id"), req.SubscribedUntil, req.SubscriptionTier)
	if err != nil {
		httptypes.WriteServiceError(w, a.logger, "update subscription", err)
		return
	}

	if staff, ok := authentication.AccountID(r.Context()); ok {
		a.logger.Security().AdminAction(staff, "access.subscription", updated.ID)
	}

	httptypes.WriteData(w, http.StatusOK, updated)
}

func (a *API) removeAccess(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "id")

	if err := a.service.RemoveAccess(r.Context(), id); err != nil {
		httptypes.WriteServiceError(w, a.logger, "remove access", err)
		return
	}

	if staff, ok := authentication.AccountID(r.Context()); ok {
		a.logger.Security().AdminAction(staff, "access.remove", id)
	}

	w.WriteHeader(http.StatusNoContent)
}

// authorizeWorkspace lets through only actors holding some edge into the workspace.
func (a *API) authorizeWorkspace(w http.ResponseWriter, r *http.Request) (string, bool) {
	actor, ok := authentication.RequireAccountID(w, r)
	if !ok {
		return "", false
	}

	workspaceID := chi.URLParam(r, "id")

	if _, err := a.service.FindAccess(r.Context(), actor, workspaceID, ""); err != nil {
		if status, _ := httptypes.ErrorStatus(err); status == http.StatusNotFound {
			a.logger.Security().AuthzFailure(actor, workspaceID)
			httptypes.WriteError(w, types.ErrForbidden)
			return "", false
		}
		httptypes.WriteServiceError(w, a.logger, "authorize workspace", err)
		return "", false
	}

	return workspaceID, true
}
