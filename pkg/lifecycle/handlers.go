// Copyright 2026 Canonical Ltd.
// SPDX-License-Identifier: AGPL-3.0

package lifecycle

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

type StaffWorkspaceRequest struct {
	Title   string        `json:"title" validate:"required,max=255"`
	Profile types.Profile `json:"profile"`
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
	r.Post("/workspaces", a.createWorkspace)
	r.Post("/providers/applications", a.submitApplication)
	r.Post("/students", a.createStudent)
	r.Post("/parents", a.startParentFlow)
}

func (a *API) RegisterStaffEndpoints(r chi.Router) {
	r.Post("/workspaces", a.createStaffWorkspace)
	r.Post("/members", a.addStaffMember)
}

func (a *API) createWorkspace(w http.ResponseWriter, r *http.Request) {
	owner, ok := authentication.RequireAccountID(w, r)
	if !ok {
		return
	}

	var req NewWorkspace
	if err := httptypes.DecodeAndValidate(r, &req); err != nil {
		httptypes.WriteError(w, err)
		return
	}

	if req.Type == types.WorkspaceTypeStaff {
		a.logger.Security().AuthzFailure(owner, "workspace:staff")
		httptypes.WriteErrorCode(w, http.StatusForbidden, "forbidden", "staff workspaces are created by staff")
		return
	}

	ws, err := a.service.CreateWorkspace(r.Context(), owner, &req)
	if err != nil {
		httptypes.WriteServiceError(w, a.logger, "create workspace", err)
		return
	}

	httptypes.WriteData(w, http.StatusCreated, ws)
}

func (a *API) submitApplication(w http.ResponseWriter, r *http.Request) {
	owner, ok := authentication.RequireAccountID(w, r)
	if !ok {
		return
	}

	var req ProviderApplication
	if err := httptypes.DecodeAndValidate(r, &req); err != nil {
		httptypes.WriteError(w, err)
		return
	}

	ws, err := a.service.SubmitProviderApplication(r.Context(), owner, &req)
	if err != nil {
		httptypes.WriteServiceError(w, a.logger, "submit provider application", err)
		return
	}

	httptypes.WriteData(w, http.StatusCreated, ws)
}

func (a *API) createStudent(w http.ResponseWriter, r *http.Request) {
	owner, ok := authentication.RequireAccountID(w, r)
	if !ok {
		return
	}

	var req NewStudentWorkspace
	if err := httptypes.DecodeAndValidate(r, &req); err != nil {
		httptypes.WriteError(w, err)
		return
	}

	ws, err := a.service.CreateStudentWorkspace(r.Context(), owner, &req)
	if err != nil {
		httptypes.WriteServiceError(w, a.logger, "create student workspace", err)
		return
	}

	httptypes.WriteData(w, http.StatusCreated, ws)
}

func (a *API) startParentFlow(w http.ResponseWriter, r *http.Request) {
	owner, ok := authentication.RequireAccountID(w, r)
	if !ok {
		return
	}

	var req ParentWorkspace
	if err := httptypes.DecodeAndValidate(r, &req); err != nil {
		httptypes.WriteError(w, err)
		return
	}

	ws, err := a.service.StartParentWorkspaceFlow(r.Context(), owner, req.StudentWorkspaceIDs)
	if err != nil {
		httptypes.WriteServiceError(w, a.logger, "start parent workspace flow", err)
		return
	}

	httptypes.WriteData(w, http.StatusCreated, ws)
}

func (a *API) createStaffWorkspace(w http.ResponseWriter, r *http.Request) {
	staff, ok := authentication.RequireAccountID(w, r)
	if !ok {
		return
	}

	var req StaffWorkspaceRequest
	if err := httptypes.DecodeAndValidate(r, &req); err != nil {
		httptypes.WriteError(w, err)
		return
	}

	ws, err := a.service.CreateWorkspace(r.Context(), staff, &NewWorkspace{
		Title:   req.Title,
		Type:    types.WorkspaceTypeStaff,
		Profile: req.Profile,
	})
	if err != nil {
		httptypes.WriteServiceError(w, a.logger, "create staff workspace", err)
		return
	}

	a.logger.Security().AdminAction(staff, "staff_workspace.create", ws.ID)
	httptypes.WriteData(w, http.StatusCreated, ws)
}

func (a *API) addStaffMember(w http.ResponseWriter, r *http.Request) {
	staff, ok := authentication.RequireAccountID(w, r)
	if !ok {
		return
	}

	var req StaffMember
	if err := httptypes.DecodeAndValidate(r, &req); err != nil {
		httptypes.WriteError(w, err)
		return
	}

	edge, err := a.service.AddUserToStaffWorkspace(r.Context(), &req)
	if err != nil {
		httptypes.WriteServiceError(w, a.logger, "add staff member", err)
		return
	}

	a.logger.Security().AdminAction(staff, "staff_member.add", req.WorkspaceID+"/"+req.AccountID)
	httptypes.WriteData(w, http.StatusCreated, edge)
}
