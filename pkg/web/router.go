// Copyright 2026 Canonical Ltd.
// SPDX-License-Identifier: AGPL-3.0

package web

import (
	"net/http"
	"time"

	chi "github.com/go-chi/chi/v5"
	middleware "github.com/go-chi/chi/v5/middleware"

	"github.com/indevian-dev/TIKTAK-MONOREPO-sub000/internal/authorization"
	"github.com/indevian-dev/TIKTAK-MONOREPO-sub000/internal/cache"
	"github.com/indevian-dev/TIKTAK-MONOREPO-sub000/internal/kratos"
	"github.com/indevian-dev/TIKTAK-MONOREPO-sub000/internal/logging"
	"github.com/indevian-dev/TIKTAK-MONOREPO-sub000/internal/monitoring"
	"github.com/indevian-dev/TIKTAK-MONOREPO-sub000/internal/notify"
	"github.com/indevian-dev/TIKTAK-MONOREPO-sub000/internal/storage"
	"github.com/indevian-dev/TIKTAK-MONOREPO-sub000/internal/tracing"
	"github.com/indevian-dev/TIKTAK-MONOREPO-sub000/pkg/accessgraph"
	"github.com/indevian-dev/TIKTAK-MONOREPO-sub000/pkg/authentication"
	"github.com/indevian-dev/TIKTAK-MONOREPO-sub000/pkg/invitations"
	"github.com/indevian-dev/TIKTAK-MONOREPO-sub000/pkg/lifecycle"
	"github.com/indevian-dev/TIKTAK-MONOREPO-sub000/pkg/metrics"
	"github.com/indevian-dev/TIKTAK-MONOREPO-sub000/pkg/roles"
	"github.com/indevian-dev/TIKTAK-MONOREPO-sub000/pkg/status"
	"github.com/indevian-dev/TIKTAK-MONOREPO-sub000/pkg/webhooks"
	"github.com/indevian-dev/TIKTAK-MONOREPO-sub000/pkg/workspaces"
)

type Config struct {
	InvitationLifetime time.Duration
	TagCacheTTL        time.Duration
	WebhookAPIKey      string
	AllowedOrigins     []string
}

// Dependencies are the adapters selected at startup.
type Dependencies struct {
	Storage    storage.StorageInterface
	Directory  kratos.DirectoryInterface
	Notifier   notify.NotifierInterface
	Authorizer authorization.AuthorizerInterface
	Cache      cache.CacheInterface
	Verifier   authentication.TokenVerifierInterface
}

func NewRouter(
	cfg Config,
	deps Dependencies,
	tracer tracing.TracingInterface,
	monitor monitoring.MonitorInterface,
	logger logging.LoggerInterface,
) http.Handler {
	router := chi.NewMux()

	middlewares := make(chi.Middlewares, 0)
	middlewares = append(
		middlewares,
		middleware.RequestID,
		monitoring.NewMiddleware(monitor, logger).ResponseTime(),
		middlewareCORS(cfg.AllowedOrigins),
	)

	router.Use(middlewares...)

	graphSvc := accessgraph.NewService(deps.Storage, deps.Directory, deps.Authorizer, tracer, monitor, logger)
	rolesSvc := roles.NewService(deps.Storage, tracer, monitor, logger)
	workspacesSvc := workspaces.NewService(deps.Storage, deps.Cache, cfg.TagCacheTTL, tracer, monitor, logger)
	invitationsSvc := invitations.NewService(deps.Storage, deps.Directory, deps.Notifier, deps.Authorizer, cfg.InvitationLifetime, time.Now, tracer, monitor, logger)
	lifecycleSvc := lifecycle.NewService(deps.Storage, deps.Notifier, deps.Authorizer, deps.Cache, time.Now, tracer, monitor, logger)
	webhooksSvc := webhooks.NewService(deps.Storage, lifecycleSvc, tracer, monitor, logger)

	graphAPI := accessgraph.NewAPI(graphSvc, tracer, monitor, logger)
	rolesAPI := roles.NewAPI(rolesSvc, tracer, monitor, logger)
	workspacesAPI := workspaces.NewAPI(workspacesSvc, tracer, monitor, logger)
	invitationsAPI := invitations.NewAPI(invitationsSvc, tracer, monitor, logger)
	lifecycleAPI := lifecycle.NewAPI(lifecycleSvc, tracer, monitor, logger)

	metrics.NewAPI(logger).RegisterEndpoints(router)
	status.NewAPI(tracer, monitor, logger).RegisterEndpoints(router)

	router.Route("/api/v1", func(r chi.Router) {
		webhooks.NewAPI(webhooksSvc, cfg.WebhookAPIKey, logger).RegisterEndpoints(r)

		r.Group(func(r chi.Router) {
			r.Use(authentication.NewMiddleware(deps.Verifier, tracer, monitor, logger).Authenticate())

			workspacesAPI.RegisterEndpoints(r)
			graphAPI.RegisterEndpoints(r)
			rolesAPI.RegisterEndpoints(r)
			invitationsAPI.RegisterEndpoints(r)
			lifecycleAPI.RegisterEndpoints(r)

			r.Route("/staff", func(r chi.Router) {
				r.Use(authorization.NewMiddleware(deps.Authorizer, authentication.AccountID, tracer, monitor, logger).StaffOnly())

				workspacesAPI.RegisterStaffEndpoints(r)
				graphAPI.RegisterStaffEndpoints(r)
				rolesAPI.RegisterStaffEndpoints(r)
				invitationsAPI.RegisterStaffEndpoints(r)
				lifecycleAPI.RegisterStaffEndpoints(r)
			})
		})
	})

	return tracing.NewMiddleware(monitor, logger).OpenTelemetry(router)
}
