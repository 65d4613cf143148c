// Copyright 2026 Canonical Ltd.
// SPDX-License-Identifier: AGPL-3.0

package cmd

import (
	"github.com/indevian-dev/TIKTAK-MONOREPO-sub000/internal/authorization"
	"github.com/indevian-dev/TIKTAK-MONOREPO-sub000/internal/logging"
	"github.com/indevian-dev/TIKTAK-MONOREPO-sub000/internal/monitoring"
	"github.com/indevian-dev/TIKTAK-MONOREPO-sub000/internal/storage"
	"github.com/indevian-dev/TIKTAK-MONOREPO-sub000/internal/tracing"
)

// adminEnv is the storage, authorization and telemetry used by the administrative commands,
// which talk to the configured backend directly instead of through the API.
type adminEnv struct {
	storage    storage.StorageInterface
	authorizer authorization.AuthorizerInterface
	close      func()

	tracer  tracing.TracingInterface
	monitor monitoring.MonitorInterface
	logger  logging.LoggerInterface
}

func newAdminEnv() (*adminEnv, error) {
	specs, err := loadSpecs()
	if err != nil {
		return nil, err
	}

	logger := logging.NewLogger(specs.LogLevel)
	tracer := tracing.NewNoopTracer()
	monitor := monitoring.NewNoopMonitor("workspace-service-cli", logger)

	s, closeStorage, err := newStorage(specs, tracer, monitor, logger)
	if err != nil {
		return nil, err
	}

	return &adminEnv{
		storage:    s,
		authorizer: newAuthorizer(specs, tracer, monitor, logger),
		close:      closeStorage,
		tracer:     tracer,
		monitor:    monitor,
		logger:     logger,
	}, nil
}
