// Copyright 2026 Canonical Ltd.
// SPDX-License-Identifier: AGPL-3.0

package cmd

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/spf13/cobra"

	"github.com/indevian-dev/TIKTAK-MONOREPO-sub000/internal/kratos"
	"github.com/indevian-dev/TIKTAK-MONOREPO-sub000/internal/logging"
	"github.com/indevian-dev/TIKTAK-MONOREPO-sub000/internal/monitoring/prometheus"
	"github.com/indevian-dev/TIKTAK-MONOREPO-sub000/internal/notify"
	"github.com/indevian-dev/TIKTAK-MONOREPO-sub000/internal/tracing"
	"github.com/indevian-dev/TIKTAK-MONOREPO-sub000/pkg/web"
)

var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "serve starts the web server",
	Long:  `Launch the web application, list of environment variables is available in the readme`,
	RunE: func(cmd *cobra.Command, args []string) error {
		return serve()
	},
}

func init() {
	rootCmd.AddCommand(serveCmd)
}

func serve() error {
	specs, err := loadSpecs()
	if err != nil {
		return err
	}

	logger := logging.NewLogger(specs.LogLevel)
	logger.Debugf("env vars: %v", specs)
	defer logger.Sync()

	monitor := prometheus.NewMonitor("workspace-service", logger)
	tracer := tracing.NewTracer(tracing.NewConfig(specs.TracingEnabled, specs.OtelGRPCEndpoint, specs.OtelHTTPEndpoint, logger))

	s, closeStorage, err := newStorage(specs, tracer, monitor, logger)
	if err != nil {
		return err
	}
	defer closeStorage()

	publisher, err := newPublisher(specs, logger)
	if err != nil {
		return err
	}

	notifier := notify.NewNotifier(publisher, specs.NotifierTimeout, tracer, monitor, logger)
	defer func() {
		if err := notifier.Close(); err != nil {
			logger.Errorf("failed to close notifier: %v", err)
		}
	}()

	verifier, err := newVerifier(context.Background(), specs, tracer, monitor, logger)
	if err != nil {
		return fmt.Errorf("failed to set up authentication: %w", err)
	}

	router := web.NewRouter(
		web.Config{
			InvitationLifetime: specs.InvitationLifetime,
			TagCacheTTL:        specs.TagCacheTTL,
			WebhookAPIKey:      specs.WebhookAPIKey,
			AllowedOrigins:     specs.AllowedOrigins,
		},
		web.Dependencies{
			Storage:    s,
			Directory:  kratos.NewClient(specs.KratosAdminURL, tracer, monitor, logger),
			Notifier:   notifier,
			Authorizer: newAuthorizer(specs, tracer, monitor, logger),
			Cache:      newCache(specs, tracer, monitor, logger),
			Verifier:   verifier,
		},
		tracer,
		monitor,
		logger,
	)
	logger.Infof("Starting HTTP server on port %v", specs.Port)

	srv := &http.Server{
		Addr:         fmt.Sprintf("0.0.0.0:%v", specs.Port),
		WriteTimeout: time.Second * 60,
		ReadTimeout:  time.Second * 15,
		IdleTimeout:  time.Second * 60,
		Handler:      router,
	}

	var serverError error
	c := make(chan os.Signal, 1)
	signal.Notify(c, os.Interrupt, syscall.SIGTERM)

	go func() {
		logger.Security().SystemStartup()
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			serverError = fmt.Errorf("server error: %w", err)
			c <- os.Interrupt
		}
	}()

	<-c

	ctx, cancel := context.WithTimeout(context.Background(), 15*time.Second)
	defer cancel()

	logger.Security().SystemShutdown()
	if err := srv.Shutdown(ctx); err != nil {
		serverError = fmt.Errorf("server shutdown error: %w", err)
	}

	return serverError
}
