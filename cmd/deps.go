// Copyright 2026 Canonical Ltd.
// SPDX-License-Identifier: AGPL-3.0

package cmd

import (
	"context"
	"fmt"

	"github.com/kelseyhightower/envconfig"

	"github.com/indevian-dev/TIKTAK-MONOREPO-sub000/internal/authorization"
	"github.com/indevian-dev/TIKTAK-MONOREPO-sub000/internal/cache"
	"github.com/indevian-dev/TIKTAK-MONOREPO-sub000/internal/config"
	"github.com/indevian-dev/TIKTAK-MONOREPO-sub000/internal/db"
	"github.com/indevian-dev/TIKTAK-MONOREPO-sub000/internal/logging"
	"github.com/indevian-dev/TIKTAK-MONOREPO-sub000/internal/monitoring"
	"github.com/indevian-dev/TIKTAK-MONOREPO-sub000/internal/notify"
	"github.com/indevian-dev/TIKTAK-MONOREPO-sub000/internal/openfga"
	"github.com/indevian-dev/TIKTAK-MONOREPO-sub000/internal/storage"
	"github.com/indevian-dev/TIKTAK-MONOREPO-sub000/internal/storage/memory"
	"github.com/indevian-dev/TIKTAK-MONOREPO-sub000/internal/tracing"
	"github.com/indevian-dev/TIKTAK-MONOREPO-sub000/pkg/authentication"
)

const (
	backendMemory   = "memory"
	backendPostgres = "postgres"

	notifierNoop     = "noop"
	notifierRabbitMQ = "rabbitmq"
	notifierKafka    = "kafka"
)

func loadSpecs() (*config.EnvSpec, error) {
	specs := new(config.EnvSpec)
	if err := envconfig.Process("", specs); err != nil {
		return nil, fmt.Errorf("issues with environment sourcing: %w", err)
	}

	return specs, nil
}

// newStorage returns the configured backend and a function releasing it.
func newStorage(specs *config.EnvSpec, tracer tracing.TracingInterface, monitor monitoring.MonitorInterface, logger logging.LoggerInterface) (storage.StorageInterface, func(), error) {
	switch specs.StorageBackend {
	case backendMemory:
		logger.Warn("Using in-memory storage, data will not survive a restart")
		return memory.NewStore(nil, tracer, monitor, logger), func() {}, nil
	case backendPostgres:
		dbClient, err := db.NewDBClient(
			db.Config{
				DSN:             specs.DSN,
				MaxConns:        specs.DBMaxConns,
				MinConns:        specs.DBMinConns,
				MaxConnLifetime: specs.DBMaxConnLifetime,
				MaxConnIdleTime: specs.DBMaxConnIdleTime,
				TracingEnabled:  specs.TracingEnabled,
			},
			tracer,
			monitor,
			logger,
		)
		if err != nil {
			return nil, nil, fmt.Errorf("failed to create database client: %w", err)
		}

		return storage.NewStorage(dbClient, tracer, monitor, logger), dbClient.Close, nil
	default:
		return nil, nil, fmt.Errorf("unknown storage backend %q", specs.StorageBackend)
	}
}

func newPublisher(specs *config.EnvSpec, logger logging.LoggerInterface) (notify.PublisherInterface, error) {
	switch specs.NotifierBackend {
	case notifierNoop, "":
		return notify.NewNoopPublisher(logger), nil
	case notifierRabbitMQ:
		p, err := notify.NewRabbitMQPublisher(specs.RabbitMQURL, specs.RabbitMQExchange)
		if err != nil {
			return nil, fmt.Errorf("failed to connect to rabbitmq: %w", err)
		}
		return p, nil
	case notifierKafka:
		if len(specs.KafkaBrokers) == 0 {
			return nil, fmt.Errorf("kafka notifier requires at least one broker")
		}
		return notify.NewKafkaPublisher(specs.KafkaBrokers, specs.KafkaTopic), nil
	default:
		return nil, fmt.Errorf("unknown notifier backend %q", specs.NotifierBackend)
	}
}

// newCache falls back to the noop cache when redis is not configured or unreachable.
func newCache(specs *config.EnvSpec, tracer tracing.TracingInterface, monitor monitoring.MonitorInterface, logger logging.LoggerInterface) cache.CacheInterface {
	if specs.RedisURL == "" {
		logger.Info("Using noop cache")
		return cache.NewNoopCache()
	}

	c, err := cache.NewRedisCache(specs.RedisURL, tracer, monitor, logger)
	if err != nil {
		logger.Errorf("failed to create redis cache, using noop cache: %v", err)
		return cache.NewNoopCache()
	}

	return c
}

func newAuthorizer(specs *config.EnvSpec, tracer tracing.TracingInterface, monitor monitoring.MonitorInterface, logger logging.LoggerInterface) *authorization.Authorizer {
	if !specs.AuthorizationEnabled {
		logger.Info("Using noop authorizer")
		return authorization.NewAuthorizer(openfga.NewNoopClient(tracer, monitor, logger), tracer, monitor, logger)
	}

	ofga := openfga.NewClient(
		openfga.NewConfig(
			specs.OpenfgaApiScheme,
			specs.OpenfgaApiHost,
			specs.OpenfgaStoreId,
			specs.OpenfgaApiToken,
			specs.OpenfgaModelId,
			specs.Debug,
			tracer,
			monitor,
			logger,
		),
	)

	logger.Info("Authorization is enabled")
	return authorization.NewAuthorizer(ofga, tracer, monitor, logger)
}

func newVerifier(ctx context.Context, specs *config.EnvSpec, tracer tracing.TracingInterface, monitor monitoring.MonitorInterface, logger logging.LoggerInterface) (authentication.TokenVerifierInterface, error) {
	if !specs.AuthenticationEnabled {
		logger.Warn("Authentication is disabled, bearer tokens are taken as account ids")
		return authentication.NewNoopVerifier(), nil
	}

	return authentication.NewJWTAuthenticator(
		ctx,
		authentication.Config{
			Issuer:        specs.OIDCIssuer,
			JWKSURL:       specs.OIDCJWKSURL,
			ClientID:      specs.OIDCClientID,
			RequiredScope: specs.OIDCRequiredScope,
		},
		tracer,
		monitor,
		logger,
	)
}
