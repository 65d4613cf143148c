// Copyright 2026 Canonical Ltd.
// SPDX-License-Identifier: AGPL-3.0

package config

import (
	"time"
)

// EnvSpec is the basic environment configuration setup needed for the app to start
type EnvSpec struct {
	OtelGRPCEndpoint string `envconfig:"otel_grpc_endpoint"`
	OtelHTTPEndpoint string `envconfig:"otel_http_endpoint"`
	TracingEnabled   bool   `envconfig:"tracing_enabled" default:"true"`

	LogLevel string `envconfig:"log_level" default:"error"`
	Debug    bool   `envconfig:"debug" default:"false"`

	Port           int      `envconfig:"port" default:"8080"`
	AllowedOrigins []string `envconfig:"allowed_origins" default:"*"`
	WebhookAPIKey  string   `envconfig:"webhook_api_key"`

	StorageBackend string `envconfig:"storage_backend" default:"postgres"`

	DSN string `envconfig:"DSN"`

	DBMaxConns        int32         `envconfig:"db_max_conns" default:"25"`
	DBMinConns        int32         `envconfig:"db_min_conns" default:"2"`
	DBMaxConnLifetime time.Duration `envconfig:"db_max_conn_lifetime" default:"1h"`
	DBMaxConnIdleTime time.Duration `envconfig:"db_max_conn_idle_time" default:"30m"`

	KratosAdminURL string `envconfig:"kratos_admin_url"`

	InvitationLifetime time.Duration `envconfig:"invitation_lifetime" default:"168h"`

	RedisURL    string        `envconfig:"redis_url"`
	TagCacheTTL time.Duration `envconfig:"tag_cache_ttl" default:"10m"`

	NotifierBackend  string        `envconfig:"notifier_backend" default:"noop"`
	RabbitMQURL      string        `envconfig:"rabbitmq_url"`
	RabbitMQExchange string        `envconfig:"rabbitmq_exchange" default:"workspace.notifications"`
	KafkaBrokers     []string      `envconfig:"kafka_brokers"`
	KafkaTopic       string        `envconfig:"kafka_topic" default:"workspace.notifications"`
	NotifierTimeout  time.Duration `envconfig:"notifier_timeout" default:"5s"`

	AuthenticationEnabled bool   `envconfig:"authentication_enabled" default:"true"`
	OIDCIssuer            string `envconfig:"oidc_issuer"`
	OIDCJWKSURL           string `envconfig:"oidc_jwks_url"`
	OIDCClientID          string `envconfig:"oidc_client_id"`
	OIDCRequiredScope     string `envconfig:"oidc_required_scope"`

	AuthorizationEnabled bool   `envconfig:"authorization_enabled" default:"false"`
	OpenfgaApiScheme     string `envconfig:"openfga_api_scheme" default:""`
	OpenfgaApiHost       string `envconfig:"openfga_api_host"`
	OpenfgaApiToken      string `envconfig:"openfga_api_token"`
	OpenfgaStoreId       string `envconfig:"openfga_store_id"`
	OpenfgaModelId       string `envconfig:"openfga_authorization_model_id" default:""`
}
