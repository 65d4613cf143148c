// Copyright 2026 Canonical Ltd.
// SPDX-License-Identifier: AGPL-3.0

package cmd

import (
	"bytes"
	"strings"
	"testing"

	"github.com/spf13/cobra"

	"github.com/indevian-dev/TIKTAK-MONOREPO-sub000/internal/config"
	"github.com/indevian-dev/TIKTAK-MONOREPO-sub000/internal/logging"
	"github.com/indevian-dev/TIKTAK-MONOREPO-sub000/internal/monitoring"
	"github.com/indevian-dev/TIKTAK-MONOREPO-sub000/internal/storage/memory"
	"github.com/indevian-dev/TIKTAK-MONOREPO-sub000/internal/tracing"
	"github.com/indevian-dev/TIKTAK-MONOREPO-sub000/internal/version"
)

func TestMigrateArgs(t *testing.T) {
	tests := []struct {
		args    []string
		wantErr bool
	}{
		{args: nil},
		{args: []string{"up"}},
		{args: []string{"status"}},
		{args: []string{"check"}},
		{args: []string{"down", "3"}},
		{args: []string{"sideways"}, wantErr: true},
		{args: []string{"up", "3"}, wantErr: true},
		{args: []string{"down", "-1"}, wantErr: true},
		{args: []string{"down", "x"}, wantErr: true},
		{args: []string{"down", "1", "2"}, wantErr: true},
	}

	for _, test := range tests {
		t.Run(strings.Join(test.args, " "), func(t *testing.T) {
			err := customValidArgs()(&cobra.Command{}, test.args)
			if (err != nil) != test.wantErr {
				t.Fatalf("expected error %v, got %v", test.wantErr, err)
			}
		})
	}
}

func TestVersionCommand(t *testing.T) {
	out := new(bytes.Buffer)
	versionCmd.SetOut(out)

	versionCmd.Run(versionCmd, nil)

	if !strings.Contains(out.String(), version.Version) {
		t.Fatalf("expected version in output, got %q", out.String())
	}
}

func TestNewStorage(t *testing.T) {
	logger := logging.NewNoopLogger()
	tracer := tracing.NewNoopTracer()
	monitor := monitoring.NewNoopMonitor("test", logger)

	s, closeStorage, err := newStorage(&config.EnvSpec{StorageBackend: backendMemory}, tracer, monitor, logger)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	defer closeStorage()

	if _, ok := s.(*memory.Store); !ok {
		t.Fatalf("expected memory store, got %T", s)
	}

	if _, _, err := newStorage(&config.EnvSpec{StorageBackend: "cassandra"}, tracer, monitor, logger); err == nil {
		t.Fatalf("expected unknown backend to fail")
	}
}

func TestNewPublisher(t *testing.T) {
	logger := logging.NewNoopLogger()

	tests := []struct {
		name    string
		specs   config.EnvSpec
		wantErr bool
	}{
		{name: "default", specs: config.EnvSpec{}},
		{name: "noop", specs: config.EnvSpec{NotifierBackend: notifierNoop}},
		{name: "kafka", specs: config.EnvSpec{NotifierBackend: notifierKafka, KafkaBrokers: []string{"localhost:9092"}, KafkaTopic: "t"}},
		{name: "kafka without brokers", specs: config.EnvSpec{NotifierBackend: notifierKafka}, wantErr: true},
		{name: "unknown", specs: config.EnvSpec{NotifierBackend: "pigeon"}, wantErr: true},
	}

	for _, test := range tests {
		t.Run(test.name, func(t *testing.T) {
			p, err := newPublisher(&test.specs, logger)
			if (err != nil) != test.wantErr {
				t.Fatalf("expected error %v, got %v", test.wantErr, err)
			}

			if err == nil {
				_ = p.Close()
			}
		})
	}
}

func TestNewCache(t *testing.T) {
	logger := logging.NewNoopLogger()
	tracer := tracing.NewNoopTracer()
	monitor := monitoring.NewNoopMonitor("test", logger)

	if c := newCache(&config.EnvSpec{}, tracer, monitor, logger); c == nil {
		t.Fatalf("expected a cache")
	}
}
