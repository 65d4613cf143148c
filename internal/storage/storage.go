// Copyright 2026 Canonical Ltd.
// SPDX-License-Identifier: AGPL-3.0

package storage

import (
	"context"
	"database/sql"
	"strings"
	"time"

	"github.com/indevian-dev/TIKTAK-MONOREPO-sub000/internal/db"
	"github.com/indevian-dev/TIKTAK-MONOREPO-sub000/internal/logging"
	"github.com/indevian-dev/TIKTAK-MONOREPO-sub000/internal/monitoring"
	"github.com/indevian-dev/TIKTAK-MONOREPO-sub000/internal/tracing"
)

var _ StorageInterface = (*Storage)(nil)

// Storage is the postgres implementation of StorageInterface.
type Storage struct {
	db db.DBClientInterface

	logger  logging.LoggerInterface
	tracer  tracing.TracingInterface
	monitor monitoring.MonitorInterface
}

// WithTx delegates to the database client: statements issued with the returned
// context share one lazily started read-committed transaction.
func (s *Storage) WithTx(ctx context.Context, fn func(context.Context) error) error {
	ctx, span := s.tracer.Start(ctx, "storage.Storage.WithTx")
	defer span.End()

	return s.db.WithTx(ctx, fn)
}

type scanner interface {
	Scan(dest ...any) error
}

func joinColumns(cols []string) string {
	return strings.Join(cols, ", ")
}

func nullString(s string) sql.NullString {
	return sql.NullString{String: s, Valid: s != ""}
}

func nullTime(t *time.Time) sql.NullTime {
	if t == nil {
		return sql.NullTime{}
	}
	return sql.NullTime{Time: *t, Valid: true}
}

func timePtr(t sql.NullTime) *time.Time {
	if !t.Valid {
		return nil
	}
	v := t.Time
	return &v
}

func NewStorage(c db.DBClientInterface, tracer tracing.TracingInterface, monitor monitoring.MonitorInterface, logger logging.LoggerInterface) *Storage {
	s := new(Storage)

	s.db = c

	s.logger = logger
	s.tracer = tracer
	s.monitor = monitor

	return s
}
