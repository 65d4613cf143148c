// Copyright 2026 Canonical Ltd.
// SPDX-License-Identifier: AGPL-3.0

// Package memory is an in-process StorageInterface enforcing the same
// constraints as the postgres schema. Transactions are serialized and roll back
// by restoring a snapshot; writes made outside a transaction while one is open
// are lost if it rolls back.
package memory

import (
	"context"
	"fmt"
	"sync"
	"time"

	"github.com/google/uuid"

	"github.com/indevian-dev/TIKTAK-MONOREPO-sub000/internal/logging"
	"github.com/indevian-dev/TIKTAK-MONOREPO-sub000/internal/monitoring"
	"github.com/indevian-dev/TIKTAK-MONOREPO-sub000/internal/storage"
	"github.com/indevian-dev/TIKTAK-MONOREPO-sub000/internal/tracing"
	"github.com/indevian-dev/TIKTAK-MONOREPO-sub000/internal/types"
)

var _ storage.StorageInterface = (*Store)(nil)

type txKey struct{}

type state struct {
	workspaces  map[string]types.Workspace
	accesses    map[string]types.Access
	roles       map[string]types.Role
	invitations map[string]types.Invitation
}

func (s *state) clone() *state {
	c := &state{
		workspaces:  make(map[string]types.Workspace, len(s.workspaces)),
		accesses:    make(map[string]types.Access, len(s.accesses)),
		roles:       make(map[string]types.Role, len(s.roles)),
		invitations: make(map[string]types.Invitation, len(s.invitations)),
	}
	for k, v := range s.workspaces {
		c.workspaces[k] = v
	}
	for k, v := range s.accesses {
		c.accesses[k] = v
	}
	for k, v := range s.roles {
		c.roles[k] = v
	}
	for k, v := range s.invitations {
		c.invitations[k] = v
	}
	return c
}

type Store struct {
	mu   sync.RWMutex
	txMu sync.Mutex
	data *state

	now func() time.Time

	tracer  tracing.TracingInterface
	monitor monitoring.MonitorInterface
	logger  logging.LoggerInterface
}

// WithTx serializes fn against other transactions and restores the previous
// state when fn fails. Nested calls join the outer transaction.
func (s *Store) WithTx(ctx context.Context, fn func(context.Context) error) error {
	ctx, span := s.tracer.Start(ctx, "memory.Store.WithTx")
	defer span.End()

	if ctx.Value(txKey{}) != nil {
		return fn(ctx)
	}

	s.txMu.Lock()
	defer s.txMu.Unlock()

	s.mu.RLock()
	snapshot := s.data.clone()
	s.mu.RUnlock()

	if err := fn(context.WithValue(ctx, txKey{}, true)); err != nil {
		s.mu.Lock()
		s.data = snapshot
		s.mu.Unlock()
		return err
	}

	return nil
}

func (s *Store) newID() (string, error) {
	id, err := uuid.NewV7()
	if err != nil {
		return "", fmt.Errorf("failed to generate ID: %w", err)
	}
	return id.String(), nil
}

func (s *Store) seedRoles() {
	for _, r := range types.DefaultRoles() {
		id, err := s.newID()
		if err != nil {
			s.logger.Errorf("failed to seed role %s: %v", r.Name, err)
			continue
		}
		r.ID = id
		r.CreatedAt = s.now()
		r.UpdatedAt = r.CreatedAt
		s.data.roles[id] = r
	}
}

// NewStore returns a store seeded with the default roles. A nil clock defaults to time.Now.
func NewStore(now func() time.Time, tracer tracing.TracingInterface, monitor monitoring.MonitorInterface, logger logging.LoggerInterface) *Store {
	s := new(Store)

	s.data = &state{
		workspaces:  make(map[string]types.Workspace),
		accesses:    make(map[string]types.Access),
		roles:       make(map[string]types.Role),
		invitations: make(map[string]types.Invitation),
	}

	s.now = now
	if s.now == nil {
		s.now = time.Now
	}

	s.tracer = tracer
	s.monitor = monitor
	s.logger = logger

	s.seedRoles()

	return s
}
