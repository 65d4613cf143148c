// Copyright 2026 Canonical Ltd.
// SPDX-License-Identifier: AGPL-3.0

package kratos

import (
	"context"
	"strings"
	"sync"

	"github.com/indevian-dev/TIKTAK-MONOREPO-sub000/internal/types"
)

var _ DirectoryInterface = (*StaticDirectory)(nil)

// StaticDirectory is an in-memory account directory used with the memory storage backend.
type StaticDirectory struct {
	mu       sync.RWMutex
	accounts map[string]types.Account
}

func (d *StaticDirectory) Add(account types.Account) {
	d.mu.Lock()
	defer d.mu.Unlock()

	d.accounts[account.ID] = account
}

func (d *StaticDirectory) GetAccountByEmail(_ context.Context, email string) (*types.Account, error) {
	d.mu.RLock()
	defer d.mu.RUnlock()

	for _, a := range d.accounts {
		if strings.EqualFold(a.Email, email) {
			return &a, nil
		}
	}

	return nil, ErrIdentityNotFound
}

func (d *StaticDirectory) GetAccount(_ context.Context, id string) (*types.Account, error) {
	d.mu.RLock()
	defer d.mu.RUnlock()

	a, ok := d.accounts[id]
	if !ok {
		return nil, ErrIdentityNotFound
	}

	return &a, nil
}

func NewStaticDirectory(accounts ...types.Account) *StaticDirectory {
	d := new(StaticDirectory)
	d.accounts = make(map[string]types.Account, len(accounts))

	for _, a := range accounts {
		d.accounts[a.ID] = a
	}

	return d
}
