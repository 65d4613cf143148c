// Copyright 2026 Canonical Ltd.
// SPDX-License-Identifier: AGPL-3.0

package kratos

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"strings"

	ory "github.com/ory/client-go"

	"github.com/indevian-dev/TIKTAK-MONOREPO-sub000/internal/logging"
	"github.com/indevian-dev/TIKTAK-MONOREPO-sub000/internal/monitoring"
	"github.com/indevian-dev/TIKTAK-MONOREPO-sub000/internal/tracing"
	"github.com/indevian-dev/TIKTAK-MONOREPO-sub000/internal/types"
)

var ErrIdentityNotFound = errors.New("identity not found")

var _ DirectoryInterface = (*Client)(nil)

// Client reads accounts through the Kratos admin API.
type Client struct {
	client  *ory.APIClient
	tracer  tracing.TracingInterface
	monitor monitoring.MonitorInterface
	logger  logging.LoggerInterface
}

func (c *Client) GetAccountByEmail(ctx context.Context, email string) (*types.Account, error) {
	ctx, span := c.tracer.Start(ctx, "kratos.Client.GetAccountByEmail")
	defer span.End()

	// NOTE: we are setting an empty page token because of https://github.com/ory/sdk/issues/461
	ids, r, err := c.client.IdentityAPI.ListIdentities(ctx).CredentialsIdentifier(strings.ToLower(email)).PageToken("").Execute()
	c.recordAvailability(r, err)
	if err != nil {
		if r != nil && r.StatusCode == http.StatusNotFound {
			return nil, ErrIdentityNotFound
		}
		return nil, fmt.Errorf("failed to list identities: %w", err)
	}

	if len(ids) == 0 {
		return nil, ErrIdentityNotFound
	}

	return accountFromIdentity(&ids[0]), nil
}

func (c *Client) GetAccount(ctx context.Context, id string) (*types.Account, error) {
	ctx, span := c.tracer.Start(ctx, "kratos.Client.GetAccount")
	defer span.End()

	identity, r, err := c.client.IdentityAPI.GetIdentity(ctx, id).Execute()
	c.recordAvailability(r, err)
	if err != nil {
		if r != nil && r.StatusCode == http.StatusNotFound {
			return nil, ErrIdentityNotFound
		}
		return nil, fmt.Errorf("failed to get identity: %w", err)
	}

	return accountFromIdentity(identity), nil
}

func (c *Client) recordAvailability(r *http.Response, err error) {
	available := 1.0
	if err != nil && (r == nil || r.StatusCode >= http.StatusInternalServerError) {
		available = 0.0
	}

	if mErr := c.monitor.SetDependencyAvailability(map[string]string{"component": "kratos"}, available); mErr != nil {
		c.logger.Debugf("failed to record kratos availability: %v", mErr)
	}
}

// accountFromIdentity reads the email and name traits of the default identity schema.
func accountFromIdentity(identity *ory.Identity) *types.Account {
	account := &types.Account{ID: identity.Id}

	traits, ok := identity.Traits.(map[string]interface{})
	if !ok {
		return account
	}

	if email, ok := traits["email"].(string); ok {
		account.Email = email
	}

	switch name := traits["name"].(type) {
	case string:
		account.Name = name
	case map[string]interface{}:
		first, _ := name["first"].(string)
		last, _ := name["last"].(string)
		account.Name = strings.TrimSpace(first + " " + last)
	}

	return account
}

func NewClient(kratosAdminURL string, tracer tracing.TracingInterface, monitor monitoring.MonitorInterface, logger logging.LoggerInterface) *Client {
	conf := ory.NewConfiguration()
	conf.Servers = ory.ServerConfigurations{{URL: kratosAdminURL}}

	return &Client{
		client:  ory.NewAPIClient(conf),
		tracer:  tracer,
		monitor: monitor,
		logger:  logger,
	}
}
