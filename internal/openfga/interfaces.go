// Copyright 2026 Canonical Ltd.
// SPDX-License-Identifier: AGPL-3.0

package openfga

import "context"

type OpenFGAClientInterface interface {
	Check(ctx context.Context, user, relation, object string, contextualTuples ...Tuple) (bool, error)
	WriteTuples(context.Context, ...Tuple) error
	DeleteTuples(context.Context, ...Tuple) error
}
