// Copyright 2026 Canonical Ltd.
// SPDX-License-Identifier: AGPL-3.0

package webhooks

// KratosIdentity is the subset of the identity posted by the Kratos
// after-registration web hook.
type KratosIdentity struct {
	ID     string       `json:"id" validate:"required"`
	Traits KratosTraits `json:"traits"`
}

type KratosTraits struct {
	Email string `json:"email" validate:"required,email"`
}
