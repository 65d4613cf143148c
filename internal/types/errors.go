// Copyright 2026 Canonical Ltd.
// SPDX-License-Identifier: AGPL-3.0

package types

import "errors"

var (
	ErrNotFound          = errors.New("not found")
	ErrInvalidType       = errors.New("invalid workspace type")
	ErrInvalidInput      = errors.New("invalid input")
	ErrConflict          = errors.New("conflict")
	ErrAlreadyEnrolled   = errors.New("already enrolled")
	ErrAlreadyMember     = errors.New("already a member")
	ErrUnknownRole       = errors.New("unknown role")
	ErrAccountNotFound   = errors.New("account not found")
	ErrForbidden         = errors.New("forbidden")
	ErrAlreadyProcessed  = errors.New("invitation already processed")
	ErrExpired           = errors.New("invitation expired")
	ErrTransactionFailed = errors.New("transaction failed")
)

var domainErrors = []error{
	ErrNotFound,
	ErrInvalidType,
	ErrInvalidInput,
	ErrConflict,
	ErrAlreadyEnrolled,
	ErrAlreadyMember,
	ErrUnknownRole,
	ErrAccountNotFound,
	ErrForbidden,
	ErrAlreadyProcessed,
	ErrExpired,
	ErrTransactionFailed,
}

// IsDomainError reports whether err wraps one of the taxonomy errors above.
func IsDomainError(err error) bool {
	for _, e := range domainErrors {
		if errors.Is(err, e) {
			return true
		}
	}
	return false
}
