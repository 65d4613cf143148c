// Copyright 2026 Canonical Ltd.
// SPDX-License-Identifier: AGPL-3.0

package storage

import (
	"errors"
	"fmt"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgconn"

	"github.com/indevian-dev/TIKTAK-MONOREPO-sub000/internal/types"
)

// Sentinel errors for storage operations.
var (
	ErrNotFound            = errors.New("resource not found")
	ErrDuplicateKey        = errors.New("duplicate key violation")
	ErrForeignKeyViolation = errors.New("foreign key violation")
)

// PostgreSQL error codes
const (
	pgErrCodeUniqueViolation     = "23505"
	pgErrCodeForeignKeyViolation = "23503"
)

// IsDuplicateKeyError checks if the error is a PostgreSQL unique constraint violation.
func IsDuplicateKeyError(err error) bool {
	var pgErr *pgconn.PgError
	if errors.As(err, &pgErr) {
		return pgErr.Code == pgErrCodeUniqueViolation
	}
	return false
}

// translateWriteError maps constraint violations onto the storage sentinels.
func translateWriteError(err error, op string) error {
	switch {
	case IsDuplicateKeyError(err):
		return WrapDuplicateKeyError(err, op)
	case IsForeignKeyViolation(err):
		return WrapForeignKeyError(err, op)
	default:
		return fmt.Errorf("failed to %s: %w", op, err)
	}
}

// DomainError translates the storage sentinels into the domain taxonomy.
// Duplicate keys become onDuplicate since their meaning depends on the caller;
// anything else is returned unchanged.
func DomainError(err error, onDuplicate error) error {
	switch {
	case err == nil:
		return nil
	case errors.Is(err, ErrNotFound):
		return fmt.Errorf("%w: %v", types.ErrNotFound, err)
	case errors.Is(err, ErrDuplicateKey):
		return fmt.Errorf("%w: %v", onDuplicate, err)
	case errors.Is(err, ErrForeignKeyViolation):
		return fmt.Errorf("%w: %v", types.ErrConflict, err)
	default:
		return err
	}
}

// TxError reports a failed transaction. Taxonomy errors pass through so callers
// keep their meaning; anything else becomes ErrTransactionFailed.
func TxError(err error) error {
	if err == nil || types.IsDomainError(err) {
		return err
	}
	return fmt.Errorf("%w: %v", types.ErrTransactionFailed, err)
}

// validID reports whether id can be compared against a uuid column;
// anything else cannot match a row.
func validID(id string) bool {
	return uuid.Validate(id) == nil
}

// IsForeignKeyViolation checks if the error is a PostgreSQL foreign key violation.
func IsForeignKeyViolation(err error) bool {
	var pgErr *pgconn.PgError
	if errors.As(err, &pgErr) {
		return pgErr.Code == pgErrCodeForeignKeyViolation
	}
	return false
}

// WrapDuplicateKeyError wraps a duplicate key error with context about which constraint was violated.
func WrapDuplicateKeyError(err error, context string) error {
	if !IsDuplicateKeyError(err) {
		return err
	}
	return fmt.Errorf("%s: %w", context, ErrDuplicateKey)
}

// WrapForeignKeyError wraps a foreign key violation with context.
func WrapForeignKeyError(err error, context string) error {
	if !IsForeignKeyViolation(err) {
		return err
	}
	return fmt.Errorf("%s: %w", context, ErrForeignKeyViolation)
}
