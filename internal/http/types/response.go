// Copyright 2026 Canonical Ltd.
// SPDX-License-Identifier: AGPL-3.0

package types

import (
	"encoding/json"
	"errors"
	"net/http"

	"github.com/indevian-dev/TIKTAK-MONOREPO-sub000/internal/logging"
	"github.com/indevian-dev/TIKTAK-MONOREPO-sub000/internal/types"
)

// Response is the envelope of every API response.
type Response struct {
	Success bool   `json:"success"`
	Data    any    `json:"data,omitempty"`
	Error   string `json:"error,omitempty"`
	Code    string `json:"code,omitempty"`
}

type errorMapping struct {
	err    error
	status int
	code   string
}

var errorMappings = []errorMapping{
	{types.ErrNotFound, http.StatusNotFound, "not_found"},
	{types.ErrAccountNotFound, http.StatusNotFound, "account_not_found"},
	{types.ErrInvalidType, http.StatusBadRequest, "invalid_type"},
	{types.ErrInvalidInput, http.StatusBadRequest, "invalid_input"},
	{types.ErrUnknownRole, http.StatusBadRequest, "unknown_role"},
	{types.ErrAlreadyEnrolled, http.StatusConflict, "already_enrolled"},
	{types.ErrAlreadyMember, http.StatusConflict, "already_member"},
	{types.ErrAlreadyProcessed, http.StatusConflict, "already_processed"},
	{types.ErrConflict, http.StatusConflict, "conflict"},
	{types.ErrForbidden, http.StatusForbidden, "forbidden"},
	{types.ErrExpired, http.StatusGone, "expired"},
	{types.ErrTransactionFailed, http.StatusInternalServerError, "transaction_failed"},
}

// ErrorStatus maps an error onto its HTTP status and machine readable code.
// Errors outside the taxonomy are reported as internal errors.
func ErrorStatus(err error) (int, string) {
	for _, m := range errorMappings {
		if errors.Is(err, m.err) {
			return m.status, m.code
		}
	}
	return http.StatusInternalServerError, "internal"
}

func WriteJSON(w http.ResponseWriter, status int, body any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(body)
}

func WriteData(w http.ResponseWriter, status int, data any) {
	WriteJSON(w, status, Response{Success: true, Data: data})
}

// WriteError never exposes the message of errors outside the taxonomy.
func WriteError(w http.ResponseWriter, err error) {
	status, code := ErrorStatus(err)

	message := err.Error()
	if code == "internal" || code == "transaction_failed" {
		message = http.StatusText(status)
	}

	WriteErrorCode(w, status, code, message)
}

func WriteErrorCode(w http.ResponseWriter, status int, code, message string) {
	WriteJSON(w, status, Response{Success: false, Error: message, Code: code})
}

// WriteServiceError writes err and logs it when it is reported as a server failure.
func WriteServiceError(w http.ResponseWriter, logger logging.LoggerInterface, op string, err error) {
	if status, _ := ErrorStatus(err); status >= http.StatusInternalServerError {
		logger.Errorf("%s: %v", op, err)
	}

	WriteError(w, err)
}
