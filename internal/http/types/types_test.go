// Copyright 2026 Canonical Ltd.
// SPDX-License-Identifier: AGPL-3.0

package types

import (
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/indevian-dev/TIKTAK-MONOREPO-sub000/internal/types"
)

func TestErrorStatus(t *testing.T) {
	tests := []struct {
		err    error
		status int
		code   string
	}{
		{err: types.ErrNotFound, status: http.StatusNotFound, code: "not_found"},
		{err: fmt.Errorf("provider: %w", types.ErrInvalidType), status: http.StatusBadRequest, code: "invalid_type"},
		{err: types.ErrAlreadyEnrolled, status: http.StatusConflict, code: "already_enrolled"},
		{err: types.ErrForbidden, status: http.StatusForbidden, code: "forbidden"},
		{err: types.ErrExpired, status: http.StatusGone, code: "expired"},
		{err: errors.New("pq: connection refused"), status: http.StatusInternalServerError, code: "internal"},
	}

	for _, test := range tests {
		t.Run(test.code, func(t *testing.T) {
			status, code := ErrorStatus(test.err)
			if status != test.status || code != test.code {
				t.Fatalf("expected %d/%s, got %d/%s", test.status, test.code, status, code)
			}
		})
	}
}

func TestWriteErrorHidesInternalMessages(t *testing.T) {
	w := httptest.NewRecorder()
	WriteError(w, errors.New("dial tcp 10.0.0.1:5432: refused"))

	var body Response
	if err := json.NewDecoder(w.Body).Decode(&body); err != nil {
		t.Fatalf("failed to decode body: %v", err)
	}

	if body.Success || body.Code != "internal" || strings.Contains(body.Error, "10.0.0.1") {
		t.Fatalf("unexpected body %+v", body)
	}
}

func TestDecodeAndValidate(t *testing.T) {
	type payload struct {
		Name string `json:"name" validate:"required"`
	}

	tests := []struct {
		name  string
		body  string
		valid bool
	}{
		{name: "valid", body: `{"name":"x"}`, valid: true},
		{name: "missing field", body: `{}`, valid: false},
		{name: "unknown field", body: `{"name":"x","extra":1}`, valid: false},
		{name: "malformed", body: `{`, valid: false},
	}

	for _, test := range tests {
		t.Run(test.name, func(t *testing.T) {
			r := httptest.NewRequest(http.MethodPost, "/", strings.NewReader(test.body))

			var p payload
			err := DecodeAndValidate(r, &p)
			if test.valid && err != nil {
				t.Fatalf("unexpected error: %v", err)
			}
			if !test.valid && !errors.Is(err, types.ErrInvalidInput) {
				t.Fatalf("expected invalid input, got %v", err)
			}
		})
	}
}

func TestParsePagination(t *testing.T) {
	r := httptest.NewRequest(http.MethodGet, "/?page=2&size=abc", nil)
	p := ParsePagination(r)

	if p.Page != 2 || p.Size != 0 {
		t.Fatalf("unexpected pagination %+v", p)
	}
}
