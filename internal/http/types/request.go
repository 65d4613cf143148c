// Copyright 2026 Canonical Ltd.
// SPDX-License-Identifier: AGPL-3.0

package types

import (
	"encoding/json"
	"fmt"
	"net/http"
	"strconv"

	"github.com/go-playground/validator/v10"

	"github.com/indevian-dev/TIKTAK-MONOREPO-sub000/internal/types"
)

const maxBodyBytes = 1 << 20

var validate = validator.New(validator.WithRequiredStructEnabled())

// DecodeAndValidate reads a JSON body into dst and runs its validate tags.
// Failures wrap types.ErrInvalidInput.
func DecodeAndValidate(r *http.Request, dst any) error {
	decoder := json.NewDecoder(http.MaxBytesReader(nil, r.Body, maxBodyBytes))
	decoder.DisallowUnknownFields()

	if err := decoder.Decode(dst); err != nil {
		return fmt.Errorf("%w: malformed body: %v", types.ErrInvalidInput, err)
	}

	if err := validate.Struct(dst); err != nil {
		return fmt.Errorf("%w: %v", types.ErrInvalidInput, err)
	}

	return nil
}

// ParsePagination reads the page and size query parameters; missing or
// malformed values fall back to the storage defaults.
func ParsePagination(r *http.Request) types.Pagination {
	q := r.URL.Query()

	page, _ := strconv.ParseInt(q.Get("page"), 10, 64)
	size, _ := strconv.ParseInt(q.Get("size"), 10, 64)

	return types.Pagination{Page: page, Size: size}
}

// ParseBool returns nil when the query parameter is absent or malformed.
func ParseBool(r *http.Request, name string) *bool {
	v, err := strconv.ParseBool(r.URL.Query().Get(name))
	if err != nil {
		return nil
	}
	return &v
}
