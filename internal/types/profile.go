// Copyright 2026 Canonical Ltd.
// SPDX-License-Identifier: AGPL-3.0

package types

import (
	"database/sql/driver"
	"encoding/json"
	"fmt"
	"slices"
	"strings"

	"github.com/go-playground/validator/v10"
)

var validate = validator.New(validator.WithRequiredStructEnabled())

// Profile is the structured document stored on a workspace.
type Profile struct {
	DisplayName            string   `json:"displayName,omitempty" validate:"omitempty,max=120"`
	GradeLevel             string   `json:"gradeLevel,omitempty" validate:"omitempty,max=32"`
	Description            string   `json:"description,omitempty" validate:"omitempty,max=4000"`
	Email                  string   `json:"email,omitempty" validate:"omitempty,email"`
	Phone                  string   `json:"phone,omitempty" validate:"omitempty,max=32"`
	Website                string   `json:"website,omitempty" validate:"omitempty,url"`
	Address                string   `json:"address,omitempty" validate:"omitempty,max=255"`
	Tags                   []string `json:"tags,omitempty" validate:"max=20,dive,min=1,max=40"`
	ProviderTrialDaysCount int      `json:"providerTrialDaysCount,omitempty" validate:"min=0,max=365"`
}

// Validate checks the document shape before it is written.
func (p *Profile) Validate() error {
	if err := validate.Struct(p); err != nil {
		return fmt.Errorf("%w: profile: %v", ErrInvalidInput, err)
	}
	return nil
}

// Normalize trims tags, drops empty ones and removes duplicates keeping the first occurrence.
func (p *Profile) Normalize() {
	if len(p.Tags) == 0 {
		return
	}

	tags := make([]string, 0, len(p.Tags))
	for _, t := range p.Tags {
		t = strings.TrimSpace(t)
		if t == "" || slices.Contains(tags, t) {
			continue
		}
		tags = append(tags, t)
	}
	p.Tags = tags
}

func (p Profile) Value() (driver.Value, error) {
	b, err := json.Marshal(p)
	if err != nil {
		return nil, err
	}
	return string(b), nil
}

func (p *Profile) Scan(src any) error {
	switch v := src.(type) {
	case nil:
		*p = Profile{}
		return nil
	case []byte:
		return json.Unmarshal(v, p)
	case string:
		return json.Unmarshal([]byte(v), p)
	default:
		return fmt.Errorf("unsupported profile source type %T", src)
	}
}

// Permissions is an ordered set of capability strings.
type Permissions []string

func (p Permissions) Has(permission string) bool {
	return slices.Contains(p, permission)
}

// With returns a copy of the set including permission.
func (p Permissions) With(permission string) Permissions {
	out := slices.Clone(p)
	if out == nil {
		out = Permissions{}
	}
	if !out.Has(permission) {
		out = append(out, permission)
	}
	return out
}

// Without returns a copy of the set excluding permission.
func (p Permissions) Without(permission string) Permissions {
	out := make(Permissions, 0, len(p))
	for _, q := range p {
		if q != permission {
			out = append(out, q)
		}
	}
	return out
}

// Dedup returns the set with duplicates and blank entries removed.
func (p Permissions) Dedup() Permissions {
	out := make(Permissions, 0, len(p))
	for _, q := range p {
		q = strings.TrimSpace(q)
		if q == "" || out.Has(q) {
			continue
		}
		out = append(out, q)
	}
	return out
}

func (p Permissions) Value() (driver.Value, error) {
	if p == nil {
		p = Permissions{}
	}
	b, err := json.Marshal(p)
	if err != nil {
		return nil, err
	}
	return string(b), nil
}

func (p *Permissions) Scan(src any) error {
	switch v := src.(type) {
	case nil:
		*p = Permissions{}
		return nil
	case []byte:
		return json.Unmarshal(v, p)
	case string:
		return json.Unmarshal([]byte(v), p)
	default:
		return fmt.Errorf("unsupported permissions source type %T", src)
	}
}
