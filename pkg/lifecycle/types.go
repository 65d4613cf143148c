// Copyright 2026 Canonical Ltd.
// SPDX-License-Identifier: AGPL-3.0

package lifecycle

import "github.com/indevian-dev/TIKTAK-MONOREPO-sub000/internal/types"

type NewWorkspace struct {
	Title   string              `json:"title" validate:"required,max=255"`
	Type    types.WorkspaceType `json:"type" validate:"required"`
	Profile types.Profile       `json:"profile"`
	CityID  string              `json:"cityId" validate:"max=64"`
}

// ProviderApplication describes a provider awaiting staff evaluation. An empty
// Type means provider.
type ProviderApplication struct {
	Title   string              `json:"title" validate:"required,max=255"`
	Type    types.WorkspaceType `json:"type"`
	Profile types.Profile       `json:"profile"`
	CityID  string              `json:"cityId" validate:"max=64"`
}

type NewStudentWorkspace struct {
	DisplayName string `json:"displayName" validate:"required,max=120"`
	GradeLevel  string `json:"gradeLevel" validate:"max=32"`
	ProviderID  string `json:"providerId" validate:"required"`
}

type ParentWorkspace struct {
	StudentWorkspaceIDs []string `json:"studentWorkspaceIds" validate:"required,min=1,dive,required"`
}

type StaffMember struct {
	AccountID   string `json:"accountId" validate:"required"`
	WorkspaceID string `json:"workspaceId" validate:"required"`
	AccessRole  string `json:"accessRole" validate:"required"`
}
