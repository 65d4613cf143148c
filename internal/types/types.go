// Copyright 2026 Canonical Ltd.
// SPDX-License-Identifier: AGPL-3.0

package types

import (
	"fmt"
	"time"
)

// SystemAccountID is the identity recorded when the service itself resolves
// an entity, e.g. when expired invitations are swept.
const SystemAccountID = "system"

type WorkspaceType string

const (
	WorkspaceTypePersonal WorkspaceType = "personal"
	WorkspaceTypeProvider WorkspaceType = "provider"
	WorkspaceTypeStaff    WorkspaceType = "staff"
	WorkspaceTypeStudent  WorkspaceType = "student"
	WorkspaceTypeParent   WorkspaceType = "parent"
)

var workspaceTypes = map[WorkspaceType]bool{
	WorkspaceTypePersonal: true,
	WorkspaceTypeProvider: true,
	WorkspaceTypeStaff:    true,
	WorkspaceTypeStudent:  true,
	WorkspaceTypeParent:   true,
}

func (t WorkspaceType) Valid() bool {
	return workspaceTypes[t]
}

// ParseWorkspaceType returns ErrInvalidType for anything outside the known set.
func ParseWorkspaceType(s string) (WorkspaceType, error) {
	t := WorkspaceType(s)
	if !t.Valid() {
		return "", fmt.Errorf("%w: %q", ErrInvalidType, s)
	}
	return t, nil
}

const (
	RoleManager       = "manager"
	RoleStudent       = "student"
	RoleParentMonitor = "parent_monitor"
	RoleStaffAdmin    = "staff_admin"
	RoleStaffEditor   = "staff_editor"
	RoleMember        = "member"
)

const PermissionMembersInvite = "members.invite"

const SubscriptionTierTrial = "trial"

// ownerRoles maps every workspace type to the role a direct edge must carry
// for its actor to count as the owner.
var ownerRoles = map[WorkspaceType]string{
	WorkspaceTypePersonal: RoleManager,
	WorkspaceTypeProvider: RoleManager,
	WorkspaceTypeStaff:    RoleManager,
	WorkspaceTypeParent:   RoleManager,
	WorkspaceTypeStudent:  RoleStudent,
}

// OwnerRole is the single lookup for owner-equivalent roles.
func OwnerRole(t WorkspaceType) (string, bool) {
	r, ok := ownerRoles[t]
	return r, ok
}

type Workspace struct {
	ID        string        `json:"id"`
	Type      WorkspaceType `json:"type"`
	Title     string        `json:"title"`
	Profile   Profile       `json:"profile"`
	CityID    string        `json:"cityId,omitempty"`
	IsActive  bool          `json:"isActive"`
	IsBlocked bool          `json:"isBlocked"`
	CreatedAt time.Time     `json:"createdAt"`
	UpdatedAt time.Time     `json:"updatedAt"`
}

// WorkspaceUpdate carries the fields of a partial update, nil means unchanged.
// A non-nil Profile replaces the whole document.
type WorkspaceUpdate struct {
	Title     *string  `json:"title,omitempty" validate:"omitempty,min=1,max=255"`
	Profile   *Profile `json:"profile,omitempty"`
	CityID    *string  `json:"cityId,omitempty"`
	IsActive  *bool    `json:"isActive,omitempty"`
	IsBlocked *bool    `json:"isBlocked,omitempty"`
}

func (u *WorkspaceUpdate) Empty() bool {
	return u.Title == nil && u.Profile == nil && u.CityID == nil && u.IsActive == nil && u.IsBlocked == nil
}

type WorkspaceFilter struct {
	IsActive  *bool
	IsBlocked *bool
	CityID    string
	Search    string
	Tag       string
}

type WorkspaceSort struct {
	Field string
	Desc  bool
}

const (
	SortCreatedAt = "created_at"
	SortUpdatedAt = "updated_at"
	SortTitle     = "title"
)

type Account struct {
	ID    string `json:"id"`
	Email string `json:"email"`
	Name  string `json:"name,omitempty"`
}

// Access is an edge granting an actor a role on a target workspace, reached via a workspace.
type Access struct {
	ID                string     `json:"id"`
	ActorAccountID    string     `json:"actorAccountId"`
	TargetWorkspaceID string     `json:"targetWorkspaceId"`
	ViaWorkspaceID    string     `json:"viaWorkspaceId"`
	AccessRole        string     `json:"accessRole"`
	SubscribedUntil   *time.Time `json:"subscribedUntil,omitempty"`
	SubscriptionTier  string     `json:"subscriptionTier,omitempty"`
	CreatedAt         time.Time  `json:"createdAt"`
}

// IsDirect reports whether the edge is a membership of the target itself.
func (a *Access) IsDirect() bool {
	return a.ViaWorkspaceID == a.TargetWorkspaceID
}

type Role struct {
	ID               string        `json:"id"`
	Name             string        `json:"name"`
	Permissions      Permissions   `json:"permissions"`
	ForWorkspaceType WorkspaceType `json:"forWorkspaceType,omitempty"`
	IsStaff          bool          `json:"isStaff"`
	CreatedAt        time.Time     `json:"createdAt"`
	UpdatedAt        time.Time     `json:"updatedAt"`
}

// AppliesTo reports whether the role may be used on workspaces of type t.
// Roles without a workspace type are unscoped.
func (r *Role) AppliesTo(t WorkspaceType) bool {
	return r.ForWorkspaceType == "" || r.ForWorkspaceType == t
}

type RoleUpdate struct {
	Name             *string        `json:"name,omitempty" validate:"omitempty,min=1,max=64"`
	Permissions      *Permissions   `json:"permissions,omitempty"`
	ForWorkspaceType *WorkspaceType `json:"forWorkspaceType,omitempty"`
	IsStaff          *bool          `json:"isStaff,omitempty"`
}

type InvitationState string

const (
	InvitationPending  InvitationState = "pending"
	InvitationApproved InvitationState = "approved"
	InvitationDeclined InvitationState = "declined"
)

type Invitation struct {
	ID                  string     `json:"id"`
	ForWorkspaceID      string     `json:"forWorkspaceId"`
	InvitedAccountID    string     `json:"invitedAccountId"`
	InvitedByAccountID  string     `json:"invitedByAccountId"`
	AccessRole          string     `json:"accessRole"`
	IsApproved          bool       `json:"isApproved"`
	IsDeclined          bool       `json:"isDeclined"`
	ExpireAt            time.Time  `json:"expireAt"`
	CreatedAt           time.Time  `json:"createdAt"`
	ResolvedAt          *time.Time `json:"resolvedAt,omitempty"`
	ResolvedByAccountID string     `json:"resolvedByAccountId,omitempty"`
}

func (i *Invitation) State() InvitationState {
	switch {
	case i.IsApproved:
		return InvitationApproved
	case i.IsDeclined:
		return InvitationDeclined
	default:
		return InvitationPending
	}
}

func (i *Invitation) IsPending() bool {
	return i.State() == InvitationPending
}

func (i *Invitation) IsExpired(now time.Time) bool {
	return !now.Before(i.ExpireAt)
}

type InvitationAction string

const (
	InvitationActionApprove InvitationAction = "approve"
	InvitationActionDecline InvitationAction = "decline"
)

// Member is an access edge projected together with its actor's account and,
// for enrollments, the workspace the actor reaches the target through.
type Member struct {
	AccessID         string     `json:"accessId"`
	AccountID        string     `json:"accountId"`
	Email            string     `json:"email"`
	Name             string     `json:"name,omitempty"`
	AccessRole       string     `json:"accessRole"`
	SubscribedUntil  *time.Time `json:"subscribedUntil,omitempty"`
	SubscriptionTier string     `json:"subscriptionTier,omitempty"`
	JoinedAt         time.Time  `json:"joinedAt"`
	Via              *Workspace `json:"via,omitempty"`
}

type ConnectedWorkspace struct {
	*Workspace
	RelationType string `json:"relationType"`
}

type OwnedConnected struct {
	Owned     []*Workspace          `json:"owned"`
	Connected []*ConnectedWorkspace `json:"connected"`
}

type Pagination struct {
	Page int64
	Size int64
}

type PageResult[T any] struct {
	Items []T   `json:"items"`
	Page  int64 `json:"page"`
	Size  int64 `json:"size"`
	Total int64 `json:"total"`
}

func NewPageResult[T any](items []T, page, size, total int64) *PageResult[T] {
	if items == nil {
		items = []T{}
	}
	return &PageResult[T]{Items: items, Page: page, Size: size, Total: total}
}
