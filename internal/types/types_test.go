// Copyright 2026 Canonical Ltd.
// SPDX-License-Identifier: AGPL-3.0

package types

import (
	"errors"
	"fmt"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseWorkspaceType(t *testing.T) {
	for _, valid := range []string{"personal", "provider", "staff", "student", "parent"} {
		wt, err := ParseWorkspaceType(valid)
		require.NoError(t, err)
		assert.Equal(t, WorkspaceType(valid), wt)
	}

	_, err := ParseWorkspaceType("school")
	assert.ErrorIs(t, err, ErrInvalidType)
}

func TestOwnerRoleCoversEveryType(t *testing.T) {
	for wt := range workspaceTypes {
		role, ok := OwnerRole(wt)
		assert.True(t, ok, "missing owner role for %s", wt)
		assert.NotEmpty(t, role)
	}

	role, _ := OwnerRole(WorkspaceTypeStudent)
	assert.Equal(t, RoleStudent, role)

	role, _ = OwnerRole(WorkspaceTypeParent)
	assert.Equal(t, RoleManager, role)

	_, ok := OwnerRole("unknown")
	assert.False(t, ok)
}

func TestAccessIsDirect(t *testing.T) {
	direct := Access{TargetWorkspaceID: "w1", ViaWorkspaceID: "w1"}
	linked := Access{TargetWorkspaceID: "w1", ViaWorkspaceID: "w2"}

	assert.True(t, direct.IsDirect())
	assert.False(t, linked.IsDirect())
}

func TestRoleAppliesTo(t *testing.T) {
	unscoped := Role{Name: RoleMember}
	scoped := Role{Name: RoleStaffEditor, ForWorkspaceType: WorkspaceTypeStaff}

	assert.True(t, unscoped.AppliesTo(WorkspaceTypeProvider))
	assert.True(t, scoped.AppliesTo(WorkspaceTypeStaff))
	assert.False(t, scoped.AppliesTo(WorkspaceTypeProvider))
}

func TestInvitationState(t *testing.T) {
	now := time.Now()
	inv := Invitation{ExpireAt: now.Add(time.Hour)}

	assert.Equal(t, InvitationPending, inv.State())
	assert.True(t, inv.IsPending())
	assert.False(t, inv.IsExpired(now))
	assert.True(t, inv.IsExpired(now.Add(time.Hour)))

	inv.IsDeclined = true
	assert.Equal(t, InvitationDeclined, inv.State())

	inv.IsDeclined = false
	inv.IsApproved = true
	assert.Equal(t, InvitationApproved, inv.State())
	assert.False(t, inv.IsPending())
}

func TestProfileValidate(t *testing.T) {
	tests := []struct {
		name    string
		profile Profile
		valid   bool
	}{
		{name: "empty", profile: Profile{}, valid: true},
		{name: "full", profile: Profile{DisplayName: "Math club", Email: "club@example.com", Website: "https://example.com", Tags: []string{"math"}, ProviderTrialDaysCount: 7}, valid: true},
		{name: "bad email", profile: Profile{Email: "nope"}, valid: false},
		{name: "negative trial", profile: Profile{ProviderTrialDaysCount: -1}, valid: false},
		{name: "trial too long", profile: Profile{ProviderTrialDaysCount: 400}, valid: false},
		{name: "empty tag", profile: Profile{Tags: []string{""}}, valid: false},
		{name: "too many tags", profile: Profile{Tags: manyTags(21)}, valid: false},
		{name: "long display name", profile: Profile{DisplayName: strings.Repeat("a", 121)}, valid: false},
	}

	for _, test := range tests {
		t.Run(test.name, func(t *testing.T) {
			err := test.profile.Validate()
			if test.valid {
				assert.NoError(t, err)
				return
			}
			assert.ErrorIs(t, err, ErrInvalidInput)
		})
	}
}

func TestProfileNormalize(t *testing.T) {
	p := Profile{Tags: []string{" math ", "", "math", "art"}}
	p.Normalize()

	assert.Equal(t, []string{"math", "art"}, p.Tags)
}

func TestProfileScan(t *testing.T) {
	var p Profile
	require.NoError(t, p.Scan([]byte(`{"displayName":"S","providerTrialDaysCount":3,"tags":["a"]}`)))
	assert.Equal(t, "S", p.DisplayName)
	assert.Equal(t, 3, p.ProviderTrialDaysCount)

	require.NoError(t, p.Scan(nil))
	assert.Equal(t, Profile{}, p)

	assert.Error(t, p.Scan(42))
}

func TestPermissionsSetOperations(t *testing.T) {
	p := Permissions{"members.read"}

	added := p.With(PermissionMembersInvite)
	assert.Equal(t, Permissions{"members.read", PermissionMembersInvite}, added)
	assert.Equal(t, Permissions{"members.read"}, p, "With must not mutate the receiver")
	assert.Equal(t, added, added.With(PermissionMembersInvite))

	removed := added.Without("members.read")
	assert.Equal(t, Permissions{PermissionMembersInvite}, removed)

	assert.Equal(t, Permissions{"a", "b"}, Permissions{"a", " ", "b", "a"}.Dedup())
}

func TestIsDomainError(t *testing.T) {
	assert.True(t, IsDomainError(fmt.Errorf("wrapped: %w", ErrAlreadyEnrolled)))
	assert.False(t, IsDomainError(errors.New("boom")))
}

func manyTags(n int) []string {
	tags := make([]string, n)
	for i := range tags {
		tags[i] = fmt.Sprintf("tag-%d", i)
	}
	return tags
}
