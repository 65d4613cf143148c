// Copyright 2026 Canonical Ltd.
// SPDX-License-Identifier: AGPL-3.0

package types

// DefaultRoles mirrors the rows seeded by the initial migration.
func DefaultRoles() []Role {
	return []Role{
		{
			Name:        RoleManager,
			Permissions: Permissions{"workspace.update", "members.read", PermissionMembersInvite, "members.remove", "invitations.read"},
		},
		{
			Name:        RoleStudent,
			Permissions: Permissions{"workspace.read"},
		},
		{
			Name:             RoleParentMonitor,
			Permissions:      Permissions{"student.monitor"},
			ForWorkspaceType: WorkspaceTypeStudent,
		},
		{
			Name:             RoleStaffAdmin,
			Permissions:      Permissions{"staff.admin", "providers.manage", "roles.manage", PermissionMembersInvite},
			ForWorkspaceType: WorkspaceTypeStaff,
			IsStaff:          true,
		},
		{
			Name:        RoleStaffEditor,
			Permissions: Permissions{"providers.manage"},
			IsStaff:     true,
		},
		{
			Name:        RoleMember,
			Permissions: Permissions{"workspace.read"},
		},
	}
}
