// Copyright 2026 Canonical Ltd.
// SPDX-License-Identifier: AGPL-3.0

package authorization

const (
	MEMBER_RELATION = "member"
	STAFF_RELATION  = "staff"

	CAN_ADMINISTER_PERMISSION = "can_administer"

	MARKETPLACE_PLATFORM = "marketplace"
)

func UserTuple(userId string) string {
	return "user:" + userId
}

func WorkspaceTuple(workspaceId string) string {
	return "workspace:" + workspaceId
}

func WorkspaceMembersTuple(workspaceId string) string {
	return WorkspaceTuple(workspaceId) + "#" + MEMBER_RELATION
}

func PlatformTuple(platformId string) string {
	return "platform:" + platformId
}
