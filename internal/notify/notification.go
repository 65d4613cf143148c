// Copyright 2026 Canonical Ltd.
// SPDX-License-Identifier: AGPL-3.0

package notify

import "time"

type Kind string

const (
	KindInvitationCreated  Kind = "invitation.created"
	KindInvitationResolved Kind = "invitation.resolved"
	KindStudentEnrolled    Kind = "student.enrolled"
	KindParentLinked       Kind = "parent.linked"
	KindStaffMemberAdded   Kind = "staff.member_added"
)

// Notification is the message handed to the delivery subsystem; rendering
// and channel selection (mail, sms) happen downstream.
type Notification struct {
	Kind        Kind              `json:"kind"`
	AccountID   string            `json:"account_id"`
	WorkspaceID string            `json:"workspace_id,omitempty"`
	Payload     map[string]string `json:"payload,omitempty"`
	CreatedAt   time.Time         `json:"created_at"`
}

// Key routes notifications of one account to the same partition.
func (n *Notification) Key() string {
	return string(n.Kind) + "." + n.AccountID
}
