package models

import "encoding/json"

// ClerkEventType represents the type of a Clerk webhook event
type ClerkEventType string

const (
	UserCreated ClerkEventType = "user.created"
	UserUpdated ClerkEventType = "user.updated"
	UserDeleted ClerkEventType = "user.deleted"

	SessionCreated ClerkEventType = "session.created"
	SessionEnded   ClerkEventType = "session.ended"
	SessionRevoked ClerkEventType = "session.revoked"

	EmailCreated ClerkEventType = "email.created"

	OrganizationCreated ClerkEventType = "organization.created"
	OrganizationUpdated ClerkEventType = "organization.updated"
	OrganizationDeleted ClerkEventType = "organization.deleted"

	OrganizationMembershipCreated ClerkEventType = "organizationMembership.created"
	OrganizationMembershipUpdated ClerkEventType = "organizationMembership.updated"
	OrganizationMembershipDeleted ClerkEventType = "organizationMembership.deleted"

	OrganizationInvitationCreated  ClerkEventType = "organizationInvitation.created"
	OrganizationInvitationAccepted ClerkEventType = "organizationInvitation.accepted"
	OrganizationInvitationRevoked  ClerkEventType = "organizationInvitation.revoked"
)

// ClerkEvent is the envelope every Clerk webhook delivery arrives in.
// Data is kept raw so each event type can decode it with its own shape.
type ClerkEvent struct {
	Data       json.RawMessage `json:"data"`
	Object     string          `json:"object"`
	Type       ClerkEventType  `json:"type"`
	Timestamp  int64           `json:"timestamp"`
	InstanceID string          `json:"instance_id"`
}
