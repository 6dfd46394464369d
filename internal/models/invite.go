package models

import "time"

// Invite statuses. PENDING transitions to ACCEPTED exactly once; ACCEPTED is
// terminal. Lost or expired links are replaced by creating a new invite.
const (
	InvitePending  = "PENDING"
	InviteAccepted = "ACCEPTED"
)

// Invite is a one-time, time-limited token granting membership in a
// household at a specified role. Not scoped to an email: any authenticated
// user holding the link may attempt to accept it.
type Invite struct {
	InviteID   string    `json:"inviteId"`
	HouseID    string    `json:"houseId"`
	Role       string    `json:"role"`
	CreatedBy  string    `json:"createdBy"`
	CreatedAt  time.Time `json:"createdAt"`
	ExpiresAt  time.Time `json:"expiresAt"`
	Status     string    `json:"status"`
	AcceptedBy string    `json:"acceptedBy,omitempty"`
}
