package models

import "time"

// Membership roles. Only OWNER may issue invites.
const (
	RoleOwner  = "OWNER"
	RoleMember = "MEMBER"
)

// ValidRole reports whether role is one of the two membership roles.
func ValidRole(role string) bool {
	return role == RoleOwner || role == RoleMember
}

// Membership relates a household to a user with a role. A user may belong to
// multiple households with independent roles.
type Membership struct {
	HouseID  string    `json:"houseId"`
	UserID   string    `json:"userId"`
	Role     string    `json:"role"`
	JoinedAt time.Time `json:"joinedAt"`
}
