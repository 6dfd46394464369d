package models

import "time"

// Profile is a user's display identity. Created lazily: reading a profile
// that was never written yields a default with an empty display name.
type Profile struct {
	UserID      string     `json:"userId"`
	DisplayName string     `json:"displayName"`
	AvatarURL   string     `json:"avatarUrl"`
	UpdatedAt   *time.Time `json:"updatedAt,omitempty"`
}
