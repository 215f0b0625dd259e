package domain

import "time"

// AuthToken is the single live bearer credential of a user.
// Only a SHA-256 hash of the opaque key is stored.
type AuthToken struct {
	TokenID    string
	UserID     string
	KeyHash    string
	CreatedAt  time.Time
	LastUsedAt *time.Time
}
