package models

import "time"

// AuthToken mirrors a row of the auth_tokens table.
type AuthToken struct {
	TokenID    string     `db:"token_id"`
	UserID     string     `db:"user_id"`
	KeyHash    string     `db:"key_hash"`
	CreatedAt  time.Time  `db:"created_at"`
	LastUsedAt *time.Time `db:"last_used_at"`
}
