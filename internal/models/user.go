package models

import "time"

// User mirrors a row of the users table.
type User struct {
	UserID         string     `db:"user_id"`
	Username       string     `db:"username"`
	Email          string     `db:"email"`
	FirstName      string     `db:"first_name"`
	LastName       string     `db:"last_name"`
	PasswordHash   string     `db:"password_hash"`
	IsActive       bool       `db:"is_active"`
	AuthProvider   string     `db:"auth_provider"`
	ProviderUserID *string    `db:"provider_user_id"`
	CreatedAt      time.Time  `db:"created_at"`
	LastUpdatedAt  time.Time  `db:"last_updated_at"`
	DeletedAt      *time.Time `db:"deleted_at"`
}
