package domain

import (
	"regexp"
	"time"
)

// AuthProvider identifies how a user proves their identity.
type AuthProvider string

const (
	ProviderLocal  AuthProvider = "local"
	ProviderGoogle AuthProvider = "google"
)

// MaxUsernameLength bounds User.Username.
const MaxUsernameLength = 150

var usernamePattern = regexp.MustCompile(`^[\w.@+-]+$`)

// IsValidUsername reports whether s is 1 to 150 letters, digits or . @ + - _ characters.
func IsValidUsername(s string) bool {
	return len(s) <= MaxUsernameLength && usernamePattern.MatchString(s)
}

// User represents an account holder of the blogging platform.
type User struct {
	UserID         string       `json:"userID"`
	Username       string       `json:"username"`
	Email          string       `json:"email"`
	FirstName      string       `json:"firstName"`
	LastName       string       `json:"lastName"`
	PasswordHash   string       `json:"-"`
	IsActive       bool         `json:"isActive"`
	AuthProvider   AuthProvider `json:"authProvider"`
	ProviderUserID *string      `json:"-"`
	CreatedAt      time.Time    `json:"createdAt"`
	LastUpdatedAt  time.Time    `json:"lastUpdatedAt"`
	DeletedAt      *time.Time   `json:"deletedAt,omitempty"` // soft delete marker
}

// IsSoftDeleted reports whether the owner has soft-deleted the account.
func (u User) IsSoftDeleted() bool {
	return u.DeletedAt != nil
}

// GoogleIdentity is the verified subset of a Google ID token.
type GoogleIdentity struct {
	Subject       string
	Email         string
	EmailVerified bool
	Name          string
	GivenName     string
	FamilyName    string
}
