package utils

import (
	"strings"

	"golang.org/x/crypto/bcrypt"
)

// unusablePasswordPrefix marks hashes that no password can match.
const unusablePasswordPrefix = "!"

// HashPassword hashes a plaintext password using bcrypt.
func HashPassword(password string) (string, error) {
	hash, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	return string(hash), err
}

// CheckPasswordHash compares a plaintext password with a bcrypt hash.
func CheckPasswordHash(password, hash string) bool {
	if hash == "" || strings.HasPrefix(hash, unusablePasswordPrefix) {
		return false
	}
	return bcrypt.CompareHashAndPassword([]byte(hash), []byte(password)) == nil
}

// UnusablePasswordHash returns a hash for accounts that sign in through an
// external provider only. CheckPasswordHash never accepts it.
func UnusablePasswordHash() (string, error) {
	suffix, err := GenerateSecureRandomString(20)
	if err != nil {
		return "", err
	}
	return unusablePasswordPrefix + suffix, nil
}
