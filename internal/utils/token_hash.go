package utils

import (
	"crypto/sha256"
	"encoding/hex"
)

// HashTokenKey generates the SHA256 hash under which an auth token key is stored.
func HashTokenKey(key string) string {
	sum := sha256.Sum256([]byte(key))
	return hex.EncodeToString(sum[:])
}

