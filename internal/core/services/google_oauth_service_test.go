package services

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestIdentityFromClaims(t *testing.T) {
	identity := identityFromClaims("1098", map[string]interface{}{
		"email":          "dana@example.com",
		"email_verified": true,
		"name":           "Dana Lee",
		"given_name":     "Dana",
		"family_name":    "Lee",
	})

	assert.Equal(t, "1098", identity.Subject)
	assert.Equal(t, "dana@example.com", identity.Email)
	assert.True(t, identity.EmailVerified)
	assert.Equal(t, "Dana", identity.GivenName)
	assert.Equal(t, "Lee", identity.FamilyName)
}

func TestIdentityFromClaims_MissingVerification(t *testing.T) {
	identity := identityFromClaims("1098", map[string]interface{}{
		"email":          "dana@example.com",
		"email_verified": "true",
	})

	assert.False(t, identity.EmailVerified)
	assert.Empty(t, identity.Name)
}

func TestNewGoogleOAuthService_Config(t *testing.T) {
	svc := NewGoogleOAuthService("client-id", "client-secret", "https://blog.example.com/callback").(*googleOAuthService)

	assert.Equal(t, "client-id", svc.oauth2Config.ClientID)
	assert.Equal(t, "https://blog.example.com/callback", svc.oauth2Config.RedirectURL)
	assert.Contains(t, svc.oauth2Config.Scopes, "openid")
	assert.NotNil(t, svc.validate)
}
