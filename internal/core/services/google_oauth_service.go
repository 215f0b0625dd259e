package services

import (
	"context"
	"errors"
	"fmt"

	"golang.org/x/oauth2"
	"golang.org/x/oauth2/google"
	"google.golang.org/api/idtoken"

	"github.com/SscSPs/blogging_platform_app/internal/core/domain"
	portssvc "github.com/SscSPs/blogging_platform_app/internal/core/ports/services"
)

// googleOAuthService implements GoogleOAuthSvc with the authorization code flow.
type googleOAuthService struct {
	clientID     string
	oauth2Config *oauth2.Config
	validate     func(ctx context.Context, idToken, audience string) (*idtoken.Payload, error)
}

// NewGoogleOAuthService creates a new instance of googleOAuthService.
func NewGoogleOAuthService(clientID, clientSecret, redirectURI string) portssvc.GoogleOAuthSvc {
	return &googleOAuthService{
		clientID: clientID,
		oauth2Config: &oauth2.Config{
			ClientID:     clientID,
			ClientSecret: clientSecret,
			RedirectURL:  redirectURI,
			Scopes:       []string{"openid", "https://www.googleapis.com/auth/userinfo.email", "https://www.googleapis.com/auth/userinfo.profile"},
			Endpoint:     google.Endpoint,
		},
		validate: idtoken.Validate,
	}
}

// ExchangeCodeForIdentity exchanges the code and validates the returned ID token.
func (s *googleOAuthService) ExchangeCodeForIdentity(ctx context.Context, code string) (*domain.GoogleIdentity, error) {
	token, err := s.oauth2Config.Exchange(ctx, code)
	if err != nil {
		return nil, fmt.Errorf("failed to exchange oauth code for token: %w", err)
	}

	rawIDToken, ok := token.Extra("id_token").(string)
	if !ok || rawIDToken == "" {
		return nil, errors.New("google token response has no id_token")
	}

	payload, err := s.validate(ctx, rawIDToken, s.clientID)
	if err != nil {
		return nil, fmt.Errorf("google ID token validation failed: %w", err)
	}
	return identityFromClaims(payload.Subject, payload.Claims), nil
}

func identityFromClaims(subject string, claims map[string]interface{}) *domain.GoogleIdentity {
	str := func(key string) string {
		v, _ := claims[key].(string)
		return v
	}
	verified, _ := claims["email_verified"].(bool)
	return &domain.GoogleIdentity{
		Subject:       subject,
		Email:         str("email"),
		EmailVerified: verified,
		Name:          str("name"),
		GivenName:     str("given_name"),
		FamilyName:    str("family_name"),
	}
}
