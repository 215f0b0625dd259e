package services

import (
	"context"

	"github.com/SscSPs/blogging_platform_app/internal/core/domain"
	"github.com/SscSPs/blogging_platform_app/internal/dto"
)

// TokenSvcFacade issues and resolves the bearer credentials of users.
type TokenSvcFacade interface {
	// IssueToken rotates the user's auth token and returns the new bearer string.
	IssueToken(ctx context.Context, user domain.User) (string, error)

	// Authenticate resolves a bearer string to its user.
	Authenticate(ctx context.Context, bearer string) (*domain.User, error)

	// RevokeTokens deletes the user's auth token.
	RevokeTokens(ctx context.Context, userID string) error
}

// RegistrationSvc covers sign up and activation by one-time code.
type RegistrationSvc interface {
	Register(ctx context.Context, req dto.RegisterRequest) (*domain.User, error)
	ResendActivationOTP(ctx context.Context, email string) error
	// VerifyActivationOTP activates the code's owner and returns a fresh bearer token.
	VerifyActivationOTP(ctx context.Context, code string) (string, error)
}

// LoginSvc covers password and Google sign in.
type LoginSvc interface {
	EmailLogin(ctx context.Context, email, password string) (string, error)
	GoogleLogin(ctx context.Context, code string) (string, error)
}

// PasswordResetSvc covers the forgotten password flow.
type PasswordResetSvc interface {
	SendForgetOTP(ctx context.Context, email string) error
	// VerifyForgetOTP returns a bearer token for the code's owner without activating them.
	VerifyForgetOTP(ctx context.Context, code string) (string, error)
	UpdatePassword(ctx context.Context, user domain.User, newPassword string) (string, error)
}

// AuthSvcFacade combines all authentication flows.
type AuthSvcFacade interface {
	RegistrationSvc
	LoginSvc
	PasswordResetSvc
}

// GoogleOAuthSvc exchanges an authorization code for a verified Google identity.
type GoogleOAuthSvc interface {
	ExchangeCodeForIdentity(ctx context.Context, code string) (*domain.GoogleIdentity, error)
}
