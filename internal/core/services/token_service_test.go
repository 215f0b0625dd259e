package services_test

import (
	"context"
	"errors"
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"github.com/SscSPs/blogging_platform_app/internal/apperrors"
	"github.com/SscSPs/blogging_platform_app/internal/core/domain"
	"github.com/SscSPs/blogging_platform_app/internal/core/services"
	"github.com/SscSPs/blogging_platform_app/internal/utils"
)

const (
	testSecret = "test-secret"
	testIssuer = "blog-tests"
)

func issueTestToken(t *testing.T, tokenRepo *MockAuthTokenRepository, userRepo *MockUserRepository, user domain.User) (string, domain.AuthToken) {
	t.Helper()
	var stored domain.AuthToken
	tokenRepo.On("ReplaceTokenForUser", mock.Anything, mock.MatchedBy(func(tok domain.AuthToken) bool {
		return tok.UserID == user.UserID
	})).Run(func(args mock.Arguments) {
		stored = args.Get(1).(domain.AuthToken)
	}).Return(nil).Once()

	svc := services.NewTokenService(testSecret, testIssuer, tokenRepo, userRepo)
	bearer, err := svc.IssueToken(context.Background(), user)
	require.NoError(t, err)
	return bearer, stored
}

func TestTokenService_IssueTokenStoresKeyHash(t *testing.T) {
	tokenRepo := new(MockAuthTokenRepository)
	userRepo := new(MockUserRepository)
	user := domain.User{UserID: "user-1", Username: "alice"}

	bearer, stored := issueTestToken(t, tokenRepo, userRepo, user)

	claims, err := utils.ParseAndValidateJWT(bearer, testSecret, testIssuer)
	require.NoError(t, err)
	assert.Equal(t, "user-1", claims.Subject)
	assert.Len(t, claims.ID, 40)
	assert.Nil(t, claims.ExpiresAt)
	assert.Equal(t, utils.HashTokenKey(claims.ID), stored.KeyHash)
	assert.NotEqual(t, claims.ID, stored.KeyHash)
	tokenRepo.AssertExpectations(t)
}

func TestTokenService_AuthenticateRoundTrip(t *testing.T) {
	tokenRepo := new(MockAuthTokenRepository)
	userRepo := new(MockUserRepository)
	user := domain.User{UserID: "user-1", Username: "alice", IsActive: true}
	bearer, stored := issueTestToken(t, tokenRepo, userRepo, user)

	tokenRepo.On("FindTokenByKeyHash", mock.Anything, stored.KeyHash).Return(&stored, nil).Once()
	userRepo.On("FindUserByID", mock.Anything, "user-1").Return(&user, nil).Once()
	tokenRepo.On("TouchToken", mock.Anything, stored.TokenID, mock.Anything).Return(nil).Once()

	svc := services.NewTokenService(testSecret, testIssuer, tokenRepo, userRepo)
	got, err := svc.Authenticate(context.Background(), bearer)

	require.NoError(t, err)
	assert.Equal(t, "alice", got.Username)
	tokenRepo.AssertExpectations(t)
	userRepo.AssertExpectations(t)
}

func TestTokenService_AuthenticateIgnoresTouchFailure(t *testing.T) {
	tokenRepo := new(MockAuthTokenRepository)
	userRepo := new(MockUserRepository)
	user := domain.User{UserID: "user-1"}
	bearer, stored := issueTestToken(t, tokenRepo, userRepo, user)

	tokenRepo.On("FindTokenByKeyHash", mock.Anything, stored.KeyHash).Return(&stored, nil).Once()
	userRepo.On("FindUserByID", mock.Anything, "user-1").Return(&user, nil).Once()
	tokenRepo.On("TouchToken", mock.Anything, stored.TokenID, mock.Anything).Return(errors.New("timeout")).Once()

	svc := services.NewTokenService(testSecret, testIssuer, tokenRepo, userRepo)
	got, err := svc.Authenticate(context.Background(), bearer)

	require.NoError(t, err)
	assert.Equal(t, "user-1", got.UserID)
}

func TestTokenService_AuthenticateRejects(t *testing.T) {
	user := domain.User{UserID: "user-1"}

	tests := []struct {
		name  string
		setup func(tokenRepo *MockAuthTokenRepository, userRepo *MockUserRepository, stored domain.AuthToken)
		token func(bearer string) string
	}{
		{
			name:  "garbage",
			setup: func(*MockAuthTokenRepository, *MockUserRepository, domain.AuthToken) {},
			token: func(string) string { return "not-a-jwt" },
		},
		{
			name:  "wrong secret",
			setup: func(*MockAuthTokenRepository, *MockUserRepository, domain.AuthToken) {},
			token: func(string) string {
				forged, _ := utils.GenerateAuthTokenJWT("user-1", "0123456789abcdef0123456789abcdef01234567", "other-secret", testIssuer)
				return forged
			},
		},
		{
			name: "revoked",
			setup: func(tokenRepo *MockAuthTokenRepository, _ *MockUserRepository, stored domain.AuthToken) {
				tokenRepo.On("FindTokenByKeyHash", mock.Anything, stored.KeyHash).Return(nil, apperrors.ErrNotFound).Once()
			},
			token: func(bearer string) string { return bearer },
		},
		{
			name: "subject mismatch",
			setup: func(tokenRepo *MockAuthTokenRepository, _ *MockUserRepository, stored domain.AuthToken) {
				other := stored
				other.UserID = "user-2"
				tokenRepo.On("FindTokenByKeyHash", mock.Anything, stored.KeyHash).Return(&other, nil).Once()
			},
			token: func(bearer string) string { return bearer },
		},
		{
			name: "owner gone",
			setup: func(tokenRepo *MockAuthTokenRepository, userRepo *MockUserRepository, stored domain.AuthToken) {
				tokenRepo.On("FindTokenByKeyHash", mock.Anything, stored.KeyHash).Return(&stored, nil).Once()
				userRepo.On("FindUserByID", mock.Anything, "user-1").Return(nil, apperrors.ErrNotFound).Once()
			},
			token: func(bearer string) string { return bearer },
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tokenRepo := new(MockAuthTokenRepository)
			userRepo := new(MockUserRepository)
			bearer, stored := issueTestToken(t, tokenRepo, userRepo, user)
			tt.setup(tokenRepo, userRepo, stored)

			svc := services.NewTokenService(testSecret, testIssuer, tokenRepo, userRepo)
			got, err := svc.Authenticate(context.Background(), tt.token(bearer))

			assert.Nil(t, got)
			requireAppError(t, err, http.StatusUnauthorized, "Invalid token.")
			tokenRepo.AssertExpectations(t)
			userRepo.AssertExpectations(t)
		})
	}
}

func TestTokenService_RevokeTokens(t *testing.T) {
	tokenRepo := new(MockAuthTokenRepository)
	tokenRepo.On("DeleteTokensForUser", mock.Anything, "user-1").Return(nil).Once()

	svc := services.NewTokenService(testSecret, testIssuer, tokenRepo, new(MockUserRepository))

	assert.NoError(t, svc.RevokeTokens(context.Background(), "user-1"))
	tokenRepo.AssertExpectations(t)
}
