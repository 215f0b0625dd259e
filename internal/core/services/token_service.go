package services

import (
	"context"
	"errors"
	"fmt"
	"log/slog"

	"github.com/google/uuid"

	"github.com/SscSPs/blogging_platform_app/internal/apperrors"
	"github.com/SscSPs/blogging_platform_app/internal/core/domain"
	portsrepo "github.com/SscSPs/blogging_platform_app/internal/core/ports/repositories"
	portssvc "github.com/SscSPs/blogging_platform_app/internal/core/ports/services"
	"github.com/SscSPs/blogging_platform_app/internal/utils"
)

// tokenKeyBytes yields a 40 character hex key.
const tokenKeyBytes = 20

const invalidTokenMessage = "Invalid token."

// tokenService implements the TokenSvcFacade. The bearer string is a signed
// JWT whose jti is the opaque key stored (hashed) in auth_tokens.
type tokenService struct {
	BaseService
	tokenRepo portsrepo.AuthTokenRepositoryFacade
	userRepo  portsrepo.UserReader
	secret    string
	issuer    string
}

// NewTokenService creates a new instance of tokenService.
func NewTokenService(secret, issuer string, tokenRepo portsrepo.AuthTokenRepositoryFacade, userRepo portsrepo.UserReader) portssvc.TokenSvcFacade {
	return &tokenService{
		tokenRepo: tokenRepo,
		userRepo:  userRepo,
		secret:    secret,
		issuer:    issuer,
	}
}

var _ portssvc.TokenSvcFacade = (*tokenService)(nil)

// IssueToken replaces any live token of the user. Called with a transactional
// ctx, the rotation commits or rolls back with the caller's work.
func (s *tokenService) IssueToken(ctx context.Context, user domain.User) (string, error) {
	key, err := utils.GenerateSecureRandomString(tokenKeyBytes)
	if err != nil {
		return "", fmt.Errorf("failed to generate auth token key: %w", err)
	}

	token := domain.AuthToken{
		TokenID:   uuid.NewString(),
		UserID:    user.UserID,
		KeyHash:   utils.HashTokenKey(key),
		CreatedAt: s.now(),
	}
	if err := s.tokenRepo.ReplaceTokenForUser(ctx, token); err != nil {
		return "", fmt.Errorf("failed to store auth token: %w", err)
	}

	bearer, err := utils.GenerateAuthTokenJWT(user.UserID, key, s.secret, s.issuer)
	if err != nil {
		return "", fmt.Errorf("failed to sign auth token: %w", err)
	}
	return bearer, nil
}

func (s *tokenService) Authenticate(ctx context.Context, bearer string) (*domain.User, error) {
	claims, err := utils.ParseAndValidateJWT(bearer, s.secret, s.issuer)
	if err != nil {
		s.LogDebug(ctx, "Rejected bearer token", slog.String("reason", err.Error()))
		return nil, apperrors.NewUnauthorizedError(invalidTokenMessage)
	}

	stored, err := s.tokenRepo.FindTokenByKeyHash(ctx, utils.HashTokenKey(claims.ID))
	if err != nil {
		if errors.Is(err, apperrors.ErrNotFound) {
			return nil, apperrors.NewUnauthorizedError(invalidTokenMessage)
		}
		return nil, fmt.Errorf("failed to look up auth token: %w", err)
	}
	if stored.UserID != claims.Subject {
		return nil, apperrors.NewUnauthorizedError(invalidTokenMessage)
	}

	user, err := s.userRepo.FindUserByID(ctx, stored.UserID)
	if err != nil {
		if errors.Is(err, apperrors.ErrNotFound) {
			return nil, apperrors.NewUnauthorizedError(invalidTokenMessage)
		}
		return nil, fmt.Errorf("failed to load token owner: %w", err)
	}

	if err := s.tokenRepo.TouchToken(ctx, stored.TokenID, s.now()); err != nil {
		s.LogError(ctx, err, "Failed to record auth token usage", slog.String("user_id", user.UserID))
	}
	return user, nil
}

func (s *tokenService) RevokeTokens(ctx context.Context, userID string) error {
	if err := s.tokenRepo.DeleteTokensForUser(ctx, userID); err != nil {
		return fmt.Errorf("failed to revoke auth tokens: %w", err)
	}
	return nil
}
