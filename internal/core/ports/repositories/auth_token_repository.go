package repositories

import (
	"context"
	"time"

	"github.com/SscSPs/blogging_platform_app/internal/core/domain"
)

// AuthTokenRepositoryFacade stores the single live auth token of each user.
type AuthTokenRepositoryFacade interface {
	// ReplaceTokenForUser deletes any token of token.UserID and inserts token atomically.
	ReplaceTokenForUser(ctx context.Context, token domain.AuthToken) error

	// FindTokenByKeyHash retrieves a token by the hash of its key.
	FindTokenByKeyHash(ctx context.Context, keyHash string) (*domain.AuthToken, error)

	// DeleteTokensForUser removes the user's token, if any.
	DeleteTokensForUser(ctx context.Context, userID string) error

	// TouchToken records when the token was last presented.
	TouchToken(ctx context.Context, tokenID string, usedAt time.Time) error
}
