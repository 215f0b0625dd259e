package services

import (
	"context"

	"github.com/SscSPs/blogging_platform_app/internal/core/domain"
)

// ProfileSvcFacade defines the account actions available to a signed in user.
// The user is the one resolved from the bearer token.
type ProfileSvcFacade interface {
	// UpdateUsername returns the user unchanged when the name is already theirs.
	UpdateUsername(ctx context.Context, user domain.User, newUsername string) (*domain.User, error)

	SoftDeleteUser(ctx context.Context, user domain.User) error

	// RecoverSoftDeletedUser clears the deleted marker after checking the password.
	RecoverSoftDeletedUser(ctx context.Context, user domain.User, oldPassword string) error

	// Logout revokes the user's token.
	Logout(ctx context.Context, user domain.User) error
}
