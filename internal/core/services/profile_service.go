package services

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"strings"

	"github.com/SscSPs/blogging_platform_app/internal/apperrors"
	"github.com/SscSPs/blogging_platform_app/internal/core/domain"
	portsrepo "github.com/SscSPs/blogging_platform_app/internal/core/ports/repositories"
	portssvc "github.com/SscSPs/blogging_platform_app/internal/core/ports/services"
	"github.com/SscSPs/blogging_platform_app/internal/utils"
)

type profileService struct {
	BaseService
	userRepo portsrepo.UserRepositoryFacade
	tokens   portssvc.TokenSvcFacade
}

// NewProfileService creates a service for the account actions of the signed in user.
func NewProfileService(userRepo portsrepo.UserRepositoryFacade, tokens portssvc.TokenSvcFacade) portssvc.ProfileSvcFacade {
	return &profileService{userRepo: userRepo, tokens: tokens}
}

var _ portssvc.ProfileSvcFacade = (*profileService)(nil)

func (s *profileService) UpdateUsername(ctx context.Context, user domain.User, newUsername string) (*domain.User, error) {
	newUsername = strings.TrimSpace(newUsername)
	if newUsername == "" {
		return nil, apperrors.NewBadRequestError("Please provide a new username.")
	}
	if newUsername == user.Username {
		return &user, nil
	}

	if _, err := s.userRepo.FindUserByUsername(ctx, newUsername); err == nil {
		return nil, apperrors.NewDuplicateError(msgUsernameTaken)
	} else if !errors.Is(err, apperrors.ErrNotFound) {
		return nil, fmt.Errorf("failed to check username availability: %w", err)
	}

	user.Username = newUsername
	user.LastUpdatedAt = s.now()
	if err := s.userRepo.UpdateUser(ctx, user); err != nil {
		if errors.Is(err, apperrors.ErrDuplicate) {
			return nil, apperrors.NewDuplicateError(msgUsernameTaken)
		}
		return nil, fmt.Errorf("failed to update username: %w", err)
	}
	s.LogInfo(ctx, "Username updated", slog.String("user_id", user.UserID))
	return &user, nil
}

func (s *profileService) SoftDeleteUser(ctx context.Context, user domain.User) error {
	if user.IsSoftDeleted() {
		return apperrors.NewConflictError("User Account has already been soft-deleted.")
	}
	if err := s.userRepo.MarkUserDeleted(ctx, user.UserID, s.now()); err != nil {
		if errors.Is(err, apperrors.ErrNotFound) {
			return apperrors.NewConflictError("User Account has already been soft-deleted.")
		}
		return fmt.Errorf("failed to soft delete user: %w", err)
	}
	s.LogInfo(ctx, "User soft deleted", slog.String("user_id", user.UserID))
	return nil
}

// RecoverSoftDeletedUser checks the password before the deleted state, so the
// state of an account is only revealed to someone who knows its password.
func (s *profileService) RecoverSoftDeletedUser(ctx context.Context, user domain.User, oldPassword string) error {
	if oldPassword == "" {
		return apperrors.NewBadRequestError("Please provide your old password.")
	}
	if !utils.CheckPasswordHash(oldPassword, user.PasswordHash) {
		return apperrors.NewUnauthorizedError("Old password is incorrect.")
	}
	if !user.IsSoftDeleted() {
		return apperrors.NewConflictError("Account has not been soft-deleted.")
	}

	if err := s.userRepo.ClearUserDeleted(ctx, user.UserID, s.now()); err != nil {
		if errors.Is(err, apperrors.ErrNotFound) {
			return apperrors.NewConflictError("Account has not been soft-deleted.")
		}
		return fmt.Errorf("failed to recover user: %w", err)
	}
	s.LogInfo(ctx, "User recovered", slog.String("user_id", user.UserID))
	return nil
}

func (s *profileService) Logout(ctx context.Context, user domain.User) error {
	return s.tokens.RevokeTokens(ctx, user.UserID)
}
