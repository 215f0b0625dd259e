package services

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"net/http"
	"regexp"
	"strings"
	"time"

	"github.com/google/uuid"

	"github.com/SscSPs/blogging_platform_app/internal/apperrors"
	"github.com/SscSPs/blogging_platform_app/internal/core/domain"
	"github.com/SscSPs/blogging_platform_app/internal/core/ports/gateways"
	portsrepo "github.com/SscSPs/blogging_platform_app/internal/core/ports/repositories"
	portssvc "github.com/SscSPs/blogging_platform_app/internal/core/ports/services"
	"github.com/SscSPs/blogging_platform_app/internal/dto"
	"github.com/SscSPs/blogging_platform_app/internal/utils"
)

const (
	// maxOTPAttempts bounds the regeneration of a code that clashes with a live one.
	maxOTPAttempts = 5
	// maxUsernameAttempts bounds the suffixes tried for a Google derived username.
	maxUsernameAttempts = 5

	msgEmailTaken        = "User with this email already exists."
	msgUsernameTaken     = "This username is already taken."
	msgUserDoesNotExist  = "User does not exist"
	msgOTPRequired       = "OTP is required field."
	msgOTPFailed         = "OTP Verification failed"
	msgMissingLogin      = "Missing email or password field"
	msgInvalidLogin      = "Invalid email or password"
	msgInactiveAccount   = "User account is not active"
	msgAlreadyActive     = "User account is already active"
	msgEmailRequired     = "Email is required field."
	msgNewPasswordNeeded = "Please provide a new password."
	msgMailFailed        = "Failed to send email. Please try again later."
)

type authService struct {
	BaseService
	userRepo  portsrepo.UserRepositoryFacade
	otpRepo   portsrepo.OTPRepositoryFacade
	txManager portsrepo.TransactionManager
	tokens    portssvc.TokenSvcFacade
	notifier  gateways.Notifier
	google    portssvc.GoogleOAuthSvc
	otpTTL    time.Duration
}

// AuthServiceOption configures optional collaborators of the auth service.
type AuthServiceOption func(*authService)

// WithGoogleOAuth enables Google sign in.
func WithGoogleOAuth(google portssvc.GoogleOAuthSvc) AuthServiceOption {
	return func(s *authService) {
		s.google = google
	}
}

// WithOTPTTL makes codes older than ttl unusable. Zero keeps them valid until consumed.
func WithOTPTTL(ttl time.Duration) AuthServiceOption {
	return func(s *authService) {
		s.otpTTL = ttl
	}
}

// WithAuthEventPublisher emits user lifecycle events.
func WithAuthEventPublisher(events gateways.EventPublisher) AuthServiceOption {
	return func(s *authService) {
		s.Events = events
	}
}

// WithAuthAnalytics reports user lifecycle events to product analytics.
func WithAuthAnalytics(analytics *utils.PosthogClientWrapper) AuthServiceOption {
	return func(s *authService) {
		s.Analytics = analytics
	}
}

// WithAuthClock overrides the time source.
func WithAuthClock(now func() time.Time) AuthServiceOption {
	return func(s *authService) {
		s.Now = now
	}
}

// NewAuthService creates a new auth service.
func NewAuthService(
	userRepo portsrepo.UserRepositoryFacade,
	otpRepo portsrepo.OTPRepositoryFacade,
	txManager portsrepo.TransactionManager,
	tokens portssvc.TokenSvcFacade,
	notifier gateways.Notifier,
	opts ...AuthServiceOption,
) portssvc.AuthSvcFacade {
	s := &authService{
		userRepo:  userRepo,
		otpRepo:   otpRepo,
		txManager: txManager,
		tokens:    tokens,
		notifier:  notifier,
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

var _ portssvc.AuthSvcFacade = (*authService)(nil)

func normalizeEmail(email string) string {
	return strings.ToLower(strings.TrimSpace(email))
}

// findUserByEmail returns a 404 AppError when no account uses the address.
func (s *authService) findUserByEmail(ctx context.Context, email string) (*domain.User, error) {
	user, err := s.userRepo.FindUserByEmail(ctx, email)
	if err != nil {
		if errors.Is(err, apperrors.ErrNotFound) {
			return nil, apperrors.NewNotFoundError(msgUserDoesNotExist)
		}
		return nil, fmt.Errorf("failed to look up user by email: %w", err)
	}
	return user, nil
}

// ensureAvailable rejects an email or username already in use.
func (s *authService) ensureAvailable(ctx context.Context, email, username string) error {
	if _, err := s.userRepo.FindUserByEmail(ctx, email); err == nil {
		return apperrors.NewDuplicateError(msgEmailTaken)
	} else if !errors.Is(err, apperrors.ErrNotFound) {
		return fmt.Errorf("failed to check email availability: %w", err)
	}

	if _, err := s.userRepo.FindUserByUsername(ctx, username); err == nil {
		return apperrors.NewDuplicateError(msgUsernameTaken)
	} else if !errors.Is(err, apperrors.ErrNotFound) {
		return fmt.Errorf("failed to check username availability: %w", err)
	}
	return nil
}

// issueOTP replaces the user's outstanding codes of the purpose with a fresh one.
func (s *authService) issueOTP(ctx context.Context, userID string, purpose domain.OTPPurpose) (string, error) {
	if err := s.otpRepo.DeleteOTPsForUser(ctx, purpose, userID); err != nil {
		return "", fmt.Errorf("failed to delete previous %s codes: %w", purpose, err)
	}

	for attempt := 0; attempt < maxOTPAttempts; attempt++ {
		code, err := utils.GenerateNumericCode(domain.OTPLength)
		if err != nil {
			return "", err
		}
		err = s.otpRepo.SaveOTP(ctx, domain.OTP{
			OTPID:     uuid.NewString(),
			UserID:    userID,
			Code:      code,
			Purpose:   purpose,
			CreatedAt: s.now(),
		})
		if err == nil {
			return code, nil
		}
		if !errors.Is(err, apperrors.ErrDuplicate) {
			return "", fmt.Errorf("failed to save %s code: %w", purpose, err)
		}
		s.LogDebug(ctx, "Generated code clashed with a live one, retrying", slog.String("purpose", string(purpose)))
	}
	return "", fmt.Errorf("could not generate a unique %s code after %d attempts", purpose, maxOTPAttempts)
}

// consumeOTP claims a live code and runs fn for its owner in one transaction.
// The code is deleted before fn runs so a concurrent request for the same
// code blocks on the row and then finds nothing to claim.
func (s *authService) consumeOTP(ctx context.Context, purpose domain.OTPPurpose, code string, fn func(ctx context.Context, user *domain.User) error) error {
	code = strings.TrimSpace(code)
	if code == "" {
		return apperrors.NewBadRequestError(msgOTPRequired)
	}

	return s.txManager.WithinTransaction(ctx, func(txCtx context.Context) error {
		otp, err := s.otpRepo.FindOTPByCode(txCtx, purpose, code)
		if err != nil {
			if errors.Is(err, apperrors.ErrNotFound) {
				return apperrors.NewUnauthorizedError(msgOTPFailed)
			}
			return fmt.Errorf("failed to look up %s code: %w", purpose, err)
		}
		if otp.IsExpired(s.otpTTL, s.now()) {
			// Expired codes stay until the next issuance replaces them.
			return apperrors.NewUnauthorizedError(msgOTPFailed)
		}
		if err := s.otpRepo.DeleteOTP(txCtx, purpose, otp.OTPID); err != nil {
			if errors.Is(err, apperrors.ErrNotFound) {
				return apperrors.NewUnauthorizedError(msgOTPFailed)
			}
			return fmt.Errorf("failed to claim %s code: %w", purpose, err)
		}

		user, err := s.userRepo.FindUserByID(txCtx, otp.UserID)
		if err != nil {
			if errors.Is(err, apperrors.ErrNotFound) {
				return apperrors.NewUnauthorizedError(msgOTPFailed)
			}
			return fmt.Errorf("failed to load owner of %s code: %w", purpose, err)
		}

		return fn(txCtx, user)
	})
}

// Register creates an inactive user with one activation code and emails the code.
func (s *authService) Register(ctx context.Context, req dto.RegisterRequest) (*domain.User, error) {
	email := normalizeEmail(req.Email)
	username := strings.TrimSpace(req.Username)

	if err := s.ensureAvailable(ctx, email, username); err != nil {
		return nil, err
	}

	hash, err := utils.HashPassword(req.Password)
	if err != nil {
		return nil, fmt.Errorf("failed to hash password: %w", err)
	}

	now := s.now()
	user := domain.User{
		UserID:        uuid.NewString(),
		Username:      username,
		Email:         email,
		FirstName:     strings.TrimSpace(req.FirstName),
		LastName:      strings.TrimSpace(req.LastName),
		PasswordHash:  hash,
		IsActive:      false,
		AuthProvider:  domain.ProviderLocal,
		CreatedAt:     now,
		LastUpdatedAt: now,
	}

	var code string
	err = s.txManager.WithinTransaction(ctx, func(txCtx context.Context) error {
		if err := s.userRepo.SaveUser(txCtx, user); err != nil {
			if errors.Is(err, apperrors.ErrDuplicate) {
				// Lost a race against a concurrent registration.
				return apperrors.NewDuplicateError(msgEmailTaken)
			}
			return fmt.Errorf("failed to save user: %w", err)
		}
		code, err = s.issueOTP(txCtx, user.UserID, domain.OTPPurposeActivation)
		return err
	})
	if err != nil {
		return nil, err
	}
	s.LogInfo(ctx, "User registered", slog.String("user_id", user.UserID))

	s.publishEvent(ctx, domain.EventUserRegistered, user.UserID, user.UserID, map[string]any{
		"username": user.Username,
		"provider": string(user.AuthProvider),
	})

	if err := s.notifier.SendActivationOTP(ctx, user, code); err != nil {
		s.LogError(ctx, err, "Failed to send activation email", slog.String("user_id", user.UserID))
		return nil, apperrors.NewInternalServerError(msgMailFailed)
	}
	return &user, nil
}

func (s *authService) ResendActivationOTP(ctx context.Context, email string) error {
	email = normalizeEmail(email)
	if email == "" {
		return apperrors.NewBadRequestError(msgEmailRequired)
	}

	user, err := s.findUserByEmail(ctx, email)
	if err != nil {
		return err
	}
	if user.IsActive {
		return apperrors.NewBadRequestError(msgAlreadyActive)
	}

	var code string
	err = s.txManager.WithinTransaction(ctx, func(txCtx context.Context) error {
		code, err = s.issueOTP(txCtx, user.UserID, domain.OTPPurposeActivation)
		return err
	})
	if err != nil {
		return err
	}

	if err := s.notifier.SendActivationOTP(ctx, *user, code); err != nil {
		s.LogError(ctx, err, "Failed to send activation email", slog.String("user_id", user.UserID))
		return apperrors.NewInternalServerError(msgMailFailed)
	}
	return nil
}

// VerifyActivationOTP activates the code's owner, rotates their token and deletes the code atomically.
func (s *authService) VerifyActivationOTP(ctx context.Context, code string) (string, error) {
	var bearer string
	var activated *domain.User
	err := s.consumeOTP(ctx, domain.OTPPurposeActivation, code, func(txCtx context.Context, user *domain.User) error {
		if !user.IsActive {
			user.IsActive = true
			user.LastUpdatedAt = s.now()
			if err := s.userRepo.UpdateUser(txCtx, *user); err != nil {
				return fmt.Errorf("failed to activate user: %w", err)
			}
		}
		var err error
		bearer, err = s.tokens.IssueToken(txCtx, *user)
		activated = user
		return err
	})
	if err != nil {
		return "", err
	}

	s.LogInfo(ctx, "User activated", slog.String("user_id", activated.UserID))
	s.publishEvent(ctx, domain.EventUserActivated, activated.UserID, activated.UserID, map[string]any{
		"username": activated.Username,
	})
	return bearer, nil
}

// EmailLogin checks the password before the active flag so inactive status is
// only revealed to the account owner.
func (s *authService) EmailLogin(ctx context.Context, email, password string) (string, error) {
	email = normalizeEmail(email)
	if email == "" || password == "" {
		return "", apperrors.NewBadRequestError(msgMissingLogin)
	}

	user, err := s.findUserByEmail(ctx, email)
	if err != nil {
		return "", err
	}
	if !utils.CheckPasswordHash(password, user.PasswordHash) {
		return "", apperrors.NewUnauthorizedError(msgInvalidLogin)
	}
	if !user.IsActive {
		return "", apperrors.NewForbiddenError(msgInactiveAccount)
	}

	bearer, err := s.tokens.IssueToken(ctx, *user)
	if err != nil {
		return "", err
	}
	if s.Analytics != nil {
		s.Analytics.Enqueue(user.UserID, "user.logged_in", map[string]any{"provider": string(domain.ProviderLocal)})
	}
	return bearer, nil
}

// GoogleLogin signs in the owner of a verified Google identity, creating an active account on first use.
func (s *authService) GoogleLogin(ctx context.Context, code string) (string, error) {
	if s.google == nil {
		return "", apperrors.NewAppError(http.StatusServiceUnavailable, "Google login is not enabled.", nil)
	}

	identity, err := s.google.ExchangeCodeForIdentity(ctx, code)
	if err != nil {
		s.LogError(ctx, err, "Google code exchange failed")
		return "", apperrors.NewUnauthorizedError("Google authentication failed")
	}
	if identity.Email == "" || !identity.EmailVerified {
		return "", apperrors.NewUnauthorizedError("Google account email is not verified")
	}

	email := normalizeEmail(identity.Email)
	var bearer string
	var created *domain.User
	err = s.txManager.WithinTransaction(ctx, func(txCtx context.Context) error {
		user, err := s.userRepo.FindUserByEmail(txCtx, email)
		switch {
		case err == nil:
			if !user.IsActive || user.ProviderUserID == nil {
				// A verified Google email proves control of the address.
				user.IsActive = true
				if user.ProviderUserID == nil {
					user.ProviderUserID = &identity.Subject
				}
				user.LastUpdatedAt = s.now()
				if err := s.userRepo.UpdateUser(txCtx, *user); err != nil {
					return fmt.Errorf("failed to link google identity: %w", err)
				}
			}
		case errors.Is(err, apperrors.ErrNotFound):
			user, err = s.newGoogleUser(txCtx, email, identity)
			if err != nil {
				return err
			}
			created = user
		default:
			return fmt.Errorf("failed to look up user by email: %w", err)
		}

		bearer, err = s.tokens.IssueToken(txCtx, *user)
		return err
	})
	if err != nil {
		return "", err
	}

	if created != nil {
		s.LogInfo(ctx, "User registered through Google", slog.String("user_id", created.UserID))
		s.publishEvent(ctx, domain.EventUserRegistered, created.UserID, created.UserID, map[string]any{
			"username": created.Username,
			"provider": string(domain.ProviderGoogle),
		})
	}
	return bearer, nil
}

func (s *authService) newGoogleUser(ctx context.Context, email string, identity *domain.GoogleIdentity) (*domain.User, error) {
	username, err := s.deriveUsername(ctx, email)
	if err != nil {
		return nil, err
	}
	hash, err := utils.UnusablePasswordHash()
	if err != nil {
		return nil, fmt.Errorf("failed to create unusable password: %w", err)
	}

	now := s.now()
	subject := identity.Subject
	user := domain.User{
		UserID:         uuid.NewString(),
		Username:       username,
		Email:          email,
		FirstName:      identity.GivenName,
		LastName:       identity.FamilyName,
		PasswordHash:   hash,
		IsActive:       true,
		AuthProvider:   domain.ProviderGoogle,
		ProviderUserID: &subject,
		CreatedAt:      now,
		LastUpdatedAt:  now,
	}
	if err := s.userRepo.SaveUser(ctx, user); err != nil {
		return nil, fmt.Errorf("failed to save google user: %w", err)
	}
	return &user, nil
}

var usernameDisallowed = regexp.MustCompile(`[^\w.@+-]`)

// deriveUsername builds a free username from the local part of the email.
func (s *authService) deriveUsername(ctx context.Context, email string) (string, error) {
	base := usernameDisallowed.ReplaceAllString(strings.SplitN(email, "@", 2)[0], "")
	if base == "" {
		base = "user"
	}
	if len(base) > domain.MaxUsernameLength-5 {
		base = base[:domain.MaxUsernameLength-5]
	}

	candidate := base
	for attempt := 0; attempt < maxUsernameAttempts; attempt++ {
		_, err := s.userRepo.FindUserByUsername(ctx, candidate)
		if errors.Is(err, apperrors.ErrNotFound) {
			return candidate, nil
		}
		if err != nil {
			return "", fmt.Errorf("failed to check username availability: %w", err)
		}
		suffix, err := utils.GenerateNumericCode(4)
		if err != nil {
			return "", err
		}
		candidate = base + suffix
	}
	return "", fmt.Errorf("could not derive a free username for %s", email)
}

// SendForgetOTP replaces the user's reset codes with exactly one new code and emails it.
func (s *authService) SendForgetOTP(ctx context.Context, email string) error {
	email = normalizeEmail(email)
	if email == "" {
		return apperrors.NewBadRequestError(msgEmailRequired)
	}

	user, err := s.findUserByEmail(ctx, email)
	if err != nil {
		return err
	}

	var code string
	err = s.txManager.WithinTransaction(ctx, func(txCtx context.Context) error {
		code, err = s.issueOTP(txCtx, user.UserID, domain.OTPPurposePasswordReset)
		return err
	})
	if err != nil {
		return err
	}

	if err := s.notifier.SendForgetPasswordOTP(ctx, *user, code); err != nil {
		s.LogError(ctx, err, "Failed to send password reset email", slog.String("user_id", user.UserID))
		return apperrors.NewInternalServerError(msgMailFailed)
	}
	return nil
}

// VerifyForgetOTP hands out a token for the code's owner; the account is not activated.
func (s *authService) VerifyForgetOTP(ctx context.Context, code string) (string, error) {
	var bearer string
	err := s.consumeOTP(ctx, domain.OTPPurposePasswordReset, code, func(txCtx context.Context, user *domain.User) error {
		var err error
		bearer, err = s.tokens.IssueToken(txCtx, *user)
		return err
	})
	if err != nil {
		return "", err
	}
	return bearer, nil
}

// UpdatePassword stores the new hash and rotates the token in one transaction.
func (s *authService) UpdatePassword(ctx context.Context, user domain.User, newPassword string) (string, error) {
	if newPassword == "" {
		return "", apperrors.NewBadRequestError(msgNewPasswordNeeded)
	}

	hash, err := utils.HashPassword(newPassword)
	if err != nil {
		return "", fmt.Errorf("failed to hash password: %w", err)
	}

	var bearer string
	err = s.txManager.WithinTransaction(ctx, func(txCtx context.Context) error {
		user.PasswordHash = hash
		user.LastUpdatedAt = s.now()
		if err := s.userRepo.UpdateUser(txCtx, user); err != nil {
			return fmt.Errorf("failed to update password: %w", err)
		}
		bearer, err = s.tokens.IssueToken(txCtx, user)
		return err
	})
	if err != nil {
		return "", err
	}
	s.LogInfo(ctx, "Password updated", slog.String("user_id", user.UserID))
	return bearer, nil
}
