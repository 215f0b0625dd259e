package repositories

import (
	"context"

	"github.com/SscSPs/blogging_platform_app/internal/core/domain"
)

// OTPRepositoryFacade stores one-time codes, one table per purpose.
type OTPRepositoryFacade interface {
	// SaveOTP persists a code. A clash with an existing code of the same purpose
	// returns apperrors.ErrDuplicate without aborting the surrounding transaction.
	SaveOTP(ctx context.Context, otp domain.OTP) error

	// FindOTPByCode looks a code up by value alone.
	FindOTPByCode(ctx context.Context, purpose domain.OTPPurpose, code string) (*domain.OTP, error)

	// DeleteOTPsForUser removes every outstanding code of the purpose for the user.
	DeleteOTPsForUser(ctx context.Context, purpose domain.OTPPurpose, userID string) error

	// DeleteOTP removes a single consumed code.
	DeleteOTP(ctx context.Context, purpose domain.OTPPurpose, otpID string) error
}
