package pgsql

import (
	"context"
	"errors"
	"fmt"

	"github.com/SscSPs/blogging_platform_app/internal/apperrors"
	"github.com/SscSPs/blogging_platform_app/internal/core/domain"
	portsrepo "github.com/SscSPs/blogging_platform_app/internal/core/ports/repositories"
	"github.com/SscSPs/blogging_platform_app/internal/models"
	"github.com/SscSPs/blogging_platform_app/internal/utils/mapping"
	"github.com/jackc/pgx/v5"
)

type PgxOTPRepository struct {
	BaseRepository
}

func newPgxOTPRepository(db pool) portsrepo.OTPRepositoryFacade {
	return &PgxOTPRepository{BaseRepository: BaseRepository{Pool: db}}
}

var _ portsrepo.OTPRepositoryFacade = (*PgxOTPRepository)(nil)

// otpTables maps each purpose to its table. Table names never come from user input.
var otpTables = map[domain.OTPPurpose]string{
	domain.OTPPurposeActivation:    "activation_otps",
	domain.OTPPurposePasswordReset: "forget_password_otps",
}

func otpTable(purpose domain.OTPPurpose) (string, error) {
	table, ok := otpTables[purpose]
	if !ok {
		return "", fmt.Errorf("unknown otp purpose %q", purpose)
	}
	return table, nil
}

// SaveOTP uses ON CONFLICT DO NOTHING so a code clash does not poison an open transaction.
func (r *PgxOTPRepository) SaveOTP(ctx context.Context, otp domain.OTP) error {
	table, err := otpTable(otp.Purpose)
	if err != nil {
		return err
	}
	m := mapping.ToModelOTP(otp)
	query := `
		INSERT INTO ` + table + ` (otp_id, user_id, code, created_at)
		VALUES ($1, $2, $3, $4)
		ON CONFLICT (code) DO NOTHING
	`
	cmdTag, err := r.conn(ctx).Exec(ctx, query, m.OTPID, m.UserID, m.Code, m.CreatedAt)
	if err != nil {
		return fmt.Errorf("failed to save %s code: %w", otp.Purpose, err)
	}
	if cmdTag.RowsAffected() == 0 {
		return fmt.Errorf("%s code already in use: %w", otp.Purpose, apperrors.ErrDuplicate)
	}
	return nil
}

func (r *PgxOTPRepository) FindOTPByCode(ctx context.Context, purpose domain.OTPPurpose, code string) (*domain.OTP, error) {
	table, err := otpTable(purpose)
	if err != nil {
		return nil, err
	}
	query := `SELECT otp_id, user_id, code, created_at FROM ` + table + ` WHERE code = $1`

	var m models.OTP
	err = r.conn(ctx).QueryRow(ctx, query, code).Scan(&m.OTPID, &m.UserID, &m.Code, &m.CreatedAt)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperrors.ErrNotFound
		}
		return nil, fmt.Errorf("failed to find %s code: %w", purpose, err)
	}
	otp := mapping.ToDomainOTP(m, purpose)
	return &otp, nil
}

func (r *PgxOTPRepository) DeleteOTPsForUser(ctx context.Context, purpose domain.OTPPurpose, userID string) error {
	table, err := otpTable(purpose)
	if err != nil {
		return err
	}
	if _, err := r.conn(ctx).Exec(ctx, `DELETE FROM `+table+` WHERE user_id = $1`, userID); err != nil {
		return fmt.Errorf("failed to delete %s codes for user %s: %w", purpose, userID, err)
	}
	return nil
}

func (r *PgxOTPRepository) DeleteOTP(ctx context.Context, purpose domain.OTPPurpose, otpID string) error {
	table, err := otpTable(purpose)
	if err != nil {
		return err
	}
	cmdTag, err := r.conn(ctx).Exec(ctx, `DELETE FROM `+table+` WHERE otp_id = $1`, otpID)
	if err != nil {
		return fmt.Errorf("failed to delete %s code: %w", purpose, err)
	}
	if cmdTag.RowsAffected() == 0 {
		return apperrors.ErrNotFound
	}
	return nil
}
