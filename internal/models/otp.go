package models

import "time"

// OTP mirrors a row of activation_otps or forget_password_otps.
type OTP struct {
	OTPID     string    `db:"otp_id"`
	UserID    string    `db:"user_id"`
	Code      string    `db:"code"`
	CreatedAt time.Time `db:"created_at"`
}
