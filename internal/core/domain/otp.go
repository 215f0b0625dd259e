package domain

import "time"

// OTPPurpose selects which flow a one-time code belongs to.
type OTPPurpose string

const (
	OTPPurposeActivation    OTPPurpose = "activation"
	OTPPurposePasswordReset OTPPurpose = "password_reset"
)

// OTPLength is the number of digits of every issued code.
const OTPLength = 6

// OTP is a one-time numeric code proving control of the user's email address.
// Codes are unique within a purpose, so a code value alone identifies its owner.
type OTP struct {
	OTPID     string
	UserID    string
	Code      string
	Purpose   OTPPurpose
	CreatedAt time.Time
}

// IsExpired reports whether the code is older than ttl. A zero ttl never expires.
func (o OTP) IsExpired(ttl time.Duration, now time.Time) bool {
	if ttl <= 0 {
		return false
	}
	return now.After(o.CreatedAt.Add(ttl))
}
