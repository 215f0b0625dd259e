package mapping

import (
	"github.com/SscSPs/blogging_platform_app/internal/core/domain"
	"github.com/SscSPs/blogging_platform_app/internal/models"
)

func ToModelOTP(d domain.OTP) models.OTP {
	return models.OTP{
		OTPID:     d.OTPID,
		UserID:    d.UserID,
		Code:      d.Code,
		CreatedAt: d.CreatedAt,
	}
}

// ToDomainOTP converts a stored code; the purpose comes from the table it was read from.
func ToDomainOTP(m models.OTP, purpose domain.OTPPurpose) domain.OTP {
	return domain.OTP{
		OTPID:     m.OTPID,
		UserID:    m.UserID,
		Code:      m.Code,
		Purpose:   purpose,
		CreatedAt: m.CreatedAt,
	}
}
