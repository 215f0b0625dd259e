package mapping

import (
	"github.com/SscSPs/blogging_platform_app/internal/core/domain"
	"github.com/SscSPs/blogging_platform_app/internal/models"
)

// ToModelAuthToken converts a domain AuthToken to a model AuthToken
func ToModelAuthToken(d domain.AuthToken) models.AuthToken {
	return models.AuthToken{
		TokenID:    d.TokenID,
		UserID:     d.UserID,
		KeyHash:    d.KeyHash,
		CreatedAt:  d.CreatedAt,
		LastUsedAt: d.LastUsedAt,
	}
}

// ToDomainAuthToken converts a model AuthToken to a domain AuthToken
func ToDomainAuthToken(m models.AuthToken) domain.AuthToken {
	return domain.AuthToken{
		TokenID:    m.TokenID,
		UserID:     m.UserID,
		KeyHash:    m.KeyHash,
		CreatedAt:  m.CreatedAt,
		LastUsedAt: m.LastUsedAt,
	}
}
