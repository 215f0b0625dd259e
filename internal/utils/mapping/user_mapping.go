package mapping

import (
	"github.com/SscSPs/blogging_platform_app/internal/core/domain"
	"github.com/SscSPs/blogging_platform_app/internal/models"
)

// ToModelUser converts a domain User to a model User
func ToModelUser(d domain.User) models.User {
	return models.User{
		UserID:         d.UserID,
		Username:       d.Username,
		Email:          d.Email,
		FirstName:      d.FirstName,
		LastName:       d.LastName,
		PasswordHash:   d.PasswordHash,
		IsActive:       d.IsActive,
		AuthProvider:   string(d.AuthProvider),
		ProviderUserID: d.ProviderUserID,
		CreatedAt:      d.CreatedAt,
		LastUpdatedAt:  d.LastUpdatedAt,
		DeletedAt:      d.DeletedAt,
	}
}

// ToDomainUser converts a model User to a domain User
func ToDomainUser(m models.User) domain.User {
	provider := domain.AuthProvider(m.AuthProvider)
	if provider == "" {
		provider = domain.ProviderLocal
	}
	return domain.User{
		UserID:         m.UserID,
		Username:       m.Username,
		Email:          m.Email,
		FirstName:      m.FirstName,
		LastName:       m.LastName,
		PasswordHash:   m.PasswordHash,
		IsActive:       m.IsActive,
		AuthProvider:   provider,
		ProviderUserID: m.ProviderUserID,
		CreatedAt:      m.CreatedAt,
		LastUpdatedAt:  m.LastUpdatedAt,
		DeletedAt:      m.DeletedAt,
	}
}
