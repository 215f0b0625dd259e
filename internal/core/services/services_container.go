package services

import (
	"github.com/SscSPs/blogging_platform_app/internal/core/ports/gateways"
	portsrepo "github.com/SscSPs/blogging_platform_app/internal/core/ports/repositories"
	portssvc "github.com/SscSPs/blogging_platform_app/internal/core/ports/services"
	"github.com/SscSPs/blogging_platform_app/internal/platform/config"
	"github.com/SscSPs/blogging_platform_app/internal/utils"
)

// Integrations holds the outbound adapters shared by the services.
type Integrations struct {
	Notifier  gateways.Notifier
	Images    gateways.ImageStorage
	Events    gateways.EventPublisher
	Analytics *utils.PosthogClientWrapper
}

// NewServiceContainer creates a new service container with properly initialized dependencies
func NewServiceContainer(cfg *config.Config, repos portsrepo.RepositoryProvider, integrations Integrations) *portssvc.ServiceContainer {
	container := &portssvc.ServiceContainer{}

	// Token service first: every auth flow rotates tokens through it
	container.Tokens = NewTokenService(cfg.AuthTokenSecret, cfg.AuthTokenIssuer, repos.AuthTokenRepo, repos.UserRepo)

	authOpts := []AuthServiceOption{
		WithOTPTTL(cfg.OTPTTL),
		WithAuthEventPublisher(integrations.Events),
		WithAuthAnalytics(integrations.Analytics),
	}
	if cfg.GoogleOAuthEnabled() {
		authOpts = append(authOpts, WithGoogleOAuth(
			NewGoogleOAuthService(cfg.GoogleClientID, cfg.GoogleClientSecret, cfg.GoogleRedirectURI)))
	}
	container.Auth = NewAuthService(
		repos.UserRepo,
		repos.OTPRepo,
		repos.TxManager,
		container.Tokens,
		integrations.Notifier,
		authOpts...,
	)

	container.Profile = NewProfileService(repos.UserRepo, container.Tokens)

	container.Blog = NewBlogService(
		repos,
		integrations.Notifier,
		WithImageStorage(integrations.Images),
		WithBlogEventPublisher(integrations.Events),
		WithBlogAnalytics(integrations.Analytics),
	)

	return container
}
