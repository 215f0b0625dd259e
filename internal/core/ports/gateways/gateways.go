// Package gateways declares the outbound collaborators the services talk to:
// email delivery, image storage and the domain event stream.
package gateways

import (
	"context"

	"github.com/SscSPs/blogging_platform_app/internal/core/domain"
)

// Notifier delivers transactional emails.
type Notifier interface {
	SendActivationOTP(ctx context.Context, user domain.User, code string) error
	SendForgetPasswordOTP(ctx context.Context, user domain.User, code string) error
	SendCommentNotification(ctx context.Context, author domain.User, post domain.BlogPost, comment domain.Comment) error
}

// ImageStorage stores post images and returns their public URL.
type ImageStorage interface {
	Enabled() bool
	UploadImage(ctx context.Context, upload domain.ImageUpload) (string, error)
	// DeleteImage removes an image by the URL UploadImage returned.
	DeleteImage(ctx context.Context, url string) error
}

// EventPublisher emits domain events for downstream consumers.
type EventPublisher interface {
	Publish(ctx context.Context, event domain.Event) error
}
