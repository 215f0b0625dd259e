// Package mail renders and delivers the transactional emails of the platform.
package mail

import (
	"context"
	"fmt"

	"github.com/SscSPs/blogging_platform_app/internal/core/domain"
	"github.com/SscSPs/blogging_platform_app/internal/core/ports/gateways"
)

type Notifier struct {
	sender Sender
}

func NewNotifier(sender Sender) *Notifier {
	return &Notifier{sender: sender}
}

var _ gateways.Notifier = (*Notifier)(nil)

func (n *Notifier) SendActivationOTP(ctx context.Context, user domain.User, code string) error {
	body, err := render(activationTmpl, otpData{Username: user.Username, Code: code})
	if err != nil {
		return err
	}
	return n.sender.Send(ctx, user.Email, fmt.Sprintf("Activation OTP for %s", user.Username), body)
}

func (n *Notifier) SendForgetPasswordOTP(ctx context.Context, user domain.User, code string) error {
	body, err := render(forgetPasswordTmpl, otpData{Username: user.Username, Code: code})
	if err != nil {
		return err
	}
	return n.sender.Send(ctx, user.Email, fmt.Sprintf("Forget Password OTP for %s", user.Username), body)
}

// SendCommentNotification tells the post author about a new comment.
func (n *Notifier) SendCommentNotification(ctx context.Context, author domain.User, post domain.BlogPost, comment domain.Comment) error {
	body, err := render(commentTmpl, commentData{
		Author:    author.Username,
		PostTitle: post.Title,
		Commenter: comment.AuthorName,
		Content:   comment.Content,
	})
	if err != nil {
		return err
	}
	return n.sender.Send(ctx, author.Email, fmt.Sprintf("Got Comment On %s", post.Title), body)
}
