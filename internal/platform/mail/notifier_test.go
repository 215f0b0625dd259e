package mail

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/SscSPs/blogging_platform_app/internal/core/domain"
)

type sentMail struct {
	to, subject, body string
}

type fakeSender struct {
	sent []sentMail
	err  error
}

func (f *fakeSender) Send(_ context.Context, to, subject, body string) error {
	if f.err != nil {
		return f.err
	}
	f.sent = append(f.sent, sentMail{to: to, subject: subject, body: body})
	return nil
}

var alice = domain.User{UserID: "u-1", Username: "alice", Email: "alice@example.com"}

func TestSendActivationOTP(t *testing.T) {
	sender := &fakeSender{}
	n := NewNotifier(sender)

	require.NoError(t, n.SendActivationOTP(context.Background(), alice, "123456"))

	require.Len(t, sender.sent, 1)
	assert.Equal(t, "alice@example.com", sender.sent[0].to)
	assert.Equal(t, "Activation OTP for alice", sender.sent[0].subject)
	assert.Contains(t, sender.sent[0].body, "123456")
}

func TestSendForgetPasswordOTP(t *testing.T) {
	sender := &fakeSender{}
	n := NewNotifier(sender)

	require.NoError(t, n.SendForgetPasswordOTP(context.Background(), alice, "654321"))

	require.Len(t, sender.sent, 1)
	assert.Equal(t, "Forget Password OTP for alice", sender.sent[0].subject)
	assert.Contains(t, sender.sent[0].body, "654321")
}

func TestSendCommentNotification(t *testing.T) {
	sender := &fakeSender{}
	n := NewNotifier(sender)
	post := domain.BlogPost{PostID: "p-1", Title: "Go generics"}
	comment := domain.Comment{AuthorName: "Bob Builder", AuthorEmail: "bob@example.com", Content: "Nice read"}

	require.NoError(t, n.SendCommentNotification(context.Background(), alice, post, comment))

	require.Len(t, sender.sent, 1)
	assert.Equal(t, "alice@example.com", sender.sent[0].to)
	assert.Equal(t, "Got Comment On Go generics", sender.sent[0].subject)
	assert.Contains(t, sender.sent[0].body, "Bob Builder")
	assert.Contains(t, sender.sent[0].body, "Nice read")
}

func TestSenderErrorIsReturned(t *testing.T) {
	sender := &fakeSender{err: errors.New("smtp down")}
	n := NewNotifier(sender)

	err := n.SendActivationOTP(context.Background(), alice, "123456")
	assert.EqualError(t, err, "smtp down")
}
