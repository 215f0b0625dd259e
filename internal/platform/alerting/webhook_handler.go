// Package alerting forwards error level log records to a chat webhook.
package alerting

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"github.com/slack-go/slack"
)

const postTimeout = 3 * time.Second

// WebhookHandler wraps an slog.Handler and posts every ERROR record to a
// Slack incoming webhook as an attachment message.
type WebhookHandler struct {
	next       slog.Handler
	webhookURL string
	attrs      []slog.Attr
	group      string
}

// NewWebhookHandler returns next unchanged when webhookURL is empty.
func NewWebhookHandler(next slog.Handler, webhookURL string) slog.Handler {
	if webhookURL == "" {
		return next
	}
	return &WebhookHandler{
		next:       next,
		webhookURL: webhookURL,
	}
}

func (h *WebhookHandler) Enabled(ctx context.Context, level slog.Level) bool {
	return level >= slog.LevelError || h.next.Enabled(ctx, level)
}

func (h *WebhookHandler) Handle(ctx context.Context, r slog.Record) error {
	var err error
	if h.next.Enabled(ctx, r.Level) {
		err = h.next.Handle(ctx, r)
	}
	if r.Level >= slog.LevelError {
		if postErr := h.post(ctx, r); postErr != nil && err == nil {
			err = postErr
		}
	}
	return err
}

func (h *WebhookHandler) WithAttrs(attrs []slog.Attr) slog.Handler {
	clone := *h
	clone.next = h.next.WithAttrs(attrs)
	clone.attrs = append(append([]slog.Attr{}, h.attrs...), h.prefixed(attrs)...)
	return &clone
}

func (h *WebhookHandler) WithGroup(name string) slog.Handler {
	if name == "" {
		return h
	}
	clone := *h
	clone.next = h.next.WithGroup(name)
	clone.group = h.group + name + "."
	return &clone
}

func (h *WebhookHandler) prefixed(attrs []slog.Attr) []slog.Attr {
	if h.group == "" {
		return attrs
	}
	out := make([]slog.Attr, len(attrs))
	for i, a := range attrs {
		out[i] = slog.Attr{Key: h.group + a.Key, Value: a.Value}
	}
	return out
}

func (h *WebhookHandler) buildMessage(r slog.Record) *slack.WebhookMessage {
	values := make(map[string]string)
	for _, a := range h.attrs {
		values[a.Key] = a.Value.String()
	}
	r.Attrs(func(a slog.Attr) bool {
		values[h.group+a.Key] = a.Value.String()
		return true
	})

	valueOr := func(key, fallback string) string {
		if v, ok := values[key]; ok && v != "" {
			return v
		}
		return fallback
	}

	return &slack.WebhookMessage{
		Text: "Error at " + r.Time.UTC().Format("Monday, 02 Jan 2006 15:04:05 +0000"),
		Attachments: []slack.Attachment{{
			Title: fmt.Sprintf("%s: %s", r.Level, r.Message),
			Color: "danger",
			Fields: []slack.AttachmentField{
				{Title: "Level", Value: r.Level.String(), Short: true},
				{Title: "Method", Value: valueOr("method", "No Request"), Short: true},
				{Title: "Path", Value: valueOr("path", "No Request"), Short: true},
				{Title: "User", Value: valueOr("user_id", "Anonymous"), Short: true},
				{Title: "Status Code", Value: valueOr("status", "N/A"), Short: true},
				{Title: "Request ID", Value: valueOr("request_id", "N/A"), Short: true},
				{Title: "Error", Value: valueOr("error", "N/A"), Short: false},
			},
		}},
	}
}

func (h *WebhookHandler) post(ctx context.Context, r slog.Record) error {
	ctx, cancel := context.WithTimeout(context.WithoutCancel(ctx), postTimeout)
	defer cancel()

	if err := slack.PostWebhookContext(ctx, h.webhookURL, h.buildMessage(r)); err != nil {
		return fmt.Errorf("failed to post alert: %w", err)
	}
	return nil
}
