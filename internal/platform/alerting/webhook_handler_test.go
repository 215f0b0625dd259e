package alerting

import (
	"bytes"
	"encoding/json"
	"errors"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"sync"
	"testing"

	"github.com/slack-go/slack"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type capture struct {
	mu       sync.Mutex
	messages []slack.WebhookMessage
}

func (c *capture) server(t *testing.T) *httptest.Server {
	t.Helper()
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		var msg slack.WebhookMessage
		require.NoError(t, json.NewDecoder(r.Body).Decode(&msg))
		c.mu.Lock()
		c.messages = append(c.messages, msg)
		c.mu.Unlock()
		w.WriteHeader(http.StatusOK)
	}))
	t.Cleanup(srv.Close)
	return srv
}

func fieldValue(msg slack.WebhookMessage, title string) string {
	for _, f := range msg.Attachments[0].Fields {
		if f.Title == title {
			return f.Value
		}
	}
	return ""
}

func TestErrorRecordsArePosted(t *testing.T) {
	c := &capture{}
	srv := c.server(t)

	var out bytes.Buffer
	logger := slog.New(NewWebhookHandler(slog.NewJSONHandler(&out, nil), srv.URL)).
		With("method", "POST", "path", "/create-blog/")

	logger.Error("Failed to create post", "user_id", "u-1", "error", errors.New("db down"))

	require.Len(t, c.messages, 1)
	msg := c.messages[0]
	assert.Equal(t, "ERROR: Failed to create post", msg.Attachments[0].Title)
	assert.Equal(t, "danger", msg.Attachments[0].Color)
	assert.Equal(t, "POST", fieldValue(msg, "Method"))
	assert.Equal(t, "/create-blog/", fieldValue(msg, "Path"))
	assert.Equal(t, "u-1", fieldValue(msg, "User"))
	assert.Equal(t, "db down", fieldValue(msg, "Error"))
	assert.Contains(t, out.String(), "Failed to create post")
}

func TestLowerLevelsAreNotPosted(t *testing.T) {
	c := &capture{}
	srv := c.server(t)

	var out bytes.Buffer
	logger := slog.New(NewWebhookHandler(slog.NewJSONHandler(&out, nil), srv.URL))

	logger.Info("request served")
	logger.Warn("slow request")

	assert.Empty(t, c.messages)
	assert.Contains(t, out.String(), "slow request")
}

func TestMissingRequestFieldsUseFallbacks(t *testing.T) {
	c := &capture{}
	srv := c.server(t)

	logger := slog.New(NewWebhookHandler(slog.NewJSONHandler(&bytes.Buffer{}, nil), srv.URL))
	logger.Error("migration failed")

	require.Len(t, c.messages, 1)
	assert.Equal(t, "No Request", fieldValue(c.messages[0], "Method"))
	assert.Equal(t, "Anonymous", fieldValue(c.messages[0], "User"))
}

func TestEmptyURLReturnsWrappedHandler(t *testing.T) {
	next := slog.NewJSONHandler(&bytes.Buffer{}, nil)
	assert.Same(t, next, NewWebhookHandler(next, ""))
}

func TestWebhookFailureIsReported(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		w.WriteHeader(http.StatusInternalServerError)
	}))
	defer srv.Close()

	h := NewWebhookHandler(slog.NewJSONHandler(&bytes.Buffer{}, nil), srv.URL)
	var r slog.Record
	r.Level = slog.LevelError
	r.Message = "boom"

	err := h.Handle(t.Context(), r)
	assert.ErrorContains(t, err, "500")
}
