package domain

import "time"

// Event types published to the event stream.
const (
	EventUserRegistered = "user.registered"
	EventUserActivated  = "user.activated"
	EventPostCreated    = "blog_post.created"
	EventPostDeleted    = "blog_post.deleted"
	EventCommentPosted  = "comment.posted"
)

// Event is a domain event emitted after a successful state change.
type Event struct {
	Type       string         `json:"type"`
	Key        string         `json:"key"`
	OccurredAt time.Time      `json:"occurred_at"`
	Payload    map[string]any `json:"payload"`
}
