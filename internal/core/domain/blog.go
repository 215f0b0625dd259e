package domain

import (
	"io"
	"time"
)

// PostStatus is the publication state of a blog post.
type PostStatus string

const (
	PostStatusDraft     PostStatus = "draft"
	PostStatusPublished PostStatus = "published"
)

// MaxTitleLength bounds BlogPost.Title.
const MaxTitleLength = 250

// IsValid reports whether s is a known status.
func (s PostStatus) IsValid() bool {
	return s == PostStatusDraft || s == PostStatusPublished
}

// Category groups posts; names are unique and created on first use.
type Category struct {
	CategoryID string
	Name       string
	CreatedAt  time.Time
}

// BlogPost is an article written by a user.
type BlogPost struct {
	PostID         string
	AuthorID       string
	AuthorUsername string
	Title          string
	Content        string
	Category       Category
	ImageURL       *string
	Status         PostStatus
	CreatedAt      time.Time
	UpdatedAt      time.Time
	DeletedAt      *time.Time
}

func (p BlogPost) IsSoftDeleted() bool {
	return p.DeletedAt != nil
}

func (p BlogPost) IsPublished() bool {
	return p.Status == PostStatusPublished
}

// IsVisibleTo reports whether viewerID may read the post: published posts are
// public, drafts are visible to their author only, deleted posts to nobody.
func (p BlogPost) IsVisibleTo(viewerID string) bool {
	if p.IsSoftDeleted() {
		return false
	}
	return p.IsPublished() || (viewerID != "" && p.AuthorID == viewerID)
}

// Comment is an immutable reader comment. The author name and email are
// copied from the commenting user at the time of posting.
type Comment struct {
	CommentID   string
	PostID      string
	AuthorName  string
	AuthorEmail string
	Content     string
	CreatedAt   time.Time
}

// PostCursor marks the last post of a page in created_at DESC, post_id DESC order.
type PostCursor struct {
	CreatedAt time.Time
	PostID    string
}

// ImageUpload is an image attached to a post create or update request.
type ImageUpload struct {
	Filename    string
	ContentType string
	Size        int64
	Body        io.Reader
}
