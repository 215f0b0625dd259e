package repositories

import (
	"context"
	"time"

	"github.com/SscSPs/blogging_platform_app/internal/core/domain"
)

// CategoryRepositoryFacade manages post categories.
type CategoryRepositoryFacade interface {
	// GetOrCreateCategory returns the category with the given name, creating it when missing.
	GetOrCreateCategory(ctx context.Context, name string) (*domain.Category, error)
}

// BlogPostReader defines read operations for blog posts
type BlogPostReader interface {
	// FindPostByID returns the post even when soft-deleted so owners get precise errors.
	FindPostByID(ctx context.Context, postID string) (*domain.BlogPost, error)

	// ListPublishedPosts returns published, non-deleted posts of live authors,
	// newest first, strictly after the cursor when one is given.
	ListPublishedPosts(ctx context.Context, limit int, after *domain.PostCursor) ([]domain.BlogPost, error)

	// ListPostsByAuthor returns the author's non-deleted posts, drafts included.
	ListPostsByAuthor(ctx context.Context, authorID string, limit int, offset int) ([]domain.BlogPost, error)

	// SearchPublishedPosts matches query as a case-insensitive substring of the title or category name.
	SearchPublishedPosts(ctx context.Context, query string, limit int, offset int) ([]domain.BlogPost, error)
}

// BlogPostWriter defines write operations for blog posts
type BlogPostWriter interface {
	SavePost(ctx context.Context, post domain.BlogPost) error
	UpdatePost(ctx context.Context, post domain.BlogPost) error
}

// BlogPostLifecycleManager defines soft deletion of posts
type BlogPostLifecycleManager interface {
	MarkPostDeleted(ctx context.Context, postID string, deletedAt time.Time) error
}

// BlogPostRepositoryFacade combines all blog post repository interfaces
type BlogPostRepositoryFacade interface {
	BlogPostReader
	BlogPostWriter
	BlogPostLifecycleManager
}

// CommentRepositoryFacade stores comments.
type CommentRepositoryFacade interface {
	SaveComment(ctx context.Context, comment domain.Comment) error

	// ListCommentsForPost returns comments oldest first.
	ListCommentsForPost(ctx context.Context, postID string, limit int, offset int) ([]domain.Comment, error)
}
