package services

import (
	"context"

	"github.com/SscSPs/blogging_platform_app/internal/core/domain"
	"github.com/SscSPs/blogging_platform_app/internal/dto"
)

// BlogReaderSvc defines read operations for posts and comments.
// viewerID is empty for anonymous requests.
type BlogReaderSvc interface {
	ListPublishedPosts(ctx context.Context, params dto.ListPostsParams) (*dto.ListPostsResponse, error)
	GetPost(ctx context.Context, postID string, viewerID string) (*domain.BlogPost, error)
	ListMyPosts(ctx context.Context, authorID string, params dto.PageParams) ([]domain.BlogPost, error)
	SearchPosts(ctx context.Context, params dto.SearchPostsParams) ([]domain.BlogPost, error)
	ListComments(ctx context.Context, postID string, viewerID string, params dto.PageParams) ([]domain.Comment, error)
}

// BlogWriterSvc defines author actions on posts.
type BlogWriterSvc interface {
	CreatePost(ctx context.Context, author domain.User, req dto.CreatePostRequest, image *domain.ImageUpload) (*domain.BlogPost, error)
	UpdatePost(ctx context.Context, user domain.User, postID string, req dto.UpdatePostRequest, image *domain.ImageUpload) (*domain.BlogPost, error)
	SoftDeletePost(ctx context.Context, user domain.User, postID string) error
}

// CommentSvc defines commenting on posts.
type CommentSvc interface {
	CommentOnPost(ctx context.Context, user domain.User, postID string, content string) (*domain.Comment, error)
}

// BlogSvcFacade combines all blog-related service interfaces
type BlogSvcFacade interface {
	BlogReaderSvc
	BlogWriterSvc
	CommentSvc
}
