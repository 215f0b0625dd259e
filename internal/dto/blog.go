package dto

import (
	"time"

	"github.com/SscSPs/blogging_platform_app/internal/core/domain"
)

// CreatePostRequest is accepted as JSON or multipart form (with an optional "image" file).
type CreatePostRequest struct {
	Title    string `json:"title" form:"title" binding:"required,max=250"`
	Content  string `json:"content" form:"content" binding:"required"`
	Category string `json:"category" form:"category" binding:"required,max=100"`
	Status   string `json:"status" form:"status" binding:"omitempty,blogstatus"`
}

// UpdatePostRequest is a partial update; nil fields are left untouched.
type UpdatePostRequest struct {
	Title    *string `json:"title" form:"title" binding:"omitempty,max=250"`
	Content  *string `json:"content" form:"content"`
	Category *string `json:"category" form:"category" binding:"omitempty,max=100"`
	Status   *string `json:"status" form:"status" binding:"omitempty,blogstatus"`
}

// CommentRequest is the body of a new comment.
type CommentRequest struct {
	Comment string `json:"comment"`
}

// ListPostsParams defines query parameters for the public feed.
type ListPostsParams struct {
	Limit     int     `form:"limit,default=20"`
	NextToken *string `form:"next_token"`
}

// PageParams defines offset pagination query parameters.
type PageParams struct {
	Limit  int `form:"limit,default=20"`
	Offset int `form:"offset,default=0"`
}

// SearchPostsParams defines the search query parameters.
type SearchPostsParams struct {
	Search string `form:"search"`
	Limit  int    `form:"limit,default=20"`
	Offset int    `form:"offset,default=0"`
}

// AuthorResponse identifies a post author.
type AuthorResponse struct {
	UserID   string `json:"id"`
	Username string `json:"username"`
}

// BlogPostResponse is the wire form of a post.
type BlogPostResponse struct {
	PostID    string         `json:"id"`
	Author    AuthorResponse `json:"author"`
	Title     string         `json:"title"`
	Content   string         `json:"content"`
	Category  string         `json:"category"`
	Image     *string        `json:"image"`
	Status    string         `json:"status"`
	CreatedOn time.Time      `json:"created_on"`
	UpdatedOn time.Time      `json:"updated_on"`
}

// ListPostsResponse is a page of the public feed.
type ListPostsResponse struct {
	Posts     []BlogPostResponse `json:"posts"`
	NextToken *string            `json:"next_token,omitempty"`
}

// CommentResponse is the wire form of a comment.
type CommentResponse struct {
	CommentID string    `json:"id"`
	PostID    string    `json:"blog_post"`
	Author    string    `json:"author"`
	Email     string    `json:"email"`
	Content   string    `json:"content"`
	CreatedAt time.Time `json:"created_at"`
}

func ToBlogPostResponse(post *domain.BlogPost) BlogPostResponse {
	return BlogPostResponse{
		PostID: post.PostID,
		Author: AuthorResponse{
			UserID:   post.AuthorID,
			Username: post.AuthorUsername,
		},
		Title:     post.Title,
		Content:   post.Content,
		Category:  post.Category.Name,
		Image:     post.ImageURL,
		Status:    string(post.Status),
		CreatedOn: post.CreatedAt,
		UpdatedOn: post.UpdatedAt,
	}
}

// ToBlogPostResponses converts a slice, never returning nil.
func ToBlogPostResponses(posts []domain.BlogPost) []BlogPostResponse {
	responses := make([]BlogPostResponse, len(posts))
	for i := range posts {
		responses[i] = ToBlogPostResponse(&posts[i])
	}
	return responses
}

func ToCommentResponse(comment *domain.Comment) CommentResponse {
	return CommentResponse{
		CommentID: comment.CommentID,
		PostID:    comment.PostID,
		Author:    comment.AuthorName,
		Email:     comment.AuthorEmail,
		Content:   comment.Content,
		CreatedAt: comment.CreatedAt,
	}
}

func ToCommentResponses(comments []domain.Comment) []CommentResponse {
	responses := make([]CommentResponse, len(comments))
	for i := range comments {
		responses[i] = ToCommentResponse(&comments[i])
	}
	return responses
}
