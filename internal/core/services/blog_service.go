package services

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"strings"

	"github.com/google/uuid"

	"github.com/SscSPs/blogging_platform_app/internal/apperrors"
	"github.com/SscSPs/blogging_platform_app/internal/core/domain"
	"github.com/SscSPs/blogging_platform_app/internal/core/ports/gateways"
	portsrepo "github.com/SscSPs/blogging_platform_app/internal/core/ports/repositories"
	portssvc "github.com/SscSPs/blogging_platform_app/internal/core/ports/services"
	"github.com/SscSPs/blogging_platform_app/internal/dto"
	"github.com/SscSPs/blogging_platform_app/internal/utils"
	"github.com/SscSPs/blogging_platform_app/internal/utils/pagination"
)

const (
	defaultPageSize = 20
	maxPageSize     = 100

	msgPostNotFound   = "Blog Post Does Not Exist."
	msgNoUpdateRights = "You Have No Rights to Update.[OnlyAuthor]"
	msgNoDeleteRights = "You Have No Rights to Delete.[OnlyAuthor]"
	msgPostDeleted    = "Blog post has already been soft-deleted."
)

type blogService struct {
	BaseService
	postRepo     portsrepo.BlogPostRepositoryFacade
	categoryRepo portsrepo.CategoryRepositoryFacade
	commentRepo  portsrepo.CommentRepositoryFacade
	userRepo     portsrepo.UserReader
	txManager    portsrepo.TransactionManager
	images       gateways.ImageStorage
	notifier     gateways.Notifier
}

// BlogServiceOption configures optional collaborators of the blog service.
type BlogServiceOption func(*blogService)

// WithImageStorage enables image uploads for posts.
func WithImageStorage(images gateways.ImageStorage) BlogServiceOption {
	return func(s *blogService) {
		s.images = images
	}
}

// WithBlogEventPublisher emits post and comment events.
func WithBlogEventPublisher(events gateways.EventPublisher) BlogServiceOption {
	return func(s *blogService) {
		s.Events = events
	}
}

// WithBlogAnalytics reports post and comment events to product analytics.
func WithBlogAnalytics(analytics *utils.PosthogClientWrapper) BlogServiceOption {
	return func(s *blogService) {
		s.Analytics = analytics
	}
}

// NewBlogService creates the service behind every post and comment endpoint.
func NewBlogService(repos portsrepo.RepositoryProvider, notifier gateways.Notifier, opts ...BlogServiceOption) portssvc.BlogSvcFacade {
	s := &blogService{
		postRepo:     repos.BlogPostRepo,
		categoryRepo: repos.CategoryRepo,
		commentRepo:  repos.CommentRepo,
		userRepo:     repos.UserRepo,
		txManager:    repos.TxManager,
		notifier:     notifier,
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

var _ portssvc.BlogSvcFacade = (*blogService)(nil)

// findPost returns a 404 AppError for unknown or malformed ids. Soft-deleted posts are returned.
func (s *blogService) findPost(ctx context.Context, postID string) (*domain.BlogPost, error) {
	if _, err := uuid.Parse(postID); err != nil {
		return nil, apperrors.NewNotFoundError(msgPostNotFound)
	}
	post, err := s.postRepo.FindPostByID(ctx, postID)
	if err != nil {
		if errors.Is(err, apperrors.ErrNotFound) {
			return nil, apperrors.NewNotFoundError(msgPostNotFound)
		}
		return nil, fmt.Errorf("failed to find blog post %s: %w", postID, err)
	}
	return post, nil
}

// findVisiblePost hides drafts of other authors and deleted posts behind a 404.
func (s *blogService) findVisiblePost(ctx context.Context, postID, viewerID string) (*domain.BlogPost, error) {
	post, err := s.findPost(ctx, postID)
	if err != nil {
		return nil, err
	}
	if !post.IsVisibleTo(viewerID) {
		return nil, apperrors.NewNotFoundError(msgPostNotFound)
	}
	return post, nil
}

func parseStatus(raw string) (domain.PostStatus, error) {
	if raw == "" {
		return domain.PostStatusDraft, nil
	}
	status := domain.PostStatus(strings.ToLower(strings.TrimSpace(raw)))
	if !status.IsValid() {
		return "", apperrors.NewBadRequestError("Status must be either draft or published.")
	}
	return status, nil
}

func (s *blogService) uploadImage(ctx context.Context, image *domain.ImageUpload) (*string, error) {
	if image == nil {
		return nil, nil
	}
	if s.images == nil || !s.images.Enabled() {
		return nil, apperrors.NewBadRequestError("Image uploads are not enabled.")
	}
	url, err := s.images.UploadImage(ctx, *image)
	if err != nil {
		return nil, err
	}
	return &url, nil
}

// discardImage removes an image whose post was never saved.
func (s *blogService) discardImage(ctx context.Context, url *string) {
	if url == nil {
		return
	}
	if err := s.images.DeleteImage(context.WithoutCancel(ctx), *url); err != nil {
		s.LogError(ctx, err, "Failed to delete orphaned post image", slog.String("image_url", *url))
	}
}

func validateCategory(name string) error {
	if strings.TrimSpace(name) == "" {
		return apperrors.NewBadRequestError("Category is required.")
	}
	return nil
}

func (s *blogService) getOrCreateCategory(ctx context.Context, name string) (*domain.Category, error) {
	name = strings.TrimSpace(name)
	if err := validateCategory(name); err != nil {
		return nil, err
	}
	category, err := s.categoryRepo.GetOrCreateCategory(ctx, name)
	if err != nil {
		return nil, fmt.Errorf("failed to resolve category %q: %w", name, err)
	}
	return category, nil
}

func (s *blogService) CreatePost(ctx context.Context, author domain.User, req dto.CreatePostRequest, image *domain.ImageUpload) (*domain.BlogPost, error) {
	title := strings.TrimSpace(req.Title)
	if title == "" || strings.TrimSpace(req.Content) == "" {
		return nil, apperrors.NewBadRequestError("Title and content are required.")
	}
	if len([]rune(title)) > domain.MaxTitleLength {
		return nil, apperrors.NewBadRequestError(fmt.Sprintf("Title must be at most %d characters.", domain.MaxTitleLength))
	}
	status, err := parseStatus(req.Status)
	if err != nil {
		return nil, err
	}
	if err := validateCategory(req.Category); err != nil {
		return nil, err
	}

	imageURL, err := s.uploadImage(ctx, image)
	if err != nil {
		return nil, err
	}

	now := s.now()
	post := domain.BlogPost{
		PostID:         uuid.NewString(),
		AuthorID:       author.UserID,
		AuthorUsername: author.Username,
		Title:          title,
		Content:        req.Content,
		ImageURL:       imageURL,
		Status:         status,
		CreatedAt:      now,
		UpdatedAt:      now,
	}

	err = s.txManager.WithinTransaction(ctx, func(txCtx context.Context) error {
		category, err := s.getOrCreateCategory(txCtx, req.Category)
		if err != nil {
			return err
		}
		post.Category = *category
		return s.postRepo.SavePost(txCtx, post)
	})
	if err != nil {
		s.discardImage(ctx, imageURL)
		return nil, err
	}

	s.LogInfo(ctx, "Blog post created", slog.String("post_id", post.PostID), slog.String("user_id", author.UserID))
	s.publishEvent(ctx, domain.EventPostCreated, post.PostID, author.UserID, map[string]any{
		"author_id": author.UserID,
		"title":     post.Title,
		"category":  post.Category.Name,
		"status":    string(post.Status),
	})
	return &post, nil
}

func (s *blogService) UpdatePost(ctx context.Context, user domain.User, postID string, req dto.UpdatePostRequest, image *domain.ImageUpload) (*domain.BlogPost, error) {
	post, err := s.findPost(ctx, postID)
	if err != nil {
		return nil, err
	}
	if post.IsSoftDeleted() {
		return nil, apperrors.NewNotFoundError(msgPostNotFound)
	}
	if post.AuthorID != user.UserID {
		return nil, apperrors.NewUnauthorizedError(msgNoUpdateRights)
	}

	if req.Title != nil {
		title := strings.TrimSpace(*req.Title)
		if title == "" || len([]rune(title)) > domain.MaxTitleLength {
			return nil, apperrors.NewBadRequestError(fmt.Sprintf("Title must be 1 to %d characters.", domain.MaxTitleLength))
		}
		post.Title = title
	}
	if req.Content != nil {
		if strings.TrimSpace(*req.Content) == "" {
			return nil, apperrors.NewBadRequestError("Content must not be empty.")
		}
		post.Content = *req.Content
	}
	if req.Status != nil {
		status, err := parseStatus(*req.Status)
		if err != nil {
			return nil, err
		}
		post.Status = status
	}
	if req.Category != nil {
		if err := validateCategory(*req.Category); err != nil {
			return nil, err
		}
	}

	imageURL, err := s.uploadImage(ctx, image)
	if err != nil {
		return nil, err
	}
	if imageURL != nil {
		post.ImageURL = imageURL
	}

	post.UpdatedAt = s.now()
	err = s.txManager.WithinTransaction(ctx, func(txCtx context.Context) error {
		if req.Category != nil {
			category, err := s.getOrCreateCategory(txCtx, *req.Category)
			if err != nil {
				return err
			}
			post.Category = *category
		}
		if err := s.postRepo.UpdatePost(txCtx, *post); err != nil {
			if errors.Is(err, apperrors.ErrNotFound) {
				return apperrors.NewNotFoundError(msgPostNotFound)
			}
			return fmt.Errorf("failed to update blog post: %w", err)
		}
		return nil
	})
	if err != nil {
		s.discardImage(ctx, imageURL)
		return nil, err
	}
	return post, nil
}

func (s *blogService) SoftDeletePost(ctx context.Context, user domain.User, postID string) error {
	post, err := s.findPost(ctx, postID)
	if err != nil {
		return err
	}
	if post.AuthorID != user.UserID {
		return apperrors.NewUnauthorizedError(msgNoDeleteRights)
	}
	if post.IsSoftDeleted() {
		return apperrors.NewConflictError(msgPostDeleted)
	}

	if err := s.postRepo.MarkPostDeleted(ctx, post.PostID, s.now()); err != nil {
		if errors.Is(err, apperrors.ErrNotFound) {
			return apperrors.NewConflictError(msgPostDeleted)
		}
		return fmt.Errorf("failed to soft delete blog post: %w", err)
	}

	s.LogInfo(ctx, "Blog post soft deleted", slog.String("post_id", post.PostID))
	s.publishEvent(ctx, domain.EventPostDeleted, post.PostID, user.UserID, map[string]any{
		"author_id": user.UserID,
	})
	return nil
}

// CommentOnPost stores the comment and emails the post author.
func (s *blogService) CommentOnPost(ctx context.Context, user domain.User, postID string, content string) (*domain.Comment, error) {
	if strings.TrimSpace(content) == "" {
		return nil, apperrors.NewBadRequestError("Please provide a comment.")
	}

	post, err := s.findVisiblePost(ctx, postID, user.UserID)
	if err != nil {
		return nil, err
	}

	comment := domain.Comment{
		CommentID:   uuid.NewString(),
		PostID:      post.PostID,
		AuthorName:  user.Username,
		AuthorEmail: user.Email,
		Content:     content,
		CreatedAt:   s.now(),
	}
	if err := s.commentRepo.SaveComment(ctx, comment); err != nil {
		return nil, fmt.Errorf("failed to save comment: %w", err)
	}

	s.publishEvent(ctx, domain.EventCommentPosted, post.PostID, user.UserID, map[string]any{
		"comment_id": comment.CommentID,
		"post_id":    post.PostID,
	})

	author, err := s.userRepo.FindUserByID(ctx, post.AuthorID)
	if err != nil {
		s.LogError(ctx, err, "Failed to load post author for comment notification", slog.String("post_id", post.PostID))
		return nil, apperrors.NewInternalServerError(msgMailFailed)
	}
	if err := s.notifier.SendCommentNotification(ctx, *author, *post, comment); err != nil {
		s.LogError(ctx, err, "Failed to send comment notification", slog.String("post_id", post.PostID))
		return nil, apperrors.NewInternalServerError(msgMailFailed)
	}
	return &comment, nil
}

// ListPublishedPosts returns one keyset page of the public feed.
func (s *blogService) ListPublishedPosts(ctx context.Context, params dto.ListPostsParams) (*dto.ListPostsResponse, error) {
	limit := pagination.ClampLimit(params.Limit, defaultPageSize, maxPageSize)

	var after *domain.PostCursor
	if params.NextToken != nil && *params.NextToken != "" {
		cursor, err := pagination.DecodePostCursor(*params.NextToken)
		if err != nil {
			return nil, apperrors.NewValidationFailedError("Invalid next_token.", err)
		}
		after = &cursor
	}

	posts, err := s.postRepo.ListPublishedPosts(ctx, limit+1, after)
	if err != nil {
		return nil, fmt.Errorf("failed to list published posts: %w", err)
	}

	resp := &dto.ListPostsResponse{}
	if len(posts) > limit {
		posts = posts[:limit]
		last := posts[len(posts)-1]
		token := pagination.EncodePostCursor(domain.PostCursor{CreatedAt: last.CreatedAt, PostID: last.PostID})
		resp.NextToken = &token
	}
	resp.Posts = dto.ToBlogPostResponses(posts)
	return resp, nil
}

func (s *blogService) GetPost(ctx context.Context, postID string, viewerID string) (*domain.BlogPost, error) {
	return s.findVisiblePost(ctx, postID, viewerID)
}

func (s *blogService) ListMyPosts(ctx context.Context, authorID string, params dto.PageParams) ([]domain.BlogPost, error) {
	limit := pagination.ClampLimit(params.Limit, defaultPageSize, maxPageSize)
	posts, err := s.postRepo.ListPostsByAuthor(ctx, authorID, limit, max(params.Offset, 0))
	if err != nil {
		return nil, fmt.Errorf("failed to list posts of author: %w", err)
	}
	return posts, nil
}

func (s *blogService) SearchPosts(ctx context.Context, params dto.SearchPostsParams) ([]domain.BlogPost, error) {
	query := strings.TrimSpace(params.Search)
	if query == "" {
		return nil, apperrors.NewBadRequestError("Please provide a search query.")
	}
	limit := pagination.ClampLimit(params.Limit, defaultPageSize, maxPageSize)
	posts, err := s.postRepo.SearchPublishedPosts(ctx, query, limit, max(params.Offset, 0))
	if err != nil {
		return nil, fmt.Errorf("failed to search posts: %w", err)
	}
	return posts, nil
}

func (s *blogService) ListComments(ctx context.Context, postID string, viewerID string, params dto.PageParams) ([]domain.Comment, error) {
	post, err := s.findVisiblePost(ctx, postID, viewerID)
	if err != nil {
		return nil, err
	}
	limit := pagination.ClampLimit(params.Limit, defaultPageSize, maxPageSize)
	comments, err := s.commentRepo.ListCommentsForPost(ctx, post.PostID, limit, max(params.Offset, 0))
	if err != nil {
		return nil, fmt.Errorf("failed to list comments: %w", err)
	}
	return comments, nil
}
