package pgsql

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/SscSPs/blogging_platform_app/internal/apperrors"
	"github.com/SscSPs/blogging_platform_app/internal/core/domain"
	portsrepo "github.com/SscSPs/blogging_platform_app/internal/core/ports/repositories"
	"github.com/SscSPs/blogging_platform_app/internal/models"
	"github.com/SscSPs/blogging_platform_app/internal/utils/mapping"
	"github.com/jackc/pgx/v5"
)

type PgxBlogPostRepository struct {
	BaseRepository
}

func newPgxBlogPostRepository(db pool) portsrepo.BlogPostRepositoryFacade {
	return &PgxBlogPostRepository{BaseRepository: BaseRepository{Pool: db}}
}

var _ portsrepo.BlogPostRepositoryFacade = (*PgxBlogPostRepository)(nil)

const (
	selectBlogPostFrom = `
		SELECT p.post_id, p.author_id, u.username AS author_username, p.title, p.content,
			p.category_id, c.name AS category_name, p.image_url, p.status,
			p.created_at, p.updated_at, p.deleted_at
		FROM blog_posts p
		JOIN users u ON u.user_id = p.author_id
		JOIN categories c ON c.category_id = p.category_id
	`

	// publicPostFilter hides drafts, soft-deleted posts and posts of soft-deleted authors.
	publicPostFilter = `p.status = 'published' AND p.deleted_at IS NULL AND u.deleted_at IS NULL`

	insertBlogPostQuery = `
		INSERT INTO blog_posts (
			post_id, author_id, title, content, category_id, image_url, status, created_at, updated_at
		) VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9)
	`

	findBlogPostByIDQuery = selectBlogPostFrom + ` WHERE p.post_id = $1`

	listPublishedPostsQuery = selectBlogPostFrom + `
		WHERE ` + publicPostFilter + `
			AND ($2::timestamptz IS NULL OR (p.created_at, p.post_id) < ($2::timestamptz, $3::uuid))
		ORDER BY p.created_at DESC, p.post_id DESC
		LIMIT $1
	`

	listPostsByAuthorQuery = selectBlogPostFrom + `
		WHERE p.author_id = $1 AND p.deleted_at IS NULL
		ORDER BY p.created_at DESC, p.post_id DESC
		LIMIT $2 OFFSET $3
	`

	searchPublishedPostsQuery = selectBlogPostFrom + `
		WHERE ` + publicPostFilter + `
			AND (p.title ILIKE $1 OR c.name ILIKE $1)
		ORDER BY p.created_at DESC, p.post_id DESC
		LIMIT $2 OFFSET $3
	`

	updateBlogPostQuery = `
		UPDATE blog_posts
		SET title = $2, content = $3, category_id = $4, image_url = $5, status = $6, updated_at = $7
		WHERE post_id = $1 AND deleted_at IS NULL
	`

	markBlogPostDeletedQuery = `
		UPDATE blog_posts
		SET deleted_at = $2, updated_at = $2
		WHERE post_id = $1 AND deleted_at IS NULL
	`
)

func (r *PgxBlogPostRepository) collectPosts(ctx context.Context, query string, args ...any) ([]domain.BlogPost, error) {
	rows, err := r.conn(ctx).Query(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("failed to query blog posts: %w", err)
	}
	posts, err := pgx.CollectRows(rows, pgx.RowToStructByName[models.BlogPost])
	if err != nil {
		return nil, fmt.Errorf("failed to collect blog post rows: %w", err)
	}
	return mapping.ToDomainBlogPostSlice(posts), nil
}

func (r *PgxBlogPostRepository) SavePost(ctx context.Context, post domain.BlogPost) error {
	m := mapping.ToModelBlogPost(post)
	_, err := r.conn(ctx).Exec(ctx, insertBlogPostQuery,
		m.PostID,
		m.AuthorID,
		m.Title,
		m.Content,
		m.CategoryID,
		m.ImageURL,
		m.Status,
		m.CreatedAt,
		m.UpdatedAt,
	)
	if err != nil {
		return fmt.Errorf("failed to save blog post: %w", err)
	}
	return nil
}

func (r *PgxBlogPostRepository) FindPostByID(ctx context.Context, postID string) (*domain.BlogPost, error) {
	rows, err := r.conn(ctx).Query(ctx, findBlogPostByIDQuery, postID)
	if err != nil {
		return nil, fmt.Errorf("failed to query blog post %s: %w", postID, err)
	}
	m, err := pgx.CollectExactlyOneRow(rows, pgx.RowToStructByName[models.BlogPost])
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperrors.ErrNotFound
		}
		return nil, fmt.Errorf("failed to collect blog post %s: %w", postID, err)
	}
	post := mapping.ToDomainBlogPost(m)
	return &post, nil
}

func (r *PgxBlogPostRepository) ListPublishedPosts(ctx context.Context, limit int, after *domain.PostCursor) ([]domain.BlogPost, error) {
	var afterCreatedAt *time.Time
	var afterPostID *string
	if after != nil {
		afterCreatedAt = &after.CreatedAt
		afterPostID = &after.PostID
	}
	return r.collectPosts(ctx, listPublishedPostsQuery, limit, afterCreatedAt, afterPostID)
}

func (r *PgxBlogPostRepository) ListPostsByAuthor(ctx context.Context, authorID string, limit int, offset int) ([]domain.BlogPost, error) {
	return r.collectPosts(ctx, listPostsByAuthorQuery, authorID, limit, offset)
}

func (r *PgxBlogPostRepository) SearchPublishedPosts(ctx context.Context, query string, limit int, offset int) ([]domain.BlogPost, error) {
	return r.collectPosts(ctx, searchPublishedPostsQuery, "%"+escapeLike(query)+"%", limit, offset)
}

func (r *PgxBlogPostRepository) UpdatePost(ctx context.Context, post domain.BlogPost) error {
	m := mapping.ToModelBlogPost(post)
	cmdTag, err := r.conn(ctx).Exec(ctx, updateBlogPostQuery,
		m.PostID,
		m.Title,
		m.Content,
		m.CategoryID,
		m.ImageURL,
		m.Status,
		m.UpdatedAt,
	)
	if err != nil {
		return fmt.Errorf("failed to update blog post: %w", err)
	}
	if cmdTag.RowsAffected() == 0 {
		return fmt.Errorf("blog post not found or deleted: %w", apperrors.ErrNotFound)
	}
	return nil
}

func (r *PgxBlogPostRepository) MarkPostDeleted(ctx context.Context, postID string, deletedAt time.Time) error {
	cmdTag, err := r.conn(ctx).Exec(ctx, markBlogPostDeletedQuery, postID, deletedAt)
	if err != nil {
		return fmt.Errorf("failed to mark blog post as deleted: %w", err)
	}
	if cmdTag.RowsAffected() == 0 {
		return fmt.Errorf("blog post not found or already deleted: %w", apperrors.ErrNotFound)
	}
	return nil
}

var likeEscaper = strings.NewReplacer(`\`, `\\`, `%`, `\%`, `_`, `\_`)

// escapeLike makes user input match literally inside an ILIKE pattern.
func escapeLike(s string) string {
	return likeEscaper.Replace(s)
}
