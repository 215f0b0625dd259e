package pgsql

import (
	"context"
	"fmt"

	"github.com/SscSPs/blogging_platform_app/internal/core/domain"
	portsrepo "github.com/SscSPs/blogging_platform_app/internal/core/ports/repositories"
	"github.com/SscSPs/blogging_platform_app/internal/models"
	"github.com/SscSPs/blogging_platform_app/internal/utils/mapping"
	"github.com/jackc/pgx/v5"
)

type PgxCommentRepository struct {
	BaseRepository
}

func newPgxCommentRepository(db pool) portsrepo.CommentRepositoryFacade {
	return &PgxCommentRepository{BaseRepository: BaseRepository{Pool: db}}
}

const (
	insertCommentQuery = `
		INSERT INTO comments (comment_id, post_id, author_name, author_email, content, created_at)
		VALUES ($1, $2, $3, $4, $5, $6)
	`
	listCommentsForPostQuery = `
		SELECT comment_id, post_id, author_name, author_email, content, created_at
		FROM comments
		WHERE post_id = $1
		ORDER BY created_at ASC, comment_id ASC
		LIMIT $2 OFFSET $3
	`
)

func (r *PgxCommentRepository) SaveComment(ctx context.Context, comment domain.Comment) error {
	m := mapping.ToModelComment(comment)
	_, err := r.conn(ctx).Exec(ctx, insertCommentQuery,
		m.CommentID, m.PostID, m.AuthorName, m.AuthorEmail, m.Content, m.CreatedAt)
	if err != nil {
		return fmt.Errorf("failed to save comment: %w", err)
	}
	return nil
}

func (r *PgxCommentRepository) ListCommentsForPost(ctx context.Context, postID string, limit int, offset int) ([]domain.Comment, error) {
	rows, err := r.conn(ctx).Query(ctx, listCommentsForPostQuery, postID, limit, offset)
	if err != nil {
		return nil, fmt.Errorf("failed to query comments: %w", err)
	}
	comments, err := pgx.CollectRows(rows, pgx.RowToStructByName[models.Comment])
	if err != nil {
		return nil, fmt.Errorf("failed to collect comment rows: %w", err)
	}
	return mapping.ToDomainCommentSlice(comments), nil
}
