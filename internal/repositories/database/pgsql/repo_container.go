package pgsql

import (
	portsrepo "github.com/SscSPs/blogging_platform_app/internal/core/ports/repositories"
	"github.com/jackc/pgx/v5/pgxpool"
)

// NewRepositoryProvider wires every pgx-backed repository onto one pool.
func NewRepositoryProvider(dbPool *pgxpool.Pool) portsrepo.RepositoryProvider {
	return portsrepo.RepositoryProvider{
		UserRepo:      newPgxUserRepository(dbPool),
		OTPRepo:       newPgxOTPRepository(dbPool),
		AuthTokenRepo: newPgxAuthTokenRepository(dbPool),
		CategoryRepo:  newPgxCategoryRepository(dbPool),
		BlogPostRepo:  newPgxBlogPostRepository(dbPool),
		CommentRepo:   newPgxCommentRepository(dbPool),
		TxManager:     newPgxTransactionManager(dbPool),
	}
}
