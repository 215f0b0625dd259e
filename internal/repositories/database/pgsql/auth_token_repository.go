package pgsql

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/SscSPs/blogging_platform_app/internal/apperrors"
	"github.com/SscSPs/blogging_platform_app/internal/core/domain"
	portsrepo "github.com/SscSPs/blogging_platform_app/internal/core/ports/repositories"
	"github.com/SscSPs/blogging_platform_app/internal/models"
	"github.com/SscSPs/blogging_platform_app/internal/utils/mapping"
	"github.com/jackc/pgx/v5"
)

type PgxAuthTokenRepository struct {
	BaseRepository
}

// newPgxAuthTokenRepository creates a new instance of PgxAuthTokenRepository
func newPgxAuthTokenRepository(db pool) portsrepo.AuthTokenRepositoryFacade {
	return &PgxAuthTokenRepository{BaseRepository: BaseRepository{Pool: db}}
}

var _ portsrepo.AuthTokenRepositoryFacade = (*PgxAuthTokenRepository)(nil)

const (
	authTokensTable = "auth_tokens"

	selectAuthTokenFields = `token_id, user_id, key_hash, created_at, last_used_at`

	// user_id is UNIQUE, so the insert also guards the one-token invariant
	// against a concurrent rotation.
	insertAuthTokenQuery = `
		INSERT INTO ` + authTokensTable + ` (token_id, user_id, key_hash, created_at)
		VALUES ($1, $2, $3, $4)
	`

	findAuthTokenByHashQuery = `
		SELECT ` + selectAuthTokenFields + `
		FROM ` + authTokensTable + `
		WHERE key_hash = $1
	`

	deleteAuthTokensByUserIDQuery = `DELETE FROM ` + authTokensTable + ` WHERE user_id = $1`

	touchAuthTokenQuery = `UPDATE ` + authTokensTable + ` SET last_used_at = $2 WHERE token_id = $1`
)

func scanAuthToken(row pgx.Row) (*domain.AuthToken, error) {
	var m models.AuthToken
	if err := row.Scan(&m.TokenID, &m.UserID, &m.KeyHash, &m.CreatedAt, &m.LastUsedAt); err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperrors.ErrNotFound
		}
		return nil, fmt.Errorf("failed to scan auth token: %w", err)
	}
	token := mapping.ToDomainAuthToken(m)
	return &token, nil
}

// ReplaceTokenForUser deletes the previous token and inserts the new one in one transaction.
func (r *PgxAuthTokenRepository) ReplaceTokenForUser(ctx context.Context, token domain.AuthToken) error {
	m := mapping.ToModelAuthToken(token)
	return r.withTx(ctx, func(ctx context.Context) error {
		q := r.conn(ctx)
		if _, err := q.Exec(ctx, deleteAuthTokensByUserIDQuery, m.UserID); err != nil {
			return fmt.Errorf("failed to delete previous auth token: %w", err)
		}
		if _, err := q.Exec(ctx, insertAuthTokenQuery, m.TokenID, m.UserID, m.KeyHash, m.CreatedAt); err != nil {
			if isUniqueViolation(err) {
				return fmt.Errorf("concurrent auth token rotation: %w", apperrors.ErrDuplicate)
			}
			return fmt.Errorf("failed to insert auth token: %w", err)
		}
		return nil
	})
}

func (r *PgxAuthTokenRepository) FindTokenByKeyHash(ctx context.Context, keyHash string) (*domain.AuthToken, error) {
	return scanAuthToken(r.conn(ctx).QueryRow(ctx, findAuthTokenByHashQuery, keyHash))
}

func (r *PgxAuthTokenRepository) DeleteTokensForUser(ctx context.Context, userID string) error {
	if _, err := r.conn(ctx).Exec(ctx, deleteAuthTokensByUserIDQuery, userID); err != nil {
		return fmt.Errorf("failed to delete auth tokens for user %s: %w", userID, err)
	}
	return nil
}

func (r *PgxAuthTokenRepository) TouchToken(ctx context.Context, tokenID string, usedAt time.Time) error {
	if _, err := r.conn(ctx).Exec(ctx, touchAuthTokenQuery, tokenID, usedAt); err != nil {
		return fmt.Errorf("failed to touch auth token %s: %w", tokenID, err)
	}
	return nil
}
