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

type PgxUserRepository struct {
	BaseRepository
}

func newPgxUserRepository(db pool) portsrepo.UserRepositoryFacade {
	return &PgxUserRepository{BaseRepository: BaseRepository{Pool: db}}
}

// Ensure PgxUserRepository implements portsrepo.UserRepositoryFacade
var _ portsrepo.UserRepositoryFacade = (*PgxUserRepository)(nil)

const (
	selectUserFields = `
		user_id, username, email, first_name, last_name, password_hash,
		is_active, auth_provider, provider_user_id, created_at, last_updated_at, deleted_at
	`

	insertUserQuery = `
		INSERT INTO users (
			user_id, username, email, first_name, last_name, password_hash,
			is_active, auth_provider, provider_user_id, created_at, last_updated_at
		) VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11)
	`

	findUserByIDQuery       = `SELECT ` + selectUserFields + ` FROM users WHERE user_id = $1`
	findUserByEmailQuery    = `SELECT ` + selectUserFields + ` FROM users WHERE email = $1`
	findUserByUsernameQuery = `SELECT ` + selectUserFields + ` FROM users WHERE username = $1`

	updateUserQuery = `
		UPDATE users
		SET username = $2, first_name = $3, last_name = $4, password_hash = $5,
			is_active = $6, auth_provider = $7, provider_user_id = $8, last_updated_at = $9
		WHERE user_id = $1
	`

	markUserDeletedQuery = `
		UPDATE users
		SET deleted_at = $2, last_updated_at = $2
		WHERE user_id = $1 AND deleted_at IS NULL
	`

	clearUserDeletedQuery = `
		UPDATE users
		SET deleted_at = NULL, last_updated_at = $2
		WHERE user_id = $1 AND deleted_at IS NOT NULL
	`
)

func scanUser(row pgx.Row) (*domain.User, error) {
	var m models.User
	err := row.Scan(
		&m.UserID,
		&m.Username,
		&m.Email,
		&m.FirstName,
		&m.LastName,
		&m.PasswordHash,
		&m.IsActive,
		&m.AuthProvider,
		&m.ProviderUserID,
		&m.CreatedAt,
		&m.LastUpdatedAt,
		&m.DeletedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperrors.ErrNotFound
		}
		return nil, err
	}
	user := mapping.ToDomainUser(m)
	return &user, nil
}

func (r *PgxUserRepository) SaveUser(ctx context.Context, user domain.User) error {
	m := mapping.ToModelUser(user)
	_, err := r.conn(ctx).Exec(ctx, insertUserQuery,
		m.UserID,
		m.Username,
		m.Email,
		m.FirstName,
		m.LastName,
		m.PasswordHash,
		m.IsActive,
		m.AuthProvider,
		m.ProviderUserID,
		m.CreatedAt,
		m.LastUpdatedAt,
	)
	if err != nil {
		if isUniqueViolation(err) {
			return fmt.Errorf("user with this email or username already exists: %w", apperrors.ErrDuplicate)
		}
		return fmt.Errorf("failed to save user: %w", err)
	}
	return nil
}

func (r *PgxUserRepository) FindUserByID(ctx context.Context, userID string) (*domain.User, error) {
	user, err := scanUser(r.conn(ctx).QueryRow(ctx, findUserByIDQuery, userID))
	if err != nil && !errors.Is(err, apperrors.ErrNotFound) {
		return nil, fmt.Errorf("failed to find user by ID %s: %w", userID, err)
	}
	return user, err
}

func (r *PgxUserRepository) FindUserByEmail(ctx context.Context, email string) (*domain.User, error) {
	user, err := scanUser(r.conn(ctx).QueryRow(ctx, findUserByEmailQuery, email))
	if err != nil && !errors.Is(err, apperrors.ErrNotFound) {
		return nil, fmt.Errorf("failed to find user by email: %w", err)
	}
	return user, err
}

func (r *PgxUserRepository) FindUserByUsername(ctx context.Context, username string) (*domain.User, error) {
	user, err := scanUser(r.conn(ctx).QueryRow(ctx, findUserByUsernameQuery, username))
	if err != nil && !errors.Is(err, apperrors.ErrNotFound) {
		return nil, fmt.Errorf("failed to find user by username: %w", err)
	}
	return user, err
}

func (r *PgxUserRepository) UpdateUser(ctx context.Context, user domain.User) error {
	m := mapping.ToModelUser(user)
	cmdTag, err := r.conn(ctx).Exec(ctx, updateUserQuery,
		m.UserID,
		m.Username,
		m.FirstName,
		m.LastName,
		m.PasswordHash,
		m.IsActive,
		m.AuthProvider,
		m.ProviderUserID,
		m.LastUpdatedAt,
	)
	if err != nil {
		if isUniqueViolation(err) {
			return fmt.Errorf("username already taken: %w", apperrors.ErrDuplicate)
		}
		return fmt.Errorf("failed to execute update user query: %w", err)
	}
	if cmdTag.RowsAffected() == 0 {
		return fmt.Errorf("user not found: %w", apperrors.ErrNotFound)
	}
	return nil
}

func (r *PgxUserRepository) MarkUserDeleted(ctx context.Context, userID string, deletedAt time.Time) error {
	cmdTag, err := r.conn(ctx).Exec(ctx, markUserDeletedQuery, userID, deletedAt)
	if err != nil {
		return fmt.Errorf("failed to mark user as deleted: %w", err)
	}
	if cmdTag.RowsAffected() == 0 {
		return fmt.Errorf("user not found or already deleted: %w", apperrors.ErrNotFound)
	}
	return nil
}

func (r *PgxUserRepository) ClearUserDeleted(ctx context.Context, userID string, restoredAt time.Time) error {
	cmdTag, err := r.conn(ctx).Exec(ctx, clearUserDeletedQuery, userID, restoredAt)
	if err != nil {
		return fmt.Errorf("failed to restore user: %w", err)
	}
	if cmdTag.RowsAffected() == 0 {
		return fmt.Errorf("user not found or not deleted: %w", apperrors.ErrNotFound)
	}
	return nil
}
