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
	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
)

type PgxCategoryRepository struct {
	BaseRepository
}

func newPgxCategoryRepository(db pool) portsrepo.CategoryRepositoryFacade {
	return &PgxCategoryRepository{BaseRepository: BaseRepository{Pool: db}}
}

const (
	insertCategoryIfMissingQuery = `
		INSERT INTO categories (category_id, name, created_at)
		VALUES ($1, $2, $3)
		ON CONFLICT (name) DO NOTHING
	`
	findCategoryByNameQuery = `SELECT category_id, name, created_at FROM categories WHERE name = $1`
)

func (r *PgxCategoryRepository) GetOrCreateCategory(ctx context.Context, name string) (*domain.Category, error) {
	var category *domain.Category
	err := r.withTx(ctx, func(ctx context.Context) error {
		q := r.conn(ctx)
		if _, err := q.Exec(ctx, insertCategoryIfMissingQuery, uuid.NewString(), name, time.Now().UTC()); err != nil {
			return fmt.Errorf("failed to insert category %q: %w", name, err)
		}

		var m models.Category
		if err := q.QueryRow(ctx, findCategoryByNameQuery, name).Scan(&m.CategoryID, &m.Name, &m.CreatedAt); err != nil {
			if errors.Is(err, pgx.ErrNoRows) {
				return apperrors.ErrNotFound
			}
			return fmt.Errorf("failed to load category %q: %w", name, err)
		}
		c := mapping.ToDomainCategory(m)
		category = &c
		return nil
	})
	if err != nil {
		return nil, err
	}
	return category, nil
}
