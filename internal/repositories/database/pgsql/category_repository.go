package pgsql

import (
	"context"
	"errors"
	"fmt"

	"github.com/homeledger/homeledger-backend/internal/apperrors"
	"github.com/homeledger/homeledger-backend/internal/core/domain"
	portsrepo "github.com/homeledger/homeledger-backend/internal/core/ports/repositories"
	"github.com/homeledger/homeledger-backend/internal/models"
	"github.com/homeledger/homeledger-backend/internal/utils/mapping"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
)

type PgxCategoryRepository struct {
	BaseRepository
}

// newPgxCategoryRepository creates a new repository for category data.
func newPgxCategoryRepository(pool *pgxpool.Pool) portsrepo.CategoryRepositoryFacade {
	return &PgxCategoryRepository{
		BaseRepository: BaseRepository{Pool: pool},
	}
}

// Ensure implementation matches interface
var _ portsrepo.CategoryRepositoryFacade = (*PgxCategoryRepository)(nil)

// SaveCategory inserts a new category row.
func (r *PgxCategoryRepository) SaveCategory(ctx context.Context, category domain.Category) error {
	modelCategory := mapping.ToModelCategory(category)

	query := `
		INSERT INTO categories (category_id, name, emoji, is_default, created_by, created_at)
		VALUES ($1, $2, $3, $4, $5, $6);
	`
	_, err := r.Pool.Exec(ctx, query,
		modelCategory.CategoryID,
		modelCategory.Name,
		modelCategory.Emoji,
		modelCategory.IsDefault,
		modelCategory.CreatedBy,
		modelCategory.CreatedAt,
	)
	if err != nil {
		return fmt.Errorf("failed to save category %s: %w", modelCategory.CategoryID, err)
	}
	return nil
}

// FindCategoryByID retrieves a category by id.
func (r *PgxCategoryRepository) FindCategoryByID(ctx context.Context, categoryID string) (*domain.Category, error) {
	query := `
		SELECT category_id, name, emoji, is_default, created_by, created_at
		FROM categories
		WHERE category_id = $1;
	`
	var modelCategory models.Category
	err := r.Pool.QueryRow(ctx, query, categoryID).Scan(
		&modelCategory.CategoryID,
		&modelCategory.Name,
		&modelCategory.Emoji,
		&modelCategory.IsDefault,
		&modelCategory.CreatedBy,
		&modelCategory.CreatedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperrors.ErrNotFound
		}
		return nil, fmt.Errorf("failed to find category %s: %w", categoryID, err)
	}

	domainCategory := mapping.ToDomainCategory(modelCategory)
	return &domainCategory, nil
}

// FindCategoryByName retrieves a category by its exact stored name.
func (r *PgxCategoryRepository) FindCategoryByName(ctx context.Context, name string) (*domain.Category, error) {
	query := `
		SELECT category_id, name, emoji, is_default, created_by, created_at
		FROM categories
		WHERE name = $1
		LIMIT 1;
	`
	var modelCategory models.Category
	err := r.Pool.QueryRow(ctx, query, name).Scan(
		&modelCategory.CategoryID,
		&modelCategory.Name,
		&modelCategory.Emoji,
		&modelCategory.IsDefault,
		&modelCategory.CreatedBy,
		&modelCategory.CreatedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperrors.ErrNotFound
		}
		return nil, fmt.Errorf("failed to find category by name %q: %w", name, err)
	}

	domainCategory := mapping.ToDomainCategory(modelCategory)
	return &domainCategory, nil
}

// ListCategories retrieves all categories, defaults first, then alphabetical.
func (r *PgxCategoryRepository) ListCategories(ctx context.Context) ([]domain.Category, error) {
	query := `
		SELECT category_id, name, emoji, is_default, created_by, created_at
		FROM categories
		ORDER BY is_default DESC, name ASC;
	`
	rows, err := r.Pool.Query(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("failed to query categories: %w", err)
	}
	defer rows.Close()

	modelCategories, err := pgx.CollectRows(rows, func(row pgx.CollectableRow) (models.Category, error) {
		var category models.Category
		err := row.Scan(
			&category.CategoryID,
			&category.Name,
			&category.Emoji,
			&category.IsDefault,
			&category.CreatedBy,
			&category.CreatedAt,
		)
		return category, err
	})
	if err != nil {
		return nil, fmt.Errorf("failed to scan categories: %w", err)
	}

	return mapping.ToDomainCategorySlice(modelCategories), nil
}

// UpdateCategory rewrites a category's name and emoji.
func (r *PgxCategoryRepository) UpdateCategory(ctx context.Context, category domain.Category) error {
	modelCategory := mapping.ToModelCategory(category)

	query := `
		UPDATE categories SET name = $2, emoji = $3 WHERE category_id = $1;
	`
	tag, err := r.Pool.Exec(ctx, query, modelCategory.CategoryID, modelCategory.Name, modelCategory.Emoji)
	if err != nil {
		return fmt.Errorf("failed to update category %s: %w", modelCategory.CategoryID, err)
	}
	if tag.RowsAffected() == 0 {
		return apperrors.ErrNotFound
	}
	return nil
}

// DeleteCategory removes a category row.
func (r *PgxCategoryRepository) DeleteCategory(ctx context.Context, categoryID string) error {
	query := `
		DELETE FROM categories WHERE category_id = $1;
	`
	tag, err := r.Pool.Exec(ctx, query, categoryID)
	if err != nil {
		return fmt.Errorf("failed to delete category %s: %w", categoryID, err)
	}
	if tag.RowsAffected() == 0 {
		return apperrors.ErrNotFound
	}
	return nil
}
