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

type PgxRecurringRepository struct {
	BaseRepository
}

// newPgxRecurringRepository creates a new repository for recurring templates.
func newPgxRecurringRepository(pool *pgxpool.Pool) portsrepo.RecurringEntryRepositoryFacade {
	return &PgxRecurringRepository{
		BaseRepository: BaseRepository{Pool: pool},
	}
}

// Ensure implementation matches interface
var _ portsrepo.RecurringEntryRepositoryFacade = (*PgxRecurringRepository)(nil)

// SaveRecurringEntry inserts a new template row.
func (r *PgxRecurringRepository) SaveRecurringEntry(ctx context.Context, entry domain.RecurringEntry) error {
	modelEntry := mapping.ToModelRecurringEntry(entry)

	query := `
		INSERT INTO recurring_entries (recurring_entry_id, amount, description, category_id, account, type, day_of_month, start_month, end_month, created_by, created_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11);
	`
	_, err := r.Pool.Exec(ctx, query,
		modelEntry.RecurringEntryID,
		modelEntry.Amount,
		modelEntry.Description,
		modelEntry.CategoryID,
		modelEntry.Account,
		modelEntry.Type,
		modelEntry.DayOfMonth,
		modelEntry.StartMonth,
		modelEntry.EndMonth,
		modelEntry.CreatedBy,
		modelEntry.CreatedAt,
	)
	if err != nil {
		return fmt.Errorf("failed to save recurring template %s: %w", modelEntry.RecurringEntryID, err)
	}
	return nil
}

// FindRecurringEntryByID retrieves a single template.
func (r *PgxRecurringRepository) FindRecurringEntryByID(ctx context.Context, recurringEntryID string) (*domain.RecurringEntry, error) {
	query := `
		SELECT recurring_entry_id, amount, description, category_id, account, type, day_of_month, start_month, end_month, created_by, created_at
		FROM recurring_entries
		WHERE recurring_entry_id = $1;
	`
	var modelEntry models.RecurringEntry
	err := r.Pool.QueryRow(ctx, query, recurringEntryID).Scan(
		&modelEntry.RecurringEntryID,
		&modelEntry.Amount,
		&modelEntry.Description,
		&modelEntry.CategoryID,
		&modelEntry.Account,
		&modelEntry.Type,
		&modelEntry.DayOfMonth,
		&modelEntry.StartMonth,
		&modelEntry.EndMonth,
		&modelEntry.CreatedBy,
		&modelEntry.CreatedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperrors.ErrNotFound
		}
		return nil, fmt.Errorf("failed to find recurring template %s: %w", recurringEntryID, err)
	}

	entry := mapping.ToDomainRecurringEntry(modelEntry)
	return &entry, nil
}

// ListRecurringEntries returns every template, oldest first.
func (r *PgxRecurringRepository) ListRecurringEntries(ctx context.Context) ([]domain.RecurringEntry, error) {
	query := `
		SELECT recurring_entry_id, amount, description, category_id, account, type, day_of_month, start_month, end_month, created_by, created_at
		FROM recurring_entries
		ORDER BY created_at ASC;
	`
	rows, err := r.Pool.Query(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("failed to query recurring templates: %w", err)
	}
	defer rows.Close()

	modelEntries, err := pgx.CollectRows(rows, func(row pgx.CollectableRow) (models.RecurringEntry, error) {
		var entry models.RecurringEntry
		err := row.Scan(
			&entry.RecurringEntryID,
			&entry.Amount,
			&entry.Description,
			&entry.CategoryID,
			&entry.Account,
			&entry.Type,
			&entry.DayOfMonth,
			&entry.StartMonth,
			&entry.EndMonth,
			&entry.CreatedBy,
			&entry.CreatedAt,
		)
		return entry, err
	})
	if err != nil {
		return nil, fmt.Errorf("failed to scan recurring templates: %w", err)
	}

	return mapping.ToDomainRecurringEntrySlice(modelEntries), nil
}

// DeleteRecurringEntry removes a template row. Materialized entries keep their
// back-reference; it simply dangles.
func (r *PgxRecurringRepository) DeleteRecurringEntry(ctx context.Context, recurringEntryID string) error {
	query := `
		DELETE FROM recurring_entries WHERE recurring_entry_id = $1;
	`
	tag, err := r.Pool.Exec(ctx, query, recurringEntryID)
	if err != nil {
		return fmt.Errorf("failed to delete recurring template %s: %w", recurringEntryID, err)
	}
	if tag.RowsAffected() == 0 {
		return apperrors.ErrNotFound
	}
	return nil
}
