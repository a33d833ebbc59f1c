package pgsql

import (
	"context"
	"errors"
	"fmt"
	"strconv"
	"strings"

	"github.com/homeledger/homeledger-backend/internal/apperrors"
	"github.com/homeledger/homeledger-backend/internal/core/domain"
	portsrepo "github.com/homeledger/homeledger-backend/internal/core/ports/repositories"
	"github.com/homeledger/homeledger-backend/internal/models"
	"github.com/homeledger/homeledger-backend/internal/utils/mapping"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
)

const expenseColumns = `expense_id, amount, description, category_id, account, date, type, source,
	added_by, created_at, dedupe_key, bank_transaction_id, merchant, address, original_category, recurring_entry_id`

type PgxExpenseRepository struct {
	BaseRepository
}

// newPgxExpenseRepository creates a new repository for ledger-entry data.
func newPgxExpenseRepository(pool *pgxpool.Pool) portsrepo.LedgerEntryRepositoryFacade {
	return &PgxExpenseRepository{
		BaseRepository: BaseRepository{Pool: pool},
	}
}

// Ensure implementation matches interface
var _ portsrepo.LedgerEntryRepositoryFacade = (*PgxExpenseRepository)(nil)

func scanExpense(row pgx.Row) (models.Expense, error) {
	var expense models.Expense
	err := row.Scan(
		&expense.ExpenseID,
		&expense.Amount,
		&expense.Description,
		&expense.CategoryID,
		&expense.Account,
		&expense.Date,
		&expense.Type,
		&expense.Source,
		&expense.AddedBy,
		&expense.CreatedAt,
		&expense.DedupeKey,
		&expense.BankTransactionID,
		&expense.Merchant,
		&expense.Address,
		&expense.OriginalCategory,
		&expense.RecurringEntryID,
	)
	return expense, err
}

// SaveEntry inserts a new ledger entry row.
func (r *PgxExpenseRepository) SaveEntry(ctx context.Context, entry domain.LedgerEntry) error {
	modelExpense := mapping.ToModelExpense(entry)

	query := `
		INSERT INTO expenses (` + expenseColumns + `)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13, $14, $15, $16);
	`
	_, err := r.Pool.Exec(ctx, query,
		modelExpense.ExpenseID,
		modelExpense.Amount,
		modelExpense.Description,
		modelExpense.CategoryID,
		modelExpense.Account,
		modelExpense.Date,
		modelExpense.Type,
		modelExpense.Source,
		modelExpense.AddedBy,
		modelExpense.CreatedAt,
		modelExpense.DedupeKey,
		modelExpense.BankTransactionID,
		modelExpense.Merchant,
		modelExpense.Address,
		modelExpense.OriginalCategory,
		modelExpense.RecurringEntryID,
	)
	if err != nil {
		return fmt.Errorf("failed to save ledger entry %s: %w", modelExpense.ExpenseID, err)
	}
	return nil
}

// FindEntryByID retrieves a single ledger entry.
func (r *PgxExpenseRepository) FindEntryByID(ctx context.Context, expenseID string) (*domain.LedgerEntry, error) {
	query := `
		SELECT ` + expenseColumns + `
		FROM expenses
		WHERE expense_id = $1;
	`
	modelExpense, err := scanExpense(r.Pool.QueryRow(ctx, query, expenseID))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperrors.ErrNotFound
		}
		return nil, fmt.Errorf("failed to find ledger entry %s: %w", expenseID, err)
	}

	entry := mapping.ToDomainLedgerEntry(modelExpense)
	return &entry, nil
}

// FindEntryByDedupeKey returns any entry carrying the dedupe key. The index on
// dedupe_key is intentionally non-unique (manual entry is allowed to collide),
// so LIMIT 1 picks an arbitrary match, which is all duplicate suppression needs.
func (r *PgxExpenseRepository) FindEntryByDedupeKey(ctx context.Context, dedupeKey string) (*domain.LedgerEntry, error) {
	query := `
		SELECT ` + expenseColumns + `
		FROM expenses
		WHERE dedupe_key = $1
		LIMIT 1;
	`
	modelExpense, err := scanExpense(r.Pool.QueryRow(ctx, query, dedupeKey))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperrors.ErrNotFound
		}
		return nil, fmt.Errorf("failed to find ledger entry by dedupe key: %w", err)
	}

	entry := mapping.ToDomainLedgerEntry(modelExpense)
	return &entry, nil
}

// FindEntryByBankTransactionID returns any entry imported with the bank's
// transaction id.
func (r *PgxExpenseRepository) FindEntryByBankTransactionID(ctx context.Context, bankTransactionID string) (*domain.LedgerEntry, error) {
	query := `
		SELECT ` + expenseColumns + `
		FROM expenses
		WHERE bank_transaction_id = $1
		LIMIT 1;
	`
	modelExpense, err := scanExpense(r.Pool.QueryRow(ctx, query, bankTransactionID))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperrors.ErrNotFound
		}
		return nil, fmt.Errorf("failed to find ledger entry by bank transaction id: %w", err)
	}

	entry := mapping.ToDomainLedgerEntry(modelExpense)
	return &entry, nil
}

// FindEntries retrieves a filtered, paginated listing hydrated with category
// and author display columns, newest date first.
func (r *PgxExpenseRepository) FindEntries(ctx context.Context, filters domain.EntryFilters, limit, offset int) ([]domain.LedgerEntryDetails, error) {
	var builder strings.Builder
	builder.WriteString(`
		SELECT e.expense_id, e.amount, e.description, e.category_id, e.account, e.date, e.type, e.source,
			e.added_by, e.created_at, e.dedupe_key, e.bank_transaction_id, e.merchant, e.address, e.original_category, e.recurring_entry_id,
			c.name AS category_name, c.emoji AS category_emoji, u.name AS added_by_name
		FROM expenses e
		LEFT JOIN categories c ON c.category_id = e.category_id
		LEFT JOIN users u ON u.user_id = e.added_by
		WHERE 1=1`)

	args := []any{}
	addCondition := func(condition string, value any) {
		args = append(args, value)
		builder.WriteString(" AND " + condition + " $" + strconv.Itoa(len(args)))
	}

	if filters.CategoryID != "" {
		addCondition("e.category_id =", filters.CategoryID)
	}
	if filters.Type != "" {
		addCondition("e.type =", string(filters.Type))
	}
	if filters.StartDate != "" {
		addCondition("e.date >=", filters.StartDate)
	}
	if filters.EndDate != "" {
		addCondition("e.date <=", filters.EndDate)
	}

	args = append(args, limit)
	builder.WriteString(" ORDER BY e.date DESC, e.created_at DESC LIMIT $" + strconv.Itoa(len(args)))
	args = append(args, offset)
	builder.WriteString(" OFFSET $" + strconv.Itoa(len(args)) + ";")

	rows, err := r.Pool.Query(ctx, builder.String(), args...)
	if err != nil {
		return nil, fmt.Errorf("failed to query ledger entries: %w", err)
	}
	defer rows.Close()

	modelDetails, err := pgx.CollectRows(rows, func(row pgx.CollectableRow) (models.ExpenseDetails, error) {
		var details models.ExpenseDetails
		err := row.Scan(
			&details.ExpenseID,
			&details.Amount,
			&details.Description,
			&details.CategoryID,
			&details.Account,
			&details.Date,
			&details.Type,
			&details.Source,
			&details.AddedBy,
			&details.CreatedAt,
			&details.DedupeKey,
			&details.BankTransactionID,
			&details.Merchant,
			&details.Address,
			&details.OriginalCategory,
			&details.RecurringEntryID,
			&details.CategoryName,
			&details.CategoryEmoji,
			&details.AddedByName,
		)
		return details, err
	})
	if err != nil {
		return nil, fmt.Errorf("failed to scan ledger entries: %w", err)
	}

	entries := make([]domain.LedgerEntryDetails, len(modelDetails))
	for i, details := range modelDetails {
		entries[i] = mapping.ToDomainLedgerEntryDetails(details)
	}
	return entries, nil
}

// FindEntriesByDateRange returns all entries dated within [startDate, endDate].
func (r *PgxExpenseRepository) FindEntriesByDateRange(ctx context.Context, startDate, endDate string) ([]domain.LedgerEntry, error) {
	query := `
		SELECT ` + expenseColumns + `
		FROM expenses
		WHERE date >= $1 AND date <= $2
		ORDER BY date ASC;
	`
	rows, err := r.Pool.Query(ctx, query, startDate, endDate)
	if err != nil {
		return nil, fmt.Errorf("failed to query ledger entries by date range: %w", err)
	}
	defer rows.Close()

	modelExpenses, err := pgx.CollectRows(rows, func(row pgx.CollectableRow) (models.Expense, error) {
		return scanExpense(row)
	})
	if err != nil {
		return nil, fmt.Errorf("failed to scan ledger entries: %w", err)
	}

	return mapping.ToDomainLedgerEntrySlice(modelExpenses), nil
}

// ListAllEntries returns every entry, newest date first.
func (r *PgxExpenseRepository) ListAllEntries(ctx context.Context) ([]domain.LedgerEntry, error) {
	query := `
		SELECT ` + expenseColumns + `
		FROM expenses
		ORDER BY date DESC, created_at DESC;
	`
	rows, err := r.Pool.Query(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("failed to query all ledger entries: %w", err)
	}
	defer rows.Close()

	modelExpenses, err := pgx.CollectRows(rows, func(row pgx.CollectableRow) (models.Expense, error) {
		return scanExpense(row)
	})
	if err != nil {
		return nil, fmt.Errorf("failed to scan ledger entries: %w", err)
	}

	return mapping.ToDomainLedgerEntrySlice(modelExpenses), nil
}

// ListEntryMonths returns the distinct months that have entries, newest first.
func (r *PgxExpenseRepository) ListEntryMonths(ctx context.Context) ([]string, error) {
	query := `
		SELECT DISTINCT left(date, 7) AS month
		FROM expenses
		ORDER BY month DESC;
	`
	rows, err := r.Pool.Query(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("failed to query entry months: %w", err)
	}
	defer rows.Close()

	months, err := pgx.CollectRows(rows, func(row pgx.CollectableRow) (string, error) {
		var month string
		err := row.Scan(&month)
		return month, err
	})
	if err != nil {
		return nil, fmt.Errorf("failed to scan entry months: %w", err)
	}
	return months, nil
}

// CountEntriesByCategory reports how many entries reference a category.
func (r *PgxExpenseRepository) CountEntriesByCategory(ctx context.Context, categoryID string) (int, error) {
	query := `
		SELECT COUNT(*) FROM expenses WHERE category_id = $1;
	`
	var count int
	if err := r.Pool.QueryRow(ctx, query, categoryID).Scan(&count); err != nil {
		return 0, fmt.Errorf("failed to count ledger entries for category %s: %w", categoryID, err)
	}
	return count, nil
}

// UpdateEntry rewrites the mutable fields of a ledger entry.
func (r *PgxExpenseRepository) UpdateEntry(ctx context.Context, entry domain.LedgerEntry) error {
	modelExpense := mapping.ToModelExpense(entry)

	query := `
		UPDATE expenses
		SET amount = $2, description = $3, category_id = $4, account = $5, date = $6, type = $7, dedupe_key = $8
		WHERE expense_id = $1;
	`
	tag, err := r.Pool.Exec(ctx, query,
		modelExpense.ExpenseID,
		modelExpense.Amount,
		modelExpense.Description,
		modelExpense.CategoryID,
		modelExpense.Account,
		modelExpense.Date,
		modelExpense.Type,
		modelExpense.DedupeKey,
	)
	if err != nil {
		return fmt.Errorf("failed to update ledger entry %s: %w", modelExpense.ExpenseID, err)
	}
	if tag.RowsAffected() == 0 {
		return apperrors.ErrNotFound
	}
	return nil
}

// DeleteEntry removes a ledger entry row.
func (r *PgxExpenseRepository) DeleteEntry(ctx context.Context, expenseID string) error {
	query := `
		DELETE FROM expenses WHERE expense_id = $1;
	`
	tag, err := r.Pool.Exec(ctx, query, expenseID)
	if err != nil {
		return fmt.Errorf("failed to delete ledger entry %s: %w", expenseID, err)
	}
	if tag.RowsAffected() == 0 {
		return apperrors.ErrNotFound
	}
	return nil
}
