package repositories

import (
	"context"

	"github.com/homeledger/homeledger-backend/internal/core/domain"
)

// LedgerEntryReader defines read operations for ledger entries
type LedgerEntryReader interface {
	// FindEntryByID retrieves a single ledger entry.
	FindEntryByID(ctx context.Context, expenseID string) (*domain.LedgerEntry, error)

	// FindEntryByDedupeKey returns any existing entry carrying the dedupe key,
	// or apperrors.ErrNotFound. Backed by an index on dedupe_key.
	FindEntryByDedupeKey(ctx context.Context, dedupeKey string) (*domain.LedgerEntry, error)

	// FindEntryByBankTransactionID returns any existing entry imported with
	// the given bank transaction id, or apperrors.ErrNotFound.
	FindEntryByBankTransactionID(ctx context.Context, bankTransactionID string) (*domain.LedgerEntry, error)

	// FindEntries retrieves a filtered, paginated list of entries hydrated
	// with category and author display info, newest date first.
	FindEntries(ctx context.Context, filters domain.EntryFilters, limit, offset int) ([]domain.LedgerEntryDetails, error)

	// FindEntriesByDateRange returns all entries with date in [startDate,
	// endDate] (lexicographic on the ISO date string).
	FindEntriesByDateRange(ctx context.Context, startDate, endDate string) ([]domain.LedgerEntry, error)

	// ListAllEntries returns every entry, newest date first, for export.
	ListAllEntries(ctx context.Context) ([]domain.LedgerEntry, error)

	// ListEntryMonths returns the distinct "YYYY-MM" months that have at
	// least one entry, newest first.
	ListEntryMonths(ctx context.Context) ([]string, error)

	// CountEntriesByCategory reports how many entries reference a category.
	CountEntriesByCategory(ctx context.Context, categoryID string) (int, error)
}

// LedgerEntryWriter defines write operations for ledger entries
type LedgerEntryWriter interface {
	// SaveEntry persists a new ledger entry.
	SaveEntry(ctx context.Context, entry domain.LedgerEntry) error

	// UpdateEntry rewrites a ledger entry's mutable fields (amount,
	// description, category, account, date, type, dedupe key).
	UpdateEntry(ctx context.Context, entry domain.LedgerEntry) error

	// DeleteEntry removes a ledger entry. Returns apperrors.ErrNotFound when
	// the id does not exist.
	DeleteEntry(ctx context.Context, expenseID string) error
}

// LedgerEntryRepositoryFacade combines all ledger-entry repository interfaces
type LedgerEntryRepositoryFacade interface {
	LedgerEntryReader
	LedgerEntryWriter
}
