package services

import (
	"context"

	"github.com/homeledger/homeledger-backend/internal/core/domain"
	"github.com/homeledger/homeledger-backend/internal/dto"
)

// LedgerWriterSvc defines write operations for ledger entries
type LedgerWriterSvc interface {
	// AddExpense records a ledger entry, computing its dedupe key.
	AddExpense(ctx context.Context, req dto.CreateExpenseRequest) (*domain.LedgerEntry, error)

	// UpdateExpense merges the patch onto the stored entry and recomputes the
	// dedupe key from the merged fields.
	UpdateExpense(ctx context.Context, expenseID string, req dto.UpdateExpenseRequest) (*domain.LedgerEntry, error)

	// DeleteExpense removes a ledger entry.
	DeleteExpense(ctx context.Context, expenseID string, memberID string) error
}

// LedgerReaderSvc defines read operations for ledger entries
type LedgerReaderSvc interface {
	// ListExpenses returns a filtered, paginated, hydrated entry listing.
	ListExpenses(ctx context.Context, params dto.ListExpensesParams) ([]domain.LedgerEntryDetails, error)
}

// LedgerSvcFacade combines all ledger-entry service interfaces
type LedgerSvcFacade interface {
	LedgerWriterSvc
	LedgerReaderSvc
}
