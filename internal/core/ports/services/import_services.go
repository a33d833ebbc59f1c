package services

import (
	"context"

	"github.com/homeledger/homeledger-backend/internal/core/domain"
)

// ImportSvcFacade is the import commit stage: it takes normalized entries and
// turns them into ledger entries with duplicate suppression and per-row error
// isolation.
type ImportSvcFacade interface {
	// ImportExpenses processes one batch sequentially. A failure in one row is
	// recorded in the result and never aborts the batch.
	ImportExpenses(ctx context.Context, source domain.ImportSource, entries []domain.ImportEntry, memberID string) (*domain.ImportResult, error)
}
