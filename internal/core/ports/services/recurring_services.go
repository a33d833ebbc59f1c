package services

import (
	"context"

	"github.com/homeledger/homeledger-backend/internal/core/domain"
	"github.com/homeledger/homeledger-backend/internal/dto"
)

// RecurringSvcFacade manages recurring templates and materializes them into
// ledger entries.
type RecurringSvcFacade interface {
	// CreateRecurringEntry creates a template; day-of-month is clamped.
	CreateRecurringEntry(ctx context.Context, req dto.CreateRecurringEntryRequest) (*domain.RecurringEntry, error)

	// DeleteRecurringEntry removes a template without touching entries it
	// already produced.
	DeleteRecurringEntry(ctx context.Context, recurringEntryID string, memberID string) error

	// ListRecurringEntries returns templates hydrated with category names and
	// next-occurrence previews.
	ListRecurringEntries(ctx context.Context) ([]domain.RecurringEntryDetails, error)

	// ProcessMonth materializes every template active in the month, at most
	// once per template, and returns the number of entries created. Safe to
	// re-run for the same month.
	ProcessMonth(ctx context.Context, month string, memberID string) (int, error)
}
