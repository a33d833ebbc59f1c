package repositories

import (
	"context"

	"github.com/homeledger/homeledger-backend/internal/core/domain"
)

// RecurringEntryReader defines read operations for recurring templates
type RecurringEntryReader interface {
	// FindRecurringEntryByID retrieves a single template.
	FindRecurringEntryByID(ctx context.Context, recurringEntryID string) (*domain.RecurringEntry, error)

	// ListRecurringEntries returns every template, oldest first.
	ListRecurringEntries(ctx context.Context) ([]domain.RecurringEntry, error)
}

// RecurringEntryWriter defines write operations for recurring templates
type RecurringEntryWriter interface {
	// SaveRecurringEntry persists a new template.
	SaveRecurringEntry(ctx context.Context, entry domain.RecurringEntry) error

	// DeleteRecurringEntry removes a template. Entries it already produced
	// are left untouched.
	DeleteRecurringEntry(ctx context.Context, recurringEntryID string) error
}

// RecurringEntryRepositoryFacade combines all recurring-template repository interfaces
type RecurringEntryRepositoryFacade interface {
	RecurringEntryReader
	RecurringEntryWriter
}
