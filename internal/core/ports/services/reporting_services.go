package services

import (
	"context"

	"github.com/homeledger/homeledger-backend/internal/core/domain"
)

// ReportingSvcFacade provides aggregation and export queries over the ledger.
type ReportingSvcFacade interface {
	// GetMonthlySummary aggregates one calendar month's entries.
	GetMonthlySummary(ctx context.Context, month string) (*domain.MonthlySummary, error)

	// ExportExpenses returns denormalized rows ready for CSV serialization.
	ExportExpenses(ctx context.Context) ([]domain.ExportRow, error)

	// GetAvailableMonths lists the months that have entries, newest first.
	GetAvailableMonths(ctx context.Context) ([]string, error)
}
