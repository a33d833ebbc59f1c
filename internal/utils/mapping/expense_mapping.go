package mapping

import (
	"github.com/homeledger/homeledger-backend/internal/core/domain"
	"github.com/homeledger/homeledger-backend/internal/models"
)

// ToModelExpense converts a domain LedgerEntry to a model Expense
func ToModelExpense(d domain.LedgerEntry) models.Expense {
	return models.Expense{
		ExpenseID:         d.ExpenseID,
		Amount:            d.Amount,
		Description:       d.Description,
		CategoryID:        d.CategoryID,
		Account:           d.Account,
		Date:              d.Date,
		Type:              string(d.Type),
		Source:            string(d.Source),
		AddedBy:           d.AddedBy,
		CreatedAt:         d.CreatedAt,
		DedupeKey:         d.DedupeKey,
		BankTransactionID: d.BankTransactionID,
		Merchant:          d.Merchant,
		Address:           d.Address,
		OriginalCategory:  d.OriginalCategory,
		RecurringEntryID:  d.RecurringEntryID,
	}
}

// ToDomainLedgerEntry converts a model Expense to a domain LedgerEntry
func ToDomainLedgerEntry(m models.Expense) domain.LedgerEntry {
	return domain.LedgerEntry{
		ExpenseID:         m.ExpenseID,
		Amount:            m.Amount,
		Description:       m.Description,
		CategoryID:        m.CategoryID,
		Account:           m.Account,
		Date:              m.Date,
		Type:              domain.EntryType(m.Type),
		Source:            domain.EntrySource(m.Source),
		AddedBy:           m.AddedBy,
		CreatedAt:         m.CreatedAt,
		DedupeKey:         m.DedupeKey,
		BankTransactionID: m.BankTransactionID,
		Merchant:          m.Merchant,
		Address:           m.Address,
		OriginalCategory:  m.OriginalCategory,
		RecurringEntryID:  m.RecurringEntryID,
	}
}

// ToDomainLedgerEntrySlice converts a slice of model Expenses to domain LedgerEntries
func ToDomainLedgerEntrySlice(ms []models.Expense) []domain.LedgerEntry {
	ds := make([]domain.LedgerEntry, len(ms))
	for i, m := range ms {
		ds[i] = ToDomainLedgerEntry(m)
	}
	return ds
}

// ToDomainLedgerEntryDetails converts a joined expense row to domain details.
// Display columns come from LEFT JOINs and may be NULL when the referenced
// category or user no longer exists.
func ToDomainLedgerEntryDetails(m models.ExpenseDetails) domain.LedgerEntryDetails {
	details := domain.LedgerEntryDetails{
		LedgerEntry:   ToDomainLedgerEntry(m.Expense),
		CategoryName:  "Unknown",
		CategoryEmoji: m.CategoryEmoji,
		AddedByName:   "Unknown",
	}
	if m.CategoryName != nil {
		details.CategoryName = *m.CategoryName
	}
	if m.AddedByName != nil {
		details.AddedByName = *m.AddedByName
	}
	return details
}
